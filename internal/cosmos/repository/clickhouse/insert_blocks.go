package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-cosmos/internal/cosmos/model"
)

const insertBlocksQuery = `
INSERT INTO cosmos_blocks (
	chain_id,
	height,
	block_hash,
	prev_hash,
	proposer_address,
	app_hash,
	block_time
) VALUES`

// InsertBlocks stores block rows in ClickHouse.
func (r *Repository) InsertBlocks(ctx context.Context, chainID string, blocks []model.Block) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("insert_blocks", chainID, err, start)
	}()

	if len(blocks) == 0 {
		return nil
	}

	batch, err := r.conn.PrepareBatch(ctx, insertBlocksQuery)
	if err != nil {
		return fmt.Errorf("prepare blocks batch: %w", err)
	}

	for _, block := range blocks {
		if err = batch.Append(
			chainID,
			block.Height,
			block.BlockHash,
			block.PrevHash,
			block.ProposerAddress,
			block.AppHash,
			block.BlockTime.UTC(),
		); err != nil {
			_ = batch.Abort()
			return fmt.Errorf("append block %d: %w", block.Height, err)
		}
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert blocks: %w", err)
	}
	return nil
}
