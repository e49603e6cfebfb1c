package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-cosmos/internal/cosmos/model"
)

const insertEventsQuery = `
INSERT INTO cosmos_events (
	chain_id,
	block_height,
	origin,
	tx_hash,
	event_seq,
	event_type,
	event_key,
	event_value,
	indexed
) VALUES`

// InsertEvents stores flattened event rows in ClickHouse. Block-level
// events get an empty tx_hash.
func (r *Repository) InsertEvents(ctx context.Context, chainID string, events []model.Event) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("insert_events", chainID, err, start)
	}()

	if len(events) == 0 {
		return nil
	}

	batch, err := r.conn.PrepareBatch(ctx, insertEventsQuery)
	if err != nil {
		return fmt.Errorf("prepare events batch: %w", err)
	}

	for _, e := range events {
		var txHash string
		if e.TxHash != nil {
			txHash = *e.TxHash
		}
		if err = batch.Append(
			chainID,
			e.BlockHeight,
			e.Origin.String(),
			txHash,
			int32(e.Seq), //nolint:gosec // attribute index within one container
			e.Type,
			e.Key,
			e.Value,
			e.Indexed,
		); err != nil {
			_ = batch.Abort()
			return fmt.Errorf("append event at height %d: %w", e.BlockHeight, err)
		}
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert events: %w", err)
	}
	return nil
}
