package relational

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-cosmos/internal/cosmos/chain"
	"github.com/goodnatureofminers/blockinsight7000-cosmos/internal/cosmos/model"
)

// InsertBlock stores one block header and returns its row id.
func (r *Repository) InsertBlock(ctx context.Context, chainRowID int64, block model.Block) (int64, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("insert_block", err, start)
	}()

	row := newBlockRow(chainRowID, block, r.now())
	if err = r.db.WithContext(ctx).Create(&row).Error; err != nil {
		err = classify("insert block", block.Height, err)
		return 0, err
	}
	return row.ID, nil
}

// MaxCommittedHeight returns the highest stored height of a chain, or
// chain.ErrNotFound when no block is stored yet.
func (r *Repository) MaxCommittedHeight(ctx context.Context, chainRowID int64) (int64, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("max_committed_height", err, start)
	}()

	var height sql.NullInt64
	err = r.db.WithContext(ctx).
		Model(&blockRow{}).
		Where("chain_id = ?", chainRowID).
		Select("MAX(height)").
		Row().
		Scan(&height)
	if err != nil {
		err = classify("max committed height", 0, err)
		return 0, err
	}
	if !height.Valid {
		return 0, fmt.Errorf("max committed height of chain %d: %w", chainRowID, chain.ErrNotFound)
	}
	return height.Int64, nil
}

// LatestBlock returns the highest stored block of a chain.
func (r *Repository) LatestBlock(ctx context.Context, chainRowID int64) (*model.Block, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("latest_block", err, start)
	}()

	var row blockRow
	err = r.db.WithContext(ctx).
		Where("chain_id = ?", chainRowID).
		Order("height DESC").
		Take(&row).Error
	if err != nil {
		err = classify("latest block", 0, err)
		return nil, err
	}

	b := row.toModel()
	return &b, nil
}

// ListBlocks pages through a chain's blocks from the highest height down.
func (r *Repository) ListBlocks(ctx context.Context, chainRowID int64, limit, offset int) ([]model.Block, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("list_blocks", err, start)
	}()

	var rows []blockRow
	err = r.db.WithContext(ctx).
		Where("chain_id = ?", chainRowID).
		Order("height DESC").
		Limit(limit).
		Offset(offset).
		Find(&rows).Error
	if err != nil {
		err = classify("list blocks", 0, err)
		return nil, err
	}

	blocks := make([]model.Block, 0, len(rows))
	for _, row := range rows {
		blocks = append(blocks, row.toModel())
	}
	return blocks, nil
}

// FindBlockByHeight returns the block of a chain at height.
func (r *Repository) FindBlockByHeight(ctx context.Context, chainRowID, height int64) (*model.Block, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("find_block_by_height", err, start)
	}()

	var row blockRow
	err = r.db.WithContext(ctx).
		Where("chain_id = ? AND height = ?", chainRowID, height).
		Take(&row).Error
	if err != nil {
		err = classify("find block", height, err)
		return nil, err
	}

	b := row.toModel()
	return &b, nil
}
