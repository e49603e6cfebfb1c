package clickhouse

import (
	"context"
	"fmt"
	"time"
)

const maxBlockHeightQuery = `
SELECT coalesce(max(height), toInt64(0)) AS max_height
FROM cosmos_blocks
WHERE chain_id = ?`

// MaxBlockHeight returns the highest mirrored height of a chain, zero when
// nothing is mirrored yet.
func (r *Repository) MaxBlockHeight(ctx context.Context, chainID string) (height int64, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("max_block_height", chainID, err, start)
	}()

	rows, err := r.conn.Query(ctx, maxBlockHeightQuery, chainID)
	if err != nil {
		return 0, fmt.Errorf("query max block height: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", closeErr)
		}
	}()

	if !rows.Next() {
		return 0, fmt.Errorf("max block height of %s not found", chainID)
	}
	if err = rows.Scan(&height); err != nil {
		return 0, fmt.Errorf("scan max block height: %w", err)
	}
	if err = rows.Err(); err != nil {
		return 0, fmt.Errorf("iterate max block height: %w", err)
	}

	return height, nil
}
