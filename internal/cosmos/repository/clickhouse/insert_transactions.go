package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-cosmos/internal/cosmos/model"
)

const insertTransactionsQuery = `
INSERT INTO cosmos_transactions (
	chain_id,
	height,
	hash,
	code,
	code_space,
	gas_wanted,
	gas_used,
	memo,
	message_count
) VALUES`

// InsertTransactions stores transaction rows in ClickHouse.
func (r *Repository) InsertTransactions(ctx context.Context, chainID string, txs []model.Transaction) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("insert_transactions", chainID, err, start)
	}()

	if len(txs) == 0 {
		return nil
	}

	batch, err := r.conn.PrepareBatch(ctx, insertTransactionsQuery)
	if err != nil {
		return fmt.Errorf("prepare transactions batch: %w", err)
	}

	for _, tx := range txs {
		if err = batch.Append(
			chainID,
			tx.Height,
			tx.Hash,
			tx.Code,
			tx.CodeSpace,
			tx.GasWanted,
			tx.GasUsed,
			tx.Memo,
			uint32(len(tx.Messages)), //nolint:gosec // message count of one tx
		); err != nil {
			_ = batch.Abort()
			return fmt.Errorf("append transaction %s: %w", tx.Hash, err)
		}
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert transactions: %w", err)
	}
	return nil
}
