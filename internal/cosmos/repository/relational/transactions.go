package relational

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-cosmos/internal/cosmos/chain"
	"github.com/goodnatureofminers/blockinsight7000-cosmos/internal/cosmos/model"
	"github.com/goodnatureofminers/blockinsight7000-cosmos/pkg/safe"
)

// InsertTransaction stores one transaction and returns its row id. Messages
// are stored separately with InsertMessages.
func (r *Repository) InsertTransaction(ctx context.Context, chainRowID int64, tx model.Transaction) (int64, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("insert_transaction", err, start)
	}()

	code, err := safe.Int32(tx.Code)
	if err != nil {
		err = chain.Fatal("insert transaction "+tx.Hash, tx.Height, fmt.Errorf("code: %w", err))
		return 0, err
	}

	row := transactionRow{
		ChainRowID: chainRowID,
		Hash:       tx.Hash,
		Height:     tx.Height,
		Code:       code,
		CodeSpace:  tx.CodeSpace,
		Data:       tx.Data,
		RawLog:     tx.RawLog,
		Info:       tx.Info,
		Memo:       tx.Memo,
		GasWanted:  tx.GasWanted,
		GasUsed:    tx.GasUsed,
		Timestamp:  tx.Timestamp,
		InsertedAt: r.now(),
	}
	if err = r.db.WithContext(ctx).Create(&row).Error; err != nil {
		err = classify("insert transaction "+tx.Hash, tx.Height, err)
		return 0, err
	}
	return row.ID, nil
}

// ListTransactionsAtHeight returns the transactions of one block in insertion
// order, without messages.
func (r *Repository) ListTransactionsAtHeight(ctx context.Context, chainRowID, height int64) ([]model.Transaction, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("list_transactions_at_height", err, start)
	}()

	var rows []transactionRow
	err = r.db.WithContext(ctx).
		Where("chain_id = ? AND height = ?", chainRowID, height).
		Order("id").
		Find(&rows).Error
	if err != nil {
		err = classify("list transactions", height, err)
		return nil, err
	}

	txs := make([]model.Transaction, 0, len(rows))
	for _, row := range rows {
		txs = append(txs, row.toModel())
	}
	return txs, nil
}

// FindTransactionByHash returns a transaction without its messages.
func (r *Repository) FindTransactionByHash(ctx context.Context, hash string) (*model.Transaction, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("find_transaction_by_hash", err, start)
	}()

	var row transactionRow
	if err = r.db.WithContext(ctx).Where("transaction_hash = ?", hash).Take(&row).Error; err != nil {
		err = classify("find transaction "+hash, 0, err)
		return nil, err
	}

	tx := row.toModel()
	return &tx, nil
}
