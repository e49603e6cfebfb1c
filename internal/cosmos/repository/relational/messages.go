package relational

import (
	"context"
	"time"

	"gorm.io/datatypes"

	"github.com/goodnatureofminers/blockinsight7000-cosmos/internal/cosmos/model"
	"github.com/goodnatureofminers/blockinsight7000-cosmos/pkg/safe"
)

// InsertMessages stores the messages of one transaction.
func (r *Repository) InsertMessages(ctx context.Context, transactionID int64, messages []model.Message) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("insert_messages", err, start)
	}()

	if len(messages) == 0 {
		return nil
	}

	now := r.now()
	rows := make([]messageRow, 0, len(messages))
	for _, m := range messages {
		seq, convErr := safe.Int32(m.Seq)
		if convErr != nil {
			err = classify("insert messages", 0, convErr)
			return err
		}
		rows = append(rows, messageRow{
			TransactionID: transactionID,
			Seq:           seq,
			RawData:       datatypes.JSON(m.RawData),
			InsertedAt:    now,
		})
	}

	if err = r.db.WithContext(ctx).Create(&rows).Error; err != nil {
		err = classify("insert messages", 0, err)
		return err
	}
	return nil
}

// ListMessagesByTransaction returns a transaction's messages ordered by seq.
func (r *Repository) ListMessagesByTransaction(ctx context.Context, transactionID int64) ([]model.Message, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("list_messages_by_transaction", err, start)
	}()

	var rows []messageRow
	err = r.db.WithContext(ctx).
		Where("transaction_id = ?", transactionID).
		Order("seq").
		Find(&rows).Error
	if err != nil {
		err = classify("list messages", 0, err)
		return nil, err
	}

	messages := make([]model.Message, 0, len(rows))
	for _, row := range rows {
		messages = append(messages, row.toModel())
	}
	return messages, nil
}
