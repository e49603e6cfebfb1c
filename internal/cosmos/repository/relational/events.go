package relational

import (
	"context"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-cosmos/internal/cosmos/model"
	"github.com/goodnatureofminers/blockinsight7000-cosmos/pkg/safe"
)

// insertEventsBatch bounds the bind parameters of one INSERT statement.
const insertEventsBatch = 500

// InsertEvents stores flattened event rows in the given order.
func (r *Repository) InsertEvents(ctx context.Context, chainRowID int64, events []model.Event) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("insert_events", err, start)
	}()

	if len(events) == 0 {
		return nil
	}

	height := events[0].BlockHeight
	now := r.now()
	rows := make([]eventRow, 0, len(events))
	for _, e := range events {
		seq, convErr := safe.Int32(e.Seq)
		if convErr != nil {
			err = classify("insert events", height, convErr)
			return err
		}
		rows = append(rows, eventRow{
			ChainRowID:  chainRowID,
			Origin:      int16(e.Origin),
			TxHash:      e.TxHash,
			BlockHeight: e.BlockHeight,
			Seq:         seq,
			Type:        e.Type,
			Key:         e.Key,
			Value:       e.Value,
			Indexed:     e.Indexed,
			InsertedAt:  now,
		})
	}

	if err = r.db.WithContext(ctx).CreateInBatches(&rows, insertEventsBatch).Error; err != nil {
		err = classify("insert events", height, err)
		return err
	}
	return nil
}

// ListEventsByTransaction returns the events of a transaction in stored order.
func (r *Repository) ListEventsByTransaction(ctx context.Context, hash string) ([]model.Event, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("list_events_by_transaction", err, start)
	}()

	var rows []eventRow
	err = r.db.WithContext(ctx).
		Where("transaction_hash = ? AND tx_type = ?", hash, int16(model.EventOriginTransaction)).
		Order("id").
		Find(&rows).Error
	if err != nil {
		err = classify("list events", 0, err)
		return nil, err
	}

	events := make([]model.Event, 0, len(rows))
	for _, row := range rows {
		events = append(events, row.toModel())
	}
	return events, nil
}
