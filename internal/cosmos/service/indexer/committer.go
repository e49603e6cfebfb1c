package indexer

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/blockinsight7000-cosmos/internal/clock"
	"github.com/goodnatureofminers/blockinsight7000-cosmos/internal/cosmos/chain"
	"github.com/goodnatureofminers/blockinsight7000-cosmos/internal/cosmos/model"
)

// committer persists ordered blocks, one storage transaction per height.
type committer struct {
	repo           Repository
	exporter       Exporter
	metrics        IndexerMetrics
	logger         *zap.Logger
	sleep          clock.Sleeper
	commitAttempts int
	retryInitial   time.Duration
	retryMax       time.Duration
}

// Run commits blocks from in until it is closed or ctx is done. checkpoint
// is the height the first block must have.
func (c *committer) Run(ctx context.Context, chainRowID, checkpoint int64, in <-chan *model.CommittedBlock) error {
	for {
		var (
			block *model.CommittedBlock
			ok    bool
		)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case block, ok = <-in:
			if !ok {
				return nil
			}
		}

		if block.Height() != checkpoint {
			return chain.Fatal("commit block", block.Height(), fmt.Errorf("expected height %d", checkpoint))
		}
		if err := c.commitWithRetry(ctx, chainRowID, block); err != nil {
			return err
		}

		checkpoint++
		c.metrics.ObserveCheckpoint(checkpoint)
		c.logger.Debug("block committed",
			zap.Int64("height", block.Height()),
			zap.Int("txs", len(block.Txs)),
			zap.Int("events", len(block.Events)))

		if c.exporter != nil {
			if err := c.exporter.Export(ctx, block); err != nil {
				c.logger.Warn("export block failed", zap.Int64("height", block.Height()), zap.Error(err))
			}
		}
	}
}

// commitWithRetry retries transient failures with the same in-memory block.
// Storage conflicts and other non-transient failures are returned at once.
func (c *committer) commitWithRetry(ctx context.Context, chainRowID int64, block *model.CommittedBlock) error {
	retry := clock.NewExponential(c.retryInitial, c.retryMax, c.commitAttempts-1)

	for {
		started := time.Now()
		err := c.Commit(ctx, chainRowID, block)
		c.metrics.ObserveCommitHeight(err, block.Height(), started)

		switch {
		case err == nil:
			return nil
		case ctx.Err() != nil:
			return ctx.Err()
		case !chain.IsRetryable(err):
			return err
		}

		wait, sleepErr := clock.Backoff(ctx, c.sleep, retry)
		if errors.Is(sleepErr, clock.ErrRetriesExhausted) {
			return chain.Fatal("commit block", block.Height(),
				fmt.Errorf("giving up after %d attempts: %w", c.commitAttempts, err))
		}
		if sleepErr != nil {
			return sleepErr
		}
		c.logger.Warn("commit failed, retried after backoff",
			zap.Int64("height", block.Height()), zap.Duration("sleep", wait), zap.Error(err))
	}
}

// Commit writes the block, its transactions with their messages, and all
// events in one transaction.
func (c *committer) Commit(ctx context.Context, chainRowID int64, block *model.CommittedBlock) error {
	return c.repo.WithinTransaction(ctx, func(ctx context.Context, w chain.BlockWriter) error {
		if _, err := w.InsertBlock(ctx, chainRowID, block.Block); err != nil {
			return err
		}
		for _, tx := range block.Txs {
			id, err := w.InsertTransaction(ctx, chainRowID, tx)
			if err != nil {
				return err
			}
			if err := w.InsertMessages(ctx, id, tx.Messages); err != nil {
				return err
			}
		}
		return w.InsertEvents(ctx, chainRowID, block.Events)
	})
}
