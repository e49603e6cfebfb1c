package indexer

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/goodnatureofminers/blockinsight7000-cosmos/internal/clock"
	"github.com/goodnatureofminers/blockinsight7000-cosmos/internal/cosmos/chain"
	"github.com/goodnatureofminers/blockinsight7000-cosmos/internal/cosmos/model"
)

// sequencer fetches heights concurrently and releases them strictly in
// ascending order. The dispatch cursor advances when a fetch starts; the
// checkpoint advances when a block is handed downstream.
type sequencer struct {
	fetcher          BlockFetcher
	metrics          IndexerMetrics
	logger           *zap.Logger
	sleep            clock.Sleeper
	fetchConcurrency int
	journalLimit     int
	fetchAttempts    int
	drainInterval    time.Duration
	pollInitial      time.Duration
	pollMax          time.Duration
	retryInitial     time.Duration
	retryMax         time.Duration
}

// Run dispatches heights from start on and sends completed blocks to out in
// order. out is closed when Run returns.
func (s *sequencer) Run(ctx context.Context, start int64, out chan<- *model.CommittedBlock) error {
	defer close(out)

	j := newJournal()
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return s.dispatch(gctx, start, j)
	})
	g.Go(func() error {
		return s.drain(gctx, start, j, out)
	})
	return g.Wait()
}

func (s *sequencer) dispatch(ctx context.Context, start int64, j *journal) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.fetchConcurrency)

	for cursor := start; gctx.Err() == nil; cursor++ {
		if err := s.waitForRoom(gctx, j); err != nil {
			break
		}

		height := cursor
		g.Go(func() error {
			block, err := s.fetchWithRetry(gctx, height)
			if err != nil {
				return err
			}
			if !j.put(block) {
				return chain.Fatal("journal", height, errors.New("height fetched twice"))
			}
			s.metrics.ObserveJournalSize(j.len())
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}
	return ctx.Err()
}

// waitForRoom pauses dispatching while the journal is at its limit.
func (s *sequencer) waitForRoom(ctx context.Context, j *journal) error {
	for j.len() >= s.journalLimit {
		if err := s.sleep(ctx, s.drainInterval); err != nil {
			return err
		}
	}
	return ctx.Err()
}

func (s *sequencer) drain(ctx context.Context, checkpoint int64, j *journal, out chan<- *model.CommittedBlock) error {
	ticker := time.NewTicker(s.drainInterval)
	defer ticker.Stop()

	for {
		for {
			block, ok := j.take(checkpoint)
			if !ok {
				break
			}
			select {
			case out <- block:
			case <-ctx.Done():
				return ctx.Err()
			}
			checkpoint++
			s.metrics.ObserveJournalSize(j.len())
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

// fetchWithRetry polls a height above the chain head until it appears and
// retries transient failures a bounded number of times. Every other failure
// ends the pipeline.
func (s *sequencer) fetchWithRetry(ctx context.Context, height int64) (*model.CommittedBlock, error) {
	poll := clock.NewPolling(s.pollInitial, s.pollMax)
	retry := clock.NewExponential(s.retryInitial, s.retryMax, s.fetchAttempts-1)

	for {
		started := time.Now()
		block, err := s.fetcher.Fetch(ctx, height)
		s.metrics.ObserveFetchHeight(err, height, started)

		switch {
		case err == nil:
			return block, nil
		case ctx.Err() != nil:
			return nil, ctx.Err()
		case chain.IsNotYetAvailable(err):
			s.metrics.ObserveNotYetAvailable(height)
			wait := poll.NextBackOff()
			s.logger.Debug("height not yet available", zap.Int64("height", height), zap.Duration("sleep", wait))
			if sleepErr := s.sleep(ctx, wait); sleepErr != nil {
				return nil, sleepErr
			}
		case chain.IsRetryable(err):
			wait, sleepErr := clock.Backoff(ctx, s.sleep, retry)
			if errors.Is(sleepErr, clock.ErrRetriesExhausted) {
				return nil, chain.Fatal("fetch height", height,
					fmt.Errorf("giving up after %d attempts: %w", s.fetchAttempts, err))
			}
			if sleepErr != nil {
				return nil, sleepErr
			}
			s.logger.Warn("fetch height failed, retried after backoff",
				zap.Int64("height", height), zap.Duration("sleep", wait), zap.Error(err))
		default:
			return nil, fmt.Errorf("fetch height %d: %w", height, err)
		}
	}
}
