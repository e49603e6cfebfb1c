package exporter

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/blockinsight7000-cosmos/internal/cosmos/model"
	"github.com/goodnatureofminers/blockinsight7000-cosmos/pkg/batcher"
)

const (
	kindBatch        = "batch"
	kindBlocks       = "blocks"
	kindTransactions = "transactions"
	kindEvents       = "events"
	kindDropped      = "dropped"
)

// Config tunes the mirror batching. Zero values fall back to defaults.
type Config struct {
	ChainID       string
	FlushSize     int
	FlushInterval time.Duration
	// RPS limits flushes per second; zero means unlimited.
	RPS int
}

// ExporterService mirrors committed blocks into the ClickHouse analytics
// tables. Blocks are buffered and written in batches; a failed batch is
// logged and dropped.
type ExporterService struct {
	chainID  string
	repo     ClickhouseRepository
	metrics  ExporterMetrics
	logger   *zap.Logger
	batcher  *batcher.Batcher[*model.CommittedBlock]
	mirrored atomic.Int64
}

func NewExporterService(
	cfg Config,
	repo ClickhouseRepository,
	metrics ExporterMetrics,
	logger *zap.Logger,
) (*ExporterService, error) {
	if cfg.ChainID == "" {
		return nil, errors.New("chain id is required")
	}
	if metrics == nil {
		return nil, errors.New("exporter metrics is required")
	}
	if cfg.FlushSize <= 0 {
		cfg.FlushSize = defaultFlushSize
	}
	if cfg.FlushInterval <= 0 {
		cfg.FlushInterval = defaultFlushInterval
	}

	s := &ExporterService{
		chainID: cfg.ChainID,
		repo:    repo,
		metrics: metrics,
		logger:  logger.With(zap.String("chain_id", cfg.ChainID)),
	}
	s.batcher = batcher.New[*model.CommittedBlock](
		"clickhouse",
		s.logger,
		s.flush,
		cfg.FlushSize,
		cfg.FlushInterval,
		batcher.WithObserver[*model.CommittedBlock](func(size int, err error, started time.Time) {
			s.metrics.ObserveFlush(kindBatch, size, err, started)
		}),
		batcher.WithRate[*model.CommittedBlock](cfg.RPS),
	)
	return s, nil
}

// Start loads the highest mirrored height and starts the background flush
// loop. Heights at or below it are skipped by Export.
func (s *ExporterService) Start(ctx context.Context) {
	height, err := s.repo.MaxBlockHeight(ctx, s.chainID)
	if err != nil {
		s.logger.Warn("load mirrored height failed, mirroring everything", zap.Error(err))
		height = 0
	}
	s.mirrored.Store(height)
	s.logger.Info("clickhouse mirror started", zap.Int64("mirrored_height", height))

	s.batcher.Start(ctx)
}

// Stop flushes buffered blocks and stops the flush loop.
func (s *ExporterService) Stop() {
	s.batcher.Stop()
}

// Export queues block for mirroring without waiting on ClickHouse. When the
// buffer is full the block is dropped from the mirror and counted.
func (s *ExporterService) Export(ctx context.Context, block *model.CommittedBlock) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if block.Height() <= s.mirrored.Load() {
		return nil
	}

	err := s.batcher.TryAdd(block)
	if errors.Is(err, batcher.ErrFull) {
		s.metrics.ObserveFlush(kindDropped, 1, err, time.Now())
		s.logger.Warn("mirror buffer full, block not mirrored", zap.Int64("height", block.Height()))
		return nil
	}
	return err
}

// flush writes events and transactions before blocks so the block table
// height never runs ahead of the other tables.
func (s *ExporterService) flush(ctx context.Context, blocks []*model.CommittedBlock) error {
	headers := make([]model.Block, 0, len(blocks))
	var (
		txs    []model.Transaction
		events []model.Event
	)
	for _, b := range blocks {
		headers = append(headers, b.Block)
		txs = append(txs, b.Txs...)
		events = append(events, b.Events...)
	}

	for start := 0; start < len(events); start += eventFlushThreshold {
		end := min(start+eventFlushThreshold, len(events))
		if err := s.insert(kindEvents, len(events[start:end]), func() error {
			return s.repo.InsertEvents(ctx, s.chainID, events[start:end])
		}); err != nil {
			return err
		}
	}
	if len(txs) > 0 {
		if err := s.insert(kindTransactions, len(txs), func() error {
			return s.repo.InsertTransactions(ctx, s.chainID, txs)
		}); err != nil {
			return err
		}
	}
	if err := s.insert(kindBlocks, len(headers), func() error {
		return s.repo.InsertBlocks(ctx, s.chainID, headers)
	}); err != nil {
		return err
	}

	s.mirrored.Store(headers[len(headers)-1].Height)
	return nil
}

func (s *ExporterService) insert(kind string, size int, write func() error) error {
	started := time.Now()
	err := write()
	s.metrics.ObserveFlush(kind, size, err, started)
	if err != nil {
		return err
	}
	s.logger.Debug("mirrored", zap.String("kind", kind), zap.Int("count", size))
	return nil
}
