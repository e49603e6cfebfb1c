package indexer

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/goodnatureofminers/blockinsight7000-cosmos/internal/clock"
	"github.com/goodnatureofminers/blockinsight7000-cosmos/internal/cosmos/model"
)

// Config tunes the indexing pipeline. Zero values fall back to defaults.
type Config struct {
	Chain            ChainConfig
	FetchConcurrency int
	TxConcurrency    int
	JournalLimit     int
	FetchAttempts    int
	CommitAttempts   int
}

func (c *Config) applyDefaults() {
	if c.FetchConcurrency <= 0 {
		c.FetchConcurrency = defaultFetchConcurrency
	}
	if c.TxConcurrency <= 0 {
		c.TxConcurrency = defaultTxConcurrency
	}
	if c.JournalLimit <= 0 {
		c.JournalLimit = defaultJournalLimit
	}
	if c.FetchAttempts <= 0 {
		c.FetchAttempts = defaultFetchAttempts
	}
	if c.CommitAttempts <= 0 {
		c.CommitAttempts = defaultCommitAttempts
	}
}

// IndexerService fetches blocks of one chain concurrently and commits them
// in strictly ascending height order.
type IndexerService struct {
	cfg          Config
	logger       *zap.Logger
	metrics      IndexerMetrics
	bootstrapper *bootstrapper
	sequencer    *sequencer
	committer    *committer
}

// NewIndexerService builds an IndexerService. exporter may be nil.
func NewIndexerService(
	cfg Config,
	client ChainClient,
	repo Repository,
	exporter Exporter,
	metrics IndexerMetrics,
	logger *zap.Logger,
) (*IndexerService, error) {
	if metrics == nil {
		return nil, errors.New("indexer metrics is required")
	}
	if err := cfg.Chain.Validate(); err != nil {
		return nil, fmt.Errorf("chain config: %w", err)
	}
	cfg.applyDefaults()

	logger = logger.With(zap.String("chain_id", cfg.Chain.ChainID))

	return &IndexerService{
		cfg:     cfg,
		logger:  logger,
		metrics: metrics,
		bootstrapper: &bootstrapper{
			repo:   repo,
			logger: logger.Named("bootstrap"),
		},
		sequencer: &sequencer{
			fetcher: &blockFetcher{
				client:      client,
				workerCount: cfg.TxConcurrency,
			},
			metrics:          metrics,
			logger:           logger.Named("sequencer"),
			sleep:            clock.SleepWithContext,
			fetchConcurrency: cfg.FetchConcurrency,
			journalLimit:     cfg.JournalLimit,
			fetchAttempts:    cfg.FetchAttempts,
			drainInterval:    drainInterval,
			pollInitial:      notYetAvailableInitialWait,
			pollMax:          notYetAvailableMaxWait,
			retryInitial:     retryInitialWait,
			retryMax:         retryMaxWait,
		},
		committer: &committer{
			repo:           repo,
			exporter:       exporter,
			metrics:        metrics,
			logger:         logger.Named("committer"),
			sleep:          clock.SleepWithContext,
			commitAttempts: cfg.CommitAttempts,
			retryInitial:   retryInitialWait,
			retryMax:       retryMaxWait,
		},
	}, nil
}

// Run indexes until ctx is canceled or a non-retryable error occurs.
func (s *IndexerService) Run(ctx context.Context) error {
	row, start, err := s.bootstrapper.Resolve(ctx, s.cfg.Chain)
	if err != nil {
		return fmt.Errorf("bootstrap: %w", err)
	}
	s.logger.Info("indexing started",
		zap.Int64("chain_row_id", row.ID),
		zap.Int64("start_height", start),
		zap.Int("fetch_concurrency", s.cfg.FetchConcurrency))
	s.metrics.ObserveCheckpoint(start)

	blocks := make(chan *model.CommittedBlock, blockChannelCapacity)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return s.sequencer.Run(gctx, start, blocks)
	})
	g.Go(func() error {
		return s.committer.Run(gctx, row.ID, start, blocks)
	})

	err = g.Wait()
	if err != nil && !errors.Is(err, context.Canceled) {
		s.logger.Error("indexing stopped", zap.Error(err))
	}
	return err
}
