package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/blockinsight7000-cosmos/internal/cosmos/repository/clickhouse"
	"github.com/goodnatureofminers/blockinsight7000-cosmos/internal/cosmos/repository/relational"
	"github.com/goodnatureofminers/blockinsight7000-cosmos/internal/cosmos/service/exporter"
	"github.com/goodnatureofminers/blockinsight7000-cosmos/internal/cosmos/service/indexer"
	"github.com/goodnatureofminers/blockinsight7000-cosmos/internal/cosmos/tendermint"
	"github.com/goodnatureofminers/blockinsight7000-cosmos/internal/metrics"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()

	cfg, err := parseConfig(os.Args[1:])
	if err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		logger.Fatal("failed to parse flags", zap.Error(err))
	}

	if err := run(ctx, cfg, logger); err != nil && !errors.Is(err, context.Canceled) {
		logger.Fatal("cosmos indexer failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	startMetricsServer(ctx, cfg.MetricsAddr, logger)

	repo, err := relational.NewRepository(relational.Config{
		Driver:          cfg.DBDriver,
		DSN:             cfg.PostgresDSN,
		MaxOpenConns:    cfg.FetchConcurrency,
		MaxIdleConns:    cfg.FetchConcurrency,
		ConnMaxLifetime: 30 * time.Minute,
		SlowThreshold:   time.Second,
	}, metrics.NewPostgresRepository(), logger.Named("gorm"))
	if err != nil {
		return fmt.Errorf("init repository: %w", err)
	}
	defer func() {
		if err := repo.Close(); err != nil {
			logger.Warn("close repository", zap.Error(err))
		}
	}()
	if cfg.AutoMigrate {
		if err := repo.AutoMigrate(ctx); err != nil {
			return fmt.Errorf("auto migrate: %w", err)
		}
	}

	client, err := tendermint.NewClient(tendermint.Config{
		RPCURL:           cfg.RPCURL,
		RESTURL:          cfg.RESTURL,
		Timeout:          cfg.RPCTimeout,
		Retries:          cfg.RPCRetries,
		RPS:              cfg.RPCRPS,
		Base64Attributes: cfg.Base64Attribute,
	}, metrics.NewRPCClient(cfg.ChainID))
	if err != nil {
		return fmt.Errorf("init tendermint client: %w", err)
	}

	var mirror indexer.Exporter
	if cfg.ClickhouseDSN != "" {
		chRepo, err := clickhouse.NewRepository(cfg.ClickhouseDSN, metrics.NewClickhouseRepository())
		if err != nil {
			return fmt.Errorf("init clickhouse repository: %w", err)
		}
		defer func() {
			_ = chRepo.Close()
		}()

		exp, err := exporter.NewExporterService(exporter.Config{
			ChainID: cfg.ChainID,
			RPS:     cfg.ExportRPS,
		}, chRepo, metrics.NewExporter(cfg.ChainID), logger.Named("exporter"))
		if err != nil {
			return fmt.Errorf("init exporter: %w", err)
		}
		exp.Start(ctx)
		defer exp.Stop()
		mirror = exp
	}

	svc, err := indexer.NewIndexerService(indexer.Config{
		Chain: indexer.ChainConfig{
			ChainID:     cfg.ChainID,
			ChainName:   cfg.ChainName,
			IconURL:     optional(cfg.ChainIconURL),
			Website:     optional(cfg.ChainWebsite),
			StartHeight: cfg.StartHeight,
			Resume:      cfg.Resume == "true",
		},
		FetchConcurrency: cfg.FetchConcurrency,
		TxConcurrency:    cfg.TxConcurrency,
		JournalLimit:     cfg.JournalLimit,
		FetchAttempts:    cfg.FetchAttempts,
		CommitAttempts:   cfg.CommitAttempts,
	}, client, repo, mirror, metrics.NewIndexer(cfg.ChainID), logger)
	if err != nil {
		return err
	}
	return svc.Run(ctx)
}

func startMetricsServer(ctx context.Context, addr string, logger *zap.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Info("starting metrics server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server failed", zap.Error(err))
		}
	}()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("metrics server shutdown failed", zap.Error(err))
		}
	}()
}
