package indexer

import (
	"context"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-cosmos/internal/cosmos/chain"
	"github.com/goodnatureofminers/blockinsight7000-cosmos/internal/cosmos/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	ChainClient interface {
		chain.Client
	}
	BlockWriter interface {
		chain.BlockWriter
	}
	Repository interface {
		FindChainByExternalID(ctx context.Context, chainID string) (*model.Chain, error)
		InsertChain(ctx context.Context, c model.NewChain) (int64, error)
		MaxCommittedHeight(ctx context.Context, chainRowID int64) (int64, error)
		WithinTransaction(ctx context.Context, fn func(ctx context.Context, w chain.BlockWriter) error) error
	}
	BlockFetcher interface {
		Fetch(ctx context.Context, height int64) (*model.CommittedBlock, error)
	}
	Exporter interface {
		Export(ctx context.Context, block *model.CommittedBlock) error
	}
	IndexerMetrics interface {
		ObserveFetchHeight(err error, height int64, started time.Time)
		ObserveNotYetAvailable(height int64)
		ObserveCommitHeight(err error, height int64, started time.Time)
		ObserveCheckpoint(height int64)
		ObserveJournalSize(size int)
	}
)
