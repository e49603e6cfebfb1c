package exporter

import (
	"context"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-cosmos/internal/cosmos/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	ClickhouseRepository interface {
		InsertBlocks(ctx context.Context, chainID string, blocks []model.Block) error
		InsertTransactions(ctx context.Context, chainID string, txs []model.Transaction) error
		InsertEvents(ctx context.Context, chainID string, events []model.Event) error
		MaxBlockHeight(ctx context.Context, chainID string) (int64, error)
	}
	ExporterMetrics interface {
		ObserveFlush(kind string, size int, err error, started time.Time)
	}
)
