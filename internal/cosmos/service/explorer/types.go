package explorer

import (
	"context"

	"github.com/goodnatureofminers/blockinsight7000-cosmos/internal/cosmos/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Repository interface {
		AllChains(ctx context.Context) ([]model.Chain, error)
		FindChainByExternalID(ctx context.Context, chainID string) (*model.Chain, error)
		LatestBlock(ctx context.Context, chainRowID int64) (*model.Block, error)
		ListBlocks(ctx context.Context, chainRowID int64, limit, offset int) ([]model.Block, error)
		FindBlockByHeight(ctx context.Context, chainRowID, height int64) (*model.Block, error)
		ListTransactionsAtHeight(ctx context.Context, chainRowID, height int64) ([]model.Transaction, error)
		FindTransactionByHash(ctx context.Context, hash string) (*model.Transaction, error)
		ListMessagesByTransaction(ctx context.Context, transactionID int64) ([]model.Message, error)
		ListEventsByTransaction(ctx context.Context, hash string) ([]model.Event, error)
	}
)
