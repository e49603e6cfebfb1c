package transport

import (
	"context"

	"github.com/goodnatureofminers/blockinsight7000-cosmos/internal/cosmos/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	ExplorerService interface {
		AllChains(ctx context.Context) ([]model.Chain, error)
		LatestBlock(ctx context.Context, chainID string) (*model.Block, error)
		ListBlocks(ctx context.Context, chainID string, limit, offset int) ([]model.Block, error)
		BlockByHeight(ctx context.Context, chainID string, height int64) (*model.Block, error)
		TransactionsAtHeight(ctx context.Context, chainID string, height int64) ([]model.Transaction, error)
		TransactionByHash(ctx context.Context, hash string) (*model.TransactionDetail, error)
	}
)
