// Package explorer serves read queries over indexed chain data.
package explorer

import (
	"context"
	"errors"
	"fmt"
	"strings"

	lru "github.com/hashicorp/golang-lru"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/blockinsight7000-cosmos/internal/cosmos/model"
)

const (
	DefaultChainCacheSize = 64

	defaultPageLimit = 20
	maxPageLimit     = 100
)

// ErrInvalidArgument reports a malformed query parameter.
var ErrInvalidArgument = errors.New("invalid argument")

// ExplorerService answers chain, block and transaction lookups. Chains are
// addressed by their external id and resolved through an LRU cache.
type ExplorerService struct {
	repo   Repository
	chains *lru.Cache
	logger *zap.Logger
}

func NewExplorerService(repo Repository, cacheSize int, logger *zap.Logger) (*ExplorerService, error) {
	if cacheSize <= 0 {
		cacheSize = DefaultChainCacheSize
	}
	cache, err := lru.New(cacheSize)
	if err != nil {
		return nil, fmt.Errorf("create chain cache: %w", err)
	}
	return &ExplorerService{
		repo:   repo,
		chains: cache,
		logger: logger,
	}, nil
}

func (s *ExplorerService) AllChains(ctx context.Context) ([]model.Chain, error) {
	chains, err := s.repo.AllChains(ctx)
	if err != nil {
		return nil, err
	}
	for i := range chains {
		c := chains[i]
		s.chains.Add(c.ChainID, &c)
	}
	return chains, nil
}

func (s *ExplorerService) LatestBlock(ctx context.Context, chainID string) (*model.Block, error) {
	c, err := s.chain(ctx, chainID)
	if err != nil {
		return nil, err
	}
	return s.repo.LatestBlock(ctx, c.ID)
}

// ListBlocks pages blocks from the newest down. A zero limit means the
// default page size; limits above the maximum are capped.
func (s *ExplorerService) ListBlocks(ctx context.Context, chainID string, limit, offset int) ([]model.Block, error) {
	switch {
	case limit < 0:
		return nil, fmt.Errorf("%w: limit %d", ErrInvalidArgument, limit)
	case offset < 0:
		return nil, fmt.Errorf("%w: offset %d", ErrInvalidArgument, offset)
	case limit == 0:
		limit = defaultPageLimit
	case limit > maxPageLimit:
		limit = maxPageLimit
	}

	c, err := s.chain(ctx, chainID)
	if err != nil {
		return nil, err
	}
	return s.repo.ListBlocks(ctx, c.ID, limit, offset)
}

func (s *ExplorerService) BlockByHeight(ctx context.Context, chainID string, height int64) (*model.Block, error) {
	if height <= 0 {
		return nil, fmt.Errorf("%w: height %d", ErrInvalidArgument, height)
	}
	c, err := s.chain(ctx, chainID)
	if err != nil {
		return nil, err
	}
	return s.repo.FindBlockByHeight(ctx, c.ID, height)
}

func (s *ExplorerService) TransactionsAtHeight(ctx context.Context, chainID string, height int64) ([]model.Transaction, error) {
	if height <= 0 {
		return nil, fmt.Errorf("%w: height %d", ErrInvalidArgument, height)
	}
	c, err := s.chain(ctx, chainID)
	if err != nil {
		return nil, err
	}
	return s.repo.ListTransactionsAtHeight(ctx, c.ID, height)
}

// TransactionByHash returns the transaction with its messages and events.
// Hashes are matched case-insensitively.
func (s *ExplorerService) TransactionByHash(ctx context.Context, hash string) (*model.TransactionDetail, error) {
	if hash == "" {
		return nil, fmt.Errorf("%w: empty transaction hash", ErrInvalidArgument)
	}
	hash = strings.ToUpper(hash)

	tx, err := s.repo.FindTransactionByHash(ctx, hash)
	if err != nil {
		return nil, err
	}
	messages, err := s.repo.ListMessagesByTransaction(ctx, tx.ID)
	if err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}
	events, err := s.repo.ListEventsByTransaction(ctx, hash)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}

	tx.Messages = messages
	return &model.TransactionDetail{Transaction: *tx, Events: events}, nil
}

func (s *ExplorerService) chain(ctx context.Context, chainID string) (*model.Chain, error) {
	if chainID == "" {
		return nil, fmt.Errorf("%w: empty chain id", ErrInvalidArgument)
	}
	if v, ok := s.chains.Get(chainID); ok {
		return v.(*model.Chain), nil
	}

	c, err := s.repo.FindChainByExternalID(ctx, chainID)
	if err != nil {
		return nil, err
	}
	s.chains.Add(chainID, c)
	s.logger.Debug("chain cached", zap.String("chain_id", chainID), zap.Int64("chain_row_id", c.ID))
	return c, nil
}
