package indexer

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/blockinsight7000-cosmos/internal/cosmos/chain"
	"github.com/goodnatureofminers/blockinsight7000-cosmos/internal/cosmos/model"
)

// ChainConfig identifies the indexed chain and where indexing starts.
type ChainConfig struct {
	ChainID     string
	ChainName   string
	IconURL     *string
	Website     *string
	StartHeight int64
	// Resume continues after the highest stored height when there is one.
	Resume bool
}

func (c ChainConfig) Validate() error {
	if c.ChainID == "" {
		return errors.New("chain id is required")
	}
	if c.ChainName == "" {
		return errors.New("chain name is required")
	}
	if c.StartHeight <= 0 {
		return fmt.Errorf("start height must be positive, got %d", c.StartHeight)
	}
	return nil
}

type bootstrapper struct {
	repo   Repository
	logger *zap.Logger
}

// Resolve returns the chain row, creating it when absent, and the first
// height to fetch.
func (b *bootstrapper) Resolve(ctx context.Context, cfg ChainConfig) (*model.Chain, int64, error) {
	row, err := b.resolveChain(ctx, cfg)
	if err != nil {
		return nil, 0, err
	}

	if !cfg.Resume {
		return row, cfg.StartHeight, nil
	}

	maxHeight, err := b.repo.MaxCommittedHeight(ctx, row.ID)
	switch {
	case errors.Is(err, chain.ErrNotFound):
		return row, cfg.StartHeight, nil
	case err != nil:
		return nil, 0, fmt.Errorf("resolve resume height: %w", err)
	}
	return row, maxHeight + 1, nil
}

func (b *bootstrapper) resolveChain(ctx context.Context, cfg ChainConfig) (*model.Chain, error) {
	row, err := b.repo.FindChainByExternalID(ctx, cfg.ChainID)
	if err == nil {
		return row, nil
	}
	if !errors.Is(err, chain.ErrNotFound) {
		return nil, fmt.Errorf("find chain %s: %w", cfg.ChainID, err)
	}

	_, err = b.repo.InsertChain(ctx, model.NewChain{
		ChainID:   cfg.ChainID,
		ChainName: cfg.ChainName,
		IconURL:   cfg.IconURL,
		Website:   cfg.Website,
	})
	switch {
	case err == nil:
		b.logger.Info("chain registered", zap.String("chain_name", cfg.ChainName))
	case errors.Is(err, chain.ErrStorageConflict):
		b.logger.Info("chain registered concurrently, re-reading")
	default:
		return nil, fmt.Errorf("insert chain %s: %w", cfg.ChainID, err)
	}

	row, err = b.repo.FindChainByExternalID(ctx, cfg.ChainID)
	if err != nil {
		return nil, fmt.Errorf("re-read chain %s: %w", cfg.ChainID, err)
	}
	return row, nil
}
