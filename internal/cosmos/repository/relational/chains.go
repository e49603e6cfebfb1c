package relational

import (
	"context"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-cosmos/internal/cosmos/model"
)

// FindChainByExternalID returns the registration row of chainID or
// chain.ErrNotFound.
func (r *Repository) FindChainByExternalID(ctx context.Context, chainID string) (*model.Chain, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("find_chain_by_external_id", err, start)
	}()

	var row chainRow
	if err = r.db.WithContext(ctx).Where("chain_id = ?", chainID).Take(&row).Error; err != nil {
		err = classify("find chain "+chainID, 0, err)
		return nil, err
	}

	c := row.toModel()
	return &c, nil
}

// InsertChain creates a chain registration and returns its row id.
func (r *Repository) InsertChain(ctx context.Context, c model.NewChain) (int64, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("insert_chain", err, start)
	}()

	row := chainRow{
		ChainID:    c.ChainID,
		ChainName:  c.ChainName,
		IconURL:    c.IconURL,
		Website:    c.Website,
		InsertedAt: r.now(),
	}
	if err = r.db.WithContext(ctx).Create(&row).Error; err != nil {
		err = classify("insert chain "+c.ChainID, 0, err)
		return 0, err
	}
	return row.ID, nil
}

// AllChains lists every registered chain in registration order.
func (r *Repository) AllChains(ctx context.Context) ([]model.Chain, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("all_chains", err, start)
	}()

	var rows []chainRow
	if err = r.db.WithContext(ctx).Order("id").Find(&rows).Error; err != nil {
		err = classify("list chains", 0, err)
		return nil, err
	}

	chains := make([]model.Chain, 0, len(rows))
	for _, row := range rows {
		chains = append(chains, row.toModel())
	}
	return chains, nil
}
