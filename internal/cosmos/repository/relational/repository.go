package relational

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/goodnatureofminers/blockinsight7000-cosmos/internal/cosmos/chain"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Config selects the database and its connection pool limits.
type Config struct {
	Driver          string
	DSN             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	SlowThreshold   time.Duration
}

// Repository is the relational storage gateway. A Repository returned by
// WithinTransaction is bound to that transaction.
type Repository struct {
	db        *gorm.DB
	metrics   Metrics
	txOptions *sql.TxOptions
	now       func() time.Time
}

// NewRepository opens the database described by cfg.
func NewRepository(cfg Config, metrics Metrics, logger *zap.Logger) (*Repository, error) {
	if cfg.DSN == "" {
		return nil, errors.New("database dsn is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	var (
		dialector gorm.Dialector
		txOptions *sql.TxOptions
	)
	switch cfg.Driver {
	case "", DriverPostgres:
		dialector = postgres.Open(cfg.DSN)
		txOptions = &sql.TxOptions{Isolation: sql.LevelRepeatableRead}
	case DriverSQLite:
		dialector = sqlite.Open(cfg.DSN)
		// one connection keeps a ":memory:" database shared
		cfg.MaxOpenConns = 1
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}

	repo, err := newRepository(dialector, metrics, newGormLogger(logger, cfg.SlowThreshold), txOptions)
	if err != nil {
		return nil, err
	}

	sqlDB, err := repo.db.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql db: %w", err)
	}
	if cfg.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	if cfg.ConnMaxLifetime > 0 {
		sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}
	return repo, nil
}

func newRepository(dialector gorm.Dialector, metrics Metrics, logger gormlogger.Interface, txOptions *sql.TxOptions) (*Repository, error) {
	if metrics == nil {
		return nil, errors.New("metrics is required")
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		SkipDefaultTransaction: true,
		TranslateError:         true,
		Logger:                 logger,
	})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	return &Repository{
		db:        db,
		metrics:   metrics,
		txOptions: txOptions,
		now:       func() time.Time { return time.Now().UTC() },
	}, nil
}

func newGormLogger(logger *zap.Logger, slowThreshold time.Duration) gormlogger.Interface {
	if slowThreshold <= 0 {
		slowThreshold = time.Second
	}
	return gormlogger.New(zap.NewStdLog(logger.Named("gorm")), gormlogger.Config{
		SlowThreshold:             slowThreshold,
		LogLevel:                  gormlogger.Warn,
		IgnoreRecordNotFoundError: true,
	})
}

// AutoMigrate creates the schema from the row definitions. PostgreSQL
// deployments use the SQL migrations instead.
func (r *Repository) AutoMigrate(ctx context.Context) error {
	if err := r.db.WithContext(ctx).AutoMigrate(&chainRow{}, &blockRow{}, &transactionRow{}, &messageRow{}, &eventRow{}); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}

// Close releases the underlying connection pool.
func (r *Repository) Close() error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return fmt.Errorf("get sql db: %w", err)
	}
	return sqlDB.Close()
}

// WithinTransaction runs fn with a writer bound to one database transaction.
// The transaction commits when fn returns nil and rolls back otherwise.
func (r *Repository) WithinTransaction(ctx context.Context, fn func(ctx context.Context, w chain.BlockWriter) error) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("within_transaction", err, start)
	}()

	var opts []*sql.TxOptions
	if r.txOptions != nil {
		opts = append(opts, r.txOptions)
	}

	err = r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(ctx, r.withDB(tx))
	}, opts...)
	if err != nil && chain.KindOf(err) == chain.KindUnknown {
		err = classify("commit transaction", 0, err)
	}
	return err
}

func (r *Repository) withDB(db *gorm.DB) *Repository {
	return &Repository{
		db:        db,
		metrics:   r.metrics,
		txOptions: r.txOptions,
		now:       r.now,
	}
}
