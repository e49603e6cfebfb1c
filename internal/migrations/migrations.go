// Package migrations applies golang-migrate SQL files to a database.
package migrations

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"go.uber.org/zap"
)

const (
	DirectionUp   = "up"
	DirectionDown = "down"
)

// Config points at a migrations directory and a database URL whose scheme
// selects a driver registered by the caller.
type Config struct {
	Dir         string
	DatabaseURL string
	Direction   string
	// Steps limits how many migrations are applied; zero means all.
	Steps int
}

// SourceURL turns dir into a file:// source URL.
func SourceURL(dir string) (string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolve migrations dir: %w", err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return "", fmt.Errorf("stat migrations dir %s: %w", abs, err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("%s is not a directory", abs)
	}
	return "file://" + filepath.ToSlash(abs), nil
}

// Run applies migrations as described by cfg. No pending change is not an
// error.
func Run(ctx context.Context, cfg Config, logger *zap.Logger) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if cfg.Direction != DirectionUp && cfg.Direction != DirectionDown {
		return fmt.Errorf("unknown migration direction %q", cfg.Direction)
	}
	if cfg.Steps < 0 {
		return fmt.Errorf("steps must not be negative, got %d", cfg.Steps)
	}

	sourceURL, err := SourceURL(cfg.Dir)
	if err != nil {
		return err
	}
	m, err := migrate.New(sourceURL, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("init migrate: %w", err)
	}
	defer func() {
		srcErr, dbErr := m.Close()
		if srcErr != nil {
			logger.Warn("migration source close error", zap.Error(srcErr))
		}
		if dbErr != nil {
			logger.Warn("migration database close error", zap.Error(dbErr))
		}
	}()

	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			select {
			case m.GracefulStop <- true:
			default:
			}
		case <-done:
		}
	}()

	err = apply(m, cfg)
	if errors.Is(err, migrate.ErrNoChange) {
		logger.Info("no migrations to apply")
		return nil
	}
	if err != nil {
		return fmt.Errorf("migrate %s: %w", cfg.Direction, err)
	}

	version, dirty, err := m.Version()
	switch {
	case errors.Is(err, migrate.ErrNilVersion):
		logger.Info("migrations applied", zap.String("direction", cfg.Direction), zap.String("version", "none"))
	case err != nil:
		return fmt.Errorf("read migration version: %w", err)
	default:
		logger.Info("migrations applied",
			zap.String("direction", cfg.Direction),
			zap.Uint("version", version),
			zap.Bool("dirty", dirty))
	}
	return nil
}

func apply(m *migrate.Migrate, cfg Config) error {
	if cfg.Steps > 0 {
		if cfg.Direction == DirectionDown {
			return m.Steps(-cfg.Steps)
		}
		return m.Steps(cfg.Steps)
	}
	if cfg.Direction == DirectionDown {
		return m.Down()
	}
	return m.Up()
}
