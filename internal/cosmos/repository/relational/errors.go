package relational

import (
	"context"
	"database/sql/driver"
	"errors"
	"fmt"
	"net"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/goodnatureofminers/blockinsight7000-cosmos/internal/cosmos/chain"
)

const pgUniqueViolation = "23505"

// classify maps a database error onto the pipeline error kinds.
func classify(op string, height int64, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%s: %w", op, chain.ErrNotFound)
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%s: %w", op, err)
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return chain.StorageConflict(op, height, err)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch {
		case pgErr.Code == pgUniqueViolation:
			return chain.StorageConflict(op, height, err)
		case isTransientPgCode(pgErr.Code):
			return chain.Transient(op, height, err)
		default:
			return chain.Fatal(op, height, err)
		}
	}

	var netErr net.Error
	if errors.Is(err, driver.ErrBadConn) || errors.As(err, &netErr) || pgconn.SafeToRetry(err) || pgconn.Timeout(err) {
		return chain.Transient(op, height, err)
	}

	return chain.Fatal(op, height, err)
}

// isTransientPgCode reports connection, serialization, resource and
// operator-intervention SQLSTATE classes.
func isTransientPgCode(code string) bool {
	switch {
	case strings.HasPrefix(code, "08"),
		strings.HasPrefix(code, "40"),
		strings.HasPrefix(code, "53"),
		strings.HasPrefix(code, "57P"):
		return true
	default:
		return false
	}
}
