package repository

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/lostxrotimi/service-studio/internal/common/domain"
)

// undefinedTableCode is the PostgreSQL SQLSTATE for "relation does not exist".
const undefinedTableCode = "42P01"

// isUndefinedTable reports whether err means the table has not been created.
func isUndefinedTable(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == undefinedTableCode
	}
	// SQLite reports a missing table only through the message text.
	return strings.Contains(strings.ToLower(err.Error()), "no such table")
}

// classify wraps a driver error, promoting missing-table errors to SchemaMissing.
func classify(op string, err error) error {
	if err == nil {
		return nil
	}
	if isUndefinedTable(err) {
		return domain.NewSchemaMissingError(op+": required tables are missing", err)
	}
	return fmt.Errorf("%s: %w", op, err)
}
