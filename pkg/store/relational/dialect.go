package relational

import (
	"context"
	"database/sql"
	"strings"

	"github.com/darthunder/bases/pkg/config"
	"github.com/darthunder/bases/pkg/errors"
)

// Dialect captures the engine-specific parts of the store.
type Dialect interface {
	// Name is the configuration name of the dialect ("oracle", ...)
	Name() string
	// DriverName is the name registered with database/sql
	DriverName() string
	// DSN builds a connection string from cfg
	DSN(cfg config.Relational) (string, error)
	// Placeholder returns the n-th (1-based) bind placeholder
	Placeholder(n int) string
	// Schema returns the DDL statements creating every object the store uses
	Schema() []string
	// InsertReturningID inserts one row and returns its generated id
	InsertReturningID(ctx context.Context, db *sql.DB, table, idColumn string, columns []string, args []interface{}) (int64, error)
	// Classify maps a driver error to an error code, "" when unknown
	Classify(err error) errors.ErrorCode
}

// DialectFor returns the dialect registered for a driver name.
func DialectFor(driver string) (Dialect, error) {
	switch strings.ToLower(driver) {
	case config.DriverOracle:
		return oracleDialect{}, nil
	case config.DriverPostgres, "postgresql":
		return postgresDialect{}, nil
	case config.DriverMySQL:
		return mysqlDialect{}, nil
	default:
		return nil, errors.Newf(errors.ErrConfigValid, "unsupported relational driver %q", driver).
			WithDetail("driver", driver)
	}
}

// rebind rewrites "?" placeholders outside quoted literals using ph.
func rebind(query string, ph func(n int) string) string {
	var b strings.Builder
	b.Grow(len(query) + 8)

	n := 0
	inQuote := false
	for _, r := range query {
		switch {
		case r == '\'':
			inQuote = !inQuote
			b.WriteRune(r)
		case r == '?' && !inQuote:
			n++
			b.WriteString(ph(n))
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// insertStatement builds "INSERT INTO t (c1, c2) VALUES (?, ?)" with an
// optional leading id column whose value expression is idExpr.
func insertStatement(table, idColumn, idExpr string, columns []string) string {
	cols := make([]string, 0, len(columns)+1)
	vals := make([]string, 0, len(columns)+1)
	if idExpr != "" {
		cols = append(cols, idColumn)
		vals = append(vals, idExpr)
	}
	for _, c := range columns {
		cols = append(cols, c)
		vals = append(vals, "?")
	}
	return "INSERT INTO " + table + " (" + strings.Join(cols, ", ") + ") VALUES (" + strings.Join(vals, ", ") + ")"
}
