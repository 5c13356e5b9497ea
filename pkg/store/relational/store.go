package relational

import (
	"context"
	"database/sql"
	stderrors "errors"
	"strings"

	"github.com/rs/zerolog"

	"github.com/darthunder/bases/pkg/config"
	"github.com/darthunder/bases/pkg/errors"
	"github.com/darthunder/bases/pkg/logging"
	"github.com/darthunder/bases/pkg/types"
)

// Store runs statements against the relational database.
type Store struct {
	db           *sql.DB
	dialect      Dialect
	maxHintWidth int
	log          zerolog.Logger
}

// Open connects to the database described by cfg and checks the connection.
func Open(ctx context.Context, cfg config.Relational) (*Store, error) {
	logger := logging.GetLogger("store.relational")

	dialect, err := DialectFor(cfg.Driver)
	if err != nil {
		return nil, err
	}

	dsn, err := dialect.DSN(cfg)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigValid, "cannot build connection string")
	}

	db, err := sql.Open(dialect.DriverName(), dsn)
	if err != nil {
		return nil, connectError(err, cfg)
	}

	pingCtx := ctx
	if cfg.ConnectTimeout > 0 {
		var cancel context.CancelFunc
		pingCtx, cancel = context.WithTimeout(ctx, cfg.ConnectTimeout)
		defer cancel()
	}
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, connectError(err, cfg)
	}

	logger.Info().
		Str("driver", dialect.Name()).
		Str("host", cfg.Host).
		Int("port", cfg.Port).
		Str("database", cfg.Database).
		Msg("Connected to relational database")

	return New(db, dialect, cfg.MaxHintWidth), nil
}

// New wraps an already opened handle.
func New(db *sql.DB, dialect Dialect, maxHintWidth int) *Store {
	return &Store{
		db:           db,
		dialect:      dialect,
		maxHintWidth: maxHintWidth,
		log:          logging.GetLogger("store.relational"),
	}
}

func connectError(err error, cfg config.Relational) error {
	return errors.Wrap(err, errors.ErrConnect, "no se pudo conectar a la base de datos relacional").
		WithDetail("driver", cfg.Driver).
		WithDetail("host", cfg.Host).
		WithDetail("port", cfg.Port)
}

// Dialect returns the store's dialect
func (s *Store) Dialect() Dialect { return s.dialect }

// Rebind rewrites "?" placeholders into the dialect's syntax.
func (s *Store) Rebind(query string) string {
	return rebind(query, s.dialect.Placeholder)
}

// QueryTable runs a query and materializes the whole result. Column names
// are upper-cased so every engine yields the same labels.
func (s *Store) QueryTable(ctx context.Context, query string, args ...interface{}) (*types.Table, error) {
	query = s.Rebind(query)
	s.log.Debug().Str("sql", query).Int("args", len(args)).Msg("Query")

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, s.wrap(err, errors.ErrQuery, query)
	}
	defer func() { _ = rows.Close() }()

	t, err := materialize(rows, s.maxHintWidth)
	if err != nil {
		return nil, s.wrap(err, errors.ErrQuery, query)
	}

	s.log.Trace().Int("rows", t.Len()).Msg("Query done")
	return t, nil
}

// ScanRow runs a query expected to return one row and scans it into dest.
// No row yields NOT_FOUND.
func (s *Store) ScanRow(ctx context.Context, query string, args []interface{}, dest ...interface{}) error {
	query = s.Rebind(query)
	s.log.Debug().Str("sql", query).Int("args", len(args)).Msg("QueryRow")

	if err := s.db.QueryRowContext(ctx, query, args...).Scan(dest...); err != nil {
		if stderrors.Is(err, sql.ErrNoRows) {
			return errors.Wrap(err, errors.ErrNotFound, "no rows")
		}
		return s.wrap(err, errors.ErrQuery, query)
	}
	return nil
}

// Exec runs a statement and returns the number of affected rows.
func (s *Store) Exec(ctx context.Context, query string, args ...interface{}) (int64, error) {
	query = s.Rebind(query)
	s.log.Debug().Str("sql", query).Int("args", len(args)).Msg("Exec")

	res, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, s.wrap(err, errors.ErrExec, query)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, s.wrap(err, errors.ErrExec, query)
	}
	return n, nil
}

// InsertReturningID inserts one row into table and returns the id the
// database generated for idColumn.
func (s *Store) InsertReturningID(ctx context.Context, table, idColumn string, columns []string, args ...interface{}) (int64, error) {
	if len(columns) != len(args) {
		return 0, errors.Newf(errors.ErrInvalidInput, "%d columns but %d values", len(columns), len(args)).
			WithDetail("table", table)
	}
	s.log.Debug().Str("table", table).Strs("columns", columns).Msg("Insert")

	id, err := s.dialect.InsertReturningID(ctx, s.db, table, idColumn, columns, args)
	if err != nil {
		return 0, s.wrap(err, errors.ErrExec, "insert into "+table)
	}
	return id, nil
}

// EnsureSchema creates the tables (and sequences) the store needs. Objects
// that already exist are left alone. It returns how many statements created
// something.
func (s *Store) EnsureSchema(ctx context.Context) (int, error) {
	done := logging.LogOperationStart(s.log, "ensure schema")
	defer done()

	created := 0
	for _, stmt := range s.dialect.Schema() {
		s.log.Debug().Str("sql", firstLine(stmt)).Msg("DDL")
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			if s.dialect.Classify(err) == errors.ErrAlreadyExists {
				s.log.Debug().Str("sql", firstLine(stmt)).Msg("Object already exists")
				continue
			}
			return created, s.wrap(err, errors.ErrExec, firstLine(stmt))
		}
		created++
	}
	return created, nil
}

// Close releases the connection pool.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	if err := s.db.Close(); err != nil {
		return errors.Wrap(err, errors.ErrInternal, "failed to close relational store")
	}
	return nil
}

// wrap attaches the dialect's classification, or fallback, to a driver error.
func (s *Store) wrap(err error, fallback errors.ErrorCode, stmt string) error {
	code := s.dialect.Classify(err)
	if code == "" {
		code = fallback
	}
	if stderrors.Is(err, context.Canceled) || stderrors.Is(err, context.DeadlineExceeded) {
		code = errors.ErrCancelled
	}
	s.log.Debug().Err(err).Str("code", string(code)).Msg("Statement failed")
	return errors.Wrap(err, code, "database error").WithDetail("sql", stmt)
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return strings.TrimSpace(s[:i])
	}
	return s
}
