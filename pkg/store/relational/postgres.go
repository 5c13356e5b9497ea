package relational

import (
	"context"
	"database/sql"
	stderrors "errors"
	"net"
	"net/url"
	"strconv"

	"github.com/lib/pq"

	"github.com/darthunder/bases/pkg/config"
	"github.com/darthunder/bases/pkg/errors"
)

type postgresDialect struct{}

func (postgresDialect) Name() string       { return config.DriverPostgres }
func (postgresDialect) DriverName() string { return "postgres" }

func (postgresDialect) DSN(cfg config.Relational) (string, error) {
	if cfg.DSN != "" {
		return cfg.DSN, nil
	}
	q := url.Values{}
	q.Set("sslmode", "disable")
	if cfg.ConnectTimeout > 0 {
		q.Set("connect_timeout", strconv.Itoa(int(cfg.ConnectTimeout.Seconds())))
	}
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(cfg.User, cfg.Password),
		Host:     net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port)),
		Path:     "/" + cfg.Database,
		RawQuery: q.Encode(),
	}
	return u.String(), nil
}

func (postgresDialect) Placeholder(n int) string { return "$" + strconv.Itoa(n) }

func (postgresDialect) Schema() []string {
	return []string{
		`CREATE TABLE IF NOT EXISTS Producto (
	idProducto INTEGER GENERATED BY DEFAULT AS IDENTITY PRIMARY KEY,
	nombre VARCHAR(100) NOT NULL,
	precio NUMERIC(10,2) NOT NULL,
	Categorias VARCHAR(100),
	color VARCHAR(50),
	Talla VARCHAR(10)
)`,
		`CREATE TABLE IF NOT EXISTS Ventas (
	idVenta INTEGER GENERATED BY DEFAULT AS IDENTITY PRIMARY KEY,
	fecha TIMESTAMP NOT NULL,
	total NUMERIC(12,2) NOT NULL DEFAULT 0,
	idUsuario INTEGER
)`,
		`CREATE TABLE IF NOT EXISTS DetallesVenta (
	idVenta INTEGER NOT NULL REFERENCES Ventas(idVenta),
	idProducto INTEGER NOT NULL REFERENCES Producto(idProducto),
	Cantidad INTEGER NOT NULL,
	Subtotal NUMERIC(12,2) NOT NULL
)`,
	}
}

func (d postgresDialect) InsertReturningID(ctx context.Context, db *sql.DB, table, idColumn string, columns []string, args []interface{}) (int64, error) {
	query := rebind(insertStatement(table, idColumn, "", columns)+" RETURNING "+idColumn, d.Placeholder)

	var id int64
	if err := db.QueryRowContext(ctx, query, args...).Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}

func (postgresDialect) Classify(err error) errors.ErrorCode {
	var perr *pq.Error
	if !stderrors.As(err, &perr) {
		return ""
	}
	switch perr.Code {
	case "42P01":
		return errors.ErrTableMissing
	case "23505", "23503", "23502":
		return errors.ErrConstraint
	case "42P07":
		return errors.ErrAlreadyExists
	default:
		return ""
	}
}
