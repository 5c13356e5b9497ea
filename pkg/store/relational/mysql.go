package relational

import (
	"context"
	"database/sql"
	stderrors "errors"
	"net"
	"strconv"

	"github.com/go-sql-driver/mysql"

	"github.com/darthunder/bases/pkg/config"
	"github.com/darthunder/bases/pkg/errors"
)

type mysqlDialect struct{}

func (mysqlDialect) Name() string       { return config.DriverMySQL }
func (mysqlDialect) DriverName() string { return "mysql" }

func (mysqlDialect) DSN(cfg config.Relational) (string, error) {
	if cfg.DSN != "" {
		return cfg.DSN, nil
	}
	mc := mysql.NewConfig()
	mc.User = cfg.User
	mc.Passwd = cfg.Password
	mc.Net = "tcp"
	mc.Addr = net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port))
	mc.DBName = cfg.Database
	mc.ParseTime = true
	mc.Timeout = cfg.ConnectTimeout
	return mc.FormatDSN(), nil
}

func (mysqlDialect) Placeholder(int) string { return "?" }

func (mysqlDialect) Schema() []string {
	return []string{
		`CREATE TABLE IF NOT EXISTS Producto (
	idProducto INT AUTO_INCREMENT PRIMARY KEY,
	nombre VARCHAR(100) NOT NULL,
	precio DECIMAL(10,2) NOT NULL,
	Categorias VARCHAR(100),
	color VARCHAR(50),
	Talla VARCHAR(10)
)`,
		`CREATE TABLE IF NOT EXISTS Ventas (
	idVenta INT AUTO_INCREMENT PRIMARY KEY,
	fecha DATETIME NOT NULL,
	total DECIMAL(12,2) NOT NULL DEFAULT 0,
	idUsuario INT
)`,
		`CREATE TABLE IF NOT EXISTS DetallesVenta (
	idVenta INT NOT NULL,
	idProducto INT NOT NULL,
	Cantidad INT NOT NULL,
	Subtotal DECIMAL(12,2) NOT NULL,
	FOREIGN KEY (idVenta) REFERENCES Ventas(idVenta),
	FOREIGN KEY (idProducto) REFERENCES Producto(idProducto)
)`,
	}
}

func (mysqlDialect) InsertReturningID(ctx context.Context, db *sql.DB, table, idColumn string, columns []string, args []interface{}) (int64, error) {
	res, err := db.ExecContext(ctx, insertStatement(table, idColumn, "", columns), args...)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (mysqlDialect) Classify(err error) errors.ErrorCode {
	var merr *mysql.MySQLError
	if !stderrors.As(err, &merr) {
		return ""
	}
	switch merr.Number {
	case 1146:
		return errors.ErrTableMissing
	case 1062, 1451, 1452, 1048:
		return errors.ErrConstraint
	case 1050:
		return errors.ErrAlreadyExists
	default:
		return ""
	}
}
