package relational

import (
	"context"
	"database/sql"
	stderrors "errors"
	"regexp"
	"strconv"
	"strings"

	go_ora "github.com/sijms/go-ora/v2"
	"github.com/sijms/go-ora/v2/network"

	"github.com/darthunder/bases/pkg/config"
	"github.com/darthunder/bases/pkg/errors"
)

// oracleSequences names the sequence feeding each table's id.
var oracleSequences = map[string]string{
	"producto": "producto_seq",
	"ventas":   "venta_seq",
}

var oraCode = regexp.MustCompile(`ORA-(\d{5})`)

type oracleDialect struct{}

func (oracleDialect) Name() string       { return config.DriverOracle }
func (oracleDialect) DriverName() string { return "oracle" }

func (oracleDialect) DSN(cfg config.Relational) (string, error) {
	if cfg.DSN != "" {
		return cfg.DSN, nil
	}
	options := map[string]string{}
	if cfg.ConnectTimeout > 0 {
		options["CONNECTION TIMEOUT"] = strconv.Itoa(int(cfg.ConnectTimeout.Seconds()))
	}
	return go_ora.BuildUrl(cfg.Host, cfg.Port, cfg.Database, cfg.User, cfg.Password, options), nil
}

func (oracleDialect) Placeholder(n int) string { return ":" + strconv.Itoa(n) }

func (oracleDialect) Schema() []string {
	return []string{
		"CREATE SEQUENCE producto_seq START WITH 1 INCREMENT BY 1",
		"CREATE SEQUENCE venta_seq START WITH 1 INCREMENT BY 1",
		`CREATE TABLE Producto (
	idProducto NUMBER PRIMARY KEY,
	nombre VARCHAR2(100) NOT NULL,
	precio NUMBER(10,2) NOT NULL,
	Categorias VARCHAR2(100),
	color VARCHAR2(50),
	Talla VARCHAR2(10)
)`,
		`CREATE TABLE Ventas (
	idVenta NUMBER PRIMARY KEY,
	fecha DATE NOT NULL,
	total NUMBER(12,2) DEFAULT 0 NOT NULL,
	idUsuario NUMBER
)`,
		`CREATE TABLE DetallesVenta (
	idVenta NUMBER NOT NULL REFERENCES Ventas(idVenta),
	idProducto NUMBER NOT NULL REFERENCES Producto(idProducto),
	Cantidad NUMBER NOT NULL,
	Subtotal NUMBER(12,2) NOT NULL
)`,
	}
}

// InsertReturningID draws the id from the table's sequence and reads it back
// with RETURNING ... INTO.
func (d oracleDialect) InsertReturningID(ctx context.Context, db *sql.DB, table, idColumn string, columns []string, args []interface{}) (int64, error) {
	seq, ok := oracleSequences[strings.ToLower(table)]
	if !ok {
		seq = strings.ToLower(table) + "_seq"
	}

	query := insertStatement(table, idColumn, seq+".NEXTVAL", columns) + " RETURNING " + idColumn + " INTO ?"
	query = rebind(query, d.Placeholder)

	var id int64
	bound := append(append([]interface{}{}, args...), sql.Out{Dest: &id})
	if _, err := db.ExecContext(ctx, query, bound...); err != nil {
		return 0, err
	}
	return id, nil
}

func (oracleDialect) Classify(err error) errors.ErrorCode {
	code := 0
	var oerr *network.OracleError
	if stderrors.As(err, &oerr) {
		code = oerr.ErrCode
	} else if m := oraCode.FindStringSubmatch(err.Error()); m != nil {
		code, _ = strconv.Atoi(m[1])
	}

	switch code {
	case 942:
		return errors.ErrTableMissing
	case 1, 1400, 2291, 2292:
		return errors.ErrConstraint
	case 955:
		return errors.ErrAlreadyExists
	default:
		return ""
	}
}
