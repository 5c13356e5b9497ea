package inventory

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/darthunder/bases/pkg/errors"
	"github.com/darthunder/bases/pkg/types"
)

const (
	sqlListSales     = "SELECT idVenta, fecha, total, idUsuario FROM Ventas ORDER BY idVenta"
	sqlFindSale      = "SELECT idVenta, fecha, total, idUsuario FROM Ventas WHERE idVenta = ?"
	sqlSaleLines     = "SELECT dv.Cantidad AS cantidad, dv.Subtotal AS subtotal, p.nombre AS producto FROM DetallesVenta dv JOIN Producto p ON dv.idProducto = p.idProducto WHERE dv.idVenta = ?"
	sqlSaleExists    = "SELECT COUNT(*) FROM Ventas WHERE idVenta = ?"
	sqlUpdateSale    = "UPDATE Ventas SET idUsuario = ?, total = ? WHERE idVenta = ?"
	sqlUpdateTotal   = "UPDATE Ventas SET total = ? WHERE idVenta = ?"
	sqlDeleteDetails = "DELETE FROM DetallesVenta WHERE idVenta = ?"
	sqlDeleteSale    = "DELETE FROM Ventas WHERE idVenta = ?"
	sqlInsertDetail  = "INSERT INTO DetallesVenta (idVenta, idProducto, Cantidad, Subtotal) VALUES (?, ?, ?, ?)"
)

// Sale table column labels
const (
	ColIDVenta   = "IDVENTA"
	ColFecha     = "FECHA"
	ColTotal     = "TOTAL"
	ColCliente   = "CLIENTE"
	colIDUsuario = "IDUSUARIO"
)

// SaleItem is one requested line of a complete sale
type SaleItem struct {
	ProductID int64
	Cantidad  int
}

// SaleLine is an accepted line of a complete sale
type SaleLine struct {
	ProductID int64
	Producto  string
	Cantidad  int
	Precio    decimal.Decimal
	Subtotal  decimal.Decimal
}

// SaleResult summarizes CreateCompleteSale
type SaleResult struct {
	ID    int64
	Lines []SaleLine
	// Skipped holds the product ids that do not exist
	Skipped []int64
	Total   decimal.Decimal
}

// SaleDetail is a sale with its lines
type SaleDetail struct {
	Sale  *types.Table
	Lines *types.Table
}

// AddSale inserts a sale for a user with the given total.
func (s *Service) AddSale(ctx context.Context, idUsuario int64, total decimal.Decimal) (int64, error) {
	db, err := s.relational()
	if err != nil {
		return 0, err
	}
	if total.IsNegative() {
		return 0, errors.Newf(errors.ErrInvalidInput, "total negativo: %s", total).WithDetail("field", "total")
	}

	id, err := db.InsertReturningID(ctx, "Ventas", "idVenta",
		[]string{"fecha", "total", "idUsuario"},
		s.now(), total, idUsuario)
	if err != nil {
		return 0, err
	}

	s.log.Info().Int64("id", id).Int64("idUsuario", idUsuario).Msg("Sale added")
	return id, nil
}

// ListSales returns every sale as IDVENTA, FECHA, TOTAL, CLIENTE. CLIENTE
// is the name of the user at position idUsuario, null when there is none.
func (s *Service) ListSales(ctx context.Context) (*types.Table, error) {
	db, err := s.relational()
	if err != nil {
		return nil, err
	}

	raw, err := db.QueryTable(ctx, sqlListSales)
	if err != nil {
		return nil, err
	}
	return s.withClients(ctx, raw)
}

// FindSale returns a sale and its lines (CANTIDAD, SUBTOTAL, PRODUCTO).
// NOT_FOUND when the sale does not exist.
func (s *Service) FindSale(ctx context.Context, id int64) (*SaleDetail, error) {
	db, err := s.relational()
	if err != nil {
		return nil, err
	}

	raw, err := db.QueryTable(ctx, sqlFindSale, id)
	if err != nil {
		return nil, err
	}
	if raw.Len() == 0 {
		return nil, errors.Newf(errors.ErrNotFound, "no se encontró venta con ID: %d", id).WithDetail("id", id)
	}

	sale, err := s.withClients(ctx, raw)
	if err != nil {
		return nil, err
	}

	lines, err := db.QueryTable(ctx, sqlSaleLines, id)
	if err != nil {
		return nil, err
	}
	return &SaleDetail{Sale: sale, Lines: lines}, nil
}

// UpdateSale changes the user and total of a sale. NOT_FOUND when the sale
// does not exist.
func (s *Service) UpdateSale(ctx context.Context, id, idUsuario int64, total decimal.Decimal) error {
	db, err := s.relational()
	if err != nil {
		return err
	}
	if total.IsNegative() {
		return errors.Newf(errors.ErrInvalidInput, "total negativo: %s", total).WithDetail("field", "total")
	}

	n, err := db.Exec(ctx, sqlUpdateSale, idUsuario, total, id)
	if err != nil {
		return err
	}
	if n == 0 {
		return errors.Newf(errors.ErrNotFound, "no se encontró venta con ID: %d", id).WithDetail("id", id)
	}

	s.log.Info().Int64("id", id).Msg("Sale updated")
	return nil
}

// SaleExists reports whether a sale with the id exists.
func (s *Service) SaleExists(ctx context.Context, id int64) (bool, error) {
	db, err := s.relational()
	if err != nil {
		return false, err
	}

	var n int64
	if err := db.ScanRow(ctx, sqlSaleExists, []interface{}{id}, &n); err != nil {
		return false, err
	}
	return n > 0, nil
}

// DeleteSale removes a sale and its lines, lines first. NOT_FOUND when the
// sale does not exist.
func (s *Service) DeleteSale(ctx context.Context, id int64) error {
	db, err := s.relational()
	if err != nil {
		return err
	}

	exists, err := s.SaleExists(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return errors.Newf(errors.ErrNotFound, "no se encontró venta con ID: %d", id).WithDetail("id", id)
	}

	lines, err := db.Exec(ctx, sqlDeleteDetails, id)
	if err != nil {
		return err
	}
	if _, err := db.Exec(ctx, sqlDeleteSale, id); err != nil {
		return err
	}

	s.log.Info().Int64("id", id).Int64("lines", lines).Msg("Sale deleted")
	return nil
}

// CreateCompleteSale records a sale with its lines. The sale is inserted
// with a zero total, each item whose product exists becomes a line with
// subtotal = precio × cantidad, and the total is written last. Unknown
// products are reported in Skipped.
func (s *Service) CreateCompleteSale(ctx context.Context, idUsuario int64, items []SaleItem) (*SaleResult, error) {
	db, err := s.relational()
	if err != nil {
		return nil, err
	}

	if len(items) == 0 {
		return nil, errors.New(errors.ErrInvalidInput, "la venta no tiene productos")
	}
	for _, it := range items {
		if it.Cantidad <= 0 {
			return nil, errors.Newf(errors.ErrInvalidInput, "cantidad inválida para la prenda %d: %d", it.ProductID, it.Cantidad).
				WithDetail("field", "cantidad")
		}
	}

	saleID, err := s.AddSale(ctx, idUsuario, decimal.Zero)
	if err != nil {
		return nil, err
	}

	res := &SaleResult{ID: saleID, Total: decimal.Zero}
	for _, it := range items {
		precio, nombre, err := s.ProductPrice(ctx, it.ProductID)
		if err != nil {
			if errors.IsErrorCode(err, errors.ErrNotFound) {
				s.log.Warn().Int64("idProducto", it.ProductID).Msg("Skipping unknown product")
				res.Skipped = append(res.Skipped, it.ProductID)
				continue
			}
			return res, err
		}

		subtotal := precio.Mul(decimal.NewFromInt(int64(it.Cantidad)))
		if _, err := db.Exec(ctx, sqlInsertDetail, saleID, it.ProductID, it.Cantidad, subtotal); err != nil {
			return res, err
		}

		res.Lines = append(res.Lines, SaleLine{
			ProductID: it.ProductID,
			Producto:  nombre,
			Cantidad:  it.Cantidad,
			Precio:    precio,
			Subtotal:  subtotal,
		})
		res.Total = res.Total.Add(subtotal)
	}

	if _, err := db.Exec(ctx, sqlUpdateTotal, res.Total, saleID); err != nil {
		return res, err
	}

	s.log.Info().
		Int64("id", saleID).
		Int("lines", len(res.Lines)).
		Int("skipped", len(res.Skipped)).
		Str("total", res.Total.StringFixed(2)).
		Msg("Complete sale recorded")
	return res, nil
}

// withClients turns idVenta, fecha, total, idUsuario rows into
// IDVENTA, FECHA, TOTAL, CLIENTE.
func (s *Service) withClients(ctx context.Context, raw *types.Table) (*types.Table, error) {
	names := s.userNames(ctx)
	userCol := raw.ColumnIndex(colIDUsuario)

	out := types.NewTable(ColIDVenta, ColFecha, ColTotal, ColCliente)
	for _, row := range raw.Rows {
		cliente := types.Null()
		if userCol >= 0 {
			if idx, ok := row[userCol].AsInt(); ok && idx >= 0 && idx < int64(len(names)) {
				cliente = types.String(names[idx])
			}
		}
		if err := out.AppendRow(row[0], row[1], row[2], cliente); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// userNames lists user names in registration order, the same order
// FindUserByIndex walks. A failing or missing user store yields no names.
func (s *Service) userNames(ctx context.Context) []string {
	if s.users == nil {
		return nil
	}
	all, err := s.users.AllUsers(ctx)
	if err != nil {
		s.log.Warn().Err(err).Msg("Cannot resolve sale clients")
		return nil
	}
	names := make([]string, len(all))
	for i, u := range all {
		names[i] = u.Nombre
	}
	return names
}
