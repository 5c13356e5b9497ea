package inventory

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/darthunder/bases/pkg/types"
)

// Stats summarizes the store contents
type Stats struct {
	Usuarios        int
	Prendas         int64
	ValorInventario decimal.Decimal
	Ventas          int64
}

// Record returns the statistics as a record box
func (st Stats) Record() *types.Record {
	return types.NewRecord().
		Set("usuarios", types.Int(int64(st.Usuarios))).
		Set("prendas", types.Int(st.Prendas)).
		Set("valorInventario", types.String(st.ValorInventario.StringFixed(2))).
		Set("ventas", types.Int(st.Ventas))
}

// Stats counts users, products and sales and sums the product prices.
func (s *Service) Stats(ctx context.Context) (Stats, error) {
	var st Stats

	users, err := s.userStore()
	if err != nil {
		return st, err
	}
	db, err := s.relational()
	if err != nil {
		return st, err
	}

	if st.Usuarios, err = users.CountUsers(ctx); err != nil {
		return st, err
	}
	if err := db.ScanRow(ctx, sqlCountProducts, nil, &st.Prendas); err != nil {
		return st, err
	}

	// SUM over an empty table is NULL
	var valor decimal.NullDecimal
	if err := db.ScanRow(ctx, sqlInventoryValue, nil, &valor); err != nil {
		return st, err
	}
	if valor.Valid {
		st.ValorInventario = valor.Decimal
	}

	if err := db.ScanRow(ctx, sqlCountSales, nil, &st.Ventas); err != nil {
		return st, err
	}
	return st, nil
}
