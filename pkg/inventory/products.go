package inventory

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/darthunder/bases/pkg/errors"
	"github.com/darthunder/bases/pkg/types"
)

const (
	productColumns = "idProducto, nombre, precio, Categorias, color, Talla"

	sqlListProducts   = "SELECT " + productColumns + " FROM Producto ORDER BY idProducto"
	sqlProductsByCat  = "SELECT " + productColumns + " FROM Producto WHERE LOWER(Categorias) = LOWER(?) ORDER BY idProducto"
	sqlDeleteProduct  = "DELETE FROM Producto WHERE idProducto = ?"
	sqlProductPrice   = "SELECT precio, nombre FROM Producto WHERE idProducto = ?"
	sqlCountProducts  = "SELECT COUNT(*) FROM Producto"
	sqlInventoryValue = "SELECT SUM(precio) FROM Producto"
	sqlCountSales     = "SELECT COUNT(*) FROM Ventas"
)

// Product is a clothing item as entered by the user
type Product struct {
	Nombre    string
	Precio    decimal.Decimal
	Categoria string
	Color     string
	Talla     string
}

// AddProduct validates and inserts p, returning the generated id.
func (s *Service) AddProduct(ctx context.Context, p Product) (int64, error) {
	db, err := s.relational()
	if err != nil {
		return 0, err
	}

	p.Nombre = strings.TrimSpace(p.Nombre)
	if p.Nombre == "" {
		return 0, errors.New(errors.ErrInvalidInput, "el nombre no puede estar vacío").WithDetail("field", "nombre")
	}
	if p.Precio.IsNegative() {
		return 0, errors.Newf(errors.ErrInvalidInput, "precio negativo: %s", p.Precio).WithDetail("field", "precio")
	}

	id, err := db.InsertReturningID(ctx, "Producto", "idProducto",
		[]string{"nombre", "precio", "Categorias", "color", "Talla"},
		p.Nombre, p.Precio, strings.TrimSpace(p.Categoria), strings.TrimSpace(p.Color), strings.TrimSpace(p.Talla))
	if err != nil {
		return 0, err
	}

	s.log.Info().Int64("id", id).Str("nombre", p.Nombre).Msg("Product added")
	return id, nil
}

// ListProducts returns every product ordered by id.
func (s *Service) ListProducts(ctx context.Context) (*types.Table, error) {
	db, err := s.relational()
	if err != nil {
		return nil, err
	}
	return db.QueryTable(ctx, sqlListProducts)
}

// FindProductsByCategory returns the products of a category, compared
// case-insensitively.
func (s *Service) FindProductsByCategory(ctx context.Context, categoria string) (*types.Table, error) {
	db, err := s.relational()
	if err != nil {
		return nil, err
	}
	return db.QueryTable(ctx, sqlProductsByCat, strings.TrimSpace(categoria))
}

// DeleteProduct removes a product. NOT_FOUND when no row matched.
func (s *Service) DeleteProduct(ctx context.Context, id int64) error {
	db, err := s.relational()
	if err != nil {
		return err
	}

	n, err := db.Exec(ctx, sqlDeleteProduct, id)
	if err != nil {
		if errors.IsErrorCode(err, errors.ErrConstraint) {
			return errors.Wrapf(err, errors.ErrConstraint, "la prenda %d aparece en ventas", id).WithDetail("id", id)
		}
		return err
	}
	if n == 0 {
		return errors.Newf(errors.ErrNotFound, "no se encontró prenda con ID: %d", id).WithDetail("id", id)
	}

	s.log.Info().Int64("id", id).Msg("Product deleted")
	return nil
}

// ProductPrice returns the price and name of a product. NOT_FOUND when the
// id does not exist.
func (s *Service) ProductPrice(ctx context.Context, id int64) (decimal.Decimal, string, error) {
	db, err := s.relational()
	if err != nil {
		return decimal.Zero, "", err
	}

	var precio decimal.Decimal
	var nombre string
	if err := db.ScanRow(ctx, sqlProductPrice, []interface{}{id}, &precio, &nombre); err != nil {
		if errors.IsErrorCode(err, errors.ErrNotFound) {
			return decimal.Zero, "", errors.Newf(errors.ErrNotFound, "no existe la prenda %d", id).WithDetail("id", id)
		}
		return decimal.Zero, "", err
	}
	return precio, nombre, nil
}
