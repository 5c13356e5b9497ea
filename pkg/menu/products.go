package menu

import (
	"context"

	"github.com/darthunder/bases/pkg/inventory"
)

func (m *Menu) productsScreen() screen {
	return screen{
		title: "=== GESTIÓN DE ROPA ===",
		entries: []entry{
			{"1", "Agregar prenda", m.addProduct},
			{"2", "Mostrar todo el inventario", m.listProducts},
			{"3", "Buscar prenda por tipo", m.findProducts},
			{"4", "Eliminar prenda", m.deleteProduct},
		},
		exitKeys:  []string{"0"},
		exitLabel: "Volver al menú principal",
		exitMsg:   "Volviendo al menú principal...",
	}
}

func (m *Menu) addProduct(ctx context.Context) error {
	var p inventory.Product
	var err error

	m.con.Println()
	if p.Nombre, err = m.in.Line("Ingrese nombre del producto: "); err != nil {
		return err
	}
	if p.Categoria, err = m.in.Line("Ingrese categoría (camisa/pantalón/vestido/otros): "); err != nil {
		return err
	}
	if p.Color, err = m.in.Line("Ingrese color: "); err != nil {
		return err
	}
	if p.Talla, err = m.in.Line("Ingrese talla: "); err != nil {
		return err
	}
	if p.Precio, err = m.in.Decimal("Ingrese precio: "); err != nil {
		return err
	}

	id, err := m.svc.AddProduct(ctx, p)
	if err != nil {
		return err
	}
	m.con.Success("Producto agregado con éxito! (ID %d)", id)
	return nil
}

func (m *Menu) listProducts(ctx context.Context) error {
	t, err := m.svc.ListProducts(ctx)
	if err != nil {
		return err
	}
	m.con.Title("=== INVENTARIO DE PRODUCTOS ===")
	return m.out.PrintTable(t)
}

func (m *Menu) findProducts(ctx context.Context) error {
	m.con.Println()
	categoria, err := m.in.Line("Ingrese categoría a buscar: ")
	if err != nil {
		return err
	}
	t, err := m.svc.FindProductsByCategory(ctx, categoria)
	if err != nil {
		return err
	}
	if t.Len() == 0 {
		m.con.Info("No se encontraron productos de esa categoría")
		return nil
	}
	return m.out.PrintTable(t)
}

func (m *Menu) deleteProduct(ctx context.Context) error {
	m.con.Println()
	id, err := m.in.Int("Ingrese ID del producto a eliminar: ")
	if err != nil {
		return err
	}
	if err := m.svc.DeleteProduct(ctx, id); err != nil {
		return err
	}
	m.con.Success("Producto eliminado con éxito!")
	return nil
}
