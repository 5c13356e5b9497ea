package menu

import (
	"context"

	"github.com/darthunder/bases/pkg/inventory"
)

func (m *Menu) salesScreen() screen {
	return screen{
		title: "=== GESTIÓN DE VENTAS ===",
		entries: []entry{
			{"1", "Agregar venta", m.addSale},
			{"2", "Mostrar todas las ventas", m.listSales},
			{"3", "Buscar venta por ID", m.findSale},
			{"4", "Actualizar venta", m.updateSale},
			{"5", "Eliminar venta", m.deleteSale},
			{"6", "Crear venta completa", m.completeSale},
		},
		exitKeys:  []string{"0"},
		exitLabel: "Volver al menú principal",
		exitMsg:   "Volviendo al menú principal...",
	}
}

func (m *Menu) addSale(ctx context.Context) error {
	m.con.Println()
	idUsuario, err := m.in.Int("Ingrese ID del usuario (cliente): ")
	if err != nil {
		return err
	}
	total, err := m.in.Decimal("Ingrese total de la venta: ")
	if err != nil {
		return err
	}

	id, err := m.svc.AddSale(ctx, idUsuario, total)
	if err != nil {
		return err
	}
	m.con.Success("Venta agregada con éxito! (ID %d)", id)
	return nil
}

func (m *Menu) listSales(ctx context.Context) error {
	t, err := m.svc.ListSales(ctx)
	if err != nil {
		return err
	}
	m.con.Title("=== REGISTRO DE VENTAS ===")
	if t.Len() == 0 {
		m.con.Info("No hay ventas registradas.")
		return nil
	}
	return m.out.PrintTable(t)
}

func (m *Menu) findSale(ctx context.Context) error {
	m.con.Println()
	id, err := m.in.Int("Ingrese ID de la venta a buscar: ")
	if err != nil {
		return err
	}
	d, err := m.svc.FindSale(ctx, id)
	if err != nil {
		return err
	}

	if err := m.out.PrintTable(d.Sale); err != nil {
		return err
	}
	m.con.Subtitle("Detalles de la venta")
	if d.Lines == nil || d.Lines.Len() == 0 {
		m.con.Println(m.con.Muted("(Sin detalles de productos)"))
		return nil
	}
	return m.out.PrintTable(d.Lines)
}

func (m *Menu) updateSale(ctx context.Context) error {
	m.con.Println()
	id, ok, err := m.existingSale(ctx, "Ingrese ID de la venta a actualizar: ")
	if err != nil || !ok {
		return err
	}
	idUsuario, err := m.in.Int("Ingrese nuevo ID del usuario (cliente): ")
	if err != nil {
		return err
	}
	total, err := m.in.Decimal("Ingrese nuevo total: ")
	if err != nil {
		return err
	}

	if err := m.svc.UpdateSale(ctx, id, idUsuario, total); err != nil {
		return err
	}
	m.con.Success("Venta actualizada con éxito!")
	return nil
}

func (m *Menu) deleteSale(ctx context.Context) error {
	m.con.Println()
	id, ok, err := m.existingSale(ctx, "Ingrese ID de la venta a eliminar: ")
	if err != nil || !ok {
		return err
	}

	yes, err := m.in.Confirm("¿Está seguro de eliminar esta venta? (s/n): ")
	if err != nil {
		return err
	}
	if !yes {
		m.con.Println("Operación cancelada.")
		return nil
	}

	if err := m.svc.DeleteSale(ctx, id); err != nil {
		return err
	}
	m.con.Success("Venta eliminada con éxito!")
	return nil
}

// existingSale reads a sale id and checks it exists, reporting a missing
// sale itself.
func (m *Menu) existingSale(ctx context.Context, prompt string) (int64, bool, error) {
	id, err := m.in.Int(prompt)
	if err != nil {
		return 0, false, err
	}
	ok, err := m.svc.SaleExists(ctx, id)
	if err != nil {
		return 0, false, err
	}
	if !ok {
		m.con.Warning("No se encontró venta con ID: %d", id)
	}
	return id, ok, nil
}

func (m *Menu) completeSale(ctx context.Context) error {
	m.con.Println()
	idUsuario, err := m.in.Int("Ingrese ID del usuario (cliente): ")
	if err != nil {
		return err
	}

	var items []inventory.SaleItem
	for {
		pid, err := m.in.Int("Ingrese ID del producto: ")
		if err != nil {
			return err
		}
		cantidad, err := m.in.Int("Ingrese cantidad: ")
		if err != nil {
			return err
		}
		if cantidad > 0 {
			items = append(items, inventory.SaleItem{ProductID: pid, Cantidad: int(cantidad)})
		} else {
			m.con.Warning("La cantidad debe ser mayor que cero")
		}

		more, err := m.in.Confirm("¿Agregar otro producto? (s/n): ")
		if err != nil {
			return err
		}
		if !more {
			break
		}
	}

	if len(items) == 0 {
		m.con.Warning("Venta cancelada: no se agregaron productos")
		return nil
	}

	res, err := m.svc.CreateCompleteSale(ctx, idUsuario, items)
	if err != nil {
		return err
	}

	m.con.Success("Venta creada con ID: %d", res.ID)
	for _, l := range res.Lines {
		m.con.Info("Producto '%s' agregado - Subtotal: $%s", l.Producto, l.Subtotal.StringFixed(2))
	}
	for _, pid := range res.Skipped {
		m.con.Warning("Producto %d no encontrado", pid)
	}
	m.con.Success("Venta completada - Total: $%s", res.Total.StringFixed(2))
	return nil
}
