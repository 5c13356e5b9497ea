package bases

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"github.com/darthunder/bases/pkg/errors"
	"github.com/darthunder/bases/pkg/inventory"
	"github.com/darthunder/bases/pkg/output"
	"github.com/darthunder/bases/pkg/types"
)

func newSalesCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "sales",
		Aliases: []string{"ventas"},
		Short:   MsgSalesShort,
		GroupID: "data",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: MsgSalesListShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, needSQL|wantUsers, func(ctx context.Context, svc *inventory.Service) error {
				t, err := svc.ListSales(ctx)
				if err != nil {
					return err
				}
				return a.printTable(cmd, t)
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "show ID",
		Short: MsgSalesShowShort,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := argInt("id", args[0])
			if err != nil {
				return err
			}
			return a.run(cmd, needSQL|wantUsers, func(ctx context.Context, svc *inventory.Service) error {
				d, err := svc.FindSale(ctx, id)
				if err != nil {
					return err
				}
				return a.printSale(cmd, d)
			})
		},
	})

	cmd.AddCommand(newSalesAddCmd(a))

	cmd.AddCommand(&cobra.Command{
		Use:   "update ID USUARIO TOTAL",
		Short: MsgSalesUpdateShort,
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := argInt("id", args[0])
			if err != nil {
				return err
			}
			idUsuario, err := argInt("usuario", args[1])
			if err != nil {
				return err
			}
			total, err := argDecimal("total", args[2])
			if err != nil {
				return err
			}
			return a.run(cmd, needSQL, func(ctx context.Context, svc *inventory.Service) error {
				if err := svc.UpdateSale(ctx, id, idUsuario, total); err != nil {
					return err
				}
				a.console(cmd.OutOrStdout()).Success(MsgSaleUpdated)
				return nil
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "delete ID",
		Short: MsgSalesDeleteShort,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := argInt("id", args[0])
			if err != nil {
				return err
			}
			return a.run(cmd, needSQL, func(ctx context.Context, svc *inventory.Service) error {
				if err := svc.DeleteSale(ctx, id); err != nil {
					return err
				}
				a.console(cmd.OutOrStdout()).Success(MsgSaleDeleted)
				return nil
			})
		},
	})

	return cmd
}

func newSalesAddCmd(a *app) *cobra.Command {
	var itemSpecs []string

	cmd := &cobra.Command{
		Use:     "add USUARIO [TOTAL]",
		Short:   MsgSalesAddShort,
		Long:    MsgSalesAddLong,
		Example: MsgSalesAddExample,
		Args:    cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			idUsuario, err := argInt("usuario", args[0])
			if err != nil {
				return err
			}
			if (len(args) == 2) == (len(itemSpecs) > 0) {
				return errors.New(errors.ErrInvalidInput, MsgSalesAddArgsErr)
			}

			if len(itemSpecs) == 0 {
				total, err := argDecimal("total", args[1])
				if err != nil {
					return err
				}
				return a.run(cmd, needSQL, func(ctx context.Context, svc *inventory.Service) error {
					id, err := svc.AddSale(ctx, idUsuario, total)
					if err != nil {
						return err
					}
					a.console(cmd.OutOrStdout()).Success(MsgSaleAdded, id)
					return nil
				})
			}

			items, err := parseItems(itemSpecs)
			if err != nil {
				return err
			}
			return a.run(cmd, needSQL, func(ctx context.Context, svc *inventory.Service) error {
				res, err := svc.CreateCompleteSale(ctx, idUsuario, items)
				if err != nil {
					return err
				}
				con := a.console(cmd.OutOrStdout())
				con.Success(MsgSaleCreated, res.ID)
				for _, l := range res.Lines {
					con.Info(MsgSaleLine, l.Producto, l.Subtotal.StringFixed(2))
				}
				for _, pid := range res.Skipped {
					con.Warning(MsgSaleSkipped, pid)
				}
				con.Success(MsgSaleCompleted, res.Total.StringFixed(2))
				return nil
			})
		},
	}

	cmd.Flags().StringArrayVar(&itemSpecs, "item", nil, MsgFlagItem)
	return cmd
}

// parseItems reads ID:CANTIDAD pairs.
func parseItems(specs []string) ([]inventory.SaleItem, error) {
	items := make([]inventory.SaleItem, 0, len(specs))
	for _, spec := range specs {
		id, qty, ok := strings.Cut(spec, ":")
		if !ok {
			return nil, errors.Newf(errors.ErrInvalidInput, "item inválido %q, se espera ID:CANTIDAD", spec).
				WithDetail("field", "item")
		}
		pid, err := argInt("item", id)
		if err != nil {
			return nil, err
		}
		cantidad, err := argInt("cantidad", qty)
		if err != nil {
			return nil, err
		}
		items = append(items, inventory.SaleItem{ProductID: pid, Cantidad: int(cantidad)})
	}
	return items, nil
}

// printSale prints the sale and its lines. The box format prints two
// tables; the other formats a single list of records, the sale first.
func (a *app) printSale(cmd *cobra.Command, d *inventory.SaleDetail) error {
	p, err := a.printer(cmd)
	if err != nil {
		return err
	}

	if p.Format() != output.FormatBox {
		recs := make([]*types.Record, 0, d.Sale.Len()+d.Lines.Len())
		for i := 0; i < d.Sale.Len(); i++ {
			recs = append(recs, d.Sale.RowRecord(i))
		}
		for i := 0; i < d.Lines.Len(); i++ {
			recs = append(recs, d.Lines.RowRecord(i))
		}
		return p.PrintRecords(recs)
	}

	if err := p.PrintTable(d.Sale); err != nil {
		return err
	}
	con := a.console(cmd.OutOrStdout())
	con.Subtitle("Detalles de la venta")
	if d.Lines.Len() == 0 {
		con.Println(con.Muted(MsgSaleNoLines))
		return nil
	}
	return p.PrintTable(d.Lines)
}
