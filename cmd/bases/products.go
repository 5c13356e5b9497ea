package bases

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/darthunder/bases/pkg/inventory"
)

func newProductsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "products",
		Aliases: []string{"ropa"},
		Short:   MsgProductsShort,
		GroupID: "data",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: MsgProductsListShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, needSQL, func(ctx context.Context, svc *inventory.Service) error {
				t, err := svc.ListProducts(ctx)
				if err != nil {
					return err
				}
				return a.printTable(cmd, t)
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "find CATEGORIA",
		Short: MsgProductsFindShort,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, needSQL, func(ctx context.Context, svc *inventory.Service) error {
				t, err := svc.FindProductsByCategory(ctx, args[0])
				if err != nil {
					return err
				}
				return a.printTable(cmd, t)
			})
		},
	})

	cmd.AddCommand(newProductsAddCmd(a))

	cmd.AddCommand(&cobra.Command{
		Use:   "delete ID",
		Short: MsgProductsDelShort,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := argInt("id", args[0])
			if err != nil {
				return err
			}
			return a.run(cmd, needSQL, func(ctx context.Context, svc *inventory.Service) error {
				if err := svc.DeleteProduct(ctx, id); err != nil {
					return err
				}
				a.console(cmd.OutOrStdout()).Success(MsgProductDeleted)
				return nil
			})
		},
	})

	return cmd
}

func newProductsAddCmd(a *app) *cobra.Command {
	var p inventory.Product

	cmd := &cobra.Command{
		Use:     "add NOMBRE PRECIO",
		Short:   MsgProductsAddShort,
		Example: `  bases products add "Camisa lino" 19.99 --categoria camisa --color azul --talla M`,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			precio, err := argDecimal("precio", args[1])
			if err != nil {
				return err
			}
			p.Nombre = args[0]
			p.Precio = precio

			return a.run(cmd, needSQL, func(ctx context.Context, svc *inventory.Service) error {
				id, err := svc.AddProduct(ctx, p)
				if err != nil {
					return err
				}
				a.console(cmd.OutOrStdout()).Success(MsgProductAdded, id)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&p.Categoria, "categoria", "", MsgFlagCategory)
	cmd.Flags().StringVar(&p.Color, "color", "", MsgFlagColor)
	cmd.Flags().StringVar(&p.Talla, "talla", "", MsgFlagSize)
	return cmd
}
