package bases

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/darthunder/bases/pkg/inventory"
	"github.com/darthunder/bases/pkg/output"
)

func newUsersCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "users",
		Aliases: []string{"usuarios"},
		Short:   MsgUsersShort,
		GroupID: "data",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: MsgUsersListShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, needUsers, func(ctx context.Context, svc *inventory.Service) error {
				recs, err := svc.ListUsers(ctx)
				if err != nil {
					return err
				}
				p, err := a.printer(cmd)
				if err != nil {
					return err
				}
				if len(recs) == 0 && p.Format() == output.FormatBox {
					a.console(cmd.OutOrStdout()).Info(MsgNoUsers)
					return nil
				}
				return p.PrintRecords(recs)
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "find NOMBRE",
		Short: MsgUsersFindShort,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, needUsers, func(ctx context.Context, svc *inventory.Service) error {
				rec, err := svc.FindUser(ctx, args[0])
				if err != nil {
					return err
				}
				p, err := a.printer(cmd)
				if err != nil {
					return err
				}
				return p.PrintRecord(rec)
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "add NOMBRE EMAIL EDAD",
		Short: MsgUsersAddShort,
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			edad, err := argInt("edad", args[2])
			if err != nil {
				return err
			}
			return a.run(cmd, needUsers, func(ctx context.Context, svc *inventory.Service) error {
				if _, err := svc.AddUser(ctx, args[0], args[1], int(edad)); err != nil {
					return err
				}
				a.console(cmd.OutOrStdout()).Success(MsgUserAdded)
				return nil
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "delete NOMBRE",
		Short: MsgUsersDeleteShort,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, needUsers, func(ctx context.Context, svc *inventory.Service) error {
				if err := svc.DeleteUser(ctx, args[0]); err != nil {
					return err
				}
				a.console(cmd.OutOrStdout()).Success(MsgUserDeleted)
				return nil
			})
		},
	})

	return cmd
}
