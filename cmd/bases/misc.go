package bases

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/darthunder/bases/internal/version"
	"github.com/darthunder/bases/pkg/config"
	"github.com/darthunder/bases/pkg/guide"
	"github.com/darthunder/bases/pkg/inventory"
	"github.com/darthunder/bases/pkg/types"
)

func newStatsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "stats",
		Aliases: []string{"estadisticas"},
		Short:   MsgStatsShort,
		GroupID: "data",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, needSQL|needUsers, func(ctx context.Context, svc *inventory.Service) error {
				st, err := svc.Stats(ctx)
				if err != nil {
					return err
				}
				p, err := a.printer(cmd)
				if err != nil {
					return err
				}
				return p.PrintRecord(st.Record())
			})
		},
	}
}

func newSchemaCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "schema",
		Short:   MsgSchemaShort,
		GroupID: "admin",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "init",
		Short: MsgSchemaInitShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			defer a.close(cmd.Context())
			if _, err := a.service(cmd, needSQL); err != nil {
				return err
			}
			n, err := a.sql.EnsureSchema(cmd.Context())
			if err != nil {
				return err
			}
			a.console(cmd.OutOrStdout()).Success(MsgSchemaCreated, n)
			return nil
		},
	})

	return cmd
}

func newConfigCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "config",
		Short:   MsgConfigShort,
		Long:    MsgConfigLong,
		GroupID: "admin",
	}

	var force bool
	initCmd := &cobra.Command{
		Use:   "init",
		Short: MsgConfigInitShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := a.opts.configPath
			if path == "" {
				path = config.DefaultPath()
			}
			if err := config.WriteDefault(path, force); err != nil {
				return err
			}
			a.console(cmd.OutOrStdout()).Success(MsgConfigWritten, path)
			return nil
		},
	}
	initCmd.Flags().BoolVarP(&force, "force", "f", false, MsgFlagForce)
	cmd.AddCommand(initCmd)

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: MsgConfigShowShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.config(cmd)
			if err != nil {
				return err
			}
			t := types.NewTable("CLAVE", "VALOR")
			for _, e := range cfg.Redacted().Entries() {
				if err := t.AppendRow(types.String(e.Key), types.FromAny(e.Value)); err != nil {
					return err
				}
			}
			return a.printTable(cmd, t)
		},
	})

	return cmd
}

func newGuideCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "guide [tema]",
		Aliases: []string{"ayuda"},
		Short:   MsgGuideShort,
		GroupID: "misc",
		Args:    cobra.MaximumNArgs(1),
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			if len(args) > 0 {
				return nil, cobra.ShellCompDirectiveNoFileComp
			}
			return guide.New(nil).ListTopics(), cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			con := a.console(cmd.OutOrStdout())
			help := guide.New(guideRenderer(con))

			topic := ""
			if len(args) == 1 {
				topic = args[0]
			}
			if err := help.Show(cmd.OutOrStdout(), topic); err != nil {
				return err
			}
			if topic == "" {
				con.Println(con.Muted(fmt.Sprintf(MsgGuideTopics, strings.Join(help.ListTopics(), ", "))))
			}
			return nil
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), MsgVersionFormat, version.Version, version.Commit, version.Date)
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		GroupID:               "misc",
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletionV2(out, true)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			default:
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
		},
	}
}
