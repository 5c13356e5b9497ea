package bases

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/darthunder/bases/internal/version"
	"github.com/darthunder/bases/pkg/errors"
	"github.com/darthunder/bases/pkg/guide"
	"github.com/darthunder/bases/pkg/logging"
	"github.com/darthunder/bases/pkg/menu"
	"github.com/darthunder/bases/pkg/style"
)

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	return newRootCmd(defaultOpeners())
}

func newRootCmd(open openers) *cobra.Command {
	// Initialize custom template formatting functions
	initTemplateFormatting()

	opts := &globalOptions{}
	a := newApp(opts, open)

	rootCmd := &cobra.Command{
		Use:     "bases",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		Args:    cobra.NoArgs,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(opts.verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMenu(a, cmd)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	// Global flags
	pf := rootCmd.PersistentFlags()
	pf.CountVarP(&opts.verbosity, "verbose", "v", MsgFlagVerbose)
	pf.StringVar(&opts.configPath, "config", "", MsgFlagConfig)
	pf.StringVar(&opts.format, "format", "box", MsgFlagFormat)
	pf.BoolVar(&opts.noColor, "no-color", false, MsgFlagNoColor)
	pf.BoolVar(&opts.fit, "fit", false, MsgFlagFit)

	_ = rootCmd.RegisterFlagCompletionFunc("format", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return []string{"box", "json", "yaml", "xml"}, cobra.ShellCompDirectiveNoFileComp
	})

	// Disable automatic help command, topics are served by "guide"
	rootCmd.SetHelpCommand(&cobra.Command{Hidden: true})

	rootCmd.AddGroup(&cobra.Group{
		ID:    "data",
		Title: "DATOS:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "admin",
		Title: "ADMINISTRACIÓN:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "misc",
		Title: "OTROS:",
	})

	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(newUsersCmd(a))
	rootCmd.AddCommand(newProductsCmd(a))
	rootCmd.AddCommand(newSalesCmd(a))
	rootCmd.AddCommand(newStatsCmd(a))
	rootCmd.AddCommand(newSchemaCmd(a))
	rootCmd.AddCommand(newConfigCmd(a))
	rootCmd.AddCommand(newGuideCmd(a))
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())

	return rootCmd
}

// runMenu starts the interactive session. Each store is optional: the
// session starts as long as one of them is reachable.
func runMenu(a *app, cmd *cobra.Command) error {
	defer a.close(cmd.Context())

	if _, err := a.config(cmd); err != nil {
		return err
	}
	printer, err := a.printer(cmd)
	if err != nil {
		return err
	}
	con := a.console(cmd.OutOrStdout())

	svc, err := a.service(cmd, needSQL|wantUsers)
	if err != nil {
		sqlErr := err
		con.Warning("Base relacional no disponible: %s", errors.Message(sqlErr))
		if svc, err = a.service(cmd, wantUsers); err != nil {
			return err
		}
		if a.users == nil {
			return sqlErr
		}
	} else if a.users == nil {
		con.Warning("Base de documentos no disponible: la gestión de usuarios no funcionará")
	}

	help := guide.New(guideRenderer(con))
	return menu.New(svc, printer, con, menu.NewPrompter(cmd.InOrStdin(), con), help).Run(cmd.Context())
}

// guideRenderer renders markdown with glamour on color terminals.
func guideRenderer(con *style.Console) guide.Renderer {
	if con.Color() {
		return guide.NewGlamourRenderer()
	}
	return &guide.PlainRenderer{}
}
