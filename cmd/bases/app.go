package bases

import (
	"context"
	"io"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/darthunder/bases/pkg/config"
	"github.com/darthunder/bases/pkg/errors"
	"github.com/darthunder/bases/pkg/inventory"
	"github.com/darthunder/bases/pkg/logging"
	"github.com/darthunder/bases/pkg/output"
	"github.com/darthunder/bases/pkg/render"
	"github.com/darthunder/bases/pkg/store/document"
	"github.com/darthunder/bases/pkg/store/relational"
	"github.com/darthunder/bases/pkg/style"
	"github.com/darthunder/bases/pkg/types"
)

// sqlStore is the relational store as used by the commands
type sqlStore interface {
	inventory.RelationalStore
	EnsureSchema(ctx context.Context) (int, error)
	Close() error
}

// userStore is the document store as used by the commands
type userStore interface {
	inventory.UserStore
	Close(ctx context.Context) error
}

// openers connect the stores. Tests replace them.
type openers struct {
	sql   func(ctx context.Context, cfg config.Relational) (sqlStore, error)
	users func(ctx context.Context, cfg config.Document) (userStore, error)
}

func defaultOpeners() openers {
	return openers{
		sql: func(ctx context.Context, cfg config.Relational) (sqlStore, error) {
			s, err := relational.Open(ctx, cfg)
			if err != nil {
				return nil, err
			}
			return s, nil
		},
		users: func(ctx context.Context, cfg config.Document) (userStore, error) {
			s, err := document.Open(ctx, cfg)
			if err != nil {
				return nil, err
			}
			return s, nil
		},
	}
}

// globalOptions holds the persistent flags
type globalOptions struct {
	verbosity  int
	configPath string
	format     string
	noColor    bool
	fit        bool
}

// need selects the stores a command uses
type need int

const (
	needSQL need = 1 << iota
	needUsers
	// wantUsers opens the document store when reachable and goes on
	// without it otherwise
	wantUsers
)

// app carries the state of one command invocation: configuration and the
// stores opened so far.
type app struct {
	opts  *globalOptions
	open  openers
	cfg   *config.Config
	sql   sqlStore
	users userStore
	log   zerolog.Logger
}

func newApp(opts *globalOptions, open openers) *app {
	return &app{opts: opts, open: open, log: logging.GetLogger("cmd")}
}

// config loads the configuration once, applying the flag overrides.
func (a *app) config(cmd *cobra.Command) (*config.Config, error) {
	if a.cfg != nil {
		return a.cfg, nil
	}

	overrides := map[string]interface{}{}
	flags := cmd.Flags()
	if flags.Changed("format") {
		overrides["output.format"] = a.opts.format
	}
	if flags.Changed("no-color") {
		overrides["output.no_color"] = a.opts.noColor
	}
	if flags.Changed("fit") {
		overrides["output.record_fit"] = a.opts.fit
	}

	cfg, err := config.Load(config.LoadOptions{Path: a.opts.configPath, Overrides: overrides})
	if err != nil {
		return nil, err
	}
	a.log.Debug().Interface("config", cfg.Redacted()).Msg("Configuration loaded")
	a.cfg = cfg
	return cfg, nil
}

// service opens the stores selected by n and returns a service over them.
func (a *app) service(cmd *cobra.Command, n need) (*inventory.Service, error) {
	ctx := cmd.Context()
	cfg, err := a.config(cmd)
	if err != nil {
		return nil, err
	}

	if n&needSQL != 0 && a.sql == nil {
		s, err := a.open.sql(ctx, cfg.Relational)
		if err != nil {
			return nil, err
		}
		a.sql = s
	}

	if n&(needUsers|wantUsers) != 0 && a.users == nil {
		s, err := a.open.users(ctx, cfg.Document)
		switch {
		case err == nil:
			a.users = s
		case n&needUsers != 0:
			return nil, err
		default:
			a.log.Warn().Err(err).Msg("Document store unavailable, continuing without it")
		}
	}

	var rs inventory.RelationalStore
	if a.sql != nil {
		rs = a.sql
	}
	var us inventory.UserStore
	if a.users != nil {
		us = a.users
	}
	return inventory.New(rs, us), nil
}

// close releases the stores, relational first.
func (a *app) close(ctx context.Context) {
	if a.sql != nil {
		if err := a.sql.Close(); err != nil {
			a.log.Warn().Err(err).Msg("Failed to close relational store")
		} else {
			a.log.Debug().Msg("Relational store closed")
		}
		a.sql = nil
	}
	if a.users != nil {
		if err := a.users.Close(ctx); err != nil {
			a.log.Warn().Err(err).Msg("Failed to close document store")
		} else {
			a.log.Debug().Msg("Document store closed")
		}
		a.users = nil
	}
}

// run opens the needed stores, calls fn and closes the stores.
func (a *app) run(cmd *cobra.Command, n need, fn func(ctx context.Context, svc *inventory.Service) error) error {
	defer a.close(cmd.Context())

	svc, err := a.service(cmd, n)
	if err != nil {
		return err
	}
	return fn(cmd.Context(), svc)
}

// printer returns a data printer on the command output.
func (a *app) printer(cmd *cobra.Command) (*output.Printer, error) {
	cfg, err := a.config(cmd)
	if err != nil {
		return nil, err
	}
	format, err := output.ParseFormat(cfg.Output.Format)
	if err != nil {
		return nil, err
	}
	return output.NewPrinter(cmd.OutOrStdout(), format, render.RecordOptions{
		KeyWidth:   cfg.Output.RecordKeyWidth,
		ValueWidth: cfg.Output.RecordValueWidth,
		Fit:        cfg.Output.RecordFit,
	}), nil
}

// console returns a message console on w. Color follows the loaded
// configuration when there is one and the --no-color flag otherwise.
func (a *app) console(w io.Writer) *style.Console {
	noColor := a.opts.noColor
	if a.cfg != nil {
		noColor = a.cfg.Output.NoColor
	}
	return style.NewConsole(w, style.ColorEnabled(w, noColor))
}

// argInt parses a numeric argument.
func argInt(name, s string) (int64, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, errors.Newf(errors.ErrInvalidInput, "%s debe ser un número entero: %q", name, s).
			WithDetail("field", name)
	}
	return n, nil
}

// argDecimal parses a decimal argument; a comma is accepted as separator.
func argDecimal(name, s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.Replace(strings.TrimSpace(s), ",", ".", 1))
	if err != nil {
		return decimal.Zero, errors.Newf(errors.ErrInvalidInput, "%s debe ser un número: %q", name, s).
			WithDetail("field", name)
	}
	return d, nil
}

// printTable prints t with the configured printer.
func (a *app) printTable(cmd *cobra.Command, t *types.Table) error {
	p, err := a.printer(cmd)
	if err != nil {
		return err
	}
	return p.PrintTable(t)
}
