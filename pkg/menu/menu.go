package menu

import (
	"context"
	"strings"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/darthunder/bases/pkg/errors"
	"github.com/darthunder/bases/pkg/guide"
	"github.com/darthunder/bases/pkg/inventory"
	"github.com/darthunder/bases/pkg/logging"
	"github.com/darthunder/bases/pkg/output"
	"github.com/darthunder/bases/pkg/store/document"
	"github.com/darthunder/bases/pkg/style"
	"github.com/darthunder/bases/pkg/types"
)

// Service is the set of inventory operations the menus dispatch to.
// *inventory.Service implements it.
type Service interface {
	AddUser(ctx context.Context, nombre, email string, edad int) (document.User, error)
	ListUsers(ctx context.Context) ([]*types.Record, error)
	FindUser(ctx context.Context, nombre string) (*types.Record, error)
	DeleteUser(ctx context.Context, nombre string) error

	AddProduct(ctx context.Context, p inventory.Product) (int64, error)
	ListProducts(ctx context.Context) (*types.Table, error)
	FindProductsByCategory(ctx context.Context, categoria string) (*types.Table, error)
	DeleteProduct(ctx context.Context, id int64) error

	AddSale(ctx context.Context, idUsuario int64, total decimal.Decimal) (int64, error)
	ListSales(ctx context.Context) (*types.Table, error)
	FindSale(ctx context.Context, id int64) (*inventory.SaleDetail, error)
	UpdateSale(ctx context.Context, id, idUsuario int64, total decimal.Decimal) error
	SaleExists(ctx context.Context, id int64) (bool, error)
	DeleteSale(ctx context.Context, id int64) error
	CreateCompleteSale(ctx context.Context, idUsuario int64, items []inventory.SaleItem) (*inventory.SaleResult, error)

	Stats(ctx context.Context) (inventory.Stats, error)
}

var _ Service = (*inventory.Service)(nil)

const selectPrompt = "Seleccione una opción: "

// Menu is an interactive session over a Service.
type Menu struct {
	svc   Service
	out   *output.Printer
	con   *style.Console
	in    *Prompter
	guide *guide.Manager
	log   zerolog.Logger
}

// New creates a menu. help may be nil, in which case the help entry only
// reports that no help is available.
func New(svc Service, out *output.Printer, con *style.Console, in *Prompter, help *guide.Manager) *Menu {
	return &Menu{
		svc:   svc,
		out:   out,
		con:   con,
		in:    in,
		guide: help,
		log:   logging.GetLogger("menu"),
	}
}

// entry is one numbered option of a menu
type entry struct {
	key   string
	label string
	run   func(ctx context.Context) error
}

// screen is a menu: its options and the keys that leave it. An entry
// without a run func is an exit option listed in place; exitLabel, when
// set, is listed last under exitKeys[0].
type screen struct {
	title     string
	entries   []entry
	exitKeys  []string
	exitLabel string
	exitMsg   string
}

// Run shows the main menu until the user leaves or the input ends.
func (m *Menu) Run(ctx context.Context) error {
	done := logging.LogOperationStart(m.log, "menu session")
	defer done()

	err := m.loop(ctx, m.mainScreen())
	if errors.IsErrorCode(err, errors.ErrInputClosed) {
		m.log.Debug().Msg("Input closed, ending session")
		return nil
	}
	return err
}

func (m *Menu) mainScreen() screen {
	return screen{
		title: "=== MENÚ PRINCIPAL ===",
		entries: []entry{
			{"1", "Gestión de Usuarios", func(ctx context.Context) error { return m.loop(ctx, m.usersScreen()) }},
			{"2", "Gestión de Ropa", func(ctx context.Context) error { return m.loop(ctx, m.productsScreen()) }},
			{"3", "Gestión de Ventas", func(ctx context.Context) error { return m.loop(ctx, m.salesScreen()) }},
			{"4", "Salir", nil},
			{"5", "Estadísticas", m.showStats},
			{"6", "Ayuda", m.showHelp},
		},
		exitKeys: []string{"4", "0"},
		exitMsg:  "Saliendo del sistema...",
	}
}

// loop shows s until one of its exit keys is chosen. Errors from an entry
// are reported and the menu shown again, except a closed input or a
// cancelled context, which are returned.
func (m *Menu) loop(ctx context.Context, s screen) error {
	for {
		if err := ctx.Err(); err != nil {
			return errors.Wrap(err, errors.ErrCancelled, "sesión cancelada")
		}

		m.con.Title(s.title)
		for _, e := range s.entries {
			m.con.Option(e.key, e.label)
		}
		if s.exitLabel != "" {
			m.con.Option(s.exitKeys[0], s.exitLabel)
		}

		choice, err := m.in.Line(selectPrompt)
		if err != nil {
			return err
		}

		if contains(s.exitKeys, choice) {
			m.con.Println(s.exitMsg)
			return nil
		}

		e, ok := find(s.entries, choice)
		if !ok {
			m.con.Warning("Opción no válida")
			continue
		}

		if err := e.run(ctx); err != nil {
			if errors.IsErrorCode(err, errors.ErrInputClosed) || errors.IsErrorCode(err, errors.ErrCancelled) {
				return err
			}
			m.report(err)
		}
	}
}

func (m *Menu) report(err error) {
	m.log.Warn().Err(err).Str("code", string(errors.GetErrorCode(err))).Msg("Operation failed")
	m.con.Error("%s", errors.Message(err))
}

func (m *Menu) showStats(ctx context.Context) error {
	st, err := m.svc.Stats(ctx)
	if err != nil {
		return err
	}
	m.con.Title("=== ESTADÍSTICAS ===")
	return m.out.PrintRecord(st.Record())
}

func (m *Menu) showHelp(_ context.Context) error {
	if m.guide == nil {
		m.con.Warning("No hay ayuda disponible")
		return nil
	}
	if err := m.guide.Show(m.con.Writer(), ""); err != nil {
		return err
	}
	m.con.Println(m.con.Muted("Temas disponibles: " + strings.Join(m.guide.ListTopics(), ", ") + " (bases guide TEMA)"))
	return nil
}

func contains(keys []string, k string) bool {
	for _, key := range keys {
		if key == k {
			return true
		}
	}
	return false
}

func find(entries []entry, key string) (entry, bool) {
	for _, e := range entries {
		if e.key == key {
			return e, true
		}
	}
	return entry{}, false
}
