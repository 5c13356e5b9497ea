package bases

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/darthunder/bases/pkg/config"
	"github.com/darthunder/bases/pkg/errors"
	"github.com/darthunder/bases/pkg/inventory"
	"github.com/darthunder/bases/pkg/store/document"
	"github.com/darthunder/bases/pkg/testutil"
)

func TestVersionCmd(t *testing.T) {
	out, err := execute(t, (&fakeOpeners{}).openers(), "", "version")
	require.NoError(t, err)
	assert.Contains(t, out, "bases version dev")
	assert.Contains(t, out, "commit: unknown")
}

func TestGuideCmd(t *testing.T) {
	out, err := execute(t, (&fakeOpeners{}).openers(), "", "guide")
	require.NoError(t, err)
	assert.Contains(t, out, "# Uso")
	assert.Contains(t, out, "Temas disponibles: configuracion, formatos, uso")

	out, err = execute(t, (&fakeOpeners{}).openers(), "", "guide", "FORMATOS")
	require.NoError(t, err)
	assert.NotContains(t, out, "Temas disponibles")

	_, err = execute(t, (&fakeOpeners{}).openers(), "", "guide", "nada")
	assert.True(t, errors.IsErrorCode(err, errors.ErrNotFound))
}

func TestConfigCmds(t *testing.T) {
	t.Run("show_redacts_secrets", func(t *testing.T) {
		f := &fakeOpeners{}
		out, err := execute(t, f.openers(), "", "config", "show")
		require.NoError(t, err)
		assert.Contains(t, out, "CLAVE")
		assert.Contains(t, out, "relational.driver")
		assert.Contains(t, out, "oracle")
		assert.Contains(t, out, "****")
		assert.NotContains(t, out, "123")
		assert.Zero(t, f.sqlOpened, "config show never connects")
	})

	t.Run("show_honors_format_flag", func(t *testing.T) {
		out, err := execute(t, (&fakeOpeners{}).openers(), "", "config", "show", "--format", "json")
		require.NoError(t, err)
		assert.Contains(t, out, `"CLAVE": "output.format"`)
		assert.Contains(t, out, `"VALOR": "json"`)
	})

	t.Run("init_writes_once", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bases.toml")
		open := (&fakeOpeners{}).openers()

		out, err := execute(t, open, "", "config", "init", "--config", path)
		require.NoError(t, err)
		assert.Contains(t, out, "Configuración escrita en "+path)
		require.True(t, testutil.FileExists(t, path))

		_, err = execute(t, open, "", "config", "init", "--config", path)
		assert.True(t, errors.IsErrorCode(err, errors.ErrAlreadyExists))

		_, err = execute(t, open, "", "config", "init", "--config", path, "--force")
		assert.NoError(t, err)

		cfg, err := config.Load(config.LoadOptions{Path: path, SkipEnv: true})
		require.NoError(t, err)
		assert.Equal(t, config.DriverOracle, cfg.Relational.Driver)
	})

	t.Run("invalid_format_fails_before_connecting", func(t *testing.T) {
		f := &fakeOpeners{sql: new(MockSQL), users: new(MockUsers)}
		_, err := execute(t, f.openers(), "", "stats", "--format", "csv")
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigValid))
		assert.Zero(t, f.sqlOpened)
		assert.Zero(t, f.usersOpened)
	})
}

func TestUsersCmds(t *testing.T) {
	t.Run("list", func(t *testing.T) {
		users := new(MockUsers)
		users.On("AllUsers", mock.Anything).Return([]document.User{
			{Nombre: "Juan", Email: "juan@x.com", Edad: 25, FechaRegistro: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)},
		}, nil)
		f := &fakeOpeners{users: users}

		out, err := execute(t, f.openers(), "", "users", "list")
		require.NoError(t, err)
		assert.Contains(t, out, "Juan")
		assert.Contains(t, out, "╔")
		assert.Zero(t, f.sqlOpened, "users only need the document store")
	})

	t.Run("list_empty", func(t *testing.T) {
		users := new(MockUsers)
		users.On("AllUsers", mock.Anything).Return([]document.User{}, nil)

		out, err := execute(t, (&fakeOpeners{users: users}).openers(), "", "users", "list")
		require.NoError(t, err)
		assert.Contains(t, out, "No hay usuarios registrados.")
	})

	t.Run("add", func(t *testing.T) {
		users := new(MockUsers)
		users.On("InsertUser", mock.Anything, mock.MatchedBy(func(u document.User) bool {
			return u.Nombre == "Ana" && u.Email == "ana@x.com" && u.Edad == 30
		})).Return(nil).Once()

		out, err := execute(t, (&fakeOpeners{users: users}).openers(), "", "users", "add", "Ana", "ana@x.com", "30")
		require.NoError(t, err)
		assert.Contains(t, out, "Usuario agregado con éxito!")
		users.AssertExpectations(t)
	})

	t.Run("add_rejects_bad_age_before_connecting", func(t *testing.T) {
		f := &fakeOpeners{users: new(MockUsers)}
		_, err := execute(t, f.openers(), "", "users", "add", "Ana", "ana@x.com", "treinta")
		assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
		assert.Zero(t, f.usersOpened)
	})

	t.Run("connect_failure", func(t *testing.T) {
		f := &fakeOpeners{usersErr: errors.New(errors.ErrConnect, "cannot reach document store")}
		_, err := execute(t, f.openers(), "", "users", "list")
		assert.True(t, errors.IsErrorCode(err, errors.ErrConnect))
	})
}

func TestStatsClosesRelationalFirst(t *testing.T) {
	var closed []string
	db := &MockSQL{closed: &closed}
	users := &MockUsers{closed: &closed}

	users.On("CountUsers", mock.Anything).Return(2, nil)
	db.On("ScanRow", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)

	out, err := execute(t, (&fakeOpeners{sql: db, users: users}).openers(), "", "stats")
	require.NoError(t, err)
	assert.Contains(t, out, "usuarios")
	assert.Contains(t, out, "valorInventario")
	assert.Equal(t, []string{"relational", "document"}, closed)
}

func TestSalesAddCmd(t *testing.T) {
	t.Run("total_and_items_are_exclusive", func(t *testing.T) {
		f := &fakeOpeners{sql: new(MockSQL)}
		_, err := execute(t, f.openers(), "", "sales", "add", "0", "10", "--item", "7:1")
		assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))

		_, err = execute(t, f.openers(), "", "sales", "add", "0")
		assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
		assert.Zero(t, f.sqlOpened)
	})

	t.Run("simple", func(t *testing.T) {
		db := new(MockSQL)
		db.On("InsertReturningID", mock.Anything, "Ventas", "idVenta", mock.Anything, mock.Anything).Return(int64(5), nil)

		out, err := execute(t, (&fakeOpeners{sql: db}).openers(), "", "sales", "add", "1", "20,50")
		require.NoError(t, err)
		assert.Contains(t, out, "Venta agregada con éxito! (ID 5)")
	})

	t.Run("complete", func(t *testing.T) {
		db := new(MockSQL)
		db.On("InsertReturningID", mock.Anything, "Ventas", "idVenta", mock.Anything, mock.Anything).Return(int64(10), nil)
		db.On("ScanRow", mock.Anything, mock.Anything, []interface{}{int64(7)}, mock.Anything).
			Run(func(args mock.Arguments) {
				dest := args.Get(3).([]interface{})
				*dest[0].(*decimal.Decimal) = decimal.RequireFromString("19.99")
				*dest[1].(*string) = "Camisa"
			}).Return(nil)
		db.On("ScanRow", mock.Anything, mock.Anything, []interface{}{int64(99)}, mock.Anything).
			Return(errors.New(errors.ErrNotFound, "no rows"))
		db.On("Exec", mock.Anything, mock.Anything, mock.Anything).Return(int64(1), nil)

		out, err := execute(t, (&fakeOpeners{sql: db}).openers(), "", "sales", "add", "0", "--item", "7:2", "--item", "99:1")
		require.NoError(t, err)
		assert.Contains(t, out, "Venta creada con ID: 10")
		assert.Contains(t, out, "Producto 'Camisa' agregado - Subtotal: $39.98")
		assert.Contains(t, out, "Aviso: Producto 99 no encontrado")
		assert.Contains(t, out, "Venta completada - Total: $39.98")
	})
}

func TestParseItems(t *testing.T) {
	items, err := parseItems([]string{"7:2", " 8 : 1 "})
	require.NoError(t, err)
	assert.Equal(t, []inventory.SaleItem{{ProductID: 7, Cantidad: 2}, {ProductID: 8, Cantidad: 1}}, items)

	for _, bad := range []string{"7", "x:1", "7:y"} {
		_, err := parseItems([]string{bad})
		assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput), bad)
	}
}

func TestSchemaInitCmd(t *testing.T) {
	db := new(MockSQL)
	db.On("EnsureSchema", mock.Anything).Return(3, nil)

	out, err := execute(t, (&fakeOpeners{sql: db}).openers(), "", "schema", "init")
	require.NoError(t, err)
	assert.Contains(t, out, "Esquema listo: 3 objetos creados")
}

func TestProductsDeleteRejectsBadID(t *testing.T) {
	f := &fakeOpeners{sql: new(MockSQL)}
	_, err := execute(t, f.openers(), "", "products", "delete", "abc")
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
	assert.Zero(t, f.sqlOpened)
}

func TestInteractiveMenu(t *testing.T) {
	t.Run("runs_with_only_document_store", func(t *testing.T) {
		f := &fakeOpeners{users: new(MockUsers), sqlErr: errors.New(errors.ErrConnect, "cannot reach oracle")}

		out, err := execute(t, f.openers(), "0\n")
		require.NoError(t, err)
		assert.Contains(t, out, "Base relacional no disponible: cannot reach oracle")
		assert.Contains(t, out, "=== MENÚ PRINCIPAL ===")
		assert.Contains(t, out, "Saliendo del sistema...")
	})

	t.Run("runs_with_only_relational_store", func(t *testing.T) {
		f := &fakeOpeners{sql: new(MockSQL), usersErr: errors.New(errors.ErrConnect, "cannot reach surrealdb")}

		out, err := execute(t, f.openers(), "0\n")
		require.NoError(t, err)
		assert.Contains(t, out, "Base de documentos no disponible")
		assert.Contains(t, out, "=== MENÚ PRINCIPAL ===")
	})

	t.Run("fails_without_any_store", func(t *testing.T) {
		f := &fakeOpeners{
			sqlErr:   errors.New(errors.ErrConnect, "cannot reach oracle"),
			usersErr: errors.New(errors.ErrConnect, "cannot reach surrealdb"),
		}
		_, err := execute(t, f.openers(), "0\n")
		assert.True(t, errors.IsErrorCode(err, errors.ErrConnect))
	})

	t.Run("end_of_input_closes_stores", func(t *testing.T) {
		var closed []string
		f := &fakeOpeners{sql: &MockSQL{closed: &closed}, users: &MockUsers{closed: &closed}}

		_, err := execute(t, f.openers(), "")
		require.NoError(t, err)
		assert.Equal(t, []string{"relational", "document"}, closed)
	})
}
