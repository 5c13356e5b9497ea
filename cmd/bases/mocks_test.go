package bases

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/darthunder/bases/pkg/config"
	"github.com/darthunder/bases/pkg/store/document"
	"github.com/darthunder/bases/pkg/testutil"
	"github.com/darthunder/bases/pkg/types"
)

// MockSQL is a mock implementation of sqlStore
type MockSQL struct {
	mock.Mock
	closed *[]string
}

func (m *MockSQL) QueryTable(ctx context.Context, query string, args ...interface{}) (*types.Table, error) {
	ret := m.Called(ctx, query, args)
	t, _ := ret.Get(0).(*types.Table)
	return t, ret.Error(1)
}

func (m *MockSQL) ScanRow(ctx context.Context, query string, args []interface{}, dest ...interface{}) error {
	return m.Called(ctx, query, args, dest).Error(0)
}

func (m *MockSQL) Exec(ctx context.Context, query string, args ...interface{}) (int64, error) {
	ret := m.Called(ctx, query, args)
	return ret.Get(0).(int64), ret.Error(1)
}

func (m *MockSQL) InsertReturningID(ctx context.Context, table, idColumn string, columns []string, args ...interface{}) (int64, error) {
	ret := m.Called(ctx, table, idColumn, columns, args)
	return ret.Get(0).(int64), ret.Error(1)
}

func (m *MockSQL) EnsureSchema(ctx context.Context) (int, error) {
	ret := m.Called(ctx)
	return ret.Int(0), ret.Error(1)
}

func (m *MockSQL) Close() error {
	if m.closed != nil {
		*m.closed = append(*m.closed, "relational")
	}
	return nil
}

// MockUsers is a mock implementation of userStore
type MockUsers struct {
	mock.Mock
	closed *[]string
}

func (m *MockUsers) InsertUser(ctx context.Context, u document.User) error {
	return m.Called(ctx, u).Error(0)
}

func (m *MockUsers) AllUsers(ctx context.Context) ([]document.User, error) {
	ret := m.Called(ctx)
	users, _ := ret.Get(0).([]document.User)
	return users, ret.Error(1)
}

func (m *MockUsers) FindUserByName(ctx context.Context, nombre string) (document.User, error) {
	ret := m.Called(ctx, nombre)
	return ret.Get(0).(document.User), ret.Error(1)
}

func (m *MockUsers) FindUserByIndex(ctx context.Context, i int) (document.User, error) {
	ret := m.Called(ctx, i)
	return ret.Get(0).(document.User), ret.Error(1)
}

func (m *MockUsers) DeleteUserByName(ctx context.Context, nombre string) (int, error) {
	ret := m.Called(ctx, nombre)
	return ret.Int(0), ret.Error(1)
}

func (m *MockUsers) CountUsers(ctx context.Context) (int, error) {
	ret := m.Called(ctx)
	return ret.Int(0), ret.Error(1)
}

func (m *MockUsers) Close(ctx context.Context) error {
	if m.closed != nil {
		*m.closed = append(*m.closed, "document")
	}
	return nil
}

// fakeOpeners hands out the given stores, or the given errors, and counts
// how often each opener ran.
type fakeOpeners struct {
	sql      *MockSQL
	users    *MockUsers
	sqlErr   error
	usersErr error

	sqlOpened   int
	usersOpened int
}

func (f *fakeOpeners) openers() openers {
	return openers{
		sql: func(ctx context.Context, cfg config.Relational) (sqlStore, error) {
			f.sqlOpened++
			if f.sqlErr != nil {
				return nil, f.sqlErr
			}
			return f.sql, nil
		},
		users: func(ctx context.Context, cfg config.Document) (userStore, error) {
			f.usersOpened++
			if f.usersErr != nil {
				return nil, f.usersErr
			}
			return f.users, nil
		},
	}
}

// execute runs the root command in an isolated environment and returns
// its combined output.
func execute(t *testing.T, open openers, stdin string, args ...string) (string, error) {
	t.Helper()

	testutil.Isolate(t)

	cmd := newRootCmd(open)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}
