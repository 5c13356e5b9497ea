package inventory

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/darthunder/bases/pkg/store/document"
	"github.com/darthunder/bases/pkg/types"
)

// MockRelational is a mock implementation of RelationalStore. Variadic
// arguments are recorded as one []interface{}.
type MockRelational struct {
	mock.Mock
}

func (m *MockRelational) QueryTable(ctx context.Context, query string, args ...interface{}) (*types.Table, error) {
	ret := m.Called(ctx, query, args)
	if ret.Get(0) == nil {
		return nil, ret.Error(1)
	}
	return ret.Get(0).(*types.Table), ret.Error(1)
}

func (m *MockRelational) ScanRow(ctx context.Context, query string, args []interface{}, dest ...interface{}) error {
	ret := m.Called(ctx, query, args, dest)
	return ret.Error(0)
}

func (m *MockRelational) Exec(ctx context.Context, query string, args ...interface{}) (int64, error) {
	ret := m.Called(ctx, query, args)
	return ret.Get(0).(int64), ret.Error(1)
}

func (m *MockRelational) InsertReturningID(ctx context.Context, table, idColumn string, columns []string, args ...interface{}) (int64, error) {
	ret := m.Called(ctx, table, idColumn, columns, args)
	return ret.Get(0).(int64), ret.Error(1)
}

// MockUsers is a mock implementation of UserStore
type MockUsers struct {
	mock.Mock
}

func (m *MockUsers) InsertUser(ctx context.Context, u document.User) error {
	return m.Called(ctx, u).Error(0)
}

func (m *MockUsers) AllUsers(ctx context.Context) ([]document.User, error) {
	ret := m.Called(ctx)
	if ret.Get(0) == nil {
		return nil, ret.Error(1)
	}
	return ret.Get(0).([]document.User), ret.Error(1)
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

var fixedNow = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func newTestService(sql *MockRelational, users *MockUsers) *Service {
	var rs RelationalStore
	if sql != nil {
		rs = sql
	}
	var us UserStore
	if users != nil {
		us = users
	}
	return New(rs, us, WithClock(func() time.Time { return fixedNow }))
}

// scanInto returns a Run func copying values into ScanRow destinations.
func scanInto(values ...interface{}) func(mock.Arguments) {
	return func(args mock.Arguments) {
		dest := args.Get(3).([]interface{})
		for i, v := range values {
			if s, ok := dest[i].(interface{ Scan(interface{}) error }); ok {
				if err := s.Scan(v); err != nil {
					panic(err)
				}
				continue
			}
			switch d := dest[i].(type) {
			case *int64:
				*d = v.(int64)
			case *string:
				*d = v.(string)
			default:
				panic("scanInto: unsupported destination")
			}
		}
	}
}
