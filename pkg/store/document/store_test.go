package document

import (
	"context"
	stderrors "errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/surrealdb/surrealdb.go/pkg/models"

	"github.com/darthunder/bases/pkg/errors"
	"github.com/darthunder/bases/pkg/types"
)

// MockBackend is a mock implementation of Backend
type MockBackend struct {
	mock.Mock
}

func (m *MockBackend) CreateUser(ctx context.Context, doc UserDoc) error {
	args := m.Called(ctx, doc)
	return args.Error(0)
}

func (m *MockBackend) QueryUsers(ctx context.Context, query string, vars map[string]interface{}) ([]UserDoc, error) {
	args := m.Called(ctx, query, vars)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]UserDoc), args.Error(1)
}

func (m *MockBackend) Count(ctx context.Context, query string, vars map[string]interface{}) (int, error) {
	args := m.Called(ctx, query, vars)
	return args.Int(0), args.Error(1)
}

func (m *MockBackend) DeleteRecord(ctx context.Context, id models.RecordID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockBackend) Close(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

var registered = time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)

func juanDoc() UserDoc {
	id := models.NewRecordID(Collection, "juan")
	return UserDoc{
		ID:            &id,
		Nombre:        "Juan",
		Email:         "juan@x.com",
		Edad:          25,
		FechaRegistro: models.CustomDateTime{Time: registered},
	}
}

func TestUserRecord(t *testing.T) {
	u := juanDoc().User()
	rec := u.Record()

	assert.Equal(t, []string{"nombre", "email", "edad", "fechaRegistro"}, rec.Keys())
	v, ok := rec.Get("fechaRegistro")
	require.True(t, ok)
	assert.Equal(t, "2024-01-15 10:30:00", v.String())
	v, _ = rec.Get("edad")
	assert.Equal(t, types.Int(25), v)
}

func TestInsertUser(t *testing.T) {
	ctx := context.Background()
	backend := new(MockBackend)
	s := New(backend)

	u := User{Nombre: "Ana", Email: "ana@x.com", Edad: 30, FechaRegistro: registered}
	backend.On("CreateUser", ctx, mock.MatchedBy(func(d UserDoc) bool {
		return d.ID == nil && d.Nombre == "Ana" && d.FechaRegistro.Time.Equal(registered)
	})).Return(nil).Once()

	require.NoError(t, s.InsertUser(ctx, u))
	backend.AssertExpectations(t)
}

func TestInsertUserError(t *testing.T) {
	ctx := context.Background()
	backend := new(MockBackend)
	backend.On("CreateUser", ctx, mock.Anything).Return(stderrors.New("socket closed"))

	err := New(backend).InsertUser(ctx, User{Nombre: "Ana"})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrExec))
}

func TestAllUsers(t *testing.T) {
	ctx := context.Background()
	backend := new(MockBackend)
	other := juanDoc()
	other.Nombre = "Ana"
	backend.On("QueryUsers", ctx, queryAll, map[string]interface{}(nil)).
		Return([]UserDoc{juanDoc(), other}, nil)

	users, err := New(backend).AllUsers(ctx)
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "Juan", users[0].Nombre)
	assert.Equal(t, "Ana", users[1].Nombre)
}

func TestFindUserByName(t *testing.T) {
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		backend := new(MockBackend)
		backend.On("QueryUsers", ctx, queryByName, map[string]interface{}{"nombre": "Juan"}).
			Return([]UserDoc{juanDoc()}, nil)

		u, err := New(backend).FindUserByName(ctx, "Juan")
		require.NoError(t, err)
		assert.Equal(t, "juan@x.com", u.Email)
	})

	t.Run("not_found", func(t *testing.T) {
		backend := new(MockBackend)
		backend.On("QueryUsers", ctx, queryByName, mock.Anything).Return([]UserDoc{}, nil)

		_, err := New(backend).FindUserByName(ctx, "Nadie")
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrNotFound))
	})

	t.Run("backend_error", func(t *testing.T) {
		backend := new(MockBackend)
		backend.On("QueryUsers", ctx, queryByName, mock.Anything).Return(nil, stderrors.New("timeout"))

		_, err := New(backend).FindUserByName(ctx, "Juan")
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrQuery))
	})
}

func TestFindUserByIndex(t *testing.T) {
	ctx := context.Background()

	t.Run("zero_based_skip", func(t *testing.T) {
		backend := new(MockBackend)
		backend.On("QueryUsers", ctx, queryByIndex, map[string]interface{}{"skip": 2}).
			Return([]UserDoc{juanDoc()}, nil).Once()

		u, err := New(backend).FindUserByIndex(ctx, 2)
		require.NoError(t, err)
		assert.Equal(t, "Juan", u.Nombre)
		backend.AssertExpectations(t)
	})

	t.Run("past_the_end", func(t *testing.T) {
		backend := new(MockBackend)
		backend.On("QueryUsers", ctx, queryByIndex, mock.Anything).Return([]UserDoc{}, nil)

		_, err := New(backend).FindUserByIndex(ctx, 10)
		assert.True(t, errors.IsErrorCode(err, errors.ErrNotFound))
	})

	t.Run("negative", func(t *testing.T) {
		backend := new(MockBackend)
		_, err := New(backend).FindUserByIndex(ctx, -1)
		assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
		backend.AssertNotCalled(t, "QueryUsers", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestDeleteUserByName(t *testing.T) {
	ctx := context.Background()

	t.Run("deletes_first_match", func(t *testing.T) {
		backend := new(MockBackend)
		doc := juanDoc()
		backend.On("QueryUsers", ctx, queryByName, map[string]interface{}{"nombre": "Juan"}).
			Return([]UserDoc{doc}, nil)
		backend.On("DeleteRecord", ctx, *doc.ID).Return(nil).Once()

		n, err := New(backend).DeleteUserByName(ctx, "Juan")
		require.NoError(t, err)
		assert.Equal(t, 1, n)
		backend.AssertExpectations(t)
	})

	t.Run("nothing_to_delete", func(t *testing.T) {
		backend := new(MockBackend)
		backend.On("QueryUsers", ctx, queryByName, mock.Anything).Return([]UserDoc{}, nil)

		n, err := New(backend).DeleteUserByName(ctx, "Nadie")
		require.NoError(t, err)
		assert.Equal(t, 0, n)
		backend.AssertNotCalled(t, "DeleteRecord", mock.Anything, mock.Anything)
	})

	t.Run("missing_id", func(t *testing.T) {
		backend := new(MockBackend)
		doc := juanDoc()
		doc.ID = nil
		backend.On("QueryUsers", ctx, queryByName, mock.Anything).Return([]UserDoc{doc}, nil)

		_, err := New(backend).DeleteUserByName(ctx, "Juan")
		assert.True(t, errors.IsErrorCode(err, errors.ErrInternal))
	})
}

func TestCountUsers(t *testing.T) {
	ctx := context.Background()
	backend := new(MockBackend)
	backend.On("Count", ctx, queryCount, map[string]interface{}(nil)).Return(3, nil)

	n, err := New(backend).CountUsers(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
}

func TestClose(t *testing.T) {
	ctx := context.Background()
	backend := new(MockBackend)
	backend.On("Close", ctx).Return(nil).Once()

	require.NoError(t, New(backend).Close(ctx))
	backend.AssertExpectations(t)

	var nilStore *Store
	assert.NoError(t, nilStore.Close(ctx))
}
