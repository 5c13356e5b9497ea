package inventory

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/darthunder/bases/pkg/errors"
	"github.com/darthunder/bases/pkg/logging"
	"github.com/darthunder/bases/pkg/store/document"
	"github.com/darthunder/bases/pkg/types"
)

// RelationalStore is what the services need from pkg/store/relational.
type RelationalStore interface {
	QueryTable(ctx context.Context, query string, args ...interface{}) (*types.Table, error)
	ScanRow(ctx context.Context, query string, args []interface{}, dest ...interface{}) error
	Exec(ctx context.Context, query string, args ...interface{}) (int64, error)
	InsertReturningID(ctx context.Context, table, idColumn string, columns []string, args ...interface{}) (int64, error)
}

// UserStore is what the services need from pkg/store/document.
type UserStore interface {
	InsertUser(ctx context.Context, u document.User) error
	AllUsers(ctx context.Context) ([]document.User, error)
	FindUserByName(ctx context.Context, nombre string) (document.User, error)
	FindUserByIndex(ctx context.Context, i int) (document.User, error)
	DeleteUserByName(ctx context.Context, nombre string) (int, error)
	CountUsers(ctx context.Context) (int, error)
}

// Service groups every store operation. Either store may be nil when the
// caller only needs the other one; operations needing a missing store fail
// with INTERNAL.
type Service struct {
	sql   RelationalStore
	users UserStore
	now   func() time.Time
	log   zerolog.Logger
}

// Option customizes a Service
type Option func(*Service)

// WithClock replaces time.Now, used to stamp users and sales
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// New creates a Service.
func New(sql RelationalStore, users UserStore, opts ...Option) *Service {
	s := &Service{
		sql:   sql,
		users: users,
		now:   time.Now,
		log:   logging.GetLogger("inventory"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) relational() (RelationalStore, error) {
	if s.sql == nil {
		return nil, errors.New(errors.ErrInternal, "relational store not configured")
	}
	return s.sql, nil
}

func (s *Service) userStore() (UserStore, error) {
	if s.users == nil {
		return nil, errors.New(errors.ErrInternal, "user store not configured")
	}
	return s.users, nil
}
