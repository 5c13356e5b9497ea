package document

import (
	"context"
	"fmt"

	surrealdb "github.com/surrealdb/surrealdb.go"
	"github.com/surrealdb/surrealdb.go/pkg/models"

	"github.com/darthunder/bases/pkg/config"
	"github.com/darthunder/bases/pkg/errors"
)

// Backend is the subset of a document database the store relies on.
type Backend interface {
	// CreateUser stores a new document in the users collection
	CreateUser(ctx context.Context, doc UserDoc) error
	// QueryUsers runs a SurrealQL select returning user documents
	QueryUsers(ctx context.Context, query string, vars map[string]interface{}) ([]UserDoc, error)
	// Count runs a "count() AS total ... GROUP ALL" query
	Count(ctx context.Context, query string, vars map[string]interface{}) (int, error)
	// DeleteRecord removes one document by id
	DeleteRecord(ctx context.Context, id models.RecordID) error
	// Close ends the session
	Close(ctx context.Context) error
}

// surrealBackend implements Backend on a surrealdb.go connection.
type surrealBackend struct {
	db *surrealdb.DB
}

// Dial connects to SurrealDB, signs in when credentials are configured and
// selects the namespace and database.
func Dial(ctx context.Context, cfg config.Document) (Backend, error) {
	if cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Timeout)
		defer cancel()
	}

	db, err := surrealdb.FromEndpointURLString(ctx, cfg.URL)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConnect, "no se pudo conectar a la base de datos de usuarios").
			WithDetail("url", cfg.URL)
	}

	if cfg.Username != "" {
		if _, err := db.SignIn(ctx, surrealdb.Auth{
			Username: cfg.Username,
			Password: cfg.Password,
		}); err != nil {
			_ = db.Close(context.Background())
			return nil, errors.Wrap(err, errors.ErrConnect, "authentication failed").
				WithDetail("username", cfg.Username)
		}
	}

	if err := db.Use(ctx, cfg.Namespace, cfg.Database); err != nil {
		_ = db.Close(context.Background())
		return nil, errors.Wrap(err, errors.ErrConnect, "failed to use namespace/database").
			WithDetail("namespace", cfg.Namespace).
			WithDetail("database", cfg.Database)
	}

	return &surrealBackend{db: db}, nil
}

func (b *surrealBackend) CreateUser(ctx context.Context, doc UserDoc) error {
	_, err := surrealdb.Create[UserDoc](ctx, b.db, models.Table(Collection), doc)
	return err
}

func (b *surrealBackend) QueryUsers(ctx context.Context, query string, vars map[string]interface{}) ([]UserDoc, error) {
	res, err := surrealdb.Query[[]UserDoc](ctx, b.db, query, vars)
	if err != nil {
		return nil, err
	}
	first, err := firstResult(res)
	if err != nil {
		return nil, err
	}
	return first.Result, nil
}

type countRow struct {
	Total int `json:"total"`
}

func (b *surrealBackend) Count(ctx context.Context, query string, vars map[string]interface{}) (int, error) {
	res, err := surrealdb.Query[[]countRow](ctx, b.db, query, vars)
	if err != nil {
		return 0, err
	}
	first, err := firstResult(res)
	if err != nil {
		return 0, err
	}
	// GROUP ALL over an empty table yields no row
	if len(first.Result) == 0 {
		return 0, nil
	}
	return first.Result[0].Total, nil
}

func (b *surrealBackend) DeleteRecord(ctx context.Context, id models.RecordID) error {
	_, err := surrealdb.Delete[UserDoc](ctx, b.db, id)
	return err
}

func (b *surrealBackend) Close(ctx context.Context) error {
	return b.db.Close(ctx)
}

func firstResult[T any](res *[]surrealdb.QueryResult[T]) (surrealdb.QueryResult[T], error) {
	var zero surrealdb.QueryResult[T]
	if res == nil || len(*res) == 0 {
		return zero, fmt.Errorf("query returned no result set")
	}
	first := (*res)[0]
	if first.Status != "OK" {
		return zero, fmt.Errorf("query failed with status %s", first.Status)
	}
	return first, nil
}
