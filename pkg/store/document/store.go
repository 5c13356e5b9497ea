package document

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/darthunder/bases/pkg/config"
	"github.com/darthunder/bases/pkg/errors"
	"github.com/darthunder/bases/pkg/logging"
)

const (
	queryAll    = "SELECT * FROM usuarios ORDER BY fechaRegistro ASC"
	queryByName = "SELECT * FROM usuarios WHERE nombre = $nombre ORDER BY fechaRegistro ASC LIMIT 1"
	// SurrealQL spells skip as START after LIMIT
	queryByIndex = "SELECT * FROM usuarios ORDER BY fechaRegistro ASC LIMIT 1 START $skip"
	queryCount   = "SELECT count() AS total FROM usuarios GROUP ALL"
)

// Store manages the users collection.
type Store struct {
	backend Backend
	log     zerolog.Logger
}

// Open dials the configured document database.
func Open(ctx context.Context, cfg config.Document) (*Store, error) {
	backend, err := Dial(ctx, cfg)
	if err != nil {
		return nil, err
	}

	s := New(backend)
	s.log.Info().
		Str("url", cfg.URL).
		Str("namespace", cfg.Namespace).
		Str("database", cfg.Database).
		Msg("Connected to document database")
	return s, nil
}

// New creates a store over an existing backend.
func New(backend Backend) *Store {
	return &Store{backend: backend, log: logging.GetLogger("store.document")}
}

// InsertUser adds a user to the collection.
func (s *Store) InsertUser(ctx context.Context, u User) error {
	s.log.Debug().Str("nombre", u.Nombre).Msg("Insert user")
	if err := s.backend.CreateUser(ctx, newUserDoc(u)); err != nil {
		return errors.Wrap(err, errors.ErrExec, "failed to insert user").WithDetail("nombre", u.Nombre)
	}
	return nil
}

// AllUsers returns every user in registration order.
func (s *Store) AllUsers(ctx context.Context) ([]User, error) {
	docs, err := s.query(ctx, queryAll, nil)
	if err != nil {
		return nil, err
	}
	users := make([]User, len(docs))
	for i, d := range docs {
		users[i] = d.User()
	}
	return users, nil
}

// FindUserByName returns the first user whose name matches exactly.
func (s *Store) FindUserByName(ctx context.Context, nombre string) (User, error) {
	doc, err := s.first(ctx, queryByName, map[string]interface{}{"nombre": nombre})
	if err != nil {
		return User{}, err
	}
	if doc == nil {
		return User{}, errors.Newf(errors.ErrNotFound, "usuario %q no encontrado", nombre).
			WithDetail("nombre", nombre)
	}
	return doc.User(), nil
}

// FindUserByIndex returns the i-th user (zero-based) in registration order.
func (s *Store) FindUserByIndex(ctx context.Context, i int) (User, error) {
	if i < 0 {
		return User{}, errors.Newf(errors.ErrInvalidInput, "negative user index %d", i)
	}
	doc, err := s.first(ctx, queryByIndex, map[string]interface{}{"skip": i})
	if err != nil {
		return User{}, err
	}
	if doc == nil {
		return User{}, errors.Newf(errors.ErrNotFound, "no hay usuario en la posición %d", i).
			WithDetail("index", i)
	}
	return doc.User(), nil
}

// DeleteUserByName deletes the first user with the given name and reports
// how many were deleted (0 or 1).
func (s *Store) DeleteUserByName(ctx context.Context, nombre string) (int, error) {
	doc, err := s.first(ctx, queryByName, map[string]interface{}{"nombre": nombre})
	if err != nil || doc == nil {
		return 0, err
	}
	if doc.ID == nil {
		return 0, errors.New(errors.ErrInternal, "stored user has no id").WithDetail("nombre", nombre)
	}

	s.log.Debug().Str("nombre", nombre).Msg("Delete user")
	if err := s.backend.DeleteRecord(ctx, *doc.ID); err != nil {
		return 0, errors.Wrap(err, errors.ErrExec, "failed to delete user").WithDetail("nombre", nombre)
	}
	return 1, nil
}

// CountUsers returns the size of the collection.
func (s *Store) CountUsers(ctx context.Context) (int, error) {
	n, err := s.backend.Count(ctx, queryCount, nil)
	if err != nil {
		return 0, errors.Wrap(err, errors.ErrQuery, "failed to count users")
	}
	return n, nil
}

// Close ends the backend session.
func (s *Store) Close(ctx context.Context) error {
	if s == nil || s.backend == nil {
		return nil
	}
	if err := s.backend.Close(ctx); err != nil {
		return errors.Wrap(err, errors.ErrInternal, "failed to close document store")
	}
	return nil
}

func (s *Store) query(ctx context.Context, q string, vars map[string]interface{}) ([]UserDoc, error) {
	s.log.Debug().Str("surrealql", q).Msg("Query")
	docs, err := s.backend.QueryUsers(ctx, q, vars)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrQuery, "users query failed")
	}
	return docs, nil
}

func (s *Store) first(ctx context.Context, q string, vars map[string]interface{}) (*UserDoc, error) {
	docs, err := s.query(ctx, q, vars)
	if err != nil || len(docs) == 0 {
		return nil, err
	}
	return &docs[0], nil
}
