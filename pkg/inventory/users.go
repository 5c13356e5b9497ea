package inventory

import (
	"context"
	"strings"

	"github.com/darthunder/bases/pkg/errors"
	"github.com/darthunder/bases/pkg/store/document"
	"github.com/darthunder/bases/pkg/types"
)

// Age bounds accepted by AddUser
const (
	MinEdad = 0
	MaxEdad = 150
)

// AddUser validates and stores a new user stamped with the current time.
func (s *Service) AddUser(ctx context.Context, nombre, email string, edad int) (document.User, error) {
	users, err := s.userStore()
	if err != nil {
		return document.User{}, err
	}

	nombre = strings.TrimSpace(nombre)
	email = strings.TrimSpace(email)

	switch {
	case nombre == "":
		return document.User{}, errors.New(errors.ErrInvalidInput, "el nombre no puede estar vacío").
			WithDetail("field", document.FieldNombre)
	case !strings.Contains(email, "@"):
		return document.User{}, errors.Newf(errors.ErrInvalidInput, "email inválido: %q", email).
			WithDetail("field", document.FieldEmail)
	case edad < MinEdad || edad > MaxEdad:
		return document.User{}, errors.Newf(errors.ErrInvalidInput, "edad fuera de rango: %d", edad).
			WithDetail("field", document.FieldEdad)
	}

	u := document.User{
		Nombre:        nombre,
		Email:         email,
		Edad:          edad,
		FechaRegistro: s.now(),
	}
	if err := users.InsertUser(ctx, u); err != nil {
		return document.User{}, err
	}

	s.log.Info().Str("nombre", nombre).Msg("User added")
	return u, nil
}

// ListUsers returns one record per user in registration order.
func (s *Service) ListUsers(ctx context.Context) ([]*types.Record, error) {
	users, err := s.userStore()
	if err != nil {
		return nil, err
	}

	all, err := users.AllUsers(ctx)
	if err != nil {
		return nil, err
	}
	recs := make([]*types.Record, len(all))
	for i, u := range all {
		recs[i] = u.Record()
	}
	return recs, nil
}

// FindUser returns the first user named nombre. NOT_FOUND when there is none.
func (s *Service) FindUser(ctx context.Context, nombre string) (*types.Record, error) {
	users, err := s.userStore()
	if err != nil {
		return nil, err
	}

	u, err := users.FindUserByName(ctx, strings.TrimSpace(nombre))
	if err != nil {
		return nil, err
	}
	return u.Record(), nil
}

// DeleteUser removes the first user named nombre. NOT_FOUND when nothing
// was deleted.
func (s *Service) DeleteUser(ctx context.Context, nombre string) error {
	users, err := s.userStore()
	if err != nil {
		return err
	}

	nombre = strings.TrimSpace(nombre)
	n, err := users.DeleteUserByName(ctx, nombre)
	if err != nil {
		return err
	}
	if n == 0 {
		return errors.Newf(errors.ErrNotFound, "usuario %q no encontrado", nombre).
			WithDetail("nombre", nombre)
	}

	s.log.Info().Str("nombre", nombre).Msg("User deleted")
	return nil
}

// UserNameByIndex returns the name of the i-th user (zero-based, registration
// order). ok is false when no user sits at that position.
func (s *Service) UserNameByIndex(ctx context.Context, i int) (name string, ok bool, err error) {
	users, err := s.userStore()
	if err != nil {
		return "", false, err
	}

	u, err := users.FindUserByIndex(ctx, i)
	if err != nil {
		if errors.IsErrorCode(err, errors.ErrNotFound) || errors.IsErrorCode(err, errors.ErrInvalidInput) {
			return "", false, nil
		}
		return "", false, err
	}
	return u.Nombre, true, nil
}
