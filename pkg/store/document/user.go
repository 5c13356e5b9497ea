package document

import (
	"time"

	"github.com/surrealdb/surrealdb.go/pkg/models"

	"github.com/darthunder/bases/pkg/types"
)

// Collection is the table holding users
const Collection = "usuarios"

// Field names as stored in the collection and shown in record boxes
const (
	FieldNombre        = "nombre"
	FieldEmail         = "email"
	FieldEdad          = "edad"
	FieldFechaRegistro = "fechaRegistro"
)

// User is one registered customer
type User struct {
	Nombre        string
	Email         string
	Edad          int
	FechaRegistro time.Time
}

// Record returns the user as an ordered record: nombre, email, edad,
// fechaRegistro.
func (u User) Record() *types.Record {
	return types.NewRecord().
		Set(FieldNombre, types.String(u.Nombre)).
		Set(FieldEmail, types.String(u.Email)).
		Set(FieldEdad, types.Int(int64(u.Edad))).
		Set(FieldFechaRegistro, types.Time(u.FechaRegistro))
}

// UserDoc is the stored form of a User.
type UserDoc struct {
	ID            *models.RecordID      `json:"id,omitempty"`
	Nombre        string                `json:"nombre"`
	Email         string                `json:"email"`
	Edad          int                   `json:"edad"`
	FechaRegistro models.CustomDateTime `json:"fechaRegistro"`
}

func newUserDoc(u User) UserDoc {
	return UserDoc{
		Nombre:        u.Nombre,
		Email:         u.Email,
		Edad:          u.Edad,
		FechaRegistro: models.CustomDateTime{Time: u.FechaRegistro},
	}
}

// User converts the stored document back.
func (d UserDoc) User() User {
	return User{
		Nombre:        d.Nombre,
		Email:         d.Email,
		Edad:          d.Edad,
		FechaRegistro: d.FechaRegistro.Time,
	}
}
