package user

import (
	"time"

	"github.com/google/uuid"
)

// User is the domain entity, mapped 1:1 to the users table
// (migrations/000001_create_users_table.up.sql).
type User struct {
	ID           uuid.UUID `db:"id" json:"id"`
	Name         string    `db:"name" json:"name"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"` // never expose in JSON

	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// ToDTO converts the entity into its public representation.
func (u *User) ToDTO() UserDTO {
	return UserDTO{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
	}
}
