package user

import (
	"context"

	"github.com/google/uuid"
)

// Repository is the narrow persistence contract the auth service
// consumes. Implementations return ErrUserNotFound / ErrEmailAlreadyExists
// for the domain cases and plain wrapped errors for store failures.
type Repository interface {
	Create(ctx context.Context, u *User) error
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindByID(ctx context.Context, id uuid.UUID) (*User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}
