package user

import (
	"context"
)

// Service is the authentication business logic consumed by the HTTP
// handlers.
type Service interface {
	Register(ctx context.Context, req SignupRequest) (*UserDTO, error)
	Login(ctx context.Context, req LoginRequest) (*LoginResponse, error)
}
