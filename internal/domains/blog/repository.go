package blog

import (
	"context"

	"github.com/google/uuid"
)

// Repository is the content-store contract. Mutations take the owner
// id and guard on it in the same statement as the write, so the
// existence+ownership+apply sequence stays atomic with respect to the
// record even under concurrent deletes.
type Repository interface {
	Insert(ctx context.Context, b *Blog) error

	// FindByID returns ErrBlogNotFound when the record is absent.
	FindByID(ctx context.Context, id uuid.UUID) (*Blog, error)

	// List returns blogs with their owners, ordered created_at
	// descending with insertion order breaking ties.
	List(ctx context.Context, filters ListFilters) ([]BlogDTO, error)

	// UpdateFields applies exactly the fields present in the request.
	// Returns ErrBlogNotFound when no row matches id+owner, which after
	// an ownership check can only mean a concurrent delete.
	UpdateFields(ctx context.Context, id, ownerID uuid.UUID, fields UpdateBlogRequest) (*Blog, error)

	// Delete removes the record if it still belongs to ownerID.
	Delete(ctx context.Context, id, ownerID uuid.UUID) error
}
