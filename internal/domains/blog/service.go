package blog

import (
	"context"

	"github.com/google/uuid"
)

// Service is the blog business logic: any authenticated user may list
// and create; only the owner may update or delete.
type Service interface {
	List(ctx context.Context, filters ListFilters) ([]BlogDTO, error)
	Create(ctx context.Context, actorID uuid.UUID, req CreateBlogRequest) (*BlogDTO, error)
	Update(ctx context.Context, actorID, blogID uuid.UUID, req UpdateBlogRequest) (*BlogDTO, error)
	Delete(ctx context.Context, actorID, blogID uuid.UUID) error
}
