package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"blog-backend/internal/domains/blog"
	"blog-backend/internal/domains/user"
)

type blogService struct {
	repo     blog.Repository
	userRepo user.Repository
}

// NewBlogService wires the mutation gate. It needs the user repository
// to resolve actors into their current display name.
func NewBlogService(repo blog.Repository, userRepo user.Repository) blog.Service {
	return &blogService{
		repo:     repo,
		userRepo: userRepo,
	}
}

// List returns every blog matching the filters, newest first. No
// ownership restriction on reads.
func (s *blogService) List(ctx context.Context, filters blog.ListFilters) ([]blog.BlogDTO, error) {
	blogs, err := s.repo.List(ctx, filters)
	if err != nil {
		return nil, err
	}
	return blogs, nil
}

// Create stores a new blog owned by the actor. The author field is a
// one-time snapshot of the actor's name at call time.
func (s *blogService) Create(ctx context.Context, actorID uuid.UUID, req blog.CreateBlogRequest) (*blog.BlogDTO, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	actor, err := s.userRepo.FindByID(ctx, actorID)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return nil, blog.ErrAuthorNotFound
		}
		return nil, fmt.Errorf("load actor: %w", err)
	}

	now := time.Now()
	b := &blog.Blog{
		ID:        uuid.New(),
		Title:     req.Title,
		Category:  req.Category,
		Author:    actor.Name,
		Content:   req.Content,
		Image:     req.Image,
		UserID:    actor.ID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Insert(ctx, b); err != nil {
		return nil, err
	}

	dto := b.ToDTO(actor.ToDTO())
	return &dto, nil
}

// Update applies a partial update. Existence is checked before
// ownership, in that order, even for an empty partial; a rejected
// update leaves the record untouched.
func (s *blogService) Update(ctx context.Context, actorID, blogID uuid.UUID, req blog.UpdateBlogRequest) (*blog.BlogDTO, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.repo.FindByID(ctx, blogID)
	if err != nil {
		return nil, err
	}
	if existing.UserID != actorID {
		return nil, blog.ErrNotOwner
	}

	updated := existing
	if !req.Empty() {
		// The statement re-checks id+owner, so a concurrent delete
		// surfaces as not-found rather than resurrecting the record.
		updated, err = s.repo.UpdateFields(ctx, blogID, actorID, req)
		if err != nil {
			return nil, err
		}
	}

	owner, err := s.userRepo.FindByID(ctx, updated.UserID)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return nil, blog.ErrAuthorNotFound
		}
		return nil, fmt.Errorf("load owner: %w", err)
	}

	dto := updated.ToDTO(owner.ToDTO())
	return &dto, nil
}

// Delete removes the blog after the same existence-then-ownership
// sequence as Update.
func (s *blogService) Delete(ctx context.Context, actorID, blogID uuid.UUID) error {
	existing, err := s.repo.FindByID(ctx, blogID)
	if err != nil {
		return err
	}
	if existing.UserID != actorID {
		return blog.ErrNotOwner
	}

	return s.repo.Delete(ctx, blogID, actorID)
}
