package blog

import (
	"time"

	"github.com/google/uuid"

	"blog-backend/internal/domains/user"
)

// Blog is the domain entity, mapped 1:1 to the blogs table
// (migrations/000002_create_blogs_table.up.sql).
//
// Author is a denormalized copy of the owner's name taken at creation
// time. It deliberately does not follow later renames.
type Blog struct {
	ID       uuid.UUID `db:"id" json:"id"`
	Title    string    `db:"title" json:"title"`
	Category string    `db:"category" json:"category"`
	Author   string    `db:"author" json:"author"`
	Content  string    `db:"content" json:"content"`
	Image    string    `db:"image" json:"image"`

	// UserID is the owning user. Set once at creation, never reassigned.
	UserID uuid.UUID `db:"user_id" json:"user_id"`

	// Seq is assigned by the store and records insertion order. It only
	// exists to make the created_at ordering stable.
	Seq int64 `db:"seq" json:"-"`

	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// ToDTO builds the API representation, embedding the owner's public
// fields the way the frontend expects them.
func (b *Blog) ToDTO(owner user.UserDTO) BlogDTO {
	return BlogDTO{
		ID:        b.ID,
		Title:     b.Title,
		Category:  b.Category,
		Author:    b.Author,
		Content:   b.Content,
		Image:     b.Image,
		UserID:    b.UserID,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
		User:      owner,
	}
}
