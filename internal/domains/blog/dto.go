package blog

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/google/uuid"

	"blog-backend/internal/domains/user"
)

// CreateBlogRequest - POST /blogs
type CreateBlogRequest struct {
	Title    string `json:"title"`
	Category string `json:"category"`
	Content  string `json:"content"`
	Image    string `json:"image"`
}

func (r CreateBlogRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Required.Error("title is required")),
		validation.Field(&r.Category, validation.Required.Error("category is required")),
		validation.Field(&r.Content, validation.Required.Error("content is required")),
		validation.Field(&r.Image,
			// Optional: absolute URL or empty string.
			validation.When(r.Image != "", is.RequestURL.Error("invalid URL")),
		),
	)
}

// UpdateBlogRequest - PUT /blogs/:id. All fields optional; absent
// fields keep their stored values. Present fields are re-validated
// with the same rules as create.
type UpdateBlogRequest struct {
	Title    *string `json:"title"`
	Category *string `json:"category"`
	Content  *string `json:"content"`
	Image    *string `json:"image"`
}

func (r UpdateBlogRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.When(r.Title != nil, validation.Required.Error("title is required")),
		),
		validation.Field(&r.Category,
			validation.When(r.Category != nil, validation.Required.Error("category is required")),
		),
		validation.Field(&r.Content,
			validation.When(r.Content != nil, validation.Required.Error("content is required")),
		),
		validation.Field(&r.Image,
			validation.When(r.Image != nil && *r.Image != "", is.RequestURL.Error("invalid URL")),
		),
	)
}

// Empty reports whether no field is present at all. Ownership is
// still checked for empty partials; the store is just not touched.
func (r UpdateBlogRequest) Empty() bool {
	return r.Title == nil && r.Category == nil && r.Content == nil && r.Image == nil
}

// ListFilters - GET /blogs query parameters. Both are exact matches;
// fuzzy search belongs to the frontend.
type ListFilters struct {
	Category string `form:"category"`
	Author   string `form:"author"`
}

// BlogDTO is the API representation of a blog, embedding the owner's
// public fields.
type BlogDTO struct {
	ID        uuid.UUID    `json:"id"`
	Title     string       `json:"title"`
	Category  string       `json:"category"`
	Author    string       `json:"author"`
	Content   string       `json:"content"`
	Image     string       `json:"image"`
	UserID    uuid.UUID    `json:"user_id"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
	User      user.UserDTO `json:"user"`
}
