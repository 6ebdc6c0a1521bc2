package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"blog-backend/internal/domains/blog"
	"blog-backend/internal/domains/user"
	"blog-backend/pkg/cache"
	"blog-backend/pkg/logger"
)

const blogCacheTTL = 5 * time.Minute

const blogColumns = `id, title, category, author, content, image, user_id, seq, created_at, updated_at`

// postgresRepository is the concrete blog.Repository backed by pgx.
type postgresRepository struct {
	pool  *pgxpool.Pool
	cache cache.Cache
}

func NewPostgresRepository(pool *pgxpool.Pool, c cache.Cache) blog.Repository {
	return &postgresRepository{
		pool:  pool,
		cache: c,
	}
}

func (r *postgresRepository) Insert(ctx context.Context, b *blog.Blog) error {
	query := `
		INSERT INTO blogs (id, title, category, author, content, image, user_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING seq
	`

	err := r.pool.QueryRow(ctx, query,
		b.ID,
		b.Title,
		b.Category,
		b.Author,
		b.Content,
		b.Image,
		b.UserID,
		b.CreatedAt,
		b.UpdatedAt,
	).Scan(&b.Seq)
	if err != nil {
		return fmt.Errorf("insert blog: %w", err)
	}

	return nil
}

func (r *postgresRepository) FindByID(ctx context.Context, id uuid.UUID) (*blog.Blog, error) {
	cacheKey := blogCacheKey(id)

	var cached blog.Blog
	found, err := r.cache.Get(ctx, cacheKey, &cached)
	if err != nil {
		logger.Error("blog cache get failed", err)
	}
	if found {
		return &cached, nil
	}

	query := fmt.Sprintf(`SELECT %s FROM blogs WHERE id = $1`, blogColumns)

	b, err := scanBlog(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		return nil, err
	}

	if err := r.cache.Set(ctx, cacheKey, b, blogCacheTTL); err != nil {
		logger.Error("blog cache set failed", err)
	}

	return b, nil
}

// List joins the owning user so the API can embed its public fields.
// Ordering: newest first, with the insertion sequence keeping equal
// timestamps stable.
func (r *postgresRepository) List(ctx context.Context, filters blog.ListFilters) ([]blog.BlogDTO, error) {
	query := `
		SELECT b.id, b.title, b.category, b.author, b.content, b.image,
		       b.user_id, b.created_at, b.updated_at,
		       u.id, u.name, u.email
		FROM blogs b
		JOIN users u ON u.id = b.user_id
	`

	conditions := []string{}
	args := []interface{}{}

	if filters.Category != "" {
		args = append(args, filters.Category)
		conditions = append(conditions, fmt.Sprintf("b.category = $%d", len(args)))
	}
	if filters.Author != "" {
		args = append(args, filters.Author)
		conditions = append(conditions, fmt.Sprintf("b.author = $%d", len(args)))
	}

	for i, cond := range conditions {
		if i == 0 {
			query += " WHERE " + cond
		} else {
			query += " AND " + cond
		}
	}

	query += " ORDER BY b.created_at DESC, b.seq ASC"

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list blogs: %w", err)
	}
	defer rows.Close()

	blogs := make([]blog.BlogDTO, 0)
	for rows.Next() {
		var dto blog.BlogDTO
		var owner user.UserDTO
		err := rows.Scan(
			&dto.ID,
			&dto.Title,
			&dto.Category,
			&dto.Author,
			&dto.Content,
			&dto.Image,
			&dto.UserID,
			&dto.CreatedAt,
			&dto.UpdatedAt,
			&owner.ID,
			&owner.Name,
			&owner.Email,
		)
		if err != nil {
			return nil, fmt.Errorf("scan blog row: %w", err)
		}
		dto.User = owner
		blogs = append(blogs, dto)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list blogs rows: %w", err)
	}

	return blogs, nil
}

// UpdateFields builds the SET clause from the fields actually present
// and guards on the owner in the same statement. Zero rows back means
// the record vanished between the caller's read and this write.
func (r *postgresRepository) UpdateFields(ctx context.Context, id, ownerID uuid.UUID, fields blog.UpdateBlogRequest) (*blog.Blog, error) {
	set := []string{}
	args := []interface{}{}

	addSet := func(column string, value interface{}) {
		args = append(args, value)
		set = append(set, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if fields.Title != nil {
		addSet("title", *fields.Title)
	}
	if fields.Category != nil {
		addSet("category", *fields.Category)
	}
	if fields.Content != nil {
		addSet("content", *fields.Content)
	}
	if fields.Image != nil {
		addSet("image", *fields.Image)
	}
	addSet("updated_at", time.Now())

	args = append(args, id)
	idArg := len(args)
	args = append(args, ownerID)
	ownerArg := len(args)

	query := fmt.Sprintf(`
		UPDATE blogs
		SET %s
		WHERE id = $%d AND user_id = $%d
		RETURNING %s
	`, strings.Join(set, ", "), idArg, ownerArg, blogColumns)

	b, err := scanBlog(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, err
	}

	r.invalidate(ctx, id)
	return b, nil
}

func (r *postgresRepository) Delete(ctx context.Context, id, ownerID uuid.UUID) error {
	query := `DELETE FROM blogs WHERE id = $1 AND user_id = $2`

	tag, err := r.pool.Exec(ctx, query, id, ownerID)
	if err != nil {
		return fmt.Errorf("delete blog: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return blog.ErrBlogNotFound
	}

	r.invalidate(ctx, id)
	return nil
}

func (r *postgresRepository) invalidate(ctx context.Context, id uuid.UUID) {
	if err := r.cache.Delete(ctx, blogCacheKey(id)); err != nil {
		logger.Error("blog cache invalidation failed", err)
	}
}

func blogCacheKey(id uuid.UUID) string {
	return fmt.Sprintf("blog:%s", id)
}

func scanBlog(row pgx.Row) (*blog.Blog, error) {
	var b blog.Blog
	err := row.Scan(
		&b.ID,
		&b.Title,
		&b.Category,
		&b.Author,
		&b.Content,
		&b.Image,
		&b.UserID,
		&b.Seq,
		&b.CreatedAt,
		&b.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, blog.ErrBlogNotFound
		}
		return nil, fmt.Errorf("scan blog: %w", err)
	}
	return &b, nil
}
