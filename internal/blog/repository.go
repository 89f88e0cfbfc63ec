// AngelaMos | 2026
// repository.go

package blog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/greengarden-id/backend/internal/core"
)

type Repository interface {
	Create(ctx context.Context, post *Post) error
	GetByID(ctx context.Context, id string) (*Post, error)
	GetBySlug(ctx context.Context, slug string) (*Post, error)
	Update(ctx context.Context, post *Post) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, params ListParams) ([]Post, int, error)
}

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, post *Post) error {
	query := `
		INSERT INTO blog_posts (
			id, author_id, title, slug, body, image, status, published_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at, updated_at`

	err := r.db.GetContext(ctx, post, query,
		post.ID,
		post.AuthorID,
		post.Title,
		post.Slug,
		post.Body,
		post.Image,
		post.Status,
		post.PublishedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("create post: %w", core.ErrDuplicateKey)
		}
		return fmt.Errorf("create post: %w", err)
	}

	return nil
}

func (r *repository) GetByID(ctx context.Context, id string) (*Post, error) {
	return r.getByField(ctx, "id", id)
}

func (r *repository) GetBySlug(
	ctx context.Context,
	slug string,
) (*Post, error) {
	return r.getByField(ctx, "slug", slug)
}

func (r *repository) getByField(
	ctx context.Context,
	field, value string,
) (*Post, error) {
	query := fmt.Sprintf(`
		SELECT id, author_id, title, slug, body, image, status,
		       published_at, created_at, updated_at
		FROM blog_posts
		WHERE %s = $1`, field)

	var post Post
	err := r.db.GetContext(ctx, &post, query, value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get post: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get post: %w", err)
	}

	return &post, nil
}

func (r *repository) Update(ctx context.Context, post *Post) error {
	query := `
		UPDATE blog_posts
		SET title = $2, slug = $3, body = $4, image = $5, status = $6,
		    published_at = $7, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at`

	err := r.db.GetContext(ctx, &post.UpdatedAt, query,
		post.ID,
		post.Title,
		post.Slug,
		post.Body,
		post.Image,
		post.Status,
		post.PublishedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("update post: %w", core.ErrNotFound)
	}
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("update post: %w", core.ErrDuplicateKey)
		}
		return fmt.Errorf("update post: %w", err)
	}

	return nil
}

func (r *repository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(
		ctx,
		`DELETE FROM blog_posts WHERE id = $1`,
		id,
	)
	if err != nil {
		return fmt.Errorf("delete post: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete post: %w", err)
	}

	if rows == 0 {
		return fmt.Errorf("delete post: %w", core.ErrNotFound)
	}

	return nil
}

func (r *repository) List(
	ctx context.Context,
	params ListParams,
) ([]Post, int, error) {
	params.Normalize()

	var conditions []string
	var args []any
	argIdx := 1

	conditions = append(conditions, "TRUE")

	if params.Search != "" {
		conditions = append(conditions, fmt.Sprintf(
			"(title ILIKE $%d OR body ILIKE $%d)", argIdx, argIdx))
		args = append(args, "%"+escapeLike(params.Search)+"%")
		argIdx++
	}

	if params.Status != "" {
		conditions = append(conditions, fmt.Sprintf("status = $%d", argIdx))
		args = append(args, params.Status)
		argIdx++
	}

	whereClause := strings.Join(conditions, " AND ")

	countQuery := fmt.Sprintf(
		"SELECT COUNT(*) FROM blog_posts WHERE %s",
		whereClause,
	)
	var total int
	if err := r.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		return nil, 0, fmt.Errorf("count posts: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT id, author_id, title, slug, body, image, status,
		       published_at, created_at, updated_at
		FROM blog_posts
		WHERE %s
		ORDER BY COALESCE(published_at, created_at) DESC
		LIMIT $%d OFFSET $%d`,
		whereClause, argIdx, argIdx+1)

	args = append(args, params.PageSize, params.Offset())

	var posts []Post
	if err := r.db.SelectContext(ctx, &posts, query, args...); err != nil {
		return nil, 0, fmt.Errorf("list posts: %w", err)
	}

	return posts, total, nil
}

func escapeLike(s string) string {
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, "%", "\\%")
	s = strings.ReplaceAll(s, "_", "\\_")
	return s
}
