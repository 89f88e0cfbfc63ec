// AngelaMos | 2026
// service.go

package blog

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/greengarden-id/backend/internal/catalog"
	"github.com/greengarden-id/backend/internal/core"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) CreatePost(
	ctx context.Context,
	authorID string,
	req CreatePostRequest,
) (*Post, error) {
	status := req.Status
	if status == "" {
		status = StatusDraft
	}

	slug := req.Slug
	if slug == "" {
		slug = catalog.Slugify(req.Title)
	}

	post := &Post{
		ID:       uuid.New().String(),
		AuthorID: authorID,
		Title:    req.Title,
		Slug:     slug,
		Body:     req.Body,
		Image:    req.Image,
		Status:   status,
	}

	if status == StatusPublished {
		now := time.Now().UTC()
		post.PublishedAt = &now
	}

	if err := s.repo.Create(ctx, post); err != nil {
		return nil, err
	}

	return post, nil
}

func (s *Service) GetPost(ctx context.Context, id string) (*Post, error) {
	return s.repo.GetByID(ctx, id)
}

// GetPublishedBySlug serves the storefront read. Drafts stay invisible
// even when the slug is guessed.
func (s *Service) GetPublishedBySlug(
	ctx context.Context,
	slug string,
) (*Post, error) {
	post, err := s.repo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	if post.Status != StatusPublished {
		return nil, fmt.Errorf("get post: %w", core.ErrNotFound)
	}

	return post, nil
}

func (s *Service) UpdatePost(
	ctx context.Context,
	id string,
	req UpdatePostRequest,
) (*Post, error) {
	post, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		post.Title = *req.Title
	}
	if req.Slug != nil {
		post.Slug = *req.Slug
	}
	if req.Body != nil {
		post.Body = *req.Body
	}
	if req.Image != nil {
		post.Image = *req.Image
	}
	if req.Status != nil {
		if *req.Status == StatusPublished && post.Status != StatusPublished {
			now := time.Now().UTC()
			post.PublishedAt = &now
		}
		post.Status = *req.Status
	}

	if err := s.repo.Update(ctx, post); err != nil {
		return nil, err
	}

	return post, nil
}

func (s *Service) DeletePost(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func (s *Service) ListPosts(
	ctx context.Context,
	params ListParams,
) ([]Post, int, error) {
	return s.repo.List(ctx, params)
}

func (s *Service) ListPublished(
	ctx context.Context,
	params ListParams,
) ([]Post, int, error) {
	params.Status = StatusPublished
	return s.repo.List(ctx, params)
}
