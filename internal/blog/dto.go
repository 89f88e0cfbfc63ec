// AngelaMos | 2026
// dto.go

package blog

import (
	"time"
)

type CreatePostRequest struct {
	Title  string `json:"title"  validate:"required,min=1,max=200"`
	Slug   string `json:"slug"   validate:"omitempty,min=1,max=200"`
	Body   string `json:"body"   validate:"required,min=1"`
	Image  string `json:"image"  validate:"omitempty,url"`
	Status string `json:"status" validate:"omitempty,oneof=draft published"`
}

type UpdatePostRequest struct {
	Title  *string `json:"title,omitempty"  validate:"omitempty,min=1,max=200"`
	Slug   *string `json:"slug,omitempty"   validate:"omitempty,min=1,max=200"`
	Body   *string `json:"body,omitempty"   validate:"omitempty,min=1"`
	Image  *string `json:"image,omitempty"  validate:"omitempty,url"`
	Status *string `json:"status,omitempty" validate:"omitempty,oneof=draft published"`
}

type PostResponse struct {
	ID          string     `json:"id"`
	AuthorID    string     `json:"author_id"`
	Title       string     `json:"title"`
	Slug        string     `json:"slug"`
	Body        string     `json:"body"`
	Image       string     `json:"image,omitempty"`
	Status      string     `json:"status"`
	PublishedAt *time.Time `json:"published_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// PostSummary omits the body for listing pages.
type PostSummary struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Slug        string     `json:"slug"`
	Image       string     `json:"image,omitempty"`
	Status      string     `json:"status"`
	PublishedAt *time.Time `json:"published_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

type ListParams struct {
	Page     int
	PageSize int
	Search   string
	Status   string
}

func (p *ListParams) Normalize() {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.PageSize < 1 {
		p.PageSize = 20
	}
	if p.PageSize > 100 {
		p.PageSize = 100
	}
}

func (p *ListParams) Offset() int {
	return (p.Page - 1) * p.PageSize
}

func ToPostResponse(p *Post) PostResponse {
	return PostResponse{
		ID:          p.ID,
		AuthorID:    p.AuthorID,
		Title:       p.Title,
		Slug:        p.Slug,
		Body:        p.Body,
		Image:       p.Image,
		Status:      p.Status,
		PublishedAt: p.PublishedAt,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func ToPostSummaryList(posts []Post) []PostSummary {
	summaries := make([]PostSummary, 0, len(posts))
	for _, p := range posts {
		summaries = append(summaries, PostSummary{
			ID:          p.ID,
			Title:       p.Title,
			Slug:        p.Slug,
			Image:       p.Image,
			Status:      p.Status,
			PublishedAt: p.PublishedAt,
			CreatedAt:   p.CreatedAt,
		})
	}
	return summaries
}
