// AngelaMos | 2026
// entity.go

package blog

import (
	"time"
)

const (
	StatusDraft     = "draft"
	StatusPublished = "published"
)

type Post struct {
	ID          string     `db:"id"`
	AuthorID    string     `db:"author_id"`
	Title       string     `db:"title"`
	Slug        string     `db:"slug"`
	Body        string     `db:"body"`
	Image       string     `db:"image"`
	Status      string     `db:"status"`
	PublishedAt *time.Time `db:"published_at"`
	CreatedAt   time.Time  `db:"created_at"`
	UpdatedAt   time.Time  `db:"updated_at"`
}
