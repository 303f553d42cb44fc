package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/pubsched/api-go/models"
	"gorm.io/gorm"
)

// ErrNotFound is returned by every backend when a lookup matches no record.
var ErrNotFound = errors.New("record not found")

type MediaRepository interface {
	Create(ctx context.Context, media *models.Media) error
	FindAll(ctx context.Context) ([]models.Media, error)
	FindByID(ctx context.Context, id uint) (*models.Media, error)
	Update(ctx context.Context, media *models.Media) error
	Delete(ctx context.Context, id uint) error
}

type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	FindAll(ctx context.Context) ([]models.Post, error)
	FindByID(ctx context.Context, id uint) (*models.Post, error)
	Update(ctx context.Context, post *models.Post) error
	Delete(ctx context.Context, id uint) error
}

type PublicationRepository interface {
	Create(ctx context.Context, publication *models.Publication) error
	FindAll(ctx context.Context, filter PublicationFilter) ([]models.Publication, error)
	FindByID(ctx context.Context, id uint) (*models.Publication, error)
	Update(ctx context.Context, publication *models.Publication) error
	Delete(ctx context.Context, id uint) error

	// ExistsForMedia reports whether any publication references the media id.
	ExistsForMedia(ctx context.Context, mediaID uint) (bool, error)
	// ExistsForPost reports whether any publication references the post id.
	ExistsForPost(ctx context.Context, postID uint) (bool, error)
}

// PublicationFilter narrows a publication listing. Published and After are
// optional; Now is the instant "published" is measured against, supplied by
// the caller so both storage backends apply the same predicates.
type PublicationFilter struct {
	Published *bool
	After     *time.Time
	Now       time.Time
}

// Matches evaluates the filter against a single publication. The branches
// mirror the SQL in publication_postgres.go; the published=false cases keep
// their asymmetric bounds on purpose (no upper bound when combined with
// After, inclusive lower bound when alone).
func (f PublicationFilter) Matches(p *models.Publication) bool {
	switch {
	case f.After != nil && f.Published != nil && *f.Published:
		return p.Date.After(*f.After) && !p.Date.After(f.Now)
	case f.After != nil && f.Published != nil && !*f.Published:
		return p.Date.After(*f.After)
	case f.After != nil:
		return p.Date.After(*f.After)
	case f.Published != nil && *f.Published:
		return p.Date.Before(f.Now)
	case f.Published != nil && !*f.Published:
		return !p.Date.Before(f.Now)
	default:
		return true
	}
}

// Registry bundles the per-entity repositories sharing one backend.
type Registry struct {
	Media        MediaRepository
	Posts        PostRepository
	Publications PublicationRepository
}

// NewPostgres wires the three repositories to a gorm connection.
func NewPostgres(db *gorm.DB) *Registry {
	return &Registry{
		Media:        NewMediaPostgres(db),
		Posts:        NewPostPostgres(db),
		Publications: NewPublicationPostgres(db),
	}
}

// NewMemory wires the three repositories to a shared in-memory store.
func NewMemory() *Registry {
	store := newMemoryStore()
	return &Registry{
		Media:        &memoryMediaRepository{store: store},
		Posts:        &memoryPostRepository{store: store},
		Publications: &memoryPublicationRepository{store: store},
	}
}
