package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/pubsched/api-go/models"
	"github.com/pubsched/api-go/repositories"
	"github.com/pubsched/api-go/utils"
)

type PublicationService struct {
	publications repositories.PublicationRepository
	media        repositories.MediaRepository
	posts        repositories.PostRepository
}

func NewPublicationService(
	publications repositories.PublicationRepository,
	media repositories.MediaRepository,
	posts repositories.PostRepository,
) *PublicationService {
	return &PublicationService{publications: publications, media: media, posts: posts}
}

// Create requires both referenced records to exist at call time. The check
// and the insert are separate round-trips; a concurrent delete in between is
// an accepted race.
func (s *PublicationService) Create(ctx context.Context, mediaID, postID uint, date time.Time) (*models.Publication, error) {
	if err := s.checkReferences(ctx, mediaID, postID); err != nil {
		return nil, err
	}

	publication := &models.Publication{MediaID: mediaID, PostID: postID, Date: date}
	if err := s.publications.Create(ctx, publication); err != nil {
		return nil, err
	}
	return publication, nil
}

// FindAll lists publications, optionally narrowed by the two query values.
// published must be "true" or "false" when set; after must parse as a
// timestamp. Asking for published items strictly after a future instant is
// contradictory and rejected.
func (s *PublicationService) FindAll(ctx context.Context, publishedParam, afterParam string) ([]models.Publication, error) {
	now := time.Now()

	var published *bool
	switch publishedParam {
	case "":
	case "true":
		v := true
		published = &v
	case "false":
		v := false
		published = &v
	default:
		return nil, fmt.Errorf("%w: published must be true or false", ErrBadRequest)
	}

	var after *time.Time
	if afterParam != "" {
		parsed, err := utils.ParseTime(afterParam)
		if err != nil {
			return nil, fmt.Errorf("%w: after must be a valid date", ErrBadRequest)
		}
		after = &parsed
	}

	if after != nil && published != nil && *published && after.After(now) {
		return nil, fmt.Errorf("%w: can't list published publications after a future date", ErrForbidden)
	}

	return s.publications.FindAll(ctx, repositories.PublicationFilter{
		Published: published,
		After:     after,
		Now:       now,
	})
}

func (s *PublicationService) FindOne(ctx context.Context, id uint) (*models.Publication, error) {
	publication, err := s.publications.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, fmt.Errorf("%w: publication not found", ErrNotFound)
		}
		return nil, err
	}
	return publication, nil
}

// Update refuses to touch a publication whose stored date is already at or
// before now: it has been published and is immutable from then on.
func (s *PublicationService) Update(ctx context.Context, id uint, mediaID, postID uint, date time.Time) (*models.Publication, error) {
	publication, err := s.FindOne(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.checkReferences(ctx, mediaID, postID); err != nil {
		return nil, err
	}

	if publication.Published(time.Now()) {
		return nil, fmt.Errorf("%w: can't change an already made publication", ErrForbidden)
	}

	publication.MediaID = mediaID
	publication.PostID = postID
	publication.Date = date
	if err := s.publications.Update(ctx, publication); err != nil {
		return nil, err
	}
	return publication, nil
}

// Remove deletes the publication whatever its date; published records stay
// deletable.
func (s *PublicationService) Remove(ctx context.Context, id uint) (*models.Publication, error) {
	publication, err := s.FindOne(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.publications.Delete(ctx, id); err != nil {
		return nil, err
	}
	return publication, nil
}

func (s *PublicationService) checkReferences(ctx context.Context, mediaID, postID uint) error {
	if _, err := s.media.FindByID(ctx, mediaID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return fmt.Errorf("%w: no post or media found for publication", ErrNotFound)
		}
		return err
	}
	if _, err := s.posts.FindByID(ctx, postID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return fmt.Errorf("%w: no post or media found for publication", ErrNotFound)
		}
		return err
	}
	return nil
}
