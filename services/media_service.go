package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/pubsched/api-go/models"
	"github.com/pubsched/api-go/repositories"
)

type MediaService struct {
	media        repositories.MediaRepository
	publications repositories.PublicationRepository

	// ExcludeSelfOnUpdate makes the duplicate scan on Update skip the record
	// being updated, so re-submitting an unchanged (title, username) pair is
	// not a conflict. Off by default: an update that keeps the pair collides
	// with the record itself.
	ExcludeSelfOnUpdate bool
}

func NewMediaService(media repositories.MediaRepository, publications repositories.PublicationRepository) *MediaService {
	return &MediaService{media: media, publications: publications}
}

// Create rejects a (title, username) pair that any existing media already
// uses. The check is a full scan over the table, two round-trips away from
// the insert, so concurrent creates of the same pair can still both land.
func (s *MediaService) Create(ctx context.Context, title, username string) (*models.Media, error) {
	if err := s.checkDuplicate(ctx, title, username, 0); err != nil {
		return nil, err
	}

	media := &models.Media{Title: title, Username: username}
	if err := s.media.Create(ctx, media); err != nil {
		return nil, err
	}
	return media, nil
}

func (s *MediaService) FindAll(ctx context.Context) ([]models.Media, error) {
	return s.media.FindAll(ctx)
}

func (s *MediaService) FindOne(ctx context.Context, id uint) (*models.Media, error) {
	media, err := s.media.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, fmt.Errorf("%w: media not found", ErrNotFound)
		}
		return nil, err
	}
	return media, nil
}

func (s *MediaService) Update(ctx context.Context, id uint, title, username string) (*models.Media, error) {
	selfID := uint(0)
	if s.ExcludeSelfOnUpdate {
		selfID = id
	}
	if err := s.checkDuplicate(ctx, title, username, selfID); err != nil {
		return nil, err
	}

	media, err := s.FindOne(ctx, id)
	if err != nil {
		return nil, err
	}

	media.Title = title
	media.Username = username
	if err := s.media.Update(ctx, media); err != nil {
		return nil, err
	}
	return media, nil
}

func (s *MediaService) Remove(ctx context.Context, id uint) (*models.Media, error) {
	media, err := s.FindOne(ctx, id)
	if err != nil {
		return nil, err
	}

	referenced, err := s.publications.ExistsForMedia(ctx, id)
	if err != nil {
		return nil, err
	}
	if referenced {
		return nil, fmt.Errorf("%w: media is already on a publication, can't delete", ErrForbidden)
	}

	if err := s.media.Delete(ctx, id); err != nil {
		return nil, err
	}
	return media, nil
}

func (s *MediaService) checkDuplicate(ctx context.Context, title, username string, selfID uint) error {
	existing, err := s.media.FindAll(ctx)
	if err != nil {
		return err
	}
	for _, m := range existing {
		if m.ID == selfID {
			continue
		}
		if m.Title == title && m.Username == username {
			return fmt.Errorf("%w: title and username combination already exists", ErrConflict)
		}
	}
	return nil
}
