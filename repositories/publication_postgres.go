package repositories

import (
	"context"
	"errors"

	"github.com/pubsched/api-go/models"
	"gorm.io/gorm"
)

type publicationPostgres struct {
	db *gorm.DB
}

func NewPublicationPostgres(db *gorm.DB) PublicationRepository {
	return &publicationPostgres{db: db}
}

func (r *publicationPostgres) Create(ctx context.Context, publication *models.Publication) error {
	return r.db.WithContext(ctx).Create(publication).Error
}

func (r *publicationPostgres) FindAll(ctx context.Context, filter PublicationFilter) ([]models.Publication, error) {
	q := r.db.WithContext(ctx)

	switch {
	case filter.After != nil && filter.Published != nil && *filter.Published:
		q = q.Where("date > ? AND date <= ?", *filter.After, filter.Now)
	case filter.After != nil && filter.Published != nil && !*filter.Published:
		// no upper bound here; see PublicationFilter.Matches
		q = q.Where("date > ?", *filter.After)
	case filter.After != nil:
		q = q.Where("date > ?", *filter.After)
	case filter.Published != nil && *filter.Published:
		q = q.Where("date < ?", filter.Now)
	case filter.Published != nil && !*filter.Published:
		q = q.Where("date >= ?", filter.Now)
	}

	var publications []models.Publication
	if err := q.Find(&publications).Error; err != nil {
		return nil, err
	}
	return publications, nil
}

func (r *publicationPostgres) FindByID(ctx context.Context, id uint) (*models.Publication, error) {
	var publication models.Publication
	if err := r.db.WithContext(ctx).First(&publication, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &publication, nil
}

func (r *publicationPostgres) Update(ctx context.Context, publication *models.Publication) error {
	return r.db.WithContext(ctx).Save(publication).Error
}

func (r *publicationPostgres) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Publication{}, id).Error
}

func (r *publicationPostgres) ExistsForMedia(ctx context.Context, mediaID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Publication{}).Where("media_id = ?", mediaID).Count(&count).Error
	return count > 0, err
}

func (r *publicationPostgres) ExistsForPost(ctx context.Context, postID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Publication{}).Where("post_id = ?", postID).Count(&count).Error
	return count > 0, err
}
