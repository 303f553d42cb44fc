package repositories

import (
	"context"
	"errors"

	"github.com/pubsched/api-go/models"
	"gorm.io/gorm"
)

type mediaPostgres struct {
	db *gorm.DB
}

func NewMediaPostgres(db *gorm.DB) MediaRepository {
	return &mediaPostgres{db: db}
}

func (r *mediaPostgres) Create(ctx context.Context, media *models.Media) error {
	return r.db.WithContext(ctx).Create(media).Error
}

func (r *mediaPostgres) FindAll(ctx context.Context) ([]models.Media, error) {
	var medias []models.Media
	if err := r.db.WithContext(ctx).Find(&medias).Error; err != nil {
		return nil, err
	}
	return medias, nil
}

func (r *mediaPostgres) FindByID(ctx context.Context, id uint) (*models.Media, error) {
	var media models.Media
	if err := r.db.WithContext(ctx).First(&media, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &media, nil
}

func (r *mediaPostgres) Update(ctx context.Context, media *models.Media) error {
	return r.db.WithContext(ctx).Save(media).Error
}

func (r *mediaPostgres) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Media{}, id).Error
}
