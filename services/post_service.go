package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/pubsched/api-go/models"
	"github.com/pubsched/api-go/repositories"
)

type PostService struct {
	posts        repositories.PostRepository
	publications repositories.PublicationRepository
}

func NewPostService(posts repositories.PostRepository, publications repositories.PublicationRepository) *PostService {
	return &PostService{posts: posts, publications: publications}
}

func (s *PostService) Create(ctx context.Context, title, text string, image *string) (*models.Post, error) {
	post := &models.Post{Title: title, Text: text, Image: image}
	if err := s.posts.Create(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

func (s *PostService) FindAll(ctx context.Context) ([]models.Post, error) {
	return s.posts.FindAll(ctx)
}

func (s *PostService) FindOne(ctx context.Context, id uint) (*models.Post, error) {
	post, err := s.posts.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, fmt.Errorf("%w: post not found", ErrNotFound)
		}
		return nil, err
	}
	return post, nil
}

func (s *PostService) Update(ctx context.Context, id uint, title, text string, image *string) (*models.Post, error) {
	post, err := s.FindOne(ctx, id)
	if err != nil {
		return nil, err
	}

	post.Title = title
	post.Text = text
	post.Image = image
	if err := s.posts.Update(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

func (s *PostService) Remove(ctx context.Context, id uint) (*models.Post, error) {
	post, err := s.FindOne(ctx, id)
	if err != nil {
		return nil, err
	}

	referenced, err := s.publications.ExistsForPost(ctx, id)
	if err != nil {
		return nil, err
	}
	if referenced {
		return nil, fmt.Errorf("%w: post is already on a publication, can't delete", ErrForbidden)
	}

	if err := s.posts.Delete(ctx, id); err != nil {
		return nil, err
	}
	return post, nil
}
