package services

import (
	"context"
	"testing"
	"time"

	"github.com/pubsched/api-go/repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPostService(t *testing.T) (*PostService, *repositories.Registry) {
	t.Helper()
	repos := repositories.NewMemory()
	return NewPostService(repos.Posts, repos.Publications), repos
}

func TestPostService_CreateWithoutImage(t *testing.T) {
	svc, _ := newPostService(t)
	ctx := context.Background()

	post, err := svc.Create(ctx, "test", "hi", nil)
	require.NoError(t, err)
	assert.NotZero(t, post.ID)
	assert.Nil(t, post.Image)

	found, err := svc.FindOne(ctx, post.ID)
	require.NoError(t, err)
	assert.Nil(t, found.Image)
}

func TestPostService_CreateWithImage(t *testing.T) {
	svc, _ := newPostService(t)
	ctx := context.Background()

	image := "https://example.com/x.png"
	post, err := svc.Create(ctx, "a", "b", &image)
	require.NoError(t, err)

	found, err := svc.FindOne(ctx, post.ID)
	require.NoError(t, err)
	require.NotNil(t, found.Image)
	assert.Equal(t, image, *found.Image)
}

func TestPostService_FindOneNotFound(t *testing.T) {
	svc, _ := newPostService(t)

	_, err := svc.FindOne(context.Background(), 42)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPostService_Update(t *testing.T) {
	svc, _ := newPostService(t)
	ctx := context.Background()

	post, err := svc.Create(ctx, "a", "b", nil)
	require.NoError(t, err)

	image := "x"
	updated, err := svc.Update(ctx, post.ID, "a2", "b2", &image)
	require.NoError(t, err)
	assert.Equal(t, "a2", updated.Title)
	assert.Equal(t, "b2", updated.Text)
	require.NotNil(t, updated.Image)
	assert.Equal(t, "x", *updated.Image)

	_, err = svc.Update(ctx, 42, "a", "b", nil)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPostService_RemoveBlockedWhileReferenced(t *testing.T) {
	svc, repos := newPostService(t)
	medias := NewMediaService(repos.Media, repos.Publications)
	publications := NewPublicationService(repos.Publications, repos.Media, repos.Posts)
	ctx := context.Background()

	media, err := medias.Create(ctx, "t", "u")
	require.NoError(t, err)
	post, err := svc.Create(ctx, "title", "text", nil)
	require.NoError(t, err)
	publication, err := publications.Create(ctx, media.ID, post.ID, time.Now().Add(time.Hour))
	require.NoError(t, err)

	_, err = svc.Remove(ctx, post.ID)
	assert.ErrorIs(t, err, ErrForbidden)

	_, err = publications.Remove(ctx, publication.ID)
	require.NoError(t, err)

	removed, err := svc.Remove(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, post.ID, removed.ID)
}

func TestPostService_RemoveNotFound(t *testing.T) {
	svc, _ := newPostService(t)

	_, err := svc.Remove(context.Background(), 42)
	assert.ErrorIs(t, err, ErrNotFound)
}
