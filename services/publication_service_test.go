package services

import (
	"context"
	"testing"
	"time"

	"github.com/pubsched/api-go/models"
	"github.com/pubsched/api-go/repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type publicationFixture struct {
	svc   *PublicationService
	repos *repositories.Registry
	media *models.Media
	post  *models.Post
}

func newPublicationFixture(t *testing.T) *publicationFixture {
	t.Helper()
	repos := repositories.NewMemory()
	svc := NewPublicationService(repos.Publications, repos.Media, repos.Posts)
	ctx := context.Background()

	media, err := NewMediaService(repos.Media, repos.Publications).Create(ctx, "t", "u")
	require.NoError(t, err)
	post, err := NewPostService(repos.Posts, repos.Publications).Create(ctx, "title", "text", nil)
	require.NoError(t, err)

	return &publicationFixture{svc: svc, repos: repos, media: media, post: post}
}

func (f *publicationFixture) schedule(t *testing.T, date time.Time) *models.Publication {
	t.Helper()
	publication, err := f.svc.Create(context.Background(), f.media.ID, f.post.ID, date)
	require.NoError(t, err)
	return publication
}

func publicationIDs(publications []models.Publication) []uint {
	ids := make([]uint, 0, len(publications))
	for _, p := range publications {
		ids = append(ids, p.ID)
	}
	return ids
}

func TestPublicationService_CreateMissingReferences(t *testing.T) {
	f := newPublicationFixture(t)
	ctx := context.Background()

	_, err := f.svc.Create(ctx, 999, f.post.ID, time.Now())
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = f.svc.Create(ctx, f.media.ID, 999, time.Now())
	assert.ErrorIs(t, err, ErrNotFound)

	// nothing was stored
	all, err := f.svc.FindAll(ctx, "", "")
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestPublicationService_UpdateFuturePublication(t *testing.T) {
	f := newPublicationFixture(t)
	ctx := context.Background()

	publication := f.schedule(t, time.Now().Add(48*time.Hour))

	newDate := time.Now().Add(24 * time.Hour)
	updated, err := f.svc.Update(ctx, publication.ID, f.media.ID, f.post.ID, newDate)
	require.NoError(t, err)
	assert.True(t, updated.Date.Equal(newDate))
}

func TestPublicationService_UpdatePublishedIsForbidden(t *testing.T) {
	f := newPublicationFixture(t)
	ctx := context.Background()

	publication := f.schedule(t, time.Now().Add(-time.Hour))

	_, err := f.svc.Update(ctx, publication.ID, f.media.ID, f.post.ID, time.Now().Add(time.Hour))
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestPublicationService_UpdateMissingReferences(t *testing.T) {
	f := newPublicationFixture(t)
	ctx := context.Background()

	publication := f.schedule(t, time.Now().Add(time.Hour))

	_, err := f.svc.Update(ctx, publication.ID, 999, f.post.ID, time.Now().Add(time.Hour))
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = f.svc.Update(ctx, 999, f.media.ID, f.post.ID, time.Now().Add(time.Hour))
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPublicationService_RemovePublished(t *testing.T) {
	f := newPublicationFixture(t)
	ctx := context.Background()

	// published records stay deletable
	publication := f.schedule(t, time.Now().Add(-time.Hour))

	removed, err := f.svc.Remove(ctx, publication.ID)
	require.NoError(t, err)
	assert.Equal(t, publication.ID, removed.ID)

	_, err = f.svc.Remove(ctx, publication.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPublicationService_FindAllFilters(t *testing.T) {
	f := newPublicationFixture(t)
	ctx := context.Background()

	farPast := f.schedule(t, time.Now().Add(-48*time.Hour))
	past := f.schedule(t, time.Now().Add(-2*time.Hour))
	future := f.schedule(t, time.Now().Add(2*time.Hour))
	farFuture := f.schedule(t, time.Now().Add(48*time.Hour))

	after := time.Now().Add(-24 * time.Hour).Format(time.RFC3339)

	t.Run("after and published=true", func(t *testing.T) {
		result, err := f.svc.FindAll(ctx, "true", after)
		require.NoError(t, err)
		assert.Equal(t, []uint{past.ID}, publicationIDs(result))
	})

	t.Run("after and published=false", func(t *testing.T) {
		result, err := f.svc.FindAll(ctx, "false", after)
		require.NoError(t, err)
		assert.Equal(t, []uint{past.ID, future.ID, farFuture.ID}, publicationIDs(result))
	})

	t.Run("after only", func(t *testing.T) {
		result, err := f.svc.FindAll(ctx, "", after)
		require.NoError(t, err)
		assert.Equal(t, []uint{past.ID, future.ID, farFuture.ID}, publicationIDs(result))
	})

	t.Run("published=true only", func(t *testing.T) {
		result, err := f.svc.FindAll(ctx, "true", "")
		require.NoError(t, err)
		assert.Equal(t, []uint{farPast.ID, past.ID}, publicationIDs(result))
	})

	t.Run("published=false only", func(t *testing.T) {
		result, err := f.svc.FindAll(ctx, "false", "")
		require.NoError(t, err)
		assert.Equal(t, []uint{future.ID, farFuture.ID}, publicationIDs(result))
	})

	t.Run("no filters", func(t *testing.T) {
		result, err := f.svc.FindAll(ctx, "", "")
		require.NoError(t, err)
		assert.Len(t, result, 4)
	})
}

func TestPublicationService_FindAllValidation(t *testing.T) {
	f := newPublicationFixture(t)
	ctx := context.Background()

	_, err := f.svc.FindAll(ctx, "banana", "")
	assert.ErrorIs(t, err, ErrBadRequest)

	_, err = f.svc.FindAll(ctx, "", "not-a-date")
	assert.ErrorIs(t, err, ErrBadRequest)
}

func TestPublicationService_FindAllFutureContradiction(t *testing.T) {
	f := newPublicationFixture(t)
	ctx := context.Background()

	f.schedule(t, time.Now().Add(48*time.Hour))
	futureAfter := time.Now().Add(24 * time.Hour).Format(time.RFC3339)

	_, err := f.svc.FindAll(ctx, "true", futureAfter)
	assert.ErrorIs(t, err, ErrForbidden)

	// the same window is a legitimate unpublished query
	result, err := f.svc.FindAll(ctx, "false", futureAfter)
	require.NoError(t, err)
	assert.Len(t, result, 1)
}
