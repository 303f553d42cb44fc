package repositories

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/pubsched/api-go/models"
)

// memoryStore backs the in-memory repositories. It is good enough for local
// runs without a database and is what the unit tests build on. Records are
// returned in id order, which matches what a fresh postgres table yields.
type memoryStore struct {
	mu           sync.RWMutex
	nextID       uint
	media        map[uint]models.Media
	posts        map[uint]models.Post
	publications map[uint]models.Publication
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		nextID:       1,
		media:        make(map[uint]models.Media),
		posts:        make(map[uint]models.Post),
		publications: make(map[uint]models.Publication),
	}
}

func (s *memoryStore) allocID() uint {
	id := s.nextID
	s.nextID++
	return id
}

type memoryMediaRepository struct {
	store *memoryStore
}

func (r *memoryMediaRepository) Create(_ context.Context, media *models.Media) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	media.ID = s.allocID()
	media.CreatedAt = time.Now()
	media.UpdatedAt = media.CreatedAt
	s.media[media.ID] = *media
	return nil
}

func (r *memoryMediaRepository) FindAll(_ context.Context) ([]models.Media, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()
	medias := make([]models.Media, 0, len(s.media))
	for _, m := range s.media {
		medias = append(medias, m)
	}
	sort.Slice(medias, func(i, j int) bool { return medias[i].ID < medias[j].ID })
	return medias, nil
}

func (r *memoryMediaRepository) FindByID(_ context.Context, id uint) (*models.Media, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()
	media, ok := s.media[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &media, nil
}

func (r *memoryMediaRepository) Update(_ context.Context, media *models.Media) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.media[media.ID]; !ok {
		return ErrNotFound
	}
	media.UpdatedAt = time.Now()
	s.media[media.ID] = *media
	return nil
}

func (r *memoryMediaRepository) Delete(_ context.Context, id uint) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.media, id)
	return nil
}

type memoryPostRepository struct {
	store *memoryStore
}

func (r *memoryPostRepository) Create(_ context.Context, post *models.Post) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	post.ID = s.allocID()
	post.CreatedAt = time.Now()
	post.UpdatedAt = post.CreatedAt
	s.posts[post.ID] = *post
	return nil
}

func (r *memoryPostRepository) FindAll(_ context.Context) ([]models.Post, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()
	posts := make([]models.Post, 0, len(s.posts))
	for _, p := range s.posts {
		posts = append(posts, p)
	}
	sort.Slice(posts, func(i, j int) bool { return posts[i].ID < posts[j].ID })
	return posts, nil
}

func (r *memoryPostRepository) FindByID(_ context.Context, id uint) (*models.Post, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()
	post, ok := s.posts[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &post, nil
}

func (r *memoryPostRepository) Update(_ context.Context, post *models.Post) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.posts[post.ID]; !ok {
		return ErrNotFound
	}
	post.UpdatedAt = time.Now()
	s.posts[post.ID] = *post
	return nil
}

func (r *memoryPostRepository) Delete(_ context.Context, id uint) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.posts, id)
	return nil
}

type memoryPublicationRepository struct {
	store *memoryStore
}

func (r *memoryPublicationRepository) Create(_ context.Context, publication *models.Publication) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	publication.ID = s.allocID()
	publication.CreatedAt = time.Now()
	publication.UpdatedAt = publication.CreatedAt
	s.publications[publication.ID] = *publication
	return nil
}

func (r *memoryPublicationRepository) FindAll(_ context.Context, filter PublicationFilter) ([]models.Publication, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()
	publications := make([]models.Publication, 0, len(s.publications))
	for _, p := range s.publications {
		p := p
		if filter.Matches(&p) {
			publications = append(publications, p)
		}
	}
	sort.Slice(publications, func(i, j int) bool { return publications[i].ID < publications[j].ID })
	return publications, nil
}

func (r *memoryPublicationRepository) FindByID(_ context.Context, id uint) (*models.Publication, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()
	publication, ok := s.publications[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &publication, nil
}

func (r *memoryPublicationRepository) Update(_ context.Context, publication *models.Publication) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.publications[publication.ID]; !ok {
		return ErrNotFound
	}
	publication.UpdatedAt = time.Now()
	s.publications[publication.ID] = *publication
	return nil
}

func (r *memoryPublicationRepository) Delete(_ context.Context, id uint) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.publications, id)
	return nil
}

func (r *memoryPublicationRepository) ExistsForMedia(_ context.Context, mediaID uint) (bool, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.publications {
		if p.MediaID == mediaID {
			return true, nil
		}
	}
	return false, nil
}

func (r *memoryPublicationRepository) ExistsForPost(_ context.Context, postID uint) (bool, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.publications {
		if p.PostID == postID {
			return true, nil
		}
	}
	return false, nil
}
