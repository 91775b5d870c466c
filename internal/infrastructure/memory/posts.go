package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/go-api-posts/internal/domain"
	"github.com/go-api-posts/internal/pkg/id"
)

type record struct {
	title   string
	content string
}

// PostStore keeps posts in process memory. It is safe for concurrent use.
// Callers always receive fresh copies, never the stored values.
type PostStore struct {
	mu    sync.RWMutex
	posts map[int64]record
	ids   *id.Generator
}

func NewPostStore(ids *id.Generator) *PostStore {
	if ids == nil {
		ids = id.NewGenerator()
	}
	return &PostStore{posts: make(map[int64]record), ids: ids}
}

func (s *PostStore) GetAll(_ context.Context) ([]*domain.Post, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	keys := make([]int64, 0, len(s.posts))
	for k := range s.posts {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

	out := make([]*domain.Post, 0, len(keys))
	for _, k := range keys {
		p, err := s.load(k)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

func (s *PostStore) GetByID(_ context.Context, postID int64) (*domain.Post, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if _, ok := s.posts[postID]; !ok {
		return nil, domain.ErrNotFound
	}
	return s.load(postID)
}

func (s *PostStore) GetDuplicate(_ context.Context, p *domain.Post) (*domain.Post, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if k, ok := s.titleOwner(p.Title()); ok {
		return s.load(k)
	}
	return nil, nil
}

// Create assigns the next id and stores the post. The title check and the
// insert happen under one lock.
func (s *PostStore) Create(_ context.Context, p *domain.Post) (*domain.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, taken := s.titleOwner(p.Title()); taken {
		return nil, domain.ErrConflict
	}
	postID := s.ids.Next()
	s.posts[postID] = record{title: p.Title(), content: p.Content()}
	return s.load(postID)
}

func (s *PostStore) Update(_ context.Context, p *domain.Post) (*domain.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.posts[p.ID()]; !ok {
		return nil, domain.ErrNotFound
	}
	if owner, taken := s.titleOwner(p.Title()); taken && owner != p.ID() {
		return nil, domain.ErrConflict
	}
	s.posts[p.ID()] = record{title: p.Title(), content: p.Content()}
	return s.load(p.ID())
}

// Len reports the number of stored posts.
func (s *PostStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.posts)
}

// titleOwner must be called with s.mu held.
func (s *PostStore) titleOwner(title string) (int64, bool) {
	for k, r := range s.posts {
		if r.title == title {
			return k, true
		}
	}
	return 0, false
}

// load must be called with s.mu held.
func (s *PostStore) load(postID int64) (*domain.Post, error) {
	r := s.posts[postID]
	return domain.NewPost(postID, r.title, r.content)
}
