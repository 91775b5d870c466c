package post

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/go-api-posts/internal/domain"
)

// --- mocks ---

type mockRepo struct{ mock.Mock }

func (m *mockRepo) GetAll(ctx context.Context) ([]*domain.Post, error) {
	args := m.Called(ctx)
	posts, _ := args.Get(0).([]*domain.Post)
	return posts, args.Error(1)
}

func (m *mockRepo) GetByID(ctx context.Context, id int64) (*domain.Post, error) {
	args := m.Called(ctx, id)
	if p, _ := args.Get(0).(*domain.Post); p != nil {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRepo) GetDuplicate(ctx context.Context, p *domain.Post) (*domain.Post, error) {
	args := m.Called(ctx, p)
	if d, _ := args.Get(0).(*domain.Post); d != nil {
		return d, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRepo) Create(ctx context.Context, p *domain.Post) (*domain.Post, error) {
	args := m.Called(ctx, p)
	if c, _ := args.Get(0).(*domain.Post); c != nil {
		return c, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRepo) Update(ctx context.Context, p *domain.Post) (*domain.Post, error) {
	args := m.Called(ctx, p)
	if u, _ := args.Get(0).(*domain.Post); u != nil {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

type mockNotifier struct{ mock.Mock }

func (m *mockNotifier) PostCreated(ctx context.Context, p *domain.Post) error {
	return m.Called(ctx, p).Error(0)
}

// --- helpers ---

func mustPost(id int64, title, content string) *domain.Post {
	p, err := domain.NewPost(id, title, content)
	if err != nil {
		panic(err)
	}
	return p
}

func titled(title string) interface{} {
	return mock.MatchedBy(func(p *domain.Post) bool { return p.Title() == title })
}
