package post

import (
	"context"

	"github.com/go-api-posts/internal/domain"
)

// Repository persists posts.
//
// GetByID and Update report a missing post with domain.ErrNotFound.
// GetDuplicate returns nil, nil when no stored post shares the title.
// Create and Update report a title already taken by another post with
// domain.ErrConflict; the check and the write are atomic.
type Repository interface {
	GetAll(ctx context.Context) ([]*domain.Post, error)
	GetByID(ctx context.Context, id int64) (*domain.Post, error)
	GetDuplicate(ctx context.Context, p *domain.Post) (*domain.Post, error)
	Create(ctx context.Context, p *domain.Post) (*domain.Post, error)
	Update(ctx context.Context, p *domain.Post) (*domain.Post, error)
}

// Notifier is told about posts once they are stored.
type Notifier interface {
	PostCreated(ctx context.Context, p *domain.Post) error
}

type nopNotifier struct{}

func (nopNotifier) PostCreated(context.Context, *domain.Post) error { return nil }
