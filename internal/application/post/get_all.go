package post

import (
	"context"

	"go.uber.org/zap"

	"github.com/go-api-posts/internal/domain"
	"github.com/go-api-posts/internal/framework/usecase"
)

type allLister interface {
	GetAll(ctx context.Context) ([]*domain.Post, error)
}

// GetAll lists every stored post.
type GetAll struct {
	repo allLister
	log  *zap.Logger
}

func NewGetAll(repo allLister, log *zap.Logger) *GetAll {
	if log == nil {
		log = zap.NewNop()
	}
	return &GetAll{repo: repo, log: log}
}

func (uc *GetAll) Invoke(ctx context.Context, _ usecase.Args) (GetAllResult, error) {
	posts, err := uc.repo.GetAll(ctx)
	if err != nil {
		uc.log.Warn("list posts", zap.Error(err))
		return GetAllResult{Message: GetAllFailed, Error: newPersistenceFailedError()}, nil
	}
	if posts == nil {
		posts = []*domain.Post{}
	}
	return GetAllResult{Message: GetAllFound, Posts: posts}, nil
}
