package post

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/go-api-posts/internal/domain"
	"github.com/go-api-posts/internal/framework/usecase"
)

type idFinder interface {
	GetByID(ctx context.Context, id int64) (*domain.Post, error)
}

// GetByID looks up one post. A malformed id and an unknown id both end in
// GetByIDNotFound so callers cannot probe which ids are well formed.
type GetByID struct {
	validator usecase.ArgsValidator
	repo      idFinder
	log       *zap.Logger
}

func NewGetByID(validator usecase.ArgsValidator, repo idFinder, log *zap.Logger) *GetByID {
	if log == nil {
		log = zap.NewNop()
	}
	return &GetByID{validator: validator, repo: repo, log: log}
}

func (uc *GetByID) Invoke(ctx context.Context, args usecase.Args) (GetByIDResult, error) {
	notFound := GetByIDResult{Message: GetByIDNotFound, Error: newPostNotFoundError()}
	if msgs := uc.validator.Validate(args); len(msgs) > 0 {
		return notFound, nil
	}
	id, _ := args.Int64(ArgPostID)

	p, err := uc.repo.GetByID(ctx, id)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return notFound, nil
	case err != nil:
		uc.log.Warn("get post", zap.Int64("post_id", id), zap.Error(err))
		return GetByIDResult{Message: GetByIDFailed, Error: newPersistenceFailedError()}, nil
	case p == nil:
		return notFound, nil
	}
	return GetByIDResult{Message: GetByIDFound, Post: p}, nil
}
