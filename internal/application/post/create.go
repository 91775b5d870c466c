package post

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/go-api-posts/internal/domain"
	"github.com/go-api-posts/internal/framework/usecase"
)

// CreateDeps are the collaborators of Create. Notifier and Logger are optional.
type CreateDeps struct {
	Validator usecase.ArgsValidator
	Criteria  usecase.AcceptanceCriterion[*domain.Post]
	Repo      Repository
	Notifier  Notifier
	Logger    *zap.Logger
}

// Create stores a new post.
type Create struct {
	validator usecase.ArgsValidator
	criteria  usecase.AcceptanceCriterion[*domain.Post]
	repo      Repository
	notifier  Notifier
	log       *zap.Logger
}

func NewCreate(deps CreateDeps) *Create {
	uc := &Create{
		validator: deps.Validator,
		criteria:  deps.Criteria,
		repo:      deps.Repo,
		notifier:  deps.Notifier,
		log:       deps.Logger,
	}
	if uc.notifier == nil {
		uc.notifier = nopNotifier{}
	}
	if uc.log == nil {
		uc.log = zap.NewNop()
	}
	return uc
}

func (uc *Create) Invoke(ctx context.Context, args usecase.Args) (CreateResult, error) {
	if msgs := uc.validator.Validate(args); len(msgs) > 0 {
		return CreateResult{
			Message: CreateArgumentError,
			Error:   usecase.NewArgumentValidationError(msgs...),
		}, nil
	}

	title, _ := args.String(ArgTitle)
	content, _ := args.String(ArgContent)
	p, err := domain.NewPost(0, title, content)
	if err != nil {
		return CreateResult{}, fmt.Errorf("build post from validated args: %w", err)
	}

	uerr, err := uc.criteria.Complies(ctx, p)
	if err != nil {
		return CreateResult{}, err
	}
	if uerr != nil {
		return CreateResult{Message: CreateBusinessLogicError, Error: uerr}, nil
	}

	created, err := uc.repo.Create(ctx, p)
	switch {
	case errors.Is(err, domain.ErrConflict):
		return CreateResult{Message: CreateBusinessLogicError, Error: NewDuplicatePostError(p)}, nil
	case err != nil:
		uc.log.Warn("create post", zap.Error(err))
		return CreateResult{Message: CreateFailed, Error: newPersistenceFailedError()}, nil
	case created == nil:
		return CreateResult{Message: CreateFailed, Error: newPersistenceFailedError()}, nil
	}

	if err := uc.notifier.PostCreated(ctx, created); err != nil {
		uc.log.Warn("publish post created", zap.Int64("post_id", created.ID()), zap.Error(err))
	}
	return CreateResult{Message: Created, Post: created}, nil
}
