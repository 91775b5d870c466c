package post

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/go-api-posts/internal/domain"
	"github.com/go-api-posts/internal/framework/usecase"
)

// UpdateDeps are the collaborators of Update. Logger is optional.
type UpdateDeps struct {
	IDValidator     usecase.ArgsValidator
	FieldsValidator usecase.ArgsValidator
	Criteria        usecase.AcceptanceCriterion[*domain.Post]
	Repo            Repository
	Logger          *zap.Logger
}

// Update replaces the title and content of a stored post.
type Update struct {
	idValidator     usecase.ArgsValidator
	fieldsValidator usecase.ArgsValidator
	criteria        usecase.AcceptanceCriterion[*domain.Post]
	repo            Repository
	log             *zap.Logger
}

func NewUpdate(deps UpdateDeps) *Update {
	uc := &Update{
		idValidator:     deps.IDValidator,
		fieldsValidator: deps.FieldsValidator,
		criteria:        deps.Criteria,
		repo:            deps.Repo,
		log:             deps.Logger,
	}
	if uc.log == nil {
		uc.log = zap.NewNop()
	}
	return uc
}

func (uc *Update) Invoke(ctx context.Context, args usecase.Args) (UpdateResult, error) {
	notFound := UpdateResult{Message: UpdateNotFound, Error: newPostNotFoundError()}
	failed := UpdateResult{Message: UpdateFailed, Error: newPersistenceFailedError()}

	if msgs := uc.idValidator.Validate(args); len(msgs) > 0 {
		return notFound, nil
	}
	if msgs := uc.fieldsValidator.Validate(args); len(msgs) > 0 {
		return UpdateResult{
			Message: UpdateArgumentError,
			Error:   usecase.NewArgumentValidationError(msgs...),
		}, nil
	}
	id, _ := args.Int64(ArgPostID)
	title, _ := args.String(ArgTitle)
	content, _ := args.String(ArgContent)

	p, err := uc.repo.GetByID(ctx, id)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return notFound, nil
	case err != nil:
		uc.log.Warn("get post for update", zap.Int64("post_id", id), zap.Error(err))
		return failed, nil
	case p == nil:
		return notFound, nil
	}

	if err := p.SetTitle(title); err != nil {
		return UpdateResult{}, fmt.Errorf("apply validated title: %w", err)
	}
	if err := p.SetContent(content); err != nil {
		return UpdateResult{}, fmt.Errorf("apply validated content: %w", err)
	}

	uerr, err := uc.criteria.Complies(ctx, p)
	if err != nil {
		return UpdateResult{}, err
	}
	if uerr != nil {
		return UpdateResult{Message: UpdateBusinessLogicError, Error: uerr}, nil
	}

	updated, err := uc.repo.Update(ctx, p)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return notFound, nil
	case errors.Is(err, domain.ErrConflict):
		return UpdateResult{Message: UpdateBusinessLogicError, Error: NewDuplicatePostError(p)}, nil
	case err != nil:
		uc.log.Warn("update post", zap.Int64("post_id", id), zap.Error(err))
		return failed, nil
	case updated == nil:
		return failed, nil
	}
	return UpdateResult{Message: Updated, Post: updated}, nil
}
