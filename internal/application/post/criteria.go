package post

import (
	"context"
	"fmt"

	"github.com/go-api-posts/internal/domain"
	"github.com/go-api-posts/internal/framework/usecase"
)

type duplicateFinder interface {
	GetDuplicate(ctx context.Context, p *domain.Post) (*domain.Post, error)
}

// PostCannotBeDuplicate fails when another stored post already has the candidate's title.
// A stored post with the candidate's own id is not a duplicate.
type PostCannotBeDuplicate struct {
	repo duplicateFinder
}

func NewPostCannotBeDuplicate(repo duplicateFinder) *PostCannotBeDuplicate {
	return &PostCannotBeDuplicate{repo: repo}
}

func (c *PostCannotBeDuplicate) Complies(ctx context.Context, p *domain.Post) (*usecase.Error, error) {
	dup, err := c.repo.GetDuplicate(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("find duplicate post: %w", err)
	}
	if dup == nil || (p.HasID() && dup.ID() == p.ID()) {
		return nil, nil
	}
	return NewDuplicatePostError(p), nil
}

// NewAcceptanceCriteria bundles the rules a post must satisfy before it is written.
func NewAcceptanceCriteria(repo duplicateFinder) usecase.AcceptanceCriterion[*domain.Post] {
	return usecase.AllOf[*domain.Post](NewPostCannotBeDuplicate(repo))
}
