package post

import (
	"fmt"

	"github.com/go-api-posts/internal/domain"
	"github.com/go-api-posts/internal/framework/usecase"
)

const (
	msgPostNotFound       = "Post does not exist"
	msgPersistenceFailure = "persistence mechanism failed"
)

// NewDuplicatePostError reports that p's title is already taken.
func NewDuplicatePostError(p *domain.Post) *usecase.Error {
	return usecase.NewDuplicateResourceError(fmt.Sprintf("Post with title %q already exists", p.Title()))
}

func newPostNotFoundError() *usecase.Error {
	return usecase.NewResourceNotFoundError(msgPostNotFound)
}

func newPersistenceFailedError() *usecase.Error {
	return usecase.NewFailedError(msgPersistenceFailure)
}
