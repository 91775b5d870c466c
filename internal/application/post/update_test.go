package post

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/go-api-posts/internal/domain"
	"github.com/go-api-posts/internal/framework/usecase"
)

func newUpdate(repo *mockRepo) *Update {
	return NewUpdate(UpdateDeps{
		IDValidator:     IDValidator,
		FieldsValidator: FieldsValidator,
		Criteria:        NewAcceptanceCriteria(repo),
		Repo:            repo,
	})
}

func updateArgs() usecase.Args {
	return usecase.Args{ArgPostID: "10", ArgTitle: "New title", ArgContent: "New content"}
}

func TestUpdate_Success(t *testing.T) {
	repo := &mockRepo{}
	repo.On("GetByID", mock.Anything, int64(10)).Return(mustPost(10, "Old", "old"), nil)
	repo.On("GetDuplicate", mock.Anything, titled("New title")).Return(nil, nil)
	repo.On("Update", mock.Anything, titled("New title")).Return(mustPost(10, "New title", "New content"), nil)

	res, err := newUpdate(repo).Invoke(context.Background(), updateArgs())
	require.NoError(t, err)
	assert.Equal(t, Updated, res.Message)
	assert.Equal(t, int64(10), res.Post.ID())
	assert.Equal(t, "New content", res.Post.Content())
	repo.AssertExpectations(t)
}

func TestUpdate_KeepingOwnTitleIsNotDuplicate(t *testing.T) {
	repo := &mockRepo{}
	repo.On("GetByID", mock.Anything, int64(10)).Return(mustPost(10, "New title", "old"), nil)
	repo.On("GetDuplicate", mock.Anything, mock.Anything).Return(mustPost(10, "New title", "old"), nil)
	repo.On("Update", mock.Anything, mock.Anything).Return(mustPost(10, "New title", "New content"), nil)

	res, err := newUpdate(repo).Invoke(context.Background(), updateArgs())
	require.NoError(t, err)
	assert.Equal(t, Updated, res.Message)
}

func TestUpdate_DuplicateTitle(t *testing.T) {
	repo := &mockRepo{}
	repo.On("GetByID", mock.Anything, int64(10)).Return(mustPost(10, "Old", "old"), nil)
	repo.On("GetDuplicate", mock.Anything, mock.Anything).Return(mustPost(11, "New title", "x"), nil)

	res, err := newUpdate(repo).Invoke(context.Background(), updateArgs())
	require.NoError(t, err)
	assert.Equal(t, UpdateBusinessLogicError, res.Message)
	assert.Equal(t, usecase.TypeDuplicateResource, res.Error.Type)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestUpdate_NotFound(t *testing.T) {
	repo := &mockRepo{}
	repo.On("GetByID", mock.Anything, int64(10)).Return(nil, domain.ErrNotFound)

	res, err := newUpdate(repo).Invoke(context.Background(), updateArgs())
	require.NoError(t, err)
	assert.Equal(t, UpdateNotFound, res.Message)
}

func TestUpdate_InvalidIDIsNotFound(t *testing.T) {
	repo := &mockRepo{}
	args := updateArgs()
	args[ArgPostID] = "x"

	res, err := newUpdate(repo).Invoke(context.Background(), args)
	require.NoError(t, err)
	assert.Equal(t, UpdateNotFound, res.Message)
}

func TestUpdate_ArgumentError(t *testing.T) {
	repo := &mockRepo{}
	args := updateArgs()
	args[ArgTitle] = "   "

	res, err := newUpdate(repo).Invoke(context.Background(), args)
	require.NoError(t, err)
	assert.Equal(t, UpdateArgumentError, res.Message)
	assert.Equal(t, []string{"title can't be blank"}, res.Error.Messages)
}

func TestUpdate_RepositoryFailures(t *testing.T) {
	for want, repoErr := range map[UpdateMessage]error{
		UpdateNotFound:           domain.ErrNotFound,
		UpdateBusinessLogicError: domain.ErrConflict,
		UpdateFailed:             errors.New("throttled"),
	} {
		repo := &mockRepo{}
		repo.On("GetByID", mock.Anything, int64(10)).Return(mustPost(10, "Old", "old"), nil)
		repo.On("GetDuplicate", mock.Anything, mock.Anything).Return(nil, nil)
		repo.On("Update", mock.Anything, mock.Anything).Return(nil, repoErr)

		res, err := newUpdate(repo).Invoke(context.Background(), updateArgs())
		require.NoError(t, err)
		assert.Equal(t, want, res.Message, repoErr.Error())
	}
}
