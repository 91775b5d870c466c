package post

import (
	"github.com/go-api-posts/internal/domain"
	"github.com/go-api-posts/internal/framework/usecase"
)

// CreateMessage tags the outcome of Create.
type CreateMessage string

const (
	Created                  CreateMessage = "post-created"
	CreateArgumentError      CreateMessage = "post-created-argument-error"
	CreateBusinessLogicError CreateMessage = "post-created-business-logic-error"
	CreateFailed             CreateMessage = "post-created-failed"
)

// CreateResult carries Post when Message is Created and Error otherwise.
type CreateResult struct {
	Message CreateMessage
	Post    *domain.Post
	Error   *usecase.Error
}

// GetAllMessage tags the outcome of GetAll.
type GetAllMessage string

const (
	GetAllFound  GetAllMessage = "post-get-all-found"
	GetAllFailed GetAllMessage = "post-get-all-failed"
)

// GetAllResult carries Posts (possibly empty) when Message is GetAllFound.
type GetAllResult struct {
	Message GetAllMessage
	Posts   []*domain.Post
	Error   *usecase.Error
}

// GetByIDMessage tags the outcome of GetByID.
type GetByIDMessage string

const (
	GetByIDFound    GetByIDMessage = "post-get-by-id-found"
	GetByIDNotFound GetByIDMessage = "post-get-by-id-not-found"
	GetByIDFailed   GetByIDMessage = "post-get-by-id-failed"
)

type GetByIDResult struct {
	Message GetByIDMessage
	Post    *domain.Post
	Error   *usecase.Error
}

// UpdateMessage tags the outcome of Update.
type UpdateMessage string

const (
	Updated                  UpdateMessage = "post-updated"
	UpdateArgumentError      UpdateMessage = "post-updated-argument-error"
	UpdateNotFound           UpdateMessage = "post-updated-not-found"
	UpdateBusinessLogicError UpdateMessage = "post-updated-business-logic-error"
	UpdateFailed             UpdateMessage = "post-updated-failed"
)

type UpdateResult struct {
	Message UpdateMessage
	Post    *domain.Post
	Error   *usecase.Error
}
