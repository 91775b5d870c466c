package usecase

import "strings"

// ErrorType classifies a use case error on the wire.
type ErrorType string

const (
	TypeArgumentValidation ErrorType = "argument-validation"
	TypeBusinessLogic      ErrorType = "business-logic"
	TypeDuplicateResource  ErrorType = "duplicate-resource"
	TypeResourceNotFound   ErrorType = "resource-not-found"
	TypeUnauthorized       ErrorType = "unauthorized"
	TypeFailed             ErrorType = "failed"
)

// Error is an expected use case failure with an ordered list of messages.
type Error struct {
	Type     ErrorType
	Messages []string
}

// ErrorBody is the wire shape of an Error.
type ErrorBody struct {
	Error ErrorDetail `json:"error"`
}

type ErrorDetail struct {
	Type     ErrorType `json:"type"`
	Messages []string  `json:"messages"`
}

func newError(t ErrorType, msgs []string) *Error {
	if msgs == nil {
		msgs = []string{}
	}
	return &Error{Type: t, Messages: msgs}
}

func NewArgumentValidationError(msgs ...string) *Error {
	return newError(TypeArgumentValidation, msgs)
}

func NewBusinessLogicError(msgs ...string) *Error { return newError(TypeBusinessLogic, msgs) }

func NewDuplicateResourceError(msgs ...string) *Error {
	return newError(TypeDuplicateResource, msgs)
}

func NewResourceNotFoundError(msgs ...string) *Error {
	return newError(TypeResourceNotFound, msgs)
}

func NewUnauthorizedError(msgs ...string) *Error { return newError(TypeUnauthorized, msgs) }

func NewFailedError(msgs ...string) *Error { return newError(TypeFailed, msgs) }

// Formatted returns the error in its wire shape.
func (e *Error) Formatted() ErrorBody {
	msgs := e.Messages
	if msgs == nil {
		msgs = []string{}
	}
	return ErrorBody{Error: ErrorDetail{Type: e.Type, Messages: msgs}}
}

func (e *Error) Error() string {
	if len(e.Messages) == 0 {
		return string(e.Type)
	}
	return string(e.Type) + ": " + strings.Join(e.Messages, "; ")
}
