package domain

import "errors"

// Sentinel errors for domain-level error discrimination.
// Repositories wrap these so use cases can map them to results without leaking infrastructure details.
var (
	ErrNotFound = errors.New("not found")
	ErrConflict = errors.New("conflict")
)

// Post invariant violations. They indicate a caller bug: input is validated before an entity is built.
var (
	ErrBlankTitle   = errors.New("title can't be blank")
	ErrTitleTooLong = errors.New("title can't have more than 32 characters")
	ErrBlankContent = errors.New("no content has been given")
)
