package post

import (
	"fmt"

	"github.com/go-api-posts/internal/framework/usecase"
	"github.com/go-api-posts/internal/pkg/validate"
)

// Argument names shared by the formatters and the use cases.
const (
	ArgPostID  = "postID"
	ArgTitle   = "title"
	ArgContent = "content"
)

// postFields mirrors the invariants of domain.Post; the max rule is domain.MaxTitleLength.
type postFields struct {
	Title   string `json:"title" validate:"required,notblank,max=32"`
	Content string `json:"content" validate:"required,notblank"`
}

type postID struct {
	PostID int64 `json:"postID" validate:"gt=0"`
}

// FieldsValidator checks the title and content arguments.
var FieldsValidator usecase.ArgsValidator = usecase.ArgsValidatorFunc(validateFields)

// IDValidator checks the postID argument.
var IDValidator usecase.ArgsValidator = usecase.ArgsValidatorFunc(validateID)

func validateFields(args usecase.Args) []string {
	var msgs []string
	title, ok := stringArg(args, ArgTitle)
	if !ok {
		msgs = append(msgs, fmt.Sprintf("%s must be a string", ArgTitle))
	}
	content, ok := stringArg(args, ArgContent)
	if !ok {
		msgs = append(msgs, fmt.Sprintf("%s must be a string", ArgContent))
	}
	if len(msgs) > 0 {
		return msgs
	}
	return validate.Messages(postFields{Title: title, Content: content})
}

func validateID(args usecase.Args) []string {
	id, ok := args.Int64(ArgPostID)
	if !ok {
		return []string{fmt.Sprintf("%s must be an integer", ArgPostID)}
	}
	return validate.Messages(postID{PostID: id})
}

// stringArg returns the argument as a string. A missing argument is the empty
// string so the required rule reports it.
func stringArg(args usecase.Args, key string) (string, bool) {
	v, present := args[key]
	if !present || v == nil {
		return "", true
	}
	s, ok := v.(string)
	return s, ok
}
