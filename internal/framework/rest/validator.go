package rest

import (
	"mime"
	"net/http"

	"github.com/go-api-posts/internal/framework/usecase"
)

// RequestValidator inspects a request before any argument is extracted.
// It returns nil when the request may proceed, otherwise the response to send.
type RequestValidator interface {
	Validate(r *http.Request) *Response
}

// RequestValidatorFunc adapts a function to RequestValidator.
type RequestValidatorFunc func(r *http.Request) *Response

func (f RequestValidatorFunc) Validate(r *http.Request) *Response { return f(r) }

// RequireJSON rejects requests that declare a body content type other than JSON.
// Requests without a Content-Type header pass.
var RequireJSON RequestValidator = RequestValidatorFunc(func(r *http.Request) *Response {
	ct := r.Header.Get("Content-Type")
	if ct == "" {
		return nil
	}
	mt, _, err := mime.ParseMediaType(ct)
	if err == nil && mt == "application/json" {
		return nil
	}
	resp := ErrorResponse(http.StatusUnsupportedMediaType,
		usecase.NewArgumentValidationError("content type must be application/json"))
	return &resp
})
