package middleware

import (
	"net/http"

	"github.com/go-api-posts/internal/framework/rest"
	"github.com/go-api-posts/internal/framework/usecase"
)

// writeError writes a use case error body so middleware rejections look like
// every other API error.
func writeError(w http.ResponseWriter, status int, e *usecase.Error) {
	_ = rest.Write(w, rest.ErrorResponse(status, e))
}
