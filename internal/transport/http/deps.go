package http

import (
	"github.com/go-api-posts/internal/application/post"
	"github.com/go-api-posts/internal/transport/http/middleware"
)

// Deps holds the infrastructure dependencies of the router.
// Notifier and TokenVerifier are optional.
type Deps struct {
	Posts         post.Repository
	Notifier      post.Notifier
	TokenVerifier middleware.TokenVerifier
	Metrics       *middleware.Metrics
	RateLimiter   *middleware.RateLimiter
}
