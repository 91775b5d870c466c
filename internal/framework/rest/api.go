package rest

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// API mounts endpoint descriptors on a chi router.
type API struct {
	router  chi.Router
	log     *zap.Logger
	baseURL string
	routes  map[string]bool
}

func New(router chi.Router, log *zap.Logger) *API {
	if log == nil {
		log = zap.NewNop()
	}
	return &API{router: router, log: log, routes: make(map[string]bool)}
}

// SetBaseURL prefixes every endpoint registered afterwards.
func (a *API) SetBaseURL(url string) {
	a.baseURL = strings.TrimSuffix(url, "/")
}

// Register mounts every method of d under the base URL with d's middleware stack.
func (a *API) Register(d Descriptor) error {
	routing := d.Routing()
	if len(routing.Methods) == 0 {
		return fmt.Errorf("%w: %s has no methods", ErrInvalidEndpoint, routing.Path)
	}
	pattern := a.baseURL + routing.Path
	for _, m := range routing.Methods {
		key := m + " " + pattern
		if a.routes[key] {
			return fmt.Errorf("%w: %s registered twice", ErrInvalidEndpoint, key)
		}
	}
	r := a.router.With(d.MiddlewareStack()...)
	h := a.serve(d)
	for _, m := range routing.Methods {
		a.routes[m+" "+pattern] = true
		r.Method(m, pattern, h)
	}
	return nil
}

// Handler returns the router serving every registered endpoint.
func (a *API) Handler() http.Handler { return a.router }

func (a *API) serve(d Descriptor) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		resp, err := d.Handle(r)
		if err != nil {
			a.log.Error("request pipeline failed",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Error(err))
			resp = internalError
		}
		if err := Write(w, resp); err != nil {
			a.log.Warn("write response", zap.String("path", r.URL.Path), zap.Error(err))
		}
	})
}
