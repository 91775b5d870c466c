package rest

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-api-posts/internal/framework/usecase"
)

// ErrInvalidEndpoint is returned when an endpoint descriptor is incomplete.
var ErrInvalidEndpoint = errors.New("invalid endpoint")

// Middleware wraps an endpoint's handler.
type Middleware = func(http.Handler) http.Handler

// ResultHandler converts a use case result into a response.
type ResultHandler[R any] interface {
	Handle(ctx context.Context, result R) Response
}

// ResultHandlerFunc adapts a function to ResultHandler.
type ResultHandlerFunc[R any] func(ctx context.Context, result R) Response

func (f ResultHandlerFunc[R]) Handle(ctx context.Context, result R) Response { return f(ctx, result) }

// RoutingInformation is where an endpoint is mounted.
type RoutingInformation struct {
	Methods []string
	Path    string
}

// Descriptor is what the API needs to mount an endpoint.
type Descriptor interface {
	Routing() RoutingInformation
	MiddlewareStack() []Middleware
	// Handle runs the request pipeline. A non-nil error is an infrastructure
	// fault the caller answers with a generic 500.
	Handle(r *http.Request) (Response, error)
}

// EndpointConfig lists the parts of an endpoint. Validator and ArgsFormatter are optional.
type EndpointConfig[R any] struct {
	Methods       []string
	Path          string
	Middleware    []Middleware
	Validator     RequestValidator
	ArgsFormatter ArgsFormatter
	UseCase       usecase.UseCase[R]
	ResultHandler ResultHandler[R]
}

// Endpoint binds a route to its validator, formatter, use case and result handler.
// It is immutable once built.
type Endpoint[R any] struct {
	methods    []string
	path       string
	middleware []Middleware
	validator  RequestValidator
	formatter  ArgsFormatter
	useCase    usecase.UseCase[R]
	handler    ResultHandler[R]
}

var knownMethods = map[string]bool{
	http.MethodGet: true, http.MethodHead: true, http.MethodPost: true, http.MethodPut: true,
	http.MethodPatch: true, http.MethodDelete: true, http.MethodOptions: true,
}

// NewEndpoint validates cfg and builds the endpoint.
func NewEndpoint[R any](cfg EndpointConfig[R]) (*Endpoint[R], error) {
	if len(cfg.Methods) == 0 {
		return nil, fmt.Errorf("%w: no methods", ErrInvalidEndpoint)
	}
	methods := make([]string, 0, len(cfg.Methods))
	for _, m := range cfg.Methods {
		m = strings.ToUpper(m)
		if !knownMethods[m] {
			return nil, fmt.Errorf("%w: unsupported method %q", ErrInvalidEndpoint, m)
		}
		methods = append(methods, m)
	}
	if !strings.HasPrefix(cfg.Path, "/") {
		return nil, fmt.Errorf("%w: path %q must start with '/'", ErrInvalidEndpoint, cfg.Path)
	}
	if cfg.UseCase == nil {
		return nil, fmt.Errorf("%w: %s %s has no use case", ErrInvalidEndpoint, methods, cfg.Path)
	}
	if cfg.ResultHandler == nil {
		return nil, fmt.Errorf("%w: %s %s has no result handler", ErrInvalidEndpoint, methods, cfg.Path)
	}
	return &Endpoint[R]{
		methods:    methods,
		path:       cfg.Path,
		middleware: append([]Middleware(nil), cfg.Middleware...),
		validator:  cfg.Validator,
		formatter:  cfg.ArgsFormatter,
		useCase:    cfg.UseCase,
		handler:    cfg.ResultHandler,
	}, nil
}

func (e *Endpoint[R]) Routing() RoutingInformation {
	return RoutingInformation{Methods: append([]string(nil), e.methods...), Path: e.path}
}

func (e *Endpoint[R]) MiddlewareStack() []Middleware {
	return append([]Middleware(nil), e.middleware...)
}

// Handle runs validator, formatter, use case and result handler in order.
// A failed validation short-circuits the rest.
func (e *Endpoint[R]) Handle(r *http.Request) (Response, error) {
	if e.validator != nil {
		if resp := e.validator.Validate(r); resp != nil {
			return *resp, nil
		}
	}
	args := usecase.Args{}
	if e.formatter != nil {
		if formatted := e.formatter.Format(r); formatted != nil {
			args = formatted
		}
	}
	result, err := e.useCase.Invoke(r.Context(), args)
	if err != nil {
		return Response{}, fmt.Errorf("%s %s: %w", r.Method, e.path, err)
	}
	return e.handler.Handle(r.Context(), result), nil
}
