package http

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/go-api-posts/internal/application/post"
	"github.com/go-api-posts/internal/config"
	"github.com/go-api-posts/internal/framework/rest"
	"github.com/go-api-posts/internal/transport/http/handler"
	appmiddleware "github.com/go-api-posts/internal/transport/http/middleware"
)

// NewRouter builds and returns the application router.
func NewRouter(cfg *config.Config, deps *Deps, log *zap.Logger) (http.Handler, error) {
	if log == nil {
		log = zap.NewNop()
	}
	if deps.Metrics == nil {
		deps.Metrics = appmiddleware.NewMetrics()
	}
	if deps.RateLimiter == nil {
		deps.RateLimiter = appmiddleware.NewRateLimiter(rate.Limit(cfg.RateLimitRPS), cfg.RateLimitBurst)
	}

	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(appmiddleware.RequestLogger(log))
	r.Use(chimiddleware.Recoverer)
	r.Use(deps.Metrics.Middleware)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	healthH := handler.NewHealthHandler(cfg.StorageDriver)
	r.Get("/health", healthH.Ping)
	r.Handle("/metrics", deps.Metrics.Handler())

	writeMw := []rest.Middleware{deps.RateLimiter.Limit}
	if deps.TokenVerifier != nil {
		writeMw = append(writeMw, appmiddleware.Auth(deps.TokenVerifier))
		if cfg.JWTRequiredRole != "" {
			writeMw = append(writeMw, appmiddleware.RequireRole(cfg.JWTRequiredRole))
		}
	}

	api := rest.New(r, log)
	api.SetBaseURL(cfg.APIBasePath)
	endpoints, err := postEndpoints(deps, writeMw, log)
	if err != nil {
		return nil, err
	}
	for _, e := range endpoints {
		if err := api.Register(e); err != nil {
			return nil, fmt.Errorf("register endpoint: %w", err)
		}
	}
	return api.Handler(), nil
}

func postEndpoints(deps *Deps, writeMw []rest.Middleware, log *zap.Logger) ([]rest.Descriptor, error) {
	criteria := post.NewAcceptanceCriteria(deps.Posts)
	results := handler.NewPostResults(log)

	create, err := rest.NewEndpoint(rest.EndpointConfig[post.CreateResult]{
		Methods:       []string{http.MethodPost},
		Path:          "/post",
		Middleware:    writeMw,
		Validator:     rest.RequireJSON,
		ArgsFormatter: handler.CreatePostArgs,
		UseCase: post.NewCreate(post.CreateDeps{
			Validator: post.FieldsValidator,
			Criteria:  criteria,
			Repo:      deps.Posts,
			Notifier:  deps.Notifier,
			Logger:    log,
		}),
		ResultHandler: rest.ResultHandlerFunc[post.CreateResult](results.Create),
	})
	if err != nil {
		return nil, err
	}

	getAll, err := rest.NewEndpoint(rest.EndpointConfig[post.GetAllResult]{
		Methods:       []string{http.MethodGet},
		Path:          "/post",
		UseCase:       post.NewGetAll(deps.Posts, log),
		ResultHandler: rest.ResultHandlerFunc[post.GetAllResult](results.GetAll),
	})
	if err != nil {
		return nil, err
	}

	getByID, err := rest.NewEndpoint(rest.EndpointConfig[post.GetByIDResult]{
		Methods:       []string{http.MethodGet},
		Path:          "/post/{id}",
		ArgsFormatter: handler.PostIDArgs,
		UseCase:       post.NewGetByID(post.IDValidator, deps.Posts, log),
		ResultHandler: rest.ResultHandlerFunc[post.GetByIDResult](results.GetByID),
	})
	if err != nil {
		return nil, err
	}

	update, err := rest.NewEndpoint(rest.EndpointConfig[post.UpdateResult]{
		Methods:       []string{http.MethodPut},
		Path:          "/post/{id}",
		Middleware:    writeMw,
		Validator:     rest.RequireJSON,
		ArgsFormatter: handler.UpdatePostArgs,
		UseCase: post.NewUpdate(post.UpdateDeps{
			IDValidator:     post.IDValidator,
			FieldsValidator: post.FieldsValidator,
			Criteria:        criteria,
			Repo:            deps.Posts,
			Logger:          log,
		}),
		ResultHandler: rest.ResultHandlerFunc[post.UpdateResult](results.Update),
	})
	if err != nil {
		return nil, err
	}

	return []rest.Descriptor{create, getAll, getByID, update}, nil
}
