package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/sbilibin2017/gw-glossary/internal/handlers"
	"github.com/sbilibin2017/gw-glossary/internal/logger"
	"github.com/sbilibin2017/gw-glossary/internal/middlewares"
)

const (
	serviceName = "WebGL/WebGPU Glossary API"
	docsPath    = "/swagger/index.html"
)

// TermService is the set of term operations served under /terms.
type TermService interface {
	handlers.TermLister
	handlers.TermGetter
	handlers.TermCreator
	handlers.TermUpdater
	handlers.TermDeleter
}

// Config holds router dependencies.
type Config struct {
	Terms      TermService
	Version    string
	SwaggerURL string // URL of doc.json passed to the swagger UI

	// TermMiddlewares wrap every /terms route, e.g. the per-request transaction.
	TermMiddlewares []func(http.Handler) http.Handler
}

// New builds the HTTP router.
func New(cfg Config) *chi.Mux {
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))

	r.Get("/", handlers.NewRootHandler(serviceName, docsPath, cfg.Version))

	r.Route("/terms", func(r chi.Router) {
		r.Use(cfg.TermMiddlewares...)
		r.Get("/", handlers.NewListTermsHandler(cfg.Terms))
		r.Post("/", handlers.NewCreateTermHandler(cfg.Terms))
		r.Get("/{keyword}", handlers.NewGetTermHandler(cfg.Terms))
		r.Put("/{keyword}", handlers.NewUpdateTermHandler(cfg.Terms))
		r.Delete("/{keyword}", handlers.NewDeleteTermHandler(cfg.Terms))
	})

	swaggerURL := cfg.SwaggerURL
	if swaggerURL == "" {
		swaggerURL = "/swagger/doc.json"
	}
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL(swaggerURL)))

	return r
}
