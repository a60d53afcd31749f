package httpapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// RouterDeps defines router construction dependencies.
type RouterDeps struct {
	HealthHandler   http.HandlerFunc
	HelloHandler    http.HandlerFunc
	MetricsHandler  http.Handler
	FrontendHandler http.Handler
	// BodyParser runs after CORS so rejected bodies still carry CORS headers.
	BodyParser func(http.Handler) http.Handler
	// Middlewares wrap the recoverer, so they observe the 500 it writes.
	Middlewares []func(http.Handler) http.Handler
	CORS        CORSOptions
}

// CORSOptions narrows the cross-origin policy. The zero value allows any origin.
type CORSOptions struct {
	AllowedOrigins []string
	MaxAge         int
}

// NewRouter wires HTTP routes.
func NewRouter(deps RouterDeps) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.RealIP)
	for _, mw := range deps.Middlewares {
		r.Use(mw)
	}
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	origins := deps.CORS.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{"GET", "HEAD", "PUT", "PATCH", "POST", "DELETE"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
		ExposedHeaders: []string{"X-Request-ID"},
		MaxAge:         deps.CORS.MaxAge,
	}))
	if deps.BodyParser != nil {
		r.Use(deps.BodyParser)
	}

	if deps.HealthHandler != nil {
		r.Get("/healthz", deps.HealthHandler)
	}
	if deps.MetricsHandler != nil {
		r.Method(http.MethodGet, "/metrics", deps.MetricsHandler)
	}

	r.Route("/api", func(r chi.Router) {
		r.Get("/hello", deps.HelloHandler)
	})

	if deps.FrontendHandler != nil {
		r.Method(http.MethodGet, "/", deps.FrontendHandler)
		r.Method(http.MethodGet, "/assets/*", deps.FrontendHandler)
	}

	return r
}
