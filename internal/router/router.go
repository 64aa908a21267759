// Package router composes the request pipeline and the route table.
package router

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"

	"github.com/ticklist/ticklist/internal/audit"
	"github.com/ticklist/ticklist/internal/auth"
	"github.com/ticklist/ticklist/internal/config"
	"github.com/ticklist/ticklist/internal/handler"
	"github.com/ticklist/ticklist/internal/middleware"
)

// Deps bundles everything the router needs.
type Deps struct {
	Base   *handler.Handler
	Auth   *handler.AuthHandler
	Todos  *handler.TodoHandler
	Health *handler.HealthHandler
	Audit  *audit.Writer
	Tokens *auth.TokenService
	Config *config.Config
	Logger *slog.Logger
}

// route is one entry of the static route table: method, pattern, whether
// the dispatcher must enforce authentication, and an optional validation
// filter that runs between authorization and the handler.
type route struct {
	method      string
	pattern     string
	requireAuth bool
	validator   func(http.Handler) http.Handler
	handler     http.HandlerFunc
}

// routeTable declares every application route. The pipeline around each
// handler is derived from the flags here rather than from ad hoc closures.
func routeTable(d Deps) []route {
	return []route{
		{method: http.MethodPost, pattern: "/signup", handler: d.Auth.Signup},
		{method: http.MethodPost, pattern: "/login", handler: d.Auth.Login},
		{method: http.MethodGet, pattern: "/me", requireAuth: true, handler: d.Auth.Me},

		{method: http.MethodGet, pattern: "/todos", handler: d.Todos.List},
		{method: http.MethodGet, pattern: "/todos/{id}", handler: d.Todos.Get},
		{method: http.MethodPost, pattern: "/todos", validator: middleware.TodoValidator, handler: d.Todos.Create},
		{method: http.MethodPost, pattern: "/todos/bulk", handler: d.Todos.CreateBulk},
		{method: http.MethodDelete, pattern: "/todos/{id}", handler: d.Todos.Delete},
	}
}

// New builds the chi router with the full middleware pipeline.
//
// Per-request stage order: legacy redirect → audit capture →
// authentication/authorization (flagged routes) → validation (flagged
// routes) → handler. The audit interceptor sits outside recovery so every
// request that reaches the dispatcher produces exactly one audit line
// with the final status code.
func New(d Deps) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.Security(d.Config.IsDevelopment()))
	r.Use(middleware.MaxBodySize(d.Config.MaxRequestBodySize))
	r.Use(cors.New(cors.Options{
		AllowedOrigins: d.Config.GetCORSAllowedOrigins(),
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	}).Handler)
	r.Use(middleware.LegacyRedirect)
	r.Use(middleware.Audit(d.Audit))
	r.Use(middleware.Logger(d.Logger))
	r.Use(middleware.Recoverer(d.Logger))

	// Health endpoints and root info
	r.Get("/healthz", d.Health.Healthz)
	r.Get("/readyz", d.Health.Readyz)
	r.Get("/", d.Base.Hello)

	requireAuth := middleware.RequireAuth(d.Tokens, d.Logger)

	// Application routes from the static table
	for _, rt := range routeTable(d) {
		h := http.Handler(rt.handler)
		if rt.validator != nil {
			h = rt.validator(h)
		}
		if rt.requireAuth {
			h = requireAuth(h)
		}
		r.Method(rt.method, rt.pattern, h)
	}

	// 404 and 405 handlers
	r.NotFound(d.Base.NotFound)
	r.MethodNotAllowed(d.Base.MethodNotAllowed)

	return r
}
