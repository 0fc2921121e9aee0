package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/iho/fintrack/internal/adapter/http/handler"
	"github.com/iho/fintrack/internal/adapter/http/middleware"
	"github.com/iho/fintrack/internal/infrastructure/auth"
)

// RouterConfig holds dependencies for the router.
type RouterConfig struct {
	AuthHandler        *handler.AuthHandler
	AccountHandler     *handler.AccountHandler
	TransactionHandler *handler.TransactionHandler
	CategoryHandler    *handler.CategoryHandler
	BudgetHandler      *handler.BudgetHandler
	ReportHandler      *handler.ReportHandler
	Tokens             *auth.TokenManager
	Logger             zerolog.Logger
}

// NewRouter creates a new HTTP router.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewLoggingMiddleware(cfg.Logger).Wrap)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.Metrics)

	r.Handle("/metrics", promhttp.Handler())
	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	r.Route("/api", func(r chi.Router) {
		// Session endpoints; refresh and logout work off the cookie, not
		// the access token.
		r.Route("/auth", func(r chi.Router) {
			r.Post("/signup", cfg.AuthHandler.Signup)
			r.Post("/register", cfg.AuthHandler.Signup)
			r.Post("/login", cfg.AuthHandler.Login)
			r.Post("/refresh", cfg.AuthHandler.Refresh)
			r.Post("/logout", cfg.AuthHandler.Logout)

			r.Group(func(r chi.Router) {
				r.Use(middleware.Auth(cfg.Tokens))
				r.Get("/me", cfg.AuthHandler.Me)
			})
		})

		// Entity endpoints, all behind the access token.
		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(cfg.Tokens))

			r.Route("/accounts", func(r chi.Router) {
				r.Get("/", cfg.AccountHandler.List)
				r.Post("/", cfg.AccountHandler.Create)
				r.Put("/{id}", cfg.AccountHandler.Update)
				r.Delete("/{id}", cfg.AccountHandler.Delete)
			})

			r.Route("/transactions", func(r chi.Router) {
				r.Get("/", cfg.TransactionHandler.List)
				r.Post("/", cfg.TransactionHandler.Create)
				r.Put("/{id}", cfg.TransactionHandler.Update)
				r.Delete("/{id}", cfg.TransactionHandler.Delete)
			})

			r.Route("/categories", func(r chi.Router) {
				r.Get("/", cfg.CategoryHandler.List)
				r.Post("/", cfg.CategoryHandler.Create)
				r.Put("/{id}", cfg.CategoryHandler.Update)
				r.Delete("/{id}", cfg.CategoryHandler.Delete)
			})

			r.Route("/budgets", func(r chi.Router) {
				r.Get("/", cfg.BudgetHandler.List)
				r.Post("/", cfg.BudgetHandler.Create)
				r.Put("/{id}", cfg.BudgetHandler.Update)
				r.Delete("/{id}", cfg.BudgetHandler.Delete)
			})

			r.Get("/reports/summary", cfg.ReportHandler.Summary)
		})
	})

	return r
}
