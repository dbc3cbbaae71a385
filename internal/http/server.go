// Package http exposes the dashboard stores as a JSON API.
package http

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"finboard/internal/config"
	"finboard/internal/contacts"
	"finboard/internal/log"
	"finboard/internal/middleware/ratelimit"
	"finboard/internal/middleware/security"
	"finboard/internal/middleware/trace"
	"finboard/internal/notify"
	"finboard/internal/state"
)

// Server wires the stores behind the JSON routes.
type Server struct {
	http.Server

	cfg    *config.Config
	logger *log.Logger

	transactions *state.Transactions
	settings     *state.Settings
	auth         *state.Auth
	alerts       *state.BudgetAlerts
	layouts      *state.Layouts
	theme        *state.Theme
	center       *notify.Center
	contacts     *contacts.Client

	limiter *ratelimit.Limiter
}

// Deps carries everything the server needs besides configuration.
type Deps struct {
	Logger       *log.Logger
	Transactions *state.Transactions
	Settings     *state.Settings
	Auth         *state.Auth
	Alerts       *state.BudgetAlerts
	Layouts      *state.Layouts
	Theme        *state.Theme
	Center       *notify.Center
	Contacts     *contacts.Client
}

// NewServer configures routes and middleware, returning a
// ready-to-run server.
func NewServer(cfg *config.Config, deps Deps) *Server {
	s := &Server{
		cfg:          cfg,
		logger:       deps.Logger.WithComponent(log.ComponentHTTP),
		transactions: deps.Transactions,
		settings:     deps.Settings,
		auth:         deps.Auth,
		alerts:       deps.Alerts,
		layouts:      deps.Layouts,
		theme:        deps.Theme,
		center:       deps.Center,
		contacts:     deps.Contacts,
		limiter:      ratelimit.NewLimiter(ratelimit.DefaultConfig()),
	}

	resolver := security.NewIPResolver()
	headers := security.NewHeadersMiddleware(security.DefaultHeadersConfig())
	tracer := trace.NewMiddleware(resolver.ClientIP)

	r := chi.NewRouter()
	r.Use(tracer.Middleware)
	r.Use(headers.Middleware)
	r.Use(log.Middleware(s.logger))

	r.Get("/healthz", s.handleHealth)
	r.Get("/readyz", s.handleHealth)

	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Use(s.limiter.Middleware(resolver.ClientIP, nil))
			r.Post("/register", s.handleRegister)
			r.Post("/login", s.handleLogin)
			r.Post("/logout", s.handleLogout)
			r.Get("/session", s.handleSession)
		})

		r.Route("/transactions", func(r chi.Router) {
			r.Get("/", s.handleListTransactions)
			r.Post("/", s.handleAddTransaction)
			r.Put("/", s.handleReplaceTransactions)
			r.Put("/{id}", s.handleUpdateTransaction)
			r.Delete("/{id}", s.handleDeleteTransaction)
		})

		r.Get("/categories", s.handleCategories)
		r.Post("/categories/classify", s.handleClassify)

		r.Get("/settings", s.handleGetSettings)
		r.Put("/settings", s.handlePutSettings)

		r.Route("/metrics", func(r chi.Router) {
			r.Get("/summary", s.handleSummary)
			r.Get("/balance", s.handleBalance)
			r.Get("/categories", s.handleCategoryBreakdown)
			r.Get("/trend", s.handleTrend)
			r.Get("/statistics", s.handleStatistics)
			r.Get("/recommendations", s.handleRecommendations)
			r.Get("/budget", s.handleBudget)
		})

		r.Route("/notifications", func(r chi.Router) {
			r.Get("/", s.handleListNotifications)
			r.Post("/", s.handleShowNotification)
			r.Delete("/{id}", s.handleDismissNotification)
			r.Post("/{id}/read", s.handleMarkRead)
			r.Post("/read-all", s.handleMarkAllRead)
		})

		r.Route("/layout", func(r chi.Router) {
			r.Get("/", s.handleGetLayout)
			r.Put("/", s.handleSaveLayout)
			r.Post("/reset", s.handleResetLayout)
			r.Delete("/", s.handleClearLayouts)
		})

		r.Get("/theme", s.handleGetTheme)
		r.Put("/theme", s.handlePutTheme)

		r.Get("/contacts", s.handleContacts)

		r.Post("/demo", s.handleSeedDemo)
	})

	s.Server = http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	return s
}

// Shutdown stops the rate limiter before draining in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	s.limiter.Stop()
	return s.Server.Shutdown(ctx)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
