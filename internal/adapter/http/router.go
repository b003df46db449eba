package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/dhomini-pereira/nexo-api/internal/adapter/http/handler"
	"github.com/dhomini-pereira/nexo-api/internal/adapter/http/middleware"
)

// RouterConfig holds the handlers and middleware the router wires together.
type RouterConfig struct {
	Transactions *handler.TransactionHandler
	Accounts     *handler.AccountHandler
	Cards        *handler.CardHandler
	Categories   *handler.CategoryHandler
	Goals        *handler.GoalHandler
	Investments  *handler.InvestmentHandler
	PushTokens   *handler.PushTokenHandler
	Cron         *handler.CronHandler
	Health       *handler.HealthHandler

	Logging     *middleware.LoggingMiddleware
	Idempotency *middleware.IdempotencyMiddleware
	CronSecret  string
}

// NewRouter builds the HTTP routing tree.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(cfg.Logging.Wrap)
	r.Use(middleware.Metrics)

	r.Get("/health", cfg.Health.Liveness)
	r.Get("/ready", cfg.Health.Readiness)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.With(middleware.RequireCronSecret(cfg.CronSecret)).
			Post("/cron/recurrences", cfg.Cron.Sweep)

		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth)
			r.Use(cfg.Idempotency.Wrap)

			r.Route("/transactions", func(r chi.Router) {
				r.Post("/", cfg.Transactions.Create)
				r.Get("/", cfg.Transactions.List)
				r.Post("/transfer", cfg.Transactions.Transfer)
				r.Get("/{id}", cfg.Transactions.Get)
				r.Patch("/{id}", cfg.Transactions.Update)
				r.Delete("/{id}", cfg.Transactions.Delete)
				r.Post("/{id}/pause", cfg.Transactions.TogglePause)
				r.Get("/{id}/group", cfg.Transactions.ListGroup)
				r.Delete("/{id}/recurrence", cfg.Transactions.DeleteWithHistory)
			})

			r.Route("/accounts", func(r chi.Router) {
				r.Post("/", cfg.Accounts.Create)
				r.Get("/", cfg.Accounts.List)
				r.Get("/{id}", cfg.Accounts.Get)
				r.Patch("/{id}", cfg.Accounts.Update)
				r.Delete("/{id}", cfg.Accounts.Delete)
			})

			r.Route("/cards", func(r chi.Router) {
				r.Post("/", cfg.Cards.Create)
				r.Get("/", cfg.Cards.List)
				r.Get("/{id}", cfg.Cards.Get)
				r.Patch("/{id}", cfg.Cards.Update)
				r.Delete("/{id}", cfg.Cards.Delete)
				r.Get("/{id}/invoices", cfg.Cards.ListInvoices)
			})

			r.Post("/invoices/{id}/pay", cfg.Cards.PayInvoice)

			r.Route("/categories", func(r chi.Router) {
				r.Post("/", cfg.Categories.Create)
				r.Get("/", cfg.Categories.List)
				r.Patch("/{id}", cfg.Categories.Update)
				r.Delete("/{id}", cfg.Categories.Delete)
			})

			r.Route("/goals", func(r chi.Router) {
				r.Post("/", cfg.Goals.Create)
				r.Get("/", cfg.Goals.List)
				r.Patch("/{id}", cfg.Goals.Update)
				r.Delete("/{id}", cfg.Goals.Delete)
			})

			r.Route("/investments", func(r chi.Router) {
				r.Post("/", cfg.Investments.Create)
				r.Get("/", cfg.Investments.List)
				r.Patch("/{id}", cfg.Investments.Update)
				r.Delete("/{id}", cfg.Investments.Delete)
			})

			r.Route("/push-tokens", func(r chi.Router) {
				r.Post("/", cfg.PushTokens.Register)
				r.Delete("/", cfg.PushTokens.Unregister)
			})
		})
	})

	return r
}
