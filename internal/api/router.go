package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/fritzgwapo0907/budgetmate-backend/internal/api/handlers"
	"github.com/fritzgwapo0907/budgetmate-backend/internal/config"
	"github.com/fritzgwapo0907/budgetmate-backend/internal/metrics"
	"github.com/fritzgwapo0907/budgetmate-backend/internal/middleware"
	"github.com/fritzgwapo0907/budgetmate-backend/internal/services"
)

func NewRouter(cfg config.Config, log *slog.Logger, as *services.AccountService, bs *services.BudgetService) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.Recover, middleware.HTTPMetrics, middleware.RateLimit(cfg.RateRPS))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.CORSOrigin},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Origin", "Content-Type", "Accept"},
		AllowCredentials: true,
	}))

	// health & metrics
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) { _, _ = w.Write([]byte("ok")) })
	r.Handle("/metrics", metrics.Handler())

	ah := handlers.NewAccountsHandler(as, log)
	bh := handlers.NewBudgetHandler(bs, log)

	r.Get("/", bh.Overview)
	r.Get("/users", ah.List)
	r.Post("/add-user", ah.Add)
	r.Post("/check-user", ah.Check)
	r.Post("/add-transaction", bh.Add)
	r.Get("/transactions/{user_id}", bh.ListByAccount)
	r.Put("/update-transaction/{id}", bh.Update)
	r.Delete("/delete-transaction/{transaction_id}", bh.Delete)

	return r
}
