package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fritzgwapo0907/budgetmate-backend/internal/api"
	"github.com/fritzgwapo0907/budgetmate-backend/internal/config"
	"github.com/fritzgwapo0907/budgetmate-backend/internal/db"
	"github.com/fritzgwapo0907/budgetmate-backend/internal/logger"
	"github.com/fritzgwapo0907/budgetmate-backend/internal/metrics"
	"github.com/fritzgwapo0907/budgetmate-backend/internal/repository/postgres"
	"github.com/fritzgwapo0907/budgetmate-backend/internal/services"
)

func main() {
	cfg := config.Load()
	log := logger.New(cfg.Env)
	slog.SetDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := db.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Error("db connect", "err", err)
		os.Exit(1)
	}
	defer pool.Close()

	if os.Getenv("APP_MIGRATE") == "true" {
		if err := db.RunMigrations(ctx, pool); err != nil {
			log.Error("migrations", "err", err)
			os.Exit(1)
		}
	}

	repos := postgres.NewRepositories(pool)
	accountSvc := services.NewAccountService(repos.Accounts)
	budgetSvc := services.NewBudgetService(repos.Budget, repos.Accounts)

	metrics.Init()
	r := api.NewRouter(cfg, log, accountSvc, budgetSvc)

	srv := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Info("server starting", "port", cfg.HTTPPort, "cors_origin", cfg.CORSOrigin)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server", "err", err)
		}
	}()

	<-ctx.Done()
	log.Info("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(shutdownCtx)
}
