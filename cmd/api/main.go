package main

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"

	"splitledger/internal/config"
	"splitledger/internal/expense"
	expensesplit "splitledger/internal/expense/split"
	"splitledger/internal/group"
	"splitledger/internal/ledger"
	"splitledger/internal/user"
	"splitledger/pkg/logging"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		slog.Info("no .env file found, using environment variables")
	}

	cfg := config.Load()
	logging.Setup(cfg.LogLevel)

	// One ledger per process, passed to everything that mutates or reads
	// balance sheets.
	bookkeeper := ledger.New()

	// Split Strategy Factory (Factory Pattern)
	splitFactory := expensesplit.NewFactory()

	// User feature
	userRepo := user.NewRepository()
	userService := user.NewService(userRepo, bookkeeper)
	userHandler := user.NewHandler(userService)

	// Expense feature (with split factory and ledger injected)
	expenseRepo := expense.NewRepository()
	expenseService := expense.NewService(expenseRepo, splitFactory, bookkeeper)
	expenseHandler := expense.NewHandler(expenseService)

	// Group feature
	groupRepo := group.NewRepository()
	groupService := group.NewService(groupRepo, userService, expenseService)
	groupHandler := group.NewHandler(groupService)

	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	// API routes
	r.Route("/api/v1", func(r chi.Router) {
		r.Mount("/users", userHandler.Routes())
		r.Mount("/groups", groupHandler.Routes())
		r.Mount("/expenses", expenseHandler.Routes())
	})

	slog.Info("server starting", "port", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, r); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
