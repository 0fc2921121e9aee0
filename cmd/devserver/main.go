package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	httpAdapter "github.com/iho/fintrack/internal/adapter/http"
	"github.com/iho/fintrack/internal/adapter/http/handler"
	"github.com/iho/fintrack/internal/adapter/repository/memory"
	"github.com/iho/fintrack/internal/infrastructure/auth"
	"github.com/iho/fintrack/internal/infrastructure/config"
)

func main() {
	// Setup logger
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	// Setup log level
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	// Initialize repositories. Everything lives in memory: this server
	// exists so the client can run end to end, not as a durable backend.
	users := memory.NewUserRepository()
	accounts := memory.NewAccountRepository()
	transactions := memory.NewTransactionRepository()
	categories := memory.NewCategoryRepository()
	budgets := memory.NewBudgetRepository()
	idGen := memory.NewULIDGenerator()

	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.AccessTokenTTL, cfg.RefreshTokenTTL)

	// Initialize handlers
	router := httpAdapter.NewRouter(httpAdapter.RouterConfig{
		AuthHandler:        handler.NewAuthHandler(users, tokens, idGen),
		AccountHandler:     handler.NewAccountHandler(accounts, transactions, idGen),
		TransactionHandler: handler.NewTransactionHandler(transactions, accounts, categories, idGen),
		CategoryHandler:    handler.NewCategoryHandler(categories, idGen),
		BudgetHandler:      handler.NewBudgetHandler(budgets, categories, idGen),
		ReportHandler:      handler.NewReportHandler(transactions, accounts, categories, cfg.TrendMonths, cfg.RecentLimit),
		Tokens:             tokens,
		Logger:             log.Logger,
	})

	// Create server
	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler:      router,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("port", cfg.HTTPPort).Msg("starting server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server...")

	// Graceful shutdown
	ctx, cancel := context.WithTimeout(context.Background(), cfg.HTTPShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server stopped")
}
