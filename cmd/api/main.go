package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"finease-server/internal/config"
	"finease-server/internal/database"
	"finease-server/internal/handlers"
	custommw "finease-server/internal/middleware"
	"finease-server/internal/repositories"
	"finease-server/internal/services"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file found, using environment variables")
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := config.Load()

	db, err := database.Initialize(cfg)
	if err != nil {
		slog.Error("Failed to initialize database", "error", err)
		os.Exit(1)
	}

	// Repositories
	transactionRepo := repositories.NewTransactionRepository(db)

	// Services
	metrics := services.NewPrometheusMetrics()
	generator := services.NewTransactionGenerator()
	tokenService := services.NewTokenService(&cfg.JWT)
	transactionService := services.NewTransactionService(transactionRepo, generator, metrics)
	reportService := services.NewReportService(transactionRepo, metrics)

	// Handlers
	transactionHandler := handlers.NewTransactionHandler(transactionService)
	reportHandler := handlers.NewReportHandler(reportService)
	healthHandler := handlers.NewHealthCheckHandler(db)
	devHandler := handlers.NewDevHandler(cfg, tokenService, transactionService)

	e := echo.New()
	e.HideBanner = true
	e.Validator = handlers.NewValidator()
	e.HTTPErrorHandler = custommw.CustomHTTPErrorHandler

	// Global middleware
	e.Use(custommw.RequestID())
	e.Use(custommw.PanicRecovery())
	e.Use(custommw.SecurityHeaders())
	e.Use(custommw.RateLimiterWithConfig(
		cfg.Security.RateLimitPerSecond,
		cfg.Security.RateLimitBurst,
	))
	e.Use(echomw.RequestLoggerWithConfig(echomw.RequestLoggerConfig{
		LogStatus:  true,
		LogURI:     true,
		LogMethod:  true,
		LogLatency: true,
		LogValuesFunc: func(c echo.Context, v echomw.RequestLoggerValues) error {
			slog.Info("Request handled",
				"trace_id", custommw.GetTraceID(c),
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
				"latency", v.Latency.String(),
			)
			return nil
		},
	}))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.Server.CORSAllowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAuthorization},
	}))

	// Public endpoints
	e.GET("/health", healthHandler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	requireAuth := custommw.RequireAuth(tokenService, metrics)

	v1 := e.Group("/api/v1")

	transactions := v1.Group("/transactions", requireAuth)
	transactions.POST("", transactionHandler.CreateTransaction)
	transactions.GET("", transactionHandler.ListTransactions)
	transactions.GET("/:id", transactionHandler.GetTransaction)
	transactions.DELETE("/:id", transactionHandler.DeleteTransaction)

	reports := v1.Group("/reports", requireAuth)
	reports.GET("/overview", reportHandler.GetOverview)
	reports.GET("/monthly-expenses", reportHandler.GetMonthlyExpenses)
	reports.GET("", reportHandler.GetFilteredReport)

	v1.GET("/category-total", reportHandler.GetCategoryTotal, requireAuth)

	// Development-only helpers. Token minting is unauthenticated because its
	// whole point is to bootstrap a local identity.
	if cfg.IsDevelopment() {
		dev := v1.Group("/dev")
		dev.POST("/token", devHandler.MintToken)
		dev.POST("/generate-test-data", devHandler.GenerateTestData, requireAuth)
		slog.Info("Development endpoints enabled", "group", "/api/v1/dev")
	}

	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	// Graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		address := cfg.Server.Host + ":" + cfg.Server.Port
		slog.Info("Starting server", "address", address, "environment", cfg.Server.Environment)
		if err := e.Start(address); err != nil && err != http.ErrServerClosed {
			slog.Error("Server error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	slog.Info("Shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		slog.Error("Server shutdown error", "error", err)
	}

	if sqlDB, err := db.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			slog.Error("Failed to close database connection", "error", err)
		}
	}

	slog.Info("Server stopped gracefully")
}
