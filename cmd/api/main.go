package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"mca-underwriting/internal/analysis"
	"mca-underwriting/internal/config"
	"mca-underwriting/internal/database"
	"mca-underwriting/internal/handlers"
	custommw "mca-underwriting/internal/middleware"
	"mca-underwriting/internal/repositories"
	"mca-underwriting/internal/services"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	// .env is optional; real deployments use the environment directly
	if err := godotenv.Load(); err != nil {
		slog.Info("no .env file found, using environment variables")
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg := config.Load()

	db, err := database.Initialize(cfg)
	if err != nil {
		slog.Error("failed to initialize database", "error", err)
		os.Exit(1)
	}

	// Repositories
	userRepo := repositories.NewUserRepository(db)
	dealRepo := repositories.NewDealRepository(db)
	documentRepo := repositories.NewDocumentRepository(db)
	transactionRepo := repositories.NewTransactionRepository(db)
	metricsRepo := repositories.NewDealMetricsRepository(db)

	// Services
	metricsRecorder := services.NewPrometheusMetrics()
	passwordService := services.NewPasswordService()
	tokenService := services.NewTokenService(&cfg.JWT)
	authService := services.NewAuthService(userRepo, passwordService, tokenService, metricsRecorder, logger)
	dealService := services.NewDealService(dealRepo, documentRepo, transactionRepo, userRepo, metricsRecorder, logger)

	engine := analysis.NewEngine(cfg.Scoring)
	analysisService := services.NewAnalysisService(engine, dealRepo, transactionRepo, metricsRepo, metricsRecorder, logger)
	chatContextService := services.NewChatContextService()

	// Handlers
	authHandler := handlers.NewAuthHandler(authService)
	dealHandler := handlers.NewDealHandler(dealService)
	analysisHandler := handlers.NewAnalysisHandler(analysisService, dealService, chatContextService)
	exportHandler := handlers.NewExportHandler(analysisService, dealService)
	healthHandler := handlers.NewHealthCheckHandler(db)

	e := echo.New()
	e.HideBanner = true
	e.Validator = handlers.NewValidator()
	e.HTTPErrorHandler = custommw.CustomHTTPErrorHandler

	e.Use(custommw.RequestID())
	e.Use(custommw.PanicRecovery())
	e.Use(custommw.SecurityHeaders())
	e.Use(custommw.RateLimiterWithConfig(cfg.Server.RateLimitPerSecond, cfg.Server.RateLimitPerSecond*2))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete},
	}))

	e.GET("/health", healthHandler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := e.Group("/api/v1")

	auth := api.Group("/auth")
	auth.POST("/login", authHandler.Login)
	auth.GET("/profile", authHandler.GetProfile, custommw.RequireAuth(tokenService))

	deals := api.Group("/deals", custommw.RequireAuth(tokenService))
	deals.POST("", dealHandler.CreateDeal)
	deals.GET("", dealHandler.ListDeals)
	deals.GET("/:dealId", dealHandler.GetDeal)
	deals.PATCH("/:dealId/status", dealHandler.UpdateDealStatus)
	deals.POST("/:dealId/transactions", dealHandler.IngestTransactions)
	deals.POST("/:dealId/analysis", analysisHandler.AnalyzeDeal)
	deals.GET("/:dealId/scorecard", analysisHandler.GetScorecard)
	deals.GET("/:dealId/scorecard.csv", exportHandler.ExportScorecardCSV)
	deals.GET("/:dealId/context", analysisHandler.GetDealContext)

	// Graceful shutdown on SIGINT/SIGTERM
	go func() {
		addr := cfg.Server.Host + ":" + cfg.Server.Port
		slog.Info("starting server", "addr", addr, "env", cfg.Server.Environment)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			slog.Error("server stopped", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		slog.Error("forced shutdown", "error", err)
	}

	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}

	slog.Info("server stopped cleanly")
}
