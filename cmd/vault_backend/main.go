package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/SscSPs/securities_vault/internal/adapters/gateway/memory"
	redisoracle "github.com/SscSPs/securities_vault/internal/adapters/oracle/redis"
	"github.com/SscSPs/securities_vault/internal/adapters/oracle/static"
	"github.com/SscSPs/securities_vault/internal/adapters/stream/kafka"
	"github.com/SscSPs/securities_vault/internal/core/ports"
	portsrepo "github.com/SscSPs/securities_vault/internal/core/ports/repositories"
	"github.com/SscSPs/securities_vault/internal/core/services"
	"github.com/SscSPs/securities_vault/internal/handlers"
	"github.com/SscSPs/securities_vault/internal/middleware"
	"github.com/SscSPs/securities_vault/internal/platform/config"
	"github.com/SscSPs/securities_vault/internal/platform/metrics"
	"github.com/SscSPs/securities_vault/internal/platform/redis"
	"github.com/SscSPs/securities_vault/internal/repositories/database/pgsql"
	"github.com/SscSPs/securities_vault/pkg/database"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

// @title Securities Vault API
// @version 1.0
// @description Role-gated custodial vault and compliance-restricted security token.

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the JWT.

// @security BearerAuth
func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	m := metrics.New(prometheus.DefaultRegisterer)

	// --- Audit sinks ---
	var sinks services.FanoutWriter
	var repos portsrepo.RepositoryProvider
	if cfg.DatabaseURL != "" {
		if cfg.RunMigrations {
			version, err := database.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath)
			if err != nil {
				logger.Error("Failed to apply migrations", slog.String("error", err.Error()))
				os.Exit(1)
			}
			logger.Info("Database migrations applied", slog.Uint64("version", uint64(version)))
		}

		dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, cfg.EnableDBCheck)
		if err != nil {
			logger.Error("Failed to initialize database pool", slog.String("error", err.Error()))
			os.Exit(1)
		}
		defer database.ClosePgxPool(dbPool)

		repos = pgsql.NewRepositoryProvider(dbPool)
		sinks = append(sinks, repos.AuditRepo)
	}

	if len(cfg.KafkaBrokers) > 0 {
		publisher, err := kafka.NewAuditPublisher(cfg.KafkaBrokers, cfg.AuditTopic)
		if err != nil {
			logger.Error("Failed to create audit publisher", slog.String("error", err.Error()))
			os.Exit(1)
		}
		defer publisher.Close()
		if err := publisher.Ping(ctx); err != nil {
			logger.Warn("Kafka brokers not reachable yet", slog.String("error", err.Error()))
		}
		sinks = append(sinks, publisher)
	}

	// --- Price oracle ---
	var oracle ports.PriceOracle = static.PriceOracle(cfg.StaticPrices)
	redisClient, err := redis.New(ctx, cfg.RedisURL)
	if err != nil {
		logger.Error("Failed to connect to Redis", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if redisClient != nil {
		defer redisClient.Close()
		oracle = redisoracle.NewPriceOracle(redisClient.Client, cfg.PriceKeyPrefix)
		logger.Info("Using Redis price oracle")
	}

	gateway := memory.NewTokenGateway(cfg.CustodyAddress)

	container, auditLog, err := services.NewServiceContainer(ctx, cfg, services.Dependencies{
		Gateway: gateway,
		Oracle:  oracle,
		Metrics: m,
		Repos:   repos,
	})
	if err != nil {
		logger.Error("Failed to initialize services", slog.String("error", err.Error()))
		os.Exit(1)
	}

	relayDone := make(chan error, 1)
	if len(sinks) > 0 {
		relay := services.NewAuditRelay(auditLog, sinks,
			services.WithRelayInterval(cfg.AuditRelayInterval),
			services.WithRelayLogger(logger),
			services.WithRelayMetrics(m),
		)
		go func() { relayDone <- relay.Run(ctx) }()
	} else {
		logger.Warn("No audit sink configured; audit events stay in memory")
		relayDone <- nil
	}

	// --- HTTP ---
	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSAllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	rateLimiter, err := middleware.NewRateLimiter(cfg.RateLimit)
	if err != nil {
		logger.Error("Failed to create rate limiter", slog.String("error", err.Error()))
		os.Exit(1)
	}
	r.Use(middleware.RateLimit(rateLimiter))

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, cfg, container, prometheus.DefaultGatherer)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("Server starting", slog.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Server failed to run", slog.String("error", err.Error()))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server shutdown failed", slog.String("error", err.Error()))
	}

	if err := <-relayDone; err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("Audit relay stopped with pending events", slog.String("error", err.Error()))
	}
	logger.Info("Server exited")
}
