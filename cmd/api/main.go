// AngelaMos | 2026
// main.go

package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/greengarden-id/backend/internal/admin"
	"github.com/greengarden-id/backend/internal/auth"
	"github.com/greengarden-id/backend/internal/blog"
	"github.com/greengarden-id/backend/internal/cart"
	"github.com/greengarden-id/backend/internal/catalog"
	"github.com/greengarden-id/backend/internal/config"
	"github.com/greengarden-id/backend/internal/core"
	"github.com/greengarden-id/backend/internal/health"
	"github.com/greengarden-id/backend/internal/janitor"
	"github.com/greengarden-id/backend/internal/middleware"
	"github.com/greengarden-id/backend/internal/order"
	"github.com/greengarden-id/backend/internal/server"
	"github.com/greengarden-id/backend/internal/user"
)

const (
	drainDelay = 5 * time.Second
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	if err := run(*configPath); err != nil {
		slog.Error("application error", "error", err)
		os.Exit(1)
	}
}

//nolint:funlen // bootstrap code is inherently verbose
func run(configPath string) error {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGINT,
		syscall.SIGTERM,
	)
	defer stop()

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	logger := setupLogger(cfg.Log)
	slog.SetDefault(logger)

	logger.Info("starting application",
		"name", cfg.App.Name,
		"version", cfg.App.Version,
		"environment", cfg.App.Environment,
	)

	var telemetry *core.Telemetry
	if cfg.Otel.Enabled {
		tel, telErr := core.NewTelemetry(ctx, cfg.Otel, cfg.App)
		if telErr != nil {
			logger.Warn("failed to initialize telemetry", "error", telErr)
		} else {
			telemetry = tel
			logger.Info("OpenTelemetry tracer initialized",
				"endpoint", cfg.Otel.Endpoint,
			)
		}
	}

	db, err := core.NewDatabase(ctx, cfg.Database)
	if err != nil {
		return err
	}
	logger.Info("database connected",
		"max_open_conns", cfg.Database.MaxOpenConns,
		"max_idle_conns", cfg.Database.MaxIdleConns,
	)

	redis, err := core.NewRedis(ctx, cfg.Redis)
	if err != nil {
		return err
	}
	logger.Info("redis connected",
		"pool_size", cfg.Redis.PoolSize,
	)

	tokenManager, err := auth.NewTokenManager(cfg.JWT)
	if err != nil {
		return err
	}
	logger.Info("token manager initialized",
		"algorithm", "HS256",
		"issuer", cfg.JWT.Issuer,
		"ttl", tokenManager.TokenTTL(),
	)

	userRepo := user.NewRepository(db.DB)
	userSvc := user.NewService(userRepo)
	userHandler := user.NewHandler(userSvc)

	denylist := auth.NewRedisDenylist(redis.Client)
	authSvc := auth.NewService(tokenManager, userSvc, denylist)
	cookies := auth.NewCookieWriter(cfg.Cookie, cfg.JWT, !cfg.IsDevelopment())
	authHandler := auth.NewHandler(authSvc, cookies)

	catalogRepo := catalog.NewRepository(db.DB)
	catalogSvc := catalog.NewService(catalogRepo)
	catalogHandler := catalog.NewHandler(catalogSvc)

	blogRepo := blog.NewRepository(db.DB)
	blogSvc := blog.NewService(blogRepo)
	blogHandler := blog.NewHandler(blogSvc)

	cartRepo := cart.NewRepository(db.DB)
	cartSvc := cart.NewService(cartRepo, catalogSvc)
	cartHandler := cart.NewHandler(cartSvc)

	orderRepo := order.NewRepository(db.DB)
	orderSvc := order.NewService(db.DB, orderRepo)
	orderHandler := order.NewHandler(orderSvc)

	healthHandler := health.NewHandler()
	healthHandler.Register("database", db)
	healthHandler.Register("redis", redis)

	adminHandler := admin.NewHandler(admin.HandlerConfig{
		DBStats:    db.Stats,
		RedisStats: redis.PoolStats,
		DBPing:     db.Ping,
		RedisPing:  redis.Ping,
		Store:      admin.NewStoreStats(userSvc, catalogSvc, orderSvc),
	})

	cleaner := janitor.New(cfg.Janitor, userSvc, cartSvc, logger)
	if cfg.Janitor.Enabled {
		if err := cleaner.Start(); err != nil {
			return err
		}
		defer cleaner.Stop()
	}

	srv := server.New(server.Config{
		ServerConfig:  cfg.Server,
		HealthHandler: healthHandler,
		Logger:        logger,
	})

	router := srv.Router()

	router.Use(middleware.RequestID)
	router.Use(middleware.Logger(logger))
	router.Use(
		middleware.NewRateLimiter(redis.Client, middleware.RateLimitConfig{
			Limit: middleware.PerMinute(
				cfg.RateLimit.Requests,
				cfg.RateLimit.Burst,
			),
			FailOpen: true,
		}).Handler,
	)
	router.Use(middleware.SecurityHeaders(cfg.IsProduction()))
	router.Use(middleware.CORS(cfg.CORS))
	router.Use(middleware.RouteGuard(authSvc, cookies.Name()))

	healthHandler.RegisterRoutes(router)

	authenticator := middleware.Authenticator(authSvc, cookies.Name())
	adminOnly := middleware.RequireAdmin

	loginLimiter := middleware.NewRateLimiter(
		redis.Client,
		middleware.RateLimitConfig{
			Limit: middleware.PerMinute(
				cfg.RateLimit.AuthRequests,
				cfg.RateLimit.AuthBurst,
			),
			KeyFunc:  middleware.KeyByIPAndEndpoint,
			FailOpen: true,
		},
	).Handler

	router.Route("/v1", func(r chi.Router) {
		authHandler.RegisterRoutes(r, authenticator, loginLimiter)

		catalogHandler.RegisterRoutes(r)
		blogHandler.RegisterRoutes(r)

		cartHandler.RegisterRoutes(r, authenticator)
		orderHandler.RegisterRoutes(r, authenticator)
		userHandler.RegisterRoutes(r, authenticator)

		userHandler.RegisterAdminRoutes(r, authenticator, adminOnly)
		catalogHandler.RegisterAdminRoutes(r, authenticator, adminOnly)
		blogHandler.RegisterAdminRoutes(r, authenticator, adminOnly)
		orderHandler.RegisterAdminRoutes(r, authenticator, adminOnly)
		adminHandler.RegisterRoutes(r, authenticator, adminOnly)
	})

	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.Start()
	}()

	select {
	case err := <-errChan:
		return err
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		cfg.Server.ShutdownTimeout+drainDelay+5*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx, drainDelay); err != nil {
		logger.Error("server shutdown error", "error", err)
	}

	if telemetry != nil {
		if err := telemetry.Shutdown(shutdownCtx); err != nil {
			logger.Error("telemetry shutdown error", "error", err)
		}
	}

	if err := redis.Close(); err != nil {
		logger.Error("redis close error", "error", err)
	}

	if err := db.Close(); err != nil {
		logger.Error("database close error", "error", err)
	}

	logger.Info("application stopped")
	return nil
}

func setupLogger(cfg config.LogConfig) *slog.Logger {
	var handler slog.Handler

	level := slog.LevelInfo
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	opts := &slog.HandlerOptions{Level: level}

	if cfg.Format == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	return slog.New(handler)
}
