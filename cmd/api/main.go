package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"gigboard/internal/app"
	"gigboard/internal/config"
	"gigboard/internal/database"
	"gigboard/internal/domain/session"
	apphttp "gigboard/internal/http"
	"gigboard/internal/http/handlers"
	"gigboard/internal/http/middleware"
	"gigboard/internal/http/view"
	"gigboard/internal/observability"
	"gigboard/internal/repository/postgres"
	"gigboard/internal/security"
	appsession "gigboard/internal/session"
)

func main() {
	cfg := config.Load()
	logger := observability.NewLogger(cfg.LogLevel, cfg.LogFormat)

	db, err := database.NewPostgres(database.PostgresConfig{
		DSN:             cfg.PostgresDSN,
		MaxOpenConns:    cfg.DBMaxOpenConns,
		MaxIdleConns:    cfg.DBMaxIdleConns,
		ConnMaxIdle:     cfg.DBConnMaxIdle,
		ConnMaxLifetime: cfg.DBConnMaxLife,
	}, logger)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	if err := database.Migrate(context.Background(), db); err != nil {
		log.Fatal(err)
	}

	// Redis is optional: without it, sessions and rate limiting live in
	// process memory, which is fine for a single instance.
	var sessionStore session.Store
	var limiter middleware.Limiter
	if cfg.RedisAddr != "" {
		client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		sessionStore = appsession.NewRedisStore(client)
		limiter = middleware.NewRedisLimiter(client)
		logger.Info("using redis", "addr", cfg.RedisAddr)
	} else {
		sessionStore = appsession.NewMemoryStore()
		limiter = middleware.NewMemoryLimiter()
		logger.Info("redis not configured, using in-memory sessions and limiter")
	}

	userRepo := postgres.NewUserRepository(db)
	gigRepo := postgres.NewGigRepository(db)
	applicationRepo := postgres.NewApplicationRepository(db)

	hasher := security.NewPasswordHasher(cfg.BcryptCost)
	sessions := appsession.NewManager(sessionStore, cfg.SessionTTL, cfg.SessionCookie, cfg.CookieSecure)

	authService := app.NewAuthService(userRepo, hasher, logger)
	gigService := app.NewGigService(gigRepo)
	applicationService := app.NewApplicationService(applicationRepo, gigRepo)

	renderer, err := view.NewRenderer()
	if err != nil {
		log.Fatal(err)
	}
	base := handlers.Base{View: renderer, Sessions: sessions}

	router := apphttp.NewRouter(apphttp.RouterDependencies{
		AuthHandler:        handlers.NewAuthHandler(base, authService, limiter),
		GigHandler:         handlers.NewGigHandler(base, gigService),
		ApplicationHandler: handlers.NewApplicationHandler(base, applicationService, limiter),
		PagesHandler:       handlers.NewPagesHandler(base),
		SessionMiddleware:  middleware.NewSessionMiddleware(sessions, userRepo),
		Logger:             logger,
		RequestTimeout:     cfg.RequestTimeout,
	})

	server := &http.Server{
		Addr:         ":" + cfg.HTTPPort,
		Handler:      router,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server started on :" + cfg.HTTPPort)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Fatal(err)
	}
}
