package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"github.com/clipstream-dev/clipstream/internal/api/handler"
	"github.com/clipstream-dev/clipstream/internal/api/middleware"
	"github.com/clipstream-dev/clipstream/internal/config"
	"github.com/clipstream-dev/clipstream/internal/infrastructure/cache"
	"github.com/clipstream-dev/clipstream/internal/infrastructure/postgres"
	"github.com/clipstream-dev/clipstream/internal/infrastructure/queue"
	"github.com/clipstream-dev/clipstream/internal/infrastructure/storage"
	"github.com/clipstream-dev/clipstream/internal/usecase"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Initialize infrastructure clients
	pgClient, err := postgres.NewClient(ctx, postgres.DefaultClientConfig(cfg.Database.DSN()))
	if err != nil {
		return fmt.Errorf("failed to connect to PostgreSQL: %w", err)
	}
	defer pgClient.Close()
	logger.Info("connected to PostgreSQL")

	storageClient, err := storage.NewClient(ctx, storage.ClientConfig{
		Endpoint:  cfg.MinIO.Endpoint,
		AccessKey: cfg.MinIO.AccessKey,
		SecretKey: cfg.MinIO.SecretKey,
		Bucket:    cfg.MinIO.Bucket,
		UseSSL:    cfg.MinIO.UseSSL,
	})
	if err != nil {
		return fmt.Errorf("failed to connect to MinIO: %w", err)
	}
	logger.Info("connected to MinIO")

	queueClient, err := queue.NewClient(ctx, queue.DefaultClientConfig(cfg.RabbitMQ.URL()))
	if err != nil {
		return fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}
	defer queueClient.Close()
	logger.Info("connected to RabbitMQ")

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer redisClient.Close()

	if err := redisClient.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("failed to connect to Redis: %w", err)
	}
	logger.Info("connected to Redis")

	// Repositories
	pool := pgClient.Pool()
	videoRepo := postgres.NewVideoRepository(pool)
	accountRepo := postgres.NewAccountRepository(pool)
	reactionRepo := postgres.NewReactionRepository(pool)
	subscriptionRepo := postgres.NewSubscriptionRepository(pool)
	commentRepo := postgres.NewCommentRepository(pool)
	videoCache := cache.NewRedisVideoCache(redisClient)

	// Services
	notificationSvc := usecase.NewNotificationService(accountRepo, subscriptionRepo, queueClient)
	videoSvc := usecase.NewCachedVideoService(
		usecase.NewVideoService(videoRepo, commentRepo, accountRepo, storageClient, queueClient, notificationSvc),
		videoCache,
		usecase.CachedVideoServiceConfig{CacheTTL: cfg.Cache.VideoTTL},
	)
	reactionSvc := usecase.NewReactionService(videoRepo, reactionRepo, videoCache)
	subscriptionSvc := usecase.NewSubscriptionService(accountRepo, subscriptionRepo)
	commentSvc := usecase.NewCommentService(videoRepo, accountRepo, commentRepo)
	accountSvc := usecase.NewAccountService(accountRepo)

	// Handlers
	videoHandler := handler.NewVideoHandler(videoSvc, reactionSvc, commentSvc, cfg.Server.MaxUploadSize)
	accountHandler := handler.NewAccountHandler(accountSvc, subscriptionSvc)

	r := setupRouter(logger, videoHandler, accountHandler)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("starting server", slog.Int("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("server error: %w", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-quit:
		logger.Info("shutting down server", slog.String("signal", sig.String()))
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown error: %w", err)
	}

	logger.Info("server stopped")
	return nil
}

func setupRouter(
	logger *slog.Logger,
	videoHandler *handler.VideoHandler,
	accountHandler *handler.AccountHandler,
) *chi.Mux {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recoverer(logger))

	r.Get("/health", handler.Health)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/v1", func(r chi.Router) {
		r.Use(middleware.Identity)

		r.Route("/videos", func(r chi.Router) {
			r.Post("/", videoHandler.Upload)
			r.Get("/", videoHandler.List)
			r.Get("/{id}", videoHandler.Get)
			r.Get("/{id}/metadata", videoHandler.Metadata)
			r.Delete("/{id}", videoHandler.Delete)
			r.Post("/{id}/like", videoHandler.Like)
			r.Post("/{id}/dislike", videoHandler.Dislike)
			r.Post("/{id}/comments", videoHandler.AddComment)
			r.Get("/{id}/comments", videoHandler.ListComments)
		})

		r.Route("/accounts", func(r chi.Router) {
			r.Post("/", accountHandler.Register)
			r.Get("/me/history", accountHandler.WatchHistory)
			r.Get("/me/notifications", accountHandler.Notifications)
			r.Get("/{id}", accountHandler.Get)
			r.Post("/{id}/subscription", accountHandler.ToggleSubscription)
			r.Get("/{id}/subscriptions", accountHandler.Subscriptions)
			r.Get("/{id}/subscribers", accountHandler.Subscribers)
		})
	})

	return r
}
