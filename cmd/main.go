package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/debugg-er/zootube-api-sub000/config"
	"github.com/debugg-er/zootube-api-sub000/db"
	authhandler "github.com/debugg-er/zootube-api-sub000/internal/auth/handler"
	authpg "github.com/debugg-er/zootube-api-sub000/internal/auth/repository/postgres"
	authredis "github.com/debugg-er/zootube-api-sub000/internal/auth/repository/redis"
	authservice "github.com/debugg-er/zootube-api-sub000/internal/auth/service"
	"github.com/debugg-er/zootube-api-sub000/internal/events"
	"github.com/debugg-er/zootube-api-sub000/internal/logger"
	"github.com/debugg-er/zootube-api-sub000/internal/metrics"
	"github.com/debugg-er/zootube-api-sub000/internal/ratelimit"
	"github.com/debugg-er/zootube-api-sub000/internal/response"
	videohandler "github.com/debugg-er/zootube-api-sub000/internal/video/handler"
	videopg "github.com/debugg-er/zootube-api-sub000/internal/video/repository/postgres"
	videoredis "github.com/debugg-er/zootube-api-sub000/internal/video/repository/redis"
	videoservice "github.com/debugg-er/zootube-api-sub000/internal/video/service"
	"github.com/debugg-er/zootube-api-sub000/pkg/constant"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

const (
	startupTimeout  = 10 * time.Second
	shutdownTimeout = 15 * time.Second
)

func main() {
	cfg := config.Load()
	log := logger.New(cfg.LogLevel, cfg.LogFormat)

	if cfg.RunMigrations {
		if err := db.Migrate(cfg.DBURL); err != nil {
			log.WithError(err).Fatal("migrations failed")
		}
	}

	startCtx, cancel := context.WithTimeout(context.Background(), startupTimeout)
	defer cancel()

	dbPool, err := db.NewPostgresPool(startCtx, cfg.DBURL)
	if err != nil {
		log.WithError(err).Fatal("postgres unavailable")
	}
	redisClient, err := db.NewRedisClient(startCtx, cfg.RedisAddr,
		db.WithRedisPassword(cfg.RedisPassword),
		db.WithRedisDB(cfg.RedisDB),
		db.WithRedisPoolSize(cfg.RedisPoolSize),
	)
	if err != nil {
		log.WithError(err).Fatal("redis unavailable")
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	recorder := metrics.NewRecorder(registry)

	var eventWriter events.Writer = events.NoopWriter{}
	if cfg.KafkaBootstrap != "" {
		eventWriter = events.NewKafkaWriter(cfg.KafkaBootstrap, cfg.KafkaEventTopic)
	}

	limiter := ratelimit.NewLimiter(cfg.AuthRateLimitRPS, cfg.AuthRateLimitBurst, time.Minute)
	defer limiter.Stop()

	// auth
	authRepo := authpg.NewPostgresRepository(dbPool)
	tokenService := authservice.NewTokenService(cfg.AccessTokenSecret, cfg.AccessExpiryMin)
	revocationService := authservice.NewRevocationService(authredis.NewRevocationStore(redisClient), tokenService, recorder, log)
	sessionService := authservice.NewSessionService(authRepo, tokenService, revocationService, eventWriter, log)
	userService := authservice.NewUserService(authRepo, sessionService, log)
	guard := authhandler.NewGuard(tokenService, revocationService, recorder, log)

	// videos
	videoRepo := videopg.NewPostgresRepository(dbPool)
	videoService := videoservice.NewVideoService(videoRepo, videoRepo, videoRepo, videoservice.VideoConfig{
		HotWindowDays:    cfg.HotWindowDays,
		MediaServiceURL:  cfg.MediaServiceURL,
		StaticServiceURL: cfg.StaticServiceURL,
	}, log)
	analyticsService := videoservice.NewAnalyticsService(videoRepo, videoRepo, videoRepo)
	viewRecorder := videoservice.NewViewRecorder(videoredis.NewViewMarkerStore(redisClient), videoRepo, eventWriter, recorder,
		time.Duration(cfg.ViewDebounceSeconds)*time.Second, log)

	app := fiber.New(fiber.Config{
		AppName:      "zootube-api",
		ErrorHandler: response.ErrorHandler(log, cfg.IsDevelopment()),
	})
	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{ContextKey: constant.LocalsRequestID}))
	app.Use(logger.Middleware(log))
	app.Use(recorder.Middleware())

	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})
	app.Get("/metrics", metrics.Handler(registry))

	authhandler.RegisterRoutes(app, authhandler.NewAuthHandler(userService, sessionService), guard, ratelimit.Middleware(limiter, recorder))
	videohandler.RegisterRoutes(app, videohandler.NewVideoHandler(videoService, analyticsService, viewRecorder), guard.RequireAuth, guard.OptionalAuth)

	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.WithError(err).Fatal("server stopped")
		}
	}()
	log.WithField("port", cfg.Port).Info("server started")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down")
	if err := app.ShutdownWithTimeout(shutdownTimeout); err != nil {
		log.WithError(err).Error("server shutdown")
	}
	viewRecorder.Wait()
	if err := eventWriter.Close(); err != nil {
		log.WithError(err).Error("close event writer")
	}
	if err := redisClient.Close(); err != nil {
		log.WithError(err).Error("close redis")
	}
	dbPool.Close()
}
