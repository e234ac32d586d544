package main

import (
	"context"
	"crypto/tls"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/extra/redisotel/v9"
	"github.com/redis/go-redis/v9"

	"github.com/KasumiMercury/primind-timetable/internal/config"
	"github.com/KasumiMercury/primind-timetable/internal/handler"
	"github.com/KasumiMercury/primind-timetable/internal/health"
	"github.com/KasumiMercury/primind-timetable/internal/infra/notifier"
	"github.com/KasumiMercury/primind-timetable/internal/infra/tickrecorder"
	"github.com/KasumiMercury/primind-timetable/internal/observability/logging"
	"github.com/KasumiMercury/primind-timetable/internal/observability/metrics"
	"github.com/KasumiMercury/primind-timetable/internal/observability/middleware"
	"github.com/KasumiMercury/primind-timetable/internal/service/reminder"
	"github.com/KasumiMercury/primind-timetable/internal/service/slot"
	"github.com/KasumiMercury/primind-timetable/internal/service/urgency"
	"github.com/KasumiMercury/primind-timetable/internal/session"
)

// Version is set via ldflags at build time
var Version = "dev"

func main() {
	os.Exit(run())
}

func run() int {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", slog.String("error", err.Error()))
		return 1
	}

	obs, err := initObservability(ctx, cfg)
	if err != nil {
		slog.Error("failed to initialize observability", slog.String("error", err.Error()))
		return 1
	}
	defer func() {
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()
		if err := obs.Shutdown(shutdownCtx); err != nil {
			slog.Warn("observability shutdown error", slog.String("error", err.Error()))
		}
	}()

	slog.SetDefault(obs.Logger())

	if err := config.ValidateForRun(cfg); err != nil {
		slog.Error("configuration validation error", slog.String("error", err.Error()))
		return 1
	}

	httpMetrics, err := metrics.NewHTTPMetrics()
	if err != nil {
		slog.Error("failed to initialize HTTP metrics", slog.String("error", err.Error()))
		return 1
	}

	reminderMetrics, err := metrics.NewReminderMetrics()
	if err != nil {
		slog.Error("failed to initialize reminder metrics", slog.String("error", err.Error()))
		return 1
	}

	// Tick recorder (InfluxDB for local, BigQuery for gcloud)
	tickRecorder, err := tickrecorder.NewRecorder(ctx, tickrecorder.LoadConfig())
	if err != nil {
		slog.Error("failed to initialize tick recorder", slog.String("error", err.Error()))
		return 1
	}
	defer func() {
		if err := tickRecorder.Close(); err != nil {
			slog.Warn("failed to close tick recorder", slog.String("error", err.Error()))
		}
	}()

	sinks := []notifier.Named{notifier.NewLogNotifier(slog.Default())}

	var (
		redisClient  *redis.Client
		recentSource handler.RecentReminders
	)
	if cfg.Redis.Enabled {
		redisClient, err = initRedis(ctx, cfg.Redis)
		if err != nil {
			slog.Error("failed to initialize redis",
				slog.String("event", "redis.connect.fail"),
				slog.String("error", err.Error()),
			)
			return 1
		}
		defer func() {
			if err := redisClient.Close(); err != nil {
				slog.Warn("failed to close redis client", slog.String("error", err.Error()))
			}
		}()

		redisNotifier := notifier.NewRedisNotifier(redisClient, cfg.Redis.Channel)
		sinks = append(sinks, redisNotifier)
		recentSource = redisNotifier
	}

	taskNotifier, cleanup, err := initTaskNotifier(ctx, cfg)
	if err != nil {
		slog.Error("failed to initialize task queue", slog.String("error", err.Error()))
		return 1
	}
	if cleanup != nil {
		defer func() {
			if err := cleanup(); err != nil {
				slog.Error("task queue cleanup error", slog.String("error", err.Error()))
			}
		}()
	}
	if taskNotifier != nil {
		sinks = append(sinks, taskNotifier)
	}

	reminderNotifier := notifier.NewMulti(reminderMetrics, sinks...)

	resolver := slot.NewResolver()
	sess := session.New(resolver, urgency.NewCalculator())

	poller := reminder.NewPoller(sess, resolver, reminderNotifier, tickRecorder, reminderMetrics, reminder.Config{
		Interval: cfg.Reminder.Interval,
		Location: cfg.Location,
	})

	if cfg.Reminder.AutoStart {
		if err := poller.Start(ctx); err != nil {
			slog.Error("failed to start reminder poller", slog.String("error", err.Error()))
			return 1
		}
	}
	defer func() {
		if err := poller.Stop(); err != nil && !errors.Is(err, reminder.ErrNotRunning) {
			slog.Warn("failed to stop reminder poller", slog.String("error", err.Error()))
		}
	}()

	r := gin.New()
	r.Use(middleware.Gin(middleware.GinConfig{
		SkipPaths:   []string{"/health", "/health/live", "/health/ready"},
		Module:      logging.Module("timetable"),
		TracerName:  "github.com/KasumiMercury/primind-timetable/internal/observability/middleware",
		HTTPMetrics: httpMetrics,
	}))
	r.Use(middleware.PanicRecoveryGin())

	healthChecker := health.NewChecker(redisClient, poller, Version)
	r.GET("/health/live", healthChecker.LiveHandler())
	r.GET("/health/ready", healthChecker.ReadyHandler())
	r.GET("/health", healthChecker.ReadyHandler())

	v1 := r.Group("/api/v1")
	handler.NewTimetableHandler(sess, cfg.Location, nil).Register(v1)
	handler.NewHomeworkHandler(sess, cfg.Location, nil).Register(v1)
	handler.NewReminderHandler(poller, recentSource).Register(v1)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	serverErr := make(chan error, 1)
	go func() {
		slog.Info("starting server",
			slog.String("port", cfg.Port),
			slog.String("timezone", cfg.Location.String()),
			slog.Duration("reminder_interval", cfg.Reminder.Interval),
			slog.Bool("reminder_autostart", cfg.Reminder.AutoStart),
			slog.Any("notifiers", reminderNotifier.Names()),
		)
		serverErr <- srv.ListenAndServe()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		slog.Info("shutdown signal received", slog.String("signal", sig.String()))
		cancel()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("failed to shutdown server", slog.String("error", err.Error()))
			return 1
		}

		slog.Info("server exited properly")
		return 0

	case err := <-serverErr:
		if errors.Is(err, http.ErrServerClosed) {
			return 0
		}
		slog.Error("server exited with error", slog.String("error", err.Error()))
		return 1
	}
}

func initRedis(ctx context.Context, cfg *config.RedisConfig) (*redis.Client, error) {
	opts := &redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	}
	if cfg.TLS {
		opts.TLSConfig = &tls.Config{MinVersion: tls.VersionTLS12}
	}

	client := redis.NewClient(opts)

	if err := redisotel.InstrumentTracing(client); err != nil {
		_ = client.Close()
		return nil, err
	}

	if err := redisotel.InstrumentMetrics(client); err != nil {
		_ = client.Close()
		return nil, err
	}

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}

	slog.Info("redis connected",
		slog.String("addr", cfg.Addr),
		slog.String("channel", cfg.Channel),
	)

	return client, nil
}
