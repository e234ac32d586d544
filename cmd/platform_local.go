//go:build !gcloud

package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/KasumiMercury/primind-timetable/internal/config"
	"github.com/KasumiMercury/primind-timetable/internal/infra/notifier"
	"github.com/KasumiMercury/primind-timetable/internal/observability"
	"github.com/KasumiMercury/primind-timetable/internal/observability/logging"
)

func initTaskNotifier(_ context.Context, cfg *config.Config) (notifier.Named, func() error, error) {
	if !cfg.TaskQueue.DeliveryEnabled() {
		slog.Warn("PRIMIND_TASKS_URL not set, reminder task delivery disabled")

		return nil, nil, nil
	}

	tq := notifier.NewPrimindTasksClient(
		cfg.TaskQueue.PrimindTasksURL,
		cfg.TaskQueue.QueueName,
		cfg.TaskQueue.MaxRetries,
	)

	slog.Info("task queue initialized",
		slog.String("type", "primind_tasks"),
		slog.String("url", cfg.TaskQueue.PrimindTasksURL),
		slog.String("queue", cfg.TaskQueue.QueueName),
	)

	return notifier.NewTaskNotifier(tq, "primind_tasks"), tq.Close, nil
}

func initObservability(ctx context.Context, cfg *config.Config) (*observability.Resources, error) {
	serviceName := os.Getenv("SERVICE_NAME")
	if serviceName == "" {
		serviceName = "timetable"
	}

	env := logging.EnvDev
	if e := os.Getenv("ENV"); e != "" {
		env = logging.Environment(e)
	}

	return observability.Init(ctx, observability.Config{
		ServiceInfo: logging.ServiceInfo{
			Name:     serviceName,
			Version:  Version,
			Revision: "",
		},
		Environment:   env,
		GCPProjectID:  "",
		SamplingRate:  1.0,
		DefaultModule: logging.Module("timetable"),
		LogLevel:      cfg.LogLevel,
	})
}
