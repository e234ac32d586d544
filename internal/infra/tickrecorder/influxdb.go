//go:build !gcloud

package tickrecorder

import (
	"context"
	"log/slog"

	influxdb2 "github.com/influxdata/influxdb-client-go/v2"
	"github.com/influxdata/influxdb-client-go/v2/api"
	"github.com/influxdata/influxdb-client-go/v2/api/write"

	"github.com/KasumiMercury/primind-timetable/internal/domain"
)

const tickMeasurement = "reminder_tick"

type influxDBRecorder struct {
	client   influxdb2.Client
	writeAPI api.WriteAPIBlocking
}

func NewRecorder(ctx context.Context, cfg *Config) (domain.TickRecorder, error) {
	if cfg.Disabled {
		slog.InfoContext(ctx, "reminder tick recording disabled")
		return NewNoopRecorder(), nil
	}

	if cfg.InfluxDBToken == "" || cfg.InfluxDBOrg == "" {
		slog.WarnContext(ctx, "InfluxDB token or org not configured, reminder tick recording disabled",
			slog.String("url", cfg.InfluxDBURL),
		)
		return NewNoopRecorder(), nil
	}

	client := influxdb2.NewClient(cfg.InfluxDBURL, cfg.InfluxDBToken)
	writeAPI := client.WriteAPIBlocking(cfg.InfluxDBOrg, cfg.InfluxDBBucket)

	slog.InfoContext(ctx, "reminder tick recorder initialized",
		slog.String("type", "influxdb"),
		slog.String("url", cfg.InfluxDBURL),
		slog.String("bucket", cfg.InfluxDBBucket),
	)

	return &influxDBRecorder{
		client:   client,
		writeAPI: writeAPI,
	}, nil
}

func tickPoint(record domain.TickRecord) *write.Point {
	tags := map[string]string{
		"outcome": record.Outcome.String(),
		"weekday": record.Weekday.String(),
	}
	if record.CourseName != "" {
		tags["course"] = record.CourseName
	}

	return influxdb2.NewPoint(
		tickMeasurement,
		tags,
		map[string]any{
			"section": int(record.Section),
			"room":    record.Room,
		},
		record.TickedAt,
	)
}

func (r *influxDBRecorder) RecordTick(ctx context.Context, record domain.TickRecord) error {
	if err := r.writeAPI.WritePoint(ctx, tickPoint(record)); err != nil {
		slog.WarnContext(ctx, "failed to write reminder tick to InfluxDB",
			slog.String("error", err.Error()),
			slog.String("outcome", record.Outcome.String()),
			slog.Time("ticked_at", record.TickedAt),
		)
	}
	return nil
}

func (r *influxDBRecorder) Close() error {
	if r.client != nil {
		r.client.Close()
	}
	return nil
}
