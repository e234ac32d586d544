//go:build gcloud

package tickrecorder

import (
	"context"
	"log/slog"
	"time"

	"cloud.google.com/go/bigquery"

	"github.com/KasumiMercury/primind-timetable/internal/domain"
)

type bigQueryRecord struct {
	RecordedAt time.Time `bigquery:"recorded_at"`
	TickedAt   time.Time `bigquery:"ticked_at"`
	Weekday    int64     `bigquery:"weekday"`
	Section    int64     `bigquery:"section"`
	Outcome    string    `bigquery:"outcome"`
	CourseName string    `bigquery:"course_name"`
	Room       string    `bigquery:"room"`
}

type bigQueryRecorder struct {
	client   *bigquery.Client
	inserter *bigquery.Inserter
}

func NewRecorder(ctx context.Context, cfg *Config) (domain.TickRecorder, error) {
	if cfg.Disabled {
		slog.InfoContext(ctx, "reminder tick recording disabled")
		return NewNoopRecorder(), nil
	}

	if cfg.BigQueryProjectID == "" {
		slog.WarnContext(ctx, "BigQuery project ID not configured, reminder tick recording disabled")
		return NewNoopRecorder(), nil
	}

	client, err := bigquery.NewClient(ctx, cfg.BigQueryProjectID)
	if err != nil {
		slog.ErrorContext(ctx, "failed to create BigQuery client, reminder tick recording disabled",
			slog.String("error", err.Error()),
			slog.String("project_id", cfg.BigQueryProjectID),
		)
		return NewNoopRecorder(), nil
	}

	inserter := client.Dataset(cfg.BigQueryDataset).Table(cfg.BigQueryTable).Inserter()

	slog.InfoContext(ctx, "reminder tick recorder initialized",
		slog.String("type", "bigquery"),
		slog.String("project_id", cfg.BigQueryProjectID),
		slog.String("dataset", cfg.BigQueryDataset),
		slog.String("table", cfg.BigQueryTable),
	)

	return &bigQueryRecorder{
		client:   client,
		inserter: inserter,
	}, nil
}

func (r *bigQueryRecorder) RecordTick(ctx context.Context, record domain.TickRecord) error {
	row := &bigQueryRecord{
		RecordedAt: time.Now(),
		TickedAt:   record.TickedAt,
		Weekday:    int64(record.Weekday),
		Section:    int64(record.Section),
		Outcome:    record.Outcome.String(),
		CourseName: record.CourseName,
		Room:       record.Room,
	}

	if err := r.inserter.Put(ctx, row); err != nil {
		slog.WarnContext(ctx, "failed to insert reminder tick to BigQuery",
			slog.String("error", err.Error()),
			slog.String("outcome", record.Outcome.String()),
		)
	}

	return nil
}

func (r *bigQueryRecorder) Close() error {
	if r.client != nil {
		return r.client.Close()
	}
	return nil
}
