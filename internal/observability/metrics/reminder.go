package metrics

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const (
	reminderMeterName = "timetable.reminder"
)

type ReminderMetrics struct {
	ticks            metric.Int64Counter
	remindersEmitted metric.Int64Counter
	notifyFailures   metric.Int64Counter
	tickDuration     metric.Float64Histogram
}

func NewReminderMetrics() (*ReminderMetrics, error) {
	meter := otel.Meter(reminderMeterName)

	ticks, err := meter.Int64Counter(
		"reminder_ticks_total",
		metric.WithDescription("Total number of reminder poller ticks by outcome"),
		metric.WithUnit("{tick}"),
	)
	if err != nil {
		return nil, err
	}

	remindersEmitted, err := meter.Int64Counter(
		"reminder_notifications_total",
		metric.WithDescription("Total number of course reminders emitted"),
		metric.WithUnit("{reminder}"),
	)
	if err != nil {
		return nil, err
	}

	notifyFailures, err := meter.Int64Counter(
		"reminder_notify_failures_total",
		metric.WithDescription("Total number of failed reminder deliveries"),
		metric.WithUnit("{reminder}"),
	)
	if err != nil {
		return nil, err
	}

	tickDuration, err := meter.Float64Histogram(
		"reminder_tick_duration_seconds",
		metric.WithDescription("Time spent in a single poller tick"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(
			0.0001, 0.0005, 0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1,
		),
	)
	if err != nil {
		return nil, err
	}

	return &ReminderMetrics{
		ticks:            ticks,
		remindersEmitted: remindersEmitted,
		notifyFailures:   notifyFailures,
		tickDuration:     tickDuration,
	}, nil
}

func (m *ReminderMetrics) RecordTick(ctx context.Context, outcome string, duration time.Duration) {
	m.ticks.Add(ctx, 1, metric.WithAttributes(
		attribute.String("outcome", outcome),
	))
	m.tickDuration.Record(ctx, duration.Seconds())
}

func (m *ReminderMetrics) RecordReminderEmitted(ctx context.Context, section int) {
	m.remindersEmitted.Add(ctx, 1, metric.WithAttributes(
		attribute.Int("section", section),
	))
}

func (m *ReminderMetrics) RecordNotifyFailure(ctx context.Context, notifier string) {
	m.notifyFailures.Add(ctx, 1, metric.WithAttributes(
		attribute.String("notifier", notifier),
	))
}
