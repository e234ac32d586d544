package tracing

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const reminderTracerName = "github.com/KasumiMercury/primind-timetable/internal/service/reminder"

func ReminderTracer() trace.Tracer {
	return otel.Tracer(reminderTracerName)
}

// StartTickSpan starts each tick as its own trace root.
func StartTickSpan(ctx context.Context, now time.Time) (context.Context, trace.Span) {
	return ReminderTracer().Start(ctx, "reminder.tick",
		trace.WithNewRoot(),
		trace.WithAttributes(
			attribute.String("tick.time", now.Format(time.RFC3339)),
		),
	)
}

func StartNotifySpan(ctx context.Context, notifier, courseName string) (context.Context, trace.Span) {
	return ReminderTracer().Start(ctx, "reminder.notify."+notifier,
		trace.WithAttributes(
			attribute.String("course.name", courseName),
		),
		trace.WithSpanKind(trace.SpanKindProducer),
	)
}

func RecordTickResult(span trace.Span, weekday, section int, outcome string, err error) {
	span.SetAttributes(
		attribute.Int("slot.weekday", weekday),
		attribute.Int("slot.section", section),
		attribute.String("tick.outcome", outcome),
	)
	RecordError(span, err)
}

func RecordError(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}
}
