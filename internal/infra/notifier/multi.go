package notifier

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/KasumiMercury/primind-timetable/internal/domain"
	"github.com/KasumiMercury/primind-timetable/internal/observability/metrics"
	"github.com/KasumiMercury/primind-timetable/internal/observability/tracing"
)

// Named is a notifier that can be identified in logs and metrics.
type Named interface {
	domain.Notifier
	Name() string
}

// Multi delivers each reminder to every sink. A failing sink does not
// prevent delivery to the others; all failures are joined.
type Multi struct {
	sinks   []Named
	metrics *metrics.ReminderMetrics
}

func NewMulti(reminderMetrics *metrics.ReminderMetrics, sinks ...Named) *Multi {
	return &Multi{
		sinks:   sinks,
		metrics: reminderMetrics,
	}
}

func (m *Multi) Names() []string {
	names := make([]string, 0, len(m.sinks))
	for _, sink := range m.sinks {
		names = append(names, sink.Name())
	}
	return names
}

func (m *Multi) Notify(ctx context.Context, reminder *domain.Reminder) error {
	var errs []error

	for _, sink := range m.sinks {
		sinkCtx, span := tracing.StartNotifySpan(ctx, sink.Name(), reminder.CourseName)

		err := sink.Notify(sinkCtx, reminder)
		if err != nil {
			tracing.RecordError(span, err)
			slog.WarnContext(sinkCtx, "reminder delivery failed",
				slog.String("notifier", sink.Name()),
				slog.String("reminder_id", reminder.ID),
				slog.String("error", err.Error()),
			)
			if m.metrics != nil {
				m.metrics.RecordNotifyFailure(sinkCtx, sink.Name())
			}
			errs = append(errs, fmt.Errorf("%s: %w", sink.Name(), err))
		}

		span.End()
	}

	return errors.Join(errs...)
}
