package notifier

import (
	"context"
	"log/slog"

	"github.com/KasumiMercury/primind-timetable/internal/domain"
)

// LogNotifier writes reminders to the structured log. It is always part
// of the fan-out so a reminder is visible even with no sink configured.
type LogNotifier struct {
	logger *slog.Logger
}

func NewLogNotifier(logger *slog.Logger) *LogNotifier {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogNotifier{logger: logger}
}

func (n *LogNotifier) Name() string {
	return "log"
}

func (n *LogNotifier) Notify(ctx context.Context, reminder *domain.Reminder) error {
	n.logger.InfoContext(ctx, "class reminder",
		slog.String("reminder_id", reminder.ID),
		slog.String("course_name", reminder.CourseName),
		slog.String("room", reminder.Room),
		slog.Int("weekday", int(reminder.Weekday)),
		slog.Int("section", int(reminder.Section)),
		slog.Time("fired_at", reminder.FiredAt),
	)
	return nil
}
