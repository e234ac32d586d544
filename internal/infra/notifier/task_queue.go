package notifier

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/KasumiMercury/primind-timetable/internal/domain"
)

//go:generate mockgen -source=task_queue.go -destination=task_queue_mock.go -package=notifier

type TaskQueue interface {
	RegisterReminder(ctx context.Context, task *ReminderTask) (*TaskResponse, error)
}

// TaskNotifier hands reminders to an external task queue for delivery.
type TaskNotifier struct {
	queue TaskQueue
	name  string
}

func NewTaskNotifier(queue TaskQueue, name string) *TaskNotifier {
	return &TaskNotifier{
		queue: queue,
		name:  name,
	}
}

func (n *TaskNotifier) Name() string {
	return n.name
}

func (n *TaskNotifier) Notify(ctx context.Context, reminder *domain.Reminder) error {
	task := NewReminderTask(reminder)

	resp, err := n.queue.RegisterReminder(ctx, task)
	if err != nil {
		return fmt.Errorf("failed to register reminder task: %w", err)
	}

	slog.DebugContext(ctx, "reminder task registered",
		slog.String("task_name", resp.Name),
		slog.String("reminder_id", reminder.ID),
	)
	return nil
}
