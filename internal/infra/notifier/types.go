package notifier

import (
	"time"

	"github.com/KasumiMercury/primind-timetable/internal/domain"
)

// ReminderTask is the queued form of a reminder. ScheduleAt is the
// moment the reminder fired, so a backed-up queue still delivers it
// without delay.
type ReminderTask struct {
	ReminderID string    `json:"-"`
	ScheduleAt time.Time `json:"-"`

	CourseID   string `json:"course_id"`
	CourseName string `json:"course_name"`
	Room       string `json:"room"`
	Weekday    int    `json:"weekday"`
	Section    int    `json:"section"`
	FiredAt    string `json:"fired_at"`
}

func NewReminderTask(reminder *domain.Reminder) *ReminderTask {
	return &ReminderTask{
		ReminderID: reminder.ID,
		ScheduleAt: reminder.FiredAt,
		CourseID:   reminder.CourseID,
		CourseName: reminder.CourseName,
		Room:       reminder.Room,
		Weekday:    int(reminder.Weekday),
		Section:    int(reminder.Section),
		FiredAt:    reminder.FiredAt.Format(time.RFC3339),
	}
}

type TaskResponse struct {
	Name         string    `json:"name"`
	ScheduleTime time.Time `json:"schedule_time"`
	CreateTime   time.Time `json:"create_time"`
}

type PrimindTaskRequest struct {
	Task PrimindTask `json:"task"`
}

type PrimindTask struct {
	Name         string             `json:"name,omitempty"`
	HTTPRequest  PrimindHTTPRequest `json:"httpRequest"`
	ScheduleTime string             `json:"scheduleTime,omitempty"`
}

type PrimindHTTPRequest struct {
	Body    string            `json:"body"`
	Headers map[string]string `json:"headers,omitempty"`
}

type PrimindTaskResponse struct {
	Name         string `json:"name"`
	ScheduleTime string `json:"scheduleTime"`
	CreateTime   string `json:"createTime"`
}
