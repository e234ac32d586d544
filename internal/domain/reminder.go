package domain

import (
	"time"

	"github.com/google/uuid"
)

// Reminder is emitted when a course is in session at tick time.
type Reminder struct {
	ID         string    `json:"id"`
	CourseID   string    `json:"course_id"`
	CourseName string    `json:"course_name"`
	Room       string    `json:"room"`
	Weekday    Weekday   `json:"weekday"`
	Section    Section   `json:"section"`
	FiredAt    time.Time `json:"fired_at"`
}

func NewReminder(course *Course, firedAt time.Time) *Reminder {
	return &Reminder{
		ID:         uuid.NewString(),
		CourseID:   course.ID,
		CourseName: course.Name,
		Room:       course.Room,
		Weekday:    course.Weekday,
		Section:    course.Section,
		FiredAt:    firedAt,
	}
}
