package domain

import (
	"errors"
	"strings"

	"cloud.google.com/go/civil"
	"github.com/google/uuid"
)

// Homework references its course by name only.
type Homework struct {
	ID     string     `json:"id"`
	Name   string     `json:"name"`
	Course string     `json:"course"`
	Due    civil.Date `json:"due"`
	Done   bool       `json:"done"`
}

func NewHomework(name, course string, due civil.Date) (*Homework, error) {
	var errs []error

	if strings.TrimSpace(name) == "" {
		errs = append(errs, NewValidationError("name", "is required"))
	}
	if strings.TrimSpace(course) == "" {
		errs = append(errs, NewValidationError("course", "is required"))
	}
	if !due.IsValid() {
		errs = append(errs, NewValidationError("due", "must be a valid calendar date"))
	}

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}

	return &Homework{
		ID:     uuid.NewString(),
		Name:   name,
		Course: course,
		Due:    due,
		Done:   false,
	}, nil
}

// RemainingDays is the whole-day distance from today to the due date.
func (h *Homework) RemainingDays(today civil.Date) int {
	return h.Due.DaysSince(today)
}
