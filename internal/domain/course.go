package domain

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

const (
	DaysPerWeek    = 7
	SectionsPerDay = 12
	DefaultColor   = "#aee1f9"
	MinWeekday     = Weekday(1)
	MaxWeekday     = Weekday(DaysPerWeek)
	MinSection     = Section(1)
	MaxSection     = Section(SectionsPerDay)
)

// Weekday numbers days Monday=1 through Sunday=7.
type Weekday int

var weekdayNames = [...]string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

func (w Weekday) IsValid() bool {
	return w >= MinWeekday && w <= MaxWeekday
}

func (w Weekday) String() string {
	if !w.IsValid() {
		return fmt.Sprintf("Weekday(%d)", int(w))
	}
	return weekdayNames[w-1]
}

// Section is a fixed daily period index, 1 through 12.
type Section int

func (s Section) IsValid() bool {
	return s >= MinSection && s <= MaxSection
}

// Slot identifies one recurring weekly teaching period.
type Slot struct {
	Weekday Weekday `json:"weekday"`
	Section Section `json:"section"`
}

type Course struct {
	ID      string  `json:"id"`
	Weekday Weekday `json:"weekday"`
	Section Section `json:"section"`
	Name    string  `json:"name"`
	Room    string  `json:"room"`
	Color   string  `json:"color"`
}

// NewCourse validates the fields and returns a course with a fresh ID.
// An empty color falls back to DefaultColor.
func NewCourse(weekday Weekday, section Section, name, room, color string) (*Course, error) {
	if err := ValidateCourse(weekday, section, name); err != nil {
		return nil, err
	}

	return &Course{
		ID:      uuid.NewString(),
		Weekday: weekday,
		Section: section,
		Name:    name,
		Room:    room,
		Color:   ColorOrDefault(color),
	}, nil
}

func ColorOrDefault(color string) string {
	if strings.TrimSpace(color) == "" {
		return DefaultColor
	}
	return color
}

func ValidateCourse(weekday Weekday, section Section, name string) error {
	var errs []error

	if !weekday.IsValid() {
		errs = append(errs, NewValidationError("weekday", "must be between 1 and 7"))
	}
	if !section.IsValid() {
		errs = append(errs, NewValidationError("section", "must be between 1 and 12"))
	}
	if strings.TrimSpace(name) == "" {
		errs = append(errs, NewValidationError("name", "is required"))
	}

	return errors.Join(errs...)
}

func (c *Course) Slot() Slot {
	return Slot{Weekday: c.Weekday, Section: c.Section}
}

// Matches reports whether the course occupies the given slot.
func (c *Course) Matches(slot Slot) bool {
	return c.Weekday == slot.Weekday && c.Section == slot.Section
}
