package slot

import (
	"sort"
	"time"

	"github.com/KasumiMercury/primind-timetable/internal/domain"
)

// teachingBlock is a half-open [StartHour, EndHour) range of the day
// mapped to a section.
type teachingBlock struct {
	StartHour int
	EndHour   int
	Section   domain.Section
}

// Six two-hour blocks with breaks at 12:00 and 17:00. Sections 7-12 exist
// in the grid but are never reached by the clock.
var teachingBlocks = []teachingBlock{
	{StartHour: 8, EndHour: 10, Section: 1},
	{StartHour: 10, EndHour: 12, Section: 2},
	{StartHour: 13, EndHour: 15, Section: 3},
	{StartHour: 15, EndHour: 17, Section: 4},
	{StartHour: 18, EndHour: 20, Section: 5},
	{StartHour: 20, EndHour: 22, Section: 6},
}

type Resolver struct{}

func NewResolver() *Resolver {
	return &Resolver{}
}

// SectionForHour maps an hour of day (0-23) to its section.
func (r *Resolver) SectionForHour(hour int) (domain.Section, bool) {
	for _, b := range teachingBlocks {
		if hour >= b.StartHour && hour < b.EndHour {
			return b.Section, true
		}
	}
	return 0, false
}

// WeekdayOf converts t to the Monday=1 ... Sunday=7 convention.
func (r *Resolver) WeekdayOf(t time.Time) domain.Weekday {
	// time.Weekday counts from Sunday=0
	return domain.Weekday((int(t.Weekday())+6)%7 + 1)
}

func (r *Resolver) SlotAt(now time.Time) (domain.Slot, bool) {
	section, ok := r.SectionForHour(now.Hour())
	if !ok {
		return domain.Slot{}, false
	}
	return domain.Slot{Weekday: r.WeekdayOf(now), Section: section}, true
}

// CurrentCourse returns the first course in collection order occupying
// the slot at now, or nil.
func (r *Resolver) CurrentCourse(now time.Time, courses []*domain.Course) *domain.Course {
	slot, ok := r.SlotAt(now)
	if !ok {
		return nil
	}

	for _, c := range courses {
		if c.Matches(slot) {
			return c
		}
	}
	return nil
}

// NextCourse returns the course whose clock-reachable slot comes first
// strictly after now's hour, wrapping around the week. Ties keep
// collection order.
func (r *Resolver) NextCourse(now time.Time, courses []*domain.Course) *domain.Course {
	today := r.WeekdayOf(now)
	hour := now.Hour()

	var (
		next    *domain.Course
		nextKey int
	)
	for _, c := range courses {
		start, ok := sectionStartHour(c.Section)
		if !ok {
			continue
		}

		dayOffset := (int(c.Weekday) - int(today) + domain.DaysPerWeek) % domain.DaysPerWeek
		if dayOffset == 0 && start <= hour {
			dayOffset = domain.DaysPerWeek
		}

		key := dayOffset*domain.SectionsPerDay + int(c.Section)
		if next == nil || key < nextKey {
			next = c
			nextKey = key
		}
	}
	return next
}

// CoursesByDay returns the courses on weekday ordered by section.
func (r *Resolver) CoursesByDay(weekday domain.Weekday, courses []*domain.Course) []*domain.Course {
	day := make([]*domain.Course, 0)
	for _, c := range courses {
		if c.Weekday == weekday {
			day = append(day, c)
		}
	}

	sort.SliceStable(day, func(i, j int) bool {
		return day[i].Section < day[j].Section
	})
	return day
}

func sectionStartHour(section domain.Section) (int, bool) {
	for _, b := range teachingBlocks {
		if b.Section == section {
			return b.StartHour, true
		}
	}
	return 0, false
}
