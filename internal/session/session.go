package session

import (
	"log/slog"
	"slices"
	"sync"
	"time"

	"cloud.google.com/go/civil"

	"github.com/KasumiMercury/primind-timetable/internal/domain"
	"github.com/KasumiMercury/primind-timetable/internal/service/slot"
	"github.com/KasumiMercury/primind-timetable/internal/service/urgency"
)

// Timetable is the rendered grid indexed by [weekday-1][section-1].
type Timetable [domain.DaysPerWeek][domain.SectionsPerDay]*domain.Course

// Session owns the course and homework collections for the process
// lifetime. All methods are safe for concurrent use; returned values are
// copies.
type Session struct {
	mu        sync.RWMutex
	courses   []*domain.Course
	grid      Timetable
	homeworks []*domain.Homework

	resolver   *slot.Resolver
	calculator *urgency.Calculator
}

func New(resolver *slot.Resolver, calculator *urgency.Calculator) *Session {
	return &Session{
		courses:    make([]*domain.Course, 0),
		homeworks:  make([]*domain.Homework, 0),
		resolver:   resolver,
		calculator: calculator,
	}
}

// AddCourse appends a course and renders it into its grid cell,
// overwriting whatever the cell displayed before.
func (s *Session) AddCourse(weekday domain.Weekday, section domain.Section, name, room, color string) (*domain.Course, error) {
	course, err := domain.NewCourse(weekday, section, name, room, color)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.courses = append(s.courses, course)
	s.render(course)

	slog.Debug("course added",
		slog.String("course_id", course.ID),
		slog.Int("weekday", int(course.Weekday)),
		slog.Int("section", int(course.Section)),
	)

	return copyCourse(course), nil
}

// EditCourse replaces the fields of an existing course in place and
// moves its rendered cell.
func (s *Session) EditCourse(id string, weekday domain.Weekday, section domain.Section, name, room, color string) (*domain.Course, error) {
	if err := domain.ValidateCourse(weekday, section, name); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	course := s.findCourse(id)
	if course == nil {
		return nil, domain.ErrCourseNotFound
	}

	s.clearIfDisplayed(course)

	course.Weekday = weekday
	course.Section = section
	course.Name = name
	course.Room = room
	course.Color = domain.ColorOrDefault(color)
	s.render(course)

	return copyCourse(course), nil
}

// RemoveCourse deletes a course from the backing collection and clears
// its cell if the cell still displays it.
func (s *Session) RemoveCourse(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := slices.IndexFunc(s.courses, func(c *domain.Course) bool { return c.ID == id })
	if idx < 0 {
		return domain.ErrCourseNotFound
	}

	s.clearIfDisplayed(s.courses[idx])
	s.courses = slices.Delete(s.courses, idx, idx+1)

	return nil
}

// RemoveCourseAt clears the rendered cell only. The backing collection
// keeps the course, so the reminder poller still matches it.
func (s *Session) RemoveCourseAt(weekday domain.Weekday, section domain.Section) (bool, error) {
	if !weekday.IsValid() {
		return false, domain.NewValidationError("weekday", "must be between 1 and 7")
	}
	if !section.IsValid() {
		return false, domain.NewValidationError("section", "must be between 1 and 12")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	cell := &s.grid[weekday-1][section-1]
	cleared := *cell != nil
	*cell = nil

	return cleared, nil
}

func (s *Session) Courses() []*domain.Course {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return copyCourses(s.courses)
}

func (s *Session) Timetable() Timetable {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var grid Timetable
	for d := range s.grid {
		for sec, c := range s.grid[d] {
			if c != nil {
				grid[d][sec] = copyCourse(c)
			}
		}
	}
	return grid
}

func (s *Session) CoursesByDay(weekday domain.Weekday) []*domain.Course {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return copyCourses(s.resolver.CoursesByDay(weekday, s.courses))
}

func (s *Session) CurrentCourse(now time.Time) *domain.Course {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return copyCourse(s.resolver.CurrentCourse(now, s.courses))
}

func (s *Session) NextCourse(now time.Time) *domain.Course {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return copyCourse(s.resolver.NextCourse(now, s.courses))
}

func (s *Session) AddHomework(name, course string, due civil.Date) (*domain.Homework, error) {
	hw, err := domain.NewHomework(name, course, due)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.homeworks = append(s.homeworks, hw)

	slog.Debug("homework added",
		slog.String("homework_id", hw.ID),
		slog.String("due", hw.Due.String()),
	)

	return copyHomework(hw), nil
}

func (s *Session) Homeworks() []*domain.Homework {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return copyHomeworks(s.homeworks)
}

func (s *Session) SortedHomeworkView(today civil.Date) []urgency.Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	view := s.calculator.SortedView(s.homeworks, today)
	for i := range view {
		view[i].Homework = copyHomework(view[i].Homework)
	}
	return view
}

// ToggleHomeworkDoneAt sets the done flag of the entry shown at index in
// the sorted view. The index is resolved to the entry under the same
// lock that mutates it.
func (s *Session) ToggleHomeworkDoneAt(index int, done bool) (*domain.Homework, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	hw, err := s.calculator.ResolveSortedIndex(s.homeworks, index)
	if err != nil {
		return nil, err
	}

	hw.Done = done
	return copyHomework(hw), nil
}

func (s *Session) DeleteHomeworkAt(index int) (*domain.Homework, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	hw, err := s.calculator.ResolveSortedIndex(s.homeworks, index)
	if err != nil {
		return nil, err
	}

	s.deleteHomework(hw)
	return copyHomework(hw), nil
}

func (s *Session) ToggleHomeworkDone(id string, done bool) (*domain.Homework, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.homeworkIndex(id)
	if idx < 0 {
		return nil, domain.ErrHomeworkNotFound
	}

	s.homeworks[idx].Done = done
	return copyHomework(s.homeworks[idx]), nil
}

func (s *Session) DeleteHomework(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.homeworkIndex(id)
	if idx < 0 {
		return domain.ErrHomeworkNotFound
	}

	s.homeworks = slices.Delete(s.homeworks, idx, idx+1)
	return nil
}

func (s *Session) render(c *domain.Course) {
	s.grid[c.Weekday-1][c.Section-1] = c
}

func (s *Session) clearIfDisplayed(c *domain.Course) {
	cell := &s.grid[c.Weekday-1][c.Section-1]
	if *cell == c {
		*cell = nil
	}
}

func (s *Session) findCourse(id string) *domain.Course {
	for _, c := range s.courses {
		if c.ID == id {
			return c
		}
	}
	return nil
}

func (s *Session) homeworkIndex(id string) int {
	return slices.IndexFunc(s.homeworks, func(h *domain.Homework) bool { return h.ID == id })
}

// deleteHomework removes by identity so entries sharing a due date
// cannot be confused.
func (s *Session) deleteHomework(target *domain.Homework) {
	s.homeworks = slices.DeleteFunc(s.homeworks, func(h *domain.Homework) bool { return h == target })
}
