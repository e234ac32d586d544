package urgency

import (
	"fmt"
	"sort"

	"cloud.google.com/go/civil"

	"github.com/KasumiMercury/primind-timetable/internal/domain"
)

const (
	// HighlightWindowDays is the inclusive number of days ahead within
	// which an unfinished homework is flagged.
	HighlightWindowDays = 3
)

type Entry struct {
	Homework      *domain.Homework `json:"homework"`
	RemainingDays int              `json:"remaining_days"`
	Label         string           `json:"label"`
	Highlight     bool             `json:"highlight"`
}

type Calculator struct{}

func NewCalculator() *Calculator {
	return &Calculator{}
}

// Sort returns homeworks ordered by due date. Equal due dates keep
// insertion order. The input slice is not modified.
func (c *Calculator) Sort(homeworks []*domain.Homework) []*domain.Homework {
	sorted := make([]*domain.Homework, len(homeworks))
	copy(sorted, homeworks)

	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Due.Before(sorted[j].Due)
	})
	return sorted
}

func (c *Calculator) SortedView(homeworks []*domain.Homework, today civil.Date) []Entry {
	sorted := c.Sort(homeworks)

	view := make([]Entry, 0, len(sorted))
	for _, hw := range sorted {
		remaining := hw.RemainingDays(today)
		view = append(view, Entry{
			Homework:      hw,
			RemainingDays: remaining,
			Label:         Label(remaining),
			Highlight:     Highlight(remaining, hw.Done),
		})
	}
	return view
}

// ResolveSortedIndex maps a position in the due-date ordered view back
// to the backing entry.
func (c *Calculator) ResolveSortedIndex(homeworks []*domain.Homework, index int) (*domain.Homework, error) {
	if index < 0 || index >= len(homeworks) {
		return nil, domain.IndexResolutionError(index, len(homeworks))
	}
	return c.Sort(homeworks)[index], nil
}

func Label(remainingDays int) string {
	switch {
	case remainingDays < 0:
		return fmt.Sprintf("overdue by %d days", -remainingDays)
	case remainingDays == 0:
		return "due today"
	default:
		return fmt.Sprintf("due in %d days", remainingDays)
	}
}

// Highlight is set for unfinished homework due today or within the
// window. Overdue items are never highlighted.
func Highlight(remainingDays int, done bool) bool {
	return remainingDays >= 0 && remainingDays <= HighlightWindowDays && !done
}
