package urgency

import (
	"errors"
	"testing"

	"cloud.google.com/go/civil"

	"github.com/KasumiMercury/primind-timetable/internal/domain"
)

var today = civil.Date{Year: 2024, Month: 6, Day: 10}

func homework(id, name, course string, due civil.Date, done bool) *domain.Homework {
	return &domain.Homework{ID: id, Name: name, Course: course, Due: due, Done: done}
}

func TestCalculator_SortedView_Scenario(t *testing.T) {
	calc := NewCalculator()

	essay := homework("hw-1", "Essay", "Lit", civil.Date{Year: 2024, Month: 6, Day: 12}, false)
	lab := homework("hw-2", "Lab", "Physics", civil.Date{Year: 2024, Month: 6, Day: 10}, false)
	quiz := homework("hw-3", "Quiz", "Math", civil.Date{Year: 2024, Month: 6, Day: 5}, true)

	view := calc.SortedView([]*domain.Homework{essay, lab, quiz}, today)

	want := []struct {
		homework  *domain.Homework
		remaining int
		label     string
		highlight bool
	}{
		{homework: quiz, remaining: -5, label: "overdue by 5 days", highlight: false},
		{homework: lab, remaining: 0, label: "due today", highlight: true},
		{homework: essay, remaining: 2, label: "due in 2 days", highlight: true},
	}

	if len(view) != len(want) {
		t.Fatalf("SortedView() returned %d entries, want %d", len(view), len(want))
	}
	for i, w := range want {
		got := view[i]
		if got.Homework != w.homework {
			t.Errorf("entry[%d] = %s, want %s", i, got.Homework.Name, w.homework.Name)
		}
		if got.RemainingDays != w.remaining {
			t.Errorf("entry[%d] RemainingDays = %d, want %d", i, got.RemainingDays, w.remaining)
		}
		if got.Label != w.label {
			t.Errorf("entry[%d] Label = %q, want %q", i, got.Label, w.label)
		}
		if got.Highlight != w.highlight {
			t.Errorf("entry[%d] Highlight = %v, want %v", i, got.Highlight, w.highlight)
		}
	}
}

func TestCalculator_SortedView_StableOnEqualDueDates(t *testing.T) {
	calc := NewCalculator()

	due := civil.Date{Year: 2024, Month: 6, Day: 20}
	a := homework("a", "A", "Math", due, false)
	b := homework("b", "B", "Math", due, false)
	earlier := homework("c", "C", "Math", civil.Date{Year: 2024, Month: 6, Day: 15}, false)
	d := homework("d", "D", "Math", due, true)

	view := calc.SortedView([]*domain.Homework{a, b, earlier, d}, today)

	want := []*domain.Homework{earlier, a, b, d}
	for i, hw := range want {
		if view[i].Homework != hw {
			t.Errorf("entry[%d] = %s, want %s", i, view[i].Homework.ID, hw.ID)
		}
	}
}

func TestCalculator_SortedView_DoesNotMutateInput(t *testing.T) {
	calc := NewCalculator()

	later := homework("later", "Later", "Math", civil.Date{Year: 2024, Month: 7, Day: 1}, false)
	sooner := homework("sooner", "Sooner", "Math", civil.Date{Year: 2024, Month: 6, Day: 11}, false)
	input := []*domain.Homework{later, sooner}

	calc.SortedView(input, today)

	if input[0] != later || input[1] != sooner {
		t.Error("SortedView() reordered its input slice")
	}
	if later.Done || sooner.Done {
		t.Error("SortedView() mutated homework entries")
	}
}

func TestCalculator_ToggleKeepsPosition(t *testing.T) {
	calc := NewCalculator()

	due := civil.Date{Year: 2024, Month: 6, Day: 11}
	first := homework("first", "First", "Math", due, false)
	second := homework("second", "Second", "Math", due, false)
	third := homework("third", "Third", "Math", civil.Date{Year: 2024, Month: 6, Day: 9}, false)
	homeworks := []*domain.Homework{first, second, third}

	before := calc.SortedView(homeworks, today)

	target, err := calc.ResolveSortedIndex(homeworks, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if target != second {
		t.Fatalf("ResolveSortedIndex(2) = %s, want second", target.ID)
	}
	target.Done = true

	after := calc.SortedView(homeworks, today)

	for i := range before {
		if before[i].Homework != after[i].Homework {
			t.Errorf("position %d changed from %s to %s", i, before[i].Homework.ID, after[i].Homework.ID)
		}
		if before[i].RemainingDays != after[i].RemainingDays || before[i].Label != after[i].Label {
			t.Errorf("position %d label changed after toggle", i)
		}
	}
	if !before[2].Highlight || after[2].Highlight {
		t.Errorf("toggled entry highlight = %v -> %v, want true -> false", before[2].Highlight, after[2].Highlight)
	}
	if before[1].Highlight != after[1].Highlight {
		t.Error("untouched entry highlight changed")
	}
}

func TestCalculator_ResolveSortedIndex_OutOfRange(t *testing.T) {
	calc := NewCalculator()

	homeworks := []*domain.Homework{
		homework("only", "Only", "Math", today, false),
	}

	for _, index := range []int{-1, 1, 5} {
		got, err := calc.ResolveSortedIndex(homeworks, index)
		if !errors.Is(err, domain.ErrIndexResolution) {
			t.Errorf("ResolveSortedIndex(%d) error = %v, want ErrIndexResolution", index, err)
		}
		if got != nil {
			t.Errorf("ResolveSortedIndex(%d) = %v, want nil", index, got)
		}
	}
}

func TestLabelAndHighlight(t *testing.T) {
	tests := []struct {
		name          string
		remainingDays int
		done          bool
		wantLabel     string
		wantHighlight bool
	}{
		{name: "overdue by one day", remainingDays: -1, wantLabel: "overdue by 1 days", wantHighlight: false},
		{name: "due today", remainingDays: 0, wantLabel: "due today", wantHighlight: true},
		{name: "due today but done", remainingDays: 0, done: true, wantLabel: "due today", wantHighlight: false},
		{name: "edge of window", remainingDays: 3, wantLabel: "due in 3 days", wantHighlight: true},
		{name: "edge of window but done", remainingDays: 3, done: true, wantLabel: "due in 3 days", wantHighlight: false},
		{name: "outside window", remainingDays: 4, wantLabel: "due in 4 days", wantHighlight: false},
		{name: "long overdue", remainingDays: -30, wantLabel: "overdue by 30 days", wantHighlight: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Label(tt.remainingDays); got != tt.wantLabel {
				t.Errorf("Label(%d) = %q, want %q", tt.remainingDays, got, tt.wantLabel)
			}
			if got := Highlight(tt.remainingDays, tt.done); got != tt.wantHighlight {
				t.Errorf("Highlight(%d, %v) = %v, want %v", tt.remainingDays, tt.done, got, tt.wantHighlight)
			}
		})
	}
}
