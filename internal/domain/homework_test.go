package domain

import (
	"errors"
	"testing"

	"cloud.google.com/go/civil"
)

func TestNewHomework(t *testing.T) {
	due := civil.Date{Year: 2024, Month: 6, Day: 12}

	tests := []struct {
		name      string
		hwName    string
		course    string
		due       civil.Date
		wantField string
	}{
		{name: "valid homework", hwName: "Essay", course: "Lit", due: due},
		{name: "missing name", hwName: "", course: "Lit", due: due, wantField: "name"},
		{name: "missing course", hwName: "Essay", course: " ", due: due, wantField: "course"},
		{name: "invalid due date", hwName: "Essay", course: "Lit", due: civil.Date{Year: 2024, Month: 2, Day: 30}, wantField: "due"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hw, err := NewHomework(tt.hwName, tt.course, tt.due)

			if tt.wantField != "" {
				if !errors.Is(err, ErrValidation) {
					t.Fatalf("expected ErrValidation, got %v", err)
				}
				if !hasFieldError(err, tt.wantField) {
					t.Errorf("expected validation error for field %q, got %v", tt.wantField, err)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if hw.Done {
				t.Error("new homework should not be done")
			}
			if hw.ID == "" {
				t.Error("expected homework ID to be assigned")
			}
		})
	}
}

func TestHomework_RemainingDays(t *testing.T) {
	today := civil.Date{Year: 2024, Month: 6, Day: 10}

	tests := []struct {
		due  civil.Date
		want int
	}{
		{due: civil.Date{Year: 2024, Month: 6, Day: 5}, want: -5},
		{due: today, want: 0},
		{due: civil.Date{Year: 2024, Month: 6, Day: 13}, want: 3},
		{due: civil.Date{Year: 2024, Month: 7, Day: 1}, want: 21},
	}

	for _, tt := range tests {
		t.Run(tt.due.String(), func(t *testing.T) {
			hw := &Homework{Due: tt.due}
			if got := hw.RemainingDays(today); got != tt.want {
				t.Errorf("RemainingDays() = %d, want %d", got, tt.want)
			}
		})
	}
}
