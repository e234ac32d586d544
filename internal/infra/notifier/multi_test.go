package notifier

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/KasumiMercury/primind-timetable/internal/domain"
)

type recordingNotifier struct {
	name     string
	err      error
	received []*domain.Reminder
}

func (n *recordingNotifier) Name() string {
	return n.name
}

func (n *recordingNotifier) Notify(_ context.Context, reminder *domain.Reminder) error {
	n.received = append(n.received, reminder)
	return n.err
}

func testReminder() *domain.Reminder {
	course := &domain.Course{ID: "c1", Weekday: 1, Section: 1, Name: "Calculus", Room: "Room 101"}
	return domain.NewReminder(course, time.Date(2024, 6, 10, 9, 0, 0, 0, time.UTC))
}

func TestMulti_Notify(t *testing.T) {
	sinkErr := errors.New("sink down")

	tests := []struct {
		name      string
		sinks     []*recordingNotifier
		wantErr   error
		wantCalls []int
	}{
		{
			name: "all sinks succeed",
			sinks: []*recordingNotifier{
				{name: "a"},
				{name: "b"},
			},
			wantCalls: []int{1, 1},
		},
		{
			name: "failing sink does not block the next",
			sinks: []*recordingNotifier{
				{name: "a", err: sinkErr},
				{name: "b"},
			},
			wantErr:   sinkErr,
			wantCalls: []int{1, 1},
		},
		{
			name:      "no sinks",
			sinks:     nil,
			wantCalls: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			named := make([]Named, 0, len(tt.sinks))
			for _, s := range tt.sinks {
				named = append(named, s)
			}

			multi := NewMulti(nil, named...)
			err := multi.Notify(context.Background(), testReminder())

			if tt.wantErr == nil && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Fatalf("Notify() error = %v, want %v", err, tt.wantErr)
			}

			for i, s := range tt.sinks {
				if len(s.received) != tt.wantCalls[i] {
					t.Errorf("sink %s received %d reminders, want %d", s.name, len(s.received), tt.wantCalls[i])
				}
			}
		})
	}
}

func TestMulti_Names(t *testing.T) {
	multi := NewMulti(nil, NewLogNotifier(nil), &recordingNotifier{name: "redis"})

	names := multi.Names()
	if len(names) != 2 || names[0] != "log" || names[1] != "redis" {
		t.Errorf("Names() = %v, want [log redis]", names)
	}
}
