package domain

import (
	"context"
	"time"
)

//go:generate mockgen -source=tick_recorder.go -destination=tick_recorder_mock.go -package=domain

type TickOutcome string

const (
	TickOutcomeOutsideSection TickOutcome = "outside_section"
	TickOutcomeNoCourse       TickOutcome = "no_course"
	TickOutcomeReminded       TickOutcome = "reminded"
	TickOutcomeNotifyFailed   TickOutcome = "notify_failed"
)

func (o TickOutcome) String() string {
	return string(o)
}

type TickRecord struct {
	TickedAt   time.Time
	Weekday    Weekday
	Section    Section
	Outcome    TickOutcome
	CourseName string
	Room       string
}

type TickRecorder interface {
	RecordTick(ctx context.Context, record TickRecord) error
	Close() error
}
