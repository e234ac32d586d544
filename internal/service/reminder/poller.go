package reminder

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"go.opentelemetry.io/otel/trace"

	"github.com/KasumiMercury/primind-timetable/internal/domain"
	"github.com/KasumiMercury/primind-timetable/internal/observability/metrics"
	"github.com/KasumiMercury/primind-timetable/internal/observability/tracing"
	"github.com/KasumiMercury/primind-timetable/internal/service/slot"
)

const DefaultInterval = 60 * time.Second

var (
	ErrAlreadyRunning = errors.New("reminder poller already running")
	ErrNotRunning     = errors.New("reminder poller not running")
)

type State string

const (
	StateIdle  State = "idle"
	StateArmed State = "armed"
)

// CourseSource provides a snapshot of the course collection.
type CourseSource interface {
	Courses() []*domain.Course
}

type Config struct {
	Interval time.Duration
	Location *time.Location
	Clock    func() time.Time
}

// Poller re-evaluates the current course on a fixed interval and emits a
// reminder every tick a course is in session. Ticks run on a single
// goroutine and never overlap.
type Poller struct {
	source          CourseSource
	resolver        *slot.Resolver
	notifier        domain.Notifier
	recorder        domain.TickRecorder
	reminderMetrics *metrics.ReminderMetrics

	interval time.Duration
	location *time.Location
	clock    func() time.Time

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}

	// tickMu keeps a loop restarted right after Stop from overlapping
	// the previous loop's last tick.
	tickMu sync.Mutex
}

func NewPoller(
	source CourseSource,
	resolver *slot.Resolver,
	notifier domain.Notifier,
	recorder domain.TickRecorder,
	reminderMetrics *metrics.ReminderMetrics,
	cfg Config,
) *Poller {
	interval := cfg.Interval
	if interval <= 0 {
		interval = DefaultInterval
	}

	location := cfg.Location
	if location == nil {
		location = time.Local
	}

	clock := cfg.Clock
	if clock == nil {
		clock = time.Now
	}

	return &Poller{
		source:          source,
		resolver:        resolver,
		notifier:        notifier,
		recorder:        recorder,
		reminderMetrics: reminderMetrics,
		interval:        interval,
		location:        location,
		clock:           clock,
	}
}

// Start arms the poller. ctx only contributes values; the loop runs until
// Stop is called.
func (p *Poller) Start(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.cancel != nil {
		return ErrAlreadyRunning
	}

	// Ticks outlive the caller, so they must not inherit its cancellation
	// or its span.
	detached := trace.ContextWithSpanContext(context.WithoutCancel(ctx), trace.SpanContext{})
	loopCtx, cancel := context.WithCancel(detached)
	done := make(chan struct{})

	p.cancel = cancel
	p.done = done

	go p.run(loopCtx, done)

	slog.InfoContext(ctx, "reminder poller started",
		slog.Duration("interval", p.interval),
		slog.String("location", p.location.String()),
	)

	return nil
}

// Stop disarms the poller and waits for an in-flight tick to finish.
// The poller reports idle as soon as it is disarmed.
func (p *Poller) Stop() error {
	p.mu.Lock()
	cancel, done := p.cancel, p.done
	p.cancel = nil
	p.done = nil
	p.mu.Unlock()

	if cancel == nil {
		return ErrNotRunning
	}

	cancel()
	<-done

	slog.Info("reminder poller stopped")

	return nil
}

func (p *Poller) State() State {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.cancel != nil {
		return StateArmed
	}
	return StateIdle
}

func (p *Poller) Interval() time.Duration {
	return p.interval
}

func (p *Poller) run(ctx context.Context, done chan struct{}) {
	defer close(done)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.tickMu.Lock()
			_, err := p.Tick(ctx)
			p.tickMu.Unlock()

			if err != nil {
				slog.WarnContext(ctx, "reminder tick failed to notify",
					slog.String("error", err.Error()),
				)
			}
		}
	}
}

// Tick evaluates the current slot once. It returns the emitted reminder,
// or nil when no course is in session. A non-nil error means the
// reminder was built but delivery failed.
func (p *Poller) Tick(ctx context.Context) (*domain.Reminder, error) {
	started := time.Now()
	now := p.clock().In(p.location)

	ctx, span := tracing.StartTickSpan(ctx, now)
	defer span.End()

	record := domain.TickRecord{
		TickedAt: now,
		Weekday:  p.resolver.WeekdayOf(now),
		Outcome:  domain.TickOutcomeOutsideSection,
	}

	var (
		reminder  *domain.Reminder
		notifyErr error
	)

	if current, ok := p.resolver.SlotAt(now); ok {
		record.Section = current.Section
		record.Outcome = domain.TickOutcomeNoCourse

		if course := p.resolver.CurrentCourse(now, p.source.Courses()); course != nil {
			reminder = domain.NewReminder(course, now)
			record.CourseName = course.Name
			record.Room = course.Room

			notifyErr = p.notifier.Notify(ctx, reminder)
			if notifyErr != nil {
				record.Outcome = domain.TickOutcomeNotifyFailed
			} else {
				record.Outcome = domain.TickOutcomeReminded
				if p.reminderMetrics != nil {
					p.reminderMetrics.RecordReminderEmitted(ctx, int(course.Section))
				}
				slog.InfoContext(ctx, "course reminder emitted",
					slog.String("course_id", course.ID),
					slog.String("course_name", course.Name),
					slog.String("room", course.Room),
					slog.Int("weekday", int(course.Weekday)),
					slog.Int("section", int(course.Section)),
				)
			}
		}
	}

	slog.DebugContext(ctx, "reminder tick",
		slog.Time("now", now),
		slog.Int("weekday", int(record.Weekday)),
		slog.Int("section", int(record.Section)),
		slog.String("outcome", record.Outcome.String()),
	)

	if p.recorder != nil {
		if err := p.recorder.RecordTick(ctx, record); err != nil {
			slog.WarnContext(ctx, "failed to record reminder tick",
				slog.String("error", err.Error()),
			)
		}
	}

	if p.reminderMetrics != nil {
		p.reminderMetrics.RecordTick(ctx, record.Outcome.String(), time.Since(started))
	}
	tracing.RecordTickResult(span, int(record.Weekday), int(record.Section), record.Outcome.String(), notifyErr)

	return reminder, notifyErr
}
