package tickrecorder

import (
	"context"

	"github.com/KasumiMercury/primind-timetable/internal/domain"
)

type noopRecorder struct{}

func NewNoopRecorder() domain.TickRecorder {
	return &noopRecorder{}
}

func (n *noopRecorder) RecordTick(_ context.Context, _ domain.TickRecord) error {
	return nil
}

func (n *noopRecorder) Close() error {
	return nil
}
