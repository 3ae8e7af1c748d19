package otel

import "context"

// NoOpExporter is a metrics exporter that does nothing.
type NoOpExporter struct{}

// NewNoOpExporter creates a new no-op exporter for graceful degradation.
func NewNoOpExporter() *NoOpExporter {
	return &NoOpExporter{}
}

func (e *NoOpExporter) LogSaved(ctx context.Context, userID string, hours float64) {}

func (e *NoOpExporter) ConfigSaved(ctx context.Context, userID string) {}

func (e *NoOpExporter) EventsCreated(ctx context.Context, userID string, count int64) {}

func (e *NoOpExporter) Close(ctx context.Context) error { return nil }
