package ports

import "context"

// MetricsExporter records write activity for observability. All
// implementations must be safe to call from request handlers and must
// never fail a write path.
type MetricsExporter interface {
	LogSaved(ctx context.Context, userID string, hours float64)
	ConfigSaved(ctx context.Context, userID string)
	EventsCreated(ctx context.Context, userID string, count int64)
	Close(ctx context.Context) error
}
