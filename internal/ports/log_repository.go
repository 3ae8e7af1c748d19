package ports

import (
	"context"

	"github.com/emiliopalmerini/compass/internal/domain"
)

// LogRepository persists one DailyLog document per user per IST date.
// Writes replace the whole document; concurrent sessions are
// last-write-wins by design.
type LogRepository interface {
	// List returns the user's full log history in no particular order.
	List(ctx context.Context, userID string) ([]domain.DailyLog, error)
	// Get returns nil when no log exists for the date.
	Get(ctx context.Context, userID, date string) (*domain.DailyLog, error)
	Put(ctx context.Context, userID string, log domain.DailyLog) error
	Delete(ctx context.Context, userID, date string) error
}

// ConfigRepository persists the single UserConfig document per user.
type ConfigRepository interface {
	// Get returns nil when the user has no config yet.
	Get(ctx context.Context, userID string) (*domain.UserConfig, error)
	Put(ctx context.Context, userID string, cfg domain.UserConfig) error
}
