package turso

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/emiliopalmerini/compass/internal/database"
	"github.com/emiliopalmerini/compass/internal/domain"
)

// ConfigRepository stores the one UserConfig document per user. Every
// settings change rewrites the whole document, exactly like the
// original app's overwrite semantics.
type ConfigRepository struct {
	db *sql.DB
}

func NewConfigRepository(db *sql.DB) *ConfigRepository {
	return &ConfigRepository{db: db}
}

func (r *ConfigRepository) Get(ctx context.Context, userID string) (*domain.UserConfig, error) {
	doc, err := database.WithRetry(ctx, 2, func() (string, error) {
		var doc string
		err := r.db.QueryRowContext(ctx,
			`SELECT document FROM user_configs WHERE user_id = ?`, userID,
		).Scan(&doc)
		return doc, err
	})
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get config: %w", err)
	}

	var cfg domain.UserConfig
	if err := json.Unmarshal([]byte(doc), &cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config document: %w", err)
	}
	return &cfg, nil
}

func (r *ConfigRepository) Put(ctx context.Context, userID string, cfg domain.UserConfig) error {
	doc, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	now := time.Now().UTC().Format(time.RFC3339)
	_, err = r.db.ExecContext(ctx, `
		INSERT INTO user_configs (user_id, document, created_at, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (user_id) DO UPDATE SET
			document = excluded.document,
			updated_at = excluded.updated_at`,
		userID, string(doc), now, now,
	)
	if err != nil {
		return fmt.Errorf("failed to put config: %w", err)
	}
	return nil
}
