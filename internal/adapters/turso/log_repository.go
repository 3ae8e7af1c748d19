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

// LogRepository stores each DailyLog as a JSON document keyed by
// (user_id, date). Put overwrites the whole document: last write wins,
// no conflict detection.
type LogRepository struct {
	db *sql.DB
}

func NewLogRepository(db *sql.DB) *LogRepository {
	return &LogRepository{db: db}
}

func (r *LogRepository) List(ctx context.Context, userID string) ([]domain.DailyLog, error) {
	rows, err := database.WithRetry(ctx, 2, func() (*sql.Rows, error) {
		return r.db.QueryContext(ctx, `SELECT document FROM daily_logs WHERE user_id = ?`, userID)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list logs: %w", err)
	}
	defer rows.Close()

	var logs []domain.DailyLog
	for rows.Next() {
		var doc string
		if err := rows.Scan(&doc); err != nil {
			return nil, fmt.Errorf("failed to scan log: %w", err)
		}
		log, err := decodeLog(doc)
		if err != nil {
			return nil, err
		}
		logs = append(logs, log)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read logs: %w", err)
	}
	return logs, nil
}

func (r *LogRepository) Get(ctx context.Context, userID, date string) (*domain.DailyLog, error) {
	doc, err := database.WithRetry(ctx, 2, func() (string, error) {
		var doc string
		err := r.db.QueryRowContext(ctx,
			`SELECT document FROM daily_logs WHERE user_id = ? AND date = ?`,
			userID, date,
		).Scan(&doc)
		return doc, err
	})
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get log: %w", err)
	}

	log, err := decodeLog(doc)
	if err != nil {
		return nil, err
	}
	return &log, nil
}

func (r *LogRepository) Put(ctx context.Context, userID string, log domain.DailyLog) error {
	doc, err := json.Marshal(log)
	if err != nil {
		return fmt.Errorf("failed to encode log: %w", err)
	}

	now := time.Now().UTC().Format(time.RFC3339)
	_, err = r.db.ExecContext(ctx, `
		INSERT INTO daily_logs (user_id, date, document, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT (user_id, date) DO UPDATE SET
			document = excluded.document,
			updated_at = excluded.updated_at`,
		userID, log.Date, string(doc), now, now,
	)
	if err != nil {
		return fmt.Errorf("failed to put log: %w", err)
	}
	return nil
}

func (r *LogRepository) Delete(ctx context.Context, userID, date string) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM daily_logs WHERE user_id = ? AND date = ?`,
		userID, date,
	)
	if err != nil {
		return fmt.Errorf("failed to delete log: %w", err)
	}
	return nil
}

// decodeLog tolerates old document shapes: a document that fails to
// parse surfaces an error, but absent nested fields simply stay zero
// and are repaired at read time by domain.Hydrate.
func decodeLog(doc string) (domain.DailyLog, error) {
	var log domain.DailyLog
	if err := json.Unmarshal([]byte(doc), &log); err != nil {
		return domain.DailyLog{}, fmt.Errorf("failed to decode log document: %w", err)
	}
	return log, nil
}
