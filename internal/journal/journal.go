// Package journal keeps an audit trail of lead submission attempts so
// rejected leads can be recovered from the database even after the
// conversation is gone.
package journal

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/jmoiron/sqlx/types"

	"github.com/izzat1998/exhibition-bot/core/logger"
	"github.com/izzat1998/exhibition-bot/internal/api"
	"log/slog"
)

// Entry is one recorded submission attempt.
type Entry struct {
	ID         int64          `db:"id"`
	TelegramID int64          `db:"telegram_id"`
	Payload    types.JSONText `db:"payload"`
	Status     int            `db:"status"`
	Detail     string         `db:"detail"`
	Accepted   bool           `db:"accepted"`
	CreatedAt  time.Time      `db:"created_at"`
}

// Store persists submission attempts to Postgres.
type Store struct {
	db *sqlx.DB
}

// New wraps an open database handle.
func New(db *sqlx.DB) *Store {
	return &Store{db: db}
}

const insertEntry = `
INSERT INTO lead_submissions (telegram_id, payload, status, detail, accepted)
VALUES ($1, $2, $3, $4, $5)`

// Record stores one submission attempt, accepted or not.
func (s *Store) Record(ctx context.Context, telegramID int64, payload api.LeadPayload, status int, detail string) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("journal: encode payload: %w", err)
	}

	accepted := status == 200 || status == 201
	start := time.Now()
	_, err = s.db.ExecContext(ctx, insertEntry, telegramID, types.JSONText(body), status, detail, accepted)
	if err != nil {
		return fmt.Errorf("journal: insert: %w", err)
	}

	logger.Debug(ctx, "journal", "record",
		slog.Int64("user_id", telegramID),
		slog.Int("status", status),
		slog.Bool("accepted", accepted),
		slog.Duration("duration", logger.RoundMS(logger.Took(start))),
	)
	return nil
}

const selectRecent = `
SELECT id, telegram_id, payload, status, detail, accepted, created_at
FROM lead_submissions
WHERE telegram_id = $1
ORDER BY created_at DESC
LIMIT $2`

// Recent returns the newest attempts of one agent, newest first.
func (s *Store) Recent(ctx context.Context, telegramID int64, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = 20
	}
	var entries []Entry
	if err := s.db.SelectContext(ctx, &entries, selectRecent, telegramID, limit); err != nil {
		return nil, fmt.Errorf("journal: select recent: %w", err)
	}
	return entries, nil
}
