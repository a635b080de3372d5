package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// Slot names for user state. Each holds one JSON document per user.
const (
	SlotPoints         = "points"
	SlotWatched        = "watched"
	SlotRated          = "rated"
	SlotSaved          = "saved"
	SlotAchievements   = "achievements"
	SlotCollections    = "collections"
	SlotQuizStats      = "quiz-stats"
	SlotDailyCompleted = "daily-completed"
	SlotDailyDate      = "daily-date"
	SlotDailyStreak    = "daily-streak"
	SlotLikedTrivia    = "liked-trivia"
)

// ErrSlotNotFound is returned when a user has never written the slot.
var ErrSlotNotFound = errors.New("state slot not found")

// StateStore is the persistent key-value store for user state. Each named
// slot holds a JSON-serializable value, read on demand and written on every
// mutation.
type StateStore interface {
	GetSlot(ctx context.Context, userID, slot string) ([]byte, error)
	SetSlot(ctx context.Context, userID, slot string, data []byte) error
}

// StateRepository is the PostgreSQL-backed StateStore.
type StateRepository struct {
	db *sql.DB
}

// NewStateRepository creates a new StateRepository.
func NewStateRepository(db *sql.DB) *StateRepository {
	return &StateRepository{db: db}
}

// GetSlot returns the raw JSON stored under the slot for the user.
func (r *StateRepository) GetSlot(ctx context.Context, userID, slot string) ([]byte, error) {
	var data []byte
	err := r.db.QueryRowContext(ctx, `
		SELECT data FROM user_state WHERE user_id = $1 AND slot = $2
	`, userID, slot).Scan(&data)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrSlotNotFound
		}
		return nil, fmt.Errorf("failed to read slot %q: %w", slot, err)
	}
	return data, nil
}

// SetSlot upserts the slot value for the user.
func (r *StateRepository) SetSlot(ctx context.Context, userID, slot string, data []byte) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO user_state (user_id, slot, data, updated_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id, slot) DO UPDATE SET
			data = EXCLUDED.data,
			updated_at = EXCLUDED.updated_at
	`, userID, slot, data, time.Now())
	if err != nil {
		return fmt.Errorf("failed to write slot %q: %w", slot, err)
	}
	return nil
}
