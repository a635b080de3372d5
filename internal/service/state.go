package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"moodyflicks/internal/repository"
)

// loadSlot reads a JSON slot into dst, leaving dst untouched when the user
// has never written the slot.
func loadSlot(ctx context.Context, store repository.StateStore, userID, slot string, dst any) error {
	data, err := store.GetSlot(ctx, userID, slot)
	if err != nil {
		if errors.Is(err, repository.ErrSlotNotFound) {
			return nil
		}
		return err
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("corrupt state in slot %q: %w", slot, err)
	}
	return nil
}

// saveSlot writes a value as JSON to a slot.
func saveSlot(ctx context.Context, store repository.StateStore, userID, slot string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode slot %q: %w", slot, err)
	}
	return store.SetSlot(ctx, userID, slot, data)
}
