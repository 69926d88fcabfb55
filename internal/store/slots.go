package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// Well-known slot keys. These are the only keys the storefront ever
// reads or writes. The names are load-bearing: existing installations
// carry data under them.
const (
	KeySession = "quickcart_session"
	KeyUsers   = "quickcart_users"
)

// ReadSlot returns the value stored under key.
// ok is false when the key is absent; an absent key is not an error.
func (s *Store) ReadSlot(ctx context.Context, key string) (value string, ok bool, err error) {
	err = s.db.QueryRowContext(ctx, `
		SELECT value FROM slots WHERE key = ?
	`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("read slot %q: %w", key, err)
	}
	return value, true, nil
}

// WriteSlot stores value under key, fully replacing any prior value.
// There is exactly one row per key; writes never merge.
func (s *Store) WriteSlot(ctx context.Context, key, value string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO slots (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	if err != nil {
		return fmt.Errorf("write slot %q: %w", key, err)
	}
	return nil
}

// DeleteSlot removes the value stored under key.
// Deleting an absent key is a no-op.
func (s *Store) DeleteSlot(ctx context.Context, key string) error {
	_, err := s.db.ExecContext(ctx, `
		DELETE FROM slots WHERE key = ?
	`, key)
	if err != nil {
		return fmt.Errorf("delete slot %q: %w", key, err)
	}
	return nil
}
