// Package session owns the current authenticated identity and its
// single persisted slot.
//
// Lifecycle: created on successful login, destroyed on logout, restored
// from durable storage on process start without re-validating
// credentials. At most one user is current at a time; writing the slot
// always fully replaces it.
package session

import (
	"context"
	"fmt"

	"github.com/roach88/quickcart/internal/model"
	"github.com/roach88/quickcart/internal/store"
)

// Store tracks the current session and mirrors it to the durable
// session slot.
type Store struct {
	slots   *store.Store
	current *model.User
}

// New creates a session store over the given slot storage.
// The session starts logged out; call Restore to pick up a persisted one.
func New(slots *store.Store) *Store {
	return &Store{slots: slots}
}

// Restore reads the persisted session, if any, and makes it current.
// An absent slot means logged out and is not an error. Credentials are
// NOT re-validated: a restored session is trusted as-is.
func (s *Store) Restore(ctx context.Context) (*model.User, error) {
	raw, ok, err := s.slots.ReadSlot(ctx, store.KeySession)
	if err != nil {
		return nil, fmt.Errorf("restore session: %w", err)
	}
	if !ok {
		s.current = nil
		return nil, nil
	}

	var u model.User
	if err := store.UnmarshalRecord(raw, &u); err != nil {
		return nil, fmt.Errorf("restore session: %w", err)
	}
	s.current = &u
	return &u, nil
}

// Login makes user the current session and persists it, overwriting any
// prior slot value.
func (s *Store) Login(ctx context.Context, user model.User) error {
	raw, err := store.MarshalRecord(user)
	if err != nil {
		return fmt.Errorf("login: %w", err)
	}
	if err := s.slots.WriteSlot(ctx, store.KeySession, raw); err != nil {
		return fmt.Errorf("login: %w", err)
	}
	s.current = &user
	return nil
}

// Logout clears the current session and its persisted slot.
// Logging out while already logged out is a no-op.
func (s *Store) Logout(ctx context.Context) error {
	if err := s.slots.DeleteSlot(ctx, store.KeySession); err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	s.current = nil
	return nil
}

// Current returns the logged-in user, or nil when logged out.
// The returned value is a copy; mutating it does not affect the session.
func (s *Store) Current() *model.User {
	if s.current == nil {
		return nil
	}
	u := *s.current
	return &u
}

// LoggedIn reports whether a session is current.
func (s *Store) LoggedIn() bool {
	return s.current != nil
}

// IsAdmin reports whether the current session, if any, holds the admin
// role.
func (s *Store) IsAdmin() bool {
	return s.current != nil && s.current.IsAdmin()
}
