// Package registry owns the durable collection of registered accounts.
//
// The registry is the source of truth for login and for the admin
// user-management view. It persists the whole collection to a single
// slot on every mutation; there is no per-record storage.
//
// Credential checks are a plaintext comparison against the stored
// records. The storefront has no server and no secrets to protect from
// itself, so hashing would only complicate the slot layout.
package registry

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/roach88/quickcart/internal/model"
	"github.com/roach88/quickcart/internal/store"
)

// Registry is the set of registered accounts, mirrored to the users
// slot.
type Registry struct {
	slots *store.Store
	users []model.User
}

// New creates a registry over the given slot storage.
// Call Refresh to load the persisted collection.
func New(slots *store.Store) *Registry {
	return &Registry{slots: slots}
}

// Refresh re-reads the users slot. An absent slot is an empty
// collection. Called at startup and again after every login so the
// admin view reflects accounts that self-registered since the last
// read.
func (r *Registry) Refresh(ctx context.Context) error {
	raw, ok, err := r.slots.ReadSlot(ctx, store.KeyUsers)
	if err != nil {
		return fmt.Errorf("refresh users: %w", err)
	}
	if !ok {
		r.users = nil
		return nil
	}

	var users []model.User
	if err := store.UnmarshalRecord(raw, &users); err != nil {
		return fmt.Errorf("refresh users: %w", err)
	}
	r.users = users
	return nil
}

// List returns all registered users in insertion order.
// The returned slice is a copy.
func (r *Registry) List() []model.User {
	out := make([]model.User, len(r.users))
	copy(out, r.users)
	return out
}

// Register appends a new account and persists the collection.
// Fails with model.ErrEmailTaken when the email is already registered.
// IDs are UUIDv7: time-sortable, so the admin view lists accounts in
// registration order even across reinstalls.
func (r *Registry) Register(ctx context.Context, name, email, password string, role model.Role) (model.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return model.User{}, model.ErrEmailTaken
		}
	}

	u := model.User{
		ID:       uuid.Must(uuid.NewV7()).String(),
		Name:     name,
		Email:    email,
		Password: password,
		Role:     role,
	}
	r.users = append(r.users, u)
	if err := r.persist(ctx); err != nil {
		// Roll back the in-memory append so a failed write leaves the
		// collection matching durable state.
		r.users = r.users[:len(r.users)-1]
		return model.User{}, err
	}
	return u, nil
}

// Authenticate returns the user whose email and password match.
// Fails with model.ErrBadCredentials when no record matches.
func (r *Registry) Authenticate(email, password string) (model.User, error) {
	for _, u := range r.users {
		if u.Email == email && u.Password == password {
			return u, nil
		}
	}
	return model.User{}, model.ErrBadCredentials
}

// Delete removes the account with the given id and persists the
// collection. A user may never delete their own account through this
// path: when id equals currentUserID the registry returns
// model.ErrSelfDelete and nothing changes. Deletion is immediate and
// not reversible.
func (r *Registry) Delete(ctx context.Context, id, currentUserID string) error {
	if id == currentUserID {
		return model.ErrSelfDelete
	}

	idx := -1
	for i, u := range r.users {
		if u.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return model.ErrUserNotFound
	}

	removed := r.users[idx]
	r.users = append(r.users[:idx], r.users[idx+1:]...)
	if err := r.persist(ctx); err != nil {
		r.users = append(r.users[:idx], append([]model.User{removed}, r.users[idx:]...)...)
		return err
	}
	return nil
}

func (r *Registry) persist(ctx context.Context) error {
	users := r.users
	if users == nil {
		users = []model.User{}
	}
	raw, err := store.MarshalRecord(users)
	if err != nil {
		return fmt.Errorf("persist users: %w", err)
	}
	if err := r.slots.WriteSlot(ctx, store.KeyUsers, raw); err != nil {
		return fmt.Errorf("persist users: %w", err)
	}
	return nil
}
