package session

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/quickcart/internal/model"
	"github.com/roach88/quickcart/internal/store"
)

func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	s, err := store.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestRestore_AbsentSlot(t *testing.T) {
	s := New(newTestStore(t))

	u, err := s.Restore(context.Background())
	require.NoError(t, err)
	assert.Nil(t, u)
	assert.False(t, s.LoggedIn())
}

func TestLoginPersistsAndRestores(t *testing.T) {
	slots := newTestStore(t)
	ctx := context.Background()

	first := New(slots)
	admin := model.User{ID: "u1", Name: "Asha", Email: "asha@example.com", Role: model.RoleAdmin}
	require.NoError(t, first.Login(ctx, admin))
	assert.True(t, first.IsAdmin())

	// A fresh store over the same slots sees the persisted session.
	second := New(slots)
	u, err := second.Restore(ctx)
	require.NoError(t, err)
	require.NotNil(t, u)
	assert.Equal(t, admin, *u)
	assert.True(t, second.LoggedIn())
}

func TestLogin_ReplacesPriorSlot(t *testing.T) {
	slots := newTestStore(t)
	ctx := context.Background()
	s := New(slots)

	require.NoError(t, s.Login(ctx, model.User{ID: "u1", Name: "Asha", Role: model.RoleAdmin}))
	require.NoError(t, s.Login(ctx, model.User{ID: "u2", Name: "Ravi", Role: model.RoleCustomer}))

	u, err := New(slots).Restore(ctx)
	require.NoError(t, err)
	require.NotNil(t, u)
	assert.Equal(t, "u2", u.ID)
	assert.False(t, u.IsAdmin())
}

func TestLogout_ClearsSessionAndSlot(t *testing.T) {
	slots := newTestStore(t)
	ctx := context.Background()
	s := New(slots)

	require.NoError(t, s.Login(ctx, model.User{ID: "u1", Name: "Asha", Role: model.RoleCustomer}))
	require.NoError(t, s.Logout(ctx))

	assert.False(t, s.LoggedIn())
	assert.Nil(t, s.Current())

	u, err := New(slots).Restore(ctx)
	require.NoError(t, err)
	assert.Nil(t, u)
}

func TestLogout_WhileLoggedOut(t *testing.T) {
	s := New(newTestStore(t))
	assert.NoError(t, s.Logout(context.Background()))
}

func TestCurrent_ReturnsCopy(t *testing.T) {
	s := New(newTestStore(t))
	require.NoError(t, s.Login(context.Background(), model.User{ID: "u1", Name: "Asha", Role: model.RoleCustomer}))

	u := s.Current()
	u.Name = "mutated"
	assert.Equal(t, "Asha", s.Current().Name)
}
