package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainauth "github.com/miva/mind-dashboard/internal/domain/auth"
	"github.com/miva/mind-dashboard/internal/ports"
)

func TestRecordingSessionStore(t *testing.T) {
	store := NewRecordingSessionStore()
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, domainauth.Session{ID: "s1", Username: "u", Role: domainauth.RoleStudent}))
	assert.Equal(t, 1, store.Saves)

	got, err := store.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, "u", got.Username)

	require.NoError(t, store.Delete(ctx, "s1"))
	_, err = store.Get(ctx, "s1")
	assert.ErrorIs(t, err, ports.ErrSessionNotFound)

	store.SaveErr = errors.New("boom")
	assert.Error(t, store.Save(ctx, domainauth.Session{ID: "s2"}))
	assert.Equal(t, 1, store.Saves)
}

func TestAcceptPassword(t *testing.T) {
	v := AcceptPassword("s1")
	assert.NoError(t, v.Verify(context.Background(), "u", "s1"))
	assert.ErrorIs(t, v.Verify(context.Background(), "u", "s2"), domainauth.ErrInvalidCredentials)
}

func TestFixedRoleResolver(t *testing.T) {
	assert.Equal(t, domainauth.RoleFaculty, FixedRoleResolver(domainauth.RoleFaculty).Resolve("anyone"))
}
