package bootstrap

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/miva/mind-dashboard/config"
	"github.com/miva/mind-dashboard/internal/adapters/authroles"
	domainauth "github.com/miva/mind-dashboard/internal/domain/auth"
	"github.com/miva/mind-dashboard/internal/service"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func memoryAuthConfig() config.AuthConfig {
	return config.AuthConfig{
		AdminUsers:        config.UserList{"alice"},
		FacultyUsers:      config.UserList{"frank", "alice"},
		DeveloperUsers:    config.UserList{"dana"},
		LoginSecret:       "open-sesame",
		SessionStore:      config.SessionStoreMemory,
		RoleOverlapPolicy: config.OverlapFirstMatch,
	}
}

func TestBuildAuthService_MemoryStoreLogsIn(t *testing.T) {
	svc, err := BuildAuthService(t.Context(), AuthConfig{Auth: memoryAuthConfig(), Logger: discardLogger()})
	require.NoError(t, err)

	res, err := svc.Login(t.Context(), service.LoginInput{Username: "Alice", Password: "open-sesame"})
	require.NoError(t, err)
	assert.Equal(t, domainauth.RoleAdmin, res.Session.Role)

	res, err = svc.Login(t.Context(), service.LoginInput{Username: "someone", Password: "open-sesame"})
	require.NoError(t, err)
	assert.Equal(t, domainauth.RoleStudent, res.Session.Role)

	_, err = svc.Login(t.Context(), service.LoginInput{Username: "alice", Password: "nope"})
	assert.ErrorIs(t, err, domainauth.ErrInvalidCredentials)
}

func TestBuildAuthService_RejectOverlap(t *testing.T) {
	auth := memoryAuthConfig()
	auth.RoleOverlapPolicy = config.OverlapReject

	_, err := BuildAuthService(t.Context(), AuthConfig{Auth: auth, Logger: discardLogger()})
	var overlap *authroles.OverlapError
	require.ErrorAs(t, err, &overlap)
	assert.Contains(t, overlap.Usernames, "alice")
}

func TestBuildAuthService_RedisStoreRequiresClient(t *testing.T) {
	auth := memoryAuthConfig()
	auth.SessionStore = config.SessionStoreRedis

	svc, err := BuildAuthService(t.Context(), AuthConfig{Auth: auth, Logger: discardLogger()})
	assert.Nil(t, svc)
	assert.ErrorContains(t, err, "redis client not configured")
}

func TestBuildAuthService_EmptySecret(t *testing.T) {
	auth := memoryAuthConfig()
	auth.LoginSecret = ""

	_, err := BuildAuthService(t.Context(), AuthConfig{Auth: auth, Logger: discardLogger()})
	assert.Error(t, err)
}
