package bootstrap

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/miva/mind-dashboard/config"
)

func requiredEnv() map[string]string {
	return map[string]string{
		"ADMIN_USERS":     "alice",
		"FACULTY_USERS":   "frank",
		"DEVELOPER_USERS": "",
		"LOGIN_SECRET":    "open-sesame",
	}
}

func TestParseConfig(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		cfg, err := parseConfig(requiredEnv())
		require.NoError(t, err)
		assert.Equal(t, config.UserList{"alice"}, cfg.Auth.AdminUsers)
		assert.Empty(t, cfg.Auth.DeveloperUsers)
	})

	t.Run("missing keys are reported together", func(t *testing.T) {
		environ := requiredEnv()
		delete(environ, "ADMIN_USERS")
		delete(environ, "LOGIN_SECRET")

		_, err := parseConfig(environ)
		var missing *config.MissingConfigError
		require.ErrorAs(t, err, &missing)
		assert.ElementsMatch(t, []string{"ADMIN_USERS", "LOGIN_SECRET"}, missing.Keys)
	})

	t.Run("empty secret", func(t *testing.T) {
		environ := requiredEnv()
		environ["LOGIN_SECRET"] = ""
		_, err := parseConfig(environ)
		assert.ErrorContains(t, err, "LOGIN_SECRET")
	})

	t.Run("whitespace secret is kept", func(t *testing.T) {
		environ := requiredEnv()
		environ["LOGIN_SECRET"] = "   "
		cfg, err := parseConfig(environ)
		require.NoError(t, err)
		assert.Equal(t, "   ", cfg.Auth.LoginSecret)
	})

	t.Run("memory sessions outside dev", func(t *testing.T) {
		environ := requiredEnv()
		environ["NODE_ENV"] = "production"
		environ["SESSION_STORE"] = "memory"
		_, err := parseConfig(environ)
		assert.ErrorContains(t, err, "SESSION_STORE=memory")

		environ["NODE_ENV"] = "development"
		_, err = parseConfig(environ)
		assert.NoError(t, err)

		environ["NODE_ENV"] = "production"
		environ["DEV"] = "true"
		_, err = parseConfig(environ)
		assert.NoError(t, err)
	})
}

func TestNewLogger_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, false)
	logger.Debug("hidden")
	logger.Info("visible", "k", "v")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "visible", line["msg"])
	assert.Equal(t, "v", line["k"])
}
