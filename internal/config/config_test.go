package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadWithDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := Load(WithEnvMap(map[string]string{}), WithoutSystemEnv(), WithEnvFile(""))
	require.NoError(t, err)

	require.Equal(t, ":8080", cfg.Server.Addr)
	require.Equal(t, 15*time.Second, cfg.Server.ReadTimeout)
	require.Equal(t, 15*time.Second, cfg.Server.WriteTimeout)
	require.Equal(t, 60*time.Second, cfg.Server.IdleTimeout)
	require.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
	require.Equal(t, "info", cfg.Log.Level)
	require.Empty(t, cfg.Content.Dir)
}

func TestLoadWithOverrides(t *testing.T) {
	t.Parallel()

	env := map[string]string{
		"WEB_HTTP_ADDR":        "127.0.0.1:9000",
		"WEB_READ_TIMEOUT":     "5s",
		"WEB_WRITE_TIMEOUT":    "20s",
		"WEB_IDLE_TIMEOUT":     "2m",
		"WEB_SHUTDOWN_TIMEOUT": "3s",
		"WEB_LOG_LEVEL":        "DEBUG",
		"WEB_CONTENT_DIR":      " ./content/pages ",
	}

	cfg, err := Load(WithEnvMap(env), WithoutSystemEnv(), WithEnvFile(""))
	require.NoError(t, err)

	require.Equal(t, "127.0.0.1:9000", cfg.Server.Addr)
	require.Equal(t, 5*time.Second, cfg.Server.ReadTimeout)
	require.Equal(t, 20*time.Second, cfg.Server.WriteTimeout)
	require.Equal(t, 2*time.Minute, cfg.Server.IdleTimeout)
	require.Equal(t, 3*time.Second, cfg.Server.ShutdownTimeout)
	require.Equal(t, "debug", cfg.Log.Level)
	require.Equal(t, "./content/pages", cfg.Content.Dir)
}

func TestLoadHonoursPort(t *testing.T) {
	t.Parallel()

	cfg, err := Load(WithEnvMap(map[string]string{"PORT": "3000"}), WithoutSystemEnv(), WithEnvFile(""))
	require.NoError(t, err)
	require.Equal(t, ":3000", cfg.Server.Addr)

	cfg, err = Load(WithEnvMap(map[string]string{"PORT": "3000", "WEB_HTTP_ADDR": ":4000"}), WithoutSystemEnv(), WithEnvFile(""))
	require.NoError(t, err)
	require.Equal(t, ":4000", cfg.Server.Addr, "explicit address wins over PORT")
}

func TestLoadReportsInvalidFields(t *testing.T) {
	t.Parallel()

	env := map[string]string{
		"WEB_READ_TIMEOUT": "soon",
		"WEB_IDLE_TIMEOUT": "-1s",
		"WEB_LOG_LEVEL":    "chatty",
	}

	_, err := Load(WithEnvMap(env), WithoutSystemEnv(), WithEnvFile(""))
	require.Error(t, err)

	var vErr *ValidationError
	require.True(t, errors.As(err, &vErr))
	require.ElementsMatch(t, []string{"WEB_READ_TIMEOUT", "WEB_IDLE_TIMEOUT", "WEB_LOG_LEVEL"}, vErr.Fields())
	require.Contains(t, err.Error(), "WEB_LOG_LEVEL")
}

func TestLoadRejectsUnconfigurableLogLevels(t *testing.T) {
	t.Parallel()

	for _, level := range []string{"fatal", "panic", "dpanic"} {
		_, err := Load(WithEnvMap(map[string]string{"WEB_LOG_LEVEL": level}), WithoutSystemEnv(), WithEnvFile(""))

		var vErr *ValidationError
		require.True(t, errors.As(err, &vErr), level)
		require.Equal(t, []string{"WEB_LOG_LEVEL"}, vErr.Fields())
	}
}

func TestLoadReadsDotEnvWithLowestPrecedence(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(path, []byte("WEB_HTTP_ADDR=:7000\nWEB_LOG_LEVEL=warn\n"), 0o600))

	cfg, err := Load(WithEnvFile(path), WithoutSystemEnv())
	require.NoError(t, err)
	require.Equal(t, ":7000", cfg.Server.Addr)
	require.Equal(t, "warn", cfg.Log.Level)

	cfg, err = Load(WithEnvFile(path), WithoutSystemEnv(), WithEnvMap(map[string]string{"WEB_LOG_LEVEL": "error"}))
	require.NoError(t, err)
	require.Equal(t, "error", cfg.Log.Level, "explicit map overrides dotenv")
	require.Equal(t, ":7000", cfg.Server.Addr)
}

func TestLoadIgnoresMissingDotEnv(t *testing.T) {
	t.Parallel()

	cfg, err := Load(WithEnvFile(filepath.Join(t.TempDir(), "absent.env")), WithoutSystemEnv())
	require.NoError(t, err)
	require.Equal(t, ":8080", cfg.Server.Addr)
}
