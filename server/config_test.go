package server

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campushub/clubhub/internal/xtime"
)

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "clubhub.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
dev = true

[log]
level = "debug"
format = "json"

[server]
addr = ":9000"

[database]
path = "/tmp/test.db"

[auth]
session_ttl = "1h"
admins = ["dean"]
`), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.True(t, cfg.Dev)
	assert.Equal(t, slog.LevelDebug, cfg.Log.Level)
	assert.Equal(t, LogFormatJSON, cfg.Log.Format)
	assert.Equal(t, ":9000", cfg.Server.Addr)
	assert.Equal(t, "/tmp/test.db", cfg.Database.Path)
	assert.Equal(t, xtime.Duration(time.Hour), cfg.Auth.SessionTTL)
	assert.Equal(t, []string{"dean"}, cfg.Auth.Admins)

	// Unset keys keep their defaults.
	assert.Equal(t, "http://localhost:8085", cfg.Server.PublicURL)
	assert.Equal(t, 12, cfg.Auth.BcryptCost)
	assert.True(t, cfg.SeedSampleData)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err)
}
