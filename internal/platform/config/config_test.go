package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func env(kv map[string]string) func(string) (string, bool) {
	return func(k string) (string, bool) {
		v, ok := kv[k]
		return v, ok
	}
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadWithEnv(filepath.Join(t.TempDir(), "nope.toml"), env(nil))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, APIModeMock, cfg.Client.APIMode)
	assert.Equal(t, 10*time.Second, cfg.Client.Timeout.Duration)
	assert.True(t, cfg.Server.Envelope)
}

func TestLoad_FileThenEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[client]
api_mode = "remote"
base_url = "http://localhost:9000/api"
timeout = "3s"

[server]
addr = ":9000"
envelope = false
storage = "postgres"
dsn = "postgres://localhost/petw"

[log]
level = "debug"
format = "json"
`), 0o600))

	cfg, err := LoadWithEnv(path, env(map[string]string{
		"PORT":            "7070",
		"PETW_JWT_SECRET": "shh",
		"PETW_DEMO_MODE":  "false",
	}))
	require.NoError(t, err)

	assert.Equal(t, APIModeRemote, cfg.Client.APIMode)
	assert.Equal(t, 3*time.Second, cfg.Client.Timeout.Duration)
	assert.Equal(t, ":7070", cfg.Server.Addr)
	assert.False(t, cfg.Server.Envelope)
	assert.False(t, cfg.Server.DemoMode)
	assert.Equal(t, "shh", cfg.Server.JWTSecret)
	assert.Equal(t, "debug", cfg.LoggerOptions().Level.String())
}

func TestLoad_Invalid(t *testing.T) {
	_, err := LoadWithEnv("", env(map[string]string{"PETW_API_MODE": "remote"}))
	assert.Error(t, err)

	_, err = LoadWithEnv("", env(map[string]string{"PETW_STORAGE": "postgres"}))
	assert.Error(t, err)

	_, err = LoadWithEnv("", env(map[string]string{"PETW_ENVELOPE": "maybe"}))
	assert.Error(t, err)

	_, err = LoadWithEnv("", env(map[string]string{"PETW_API_TIMEOUT": "soon"}))
	assert.Error(t, err)
}
