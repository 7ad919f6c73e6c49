package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `
[server]
http_port = 9090

[database]
host = "db"
user = "rooms"
dbname = "rooms"

[engine]
timezone = "UTC"
default_resolution = 3600

[presentation]
default_policy = "plain"

[presentation.rooms]
"12" = "manned_split"

[reminders]
enabled = true
cron = "*/10 * * * *"
lead_minutes = 30
window_minutes = 10
`

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("JWT_SECRET", "jwt")

	cfg, err := Load(writeConfig(t, sample))
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, "/api/v1", cfg.Server.APIPrefix, "default kept")
	assert.Equal(t, "secret", cfg.Database.Password)
	assert.Equal(t, "jwt", cfg.Auth.JWTSecret)
	assert.Contains(t, cfg.Database.DSN(), "host=db port=5432 user=rooms password=secret dbname=rooms")

	assert.Equal(t, 3600, cfg.Engine.DefaultResolution)
	loc, err := cfg.Engine.Location()
	require.NoError(t, err)
	assert.Equal(t, "UTC", loc.String())

	assert.Equal(t, PolicyMannedSplit, cfg.Presentation.PolicyFor(12))
	assert.Equal(t, PolicyPlain, cfg.Presentation.PolicyFor(1))

	assert.Equal(t, 30.0, cfg.Reminders.Lead().Minutes())
	assert.Equal(t, 10.0, cfg.Reminders.Window().Minutes())
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "unknown policy", body: "[presentation]\ndefault_policy = \"fancy\""},
		{name: "bad timezone", body: "[engine]\ntimezone = \"Mars/Olympus\""},
		{name: "zero resolution", body: "[engine]\ndefault_resolution = 0"},
		{name: "reminders without cron", body: "[reminders]\nenabled = true\ncron = \"\""},
		{name: "redis without addr", body: "[redis]\nenabled = true\naddr = \"\""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	assert.Error(t, err)
}
