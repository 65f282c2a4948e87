package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"ADMIN_PASSWORD", "ADMIN_PASSWORD_HASH", "REDIS_URL", "DATABASE_DSN", "RESEND_API_KEY", "STORAGE_BACKEND"} {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, `
[admin]
secret = "s3cret"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.Equal(t, StorageMemory, cfg.Storage.Backend)
	assert.Equal(t, "oasis", cfg.Storage.KeyPrefix)
	assert.Equal(t, "America/New_York", cfg.Business.Timezone)
	assert.Equal(t, NotifierLog, cfg.Notifications.Provider)
	assert.Equal(t, 3, cfg.Notifications.MaxAttempts)
	assert.Equal(t, int64(3000), cfg.Storage.OperationTimeout().Milliseconds())
}

func TestLoad_EnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("ADMIN_PASSWORD", "from-env")
	t.Setenv("STORAGE_BACKEND", "redis")
	t.Setenv("REDIS_URL", "redis://localhost:6379/2")

	path := writeConfig(t, `
[storage]
backend = "memory"

[admin]
secret = "from-file"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.Admin.Secret)
	assert.Equal(t, StorageRedis, cfg.Storage.Backend)
	assert.Equal(t, "redis://localhost:6379/2", cfg.Redis.URL)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	assert.ErrorIs(t, err, ErrReadConfig)
}

func TestValidate(t *testing.T) {
	clearEnv(t)

	tests := []struct {
		name    string
		content string
	}{
		{
			name:    "no admin secret",
			content: ``,
		},
		{
			name: "unknown backend",
			content: `
[storage]
backend = "etcd"
[admin]
secret = "x"
`,
		},
		{
			name: "unknown timezone",
			content: `
[admin]
secret = "x"
[business]
timezone = "Mars/Olympus"
`,
		},
		{
			name: "resend without key",
			content: `
[admin]
secret = "x"
[notifications]
provider = "resend"
from = "Oasis <hello@example.com>"
`,
		},
		{
			name: "kafka without brokers",
			content: `
[admin]
secret = "x"
[notifications]
provider = "kafka"
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestDatabaseConfig_DSN(t *testing.T) {
	d := DatabaseConfig{Host: "db", Port: 5432, User: "oasis", Password: "pw", DBName: "oasis", SSLMode: "disable"}
	assert.Equal(t, "host=db port=5432 user=oasis password=pw dbname=oasis sslmode=disable", d.DSN())

	d.URL = "postgres://oasis:pw@db/oasis"
	assert.Equal(t, "postgres://oasis:pw@db/oasis", d.DSN())
}

func TestNotificationsConfig_DispatchTimeout(t *testing.T) {
	n := NotificationsConfig{Timeout: 10, MaxAttempts: 3, BackoffMs: 500}
	// 3 попытки по 10s и паузы 0.5s + 1s
	assert.Equal(t, 31500*time.Millisecond, n.DispatchTimeout())

	n = NotificationsConfig{Timeout: 5, MaxAttempts: 1, BackoffMs: 500}
	assert.Equal(t, 5*time.Second, n.DispatchTimeout())

	n = NotificationsConfig{Timeout: 5, BackoffMs: 500}
	assert.Equal(t, 5*time.Second, n.DispatchTimeout())
}
