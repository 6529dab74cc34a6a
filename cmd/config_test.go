package cmd_test

import (
	"os"
	"path/filepath"
	"testing"

	"courierdesk/cmd"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var configKeys = []string{
	"ENV", "STORAGE_DRIVER", "SNAPSHOT_PATH",
	"DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD", "DB_NAME", "DB_SSLMODE",
	"BACKUP_DIR", "BACKUP_SCHEDULE", "REPORT_SCHEDULE",
}

// clearEnv unsets every config key for the duration of the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range configKeys {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := cmd.LoadConfig(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, cmd.DriverJSON, cfg.StorageDriver)
	assert.Equal(t, "data/BaseDeDatos.json", cfg.SnapshotPath)
	assert.Equal(t, "@hourly", cfg.BackupSchedule)
	assert.Equal(t, "@every 15m", cfg.ReportSchedule)
}

func TestLoadConfig_EnvFile(t *testing.T) {
	clearEnv(t)
	envFile := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(envFile, []byte(
		"STORAGE_DRIVER=postgres\nDB_HOST=db\nDB_PORT=6543\nDB_USER=desk\nDB_PASSWORD=secret\nDB_NAME=desk\n",
	), 0o600))

	cfg, err := cmd.LoadConfig(envFile)
	require.NoError(t, err)

	assert.Equal(t, cmd.DriverPostgres, cfg.StorageDriver)
	assert.Equal(t, 6543, cfg.DBPort)
	assert.Equal(t, "postgres://desk:secret@db:6543/desk?sslmode=disable", cfg.DSN())
}

func TestConfig_Validate(t *testing.T) {
	valid := cmd.Config{
		Env:            "production",
		StorageDriver:  cmd.DriverJSON,
		SnapshotPath:   "data/BaseDeDatos.json",
		DBSslMode:      "disable",
		BackupDir:      "data/backups",
		BackupSchedule: "0 * * * *",
		ReportSchedule: "*/15 * * * *",
	}
	require.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(*cmd.Config)
	}{
		{"unknown env", func(c *cmd.Config) { c.Env = "staging" }},
		{"unknown driver", func(c *cmd.Config) { c.StorageDriver = "sqlite" }},
		{"json without path", func(c *cmd.Config) { c.SnapshotPath = "" }},
		{"postgres without host", func(c *cmd.Config) {
			c.StorageDriver = cmd.DriverPostgres
			c.DBPort, c.DBUser, c.DBName = 5432, "desk", "desk"
		}},
		{"bad ssl mode", func(c *cmd.Config) { c.DBSslMode = "maybe" }},
		{"bad backup schedule", func(c *cmd.Config) { c.BackupSchedule = "every hour" }},
		{"missing report schedule", func(c *cmd.Config) { c.ReportSchedule = "" }},
		{"missing backup dir", func(c *cmd.Config) { c.BackupDir = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}
