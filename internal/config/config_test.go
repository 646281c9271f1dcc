package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.AppPort)
	assert.Equal(t, "3306", cfg.DBPort)
	assert.Equal(t, 10, cfg.PreviewRows)
	assert.Equal(t, 4, cfg.WorkerConcurrency)
	assert.Equal(t, 24*time.Hour, cfg.ProgressTTL)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("APP_PORT", "9090")
	t.Setenv("PREVIEW_ROWS", "25")
	t.Setenv("PROGRESS_TTL", "1h")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.AppPort)
	assert.Equal(t, 25, cfg.PreviewRows)
	assert.Equal(t, time.Hour, cfg.ProgressTTL)
}

func TestGetDSN(t *testing.T) {
	cfg := &Config{
		DBUsername: "user",
		DBPassword: "pass",
		DBHost:     "db",
		DBPort:     "3306",
		DBDatabase: "locacao",
	}
	assert.Equal(t, "user:pass@tcp(db:3306)/locacao?parseTime=true&loc=Local", cfg.GetDSN())
}
