package cmd_test

import (
	"log/slog"
	"testing"

	"automfg/cmd"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	for _, key := range []string{
		"HTTP_PORT", "SEQUENCE_BACKEND", "LEDGER_BACKEND", "RELAY_BATCH_SIZE",
		"RELAY_MAX_ATTEMPTS", "SHORTAGE_PARTS", "LOG_LEVEL", "FACILITY_CODE",
	} {
		t.Setenv(key, "")
	}

	cfg, err := cmd.LoadConfig()

	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.HTTPPort)
	assert.Equal(t, cmd.BackendPostgres, cfg.SequenceBackend)
	assert.Equal(t, cmd.BackendPostgres, cfg.LedgerBackend)
	assert.Equal(t, 100, cfg.RelayBatchSize)
	assert.Equal(t, 10, cfg.RelayMaxAttempts)
	assert.Equal(t, "F01", cfg.FacilityCode)
	assert.Empty(t, cfg.ShortageParts)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
}

func TestLoadConfig_FromEnvironment(t *testing.T) {
	t.Setenv("SEQUENCE_BACKEND", "Redis")
	t.Setenv("LEDGER_BACKEND", "dynamodb")
	t.Setenv("RELAY_BATCH_SIZE", "25")
	t.Setenv("SHORTAGE_PARTS", "BAT-75KWH, ,MTR-DUAL")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("DB_HOST", "db")
	t.Setenv("DB_PASSWORD", "secret")

	cfg, err := cmd.LoadConfig()

	require.NoError(t, err)
	assert.Equal(t, cmd.BackendRedis, cfg.SequenceBackend)
	assert.Equal(t, cmd.BackendDynamoDB, cfg.LedgerBackend)
	assert.Equal(t, 25, cfg.RelayBatchSize)
	assert.Equal(t, []string{"BAT-75KWH", "MTR-DUAL"}, cfg.ShortageParts)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
	assert.Contains(t, cfg.DSN(), "host=db ")
	assert.Contains(t, cfg.DSN(), "password=secret ")
}

func TestLoadConfig_Invalid(t *testing.T) {
	t.Setenv("SEQUENCE_BACKEND", "etcd")
	t.Setenv("LEDGER_BACKEND", "")
	t.Setenv("RELAY_MAX_ATTEMPTS", "0")
	t.Setenv("LOG_LEVEL", "loud")

	_, err := cmd.LoadConfig()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "SEQUENCE_BACKEND")
	assert.Contains(t, err.Error(), "RELAY_MAX_ATTEMPTS")
	assert.Contains(t, err.Error(), "LOG_LEVEL")
	assert.NotContains(t, err.Error(), "LEDGER_BACKEND")
}
