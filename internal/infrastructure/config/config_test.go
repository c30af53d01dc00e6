package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/vbalan/bankcore/internal/infrastructure/config"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	require.Equal(t, "8080", cfg.HTTPPort)
	require.Equal(t, "100000000", cfg.TransferCeiling)
	require.Equal(t, "0", cfg.CreditFloor)
	require.Equal(t, 24*time.Hour, cfg.IdempotencyTTL)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://example")
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("TRANSFER_CEILING", "5000")
	t.Setenv("CREDIT_FLOOR", "-1000")
	t.Setenv("NOTIFICATION_URL", "https://hooks.example.com/transfers")
	t.Setenv("NOTIFICATION_TIMEOUT", "2s")

	cfg, err := config.Load()
	require.NoError(t, err)

	require.Equal(t, "postgres://example", cfg.DatabaseURL)
	require.Equal(t, "9090", cfg.HTTPPort)
	require.Equal(t, "5000", cfg.TransferCeiling)
	require.Equal(t, "-1000", cfg.CreditFloor)
	require.Equal(t, "https://hooks.example.com/transfers", cfg.NotificationURL)
	require.Equal(t, 2*time.Second, cfg.NotificationTimeout)
}
