package cmd_test

import (
	"os"
	"path/filepath"
	"testing"

	"ordertracker/cmd"
	"ordertracker/internal/adapters/out/twilio"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("OPERATOR_ADDRESS", "+15550000")

	cfg, err := cmd.LoadConfig(filepath.Join(t.TempDir(), "missing.env"))

	require.NoError(t, err)
	assert.Equal(t, "3000", cfg.HTTPPort)
	assert.Equal(t, cmd.StoreDriverPostgres, cfg.StoreDriver)
	assert.Equal(t, "0 9 * * *", cfg.SweepSchedule)
	assert.Equal(t, "UTC", cfg.SweepLocation.String())
	assert.Equal(t, twilio.ChannelWhatsApp, cfg.TwilioChannel)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadConfig_EnvironmentOverrides(t *testing.T) {
	t.Setenv("STORE_DRIVER", "Memory")
	t.Setenv("HTTP_PORT", "8081")
	t.Setenv("OPERATOR_ADDRESS", "+15550000")
	t.Setenv("TWILIO_CHANNEL", "sms")

	cfg, err := cmd.LoadConfig("")

	require.NoError(t, err)
	assert.Equal(t, cmd.StoreDriverMemory, cfg.StoreDriver)
	assert.Equal(t, "8081", cfg.HTTPPort)
	assert.Equal(t, "+15550000", cfg.OperatorAddress)
	assert.Equal(t, twilio.ChannelSMS, cfg.TwilioChannel)
}

func TestLoadConfig_EnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("MONGO_DATABASE=from_file\n"), 0o600))
	t.Setenv("OPERATOR_ADDRESS", "+15550000")
	t.Setenv("MONGO_DATABASE", "")
	require.NoError(t, os.Unsetenv("MONGO_DATABASE"))

	cfg, err := cmd.LoadConfig(path)

	require.NoError(t, err)
	assert.Equal(t, "from_file", cfg.MongoDatabase)
}

func TestLoadConfig_Invalid(t *testing.T) {
	testCases := []struct {
		name string
		key  string
		val  string
	}{
		{"driver", "STORE_DRIVER", "sqlite"},
		{"channel", "TWILIO_CHANNEL", "fax"},
		{"time zone", "SWEEP_TIMEZONE", "Mars/Olympus"},
		{"operator address", "OPERATOR_ADDRESS", "  "},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv("OPERATOR_ADDRESS", "+15550000")
			t.Setenv(tc.key, tc.val)

			_, err := cmd.LoadConfig("")

			require.Error(t, err)
		})
	}
}

func TestLoadConfig_RequiresOperatorAddress(t *testing.T) {
	t.Setenv("OPERATOR_ADDRESS", "")

	_, err := cmd.LoadConfig("")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "OPERATOR_ADDRESS")
}
