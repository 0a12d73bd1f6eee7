package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnv(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		t.Setenv("SUI_RPC_URL", "https://fullnode.devnet.sui.io:443")
		t.Setenv("PORT", "")
		t.Setenv("SERVER_HOST", "")
		t.Setenv("LOG_OUTPUT_PATHS", "")

		cfg := FromEnv()
		assert.Equal(t, "3000", cfg.Server.Port)
		assert.Equal(t, "0.0.0.0", cfg.Server.Host)
		assert.Equal(t, "0.0.0.0:3000", cfg.Address())
		assert.Equal(t, "https://fullnode.devnet.sui.io:443", cfg.RPC.Endpoint)
		assert.Equal(t, []string{"stdout"}, cfg.Logging.OutputPaths)
		assert.NoError(t, cfg.Validate())
	})

	t.Run("Overrides", func(t *testing.T) {
		t.Setenv("SUI_RPC_URL", "  http://127.0.0.1:9000  ")
		t.Setenv("PORT", "8081")
		t.Setenv("SERVER_READ_TIMEOUT", "3s")
		t.Setenv("SERVER_IDLE_TIMEOUT", "not-a-duration")
		t.Setenv("LOG_OUTPUT_PATHS", "stdout, /tmp/api.log,")

		cfg := FromEnv()
		assert.Equal(t, "8081", cfg.Server.Port)
		assert.Equal(t, "http://127.0.0.1:9000", cfg.RPC.Endpoint)
		assert.Equal(t, 3*time.Second, cfg.Server.ReadTimeout)
		assert.Equal(t, 60*time.Second, cfg.Server.IdleTimeout)
		assert.Equal(t, []string{"stdout", "/tmp/api.log"}, cfg.Logging.OutputPaths)
	})
}

func TestValidate(t *testing.T) {
	t.Run("MissingRPCURL", func(t *testing.T) {
		t.Setenv("SUI_RPC_URL", "")

		err := FromEnv().Validate()
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrMissingRPCURL)
	})

	t.Run("BlankRPCURL", func(t *testing.T) {
		cfg := &Config{RPC: RPCConfig{Endpoint: "   "}}
		assert.ErrorIs(t, cfg.Validate(), ErrMissingRPCURL)
	})
}
