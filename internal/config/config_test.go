package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	require.Equal(t, "0.0.0.0", cfg.Host)
	require.Equal(t, "8000", cfg.Port)
	require.Equal(t, "/tmp/whisper_api", cfg.TempDir)
	require.Equal(t, "base", cfg.ModelVariant)
	require.Equal(t, BackendOpenAI, cfg.Backend)
	require.False(t, cfg.InsecureSkipTLSVerify)
	require.Equal(t, 120, cfg.RateLimitPerMinute)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("WHISPER_API_PORT", "9000")
	t.Setenv("WHISPER_MODEL", "small")
	t.Setenv("WHISPER_BACKEND", BackendWhisperServer)
	t.Setenv("WHISPER_SERVER_URL", "http://gpu-box:8080")
	t.Setenv("WHISPER_INSECURE_SKIP_TLS_VERIFY", "true")
	t.Setenv("WHISPER_RATE_LIMIT", "10")

	cfg := Load()

	require.Equal(t, "9000", cfg.Port)
	require.Equal(t, "small", cfg.ModelVariant)
	require.Equal(t, BackendWhisperServer, cfg.Backend)
	require.Equal(t, "http://gpu-box:8080", cfg.WhisperServerURL)
	require.True(t, cfg.InsecureSkipTLSVerify)
	require.Equal(t, 10, cfg.RateLimitPerMinute)
}

func TestLoadIgnoresGarbageRateLimit(t *testing.T) {
	t.Setenv("WHISPER_RATE_LIMIT", "-5")
	require.Equal(t, 120, Load().RateLimitPerMinute)

	t.Setenv("WHISPER_RATE_LIMIT", "abc")
	require.Equal(t, 120, Load().RateLimitPerMinute)
}
