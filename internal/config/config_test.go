package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"BINANCE_API_KEY", "BINANCE_API_SECRET", "BINANCE_FUTURES_TESTNET", "BINANCE_HTTP_TIMEOUT",
		"LOG_LEVEL", "LOG_FILE", "DISCORD_TRADE_WEBHOOK", "DISCORD_ERROR_WEBHOOK",
	} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.True(t, cfg.Binance.UseTestnet)
	assert.Equal(t, 10*time.Second, cfg.Binance.HTTPTimeout)
	assert.Equal(t, "INFO", cfg.Log.Level)
	assert.Equal(t, "bot.log", cfg.Log.File)
	assert.ErrorIs(t, cfg.RequireCredentials(), ErrMissingCredentials)
}

func TestLoadConfig_FromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("BINANCE_API_KEY", "key")
	t.Setenv("BINANCE_API_SECRET", "secret")
	t.Setenv("BINANCE_FUTURES_TESTNET", "false")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "key", cfg.Binance.APIKey)
	assert.Equal(t, "secret", cfg.Binance.SecretKey)
	assert.False(t, cfg.Binance.UseTestnet)
	assert.Equal(t, "DEBUG", cfg.Log.Level)
	assert.NoError(t, cfg.RequireCredentials())
}

func TestLoadConfig_DotEnvFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("BINANCE_API_KEY=file-key\nBINANCE_API_SECRET=file-secret\n"), 0o600))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "file-key", cfg.Binance.APIKey)
	assert.Equal(t, "file-secret", cfg.Binance.SecretKey)

	// godotenv.Load가 설정한 값이 다음 테스트로 새지 않도록 정리
	os.Unsetenv("BINANCE_API_KEY")
	os.Unsetenv("BINANCE_API_SECRET")
}

func TestLoadConfig_InvalidValues(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{"잘못된 웹훅 URL", "DISCORD_TRADE_WEBHOOK", "not a url"},
		{"잘못된 에러 웹훅 URL", "DISCORD_ERROR_WEBHOOK", "hooks/only"},
		{"잘못된 타임아웃", "BINANCE_HTTP_TIMEOUT", "soon"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.val)

			_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.env"))
			assert.Error(t, err)
		})
	}
}

func TestLoadConfig_UnknownLogLevelIsKept(t *testing.T) {
	clearEnv(t)
	t.Setenv("LOG_LEVEL", "critical")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, "CRITICAL", cfg.Log.Level)
}

func TestLoadConfig_TestnetFlag(t *testing.T) {
	tests := []struct {
		val  string
		want bool
	}{
		{"true", true},
		{"TRUE", true},
		{" True ", true},
		{"false", false},
		{"1", false},
		{"yes", false},
		{"maybe", false},
	}

	for _, tt := range tests {
		t.Run(tt.val, func(t *testing.T) {
			clearEnv(t)
			t.Setenv("BINANCE_FUTURES_TESTNET", tt.val)

			cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.env"))
			require.NoError(t, err)
			assert.Equal(t, tt.want, cfg.Binance.UseTestnet)
		})
	}
}

func TestResolveTestnet(t *testing.T) {
	cfg := &Config{}
	cfg.Binance.UseTestnet = true

	assert.True(t, cfg.ResolveTestnet(nil))

	off := false
	assert.False(t, cfg.ResolveTestnet(&off))

	assert.Equal(t, TestnetBaseURL, BaseURL(true))
	assert.Equal(t, MainnetBaseURL, BaseURL(false))
}
