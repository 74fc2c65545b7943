package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, ":8080", c.ListenAddr)
	assert.Equal(t, "secretKey", c.SecretKey)
	assert.Equal(t, 1*time.Minute, c.AccessTokenValidityDuration)
	assert.Equal(t, 24*time.Hour, c.RefreshTokenValidityDuration)
	assert.Equal(t, "info", c.LogLevel)
}

func TestLoadConfig_NoArgs(t *testing.T) {
	cfg, err := loadConfig(nil)
	require.NoError(t, err)

	var want Config
	want.LoadDefaults()
	assert.Empty(t, cmp.Diff(&want, cfg))
}

func TestLoadConfig_Flags(t *testing.T) {
	cfg, err := loadConfig([]string{"-a", "127.0.0.1:9090", "-s", "secret", "-t", "30s", "-r", "2h", "-l", "debug", "-unknown", "x"})
	require.NoError(t, err)

	assert.Empty(t, cmp.Diff(&Config{
		ListenAddr:                   "127.0.0.1:9090",
		SecretKey:                    "secret",
		AccessTokenValidityDuration:  30 * time.Second,
		RefreshTokenValidityDuration: 2 * time.Hour,
		LogLevel:                     "debug",
	}, cfg))
}

func TestLoadConfig_BadDurationFlag(t *testing.T) {
	_, err := loadConfig([]string{"-t", "soon"})
	require.Error(t, err)
}

func TestLoadConfig_JSONFile(t *testing.T) {
	path := writeTemp(t, "dev.json", `{
		"listen_addr": "localhost:9000",
		"secret_key": "json-secret",
		"access_token_validity_duration": "10s",
		"refresh_token_validity_duration": 3600000000000
	}`)

	cfg, err := loadConfig([]string{"-c", path})
	require.NoError(t, err)

	assert.Equal(t, "localhost:9000", cfg.ListenAddr)
	assert.Equal(t, "json-secret", cfg.SecretKey)
	assert.Equal(t, 10*time.Second, cfg.AccessTokenValidityDuration)
	assert.Equal(t, time.Hour, cfg.RefreshTokenValidityDuration)
	assert.Equal(t, "info", cfg.LogLevel, "fields missing from the file keep defaults")
}

func TestLoadConfig_YAMLFile(t *testing.T) {
	path := writeTemp(t, "dev.yaml", "listen_addr: \":7000\"\naccess_token_validity_duration: 5s\nlog_level: warn\n")

	cfg, err := loadConfig([]string{"--config=" + path})
	require.NoError(t, err)

	assert.Equal(t, ":7000", cfg.ListenAddr)
	assert.Equal(t, 5*time.Second, cfg.AccessTokenValidityDuration)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, "secretKey", cfg.SecretKey)
}

func TestLoadConfig_FlagsOverrideFile(t *testing.T) {
	path := writeTemp(t, "dev.yml", "listen_addr: \":7000\"\nsecret_key: from-file\n")

	cfg, err := loadConfig([]string{"-c", path, "-a", ":7001"})
	require.NoError(t, err)

	assert.Equal(t, ":7001", cfg.ListenAddr)
	assert.Equal(t, "from-file", cfg.SecretKey)
}

func TestLoadConfig_FileErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := loadConfig([]string{"-c", filepath.Join(t.TempDir(), "nope.json")})
		require.Error(t, err)
	})

	t.Run("invalid json", func(t *testing.T) {
		path := writeTemp(t, "bad.json", `{ this is not valid json`)
		_, err := loadConfig([]string{"-c", path})
		require.Error(t, err)
	})

	t.Run("invalid yaml duration", func(t *testing.T) {
		path := writeTemp(t, "bad.yaml", "access_token_validity_duration: soon\n")
		_, err := loadConfig([]string{"-c", path})
		require.Error(t, err)
	})
}
