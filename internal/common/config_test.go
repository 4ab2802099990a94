package common

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefaultConfig(t *testing.T) {
	config := NewDefaultConfig()

	assert.Equal(t, "development", config.Environment)
	assert.Equal(t, 3002, config.Server.Port)
	assert.Equal(t, "data", config.Storage.Path)
	assert.Equal(t, 20, config.Upload.MaxSizeMB)
	assert.Equal(t, "info", config.Logging.Level)
	assert.False(t, config.IsProduction())
}

func TestLoadConfig_MissingFileUsesDefaults(t *testing.T) {
	config, err := LoadConfig(filepath.Join(t.TempDir(), "absent.toml"))
	require.NoError(t, err)
	assert.Equal(t, 3002, config.Server.Port)
}

func TestLoadConfig_FileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notegen.toml")
	content := `
environment = "production"

[server]
port = 8080

[logging]
level = "debug"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	config, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "production", config.Environment)
	assert.Equal(t, 8080, config.Server.Port)
	assert.Equal(t, "debug", config.Logging.Level)
	// Untouched sections keep defaults.
	assert.Equal(t, "data", config.Storage.Path)
	assert.True(t, config.IsProduction())
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("NOTEGEN_PORT", "9090")
	t.Setenv("NOTEGEN_DATA_DIR", "/tmp/notegen-data")
	t.Setenv("NOTEGEN_LOG_LEVEL", "warn")

	config, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 9090, config.Server.Port)
	assert.Equal(t, "/tmp/notegen-data", config.Storage.Path)
	assert.Equal(t, "warn", config.Logging.Level)
}

func TestLoadConfig_BadPortEnvIgnored(t *testing.T) {
	t.Setenv("NOTEGEN_PORT", "not-a-port")

	config, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, 3002, config.Server.Port)
}
