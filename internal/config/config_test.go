package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_ValidJSON(t *testing.T) {
	// Create temp config file
	content := `{
		"orientation": "landscape",
		"max_pages": 5,
		"achievement_item_height": 40,
		"log_level": "debug",
		"log_json": true,
		"port": 9090
	}`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "landscape", cfg.Orientation)
	assert.Equal(t, 5, cfg.MaxPages)
	assert.Equal(t, 40.0, cfg.AchievementItemHeight)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.True(t, cfg.LogJSON)
	assert.Equal(t, 9090, cfg.Port)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	content := `{ invalid json }`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to parse config JSON")
}

func TestLoadConfig_FileNotFound(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/path/config.json")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	cfg, err := LoadConfig("")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "config path is empty")
}

func TestFromEnv(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/cv")
	t.Setenv("PORT", "7000")
	t.Setenv("LOG_LEVEL", "warn")

	cfg := FromEnv()
	assert.Equal(t, "postgres://localhost/cv", cfg.DatabaseURL)
	assert.Equal(t, 7000, cfg.Port)
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestFromEnv_BadPort(t *testing.T) {
	t.Setenv("PORT", "not-a-number")
	assert.Zero(t, FromEnv().Port)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{"valid", Config{Orientation: "portrait", MaxPages: 10, Port: 8080, LogLevel: "info"}, ""},
		{"empty", Config{}, ""},
		{"bad orientation", Config{Orientation: "diagonal"}, "orientation"},
		{"negative max pages", Config{MaxPages: -1}, "max_pages"},
		{"negative achievement height", Config{AchievementItemHeight: -5}, "achievement_item_height"},
		{"port out of range", Config{Port: 70000}, "port"},
		{"unknown log level", Config{LogLevel: "chatty"}, "log_level"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestMergeWithDefaults(t *testing.T) {
	defaults := Config{
		Orientation: "landscape",
		MaxPages:    8,
		DatabaseURL: "postgres://default",
		Port:        9000,
	}

	partial := Config{
		MaxPages: 3,
		LogLevel: "debug",
	}

	merged := partial.MergeWithDefaults(defaults)

	// Custom values should be preserved
	assert.Equal(t, 3, merged.MaxPages)
	assert.Equal(t, "debug", merged.LogLevel)

	// Default values should fill in empty fields
	assert.Equal(t, "landscape", merged.Orientation)
	assert.Equal(t, "postgres://default", merged.DatabaseURL)
	assert.Equal(t, 9000, merged.Port)
}

func TestMergeWithDefaults_EmptyDefaults(t *testing.T) {
	cfg := Config{Orientation: "landscape"}

	merged := cfg.MergeWithDefaults(Config{})

	assert.Equal(t, "landscape", merged.Orientation)
	assert.Equal(t, DefaultLogLevel, merged.LogLevel)
	assert.Equal(t, DefaultMaxPages, merged.MaxPages)
	assert.Equal(t, DefaultPort, merged.Port)
	assert.Zero(t, merged.AchievementItemHeight)
}
