package server

import (
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setEnv(t *testing.T, vars map[string]string) {
	t.Helper()
	t.Setenv("APP_ENV", "test")
	t.Setenv("ENV_PATH", filepath.Join(t.TempDir(), "missing.env"))
	for _, key := range []string{"PORT", "USE_HTTP2", "CORS_ORIGINS", "MAX_LINES", "MAX_INPUT_LENGTH", "FOLD_CASE", "LOG_LEVEL"} {
		t.Setenv(key, vars[key])
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	setEnv(t, nil)

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.False(t, cfg.UseHttp2)
	assert.Equal(t, []string{"*"}, cfg.CorsOrigins)
	assert.Equal(t, 100, cfg.MaxLines)
	assert.Equal(t, 1024, cfg.MaxInputLength)
	assert.False(t, cfg.FoldCase)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
}

func TestLoadConfig_FromEnv(t *testing.T) {
	setEnv(t, map[string]string{
		"PORT":             "9090",
		"USE_HTTP2":        "true",
		"CORS_ORIGINS":     "http://localhost:3000, ,http://example.com",
		"MAX_LINES":        "0",
		"MAX_INPUT_LENGTH": "256",
		"FOLD_CASE":        "true",
		"LOG_LEVEL":        "debug",
	})

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.True(t, cfg.UseHttp2)
	assert.Equal(t, []string{"http://localhost:3000", "http://example.com"}, cfg.CorsOrigins)
	assert.Equal(t, 0, cfg.MaxLines)
	assert.Equal(t, 256, cfg.MaxInputLength)
	assert.True(t, cfg.FoldCase)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		vars    map[string]string
		wantErr string
	}{
		{"port not a number", map[string]string{"PORT": "http"}, "port must be a number"},
		{"port out of range", map[string]string{"PORT": "70000"}, "between 1 and 65535"},
		{"negative max lines", map[string]string{"MAX_LINES": "-1"}, "MAX_LINES"},
		{"zero input length", map[string]string{"MAX_INPUT_LENGTH": "0"}, "MAX_INPUT_LENGTH"},
		{"bad bool", map[string]string{"FOLD_CASE": "vielleicht"}, "FOLD_CASE"},
		{"bad log level", map[string]string{"LOG_LEVEL": "loud"}, "LOG_LEVEL"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setEnv(t, tt.vars)

			_, err := LoadConfig()
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}
