package config

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("GO_ENV", "production")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.Environment)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "localhost:8080", cfg.APIBaseURL)
	assert.Equal(t, 10*time.Second, cfg.RequestTimeout)
	assert.Equal(t, "preview", cfg.Mail.Provider)
	assert.Equal(t, "plann.er team", cfg.Mail.FromName)
	assert.Equal(t, "oi@plann.er", cfg.Mail.FromAddress)
	assert.Equal(t, "http://localhost:8080", cfg.Mail.PreviewBaseURL)
	assert.True(t, cfg.IsProduction())
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("GO_ENV", "production")
	t.Setenv("PORT", "3333")
	t.Setenv("API_BASE_URL", "api.plann.er")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://localhost:5173,https://plann.er")
	t.Setenv("MAIL_PROVIDER", "smtp")
	t.Setenv("SMTP_HOST", "mail.local")
	t.Setenv("SMTP_PORT", "1025")
	t.Setenv("DISPLAY_TIMEZONE", "America/Sao_Paulo")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "3333", cfg.Port)
	assert.Equal(t, "api.plann.er", cfg.APIBaseURL)
	assert.Equal(t, []string{"http://localhost:5173", "https://plann.er"}, cfg.AllowedOrigins)
	assert.Equal(t, "smtp", cfg.Mail.Provider)
	assert.Equal(t, "mail.local", cfg.Mail.SMTPHost)
	assert.Equal(t, 1025, cfg.Mail.SMTPPort)
	assert.Equal(t, "http://localhost:3333", cfg.Mail.PreviewBaseURL)

	loc, err := cfg.Location()
	require.NoError(t, err)
	assert.Equal(t, "America/Sao_Paulo", loc.String())
}

func TestLoad_InvalidValues(t *testing.T) {
	t.Run("bad timezone", func(t *testing.T) {
		t.Setenv("GO_ENV", "production")
		t.Setenv("DISPLAY_TIMEZONE", "Mars/Olympus")
		_, err := Load()
		require.Error(t, err)
	})
	t.Run("bad duration", func(t *testing.T) {
		t.Setenv("GO_ENV", "production")
		t.Setenv("REQUEST_TIMEOUT", "soon")
		_, err := Load()
		require.Error(t, err)
	})
}

func TestNewLogger_Levels(t *testing.T) {
	ctx := context.Background()
	tests := []struct {
		level   string
		enabled slog.Level
		hidden  slog.Level
	}{
		{level: "debug", enabled: slog.LevelDebug},
		{level: "info", enabled: slog.LevelInfo, hidden: slog.LevelDebug},
		{level: "warn", enabled: slog.LevelWarn, hidden: slog.LevelInfo},
		{level: "error", enabled: slog.LevelError, hidden: slog.LevelWarn},
		{level: "", enabled: slog.LevelInfo, hidden: slog.LevelDebug},
	}
	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			logger := NewLogger(&Config{LogLevel: tt.level, Environment: "production"})
			assert.True(t, logger.Enabled(ctx, tt.enabled))
			if tt.level != "debug" {
				assert.False(t, logger.Enabled(ctx, tt.hidden))
			}
		})
	}
}
