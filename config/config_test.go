package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("RESEND_API_KEY", "")
	t.Setenv("CONTACT_TO_EMAIL", "")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "onboarding@resend.dev", cfg.ContactFromEmail)
	assert.Equal(t, "Portfolio Contact", cfg.ContactFromName)
	assert.Equal(t, "New Message from Portfolio", cfg.ContactSubject)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "portfolio-site", cfg.Telemetry.ServiceName)
	assert.Equal(t, "portfolio.yaml", cfg.ContentS3.Key)
	assert.Empty(t, cfg.ContentS3.Bucket)
	assert.False(t, cfg.IsProduction())
}

func TestLoadConfigFromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("APP_ENV", "Production")
	t.Setenv("RESEND_API_KEY", "re_test")
	t.Setenv("CONTACT_TO_EMAIL", "owner@example.com")
	t.Setenv("ALLOWED_ORIGINS", "https://me.dev/, https://www.me.dev")
	t.Setenv("LOG_MAX_BACKUPS", "7")
	t.Setenv("SITE_CONTENT_S3_BUCKET", "portfolio-content")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.Port)
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "re_test", cfg.ResendAPIKey)
	assert.Equal(t, "owner@example.com", cfg.ContactEmailTo)
	assert.Equal(t, []string{"https://me.dev", "https://www.me.dev"}, cfg.AllowedOrigins)
	assert.Equal(t, 7, cfg.Log.MaxBackups)
	assert.Equal(t, "portfolio-content", cfg.ContentS3.Bucket)
}

func TestContactSender(t *testing.T) {
	cfg := &Config{ContactFromName: "Portfolio Contact", ContactFromEmail: "onboarding@resend.dev"}
	assert.Equal(t, "Portfolio Contact <onboarding@resend.dev>", cfg.ContactSender())

	cfg.ContactFromName = ""
	assert.Equal(t, "onboarding@resend.dev", cfg.ContactSender())
}
