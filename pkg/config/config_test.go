package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quicksend/quicksend/pkg/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "*", cfg.Server.CORSOrigins)
	assert.Equal(t, "smtp", cfg.Mailer.Provider)
	assert.Equal(t, "smtp.gmail.com", cfg.Mailer.SMTPHost)
	assert.Equal(t, 587, cfg.Mailer.SMTPPort)
	assert.Equal(t, "gpt-4o-mini", cfg.OpenAI.Model)
	assert.Equal(t, float32(0.3), cfg.OpenAI.Temperature)
	assert.NotEmpty(t, cfg.Notes.BannerURL)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("MAILER_PROVIDER", "ses")
	t.Setenv("SMTP_PORT", "2525")
	t.Setenv("OPENAI_TEMPERATURE", "0.7")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "ses", cfg.Mailer.Provider)
	assert.Equal(t, 2525, cfg.Mailer.SMTPPort)
	assert.Equal(t, float32(0.7), cfg.OpenAI.Temperature)
}

func TestMailerConfig_HasCredentials(t *testing.T) {
	cfg := config.MailerConfig{}
	assert.False(t, cfg.HasCredentials())

	cfg.SMTPUser = "relay@example.com"
	assert.False(t, cfg.HasCredentials())

	cfg.SMTPPass = "secret"
	assert.True(t, cfg.HasCredentials())
}

func TestMailerConfig_FromAddress(t *testing.T) {
	cfg := config.MailerConfig{SMTPUser: "relay@example.com"}
	assert.Equal(t, "Quick Send <relay@example.com>", cfg.FromAddress())

	cfg.From = "Release Team <releases@example.com>"
	assert.Equal(t, "Release Team <releases@example.com>", cfg.FromAddress())
}
