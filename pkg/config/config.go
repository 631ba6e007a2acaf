// Package config holds the process configuration.
//
// The configuration is parsed once at startup and passed by reference into
// the container; nothing reads the environment after Load returns.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"

	"github.com/quicksend/quicksend/pkg/errx"
)

// Config is the root process configuration.
type Config struct {
	Server ServerConfig
	Mailer MailerConfig
	OpenAI OpenAIConfig
	Notes  NotesConfig
}

// ServerConfig configures the HTTP server.
type ServerConfig struct {
	Port        string `env:"PORT" envDefault:"8080"`
	CORSOrigins string `env:"CORS_ORIGINS" envDefault:"*"`
}

// MailerConfig configures outbound email delivery.
type MailerConfig struct {
	// Provider selects the delivery backend: "smtp", "ses" or "console".
	Provider string `env:"MAILER_PROVIDER" envDefault:"smtp"`

	SMTPHost string `env:"SMTP_HOST" envDefault:"smtp.gmail.com"`
	SMTPPort int    `env:"SMTP_PORT" envDefault:"587"`
	SMTPUser string `env:"SMTP_USER"`
	SMTPPass string `env:"SMTP_PASS"`

	// From is the display identity; when empty a fallback is derived
	// from the SMTP account identity.
	From string `env:"MAIL_FROM"`

	AWSRegion string `env:"AWS_REGION" envDefault:"us-east-1"`
}

// HasCredentials reports whether both relay secrets are configured.
func (c MailerConfig) HasCredentials() bool {
	return c.SMTPUser != "" && c.SMTPPass != ""
}

// FromAddress returns the configured display identity or its fallback.
func (c MailerConfig) FromAddress() string {
	if c.From != "" {
		return c.From
	}
	return fmt.Sprintf("Quick Send <%s>", c.SMTPUser)
}

// OpenAIConfig configures the chat-completion endpoint.
type OpenAIConfig struct {
	APIKey      string  `env:"OPENAI_API_KEY"`
	Model       string  `env:"OPENAI_MODEL" envDefault:"gpt-4o-mini"`
	Temperature float32 `env:"OPENAI_TEMPERATURE" envDefault:"0.3"`
}

// NotesConfig configures release-notes generation.
type NotesConfig struct {
	// BannerURL is the banner image used when a request carries no override.
	BannerURL string `env:"NOTES_BANNER_URL" envDefault:"https://download.filomail.com/public/assets/20251215-180812.png"`
}

// Load parses the configuration from the environment.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, errx.Wrap(err, "failed to parse configuration from environment", errx.TypeInternal)
	}
	return cfg, nil
}
