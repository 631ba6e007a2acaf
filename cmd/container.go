// cmd/container.go
//
// Root composition root. Builds providers from the configuration and
// composes the two request pipelines. This is the only place that knows
// about ALL modules.
package main

import (
	"context"

	awsConfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ses"

	"github.com/quicksend/quicksend/pkg/config"
	"github.com/quicksend/quicksend/pkg/llm"
	"github.com/quicksend/quicksend/pkg/llm/llmopenai"
	"github.com/quicksend/quicksend/pkg/logx"
	"github.com/quicksend/quicksend/pkg/mailer"
	"github.com/quicksend/quicksend/pkg/notifx"
	"github.com/quicksend/quicksend/pkg/notifx/notifxconsole"
	"github.com/quicksend/quicksend/pkg/notifx/notifxses"
	"github.com/quicksend/quicksend/pkg/notifx/notifxsmtp"
	"github.com/quicksend/quicksend/pkg/relnotes"
)

// Container holds shared providers and composed module handlers.
type Container struct {
	Config *config.Config

	// Providers
	Notifier *notifx.Client
	LLM      llm.ChatModel

	// Modules
	MailerHandlers *mailer.Handlers
	NotesHandlers  *relnotes.Handlers
}

func NewContainer(cfg *config.Config) *Container {
	logx.Info("🔧 Initializing application container...")

	c := &Container{Config: cfg}

	c.initProviders()
	c.initModules()

	logx.Info("✅ Application container initialized")
	return c
}

// ---------------------------------------------------------------------------
// Providers — email delivery, chat completion
// ---------------------------------------------------------------------------

func (c *Container) initProviders() {
	switch c.Config.Mailer.Provider {
	case "smtp":
		if !c.Config.Mailer.HasCredentials() {
			logx.Warn("⚠️ SMTP credentials not configured; /api/send will reject requests")
		}
		c.Notifier = notifx.NewClient(notifxsmtp.NewSMTPProvider(
			c.Config.Mailer.SMTPHost,
			c.Config.Mailer.SMTPPort,
			c.Config.Mailer.SMTPUser,
			c.Config.Mailer.SMTPPass,
		))
		logx.Infof("  ✅ SMTP mail provider configured (%s:%d)", c.Config.Mailer.SMTPHost, c.Config.Mailer.SMTPPort)

	case "ses":
		awsCfg, err := awsConfig.LoadDefaultConfig(context.TODO(),
			awsConfig.WithRegion(c.Config.Mailer.AWSRegion))
		if err != nil {
			logx.Fatalf("Unable to load AWS SDK config: %v", err)
		}
		c.Notifier = notifx.NewClient(notifxses.NewSESProvider(
			ses.NewFromConfig(awsCfg),
			c.Config.Mailer.FromAddress(),
		))
		logx.Infof("  ✅ SES mail provider configured (region: %s)", c.Config.Mailer.AWSRegion)

	case "console":
		c.Notifier = notifx.NewClient(notifxconsole.NewConsoleProvider())
		logx.Info("  ✅ Console mail provider configured (dev mode)")

	default:
		logx.Fatalf("Unknown MAILER_PROVIDER: %s (use 'smtp', 'ses' or 'console')", c.Config.Mailer.Provider)
	}

	openAI := llmopenai.NewOpenAIProvider(c.Config.OpenAI.APIKey)
	if !openAI.HasAPIKey() {
		logx.Warn("⚠️ OPENAI_API_KEY not configured; /api/generate-notes will reject requests")
	}
	c.LLM = openAI
	logx.Infof("  ✅ OpenAI provider configured (model: %s)", c.Config.OpenAI.Model)
}

// ---------------------------------------------------------------------------
// Module composition — each pipeline wires itself
// ---------------------------------------------------------------------------

func (c *Container) initModules() {
	logx.Info("📦 Initializing modules...")

	c.MailerHandlers = mailer.NewHandlers(
		mailer.NewService(c.Config.Mailer, c.Notifier),
	)

	c.NotesHandlers = relnotes.NewHandlers(
		relnotes.NewService(c.LLM, c.Config.OpenAI, c.Config.Notes.BannerURL),
	)
}

// Cleanup releases resources on shutdown. The providers hold no open
// connections between requests, so there is nothing to close yet.
func (c *Container) Cleanup() {
	logx.Info("🧹 Cleaning up resources...")
	logx.Info("✅ Cleanup complete")
}
