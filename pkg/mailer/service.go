// Package mailer implements the send pipeline: validate the request,
// hand the message to the configured delivery provider, map the outcome.
package mailer

import (
	"context"

	"github.com/quicksend/quicksend/pkg/config"
	"github.com/quicksend/quicksend/pkg/logx"
	"github.com/quicksend/quicksend/pkg/notifx"
)

// Service owns one send pipeline. It is stateless; every request is
// validated and delivered independently.
type Service struct {
	cfg    config.MailerConfig
	client *notifx.Client
}

// NewService creates a new send service.
func NewService(cfg config.MailerConfig, client *notifx.Client) *Service {
	return &Service{
		cfg:    cfg,
		client: client,
	}
}

// Send validates the request and delivers exactly one message to the
// full validated recipient set. Missing relay credentials short-circuit
// before any validation or outbound call.
func (s *Service) Send(ctx context.Context, req SendRequest) (*SendOutcome, error) {
	if s.cfg.Provider == "smtp" && !s.cfg.HasCredentials() {
		return nil, mailerErrors.New(ErrMissingCredentials)
	}

	input, err := req.Validate()
	if err != nil {
		return nil, err
	}

	msg := notifx.EmailMessage{
		From:     s.cfg.FromAddress(),
		To:       input.Recipients,
		Subject:  input.Subject,
		HTMLBody: input.HTML,
	}

	result, err := s.client.SendEmail(ctx, msg, notifx.WithTags(map[string]string{"source": "quick-send"}))
	if err != nil {
		logx.WithError(err).WithField("recipients", len(input.Recipients)).Error("email delivery failed")
		return nil, mailerErrors.NewWithCause(ErrDeliveryFailed, err).
			WithDetail("detail", err.Error())
	}

	logx.WithFields(logx.Fields{
		"message_id": result.MessageID,
		"recipients": len(input.Recipients),
	}).Info("email sent")

	return &SendOutcome{
		MessageID:      result.MessageID,
		Response:       result.Response,
		RecipientCount: len(input.Recipients),
	}, nil
}
