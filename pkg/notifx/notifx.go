// Package notifx provides a provider-agnostic email delivery abstraction.
// Concrete transports (SMTP relay, SES, console) live in subpackages.
package notifx

import (
	"context"
)

// EmailSender delivers a single email. One call produces exactly one
// outbound message to the full recipient set; there is no per-recipient
// fan-out and no retry.
type EmailSender interface {
	SendEmail(ctx context.Context, msg EmailMessage, opts ...Option) (SendResult, error)
}

// Client is the main entry point for sending notifications.
type Client struct {
	provider EmailSender
}

// NewClient creates a new notification client.
func NewClient(provider EmailSender) *Client {
	return &Client{provider: provider}
}

// SendEmail sends an email through the configured provider.
func (c *Client) SendEmail(ctx context.Context, msg EmailMessage, opts ...Option) (SendResult, error) {
	if c.provider == nil {
		return SendResult{}, notifxErrors.New(ErrNoProvider)
	}
	if len(msg.To) == 0 {
		return SendResult{}, notifxErrors.New(ErrInvalidMessage).WithDetail("reason", "no recipients")
	}
	if msg.HTMLBody == "" && msg.TextBody == "" {
		return SendResult{}, notifxErrors.New(ErrInvalidMessage).WithDetail("reason", "empty body")
	}
	return c.provider.SendEmail(ctx, msg, opts...)
}
