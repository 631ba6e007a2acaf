package notifxconsole

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/quicksend/quicksend/pkg/logx"
	"github.com/quicksend/quicksend/pkg/notifx"
)

// ConsoleProvider prints emails to the terminal via logx. Intended for development and testing.
type ConsoleProvider struct{}

// NewConsoleProvider creates a new console email provider.
func NewConsoleProvider() *ConsoleProvider {
	return &ConsoleProvider{}
}

// SendEmail logs the email details instead of sending it.
func (p *ConsoleProvider) SendEmail(_ context.Context, msg notifx.EmailMessage, _ ...notifx.Option) (notifx.SendResult, error) {
	messageID := fmt.Sprintf("<%s@console>", uuid.NewString())

	logx.WithFields(logx.Fields{
		"from":       msg.From,
		"to":         strings.Join(msg.To, ", "),
		"subject":    msg.Subject,
		"message_id": messageID,
	}).Info("notifx/console: email sent (dev mode)")

	if msg.HTMLBody != "" {
		logx.Debugf("notifx/console: html body:\n%s", msg.HTMLBody)
	}

	return notifx.SendResult{
		MessageID: messageID,
		Response:  "console: logged, not delivered",
	}, nil
}
