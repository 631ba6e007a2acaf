// Package notifxsmtp delivers email through a third-party SMTP relay
// using STARTTLS with username/password authentication.
package notifxsmtp

import (
	"context"
	"fmt"
	netmail "net/mail"
	"strings"
	"time"

	"github.com/google/uuid"
	mail "github.com/xhit/go-simple-mail/v2"

	"github.com/quicksend/quicksend/pkg/notifx"
)

// SMTPProvider implements notifx.EmailSender against an SMTP relay.
// A fresh connection is opened per send; requests are independent and
// nothing is cached between them.
type SMTPProvider struct {
	host     string
	port     int
	username string
	password string

	connectTimeout time.Duration
	sendTimeout    time.Duration
}

// NewSMTPProvider creates a new SMTP email provider.
func NewSMTPProvider(host string, port int, username, password string) *SMTPProvider {
	return &SMTPProvider{
		host:           host,
		port:           port,
		username:       username,
		password:       password,
		connectTimeout: 10 * time.Second,
		sendTimeout:    30 * time.Second,
	}
}

// SendEmail sends a single message to the full recipient set in one
// relay exchange. The returned result carries the generated Message-ID
// and a summary of the relay's acceptance.
func (p *SMTPProvider) SendEmail(ctx context.Context, msg notifx.EmailMessage, opts ...notifx.Option) (notifx.SendResult, error) {
	if err := ctx.Err(); err != nil {
		return notifx.SendResult{}, smtpErrors.NewWithCause(ErrSendFailed, err)
	}

	server := mail.NewSMTPClient()
	server.Host = p.host
	server.Port = p.port
	server.Username = p.username
	server.Password = p.password
	server.Encryption = mail.EncryptionSTARTTLS
	server.ConnectTimeout = p.connectTimeout
	server.SendTimeout = p.sendTimeout
	server.KeepAlive = false

	smtpClient, err := server.Connect()
	if err != nil {
		return notifx.SendResult{}, smtpErrors.NewWithCause(ErrConnectFailed, err).
			WithDetail("host", p.host).
			WithDetail("port", p.port)
	}
	defer smtpClient.Close()

	// The relay does not assign an identifier we can read back, so the
	// Message-ID is generated here, as nodemailer-style senders do.
	messageID := generateMessageID(msg.From)

	email := mail.NewMSG()
	email.SetFrom(msg.From).
		AddTo(msg.To...).
		SetSubject(msg.Subject)

	if len(msg.CC) > 0 {
		email.AddCc(msg.CC...)
	}
	if len(msg.BCC) > 0 {
		email.AddBcc(msg.BCC...)
	}
	if msg.ReplyTo != "" {
		email.SetReplyTo(msg.ReplyTo)
	}
	email.AddHeader("Message-ID", messageID)

	if msg.HTMLBody != "" {
		email.SetBody(mail.TextHTML, msg.HTMLBody)
		if msg.TextBody != "" {
			email.AddAlternative(mail.TextPlain, msg.TextBody)
		}
	} else {
		email.SetBody(mail.TextPlain, msg.TextBody)
	}

	if email.Error != nil {
		return notifx.SendResult{}, smtpErrors.NewWithCause(ErrBuildMessage, email.Error)
	}

	if err := email.Send(smtpClient); err != nil {
		return notifx.SendResult{}, smtpErrors.NewWithCause(ErrSendFailed, err).
			WithDetail("to", msg.To).
			WithDetail("subject", msg.Subject)
	}

	return notifx.SendResult{
		MessageID: messageID,
		Response: fmt.Sprintf("accepted by %s:%d for %d recipient(s)",
			p.host, p.port, len(msg.To)),
	}, nil
}

// generateMessageID builds an RFC 5322 Message-ID using the sender's
// domain, falling back to localhost when the From identity is unparsable.
func generateMessageID(from string) string {
	domain := "localhost"
	if addr, err := netmail.ParseAddress(from); err == nil {
		if at := strings.LastIndex(addr.Address, "@"); at >= 0 {
			domain = addr.Address[at+1:]
		}
	}
	return fmt.Sprintf("<%s@%s>", uuid.NewString(), domain)
}
