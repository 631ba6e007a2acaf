package notifxsmtp

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quicksend/quicksend/pkg/errx"
	"github.com/quicksend/quicksend/pkg/notifx"
)

func TestGenerateMessageID(t *testing.T) {
	tests := []struct {
		name       string
		from       string
		wantDomain string
	}{
		{"bare address", "sender@example.com", "example.com"},
		{"display name", "Quick Send <sender@example.com>", "example.com"},
		{"unparsable", "not an address", "localhost"},
		{"empty", "", "localhost"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id := generateMessageID(tt.from)

			assert.True(t, strings.HasPrefix(id, "<"))
			assert.True(t, strings.HasSuffix(id, "@"+tt.wantDomain+">"))
		})
	}
}

func TestGenerateMessageID_Unique(t *testing.T) {
	a := generateMessageID("sender@example.com")
	b := generateMessageID("sender@example.com")
	assert.NotEqual(t, a, b)
}

func TestSendEmail_CancelledContext(t *testing.T) {
	provider := NewSMTPProvider("smtp.example.com", 587, "user", "pass")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := provider.SendEmail(ctx, notifx.EmailMessage{
		From:     "sender@example.com",
		To:       []string{"a@x.com"},
		HTMLBody: "<p>hi</p>",
	})

	var e *errx.Error
	require.True(t, errx.As(err, &e))
	assert.Equal(t, "NOTIFX_SMTP_SEND_FAILED", e.Code)
}
