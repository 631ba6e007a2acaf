package mailer_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quicksend/quicksend/pkg/errx"
	"github.com/quicksend/quicksend/pkg/mailer"
)

func TestIsEmail(t *testing.T) {
	valid := []string{
		"a@x.com",
		"user.name+tag@example.co.uk",
		"漢字@example.com",
	}
	for _, v := range valid {
		assert.True(t, mailer.IsEmail(v), "expected %q to be accepted", v)
	}

	invalid := []string{
		"",
		"not-an-email",
		"missing@dot",
		"two@@x.com",
		"spaces in@x.com",
		"@x.com",
		"a@",
	}
	for _, v := range invalid {
		assert.False(t, mailer.IsEmail(v), "expected %q to be rejected", v)
	}
}

func TestValidate_FiltersInvalidArrayEntries(t *testing.T) {
	req := mailer.SendRequest{
		To:   json.RawMessage(`["a@x.com", "not-an-email", "b@x.com"]`),
		HTML: json.RawMessage(`"<p>hi</p>"`),
	}

	input, err := req.Validate()
	require.NoError(t, err)
	assert.Equal(t, []string{"a@x.com", "b@x.com"}, input.Recipients)
}

func TestValidate_DropsNonStringArrayEntries(t *testing.T) {
	req := mailer.SendRequest{
		To:   json.RawMessage(`["a@x.com", 42, null, {"email":"b@x.com"}]`),
		HTML: json.RawMessage(`"<p>hi</p>"`),
	}

	input, err := req.Validate()
	require.NoError(t, err)
	assert.Equal(t, []string{"a@x.com"}, input.Recipients)
}

func TestValidate_EmptyRecipientList(t *testing.T) {
	req := mailer.SendRequest{
		To:   json.RawMessage(`[]`),
		HTML: json.RawMessage(`"<p>hi</p>"`),
	}

	_, err := req.Validate()
	require.Error(t, err)

	var e *errx.Error
	require.True(t, errx.As(err, &e))
	assert.Equal(t, "MAILER_NO_VALID_RECIPIENT", e.Code)
	assert.Equal(t, 400, e.HTTPStatus)
}

func TestValidate_SingleStringRecipient(t *testing.T) {
	req := mailer.SendRequest{
		To:   json.RawMessage(`"a@x.com"`),
		HTML: json.RawMessage(`"<p>hi</p>"`),
	}

	input, err := req.Validate()
	require.NoError(t, err)
	assert.Equal(t, []string{"a@x.com"}, input.Recipients)
}

func TestValidate_SingleInvalidStringIsAllOrNothing(t *testing.T) {
	req := mailer.SendRequest{
		To:   json.RawMessage(`"not-an-email"`),
		HTML: json.RawMessage(`"<p>hi</p>"`),
	}

	_, err := req.Validate()
	var e *errx.Error
	require.True(t, errx.As(err, &e))
	assert.Equal(t, "MAILER_NO_VALID_RECIPIENT", e.Code)
}

func TestValidate_MissingHTML(t *testing.T) {
	tests := []struct {
		name string
		html json.RawMessage
	}{
		{"absent", nil},
		{"empty string", json.RawMessage(`""`)},
		{"non-string number", json.RawMessage(`42`)},
		{"non-string object", json.RawMessage(`{"body":"<p>hi</p>"}`)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := mailer.SendRequest{
				To:   json.RawMessage(`["a@x.com"]`),
				HTML: tt.html,
			}

			_, err := req.Validate()
			var e *errx.Error
			require.True(t, errx.As(err, &e))
			assert.Equal(t, "MAILER_MISSING_HTML", e.Code)
		})
	}
}

func TestValidate_MissingHTMLWinsOverBadRecipients(t *testing.T) {
	req := mailer.SendRequest{
		To: json.RawMessage(`[]`),
	}

	_, err := req.Validate()
	var e *errx.Error
	require.True(t, errx.As(err, &e))
	assert.Equal(t, "MAILER_MISSING_HTML", e.Code)
}

func TestValidate_SubjectFallback(t *testing.T) {
	req := mailer.SendRequest{
		To:   json.RawMessage(`"a@x.com"`),
		HTML: json.RawMessage(`"<p>hi</p>"`),
	}

	input, err := req.Validate()
	require.NoError(t, err)
	assert.Equal(t, mailer.DefaultSubject, input.Subject)

	req.Subject = "Weekly update"
	input, err = req.Validate()
	require.NoError(t, err)
	assert.Equal(t, "Weekly update", input.Subject)
}
