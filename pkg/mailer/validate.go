package mailer

import (
	"encoding/json"
	"regexp"
)

// emailPattern is deliberately permissive: one "@" with non-whitespace on
// both sides and a dot somewhere in the domain part. Real deliverability
// is the relay's problem.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// IsEmail reports whether v looks like an email address.
func IsEmail(v string) bool {
	return emailPattern.MatchString(v)
}

// Validate checks the raw request and returns a normalized SendInput.
//
// `html` must decode to a non-empty string. `to` may be a single string
// (all-or-nothing) or a sequence; invalid or non-string entries in a
// sequence are silently dropped, and the request is rejected only when
// nothing valid remains.
func (r SendRequest) Validate() (*SendInput, error) {
	html, ok := decodeString(r.HTML)
	if !ok || html == "" {
		return nil, mailerErrors.New(ErrMissingHTML)
	}

	recipients := normalizeRecipients(r.To)
	if len(recipients) == 0 {
		return nil, mailerErrors.New(ErrNoValidRecipient)
	}

	subject := r.Subject
	if subject == "" {
		subject = DefaultSubject
	}

	return &SendInput{
		Recipients: recipients,
		Subject:    subject,
		HTML:       html,
	}, nil
}

func normalizeRecipients(raw json.RawMessage) []string {
	if len(raw) == 0 {
		return nil
	}

	if single, ok := decodeString(raw); ok {
		if IsEmail(single) {
			return []string{single}
		}
		return nil
	}

	var items []interface{}
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil
	}

	var recipients []string
	for _, item := range items {
		if s, ok := item.(string); ok && IsEmail(s) {
			recipients = append(recipients, s)
		}
	}
	return recipients
}

func decodeString(raw json.RawMessage) (string, bool) {
	if len(raw) == 0 {
		return "", false
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", false
	}
	return s, true
}
