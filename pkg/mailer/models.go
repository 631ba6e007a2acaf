package mailer

import "encoding/json"

// DefaultSubject is used when a request carries no subject.
const DefaultSubject = "Quick Send Email"

// SendRequest is the raw body of POST /api/send. To and HTML stay raw so
// the validator can accept a single string or a sequence for `to` and
// reject a non-string `html` with a precise error instead of a decode
// failure.
type SendRequest struct {
	To      json.RawMessage `json:"to"`
	Subject string          `json:"subject"`
	HTML    json.RawMessage `json:"html"`
}

// SendInput is a validated, normalized send request.
type SendInput struct {
	Recipients []string
	Subject    string
	HTML       string
}

// SendOutcome is the result of a completed delivery.
type SendOutcome struct {
	MessageID      string `json:"messageId"`
	Response       string `json:"response"`
	RecipientCount int    `json:"recipientCount"`
}
