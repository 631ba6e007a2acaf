package mailer

import "github.com/quicksend/quicksend/pkg/errx"

var mailerErrors = errx.NewRegistry("MAILER")

var (
	// Server misconfiguration, distinct from client input errors so
	// operators can tell a broken deployment from a bad request.
	ErrMissingCredentials = mailerErrors.Register("MISSING_CREDENTIALS", errx.TypeInternal, 500,
		"Missing SMTP credentials. Please configure SMTP_USER and SMTP_PASS.")

	ErrInvalidBody = mailerErrors.Register("INVALID_BODY", errx.TypeValidation, 400,
		"Invalid request body")

	ErrMissingHTML = mailerErrors.Register("MISSING_HTML", errx.TypeValidation, 400,
		"Missing HTML content.")

	ErrNoValidRecipient = mailerErrors.Register("NO_VALID_RECIPIENT", errx.TypeValidation, 400,
		"Please provide at least one valid recipient email.")

	ErrDeliveryFailed = mailerErrors.Register("DELIVERY_FAILED", errx.TypeExternal, 502,
		"Failed to send email")
)
