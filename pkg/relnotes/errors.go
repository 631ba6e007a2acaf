package relnotes

import "github.com/quicksend/quicksend/pkg/errx"

var notesErrors = errx.NewRegistry("NOTES")

var (
	ErrInvalidBody = notesErrors.Register("INVALID_BODY", errx.TypeValidation, 400,
		"Invalid request body")

	ErrMissingRawNotes = notesErrors.Register("MISSING_RAW_NOTES", errx.TypeValidation, 400,
		"Missing raw release notes text")

	// Server misconfiguration, not a client error.
	ErrMissingAPIKey = notesErrors.Register("MISSING_API_KEY", errx.TypeInternal, 500,
		"Missing OPENAI_API_KEY. Please configure it in environment variables.")

	// The completion endpoint rejected the request or could not be reached.
	ErrExtractionFailed = notesErrors.Register("EXTRACTION_FAILED", errx.TypeExternal, 502,
		"Failed to process release notes with AI")

	// The completion endpoint answered but with no extractable content.
	ErrEmptyCompletion = notesErrors.Register("EMPTY_COMPLETION", errx.TypeExternal, 502,
		"No response from AI")

	// The completion payload did not match the expected notes schema.
	ErrBadPayload = notesErrors.Register("BAD_PAYLOAD", errx.TypeExternal, 502,
		"AI returned an unparsable release notes payload")

	ErrRenderFailed = notesErrors.Register("RENDER_FAILED", errx.TypeInternal, 500,
		"Failed to render release notes email")
)
