package errx

// Type categorizes an error for transport mapping.
type Type string

const (
	// TypeInternal is a server-side fault (misconfiguration, render failure)
	TypeInternal Type = "INTERNAL"

	// TypeValidation is a rejected client input
	TypeValidation Type = "VALIDATION"

	// TypeAuthorization is a failed credential check against an upstream
	TypeAuthorization Type = "AUTHORIZATION"

	// TypeNotFound is a missing resource
	TypeNotFound Type = "NOT_FOUND"

	// TypeExternal is a failure reported by an upstream provider
	TypeExternal Type = "EXTERNAL"
)

// String returns the string representation of the error type
func (t Type) String() string {
	return string(t)
}
