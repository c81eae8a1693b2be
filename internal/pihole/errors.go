package pihole

import "fmt"

// Error types for Pi-hole API operations

// ErrorType represents the category of error that occurred
type ErrorType int

const (
	// ErrTypeInvalidHost indicates an empty or unusable host string
	ErrTypeInvalidHost ErrorType = iota
	// ErrTypeInvalidURL indicates the host did not parse as a URL
	ErrTypeInvalidURL
	// ErrTypeNetwork indicates a transport-level failure (connection refused, timeout, etc.)
	ErrTypeNetwork
	// ErrTypeServer indicates a non-success HTTP status from the Pi-hole
	ErrTypeServer
	// ErrTypeParse indicates a malformed or unexpected-shape response body
	ErrTypeParse
	// ErrTypeValidation indicates a parsed response that failed sanity checks
	ErrTypeValidation
)

// String returns a human-readable name for the error type
func (et ErrorType) String() string {
	switch et {
	case ErrTypeInvalidHost:
		return "Invalid Host"
	case ErrTypeInvalidURL:
		return "Invalid URL"
	case ErrTypeNetwork:
		return "Network Error"
	case ErrTypeServer:
		return "Server Error"
	case ErrTypeParse:
		return "Parse Error"
	case ErrTypeValidation:
		return "Validation Error"
	default:
		return fmt.Sprintf("ErrorType(%d)", et)
	}
}

// PiholeError represents an error that occurred while talking to a Pi-hole
type PiholeError struct {
	Type       ErrorType // Category of error
	Message    string    // Human-readable error message
	StatusCode int       // HTTP status code (if applicable)
	Err        error     // Underlying error (if any)
}

// Error implements the error interface
func (e *PiholeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns the underlying error for error chain inspection
func (e *PiholeError) Unwrap() error {
	return e.Err
}

// NewInvalidHostError creates an invalid-host error
func NewInvalidHostError(message string) *PiholeError {
	return &PiholeError{
		Type:    ErrTypeInvalidHost,
		Message: message,
	}
}

// NewInvalidURLError creates an invalid-URL error wrapping the parser failure
func NewInvalidURLError(message string, err error) *PiholeError {
	return &PiholeError{
		Type:    ErrTypeInvalidURL,
		Message: message,
		Err:     err,
	}
}

// NewNetworkError creates a transport-level error
func NewNetworkError(message string, err error) *PiholeError {
	return &PiholeError{
		Type:    ErrTypeNetwork,
		Message: message,
		Err:     err,
	}
}

// NewServerError creates an error for a non-success HTTP status
func NewServerError(statusCode int) *PiholeError {
	return &PiholeError{
		Type:       ErrTypeServer,
		Message:    fmt.Sprintf("server returned non-success status: %d", statusCode),
		StatusCode: statusCode,
	}
}

// NewParseError creates a parsing error
func NewParseError(message string, err error) *PiholeError {
	return &PiholeError{
		Type:    ErrTypeParse,
		Message: message,
		Err:     err,
	}
}

// NewValidationError creates a validation error
func NewValidationError(message string) *PiholeError {
	return &PiholeError{
		Type:    ErrTypeValidation,
		Message: message,
	}
}

// IsInvalidHostError checks if an error is an invalid-host error
func IsInvalidHostError(err error) bool {
	if phErr, ok := err.(*PiholeError); ok {
		return phErr.Type == ErrTypeInvalidHost
	}
	return false
}

// IsInvalidURLError checks if an error is an invalid-URL error
func IsInvalidURLError(err error) bool {
	if phErr, ok := err.(*PiholeError); ok {
		return phErr.Type == ErrTypeInvalidURL
	}
	return false
}

// IsNetworkError checks if an error is a transport-level error
func IsNetworkError(err error) bool {
	if phErr, ok := err.(*PiholeError); ok {
		return phErr.Type == ErrTypeNetwork
	}
	return false
}

// IsServerError checks if an error is a non-success HTTP status error
func IsServerError(err error) bool {
	if phErr, ok := err.(*PiholeError); ok {
		return phErr.Type == ErrTypeServer
	}
	return false
}

// IsParseError checks if an error is a parse error
func IsParseError(err error) bool {
	if phErr, ok := err.(*PiholeError); ok {
		return phErr.Type == ErrTypeParse
	}
	return false
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	if phErr, ok := err.(*PiholeError); ok {
		return phErr.Type == ErrTypeValidation
	}
	return false
}

// GetTroubleshootingHint returns user-friendly troubleshooting advice for an error
func GetTroubleshootingHint(err error) string {
	phErr, ok := err.(*PiholeError)
	if !ok {
		return "An unexpected error occurred. Please try again."
	}

	switch phErr.Type {
	case ErrTypeInvalidHost:
		return "The Pi-hole host is empty. Enter an IP address or hostname, e.g. 192.168.1.100 or pi.hole."

	case ErrTypeInvalidURL:
		return "The Pi-hole host could not be parsed as a URL. Check for typos, invalid ports, or illegal characters."

	case ErrTypeNetwork:
		return "Could not reach the Pi-hole.\n" +
			"Troubleshooting:\n" +
			"  • Verify the host IP address is correct\n" +
			"  • Check that you're on the same network as the Pi-hole\n" +
			"  • If the Pi-hole is HTTPS-only, include https:// in the host"

	case ErrTypeServer:
		return fmt.Sprintf("The Pi-hole returned HTTP %d. The admin interface may require authentication.", phErr.StatusCode)

	case ErrTypeParse:
		return "No Pi-hole API endpoint produced a usable response.\n" +
			"Troubleshooting:\n" +
			"  • Check that Pi-hole is running and accessible\n" +
			"  • Provide the admin password if the API requires authentication\n" +
			"  • Verify the host points at a Pi-hole, not another web server"

	case ErrTypeValidation:
		return "The Pi-hole answered, but the data failed sanity checks: " + phErr.Message

	default:
		return "An error occurred. Please check the error message for details."
	}
}
