package scholar

import (
	"errors"
	"fmt"
)

// Sentinel errors for common error conditions.
var (
	// ErrMissingParameter indicates that a required parameter was not supplied.
	ErrMissingParameter = errors.New("missing required parameter")
)

// MissingParameterError identifies which required parameter was omitted.
// It is returned before any network call is made.
type MissingParameterError struct {
	Name string
}

// Error implements the error interface.
func (e *MissingParameterError) Error() string {
	return fmt.Sprintf("missing required parameter %q", e.Name)
}

// Unwrap returns the underlying sentinel error for use with errors.Is.
func (e *MissingParameterError) Unwrap() error {
	return ErrMissingParameter
}

// APIError provides details about a non-success response from the
// Semantic Scholar API. The status code and upstream message are carried
// unchanged; no classification or recovery is attempted.
type APIError struct {
	StatusCode int
	Message    string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("semantic scholar API error (status %d): %s", e.StatusCode, e.Message)
}

// NewMissingParameterError creates a new MissingParameterError.
func NewMissingParameterError(name string) *MissingParameterError {
	return &MissingParameterError{Name: name}
}

// NewAPIError creates a new APIError.
func NewAPIError(statusCode int, message string) *APIError {
	return &APIError{
		StatusCode: statusCode,
		Message:    message,
	}
}
