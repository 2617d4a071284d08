package trello

import (
	"errors"
	"fmt"
)

// Sentinel errors for response mapping.
var (
	// ErrMissingField indicates a JSON object lacked a field the mapper requires.
	ErrMissingField = errors.New("missing field")
	// ErrFieldType indicates a JSON field had an unexpected type.
	ErrFieldType = errors.New("unexpected field type")
	// ErrUnexpectedJSON indicates the response was not the expected object or array.
	ErrUnexpectedJSON = errors.New("unexpected JSON response")
)

// ResourceUnavailableError is returned for every response whose status is
// not 200. The status is not interpreted further.
type ResourceUnavailableError struct {
	// URL is the full request URL, credentials included.
	URL        string
	StatusCode int
}

func (e *ResourceUnavailableError) Error() string {
	return fmt.Sprintf("resource unavailable: %s (status %d)", redactURL(e.URL), e.StatusCode)
}

// IsResourceUnavailable returns true if the error is a *ResourceUnavailableError.
func IsResourceUnavailable(err error) bool {
	var target *ResourceUnavailableError
	return errors.As(err, &target)
}

// IsMappingError returns true if the error came from mapping a response.
func IsMappingError(err error) bool {
	return errors.Is(err, ErrMissingField) ||
		errors.Is(err, ErrFieldType) ||
		errors.Is(err, ErrUnexpectedJSON)
}
