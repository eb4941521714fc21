package eventor

import (
	"errors"
	"fmt"
)

// Common errors returned by the Eventor client.
var (
	// ErrInvalidConfig indicates invalid client configuration.
	ErrInvalidConfig = errors.New("invalid eventor configuration")

	// ErrMissingAPIKey is returned by NewClient when no API key is given.
	ErrMissingAPIKey = fmt.Errorf("%w: API key is required", ErrInvalidConfig)

	// ErrUnexpectedShape indicates a response did not contain the element
	// a method unwraps to.
	ErrUnexpectedShape = errors.New("unexpected response shape")

	// ErrPathNotFound is returned by Node.Path when a segment is absent.
	ErrPathNotFound = errors.New("path not found in response")
)

// RequestError wraps a transport failure. The underlying error is reachable
// through errors.Is and errors.As.
type RequestError struct {
	Path string
	Err  error
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("eventor request %s failed: %v", e.Path, e.Err)
}

func (e *RequestError) Unwrap() error {
	return e.Err
}

// ParseError indicates the response body was not well-formed XML.
type ParseError struct {
	Path       string
	StatusCode int
	Err        error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("eventor response from %s (status %d) is not valid XML: %v", e.Path, e.StatusCode, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ShapeError is returned when an unwrapping method cannot find Wrapper.Item
// in the parsed response.
type ShapeError struct {
	Wrapper string
	Item    string
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("%v: expected %s.%s", ErrUnexpectedShape, e.Wrapper, e.Item)
}

// Is reports ErrUnexpectedShape as a match so callers can test with errors.Is.
func (e *ShapeError) Is(target error) bool {
	return target == ErrUnexpectedShape
}
