package searchclient

import (
	"errors"
	"fmt"
)

var (
	// ErrTransport matches every failure to obtain a successful response
	ErrTransport = errors.New("search transport failure")
	// ErrMalformedResponse matches responses whose body is not a JSON array
	ErrMalformedResponse = errors.New("malformed search response")
)

// TransportError is returned for non-2xx responses and network failures.
// StatusCode is 0 when no response was received.
type TransportError struct {
	StatusCode int
	Status     string
	Err        error
}

func (e *TransportError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("search request failed: %s", e.Status)
	}
	return fmt.Sprintf("search request failed: %v", e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

func (e *TransportError) Is(target error) bool {
	return target == ErrTransport
}

// MalformedResponseError is returned when the body cannot be decoded
type MalformedResponseError struct {
	Err error
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("malformed search response: %v", e.Err)
}

func (e *MalformedResponseError) Unwrap() error {
	return e.Err
}

func (e *MalformedResponseError) Is(target error) bool {
	return target == ErrMalformedResponse
}
