package api

import (
	"errors"
	"fmt"
)

// Sentinel errors for the failure classes a panel can observe.
var (
	// ErrTransport covers connection failures, cancellation and timeouts.
	ErrTransport = errors.New("transport error")

	// ErrDecode covers non-JSON bodies and fields of the wrong shape.
	ErrDecode = errors.New("malformed response")

	// ErrStatus matches any *StatusError via errors.Is.
	ErrStatus = errors.New("unexpected status")

	// ErrInvalidBaseURL is returned by NewClient.
	ErrInvalidBaseURL = errors.New("invalid base url")
)

// StatusError is returned for non-2xx responses.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("unexpected status %d", e.Code)
	}
	return fmt.Sprintf("unexpected status %d: %s", e.Code, e.Body)
}

func (e *StatusError) Is(target error) bool {
	return target == ErrStatus
}

// RequestError ties a failure to the endpoint and request id that produced it.
type RequestError struct {
	Endpoint  Endpoint
	RequestID string
	Err       error
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("%s: %v", e.Endpoint, e.Err)
}

func (e *RequestError) Unwrap() error {
	return e.Err
}
