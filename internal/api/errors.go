package api

import "errors"

var (
	// ErrUnavailable indicates the content service is unreachable.
	ErrUnavailable = errors.New("content service unavailable")

	// ErrTimeout indicates the request exceeded the configured timeout.
	ErrTimeout = errors.New("content request timed out")

	// ErrRetryExhausted indicates all retry attempts have been exhausted.
	ErrRetryExhausted = errors.New("content retry attempts exhausted")
)
