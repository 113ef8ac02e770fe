package llm

import "errors"

var (
	// ErrUnavailable means the model server could not be reached.
	ErrUnavailable = errors.New("nudge model unavailable")

	ErrTimeout = errors.New("nudge model timed out")

	// ErrInvalidOutput means the reply could not be read as the requested
	// number of usable nudges.
	ErrInvalidOutput = errors.New("unusable nudge output")

	ErrRetryExhausted = errors.New("nudge model retries exhausted")
)
