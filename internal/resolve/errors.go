package resolve

import (
	"errors"
	"fmt"
)

// ErrEmptyInput is returned when the pipeline is invoked with empty or
// whitespace-only input. This is the only caller-visible failure.
var ErrEmptyInput = errors.New("empty input")

// UpstreamError represents a reachable upstream that returned a failure or
// malformed response. The pipeline downgrades it to "no result" and moves on
// to the next strategy.
type UpstreamError struct {
	Strategy string
	URL      string
	Message  string
	Cause    error
}

func (e *UpstreamError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: upstream error for %s: %s: %v", e.Strategy, e.URL, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: upstream error for %s: %s", e.Strategy, e.URL, e.Message)
}

func (e *UpstreamError) Unwrap() error {
	return e.Cause
}
