package upstream

import (
	"errors"
	"fmt"
	"net/url"

	apperrors "github.com/allisson/vehiclebff/internal/errors"
)

// ErrMalformedResponse indicates a 2xx upstream response whose body is not JSON.
// It is deliberately not a CallError so it is never masked by fallback data.
var ErrMalformedResponse = errors.New("upstream returned malformed JSON")

// ErrResponseTooLarge indicates an upstream body over the relay's size limit.
// Like ErrMalformedResponse it is not masked by fallback data.
var ErrResponseTooLarge = errors.New("upstream response too large")

// CallError is a failed upstream call: either a non-2xx answer or a transport failure.
type CallError struct {
	Operation  string
	StatusCode int
	Body       string
	Err        error
}

func (e *CallError) Error() string {
	return fmt.Sprintf("upstream %s failed: %s", e.Operation, e.Detail())
}

// Detail is the caller-safe description rendered in the error envelope.
func (e *CallError) Detail() string {
	if e.Err != nil {
		var urlErr *url.Error
		if errors.As(e.Err, &urlErr) {
			return "transport error: " + urlErr.Err.Error()
		}
		return "transport error: " + e.Err.Error()
	}
	return fmt.Sprintf("StatusCode: %d, Detail: %s", e.StatusCode, e.Body)
}

func (e *CallError) Unwrap() error {
	return e.Err
}

// Is matches the ErrUpstream sentinel.
func (e *CallError) Is(target error) bool {
	return target == apperrors.ErrUpstream
}
