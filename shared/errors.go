package shared

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	compute "google.golang.org/api/compute/v1"
	"google.golang.org/api/googleapi"
)

// ErrInvalidArgument is returned when a local precondition check fails, such
// as an empty identifier or a non-positive timeout. Calls failing this way
// were never sent to the API.
var ErrInvalidArgument = errors.New("invalid argument")

// ErrWaitTimeout is returned when waiting on an asynchronous operation
// exceeded the caller's budget. It is distinct from OperationError: the
// operation may still complete, we just stopped watching.
var ErrWaitTimeout = errors.New("timed out waiting for operation to complete")

// OperationError reports that an asynchronous operation reached its terminal
// state but recorded a server-side failure. The structured error payload from
// the completed operation is retained for inspection.
type OperationError struct {
	OperationName string
	Err           *compute.OperationError
}

func (e *OperationError) Error() string {
	if e.Err == nil || len(e.Err.Errors) == 0 {
		return fmt.Sprintf("operation %s failed", e.OperationName)
	}

	msgs := make([]string, 0, len(e.Err.Errors))
	for _, opErr := range e.Err.Errors {
		msgs = append(msgs, fmt.Sprintf("%s: %s", opErr.Code, opErr.Message))
	}
	return fmt.Sprintf("operation %s failed: %s", e.OperationName, strings.Join(msgs, "; "))
}

// RequireNonEmpty fails fast when a caller-supplied identifier is empty.
func RequireNonEmpty(name, value string) error {
	if value == "" {
		return fmt.Errorf("%w: %s must not be empty", ErrInvalidArgument, name)
	}
	return nil
}

// IsNotFound reports whether err is a GCP API not-found error.
func IsNotFound(err error) bool {
	var apiErr *googleapi.Error
	return errors.As(err, &apiErr) && apiErr.Code == http.StatusNotFound
}

// IsRetryable reports whether a fetch error should be treated as transient.
// Server-side errors, timeouts and rate limiting are retryable; any other
// API error is not. Transport-level errors carry no status and are assumed
// transient.
func IsRetryable(err error) bool {
	var apiErr *googleapi.Error
	if !errors.As(err, &apiErr) {
		return true
	}

	switch {
	case apiErr.Code >= http.StatusInternalServerError:
		return true
	case apiErr.Code == http.StatusRequestTimeout, apiErr.Code == http.StatusTooManyRequests:
		return true
	default:
		return false
	}
}
