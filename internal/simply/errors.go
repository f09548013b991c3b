package simply

import (
	"fmt"
	"net/http"
)

// TransportError reports a request that never completed: connection
// failures, DNS resolution failures for the API host, timeouts, or a
// request that could not be built. The underlying cause is wrapped.
type TransportError struct {
	Op  string // e.g. "GET /my/products/example.com/dns/records"
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("simply: %s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// DecodeError reports a response body that did not parse as the expected
// JSON shape. Body holds an excerpt of the raw body for diagnostics.
type DecodeError struct {
	Err  error
	Body string
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("simply: failed to decode response: %v", e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// APIError reports a failure signalled by the remote service, either as a
// non-2xx HTTP status or as a non-success status in the response envelope.
// The remote status code and message are preserved.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("simply: api error %d: %s", e.Status, e.Message)
}

// envelopeErr converts a response envelope status into an error.
// A zero status means the service omitted the field, which it only does on
// success.
func envelopeErr(status int, message string) error {
	if status == 0 || status == http.StatusOK {
		return nil
	}
	return &APIError{Status: status, Message: message}
}
