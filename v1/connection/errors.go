package connection

import (
	"context"
	"errors"
	"fmt"
	"net"
)

// ErrConnection marks transport-level failures: connection refused, DNS
// failures, timeouts. Requests that failed this way never produced a
// server response.
var ErrConnection = errors.New("connection error")

func newConnectionError(method, path string, cause error) error {
	// Both ErrConnection and the cause stay in the chain so IsTimeout can
	// still see the underlying net.Error.
	return fmt.Errorf("%w: %s /%s: %w", ErrConnection, method, path, cause)
}

// UnexpectedStatusCodeError reports a server response whose status code is
// not among the ones the operation accepts. The raw body is kept so callers
// can inspect the server's error detail.
type UnexpectedStatusCodeError struct {
	Operation  string
	StatusCode int
	Body       []byte
}

func (e *UnexpectedStatusCodeError) Error() string {
	return fmt.Sprintf("%s failed with status code %d: %s", e.Operation, e.StatusCode, string(e.Body))
}

// NewUnexpectedStatusCodeError builds the error for an operation that got a
// response it does not accept.
func NewUnexpectedStatusCodeError(operation string, resp *Response) *UnexpectedStatusCodeError {
	return &UnexpectedStatusCodeError{
		Operation:  operation,
		StatusCode: resp.StatusCode,
		Body:       resp.Body,
	}
}

// IsTimeout reports whether err was caused by the read timeout elapsing
// before the server answered. Such requests may have reached the server,
// so callers can choose to retry them. Other transport failures (refused
// connections in particular) report false.
func IsTimeout(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}
	return false
}
