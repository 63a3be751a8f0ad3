package batch

import (
	"errors"
	"fmt"
	"time"
)

// ErrBatchingUnconfigured signals that the auto-submission check ran while
// the batch was in manual mode. Enqueue and configure operations never take
// that path; hitting it means a programming error inside this package.
var ErrBatchingUnconfigured = errors.New("batch: auto-create requires fixed or dynamic batching")

// newNotSubmittedError wraps a transport failure. The request never
// reached the server, so the buffered data is still intact and retriable.
func newNotSubmittedError(kind string, cause error) error {
	return fmt.Errorf("batch %s was not submitted: %w", kind, cause)
}

// newTimeoutError reports an exhausted retry budget with the tuning
// parameters the caller can adjust.
func newTimeoutError(kind string, readTimeout time.Duration, batchLen int, creationTime time.Duration, cause error) error {
	return fmt.Errorf(
		"batch: the %s creation was cancelled because it took longer than the configured timeout of %s;"+
			" try reducing the batch size (currently %d) so requests complete within %s: %w",
		kind, readTimeout, batchLen, creationTime, cause,
	)
}

func validateBatchSize(size int) error {
	if size <= 0 {
		return fmt.Errorf("batch: batch size must be greater than zero, got %d", size)
	}
	return nil
}

func validateCreationTime(d time.Duration) error {
	if d <= 0 {
		return fmt.Errorf("batch: creation time must be greater than zero, got %s", d)
	}
	return nil
}

func validateTimeoutRetries(retries int) error {
	if retries < 0 {
		return fmt.Errorf("batch: timeout retries must not be negative, got %d", retries)
	}
	return nil
}
