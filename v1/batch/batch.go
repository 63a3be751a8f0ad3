package batch

import (
	"context"
	"math"
	"time"

	"github.com/rickhofstede/weaviate-go/v1/connection"
	"github.com/rickhofstede/weaviate-go/v1/observability"
)

// BatchingType selects how the batch decides when to auto-submit.
type BatchingType string

const (
	// BatchingNone disables auto-submission; the caller flushes manually.
	BatchingNone BatchingType = "none"

	// BatchingFixed submits a kind once its count reaches BatchSize.
	BatchingFixed BatchingType = "fixed"

	// BatchingDynamic submits once a kind reaches its recommended count,
	// which is recomputed from the measured latency of every submission.
	BatchingDynamic BatchingType = "dynamic"
)

// retryPause is the wait between read-timeout retry attempts.
const retryPause = time.Second

// Connection is the transport capability the batch needs. The concrete
// connection.Connection satisfies it.
//
//go:generate mockgen -source=batch.go -destination=mock_connection.go -package=batch
type Connection interface {
	Post(ctx context.Context, path string, payload interface{}) (*connection.Response, error)
	TimeoutConfig() (connect, read time.Duration)
}

// Logger defines the logging operations the batch package needs.
type Logger interface {
	Info(msg string, err error, fields ...map[string]interface{})
	Debug(msg string, err error, fields ...map[string]interface{})
	Warn(msg string, err error, fields ...map[string]interface{})
	Error(msg string, err error, fields ...map[string]interface{})
}

// Callback receives the per-item results of one submitted kind. It is
// invoked once for objects and once for references on every flush.
type Callback func(results []map[string]interface{})

// Config is the tuning surface applied by Configure.
type Config struct {
	// BatchSize is the auto-submission threshold. Zero disables
	// auto-submission entirely (Dynamic and Callback are then ignored).
	BatchSize int

	// CreationTime is the target duration of one bulk request; the
	// recommended counts converge toward the batch size that completes
	// within it. Zero means the 10s default.
	CreationTime time.Duration

	// TimeoutRetries is the number of extra attempts after a read timeout.
	TimeoutRetries int

	// Callback is invoked with each kind's results on every flush.
	Callback Callback

	// Dynamic enables latency-adaptive thresholds.
	Dynamic bool
}

// Batch buffers object and reference creations and submits them in bulk.
//
// A Batch is single-threaded by design: enqueue, threshold check and
// submission all run on the caller's goroutine, and the check-then-submit
// sequence is not atomic. Callers sharing one Batch across goroutines must
// synchronize externally.
//
// NOTE: when the UUID of a submitted object already exists on the server,
// the existing object is replaced.
type Batch struct {
	conn     Connection
	log      Logger
	observer observability.Observer

	objects    ObjectsBatchRequest
	references ReferenceBatchRequest

	batchSize                int
	batchingType             BatchingType
	recommendedNumObjects    int
	recommendedNumReferences int
	creationTime             time.Duration
	timeoutRetries           int
	callback                 Callback

	pause func(time.Duration) // swapped out in tests
}

// NewBatch returns a Batch in manual mode: nothing is submitted until the
// caller flushes or configures an auto-submission threshold.
func NewBatch(conn Connection) *Batch {
	return &Batch{
		conn:         conn,
		log:          nopLogger{},
		batchingType: BatchingNone,
		creationTime: 10 * time.Second,
		pause:        time.Sleep,
	}
}

// WithLogger sets the logger and returns the batch for chaining.
func (b *Batch) WithLogger(log Logger) *Batch {
	if log != nil {
		b.log = log
	}
	return b
}

// WithObserver sets the operation observer and returns the batch.
func (b *Batch) WithObserver(obs observability.Observer) *Batch {
	b.observer = obs
	return b
}

// Configure applies a full configuration in one call. A zero BatchSize
// switches the batch to manual mode and drops the callback. A non-zero
// BatchSize enables fixed or dynamic auto-submission and immediately
// re-evaluates the threshold against already-buffered items, which may
// trigger a submission before Configure returns.
func (b *Batch) Configure(ctx context.Context, cfg Config) error {
	creationTime := cfg.CreationTime
	if creationTime == 0 {
		creationTime = 10 * time.Second
	}
	if err := validateCreationTime(creationTime); err != nil {
		return err
	}
	if err := validateTimeoutRetries(cfg.TimeoutRetries); err != nil {
		return err
	}

	if cfg.BatchSize == 0 {
		b.callback = nil
		b.batchSize = 0
		b.creationTime = creationTime
		b.timeoutRetries = cfg.TimeoutRetries
		b.batchingType = BatchingNone
		return nil
	}

	if err := validateBatchSize(cfg.BatchSize); err != nil {
		return err
	}

	b.callback = cfg.Callback
	b.batchSize = cfg.BatchSize
	b.creationTime = creationTime
	b.timeoutRetries = cfg.TimeoutRetries

	if cfg.Dynamic {
		b.batchingType = BatchingDynamic
		b.recommendedNumObjects = cfg.BatchSize
		b.recommendedNumReferences = cfg.BatchSize
	} else {
		b.batchingType = BatchingFixed
		if b.recommendedNumObjects == 0 {
			b.recommendedNumObjects = cfg.BatchSize
		}
		if b.recommendedNumReferences == 0 {
			b.recommendedNumReferences = cfg.BatchSize
		}
	}

	return b.autoCreate(ctx)
}

// SetBatchSize changes the auto-submission threshold. Zero reverts the
// batch to manual mode. A non-zero size keeps dynamic mode if it was
// active, enables fixed mode otherwise, and re-evaluates the threshold.
func (b *Batch) SetBatchSize(ctx context.Context, size int) error {
	if size == 0 {
		b.batchSize = 0
		b.batchingType = BatchingNone
		return nil
	}

	if err := validateBatchSize(size); err != nil {
		return err
	}

	b.batchSize = size
	if b.batchingType == BatchingNone {
		b.batchingType = BatchingFixed
	}
	if b.recommendedNumObjects == 0 {
		b.recommendedNumObjects = size
	}
	if b.recommendedNumReferences == 0 {
		b.recommendedNumReferences = size
	}
	return b.autoCreate(ctx)
}

// SetDynamic toggles latency-adaptive thresholds. It has no effect while
// the batch is in manual mode. Enabling it seeds the recommended counts
// from the batch size when they are unset.
func (b *Batch) SetDynamic(ctx context.Context, dynamic bool) error {
	if b.batchingType == BatchingNone {
		return nil
	}

	if dynamic {
		b.batchingType = BatchingDynamic
		if b.recommendedNumObjects == 0 {
			b.recommendedNumObjects = b.batchSize
		}
		if b.recommendedNumReferences == 0 {
			b.recommendedNumReferences = b.batchSize
		}
	} else {
		b.batchingType = BatchingFixed
	}
	return b.autoCreate(ctx)
}

// SetCreationTime changes the target duration per bulk request. Both
// recommended counts are rescaled by the new/old ratio so the next
// submission still aims at the same throughput.
func (b *Batch) SetCreationTime(ctx context.Context, d time.Duration) error {
	if err := validateCreationTime(d); err != nil {
		return err
	}

	ratio := float64(d) / float64(b.creationTime)
	if b.recommendedNumObjects != 0 {
		b.recommendedNumObjects = int(math.Round(float64(b.recommendedNumObjects) * ratio))
	}
	if b.recommendedNumReferences != 0 {
		b.recommendedNumReferences = int(math.Round(float64(b.recommendedNumReferences) * ratio))
	}
	b.creationTime = d

	if b.batchingType != BatchingNone {
		return b.autoCreate(ctx)
	}
	return nil
}

// SetTimeoutRetries changes the read-timeout retry budget.
func (b *Batch) SetTimeoutRetries(retries int) error {
	if err := validateTimeoutRetries(retries); err != nil {
		return err
	}
	b.timeoutRetries = retries
	return nil
}

// SetCallback changes the per-flush result callback.
func (b *Batch) SetCallback(cb Callback) {
	b.callback = cb
}

// AddDataObject buffers one object. id may be empty (the server assigns
// one) and vector may be nil. When auto-submission is enabled the
// threshold is checked immediately, so this call can block on a network
// round trip.
func (b *Batch) AddDataObject(ctx context.Context, properties map[string]interface{}, className, id string, vector []float32) error {
	if err := b.objects.Add(properties, className, id, vector); err != nil {
		return err
	}

	if b.batchingType != BatchingNone {
		return b.autoCreate(ctx)
	}
	return nil
}

// AddReference buffers one cross-object reference. Like AddDataObject it
// may trigger a submission when auto-submission is enabled.
func (b *Batch) AddReference(ctx context.Context, fromUUID, fromClassName, fromPropertyName, toUUID string) error {
	if err := b.references.Add(fromUUID, fromClassName, fromPropertyName, toUUID); err != nil {
		return err
	}

	if b.batchingType != BatchingNone {
		return b.autoCreate(ctx)
	}
	return nil
}

// autoCreate submits the buffered data once either kind reaches its
// threshold. It must only run while auto-submission is configured.
func (b *Batch) autoCreate(ctx context.Context) error {
	switch b.batchingType {
	case BatchingFixed:
		if b.objects.Len() >= b.batchSize || b.references.Len() >= b.batchSize {
			return b.Flush(ctx)
		}
		return nil
	case BatchingDynamic:
		if b.objects.Len() >= b.recommendedNumObjects || b.references.Len() >= b.recommendedNumReferences {
			return b.Flush(ctx)
		}
		return nil
	default:
		return ErrBatchingUnconfigured
	}
}

// CreateObjects submits all buffered objects in one bulk request and
// returns the server's per-item results. An empty buffer returns an empty
// result without any network call. The buffer is cleared only after a
// confirmed 200 response; on failure it stays intact so the caller can
// retry or inspect it.
func (b *Batch) CreateObjects(ctx context.Context) ([]map[string]interface{}, error) {
	if b.objects.IsEmpty() {
		return []map[string]interface{}{}, nil
	}

	count := b.objects.Len()
	resp, err := b.createData(ctx, "objects", b.objects.Body(), count)
	if err != nil {
		return nil, err
	}

	if b.batchingType == BatchingDynamic {
		b.recommendedNumObjects = recommendCount(count, b.creationTime, resp.Elapsed)
	}
	b.objects.Clear()

	var results []map[string]interface{}
	if err := resp.DecodeJSON(&results); err != nil {
		return nil, err
	}
	return results, nil
}

// CreateReferences submits all buffered references in one bulk request.
// Same contract as CreateObjects.
func (b *Batch) CreateReferences(ctx context.Context) ([]map[string]interface{}, error) {
	if b.references.IsEmpty() {
		return []map[string]interface{}{}, nil
	}

	count := b.references.Len()
	resp, err := b.createData(ctx, "references", b.references.Body(), count)
	if err != nil {
		return nil, err
	}

	if b.batchingType == BatchingDynamic {
		b.recommendedNumReferences = recommendCount(count, b.creationTime, resp.Elapsed)
	}
	b.references.Clear()

	var results []map[string]interface{}
	if err := resp.DecodeJSON(&results); err != nil {
		return nil, err
	}
	return results, nil
}

// createData posts one bulk request, retrying read timeouts up to the
// configured budget with a pause between attempts. Connection failures and
// unexpected status codes are never retried.
func (b *Batch) createData(ctx context.Context, kind string, body interface{}, batchLen int) (*connection.Response, error) {
	path := "/batch/" + kind

	var lastErr error
	for attempt := 0; attempt <= b.timeoutRetries; attempt++ {
		start := time.Now()
		resp, err := b.conn.Post(ctx, path, body)
		b.observeOperation("create_"+kind, path, time.Since(start), err, int64(batchLen))

		if err != nil {
			if !connection.IsTimeout(err) {
				return nil, newNotSubmittedError(kind, err)
			}
			lastErr = err
			if attempt < b.timeoutRetries {
				b.log.Warn("batch request timed out, retrying", err, map[string]interface{}{
					"kind":    kind,
					"attempt": attempt + 1,
					"retries": b.timeoutRetries,
				})
				b.pause(retryPause)
			}
			continue
		}

		if resp.StatusCode != 200 {
			return nil, connection.NewUnexpectedStatusCodeError("Create "+kind+" in batch", resp)
		}
		return resp, nil
	}

	_, readTimeout := b.conn.TimeoutConfig()
	return nil, newTimeoutError(kind, readTimeout, batchLen, b.creationTime, lastErr)
}

// recommendCount is the adaptive threshold update: the count that would
// have taken exactly creationTime at the just-measured rate, rounded down.
// A threshold of zero would submit on every enqueue, so the floor is one.
func recommendCount(count int, creationTime, elapsed time.Duration) int {
	if elapsed <= 0 {
		return count
	}
	recommended := int(math.Floor(float64(count) * float64(creationTime) / float64(elapsed)))
	if recommended < 1 {
		return 1
	}
	return recommended
}

// Flush submits both kinds unconditionally (objects first) and invokes the
// callback once per kind with that kind's results. Empty kinds produce an
// empty result without a network call.
func (b *Batch) Flush(ctx context.Context) error {
	objectResults, err := b.CreateObjects(ctx)
	if err != nil {
		return err
	}
	referenceResults, err := b.CreateReferences(ctx)
	if err != nil {
		return err
	}

	if b.callback != nil {
		b.callback(objectResults)
		b.callback(referenceResults)
	}
	return nil
}

// Run executes fn as a scoped batch session: the batch is flushed exactly
// once when fn returns, whether it succeeded, returned an error or
// panicked, so buffered items are never silently dropped. The error from
// fn wins over a flush error.
func (b *Batch) Run(ctx context.Context, fn func(b *Batch) error) (err error) {
	defer func() {
		flushErr := b.Flush(ctx)
		if err == nil {
			err = flushErr
		}
	}()
	return fn(b)
}

// NumObjects returns the number of buffered objects.
func (b *Batch) NumObjects() int { return b.objects.Len() }

// NumReferences returns the number of buffered references.
func (b *Batch) NumReferences() int { return b.references.Len() }

// Shape returns the buffered (objects, references) counts.
func (b *Batch) Shape() (numObjects, numReferences int) {
	return b.objects.Len(), b.references.Len()
}

// PopObject removes and returns the buffered object at index (-1 for the
// most recent).
func (b *Batch) PopObject(index int) (PendingObject, error) {
	return b.objects.Pop(index)
}

// PopReference removes and returns the buffered reference at index.
func (b *Batch) PopReference(index int) (PendingReference, error) {
	return b.references.Pop(index)
}

// EmptyObjects drops all buffered objects without submitting them.
func (b *Batch) EmptyObjects() { b.objects.Clear() }

// EmptyReferences drops all buffered references without submitting them.
func (b *Batch) EmptyReferences() { b.references.Clear() }

// IsEmptyObjects reports whether no objects are buffered.
func (b *Batch) IsEmptyObjects() bool { return b.objects.IsEmpty() }

// IsEmptyReferences reports whether no references are buffered.
func (b *Batch) IsEmptyReferences() bool { return b.references.IsEmpty() }

// BatchSize returns the configured threshold; zero means manual mode.
func (b *Batch) BatchSize() int { return b.batchSize }

// BatchingType returns the current auto-submission mode.
func (b *Batch) BatchingType() BatchingType { return b.batchingType }

// Dynamic reports whether latency-adaptive thresholds are active.
func (b *Batch) Dynamic() bool { return b.batchingType == BatchingDynamic }

// CreationTime returns the target duration per bulk request.
func (b *Batch) CreationTime() time.Duration { return b.creationTime }

// TimeoutRetries returns the read-timeout retry budget.
func (b *Batch) TimeoutRetries() int { return b.timeoutRetries }

// RecommendedNumObjects returns the adaptive objects threshold; zero means
// it has not been computed yet.
func (b *Batch) RecommendedNumObjects() int { return b.recommendedNumObjects }

// RecommendedNumReferences returns the adaptive references threshold; zero
// means it has not been computed yet.
func (b *Batch) RecommendedNumReferences() int { return b.recommendedNumReferences }

type nopLogger struct{}

func (nopLogger) Info(string, error, ...map[string]interface{})  {}
func (nopLogger) Debug(string, error, ...map[string]interface{}) {}
func (nopLogger) Warn(string, error, ...map[string]interface{})  {}
func (nopLogger) Error(string, error, ...map[string]interface{}) {}
