// Package batch buffers object and reference creations and submits them to
// Weaviate in bulk.
//
// The Batch controller owns two ordered containers, one per kind, and a
// small tuning surface. It can be used in three ways:
//
// Manual mode (the default): the caller buffers items with AddDataObject
// and AddReference and decides when to submit with CreateObjects,
// CreateReferences or Flush. BatchSize is zero in this mode.
//
// Fixed batching: Configure (or SetBatchSize) with a positive BatchSize
// submits automatically as soon as either kind's count reaches the size.
//
// Dynamic batching: like fixed, but each kind keeps its own recommended
// count, recomputed after every submission from the measured request
// latency so the next batch aims to complete within CreationTime.
//
// # Scoped sessions
//
// Run executes a function against the batch and always flushes exactly
// once when it returns, including on error and panic, so buffered items
// are never dropped at the end of a batching block:
//
//	err := client.Batch.Run(ctx, func(b *batch.Batch) error {
//	    for _, doc := range docs {
//	        if err := b.AddDataObject(ctx, doc.Properties, "Document", doc.ID, nil); err != nil {
//	            return err
//	        }
//	    }
//	    return nil
//	})
//
// # Failure behavior
//
// A container is cleared only after the server confirms the submission
// with a 200. Transport failures surface immediately and are never
// retried; read timeouts are retried up to TimeoutRetries extra attempts
// with a one second pause. In every failure case the buffered items stay
// in place for the caller to retry or inspect.
//
// NOTE: a successful bulk submission does not guarantee every item was
// created. The server reports per-item results in the returned array;
// use a flush callback or inspect the CreateObjects result to find
// per-item errors.
//
// # Concurrency
//
// A Batch is not safe for concurrent use. Enqueue, threshold check and
// submission run synchronously on the caller's goroutine, and the
// check-then-submit sequence is not atomic across interleaved callers.
package batch
