package batch

import (
	"fmt"

	"github.com/rickhofstede/weaviate-go/v1/util"
)

// PendingObject is one object waiting in the batch for submission.
type PendingObject struct {
	Class      string                 `json:"class"`
	Properties map[string]interface{} `json:"properties"`
	ID         string                 `json:"id,omitempty"`
	Vector     []float32              `json:"vector,omitempty"`
}

// PendingReference is one cross-object reference waiting in the batch,
// already rendered in the server's beacon format.
type PendingReference struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// container is an ordered sequence of pending batch items. Insertion order
// is preserved so submissions are deterministic and index-based pops behave
// like list operations.
type container[T any] struct {
	items []T
}

func (c *container[T]) add(item T) {
	c.items = append(c.items, item)
}

// pop removes and returns the item at index. Negative indexes count from
// the end, so -1 is the most recently added item.
func (c *container[T]) pop(index int) (T, error) {
	var zero T
	i := index
	if i < 0 {
		i += len(c.items)
	}
	if i < 0 || i >= len(c.items) {
		return zero, fmt.Errorf("batch: pop index %d out of range for %d items", index, len(c.items))
	}
	item := c.items[i]
	c.items = append(c.items[:i], c.items[i+1:]...)
	return item, nil
}

func (c *container[T]) clear() {
	c.items = nil
}

func (c *container[T]) len() int {
	return len(c.items)
}

func (c *container[T]) isEmpty() bool {
	return len(c.items) == 0
}

// ObjectsBatchRequest collects objects for one bulk request. The content is
// not validated against the server's schema; only argument shape and UUID
// format are checked on Add.
type ObjectsBatchRequest struct {
	container[PendingObject]
}

// Add appends one object to the request. id may be empty; when given it is
// accepted as a raw UUID, a beacon, or an object URL. The properties map is
// copied so later mutation by the caller does not change the pending item.
func (r *ObjectsBatchRequest) Add(properties map[string]interface{}, className, id string, vector []float32) error {
	if className == "" {
		return fmt.Errorf("batch: class name must not be empty")
	}

	item := PendingObject{
		Class:      className,
		Properties: copyProperties(properties),
		Vector:     vector,
	}

	if id != "" {
		parsed, err := util.ParseUUID(id)
		if err != nil {
			return err
		}
		item.ID = parsed
	}

	r.add(item)
	return nil
}

// Pop removes and returns the object at index (-1 for the last one).
func (r *ObjectsBatchRequest) Pop(index int) (PendingObject, error) {
	return r.pop(index)
}

// Clear removes all pending objects.
func (r *ObjectsBatchRequest) Clear() { r.clear() }

// Len returns the number of pending objects.
func (r *ObjectsBatchRequest) Len() int { return r.len() }

// IsEmpty reports whether the request has no pending objects.
func (r *ObjectsBatchRequest) IsEmpty() bool { return r.isEmpty() }

// Body returns the bulk-request payload the server expects.
func (r *ObjectsBatchRequest) Body() interface{} {
	objects := r.items
	if objects == nil {
		objects = []PendingObject{}
	}
	return map[string]interface{}{
		"fields":  []string{"ALL"},
		"objects": objects,
	}
}

// ReferenceBatchRequest collects cross-object references for one bulk
// request. References are submitted without schema validation, so the
// server accepts them even when class or property names do not exist.
type ReferenceBatchRequest struct {
	container[PendingReference]
}

// Add appends one reference to the request. Both UUIDs are accepted as raw
// UUIDs, beacons, or object URLs.
func (r *ReferenceBatchRequest) Add(fromUUID, fromClassName, fromPropertyName, toUUID string) error {
	if fromClassName == "" {
		return fmt.Errorf("batch: from class name must not be empty")
	}
	if fromPropertyName == "" {
		return fmt.Errorf("batch: from property name must not be empty")
	}

	fromID, err := util.ParseUUID(fromUUID)
	if err != nil {
		return err
	}
	toID, err := util.ParseUUID(toUUID)
	if err != nil {
		return err
	}

	r.add(PendingReference{
		From: "weaviate://localhost/" + fromClassName + "/" + fromID + "/" + fromPropertyName,
		To:   "weaviate://localhost/" + toID,
	})
	return nil
}

// Pop removes and returns the reference at index (-1 for the last one).
func (r *ReferenceBatchRequest) Pop(index int) (PendingReference, error) {
	return r.pop(index)
}

// Clear removes all pending references.
func (r *ReferenceBatchRequest) Clear() { r.clear() }

// Len returns the number of pending references.
func (r *ReferenceBatchRequest) Len() int { return r.len() }

// IsEmpty reports whether the request has no pending references.
func (r *ReferenceBatchRequest) IsEmpty() bool { return r.isEmpty() }

// Body returns the bulk-request payload: references go over the wire as a
// plain beacon array.
func (r *ReferenceBatchRequest) Body() interface{} {
	if r.items == nil {
		return []PendingReference{}
	}
	return r.items
}

func copyProperties(properties map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(properties))
	for k, v := range properties {
		out[k] = v
	}
	return out
}
