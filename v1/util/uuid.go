package util

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// ParseUUID validates and extracts a UUID from its argument.
//
// The argument may be a plain UUID, a Weaviate beacon
// ("weaviate://localhost/28f3f61b-b524-45e0-9bbe-2c1550bf73d2") or an
// object REST URL
// ("http://localhost:8080/v1/objects/fc7eb129-f138-457f-b727-1b29db191a67").
// It returns the bare UUID in canonical lowercase form.
func ParseUUID(id string) (string, error) {
	candidate := id
	if IsWeaviateObjectURL(id) || IsObjectURL(id) {
		parts := strings.Split(id, "/")
		candidate = parts[len(parts)-1]
	}
	parsed, err := uuid.Parse(candidate)
	if err != nil {
		return "", fmt.Errorf("not a valid uuid and no uuid can be extracted from %q: %w", id, err)
	}
	return parsed.String(), nil
}

// IsWeaviateObjectURL reports whether the input is a Weaviate beacon like
// "weaviate://localhost/28f3f61b-b524-45e0-9bbe-2c1550bf73d2".
func IsWeaviateObjectURL(url string) bool {
	if !strings.HasPrefix(url, "weaviate://") {
		return false
	}
	parts := strings.Split(strings.TrimPrefix(url, "weaviate://"), "/")
	if len(parts) != 2 {
		return false
	}
	if parts[0] == "" {
		return false
	}
	_, err := uuid.Parse(parts[1])
	return err == nil
}

// IsObjectURL reports whether the input references an object through the
// REST API, e.g. "/v1/objects/1c9cd584-88fe-5010-83d0-017cb3fcb446".
// Only the path format and UUID are validated, not host or protocol.
func IsObjectURL(url string) bool {
	parts := strings.Split(url, "/")
	if len(parts) < 3 {
		return false
	}
	if _, err := uuid.Parse(parts[len(parts)-1]); err != nil {
		return false
	}
	if parts[len(parts)-2] != "objects" {
		return false
	}
	return parts[len(parts)-3] == "v1"
}

// LocalBeacon formats a UUID as a local beacon, the reference-pointer URI
// the server expects for cross-object relationships.
func LocalBeacon(toUUID string) (map[string]string, error) {
	id, err := ParseUUID(toUUID)
	if err != nil {
		return nil, err
	}
	return map[string]string{"beacon": "weaviate://localhost/" + id}, nil
}

// GenerateUUID5 deterministically derives a UUIDv5 from an identifier and an
// optional namespace. The same inputs always produce the same UUID, which
// makes re-imports idempotent.
func GenerateUUID5(identifier, namespace string) string {
	return uuid.NewSHA1(uuid.NameSpaceDNS, []byte(namespace+identifier)).String()
}
