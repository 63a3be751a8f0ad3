package data

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rickhofstede/weaviate-go/v1/connection"
	"github.com/rickhofstede/weaviate-go/v1/util"
)

// Connection is the transport capability the data client needs. The
// concrete connection.Connection satisfies it.
//
//go:generate mockgen -source=data.go -destination=mock_connection.go -package=data
type Connection interface {
	Post(ctx context.Context, path string, payload interface{}) (*connection.Response, error)
	Put(ctx context.Context, path string, payload interface{}) (*connection.Response, error)
	Patch(ctx context.Context, path string, payload interface{}) (*connection.Response, error)
	Get(ctx context.Context, path string, params url.Values) (*connection.Response, error)
	Delete(ctx context.Context, path string, payload interface{}) (*connection.Response, error)
	TimeoutConfig() (connect, read time.Duration)
}

// Object is one Weaviate object as returned by the server.
type Object struct {
	Class              string                 `json:"class"`
	Properties         map[string]interface{} `json:"properties"`
	ID                 string                 `json:"id,omitempty"`
	Vector             []float32              `json:"vector,omitempty"`
	CreationTimeUnix   int64                  `json:"creationTimeUnix,omitempty"`
	LastUpdateTimeUnix int64                  `json:"lastUpdateTimeUnix,omitempty"`
	Additional         map[string]interface{} `json:"additional,omitempty"`
	VectorWeights      map[string]string      `json:"vectorWeights,omitempty"`
}

// ValidationResult is the outcome of validating an object against the
// server's schema.
type ValidationResult struct {
	Valid bool
	Error []map[string]interface{}
}

// Client manipulates individual objects. For bulk imports use the batch
// package instead; it trades per-item validation for throughput.
type Client struct {
	conn Connection
}

// NewClient returns a data client talking through the given connection.
func NewClient(conn Connection) *Client {
	return &Client{conn: conn}
}

// Create adds one object and returns the UUID the server stored it under.
// id may be empty, in which case the server generates one. An existing
// UUID yields an *ObjectAlreadyExistsError.
func (c *Client) Create(ctx context.Context, properties map[string]interface{}, className, id string, vector []float32) (string, error) {
	if className == "" {
		return "", fmt.Errorf("data: class name must not be empty")
	}

	obj := Object{
		Class:      className,
		Properties: properties,
		Vector:     vector,
	}
	if id != "" {
		parsed, err := util.ParseUUID(id)
		if err != nil {
			return "", err
		}
		obj.ID = parsed
	}

	resp, err := c.conn.Post(ctx, "/objects", obj)
	if err != nil {
		return "", fmt.Errorf("object was not added: %w", err)
	}

	if resp.StatusCode == http.StatusOK {
		var created struct {
			ID string `json:"id"`
		}
		if err := resp.DecodeJSON(&created); err != nil {
			return "", err
		}
		return created.ID, nil
	}

	if alreadyExists(resp) {
		return "", &ObjectAlreadyExistsError{ID: obj.ID}
	}
	return "", connection.NewUnexpectedStatusCodeError("Creating object", resp)
}

// Update merges the given properties into an existing object. Properties
// absent from the map remain unchanged on the server.
func (c *Client) Update(ctx context.Context, properties map[string]interface{}, className, id string, vector []float32) error {
	obj, path, err := objectPayload(properties, className, id, vector)
	if err != nil {
		return err
	}

	resp, err := c.conn.Patch(ctx, path, obj)
	if err != nil {
		return fmt.Errorf("object was not updated: %w", err)
	}
	if resp.StatusCode == http.StatusNoContent {
		return nil
	}
	return connection.NewUnexpectedStatusCodeError("Update of the object not successful", resp)
}

// Replace overwrites the whole object with the given one.
func (c *Client) Replace(ctx context.Context, properties map[string]interface{}, className, id string, vector []float32) error {
	obj, path, err := objectPayload(properties, className, id, vector)
	if err != nil {
		return err
	}

	resp, err := c.conn.Put(ctx, path, obj)
	if err != nil {
		return fmt.Errorf("object was not replaced: %w", err)
	}
	if resp.StatusCode == http.StatusOK {
		return nil
	}
	return connection.NewUnexpectedStatusCodeError("Replace object", resp)
}

// GetByID retrieves one object. A missing object yields (nil, nil).
// additionalProperties are added to the include query parameter;
// withVector also requests the object's embedding.
func (c *Client) GetByID(ctx context.Context, id string, additionalProperties []string, withVector bool) (*Object, error) {
	parsed, err := util.ParseUUID(id)
	if err != nil {
		return nil, err
	}

	resp, err := c.getResponse(ctx, parsed, additionalProperties, withVector)
	if err != nil {
		return nil, fmt.Errorf("could not get object: %w", err)
	}

	switch resp.StatusCode {
	case http.StatusOK:
		var obj Object
		if err := resp.DecodeJSON(&obj); err != nil {
			return nil, err
		}
		return &obj, nil
	case http.StatusNotFound:
		return nil, nil
	default:
		return nil, connection.NewUnexpectedStatusCodeError("Get object", resp)
	}
}

// Get lists objects; the server caps the result at 100.
func (c *Client) Get(ctx context.Context, additionalProperties []string, withVector bool) ([]Object, error) {
	resp, err := c.getResponse(ctx, "", additionalProperties, withVector)
	if err != nil {
		return nil, fmt.Errorf("could not get objects: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, connection.NewUnexpectedStatusCodeError("Get objects", resp)
	}

	var listing struct {
		Objects []Object `json:"objects"`
	}
	if err := resp.DecodeJSON(&listing); err != nil {
		return nil, err
	}
	return listing.Objects, nil
}

// Delete removes an existing object.
func (c *Client) Delete(ctx context.Context, id string) error {
	parsed, err := util.ParseUUID(id)
	if err != nil {
		return err
	}

	resp, err := c.conn.Delete(ctx, "/objects/"+parsed, nil)
	if err != nil {
		return fmt.Errorf("object could not be deleted: %w", err)
	}
	if resp.StatusCode == http.StatusNoContent {
		return nil
	}
	return connection.NewUnexpectedStatusCodeError("Delete object", resp)
}

// Exists reports whether an object with the given UUID is stored.
func (c *Client) Exists(ctx context.Context, id string) (bool, error) {
	parsed, err := util.ParseUUID(id)
	if err != nil {
		return false, err
	}

	resp, err := c.getResponse(ctx, parsed, nil, false)
	if err != nil {
		return false, err
	}

	switch resp.StatusCode {
	case http.StatusOK:
		return true, nil
	case http.StatusNotFound:
		return false, nil
	default:
		return false, connection.NewUnexpectedStatusCodeError("Object exists", resp)
	}
}

// Validate checks an object against the server's schema without storing
// it. A 422 response is not an error; it comes back as an invalid result
// carrying the server's error list.
func (c *Client) Validate(ctx context.Context, properties map[string]interface{}, className, id string) (*ValidationResult, error) {
	if className == "" {
		return nil, fmt.Errorf("data: class name must not be empty")
	}

	obj := Object{
		Class:      className,
		Properties: properties,
	}
	if id != "" {
		parsed, err := util.ParseUUID(id)
		if err != nil {
			return nil, err
		}
		obj.ID = parsed
	}

	resp, err := c.conn.Post(ctx, "/objects/validate", obj)
	if err != nil {
		return nil, fmt.Errorf("object was not validated: %w", err)
	}

	switch resp.StatusCode {
	case http.StatusOK:
		return &ValidationResult{Valid: true}, nil
	case http.StatusUnprocessableEntity:
		var body struct {
			Error []map[string]interface{} `json:"error"`
		}
		if err := resp.DecodeJSON(&body); err != nil {
			return nil, err
		}
		return &ValidationResult{Valid: false, Error: body.Error}, nil
	default:
		return nil, connection.NewUnexpectedStatusCodeError("Validate object", resp)
	}
}

func (c *Client) getResponse(ctx context.Context, id string, additionalProperties []string, withVector bool) (*connection.Response, error) {
	params := url.Values{}
	include := additionalProperties
	if withVector {
		include = append(include, "vector")
	}
	if len(include) > 0 {
		params.Set("include", strings.Join(include, ","))
	}

	path := "/objects"
	if id != "" {
		path += "/" + id
	}
	return c.conn.Get(ctx, path, params)
}

func objectPayload(properties map[string]interface{}, className, id string, vector []float32) (Object, string, error) {
	if className == "" {
		return Object{}, "", fmt.Errorf("data: class name must not be empty")
	}
	parsed, err := util.ParseUUID(id)
	if err != nil {
		return Object{}, "", err
	}

	return Object{
		ID:         parsed,
		Class:      className,
		Properties: properties,
		Vector:     vector,
	}, "/objects/" + parsed, nil
}
