package weaviate

import (
	"context"
	"net/http"

	"go.uber.org/fx"

	"github.com/rickhofstede/weaviate-go/v1/batch"
	"github.com/rickhofstede/weaviate-go/v1/connection"
	"github.com/rickhofstede/weaviate-go/v1/data"
	"github.com/rickhofstede/weaviate-go/v1/gql"
)

// Client is the top-level Weaviate client. It bundles the sub-clients
// behind one connection: Batch for bulk imports, Data for object CRUD,
// and Query for GraphQL.
type Client struct {
	// Batch collects objects and references and submits them in bulk.
	Batch *batch.Batch

	// Data performs CRUD on individual objects.
	Data *data.Client

	// Query builds and runs GraphQL Get and Aggregate queries.
	Query *gql.Query

	conn *connection.Connection
}

// ClientParams groups the dependencies needed to assemble a Client.
type ClientParams struct {
	fx.In

	Connection *connection.Connection
	Batch      *batch.Batch
	Data       *data.Client
	Query      *gql.Query
}

// NewClient assembles a Client from already-built parts. Most callers
// want New instead; the fx module uses this constructor.
func NewClient(p ClientParams) *Client {
	return &Client{
		Batch: p.Batch,
		Data:  p.Data,
		Query: p.Query,
		conn:  p.Connection,
	}
}

// New builds a complete client from a connection config.
//
// Example:
//
//	client, err := weaviate.New(connection.FromHost("localhost:8080"))
//
// The sub-clients run without logging or metrics; to attach those, build
// the parts yourself (see the package documentation) or use the fx
// modules.
func New(cfg *connection.Config) (*Client, error) {
	conn, err := connection.NewConnection(connection.ConnectionParams{Config: cfg})
	if err != nil {
		return nil, err
	}
	return NewClient(ClientParams{
		Connection: conn,
		Batch:      batch.NewBatch(conn),
		Data:       data.NewClient(conn),
		Query:      gql.NewQuery(conn),
	}), nil
}

// IsReady reports whether the server is ready to receive requests.
func (c *Client) IsReady(ctx context.Context) (bool, error) {
	resp, err := c.conn.Get(ctx, "/.well-known/ready", nil)
	if err != nil {
		return false, err
	}
	return resp.StatusCode == http.StatusOK, nil
}

// IsLive reports whether the server is up at all.
func (c *Client) IsLive(ctx context.Context) (bool, error) {
	resp, err := c.conn.Get(ctx, "/.well-known/live", nil)
	if err != nil {
		return false, err
	}
	return resp.StatusCode == http.StatusOK, nil
}

// GetMeta returns the server metadata: hostname, version, and the
// configured modules.
func (c *Client) GetMeta(ctx context.Context) (map[string]interface{}, error) {
	resp, err := c.conn.Get(ctx, "/meta", nil)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, connection.NewUnexpectedStatusCodeError("Meta endpoint", resp)
	}

	var meta map[string]interface{}
	if err := resp.DecodeJSON(&meta); err != nil {
		return nil, err
	}
	return meta, nil
}
