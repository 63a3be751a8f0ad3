package gql

import (
	"context"
	"fmt"
	"net/http"

	"github.com/rickhofstede/weaviate-go/v1/connection"
)

// Connection is the transport capability the query builders need. The
// concrete connection.Connection satisfies it.
type Connection interface {
	Post(ctx context.Context, path string, payload interface{}) (*connection.Response, error)
}

// Response is a GraphQL query result. Data is keyed by root operation
// ("Get" or "Aggregate"). A query can fail partially, in which case Data
// and Errors are both populated.
type Response struct {
	Data   map[string]interface{} `json:"data"`
	Errors []ResponseError        `json:"errors,omitempty"`
}

// ResponseError is one error entry of a GraphQL response.
type ResponseError struct {
	Message   string                   `json:"message"`
	Path      []interface{}            `json:"path,omitempty"`
	Locations []map[string]interface{} `json:"locations,omitempty"`
}

// runQuery posts a GraphQL query string and decodes the response envelope.
func runQuery(ctx context.Context, conn Connection, query string) (*Response, error) {
	resp, err := conn.Post(ctx, "/graphql", map[string]string{"query": query})
	if err != nil {
		return nil, fmt.Errorf("query was not successful: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, connection.NewUnexpectedStatusCodeError("Query was not successful", resp)
	}

	var out Response
	if err := resp.DecodeJSON(&out); err != nil {
		return nil, err
	}
	return &out, nil
}
