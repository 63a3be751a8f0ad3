package gql

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rickhofstede/weaviate-go/v1/connection"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAggregateBuilderMetaCount(t *testing.T) {
	query, err := NewAggregateBuilder(nil, "Person").WithMetaCount().Build()
	require.NoError(t, err)
	assert.Equal(t, "{Aggregate{Person{meta{count}}}}", query)
}

func TestAggregateBuilderWithFields(t *testing.T) {
	query, err := NewAggregateBuilder(nil, "Article").
		WithFields("wordCount {count mean}").
		Build()
	require.NoError(t, err)
	assert.Equal(t, "{Aggregate{Article{wordCount {count mean}}}}", query)
}

func TestAggregateBuilderMetaCountAndFields(t *testing.T) {
	query, err := NewAggregateBuilder(nil, "Article").
		WithMetaCount().
		WithFields("wordCount {count}").
		Build()
	require.NoError(t, err)
	assert.Equal(t, "{Aggregate{Article{meta{count}wordCount {count}}}}", query)
}

func TestAggregateBuilderWithWhere(t *testing.T) {
	query, err := NewAggregateBuilder(nil, "Article").
		WithMetaCount().
		WithWhere(&Where{
			Path:        []string{"title"},
			Operator:    "Equal",
			ValueString: String("Hello"),
		}).
		Build()
	require.NoError(t, err)
	assert.Equal(t,
		`{Aggregate{Article(where: {path: ["title"] operator: Equal valueString: "Hello"} ){meta{count}}}}`,
		query)
}

func TestAggregateBuilderWithGroupBy(t *testing.T) {
	query, err := NewAggregateBuilder(nil, "Person").
		WithMetaCount().
		WithFields("groupedBy {value}").
		WithGroupByFilter("city").
		Build()
	require.NoError(t, err)
	assert.Equal(t,
		`{Aggregate{Person(groupBy: ["city"]){meta{count}groupedBy {value}}}}`,
		query)
}

func TestAggregateBuilderRejectsEmptyClassName(t *testing.T) {
	_, err := NewAggregateBuilder(nil, "").WithMetaCount().Build()
	assert.Error(t, err)
}

func TestAggregateBuilderRejectsInvalidWhere(t *testing.T) {
	_, err := NewAggregateBuilder(nil, "Person").
		WithWhere(&Where{Path: []string{"name"}}).
		Build()
	assert.Error(t, err)
}

func TestAggregateBuilderDo(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/graphql", r.URL.Path)
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"data":{"Aggregate":{"Person":[{"meta":{"count":42}}]}}}`))
	}))
	t.Cleanup(srv.Close)

	host := strings.TrimPrefix(srv.URL, "http://")
	conn, err := connection.NewConnection(connection.ConnectionParams{
		Config: connection.FromHost(host),
	})
	require.NoError(t, err)

	response, err := NewQuery(conn).Aggregate("Person").WithMetaCount().Do(context.Background())
	require.NoError(t, err)
	assert.Contains(t, response.Data, "Aggregate")
}

func TestResponseDecodesPartialFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"data":{"Get":{"Person":null}},"errors":[{"message":"no vectorizer module","path":["Get","Person"]}]}`))
	}))
	t.Cleanup(srv.Close)

	host := strings.TrimPrefix(srv.URL, "http://")
	conn, err := connection.NewConnection(connection.ConnectionParams{
		Config: connection.FromHost(host),
	})
	require.NoError(t, err)

	response, err := NewQuery(conn).Get("Person", "name").Do(context.Background())
	require.NoError(t, err)
	require.Len(t, response.Errors, 1)
	assert.Equal(t, "no vectorizer module", response.Errors[0].Message)
	assert.Contains(t, response.Data, "Get")
}
