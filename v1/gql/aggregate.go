package gql

import (
	"context"
	"fmt"
	"strings"
)

// AggregateBuilder assembles a GraphQL Aggregate query for one class.
type AggregateBuilder struct {
	conn Connection

	className     string
	withMetaCount bool
	fields        []string
	where         *Where
	groupBy       []string

	usesFilter bool
	err        error
}

// NewAggregateBuilder starts an Aggregate query for className.
func NewAggregateBuilder(conn Connection, className string) *AggregateBuilder {
	b := &AggregateBuilder{conn: conn, className: className}
	if className == "" {
		b.err = fmt.Errorf("gql: class name must not be empty")
	}
	return b
}

// WithMetaCount includes the object count in the result.
func (b *AggregateBuilder) WithMetaCount() *AggregateBuilder {
	b.withMetaCount = true
	return b
}

// WithFields includes an aggregation field, e.g. "wordCount { count mean }".
func (b *AggregateBuilder) WithFields(field string) *AggregateBuilder {
	b.fields = append(b.fields, field)
	return b
}

// WithWhere restricts the aggregation with a where filter.
func (b *AggregateBuilder) WithWhere(where *Where) *AggregateBuilder {
	if _, err := where.render(); err != nil {
		if b.err == nil {
			b.err = err
		}
		return b
	}
	b.where = where
	b.usesFilter = true
	return b
}

// WithGroupByFilter groups the aggregation by the given properties. The
// matching groupedBy fields usually need a WithFields clause as well.
func (b *AggregateBuilder) WithGroupByFilter(properties ...string) *AggregateBuilder {
	b.groupBy = properties
	b.usesFilter = true
	return b
}

// Build renders the query string.
func (b *AggregateBuilder) Build() (string, error) {
	if b.err != nil {
		return "", b.err
	}

	var sb strings.Builder
	sb.WriteString("{Aggregate{" + b.className)

	if b.usesFilter {
		sb.WriteString("(")
		if b.where != nil {
			rendered, err := b.where.render()
			if err != nil {
				return "", err
			}
			sb.WriteString(rendered)
		}
		if b.groupBy != nil {
			sb.WriteString("groupBy: " + stringListJSON(b.groupBy))
		}
		sb.WriteString(")")
	}

	sb.WriteString("{")
	if b.withMetaCount {
		sb.WriteString("meta{count}")
	}
	for _, field := range b.fields {
		sb.WriteString(field)
	}
	sb.WriteString("}}}")
	return sb.String(), nil
}

// Do builds and runs the query.
func (b *AggregateBuilder) Do(ctx context.Context) (*Response, error) {
	query, err := b.Build()
	if err != nil {
		return nil, err
	}
	return runQuery(ctx, b.conn, query)
}
