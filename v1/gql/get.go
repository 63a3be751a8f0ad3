package gql

import (
	"context"
	"fmt"
	"sort"
	"strings"
)

// GetBuilder assembles a GraphQL Get query for one class.
//
// Builder methods record the first error they hit; Build and Do report it.
// Only one near clause (nearText, nearVector, nearObject, nearImage) or
// ask clause can be used per query.
type GetBuilder struct {
	conn Connection

	className  string
	properties []string

	where   *Where
	nearAsk string
	limit   string

	// additionalSingle holds bare _additional properties; additionalClauses
	// maps a sub-clause (optionally with settings) to its fields.
	additionalSingle  map[string]struct{}
	additionalClauses map[string]map[string]struct{}

	containsFilter bool
	err            error
}

// NewGetBuilder starts a Get query for className selecting the given
// properties.
func NewGetBuilder(conn Connection, className string, properties ...string) *GetBuilder {
	b := &GetBuilder{
		conn:              conn,
		className:         className,
		properties:        properties,
		additionalSingle:  map[string]struct{}{},
		additionalClauses: map[string]map[string]struct{}{},
	}
	if className == "" {
		b.err = fmt.Errorf("gql: class name must not be empty")
	}
	return b
}

// WithWhere adds a where filter.
func (b *GetBuilder) WithWhere(where *Where) *GetBuilder {
	if _, err := where.render(); err != nil {
		return b.fail(err)
	}
	b.where = where
	b.containsFilter = true
	return b
}

// WithLimit caps the number of returned objects.
func (b *GetBuilder) WithLimit(limit int) *GetBuilder {
	if limit < 1 {
		return b.fail(fmt.Errorf("gql: limit must be at least 1, got %d", limit))
	}
	b.limit = fmt.Sprintf("limit: %d ", limit)
	b.containsFilter = true
	return b
}

// WithNearText adds a nearText clause.
func (b *GetBuilder) WithNearText(near *NearText) *GetBuilder {
	return b.setNearAsk(near.render())
}

// WithNearVector adds a nearVector clause.
func (b *GetBuilder) WithNearVector(near *NearVector) *GetBuilder {
	return b.setNearAsk(near.render())
}

// WithNearObject adds a nearObject clause.
func (b *GetBuilder) WithNearObject(near *NearObject) *GetBuilder {
	return b.setNearAsk(near.render())
}

// WithNearImage adds a nearImage clause. The image must already be base64
// encoded; use util.ImageEncoderB64 for files.
func (b *GetBuilder) WithNearImage(near *NearImage) *GetBuilder {
	return b.setNearAsk(near.render())
}

// WithAsk adds an ask clause.
func (b *GetBuilder) WithAsk(ask *Ask) *GetBuilder {
	return b.setNearAsk(ask.render())
}

func (b *GetBuilder) setNearAsk(rendered string, err error) *GetBuilder {
	if err != nil {
		return b.fail(err)
	}
	if b.nearAsk != "" {
		return b.fail(fmt.Errorf("gql: cannot combine multiple near clauses or a near clause with an ask clause"))
	}
	b.nearAsk = rendered
	b.containsFilter = true
	return b
}

// WithAdditional requests bare properties from the _additional clause,
// e.g. "id" or "certainty". Repeated calls accumulate.
func (b *GetBuilder) WithAdditional(properties ...string) *GetBuilder {
	for _, prop := range properties {
		if prop == "" {
			return b.fail(fmt.Errorf("gql: additional property must not be empty"))
		}
		b.additionalSingle[prop] = struct{}{}
	}
	return b
}

// WithAdditionalClause requests a nested _additional sub-clause, e.g.
// clause "classification" with fields "basedOn" and "completed". Settings
// rendered into the clause name ("token(limit: 10)") pass through as-is.
// Repeated calls for the same clause replace its fields.
func (b *GetBuilder) WithAdditionalClause(clause string, fields ...string) *GetBuilder {
	if clause == "" {
		return b.fail(fmt.Errorf("gql: additional clause must not be empty"))
	}
	if len(fields) == 0 {
		return b.fail(fmt.Errorf("gql: additional clause %q requires at least one field", clause))
	}
	set := make(map[string]struct{}, len(fields))
	for _, field := range fields {
		set[field] = struct{}{}
	}
	b.additionalClauses[clause] = set
	return b
}

// Build renders the query string.
func (b *GetBuilder) Build() (string, error) {
	if b.err != nil {
		return "", b.err
	}

	var sb strings.Builder
	sb.WriteString("{Get{" + b.className)

	if b.containsFilter {
		sb.WriteString("(")
		if b.where != nil {
			rendered, err := b.where.render()
			if err != nil {
				return "", err
			}
			sb.WriteString(rendered)
		}
		sb.WriteString(b.limit)
		sb.WriteString(b.nearAsk)
		sb.WriteString(")")
	}

	properties := strings.Join(b.properties, " ") + b.additionalToString()
	if properties != "" {
		sb.WriteString("{" + properties + "}")
	}
	sb.WriteString("}}")
	return sb.String(), nil
}

// Do builds and runs the query.
func (b *GetBuilder) Do(ctx context.Context) (*Response, error) {
	query, err := b.Build()
	if err != nil {
		return nil, err
	}
	return runQuery(ctx, b.conn, query)
}

func (b *GetBuilder) additionalToString() string {
	if len(b.additionalSingle) == 0 && len(b.additionalClauses) == 0 {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(" _additional {")
	for _, prop := range sortedKeys(b.additionalSingle) {
		sb.WriteString(prop + " ")
	}
	for _, clause := range sortedKeys(b.additionalClauses) {
		sb.WriteString(clause + " {")
		for _, field := range sortedKeys(b.additionalClauses[clause]) {
			sb.WriteString(field + " ")
		}
		sb.WriteString("} ")
	}
	sb.WriteString("}")
	return sb.String()
}

func (b *GetBuilder) fail(err error) *GetBuilder {
	if b.err == nil {
		b.err = err
	}
	return b
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
