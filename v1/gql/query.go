package gql

// Query is the entry point for building GraphQL queries; one instance is
// reused for any number of queries.
type Query struct {
	conn Connection
}

// NewQuery returns a query client talking through the given connection.
func NewQuery(conn Connection) *Query {
	return &Query{conn: conn}
}

// Get starts a Get query for className selecting the given properties.
func (q *Query) Get(className string, properties ...string) *GetBuilder {
	return NewGetBuilder(q.conn, className, properties...)
}

// Aggregate starts an Aggregate query for className.
func (q *Query) Aggregate(className string) *AggregateBuilder {
	return NewAggregateBuilder(q.conn, className)
}
