// Package gql builds and runs GraphQL queries against Weaviate.
//
// Two builders cover the query surface: GetBuilder retrieves objects,
// AggregateBuilder computes aggregations. Both render to a query string
// with Build and post it to /graphql with Do.
//
//	response, err := gql.NewGetBuilder(conn, "Article", "title", "author").
//	    WithWhere(&gql.Where{
//	        Path:     []string{"wordCount"},
//	        Operator: "GreaterThan",
//	        ValueInt: gql.Int(1000),
//	    }).
//	    WithNearText(&gql.NearText{
//	        Concepts:  []string{"fashion"},
//	        Certainty: 0.7,
//	    }).
//	    WithLimit(10).
//	    Do(ctx)
//
// Builder methods record the first error and return the builder, so calls
// chain without intermediate checks; Build or Do surface the error. A
// GraphQL query can fail partially, which is why Do returns the decoded
// response even when it carries entries in Errors.
package gql
