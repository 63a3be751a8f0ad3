// Package data manipulates individual Weaviate objects over the REST API.
//
// Every operation validates its object against the server's schema, which
// makes this client the safe (and slower) counterpart to the batch
// package's bulk imports.
//
//	client := data.NewClient(conn)
//
//	id, err := client.Create(ctx, map[string]interface{}{
//	    "name": "Neil Gaiman",
//	    "age":  60,
//	}, "Author", "", nil)
//
// A GetByID for a missing object returns (nil, nil) rather than an error,
// mirroring the server's 404 semantics; Exists wraps the same call when
// only presence matters.
package data
