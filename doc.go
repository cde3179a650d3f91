// Package zeppelin provides a Go client for the Zeppelin vector search
// service. It speaks the Zeppelin JSON-over-HTTP contract: namespace CRUD,
// vector upsert/delete, and similarity or BM25 full-text queries.
//
// # Blocking API
//
//	client, _ := zeppelin.New(zeppelin.WithBaseURL("http://localhost:8080"))
//	defer client.Close()
//
//	ns, _ := client.Namespaces().Create(ctx, "products", 128)
//	client.Vectors(ns.Name).Upsert(ctx, []zeppelin.Vector{
//	    {ID: "v1", Values: vec, Attributes: map[string]any{"color": "blue"}},
//	})
//	res, _ := client.Search(ns.Name).Query(ctx, zeppelin.QueryRequest{
//	    Vector: vec,
//	    TopK:   5,
//	    Filter: zeppelin.Eq("color", "blue"),
//	})
//
// # Async API
//
//	async := client.Async()
//	f1 := async.Query(ctx, "products", zeppelin.QueryRequest{Vector: a})
//	f2 := async.Query(ctx, "products", zeppelin.QueryRequest{Vector: b})
//	r1, _ := f1.Wait(ctx)
//	r2, _ := f2.Wait(ctx)
//
// Full-text ranking composes BM25 expressions:
//
//	rank := zeppelin.Sum(
//	    zeppelin.Product(2.0, zeppelin.BM25("title", "query")),
//	    zeppelin.BM25("body", "query"),
//	)
//
// Non-success responses surface as *zeppelin.Error values that unwrap to the
// sentinel kinds (ErrValidation, ErrNotFound, ErrConflict, ErrServer).
package zeppelin
