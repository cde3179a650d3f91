package zeppelin

import "context"

// AsyncClient mirrors every Client operation with non-blocking call sites:
// each method issues the request immediately and returns a Future that
// resolves exactly once. Outstanding calls are independent and may complete
// in any order. Bodies, parsing and error classification are identical to
// the blocking client — both delegate to the same wire core.
type AsyncClient struct {
	c *Client
}

// Async returns the non-blocking view of the client. Both views share the
// client's connection pool; Close on either releases it.
func (c *Client) Async() *AsyncClient {
	return &AsyncClient{c: c}
}

// Close releases the underlying connection pool. Idempotent.
func (a *AsyncClient) Close() { a.c.Close() }

// Future is the pending result of an async operation.
type Future[T any] struct {
	done chan struct{}
	val  T
	err  error
}

func newFuture[T any](fn func() (T, error)) *Future[T] {
	f := &Future[T]{done: make(chan struct{})}
	go func() {
		f.val, f.err = fn()
		close(f.done)
	}()
	return f
}

// Wait blocks until the operation resolves or ctx is done. The in-flight
// request itself is governed by the context given at the call site; Wait's
// context only abandons the wait.
func (f *Future[T]) Wait(ctx context.Context) (T, error) {
	select {
	case <-f.done:
		return f.val, f.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// Done returns a channel closed when the operation resolves.
func (f *Future[T]) Done() <-chan struct{} { return f.done }

// Health checks server health.
func (a *AsyncClient) Health(ctx context.Context) *Future[map[string]any] {
	return newFuture(func() (map[string]any, error) { return a.c.Health(ctx) })
}

// Ready checks server readiness.
func (a *AsyncClient) Ready(ctx context.Context) *Future[map[string]any] {
	return newFuture(func() (map[string]any, error) { return a.c.Ready(ctx) })
}

// CreateNamespace creates a new namespace.
func (a *AsyncClient) CreateNamespace(
	ctx context.Context, name string, dimensions int, opts ...NamespaceOption,
) *Future[Namespace] {
	return newFuture(func() (Namespace, error) {
		return a.c.Namespaces().Create(ctx, name, dimensions, opts...)
	})
}

// ListNamespaces returns all namespaces in server order.
func (a *AsyncClient) ListNamespaces(
	ctx context.Context, opts ...ListOption,
) *Future[[]Namespace] {
	return newFuture(func() ([]Namespace, error) {
		return a.c.Namespaces().List(ctx, opts...)
	})
}

// GetNamespace retrieves namespace metadata by name.
func (a *AsyncClient) GetNamespace(ctx context.Context, name string) *Future[Namespace] {
	return newFuture(func() (Namespace, error) {
		return a.c.Namespaces().Get(ctx, name)
	})
}

// DeleteNamespace removes a namespace and all its data.
func (a *AsyncClient) DeleteNamespace(ctx context.Context, name string) *Future[struct{}] {
	return newFuture(func() (struct{}, error) {
		return struct{}{}, a.c.Namespaces().Delete(ctx, name)
	})
}

// UpsertVectors inserts or replaces vectors. Returns the server-reported count.
func (a *AsyncClient) UpsertVectors(
	ctx context.Context, namespace string, vectors []Vector,
) *Future[int] {
	return newFuture(func() (int, error) {
		return a.c.Vectors(namespace).Upsert(ctx, vectors)
	})
}

// DeleteVectors removes vectors by ID. Returns the server-reported count.
func (a *AsyncClient) DeleteVectors(
	ctx context.Context, namespace string, ids []string,
) *Future[int] {
	return newFuture(func() (int, error) {
		return a.c.Vectors(namespace).Delete(ctx, ids)
	})
}

// Query runs a vector similarity search or a BM25 full-text search.
func (a *AsyncClient) Query(
	ctx context.Context, namespace string, req QueryRequest,
) *Future[QueryResponse] {
	return newFuture(func() (QueryResponse, error) {
		return a.c.Search(namespace).Query(ctx, req)
	})
}
