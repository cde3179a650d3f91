package zeppelin

import "context"

// Embedder converts query text to a vector in the namespace's dimensions.
// Only needed for QueryText; raw vector and BM25 queries work without it.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
}
