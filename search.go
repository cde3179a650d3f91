package zeppelin

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/zeppelin-db/zeppelin-go/internal/api"
)

// DefaultTopK is used when QueryRequest.TopK is zero.
const DefaultTopK = 10

// Int returns a pointer to v, for optional fields like QueryRequest.Nprobe.
func Int(v int) *int { return &v }

// SearchService runs queries against a single namespace.
type SearchService struct {
	namespace string
	api       *api.Client
	obs       *observer
	strict    bool
	embedder  Embedder
}

// QueryRequest describes one query. Exactly one of Vector or RankBy should
// be set; the server rejects invalid combinations unless
// WithStrictQueryValidation moves that check client-side. Optional fields
// are sent only when set.
type QueryRequest struct {
	// Vector runs a similarity search against the namespace vectors.
	Vector []float32
	// RankBy runs a BM25 full-text search; build it with BM25, Sum, Max
	// and Product.
	RankBy RankBy
	// TopK limits the number of results. Zero means DefaultTopK.
	TopK int
	// Filter restricts candidates to those matching the predicate tree.
	Filter Filter
	// Consistency is an opaque staleness hint (e.g. "eventual").
	Consistency string
	// Nprobe tunes how many index partitions the server scans. Nil is
	// unset; an explicit zero is sent as-is. Build it with Int.
	Nprobe *int
	// LastAsPrefix treats the last token of a BM25 query as a prefix.
	LastAsPrefix bool
}

func (r QueryRequest) body() map[string]any {
	topK := r.TopK
	if topK == 0 {
		topK = DefaultTopK
	}
	body := map[string]any{"top_k": topK}
	if r.Vector != nil {
		body["vector"] = r.Vector
	}
	if r.RankBy != nil {
		body["rank_by"] = r.RankBy
	}
	if r.LastAsPrefix {
		body["last_as_prefix"] = true
	}
	if r.Filter != nil {
		body["filter"] = r.Filter
	}
	if r.Consistency != "" {
		body["consistency"] = r.Consistency
	}
	if r.Nprobe != nil {
		body["nprobe"] = *r.Nprobe
	}
	return body
}

// Query runs a vector similarity search or a BM25 full-text search.
func (s *SearchService) Query(
	ctx context.Context, req QueryRequest,
) (_ QueryResponse, err error) {
	start := time.Now()
	defer func() { s.obs.observe("search.query", start, err) }()

	if s.strict && (req.Vector == nil) == (req.RankBy == nil) {
		err = errors.New("query: exactly one of Vector or RankBy must be set")
		return QueryResponse{}, err
	}

	var out QueryResponse
	path := namespacePath(s.namespace) + "/query"
	if err = s.api.Do(ctx, http.MethodPost, path, nil, req.body(), &out); err != nil {
		return QueryResponse{}, fmt.Errorf("query: %w", err)
	}
	return out, nil
}

// QueryText embeds the text with the client's Embedder and runs a vector
// similarity search. req.Vector and req.RankBy must be unset.
func (s *SearchService) QueryText(
	ctx context.Context, text string, req QueryRequest,
) (_ QueryResponse, err error) {
	start := time.Now()
	defer func() { s.obs.observe("search.query_text", start, err) }()

	if s.embedder == nil {
		err = errors.New("query text: embedder not configured (use WithEmbedder)")
		return QueryResponse{}, err
	}
	if req.Vector != nil || req.RankBy != nil {
		err = errors.New("query text: Vector and RankBy must be unset")
		return QueryResponse{}, err
	}

	vec, err := s.embedder.Embed(ctx, text)
	if err != nil {
		return QueryResponse{}, fmt.Errorf("query text: embed: %w", err)
	}
	req.Vector = vec

	var out QueryResponse
	path := namespacePath(s.namespace) + "/query"
	if err = s.api.Do(ctx, http.MethodPost, path, nil, req.body(), &out); err != nil {
		return QueryResponse{}, fmt.Errorf("query text: %w", err)
	}
	return out, nil
}
