package zeppelin

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/zeppelin-db/zeppelin-go/internal/api"
)

// VectorService manages vectors within a single namespace.
type VectorService struct {
	namespace string
	api       *api.Client
	obs       *observer
	putUpsert bool
}

type upsertVectorsRequest struct {
	Vectors []Vector `json:"vectors"`
}

type upsertVectorsResponse struct {
	Upserted int `json:"upserted"`
}

type deleteVectorsRequest struct {
	IDs []string `json:"ids"`
}

type deleteVectorsResponse struct {
	Deleted int `json:"deleted"`
}

// Upsert inserts or replaces vectors. The returned count is the one reported
// by the server, never recomputed from the input.
func (s *VectorService) Upsert(
	ctx context.Context, vectors []Vector,
) (_ int, err error) {
	start := time.Now()
	defer func() { s.obs.observe("vector.upsert", start, err) }()

	method := http.MethodPost
	if s.putUpsert {
		method = http.MethodPut
	}

	var out upsertVectorsResponse
	err = s.api.Do(ctx, method, s.path(), nil, upsertVectorsRequest{Vectors: vectors}, &out)
	if err != nil {
		return 0, fmt.Errorf("upsert vectors: %w", err)
	}
	return out.Upserted, nil
}

// Delete removes vectors by ID. The returned count is the one reported by
// the server.
func (s *VectorService) Delete(
	ctx context.Context, ids []string,
) (_ int, err error) {
	start := time.Now()
	defer func() { s.obs.observe("vector.delete", start, err) }()

	var out deleteVectorsResponse
	err = s.api.Do(ctx, http.MethodDelete, s.path(), nil, deleteVectorsRequest{IDs: ids}, &out)
	if err != nil {
		return 0, fmt.Errorf("delete vectors: %w", err)
	}
	return out.Deleted, nil
}

func (s *VectorService) path() string {
	return namespacePath(s.namespace) + "/vectors"
}
