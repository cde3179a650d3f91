package zeppelin

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/zeppelin-db/zeppelin-go/internal/api"
)

// NamespaceService manages namespaces.
type NamespaceService struct {
	api *api.Client
	obs *observer
}

// NamespaceOption configures namespace creation.
type NamespaceOption interface {
	applyNamespace(*namespaceConfig)
}

// namespaceOptionFunc adapts a function to the NamespaceOption interface.
type namespaceOptionFunc func(*namespaceConfig)

func (f namespaceOptionFunc) applyNamespace(c *namespaceConfig) { f(c) }

type namespaceConfig struct {
	distanceMetric string
	fullTextSearch map[string]FtsFieldConfig
}

// WithDistanceMetric sets the distance metric for the namespace.
// Defaults to "cosine".
func WithDistanceMetric(metric string) NamespaceOption {
	return namespaceOptionFunc(func(c *namespaceConfig) {
		c.distanceMetric = metric
	})
}

// WithFullTextField enables full-text search on an attribute field with the
// given per-field configuration.
func WithFullTextField(field string, cfg FtsFieldConfig) NamespaceOption {
	return namespaceOptionFunc(func(c *namespaceConfig) {
		if c.fullTextSearch == nil {
			c.fullTextSearch = make(map[string]FtsFieldConfig)
		}
		c.fullTextSearch[field] = cfg
	})
}

// ListOption configures namespace listing.
type ListOption interface {
	applyList(*listConfig)
}

// listOptionFunc adapts a function to the ListOption interface.
type listOptionFunc func(*listConfig)

func (f listOptionFunc) applyList(c *listConfig) { f(c) }

type listConfig struct {
	prefix string
}

// WithPrefix restricts the listing to namespaces whose name starts with
// the given prefix.
func WithPrefix(prefix string) ListOption {
	return listOptionFunc(func(c *listConfig) {
		c.prefix = prefix
	})
}

type createNamespaceRequest struct {
	Name           string                    `json:"name"`
	Dimensions     int                       `json:"dimensions"`
	DistanceMetric string                    `json:"distance_metric"`
	FullTextSearch map[string]FtsFieldConfig `json:"full_text_search,omitempty"`
}

// Create creates a new namespace. Server-assigned fields (vector count,
// timestamps) come back in the returned Namespace.
func (s *NamespaceService) Create(
	ctx context.Context, name string, dimensions int, opts ...NamespaceOption,
) (_ Namespace, err error) {
	start := time.Now()
	defer func() { s.obs.observe("namespace.create", start, err) }()

	cfg := &namespaceConfig{distanceMetric: "cosine"}
	for _, o := range opts {
		o.applyNamespace(cfg)
	}

	body := createNamespaceRequest{
		Name:           name,
		Dimensions:     dimensions,
		DistanceMetric: cfg.distanceMetric,
	}
	if len(cfg.fullTextSearch) > 0 {
		body.FullTextSearch = cfg.fullTextSearch
	}

	var ns Namespace
	if err = s.api.Do(ctx, http.MethodPost, "/v1/namespaces", nil, body, &ns); err != nil {
		return Namespace{}, fmt.Errorf("create namespace: %w", err)
	}
	return ns, nil
}

// List returns all namespaces in server order.
func (s *NamespaceService) List(
	ctx context.Context, opts ...ListOption,
) (_ []Namespace, err error) {
	start := time.Now()
	defer func() { s.obs.observe("namespace.list", start, err) }()

	cfg := &listConfig{}
	for _, o := range opts {
		o.applyList(cfg)
	}

	var query url.Values
	if cfg.prefix != "" {
		query = url.Values{"prefix": []string{cfg.prefix}}
	}

	var out []Namespace
	if err = s.api.Do(ctx, http.MethodGet, "/v1/namespaces", query, nil, &out); err != nil {
		return nil, fmt.Errorf("list namespaces: %w", err)
	}
	return out, nil
}

// Get retrieves namespace metadata by name.
func (s *NamespaceService) Get(
	ctx context.Context, name string,
) (_ Namespace, err error) {
	start := time.Now()
	defer func() { s.obs.observe("namespace.get", start, err) }()

	var ns Namespace
	if err = s.api.Do(ctx, http.MethodGet, namespacePath(name), nil, nil, &ns); err != nil {
		return Namespace{}, fmt.Errorf("get namespace: %w", err)
	}
	return ns, nil
}

// Delete removes a namespace and all its data.
func (s *NamespaceService) Delete(
	ctx context.Context, name string,
) (err error) {
	start := time.Now()
	defer func() { s.obs.observe("namespace.delete", start, err) }()

	if err = s.api.Do(ctx, http.MethodDelete, namespacePath(name), nil, nil, nil); err != nil {
		return fmt.Errorf("delete namespace: %w", err)
	}
	return nil
}

func namespacePath(name string) string {
	return "/v1/namespaces/" + url.PathEscape(name)
}
