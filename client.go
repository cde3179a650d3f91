package zeppelin

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/zeppelin-db/zeppelin-go/internal/api"
	"github.com/zeppelin-db/zeppelin-go/internal/version"
)

// DefaultBaseURL is the server address used when WithBaseURL is not given.
const DefaultBaseURL = "http://localhost:8080"

// Client is the blocking Zeppelin SDK entry point. It holds one underlying
// connection pool and is safe for concurrent use by multiple goroutines.
type Client struct {
	api *api.Client
	obs *observer

	embedder        Embedder
	legacyPutUpsert bool
	strictQuery     bool

	ownsTransport bool
	closeOnce     sync.Once
}

// New creates a Client. The transport resource is acquired here and released
// by Close.
func New(opts ...Option) (*Client, error) {
	cfg := &clientConfig{
		baseURL: DefaultBaseURL,
		headers: make(map[string]string),
	}
	for _, o := range opts {
		o.apply(cfg)
	}

	ua := cfg.userAgent
	if ua == "" {
		ua = "zeppelin-go/" + version.Version
	}

	apiClient, err := api.New(api.Config{
		BaseURL:    cfg.baseURL,
		Timeout:    cfg.timeout,
		Headers:    cfg.headers,
		UserAgent:  ua,
		HTTPClient: cfg.httpClient,
	})
	if err != nil {
		return nil, fmt.Errorf("zeppelin: %w", err)
	}

	obs, err := newObserver(cfg.logger, cfg.metricsReg)
	if err != nil {
		return nil, err
	}

	return &Client{
		api:             apiClient,
		obs:             obs,
		embedder:        cfg.embedder,
		legacyPutUpsert: cfg.legacyPutUpsert,
		strictQuery:     cfg.strictQuery,
		ownsTransport:   cfg.httpClient == nil,
	}, nil
}

// Close releases the underlying connection pool. It is idempotent and a
// no-op when the transport was supplied via WithHTTPClient.
func (c *Client) Close() {
	c.closeOnce.Do(func() {
		if c.ownsTransport {
			c.api.CloseIdleConnections()
		}
	})
}

// Health checks server health. The response structure is opaque to the
// client and returned verbatim.
func (c *Client) Health(ctx context.Context) (_ map[string]any, err error) {
	start := time.Now()
	defer func() { c.obs.observe("health", start, err) }()

	var out map[string]any
	if err = c.api.Do(ctx, http.MethodGet, "/healthz", nil, nil, &out); err != nil {
		return nil, fmt.Errorf("health: %w", err)
	}
	return out, nil
}

// Ready checks server readiness, including storage connectivity.
// The response structure is opaque to the client and returned verbatim.
func (c *Client) Ready(ctx context.Context) (_ map[string]any, err error) {
	start := time.Now()
	defer func() { c.obs.observe("ready", start, err) }()

	var out map[string]any
	if err = c.api.Do(ctx, http.MethodGet, "/readyz", nil, nil, &out); err != nil {
		return nil, fmt.Errorf("ready: %w", err)
	}
	return out, nil
}

// Namespaces returns the namespace management service.
func (c *Client) Namespaces() *NamespaceService {
	return &NamespaceService{api: c.api, obs: c.obs}
}

// Vectors returns the vector service for a given namespace.
func (c *Client) Vectors(namespace string) *VectorService {
	return &VectorService{
		namespace: namespace,
		api:       c.api,
		obs:       c.obs,
		putUpsert: c.legacyPutUpsert,
	}
}

// Search returns the search service for a given namespace.
func (c *Client) Search(namespace string) *SearchService {
	return &SearchService{
		namespace: namespace,
		api:       c.api,
		obs:       c.obs,
		strict:    c.strictQuery,
		embedder:  c.embedder,
	}
}
