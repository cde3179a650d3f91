package zeppelin

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Option configures the Client.
type Option interface {
	apply(*clientConfig)
}

// optionFunc adapts a function to the Option interface.
type optionFunc func(*clientConfig)

func (f optionFunc) apply(c *clientConfig) { f(c) }

type clientConfig struct {
	baseURL    string
	timeout    time.Duration
	headers    map[string]string
	userAgent  string
	httpClient *http.Client

	embedder Embedder

	legacyPutUpsert bool
	strictQuery     bool

	logger     *slog.Logger
	metricsReg prometheus.Registerer
}

// WithBaseURL sets the server base URL. Defaults to http://localhost:8080.
func WithBaseURL(baseURL string) Option {
	return optionFunc(func(c *clientConfig) {
		c.baseURL = baseURL
	})
}

// WithTimeout sets the request timeout on the default transport.
// Ignored when WithHTTPClient is used. Defaults to 30s.
func WithTimeout(timeout time.Duration) Option {
	return optionFunc(func(c *clientConfig) {
		c.timeout = timeout
	})
}

// WithHeader adds a static header sent with every request.
func WithHeader(key, value string) Option {
	return optionFunc(func(c *clientConfig) {
		c.headers[key] = value
	})
}

// WithHeaders adds a set of static headers sent with every request.
func WithHeaders(headers map[string]string) Option {
	return optionFunc(func(c *clientConfig) {
		for k, v := range headers {
			c.headers[k] = v
		}
	})
}

// WithUserAgent overrides the default zeppelin-go User-Agent.
func WithUserAgent(ua string) Option {
	return optionFunc(func(c *clientConfig) {
		c.userAgent = ua
	})
}

// WithHTTPClient supplies a custom *http.Client. The caller keeps ownership;
// Close will not release its connections.
func WithHTTPClient(hc *http.Client) Option {
	return optionFunc(func(c *clientConfig) {
		c.httpClient = hc
	})
}

// WithEmbedder sets the text embedding provider used by QueryText.
func WithEmbedder(e Embedder) Option {
	return optionFunc(func(c *clientConfig) {
		c.embedder = e
	})
}

// WithLegacyPutUpsert switches vector upserts from POST to PUT, matching
// first-generation servers that only route the PUT verb.
func WithLegacyPutUpsert() Option {
	return optionFunc(func(c *clientConfig) {
		c.legacyPutUpsert = true
	})
}

// WithStrictQueryValidation rejects queries client-side unless exactly one
// of Vector or RankBy is set. Off by default: the server is authoritative
// on invalid combinations.
func WithStrictQueryValidation() Option {
	return optionFunc(func(c *clientConfig) {
		c.strictQuery = true
	})
}

// WithLogger enables structured logging for client operations.
// Pass nil to disable (default). Uses standard library slog.
func WithLogger(l *slog.Logger) Option {
	return optionFunc(func(c *clientConfig) {
		c.logger = l
	})
}

// WithPrometheus registers client metrics (operation counts and durations)
// on the given registerer. Pass nil to disable (default).
func WithPrometheus(reg prometheus.Registerer) Option {
	return optionFunc(func(c *clientConfig) {
		c.metricsReg = reg
	})
}
