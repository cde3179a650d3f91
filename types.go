package zeppelin

import (
	"encoding/json"
	"math"
)

// Default values for per-field full-text search configuration. The wire
// format is a sparse diff against these: only non-default fields are sent.
const (
	defaultFtsLanguage       = "english"
	defaultFtsK1             = 1.2
	defaultFtsB              = 0.75
	defaultFtsMaxTokenLength = 40

	// Comparison tolerance for the float defaults (k1, b).
	ftsEpsilon = 1e-6
)

// FtsFieldConfig is the per-field full-text search configuration of a
// namespace. Start from DefaultFtsFieldConfig and override what you need;
// the zero value disables stemming and stopword removal.
type FtsFieldConfig struct {
	Language        string
	Stemming        bool
	RemoveStopwords bool
	CaseSensitive   bool
	K1              float64
	B               float64
	MaxTokenLength  int
}

// DefaultFtsFieldConfig returns the server defaults: english, stemming and
// stopword removal on, case-insensitive, k1=1.2, b=0.75, max token length 40.
func DefaultFtsFieldConfig() FtsFieldConfig {
	return FtsFieldConfig{
		Language:        defaultFtsLanguage,
		Stemming:        true,
		RemoveStopwords: true,
		CaseSensitive:   false,
		K1:              defaultFtsK1,
		B:               defaultFtsB,
		MaxTokenLength:  defaultFtsMaxTokenLength,
	}
}

// MarshalJSON emits the minimal object that round-trips to the same config.
// Fields equal to their default are omitted; the default config marshals
// to an empty object.
func (c FtsFieldConfig) MarshalJSON() ([]byte, error) {
	d := make(map[string]any)
	if c.Language != defaultFtsLanguage {
		d["language"] = c.Language
	}
	if !c.Stemming {
		d["stemming"] = false
	}
	if !c.RemoveStopwords {
		d["remove_stopwords"] = false
	}
	if c.CaseSensitive {
		d["case_sensitive"] = true
	}
	if math.Abs(c.K1-defaultFtsK1) > ftsEpsilon {
		d["k1"] = c.K1
	}
	if math.Abs(c.B-defaultFtsB) > ftsEpsilon {
		d["b"] = c.B
	}
	if c.MaxTokenLength != defaultFtsMaxTokenLength {
		d["max_token_length"] = c.MaxTokenLength
	}
	return json.Marshal(d)
}

// UnmarshalJSON fills omitted fields with their defaults.
func (c *FtsFieldConfig) UnmarshalJSON(data []byte) error {
	var w struct {
		Language        *string  `json:"language"`
		Stemming        *bool    `json:"stemming"`
		RemoveStopwords *bool    `json:"remove_stopwords"`
		CaseSensitive   *bool    `json:"case_sensitive"`
		K1              *float64 `json:"k1"`
		B               *float64 `json:"b"`
		MaxTokenLength  *int     `json:"max_token_length"`
	}
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}

	*c = DefaultFtsFieldConfig()
	if w.Language != nil {
		c.Language = *w.Language
	}
	if w.Stemming != nil {
		c.Stemming = *w.Stemming
	}
	if w.RemoveStopwords != nil {
		c.RemoveStopwords = *w.RemoveStopwords
	}
	if w.CaseSensitive != nil {
		c.CaseSensitive = *w.CaseSensitive
	}
	if w.K1 != nil {
		c.K1 = *w.K1
	}
	if w.B != nil {
		c.B = *w.B
	}
	if w.MaxTokenLength != nil {
		c.MaxTokenLength = *w.MaxTokenLength
	}
	return nil
}

// Namespace is a server-side snapshot of namespace metadata.
// The client never mutates a returned Namespace.
type Namespace struct {
	Name           string                    `json:"name"`
	Dimensions     int                       `json:"dimensions"`
	DistanceMetric string                    `json:"distance_metric"`
	VectorCount    int                       `json:"vector_count"`
	CreatedAt      string                    `json:"created_at"`
	UpdatedAt      string                    `json:"updated_at"`
	FullTextSearch map[string]FtsFieldConfig `json:"full_text_search,omitempty"`
}

// Vector is a single entry for upsert operations. Attributes is omitted
// from the serialized form when nil.
type Vector struct {
	ID         string         `json:"id"`
	Values     []float32      `json:"values"`
	Attributes map[string]any `json:"attributes,omitempty"`
}

// SearchResult is a single query hit. Attributes is nil when the server
// omitted it.
type SearchResult struct {
	ID         string         `json:"id"`
	Score      float64        `json:"score"`
	Attributes map[string]any `json:"attributes,omitempty"`
}

// QueryResponse is the result of a query, including the scan-cost counters
// reported by the server (not interpreted by the client).
type QueryResponse struct {
	Results          []SearchResult `json:"results"`
	ScannedFragments int            `json:"scanned_fragments"`
	ScannedSegments  int            `json:"scanned_segments"`
}
