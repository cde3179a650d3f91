package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
)

func newTestClient(t *testing.T, handler http.HandlerFunc, cfg Config) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg.BaseURL = srv.URL + cfg.BaseURL // cfg.BaseURL carries an optional path prefix
	c, err := New(cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return c
}

func TestNew_InvalidBaseURL(t *testing.T) {
	for _, u := range []string{"", "localhost:8080", "://bad"} {
		if _, err := New(Config{BaseURL: u}); err == nil {
			t.Errorf("New(%q): expected error", u)
		}
	}
}

func TestDo_DecodesResponse(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"name":"ns","dimensions":8}`))
	}, Config{})

	var out struct {
		Name       string `json:"name"`
		Dimensions int    `json:"dimensions"`
	}
	if err := c.Do(context.Background(), http.MethodGet, "/v1/namespaces/ns", nil, nil, &out); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Name != "ns" || out.Dimensions != 8 {
		t.Errorf("decoded %+v", out)
	}
}

func TestDo_NoContentLeavesOutUntouched(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}, Config{})

	out := map[string]any{"marker": true}
	if err := c.Do(context.Background(), http.MethodDelete, "/v1/namespaces/ns", nil, nil, &out); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := out["marker"]; !ok {
		t.Error("out was modified on 204")
	}
}

func TestDo_EmptyBodyIsAbsence(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}, Config{})

	var out map[string]any
	if err := c.Do(context.Background(), http.MethodGet, "/healthz", nil, nil, &out); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != nil {
		t.Errorf("out = %v, want nil", out)
	}
}

func TestDo_ClassifiesFailures(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error":"gone","status":404}`))
	}, Config{})

	err := c.Do(context.Background(), http.MethodGet, "/v1/namespaces/x", nil, nil, nil)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	var apiErr *Error
	if !errors.As(err, &apiErr) || apiErr.StatusCode != 404 || apiErr.Message != "gone" {
		t.Errorf("unexpected error details: %+v", apiErr)
	}
}

func TestDo_SendsBodyAndHeaders(t *testing.T) {
	var got struct {
		contentType string
		accept      string
		userAgent   string
		apiKey      string
		body        map[string]any
	}
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		got.contentType = r.Header.Get("Content-Type")
		got.accept = r.Header.Get("Accept")
		got.userAgent = r.Header.Get("User-Agent")
		got.apiKey = r.Header.Get("X-Api-Key")
		json.NewDecoder(r.Body).Decode(&got.body)
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{}`))
	}, Config{
		Headers:   map[string]string{"X-Api-Key": "secret"},
		UserAgent: "zeppelin-go/test",
	})

	body := map[string]any{"name": "ns"}
	if err := c.Do(context.Background(), http.MethodPost, "/v1/namespaces", nil, body, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.contentType != "application/json" {
		t.Errorf("Content-Type = %q", got.contentType)
	}
	if got.accept != "application/json" {
		t.Errorf("Accept = %q", got.accept)
	}
	if got.userAgent != "zeppelin-go/test" {
		t.Errorf("User-Agent = %q", got.userAgent)
	}
	if got.apiKey != "secret" {
		t.Errorf("X-Api-Key = %q", got.apiKey)
	}
	if got.body["name"] != "ns" {
		t.Errorf("body = %v", got.body)
	}
}

func TestDo_ConfiguredHeadersOverrideDefaults(t *testing.T) {
	var accept, contentType string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		accept = r.Header.Get("Accept")
		contentType = r.Header.Get("Content-Type")
		w.Write([]byte(`{}`))
	}, Config{
		Headers: map[string]string{
			"Accept":       "application/vnd.zeppelin+json",
			"Content-Type": "application/json; charset=utf-8",
		},
	})

	if err := c.Do(context.Background(), http.MethodPost, "/v1/namespaces", nil, map[string]any{}, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if accept != "application/vnd.zeppelin+json" {
		t.Errorf("Accept = %q, configured header should win", accept)
	}
	if contentType != "application/json; charset=utf-8" {
		t.Errorf("Content-Type = %q, configured header should win", contentType)
	}
}

func TestDo_EscapedPathSentVerbatim(t *testing.T) {
	var gotEscaped string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotEscaped = r.URL.EscapedPath()
		w.Write([]byte(`{}`))
	}, Config{})

	// Escaped segments pass through once; re-escaping would turn %20
	// into %2520.
	path := "/v1/namespaces/" + url.PathEscape("my ns")
	if err := c.Do(context.Background(), http.MethodGet, path, nil, nil, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotEscaped != "/v1/namespaces/my%20ns" {
		t.Errorf("escaped path = %q, want /v1/namespaces/my%%20ns", gotEscaped)
	}
}

func TestDo_QueryParams(t *testing.T) {
	var gotQuery url.Values
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Write([]byte(`[]`))
	}, Config{})

	query := url.Values{"prefix": []string{"test-"}}
	if err := c.Do(context.Background(), http.MethodGet, "/v1/namespaces", query, nil, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotQuery.Get("prefix") != "test-" {
		t.Errorf("prefix = %q", gotQuery.Get("prefix"))
	}
}

func TestDo_BaseURLPathPrefix(t *testing.T) {
	var gotPath string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write([]byte(`{}`))
	}, Config{BaseURL: "/zeppelin/"})

	if err := c.Do(context.Background(), http.MethodGet, "/healthz", nil, nil, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotPath != "/zeppelin/healthz" {
		t.Errorf("path = %q, want /zeppelin/healthz", gotPath)
	}
}

func TestDo_TransportErrorIsNotClassified(t *testing.T) {
	c, err := New(Config{BaseURL: "http://127.0.0.1:1"}) // nothing listens here
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	err = c.Do(context.Background(), http.MethodGet, "/healthz", nil, nil, nil)
	if err == nil {
		t.Fatal("expected transport error")
	}
	var apiErr *Error
	if errors.As(err, &apiErr) {
		t.Errorf("transport error was classified as API error: %v", apiErr)
	}
}
