package gemini

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/lumenapp/lumen/internal/provider"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

const okBody = `{"candidates":[{"content":{"role":"model","parts":[{"text":"Olá"}]}}]}`

func TestProvider_Generate_Success(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/models/gemini-test:generateContent" {
			t.Errorf("path = %s", r.URL.Path)
		}
		if got := r.Header.Get("x-goog-api-key"); got != "g-key" {
			t.Errorf("api key header = %q", got)
		}
		var req request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if req.Contents[0].Parts[0].Text != "Translate" {
			t.Errorf("prompt = %q", req.Contents[0].Parts[0].Text)
		}
		if req.GenerationConfig.MaxOutputTokens != 50 {
			t.Errorf("maxOutputTokens = %d", req.GenerationConfig.MaxOutputTokens)
		}
		if req.GenerationConfig.ResponseSchema != nil {
			t.Error("schema must only be sent for phrase generation")
		}
		w.Write([]byte(okBody))
	}))
	defer srv.Close()

	p := NewProvider("g-key", srv.URL+"/", "gemini-test", srv.Client(), newTestLogger())
	got, err := p.Generate(context.Background(), "Translate", provider.Params{Temperature: 0.7, MaxTokens: 50, Task: "translate_phrase"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "Olá" {
		t.Errorf("text = %q", got)
	}
}

func TestProvider_Generate_PhrasesSchema(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode: %v", err)
		}
		cfg := req.GenerationConfig
		if cfg.ResponseMimeType != "application/json" {
			t.Errorf("mime = %q", cfg.ResponseMimeType)
		}
		if cfg.ResponseSchema == nil || cfg.ResponseSchema.Type != "ARRAY" {
			t.Fatalf("schema = %+v", cfg.ResponseSchema)
		}
		if len(cfg.ResponseSchema.Items.Required) != 4 {
			t.Errorf("required = %v", cfg.ResponseSchema.Items.Required)
		}
		w.Write([]byte(okBody))
	}))
	defer srv.Close()

	p := NewProvider("g-key", srv.URL, "gemini-test", srv.Client(), newTestLogger())
	if _, err := p.Generate(context.Background(), "p", provider.Params{Task: "generate_phrases"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestProvider_Generate_Errors(t *testing.T) {
	t.Parallel()

	t.Run("missing key", func(t *testing.T) {
		t.Parallel()
		p := NewProvider("", "http://unused", "m", nil, newTestLogger())
		_, err := p.Generate(context.Background(), "p", provider.Params{})
		if pe, ok := provider.AsError(err); !ok || pe.StatusCode != 0 {
			t.Errorf("expected status-less provider error, got %v", err)
		}
	})

	t.Run("upstream 400", func(t *testing.T) {
		t.Parallel()
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, `{"error":"bad"}`, http.StatusBadRequest)
		}))
		defer srv.Close()

		p := NewProvider("g-key", srv.URL, "m", srv.Client(), newTestLogger())
		_, err := p.Generate(context.Background(), "p", provider.Params{})
		pe, ok := provider.AsError(err)
		if !ok || pe.StatusCode != http.StatusBadRequest || pe.Retryable() {
			t.Errorf("expected non-retryable 400, got %v", err)
		}
	})

	t.Run("no candidates", func(t *testing.T) {
		t.Parallel()
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"candidates":[]}`))
		}))
		defer srv.Close()

		p := NewProvider("g-key", srv.URL, "m", srv.Client(), newTestLogger())
		_, err := p.Generate(context.Background(), "p", provider.Params{})
		if pe, ok := provider.AsError(err); !ok || pe.StatusCode != 0 {
			t.Errorf("expected status-less provider error, got %v", err)
		}
	})
}
