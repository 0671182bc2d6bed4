// Package gemini generates text through the Gemini generateContent API.
package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/lumenapp/lumen/internal/provider"
)

// Name is the key under which the provider is registered.
const Name = "gemini"

const taskGeneratePhrases = "generate_phrases"

// Provider calls {baseURL}/models/{model}:generateContent.
type Provider struct {
	apiKey     string
	baseURL    string
	model      string
	httpClient *http.Client
	log        *slog.Logger
}

// NewProvider creates a Gemini provider.
func NewProvider(apiKey, baseURL, model string, httpClient *http.Client, logger *slog.Logger) *Provider {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Provider{
		apiKey:     apiKey,
		baseURL:    strings.TrimRight(baseURL, "/"),
		model:      model,
		httpClient: httpClient,
		log:        logger.With("adapter", Name),
	}
}

func (p *Provider) Name() string { return Name }

// Generate sends prompt as a single user turn. For phrase generation the
// response is constrained to a JSON array of phrase objects.
func (p *Provider) Generate(ctx context.Context, prompt string, params provider.Params) (string, error) {
	if p.apiKey == "" {
		return "", provider.NewError(Name, "GEMINI_API_KEY not configured", nil)
	}

	cfg := generationConfig{
		Temperature:     params.Temperature,
		MaxOutputTokens: params.MaxTokens,
	}
	if params.Task == taskGeneratePhrases {
		cfg.ResponseMimeType = "application/json"
		cfg.ResponseSchema = phrasesSchema()
	}

	payload, err := json.Marshal(request{
		Contents: []content{{
			Role:  "user",
			Parts: []part{{Text: prompt}},
		}},
		GenerationConfig: cfg,
	})
	if err != nil {
		return "", fmt.Errorf("gemini: encode request: %w", err)
	}

	endpoint := fmt.Sprintf("%s/models/%s:generateContent", p.baseURL, p.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return "", provider.NewError(Name, "create request", err)
	}
	req.Header.Set("x-goog-api-key", p.apiKey)
	req.Header.Set("Content-Type", "application/json")

	p.log.DebugContext(ctx, "gemini request", slog.String("model", p.model), slog.String("task", params.Task))

	resp, err := p.httpClient.Do(req)
	if err != nil {
		p.log.ErrorContext(ctx, "gemini request failed", slog.String("error", err.Error()))
		return "", provider.NewError(Name, "request failed", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", provider.NewError(Name, "read body", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		p.log.ErrorContext(ctx, "gemini error",
			slog.Int("status", resp.StatusCode),
			slog.String("body", provider.Truncate(string(body), 1000)))
		return "", provider.NewStatusError(Name, resp.StatusCode, string(body))
	}

	var out response
	if err := json.Unmarshal(body, &out); err != nil {
		p.log.ErrorContext(ctx, "gemini parse error", slog.String("body", provider.Truncate(string(body), 1000)))
		return "", provider.NewError(Name, "invalid Gemini response format", err)
	}
	if len(out.Candidates) == 0 || len(out.Candidates[0].Content.Parts) == 0 {
		p.log.ErrorContext(ctx, "gemini parse error", slog.String("body", provider.Truncate(string(body), 1000)))
		return "", provider.NewError(Name, "invalid Gemini response format: no candidates", nil)
	}

	return out.Candidates[0].Content.Parts[0].Text, nil
}

func phrasesSchema() *schema {
	str := &schema{Type: "STRING"}
	return &schema{
		Type: "ARRAY",
		Items: &schema{
			Type: "OBJECT",
			Properties: map[string]*schema{
				"text":        str,
				"translation": str,
				"category":    str,
				"difficulty":  str,
			},
			Required: []string{"text", "translation", "category", "difficulty"},
		},
	}
}
