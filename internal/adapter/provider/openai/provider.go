// Package openai generates text through the OpenAI Responses API.
package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/lumenapp/lumen/internal/provider"
)

// Name is the key under which the provider is registered.
const Name = "openai"

// Provider calls the Responses endpoint with a single user turn.
type Provider struct {
	apiKey     string
	baseURL    string
	model      string
	httpClient *http.Client
	log        *slog.Logger
}

// NewProvider creates an OpenAI provider. baseURL is the full responses endpoint.
func NewProvider(apiKey, baseURL, model string, httpClient *http.Client, logger *slog.Logger) *Provider {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Provider{
		apiKey:     apiKey,
		baseURL:    baseURL,
		model:      model,
		httpClient: httpClient,
		log:        logger.With("adapter", Name),
	}
}

// Name implements the router's provider contract.
func (p *Provider) Name() string { return Name }

// Generate sends prompt and returns the first output text block.
func (p *Provider) Generate(ctx context.Context, prompt string, params provider.Params) (string, error) {
	if p.apiKey == "" {
		return "", provider.NewError(Name, "OPENAI_API_KEY not configured", nil)
	}

	payload, err := json.Marshal(request{
		Model: p.model,
		Input: []inputMessage{{
			Role:    "user",
			Content: []inputContent{{Type: "input_text", Text: prompt}},
		}},
		Temperature:     params.Temperature,
		MaxOutputTokens: params.MaxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("openai: encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL, bytes.NewReader(payload))
	if err != nil {
		return "", provider.NewError(Name, "create request", err)
	}
	req.Header.Set("Authorization", "Bearer "+p.apiKey)
	req.Header.Set("Content-Type", "application/json")

	p.log.DebugContext(ctx, "openai request", slog.String("model", p.model), slog.String("task", params.Task))

	resp, err := p.httpClient.Do(req)
	if err != nil {
		p.log.ErrorContext(ctx, "openai request failed", slog.String("error", err.Error()))
		return "", provider.NewError(Name, "request failed", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", provider.NewError(Name, "read body", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		p.log.ErrorContext(ctx, "openai error",
			slog.Int("status", resp.StatusCode),
			slog.String("body", provider.Truncate(string(body), 1000)))
		return "", provider.NewStatusError(Name, resp.StatusCode, string(body))
	}

	var out response
	if err := json.Unmarshal(body, &out); err != nil {
		p.log.ErrorContext(ctx, "openai parse error", slog.String("body", provider.Truncate(string(body), 1000)))
		return "", provider.NewError(Name, "invalid OpenAI response format", err)
	}
	if len(out.Output) == 0 || len(out.Output[0].Content) == 0 {
		p.log.ErrorContext(ctx, "openai parse error", slog.String("body", provider.Truncate(string(body), 1000)))
		return "", provider.NewError(Name, "invalid OpenAI response format: no output", nil)
	}

	return out.Output[0].Content[0].Text, nil
}
