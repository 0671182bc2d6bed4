// Package anthropic generates text through the Anthropic Messages API.
package anthropic

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	sdk "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/lumenapp/lumen/internal/provider"
)

// Name is the key under which the provider is registered.
const Name = "anthropic"

// Provider wraps the SDK client. The SDK's own retry loop is disabled so
// that fallback decisions stay with the router.
type Provider struct {
	client     sdk.Client
	configured bool
	model      string
	log        *slog.Logger
}

// NewProvider creates an Anthropic provider. An empty baseURL keeps the
// SDK default.
func NewProvider(apiKey, baseURL, model string, httpClient *http.Client, logger *slog.Logger) *Provider {
	opts := []option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithMaxRetries(0),
	}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}
	if httpClient != nil {
		opts = append(opts, option.WithHTTPClient(httpClient))
	}
	return &Provider{
		client:     sdk.NewClient(opts...),
		configured: apiKey != "",
		model:      model,
		log:        logger.With("adapter", Name),
	}
}

func (p *Provider) Name() string { return Name }

// Generate sends prompt as one user message and joins the returned text blocks.
func (p *Provider) Generate(ctx context.Context, prompt string, params provider.Params) (string, error) {
	if !p.configured {
		return "", provider.NewError(Name, "ANTHROPIC_API_KEY not configured", nil)
	}

	p.log.DebugContext(ctx, "anthropic request", slog.String("model", p.model), slog.String("task", params.Task))

	msg, err := p.client.Messages.New(ctx, sdk.MessageNewParams{
		Model:       sdk.Model(p.model),
		MaxTokens:   int64(params.MaxTokens),
		Temperature: sdk.Float(params.Temperature),
		Messages: []sdk.MessageParam{
			sdk.NewUserMessage(sdk.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		var apiErr *sdk.Error
		if errors.As(err, &apiErr) {
			p.log.ErrorContext(ctx, "anthropic error",
				slog.Int("status", apiErr.StatusCode),
				slog.String("error", provider.Truncate(apiErr.Error(), 1000)))
			return "", &provider.Error{
				Provider:   Name,
				Message:    apiErr.Error(),
				StatusCode: apiErr.StatusCode,
				Err:        err,
			}
		}
		p.log.ErrorContext(ctx, "anthropic request failed", slog.String("error", err.Error()))
		return "", provider.NewError(Name, "request failed", err)
	}

	var sb strings.Builder
	for _, block := range msg.Content {
		if block.Type == "text" {
			sb.WriteString(block.Text)
		}
	}
	if sb.Len() == 0 {
		return "", provider.NewError(Name, "invalid Anthropic response format: no text content", nil)
	}

	return sb.String(), nil
}
