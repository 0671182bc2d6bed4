// Package ollama generates text through a local Ollama server.
package ollama

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"

	goollama "github.com/JexSrs/go-ollama"

	"github.com/lumenapp/lumen/internal/provider"
)

// Name is the key under which the provider is registered.
const Name = "ollama"

const systemMessage = "You are Lumen, an assistant that helps people learn English. Follow the user's output format exactly."

// Provider calls the Ollama generate endpoint. The client library does not
// accept a context or sampling options, so temperature and token limits are
// left to the model defaults, and cancellation abandons the in-flight call
// rather than aborting it.
type Provider struct {
	client *goollama.Ollama
	model  string
	log    *slog.Logger
}

// NewProvider creates an Ollama provider. An empty host yields a provider
// that reports itself as not configured.
func NewProvider(host, model string, logger *slog.Logger) (*Provider, error) {
	p := &Provider{
		model: model,
		log:   logger.With("adapter", Name),
	}
	if host == "" {
		return p, nil
	}

	u, err := url.Parse(host)
	if err != nil {
		return nil, fmt.Errorf("ollama: invalid host %q: %w", host, err)
	}
	p.client = goollama.New(*u)
	return p, nil
}

func (p *Provider) Name() string { return Name }

// Generate runs a single non-streaming generation.
func (p *Provider) Generate(ctx context.Context, prompt string, params provider.Params) (string, error) {
	if p.client == nil {
		return "", provider.NewError(Name, "OLLAMA_HOST not configured", nil)
	}
	if err := ctx.Err(); err != nil {
		return "", provider.NewError(Name, "request cancelled", err)
	}

	p.log.DebugContext(ctx, "ollama request", slog.String("model", p.model), slog.String("task", params.Task))

	// Buffered so the goroutine can finish after the caller gave up.
	results := make(chan generateResult, 1)
	go func() {
		res, err := p.client.Generate(
			p.client.Generate.WithModel(p.model),
			p.client.Generate.WithSystem(systemMessage),
			p.client.Generate.WithPrompt(prompt),
		)
		if err != nil {
			results <- generateResult{err: err}
			return
		}
		results <- generateResult{text: res.Response, done: res.Done}
	}()

	var res generateResult
	select {
	case <-ctx.Done():
		p.log.WarnContext(ctx, "ollama request abandoned", slog.String("error", ctx.Err().Error()))
		return "", provider.NewError(Name, "request cancelled", ctx.Err())
	case res = <-results:
	}

	if res.err != nil {
		p.log.ErrorContext(ctx, "ollama request failed", slog.String("error", res.err.Error()))
		return "", provider.NewError(Name, "request failed", res.err)
	}
	if !res.done {
		return "", provider.NewError(Name, "generation not finished", nil)
	}
	if res.text == "" {
		return "", provider.NewError(Name, "empty response", nil)
	}

	return res.text, nil
}

type generateResult struct {
	text string
	done bool
	err  error
}
