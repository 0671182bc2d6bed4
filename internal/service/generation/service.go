// Package generation routes prompts across the configured text providers.
package generation

import (
	"context"
	"errors"
	"log/slog"

	"github.com/samber/lo"

	"github.com/lumenapp/lumen/internal/provider"
)

// ErrNoProviders is returned when the chain for a task resolves to nothing.
var ErrNoProviders = errors.New("no AI providers configured")

type textProvider interface {
	Name() string
	Generate(ctx context.Context, prompt string, params provider.Params) (string, error)
}

// OrderFunc returns the provider names to try for a task, in order.
type OrderFunc func(task string) []string

// Service turns a prompt into text using the first provider that answers.
type Service struct {
	providers map[string]textProvider
	order     OrderFunc
	log       *slog.Logger
}

// NewService creates a generation service. Providers are keyed by Name().
func NewService(log *slog.Logger, order OrderFunc, providers ...textProvider) *Service {
	return &Service{
		providers: lo.SliceToMap(providers, func(p textProvider) (string, textProvider) {
			return p.Name(), p
		}),
		order: order,
		log:   log.With("service", "generation"),
	}
}

// chain resolves names to registered providers. Unknown names are skipped.
func (s *Service) chain(names []string) []textProvider {
	return lo.FilterMap(names, func(name string, _ int) (textProvider, bool) {
		p, ok := s.providers[name]
		return p, ok
	})
}

// generateWithFallback tries each provider in turn. Retryable failures move on
// to the next provider; anything else is returned immediately.
func (s *Service) generateWithFallback(ctx context.Context, chain []textProvider, prompt string, params provider.Params) (string, error) {
	var lastErr error
	for _, p := range chain {
		text, err := p.Generate(ctx, prompt, params)
		if err == nil {
			return text, nil
		}

		pe, ok := provider.AsError(err)
		if !ok {
			return "", err
		}
		lastErr = pe
		if !pe.Retryable() {
			return "", pe
		}

		s.log.WarnContext(ctx, "provider failed, trying next",
			slog.String("provider", p.Name()),
			slog.Int("status", pe.StatusCode),
			slog.String("error", provider.Truncate(pe.Message, 300)))
	}
	if lastErr != nil {
		return "", lastErr
	}
	return "", ErrNoProviders
}
