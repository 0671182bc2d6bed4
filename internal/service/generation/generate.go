package generation

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/lumenapp/lumen/internal/domain"
	"github.com/lumenapp/lumen/internal/provider"
)

// Generate validates the input, runs the provider chain for its task and,
// for phrase batches, enforces the JSON shape with one repair attempt.
func (s *Service) Generate(ctx context.Context, input GenerateInput) (string, error) {
	if err := input.Validate(); err != nil {
		return "", err
	}

	params := input.params()
	task := domain.NormalizeTask(params.Task)
	names := s.order(task.String())

	s.log.InfoContext(ctx, "ai generate",
		slog.String("task", params.Task),
		slog.String("providers", strings.Join(names, ",")))

	chain := s.chain(names)
	text, err := s.generateWithFallback(ctx, chain, input.Prompt, params)
	if err != nil {
		return "", err
	}

	if task == domain.TaskGeneratePhrases {
		text, err = s.ensurePhrases(ctx, chain, text, params)
		if err != nil {
			return "", err
		}
	}

	s.log.InfoContext(ctx, "ai generate response",
		slog.String("task", params.Task),
		slog.Int("chars", len(text)),
		slog.String("preview", strings.ReplaceAll(preview(text, 500), "\n", `\n`)))

	return text, nil
}

func (s *Service) ensurePhrases(ctx context.Context, chain []textProvider, text string, params provider.Params) (string, error) {
	valid, err := validatePhrasesJSON(text)
	if err == nil {
		return valid, nil
	}

	s.log.WarnContext(ctx, "invalid phrases json", slog.String("error", err.Error()))

	repairParams := params
	repairParams.Temperature = repairTemperature
	repaired, err := s.generateWithFallback(ctx, chain, repairPrompt(text), repairParams)
	if err != nil {
		return "", err
	}

	valid, err = validatePhrasesJSON(repaired)
	if err != nil {
		s.log.ErrorContext(ctx, "phrases repair failed", slog.String("error", err.Error()))
		return "", fmt.Errorf("%w: %v", ErrInvalidPhrases, err)
	}
	return valid, nil
}

func preview(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
