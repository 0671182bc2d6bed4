// Package feed builds the learner's phrase feed on top of the generation
// client and substitutes built-in content when the backend is unavailable.
package feed

import (
	"context"
	"log/slog"

	"github.com/lumenapp/lumen/internal/adapter/provider/phrasegen"
	"github.com/lumenapp/lumen/internal/domain"
)

const (
	// DefaultCount is the feed size used when the caller passes count <= 0.
	DefaultCount = 10

	FeedbackUnavailable    = "Unable to get feedback at this moment. Please try again later."
	TranslationUnavailable = "Translation unavailable"
)

type generator interface {
	GeneratePhrases(ctx context.Context, req phrasegen.GenerationRequest) ([]domain.Phrase, error)
	PhraseFeedback(ctx context.Context, phrase, userLevel string) (string, error)
	TranslatePhrase(ctx context.Context, phrase string) (string, error)
}

// Result is one page of the feed.
type Result struct {
	Phrases []domain.Phrase
	// Fallback is set when Phrases is the built-in set.
	Fallback bool
	// Reason carries the generation error text when Fallback is set.
	Reason string
}

// Service loads feed content. It never fails: generation errors are logged
// and replaced with fallback content.
type Service struct {
	gen generator
	log *slog.Logger
}

// NewService creates a new feed service.
func NewService(log *slog.Logger, gen generator) *Service {
	return &Service{
		gen: gen,
		log: log.With("service", "feed"),
	}
}

// Load generates count phrases for prefs. Count <= 0 selects DefaultCount.
func (s *Service) Load(ctx context.Context, prefs domain.Preferences, count int) Result {
	if count <= 0 {
		count = DefaultCount
	}

	phrases, err := s.gen.GeneratePhrases(ctx, phrasegen.GenerationRequest{
		Level:      prefs.Level.String(),
		Interests:  prefs.InterestLabels(),
		Objectives: prefs.ObjectiveLabels(),
		Count:      count,
	})
	if err != nil {
		s.log.WarnContext(ctx, "feed generation failed, using fallback phrases",
			slog.String("error", err.Error()),
		)
		return Result{
			Phrases:  domain.FallbackPhrases(),
			Fallback: true,
			Reason:   err.Error(),
		}
	}

	s.log.InfoContext(ctx, "feed loaded", slog.Int("count", len(phrases)))
	return Result{Phrases: phrases}
}

// Feedback explains phrase for the learner's level.
func (s *Service) Feedback(ctx context.Context, phrase string, level domain.EnglishLevel) string {
	text, err := s.gen.PhraseFeedback(ctx, phrase, level.String())
	if err != nil {
		s.log.WarnContext(ctx, "feedback failed", slog.String("error", err.Error()))
		return FeedbackUnavailable
	}
	return text
}

// Translate renders phrase in Brazilian Portuguese.
func (s *Service) Translate(ctx context.Context, phrase string) string {
	text, err := s.gen.TranslatePhrase(ctx, phrase)
	if err != nil {
		s.log.WarnContext(ctx, "translation failed", slog.String("error", err.Error()))
		return TranslationUnavailable
	}
	return text
}
