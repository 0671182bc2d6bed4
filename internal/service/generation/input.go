package generation

import (
	"strings"

	"github.com/lumenapp/lumen/internal/domain"
	"github.com/lumenapp/lumen/internal/provider"
)

const (
	MaxTemperature = 2.0
	MaxTokensLimit = 4000
)

// GenerateInput is one generation request. Nil numeric fields take defaults.
type GenerateInput struct {
	Prompt      string
	Temperature *float64
	MaxTokens   *int
	Task        string
	Meta        map[string]any
}

// Validate checks all fields and collects all errors.
func (i GenerateInput) Validate() error {
	var errs []domain.FieldError

	if len(i.Prompt) == 0 {
		errs = append(errs, domain.FieldError{Field: "prompt", Message: "required"})
	}
	if i.Temperature != nil && (*i.Temperature < 0 || *i.Temperature > MaxTemperature) {
		errs = append(errs, domain.FieldError{Field: "temperature", Message: "must be between 0 and 2"})
	}
	if i.MaxTokens != nil && (*i.MaxTokens < 1 || *i.MaxTokens > MaxTokensLimit) {
		errs = append(errs, domain.FieldError{Field: "max_tokens", Message: "must be between 1 and 4000"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func (i GenerateInput) params() provider.Params {
	p := provider.Params{
		Temperature: provider.DefaultTemperature,
		MaxTokens:   provider.DefaultMaxTokens,
		Task:        strings.TrimSpace(i.Task),
	}
	if i.Temperature != nil {
		p.Temperature = *i.Temperature
	}
	if i.MaxTokens != nil {
		p.MaxTokens = *i.MaxTokens
	}
	return p
}
