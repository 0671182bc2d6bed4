package library

import (
	"strings"

	"github.com/google/uuid"

	"github.com/lumenapp/lumen/internal/domain"
)

const (
	MaxTextLength     = 500
	MaxCategoryLength = 100
)

// validatePhrase checks a phrase received from a client before it is stored.
func validatePhrase(p domain.Phrase) error {
	var errs []domain.FieldError

	if p.ID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}
	text := strings.TrimSpace(p.Text)
	if text == "" {
		errs = append(errs, domain.FieldError{Field: "text", Message: "required"})
	} else if len(text) > MaxTextLength {
		errs = append(errs, domain.FieldError{Field: "text", Message: "too long (max 500)"})
	}
	if !p.Difficulty.IsValid() {
		errs = append(errs, domain.FieldError{Field: "difficulty", Message: "unknown value " + string(p.Difficulty)})
	}
	if len(p.Category) > MaxCategoryLength {
		errs = append(errs, domain.FieldError{Field: "category", Message: "too long (max 100)"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
