package auth

import (
	"strings"

	"github.com/lumenapp/lumen/internal/domain"
)

// LoginInput holds the parameters for signing in with a provider ID token.
type LoginInput struct {
	Provider string
	IDToken  string
}

// Validate checks all fields and collects all errors.
func (i LoginInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.Provider) == "" {
		errs = append(errs, domain.FieldError{Field: "provider", Message: "required"})
	}
	if strings.TrimSpace(i.IDToken) == "" {
		errs = append(errs, domain.FieldError{Field: "id_token", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
