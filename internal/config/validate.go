package config

import (
	"fmt"
	"slices"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}
	if c.Auth.AccessTokenTTL <= 0 {
		return fmt.Errorf("auth.access_token_ttl must be > 0 (got %s)", c.Auth.AccessTokenTTL)
	}

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535 (got %d)", c.Server.Port)
	}

	if err := c.AI.validate(); err != nil {
		return fmt.Errorf("ai: %w", err)
	}

	return nil
}

func (a *AIConfig) validate() error {
	orders := map[string]string{
		"provider_order":           a.ProviderOrder,
		"provider_order_phrases":   a.ProviderOrderPhrases,
		"provider_order_explain":   a.ProviderOrderExplain,
		"provider_order_translate": a.ProviderOrderTranslate,
	}
	for key, raw := range orders {
		for _, name := range splitList(raw) {
			if !slices.Contains(KnownProviders, name) {
				return fmt.Errorf("%s: unknown provider %q", key, name)
			}
		}
	}
	if a.RateLimitPerMinute < 0 {
		return fmt.Errorf("rate_limit_per_minute must be >= 0 (got %d)", a.RateLimitPerMinute)
	}
	if a.RequestTimeout <= 0 {
		return fmt.Errorf("request_timeout must be > 0 (got %s)", a.RequestTimeout)
	}
	return nil
}
