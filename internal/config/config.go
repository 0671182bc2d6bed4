package config

import (
	"strings"
	"time"
)

// Config is the root gateway configuration.
type Config struct {
	Env      string         `yaml:"env" env:"ENV" env-default:"local"`
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Auth     AuthConfig     `yaml:"auth"`
	AI       AIConfig       `yaml:"ai"`
	Log      LogConfig      `yaml:"log"`
	CORS     CORSConfig     `yaml:"cors"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PUT,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type,X-Request-Id"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"false"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8000"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"90s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// DatabaseConfig holds PostgreSQL connection settings. With an empty DSN
// saved phrases are kept in process memory.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"10"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"1"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	AutoMigrate     bool          `yaml:"auto_migrate"       env:"DATABASE_AUTO_MIGRATE"       env-default:"true"`
}

// Enabled reports whether a database is configured.
func (c DatabaseConfig) Enabled() bool { return c.DSN != "" }

// AuthConfig holds app-token and identity-provider settings.
type AuthConfig struct {
	JWTSecret      string        `yaml:"jwt_secret"       env:"JWT_SECRET"       env-required:"true"`
	JWTIssuer      string        `yaml:"jwt_issuer"       env:"JWT_ISSUER"       env-default:"lumen-backend"`
	JWTAudience    string        `yaml:"jwt_audience"     env:"JWT_AUDIENCE"     env-default:"lumen-app"`
	AccessTokenTTL time.Duration `yaml:"access_token_ttl" env:"JWT_ACCESS_TTL"   env-default:"168h"`
	GoogleClientID string        `yaml:"google_client_id" env:"GOOGLE_CLIENT_ID"`
	AppleClientID  string        `yaml:"apple_client_id"  env:"APPLE_CLIENT_ID"`
}

// AIConfig holds the upstream model providers and their ordering.
type AIConfig struct {
	ProviderOrder          string        `yaml:"provider_order"           env:"AI_PROVIDER_ORDER"           env-default:"openai"`
	ProviderOrderPhrases   string        `yaml:"provider_order_phrases"   env:"AI_PROVIDER_ORDER_PHRASES"`
	ProviderOrderExplain   string        `yaml:"provider_order_explain"   env:"AI_PROVIDER_ORDER_EXPLAIN"`
	ProviderOrderTranslate string        `yaml:"provider_order_translate" env:"AI_PROVIDER_ORDER_TRANSLATE"`
	RequestTimeout         time.Duration `yaml:"request_timeout"          env:"AI_REQUEST_TIMEOUT"          env-default:"30s"`
	// RateLimitPerMinute caps /ai/generate calls per client; 0 disables it.
	RateLimitPerMinute int `yaml:"rate_limit_per_minute" env:"AI_RATE_LIMIT_PER_MINUTE" env-default:"60"`

	OpenAI    OpenAIConfig    `yaml:"openai"`
	Gemini    GeminiConfig    `yaml:"gemini"`
	Anthropic AnthropicConfig `yaml:"anthropic"`
	Ollama    OllamaConfig    `yaml:"ollama"`
}

type OpenAIConfig struct {
	APIKey  string `yaml:"api_key"  env:"OPENAI_API_KEY"`
	BaseURL string `yaml:"base_url" env:"OPENAI_BASE_URL" env-default:"https://api.openai.com/v1/responses"`
	Model   string `yaml:"model"    env:"OPENAI_MODEL"    env-default:"gpt-4.1-mini"`
}

type GeminiConfig struct {
	APIKey  string `yaml:"api_key"  env:"GEMINI_API_KEY"`
	BaseURL string `yaml:"base_url" env:"GEMINI_BASE_URL" env-default:"https://generativelanguage.googleapis.com/v1beta"`
	Model   string `yaml:"model"    env:"GEMINI_MODEL"    env-default:"gemini-2.5-flash"`
}

type AnthropicConfig struct {
	APIKey  string `yaml:"api_key"  env:"ANTHROPIC_API_KEY"`
	BaseURL string `yaml:"base_url" env:"ANTHROPIC_BASE_URL"`
	Model   string `yaml:"model"    env:"ANTHROPIC_MODEL" env-default:"claude-3-5-haiku-latest"`
}

type OllamaConfig struct {
	Host  string `yaml:"host"  env:"OLLAMA_HOST"`
	Model string `yaml:"model" env:"OLLAMA_MODEL" env-default:"llama3.1"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// ClientConfig configures the phrase-generation client used by the CLI.
type ClientConfig struct {
	BaseURL string        `yaml:"base_url" env:"AI_BASE_URL" env-default:"http://localhost:8000/ai/generate"`
	Timeout time.Duration `yaml:"timeout"  env:"AI_TIMEOUT"  env-default:"0s"`
	Log     LogConfig     `yaml:"log"`
}

// KnownProviders are the provider names accepted in the order settings.
var KnownProviders = []string{"openai", "gemini", "anthropic", "ollama"}

// ProvidersForTask returns the provider chain for a task tag. Tasks with
// no dedicated (or an empty) override use ProviderOrder.
func (c AIConfig) ProvidersForTask(task string) []string {
	var raw string
	switch strings.ToLower(strings.TrimSpace(task)) {
	case "generate_phrases":
		raw = c.ProviderOrderPhrases
	case "explain_phrase", "answer_doubt":
		raw = c.ProviderOrderExplain
	case "translate_phrase":
		raw = c.ProviderOrderTranslate
	}
	if strings.TrimSpace(raw) == "" {
		return c.DefaultProviders()
	}
	return splitList(raw)
}

// DefaultProviders parses ProviderOrder, falling back to "openai".
func (c AIConfig) DefaultProviders() []string {
	names := splitList(c.ProviderOrder)
	if len(names) == 0 {
		return []string{"openai"}
	}
	return names
}

func splitList(raw string) []string {
	var out []string
	for _, v := range strings.Split(raw, ",") {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
