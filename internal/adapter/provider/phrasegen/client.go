// Package phrasegen is the client for the remote phrase-generation endpoint.
// Every operation issues exactly one POST and never retries; failures are
// returned as *NetworkError or *DecodingError.
package phrasegen

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/lumenapp/lumen/internal/domain"
)

// DefaultBaseURL is the local development gateway.
const DefaultBaseURL = "http://localhost:8000/ai/generate"

const (
	// DefaultCount is used when GenerationRequest.Count is zero.
	DefaultCount = 5

	requestTemperature = 0.7
	requestMaxTokens   = 800
)

// GenerationRequest describes the phrases to generate. Level is passed
// through to the prompt verbatim and need not be a known difficulty.
type GenerationRequest struct {
	Level      string
	Interests  []string
	Objectives []string
	Count      int
}

func (r GenerationRequest) validate() error {
	var errs []domain.FieldError
	if strings.TrimSpace(r.Level) == "" {
		errs = append(errs, domain.FieldError{Field: "level", Message: "required"})
	}
	if r.Count < 0 {
		errs = append(errs, domain.FieldError{Field: "count", Message: "must be >= 1"})
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// Client talks to the phrase-generation gateway. It holds only fixed
// configuration and is safe for concurrent use.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        *slog.Logger
}

// New creates a Client. An empty baseURL selects DefaultBaseURL; a nil
// httpClient uses a client with no timeout of its own.
func New(baseURL string, httpClient *http.Client, logger *slog.Logger) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: httpClient,
		log:        logger.With("adapter", "phrasegen"),
	}
}

// BaseURL returns the configured endpoint.
func (c *Client) BaseURL() string { return c.baseURL }

// GeneratePhrases asks the backend for req.Count phrases matching the
// learner's level, interests and objectives.
func (c *Client) GeneratePhrases(ctx context.Context, req GenerationRequest) ([]domain.Phrase, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}
	if req.Count == 0 {
		req.Count = DefaultCount
	}

	c.log.InfoContext(ctx, "generating phrases",
		slog.String("level", req.Level),
		slog.String("interests", strings.Join(req.Interests, ", ")),
		slog.Int("count", req.Count),
	)

	prompt := buildPhrasesPrompt(req.Level, req.Interests, req.Objectives, req.Count)
	text, err := c.generate(ctx, prompt, domain.TaskGeneratePhrases)
	if err != nil {
		return nil, err
	}

	phrases, err := parsePhrases(text)
	if err != nil {
		c.log.ErrorContext(ctx, "parse phrases failed", slog.String("error", err.Error()))
		return nil, err
	}

	c.log.InfoContext(ctx, "phrases parsed", slog.Int("count", len(phrases)))
	return phrases, nil
}

// PhraseFeedback returns a level-appropriate explanation of phrase,
// exactly as the backend produced it.
func (c *Client) PhraseFeedback(ctx context.Context, phrase, userLevel string) (string, error) {
	c.log.InfoContext(ctx, "requesting feedback",
		slog.String("phrase", phrase),
		slog.String("level", userLevel),
	)

	text, err := c.generate(ctx, buildFeedbackPrompt(phrase, userLevel), domain.TaskExplainPhrase)
	if err != nil {
		return "", err
	}
	return text, nil
}

// TranslatePhrase returns the Brazilian Portuguese rendering of phrase
// with surrounding whitespace removed.
func (c *Client) TranslatePhrase(ctx context.Context, phrase string) (string, error) {
	c.log.InfoContext(ctx, "translating phrase", slog.String("phrase", phrase))

	text, err := c.generate(ctx, buildTranslatePrompt(phrase), domain.TaskTranslatePhrase)
	if err != nil {
		return "", err
	}

	translation := strings.TrimSpace(text)
	c.log.DebugContext(ctx, "translation done",
		slog.String("phrase", phrase),
		slog.String("translation", translation),
	)
	return translation, nil
}

// generate performs the single POST shared by all operations and returns
// the non-empty text field of the response.
func (c *Client) generate(ctx context.Context, prompt string, task domain.Task) (string, error) {
	if err := validateURL(c.baseURL); err != nil {
		c.log.ErrorContext(ctx, "invalid api url", slog.String("url", c.baseURL))
		return "", &NetworkError{Message: "invalid API URL", Err: err}
	}

	body, err := json.Marshal(generateRequest{
		Prompt:      prompt,
		Temperature: requestTemperature,
		MaxTokens:   requestMaxTokens,
		Task:        task.String(),
	})
	if err != nil {
		return "", fmt.Errorf("phrasegen: encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(body))
	if err != nil {
		return "", &NetworkError{Message: "invalid API URL", Err: err}
	}
	req.Header.Set("Content-Type", "application/json")

	c.log.DebugContext(ctx, "phrasegen request",
		slog.String("method", http.MethodPost),
		slog.String("url", c.baseURL),
		slog.String("task", task.String()),
	)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.ErrorContext(ctx, "phrasegen request failed", slog.String("error", err.Error()))
		return "", &NetworkError{Message: "request failed", Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &NetworkError{Message: "read response body", StatusCode: resp.StatusCode, Err: err}
	}

	c.log.DebugContext(ctx, "phrasegen response",
		slog.Int("status", resp.StatusCode),
		slog.Int("bytes", len(data)),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		netErr := &NetworkError{
			Message:    fmt.Sprintf("invalid response from server (status: %d)", resp.StatusCode),
			StatusCode: resp.StatusCode,
		}
		var errResp errorResponse
		if json.Unmarshal(data, &errResp) == nil && errResp.Detail != "" {
			netErr.Detail = errResp.Detail
		}
		c.log.ErrorContext(ctx, "phrasegen backend error",
			slog.Int("status", resp.StatusCode),
			slog.String("detail", netErr.Detail),
		)
		return "", netErr
	}

	var decoded generateResponse
	if err := json.Unmarshal(data, &decoded); err != nil {
		return "", &DecodingError{Message: "invalid response body", Err: err}
	}
	if decoded.Text == nil || *decoded.Text == "" {
		c.log.ErrorContext(ctx, "phrasegen response has no text")
		return "", &DecodingError{Message: "could not extract content from response"}
	}

	return *decoded.Text, nil
}

func validateURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return err
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("unsupported url %q", raw)
	}
	return nil
}
