package rest

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/lumenapp/lumen/internal/provider"
	"github.com/lumenapp/lumen/internal/service/generation"
)

type generationService interface {
	Generate(ctx context.Context, input generation.GenerateInput) (string, error)
}

// GenerateHandler serves the text-generation endpoint.
type GenerateHandler struct {
	svc generationService
	log *slog.Logger
}

// NewGenerateHandler creates a GenerateHandler.
func NewGenerateHandler(svc generationService, logger *slog.Logger) *GenerateHandler {
	return &GenerateHandler{svc: svc, log: logger.With("handler", "generate")}
}

type generateRequest struct {
	Prompt      string         `json:"prompt"`
	Temperature *float64       `json:"temperature"`
	MaxTokens   *int           `json:"max_tokens"`
	Task        *string        `json:"task"`
	Meta        map[string]any `json:"meta"`
}

type generateResponse struct {
	Text string `json:"text"`
}

// Generate handles POST /ai/generate.
func (h *GenerateHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	if err := decodeBody(w, r, &req); err != nil {
		handleDomainError(w, r, h.log, err)
		return
	}

	input := generation.GenerateInput{
		Prompt:      req.Prompt,
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
		Meta:        req.Meta,
	}
	if req.Task != nil {
		input.Task = *req.Task
	}

	text, err := h.svc.Generate(r.Context(), input)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, generateResponse{Text: text})
}

func (h *GenerateHandler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	if pe, ok := provider.AsError(err); ok {
		h.log.WarnContext(r.Context(), "provider failure",
			slog.String("provider", pe.Provider),
			slog.Int("status", pe.StatusCode),
			slog.String("error", pe.Error()))
		writeError(w, pe.HTTPStatus(), pe.Error())
		return
	}

	switch {
	case errors.Is(err, generation.ErrNoProviders):
		writeError(w, http.StatusInternalServerError, err.Error())
	case errors.Is(err, generation.ErrInvalidPhrases):
		writeError(w, http.StatusBadGateway, err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		writeError(w, http.StatusGatewayTimeout, "upstream timeout")
	default:
		handleDomainError(w, r, h.log, err)
	}
}
