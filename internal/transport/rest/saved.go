package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/lumenapp/lumen/internal/domain"
)

type libraryService interface {
	List(ctx context.Context) ([]domain.SavedPhrase, error)
	IsSaved(ctx context.Context, phraseID uuid.UUID) (bool, error)
	Save(ctx context.Context, phrase domain.Phrase) error
	Unsave(ctx context.Context, phraseID uuid.UUID) error
	Toggle(ctx context.Context, phrase domain.Phrase) (bool, error)
}

// SavedHandler serves the signed-in user's saved phrases.
type SavedHandler struct {
	svc libraryService
	log *slog.Logger
}

// NewSavedHandler creates a SavedHandler.
func NewSavedHandler(svc libraryService, logger *slog.Logger) *SavedHandler {
	return &SavedHandler{svc: svc, log: logger.With("handler", "saved")}
}

type phraseJSON struct {
	ID          uuid.UUID `json:"id"`
	Text        string    `json:"text"`
	Translation string    `json:"translation"`
	Difficulty  string    `json:"difficulty"`
	Category    string    `json:"category"`
	Example     *string   `json:"example,omitempty"`
	AudioURL    *string   `json:"audio_url,omitempty"`
}

type savedPhraseJSON struct {
	phraseJSON
	SavedAt time.Time `json:"saved_at"`
}

type savedListResponse struct {
	Items []savedPhraseJSON `json:"items"`
}

type savedStateResponse struct {
	ID    uuid.UUID `json:"id"`
	Saved bool      `json:"saved"`
}

// List handles GET /me/saved.
func (h *SavedHandler) List(w http.ResponseWriter, r *http.Request) {
	saved, err := h.svc.List(r.Context())
	if err != nil {
		handleDomainError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, savedListResponse{
		Items: lo.Map(saved, func(sp domain.SavedPhrase, _ int) savedPhraseJSON {
			return savedPhraseJSON{phraseJSON: toPhraseJSON(sp.Phrase), SavedAt: sp.SavedAt}
		}),
	})
}

// Status handles GET /me/saved/{id}.
func (h *SavedHandler) Status(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	saved, err := h.svc.IsSaved(r.Context(), id)
	if err != nil {
		handleDomainError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, savedStateResponse{ID: id, Saved: saved})
}

// Save handles PUT /me/saved.
func (h *SavedHandler) Save(w http.ResponseWriter, r *http.Request) {
	var req phraseJSON
	if err := decodeBody(w, r, &req); err != nil {
		handleDomainError(w, r, h.log, err)
		return
	}

	if err := h.svc.Save(r.Context(), req.toDomain()); err != nil {
		handleDomainError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, savedStateResponse{ID: req.ID, Saved: true})
}

// Delete handles DELETE /me/saved/{id}.
func (h *SavedHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	if err := h.svc.Unsave(r.Context(), id); err != nil {
		handleDomainError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Toggle handles POST /me/saved/toggle.
func (h *SavedHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	var req phraseJSON
	if err := decodeBody(w, r, &req); err != nil {
		handleDomainError(w, r, h.log, err)
		return
	}

	saved, err := h.svc.Toggle(r.Context(), req.toDomain())
	if err != nil {
		handleDomainError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, savedStateResponse{ID: req.ID, Saved: saved})
}

func (h *SavedHandler) pathID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, "validation: id: must be a UUID")
		return uuid.Nil, false
	}
	return id, true
}

func (p phraseJSON) toDomain() domain.Phrase {
	return domain.Phrase{
		ID:          p.ID,
		Text:        p.Text,
		Translation: p.Translation,
		Difficulty:  domain.Difficulty(p.Difficulty),
		Category:    p.Category,
		Example:     p.Example,
		AudioURL:    p.AudioURL,
	}
}

func toPhraseJSON(p domain.Phrase) phraseJSON {
	return phraseJSON{
		ID:          p.ID,
		Text:        p.Text,
		Translation: p.Translation,
		Difficulty:  p.Difficulty.String(),
		Category:    p.Category,
		Example:     p.Example,
		AudioURL:    p.AudioURL,
	}
}
