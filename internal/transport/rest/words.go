package rest

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/heartmarshall/vocab-quiz/internal/domain"
	"github.com/heartmarshall/vocab-quiz/internal/service/quiz"
	"github.com/heartmarshall/vocab-quiz/internal/service/vocabulary"
)

type vocabularyService interface {
	List(ctx context.Context, input vocabulary.ListInput) ([]domain.Word, int, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Word, error)
	Random(ctx context.Context) (*domain.Word, error)
	Create(ctx context.Context, input vocabulary.WordInput) (*domain.Word, error)
	Update(ctx context.Context, id uuid.UUID, input vocabulary.WordInput) (*domain.Word, error)
	UpsertByText(ctx context.Context, input vocabulary.WordInput) (*domain.Word, bool, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type translationChecker interface {
	CheckTranslation(ctx context.Context, input quiz.CheckTranslationInput) (*quiz.TranslationVerdict, error)
}

// WordHandler serves the word catalog API.
type WordHandler struct {
	words   vocabularyService
	checker translationChecker
	log     *slog.Logger
}

// NewWordHandler creates a WordHandler.
func NewWordHandler(words vocabularyService, checker translationChecker, logger *slog.Logger) *WordHandler {
	return &WordHandler{words: words, checker: checker, log: logger.With("handler", "words")}
}

type wordRequest struct {
	EnglishText  string   `json:"englishText"`
	Translations []string `json:"translations"`
}

func (r wordRequest) toInput() vocabulary.WordInput {
	return vocabulary.WordInput{EnglishText: r.EnglishText, Translations: r.Translations}
}

type wordResponse struct {
	ID           string    `json:"id"`
	EnglishText  string    `json:"englishText"`
	Translations []string  `json:"translations"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

type wordListResponse struct {
	Items []wordResponse `json:"items"`
	Total int            `json:"total"`
}

type checkTranslationRequest struct {
	Translation string `json:"translation"`
}

type checkTranslationResponse struct {
	IsCorrect           bool     `json:"isCorrect"`
	CorrectTranslations []string `json:"correctTranslations"`
}

func toWordResponse(w *domain.Word) wordResponse {
	return wordResponse{
		ID:           w.ID.String(),
		EnglishText:  w.EnglishText,
		Translations: w.AllTranslations(),
		CreatedAt:    w.CreatedAt,
		UpdatedAt:    w.UpdatedAt,
	}
}

// List handles GET /api/words?limit=&offset=.
func (h *WordHandler) List(w http.ResponseWriter, r *http.Request) {
	limit, err := queryInt(r, "limit")
	if err != nil {
		writeError(w, http.StatusBadRequest, "limit must be an integer")
		return
	}
	offset, err := queryInt(r, "offset")
	if err != nil {
		writeError(w, http.StatusBadRequest, "offset must be an integer")
		return
	}

	words, total, err := h.words.List(r.Context(), vocabulary.ListInput{Limit: limit, Offset: offset})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, wordListResponse{
		Items: lo.Map(words, func(word domain.Word, _ int) wordResponse { return toWordResponse(&word) }),
		Total: total,
	})
}

// Get handles GET /api/words/{id}.
func (h *WordHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	word, err := h.words.Get(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toWordResponse(word))
}

// Random handles GET /api/words/random.
func (h *WordHandler) Random(w http.ResponseWriter, r *http.Request) {
	word, err := h.words.Random(r.Context())
	if errors.Is(err, domain.ErrNoWordsAvailable) {
		writeError(w, http.StatusNotFound, "No words available.")
		return
	}
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toWordResponse(word))
}

// Create handles POST /api/words.
func (h *WordHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req wordRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	word, err := h.words.Create(r.Context(), req.toInput())
	if err != nil {
		h.wordError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toWordResponse(word))
}

// Update handles PUT /api/words/{id}.
func (h *WordHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req wordRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	word, err := h.words.Update(r.Context(), id, req.toInput())
	if err != nil {
		h.wordError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toWordResponse(word))
}

// Upsert handles PUT /api/words/by-text: 201 when the word was created.
func (h *WordHandler) Upsert(w http.ResponseWriter, r *http.Request) {
	var req wordRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	word, created, err := h.words.UpsertByText(r.Context(), req.toInput())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	writeJSON(w, status, toWordResponse(word))
}

// Delete handles DELETE /api/words/{id}.
func (h *WordHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.words.Delete(r.Context(), id); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// CheckTranslation handles POST /api/words/{id}/check-translation.
func (h *WordHandler) CheckTranslation(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req checkTranslationRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	verdict, err := h.checker.CheckTranslation(r.Context(), quiz.CheckTranslationInput{
		WordID:      id,
		Translation: req.Translation,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, checkTranslationResponse{
		IsCorrect:           verdict.IsCorrect,
		CorrectTranslations: verdict.CorrectTranslations,
	})
}

// pathID parses the {id} path value, answering 400 when it is not a UUID.
func pathID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid word id")
		return uuid.Nil, false
	}
	return id, true
}

// queryInt returns the integer query parameter name, or 0 when absent.
func queryInt(r *http.Request, name string) (int, error) {
	v := r.URL.Query().Get(name)
	if v == "" {
		return 0, nil
	}
	return strconv.Atoi(v)
}

// wordError names the conflicting word on a duplicate English text.
func (h *WordHandler) wordError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, domain.ErrAlreadyExists) {
		writeError(w, http.StatusConflict, "A word with this English text already exists.")
		return
	}
	handleError(h.log, w, r, err)
}
