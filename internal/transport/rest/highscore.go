package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/heartmarshall/vocab-quiz/internal/domain"
	"github.com/heartmarshall/vocab-quiz/internal/service/highscore"
)

type highScoreService interface {
	Get(ctx context.Context, difficulty string) (*domain.HighScore, bool, error)
	Submit(ctx context.Context, input highscore.SubmitInput) (*highscore.SubmitResult, error)
}

// HighScoreHandler serves per-difficulty high scores of the current user.
type HighScoreHandler struct {
	svc highScoreService
	log *slog.Logger
}

// NewHighScoreHandler creates a HighScoreHandler.
func NewHighScoreHandler(svc highScoreService, logger *slog.Logger) *HighScoreHandler {
	return &HighScoreHandler{svc: svc, log: logger.With("handler", "highscore")}
}

type submitScoreRequest struct {
	Score json.Number `json:"score"`
}

type scoreUserResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

type highScoreResponse struct {
	ID         string            `json:"id"`
	User       scoreUserResponse `json:"user"`
	Difficulty string            `json:"difficulty"`
	Score      int               `json:"score"`
	UpdatedAt  time.Time         `json:"updatedAt"`
}

type notHigherResponse struct {
	Message          string            `json:"message"`
	CurrentHighscore highScoreResponse `json:"currentHighscore"`
}

func toHighScoreResponse(hs *domain.HighScore) highScoreResponse {
	return highScoreResponse{
		ID:         hs.ID.String(),
		User:       scoreUserResponse{ID: hs.UserID.String(), Username: hs.Username},
		Difficulty: hs.Difficulty.String(),
		Score:      hs.Score,
		UpdatedAt:  hs.UpdatedAt,
	}
}

// Get handles GET /api/users/auth/highscore/{difficulty}.
func (h *HighScoreHandler) Get(w http.ResponseWriter, r *http.Request) {
	hs, _, err := h.svc.Get(r.Context(), r.PathValue("difficulty"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toHighScoreResponse(hs))
}

// Submit handles POST /api/users/auth/highscore/{difficulty}.
// A raised score answers 200 with the record. A submission that only ties
// a record created by this call answers 201. Otherwise the current record
// is returned with a message.
func (h *HighScoreHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req submitScoreRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	score, err := highscore.ParseScore(req.Score)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	res, err := h.svc.Submit(r.Context(), highscore.SubmitInput{
		Difficulty: r.PathValue("difficulty"),
		Score:      score,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	switch {
	case res.Updated:
		writeJSON(w, http.StatusOK, toHighScoreResponse(res.Record))
	case res.Created:
		writeJSON(w, http.StatusCreated, toHighScoreResponse(res.Record))
	default:
		writeJSON(w, http.StatusOK, notHigherResponse{
			Message:          "New score is not higher than the current high score.",
			CurrentHighscore: toHighScoreResponse(res.Record),
		})
	}
}
