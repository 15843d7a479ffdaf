package rest

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/vocab-quiz/internal/domain"
)

// maxBodyBytes caps JSON request bodies.
const maxBodyBytes = 1 << 20

type errorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

// decodeJSON reads a single JSON object into dst. Numbers are kept as
// json.Number so integer fields can be validated strictly.
func decodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	dec.UseNumber()
	return dec.Decode(dst)
}

// errorStatus maps a service error to its HTTP status and client message.
// The second result is false for errors that are not part of the API contract.
func errorStatus(err error) (int, string, bool) {
	switch {
	case errors.Is(err, domain.ErrNoWordsAvailable):
		return http.StatusNotFound, "There are no words in the database yet. Please add some words.", true
	case errors.Is(err, domain.ErrNoCurrentWord):
		return http.StatusConflict, "The current word was not found. Please try again.", true
	case errors.Is(err, domain.ErrWordNotFound):
		return http.StatusNotFound, "The word does not exist. Please try again.", true
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, "Please enter a translation.", true
	case errors.Is(err, domain.ErrInsufficientWords):
		return http.StatusConflict, "Not enough words in the database to build a quiz.", true
	case errors.Is(err, domain.ErrNoPrimaryTranslation):
		return http.StatusConflict, "The selected word has no primary translation.", true
	case errors.Is(err, domain.ErrInvalidDifficulty):
		return http.StatusBadRequest, "Difficulty must be one of: easy, medium.", true
	case errors.Is(err, domain.ErrInvalidScore):
		return http.StatusBadRequest, "Score must be a non-negative integer.", true
	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest, err.Error(), true
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized, "No active account found with the given credentials.", true
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, "You do not have permission to perform this action.", true
	case errors.Is(err, domain.ErrAlreadyExists):
		return http.StatusConflict, "A record with these details already exists.", true
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, "Not found.", true
	}
	return http.StatusInternalServerError, "Internal server error.", false
}

// handleError writes the JSON error for err. Unexpected errors are logged.
func handleError(log *slog.Logger, w http.ResponseWriter, r *http.Request, err error) {
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		fields := make(map[string]string, len(ve.Errors))
		for _, fe := range ve.Errors {
			fields[fe.Field] = fe.Message
		}
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "validation failed", Fields: fields})
		return
	}

	status, msg, known := errorStatus(err)
	if !known {
		log.ErrorContext(r.Context(), "internal error", slog.String("error", err.Error()))
	}
	writeError(w, status, msg)
}
