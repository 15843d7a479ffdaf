package rest

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	jwtauth "github.com/heartmarshall/vocab-quiz/internal/auth"
	"github.com/heartmarshall/vocab-quiz/internal/domain"
	"github.com/heartmarshall/vocab-quiz/internal/service/quiz"
)

type quizService interface {
	PresentRandomWord(ctx context.Context) (*quiz.PresentedWord, domain.QuizSession, error)
	SubmitFreeTextAnswer(ctx context.Context, session domain.QuizSession, rawInput string) (*quiz.AnswerResult, domain.QuizSession, error)
	GenerateChoiceQuiz(ctx context.Context) (*quiz.ChoiceQuiz, error)
	CheckChoiceAnswer(ctx context.Context, input quiz.ChoiceAnswerInput) (*quiz.ChoiceVerdict, error)
}

// QuizHandler serves the JSON quiz API.
type QuizHandler struct {
	quiz     quizService
	sessions *SessionStore
	log      *slog.Logger
}

// NewQuizHandler creates a QuizHandler.
func NewQuizHandler(svc quizService, sessions *SessionStore, logger *slog.Logger) *QuizHandler {
	return &QuizHandler{quiz: svc, sessions: sessions, log: logger.With("handler", "quiz")}
}

type presentedWordResponse struct {
	WordID      string `json:"wordId"`
	EnglishText string `json:"englishText"`
}

type answerRequest struct {
	Translation string `json:"translation"`
}

type answerResponse struct {
	Correct      bool     `json:"correct"`
	EnglishText  string   `json:"englishText"`
	Translations []string `json:"translations"`
	UserInput    string   `json:"userInput"`
	Message      string   `json:"message"`
}

type choiceQuizResponse struct {
	WordID      string   `json:"wordId"`
	EnglishText string   `json:"englishText"`
	Options     []string `json:"options"`
}

type choiceCheckRequest struct {
	EnglishText         string `json:"englishText"`
	SelectedTranslation string `json:"selectedTranslation"`
}

type choiceCheckResponse struct {
	IsCorrect          bool   `json:"isCorrect"`
	CorrectTranslation string `json:"correctTranslation"`
}

// Word handles GET /api/quiz/word: draws a word and stores it in the session.
func (h *QuizHandler) Word(w http.ResponseWriter, r *http.Request) {
	word, session, err := h.quiz.PresentRandomWord(r.Context())
	if saveErr := h.sessions.Save(w, jwtauth.Session{Quiz: session}); saveErr != nil {
		handleError(h.log, w, r, saveErr)
		return
	}
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, presentedWordResponse{
		WordID:      word.WordID.String(),
		EnglishText: word.EnglishText,
	})
}

// Answer handles POST /api/quiz/answer for the word held in the session.
func (h *QuizHandler) Answer(w http.ResponseWriter, r *http.Request) {
	var req answerRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	current := h.sessions.Load(r)
	result, next, err := h.quiz.SubmitFreeTextAnswer(r.Context(), current.Quiz, req.Translation)
	if saveErr := h.sessions.Save(w, jwtauth.Session{Quiz: next}); saveErr != nil {
		handleError(h.log, w, r, saveErr)
		return
	}
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, answerResponse{
		Correct:      result.Correct,
		EnglishText:  result.EnglishText,
		Translations: result.Translations,
		UserInput:    result.UserInput,
		Message:      answerMessage(result),
	})
}

// Choice handles GET /api/quiz/choice.
func (h *QuizHandler) Choice(w http.ResponseWriter, r *http.Request) {
	q, err := h.quiz.GenerateChoiceQuiz(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, choiceQuizResponse{
		WordID:      q.WordID.String(),
		EnglishText: q.EnglishText,
		Options:     q.Options,
	})
}

// CheckChoice handles POST /api/quiz/choice/check.
func (h *QuizHandler) CheckChoice(w http.ResponseWriter, r *http.Request) {
	var req choiceCheckRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	verdict, err := h.quiz.CheckChoiceAnswer(r.Context(), quiz.ChoiceAnswerInput{
		EnglishText:         req.EnglishText,
		SelectedTranslation: req.SelectedTranslation,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, choiceCheckResponse{
		IsCorrect:          verdict.IsCorrect,
		CorrectTranslation: verdict.CorrectTranslation,
	})
}

// answerMessage renders the player-facing verdict of a free-text answer.
func answerMessage(res *quiz.AnswerResult) string {
	meanings := strings.Join(res.Translations, ", ")
	if res.Correct {
		return fmt.Sprintf("Exactly! '%s' can mean '%s'. All correct meanings: %s.", res.EnglishText, res.UserInput, meanings)
	}
	return fmt.Sprintf("Incorrect. The correct meanings of '%s' are: '%s'. You entered: '%s'.", res.EnglishText, meanings, res.UserInput)
}
