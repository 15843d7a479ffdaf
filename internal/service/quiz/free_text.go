package quiz

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/vocab-quiz/internal/domain"
)

// PresentRandomWord draws a random word and returns a session awaiting its answer.
// Returns ErrNoWordsAvailable with an empty session when no words are stored.
func (s *Service) PresentRandomWord(ctx context.Context) (*PresentedWord, domain.QuizSession, error) {
	w, err := s.words.Random(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.QuizSession{}, domain.ErrNoWordsAvailable
		}
		return nil, domain.QuizSession{}, fmt.Errorf("quiz.PresentRandomWord: %w", err)
	}

	return &PresentedWord{WordID: w.ID, EnglishText: w.EnglishText}, domain.NewQuizSession(w.ID), nil
}

// CurrentWord returns the word the session is waiting on.
// Returns ErrNoCurrentWord for an empty session and ErrWordNotFound when
// the word was deleted after it was presented.
func (s *Service) CurrentWord(ctx context.Context, session domain.QuizSession) (*PresentedWord, error) {
	if !session.HasCurrentWord() {
		return nil, domain.ErrNoCurrentWord
	}

	w, err := s.words.GetByID(ctx, *session.CurrentWordID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrWordNotFound
		}
		return nil, fmt.Errorf("quiz.CurrentWord: %w", err)
	}
	return &PresentedWord{WordID: w.ID, EnglishText: w.EnglishText}, nil
}

// SubmitFreeTextAnswer checks rawInput against the session's current word.
//
// Blank input returns ErrInvalidInput and the session unchanged, so the
// same word can be answered again. Every other outcome resolves the word
// and returns a cleared session. A storage failure also leaves the session
// unchanged.
func (s *Service) SubmitFreeTextAnswer(ctx context.Context, session domain.QuizSession, rawInput string) (*AnswerResult, domain.QuizSession, error) {
	input := strings.TrimSpace(rawInput)
	if input == "" {
		return nil, session, domain.ErrInvalidInput
	}

	if !session.HasCurrentWord() {
		return nil, domain.QuizSession{}, domain.ErrNoCurrentWord
	}

	w, err := s.words.GetByID(ctx, *session.CurrentWordID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			s.log.InfoContext(ctx, "current word vanished",
				slog.String("word_id", session.CurrentWordID.String()))
			return nil, domain.QuizSession{}, domain.ErrWordNotFound
		}
		return nil, session, fmt.Errorf("quiz.SubmitFreeTextAnswer: %w", err)
	}

	return &AnswerResult{
		Correct:      matches(w, input),
		EnglishText:  w.EnglishText,
		Translations: w.AllTranslations(),
		UserInput:    input,
	}, domain.QuizSession{}, nil
}

// CheckTranslation compares translation with every translation of the word.
func (s *Service) CheckTranslation(ctx context.Context, input CheckTranslationInput) (*TranslationVerdict, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	w, err := s.words.GetByID(ctx, input.WordID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrWordNotFound
		}
		return nil, fmt.Errorf("quiz.CheckTranslation: %w", err)
	}

	return &TranslationVerdict{
		IsCorrect:           matches(w, strings.TrimSpace(input.Translation)),
		CorrectTranslations: w.AllTranslations(),
	}, nil
}
