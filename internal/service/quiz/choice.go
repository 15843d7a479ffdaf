package quiz

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/vocab-quiz/internal/domain"
)

// GenerateChoiceQuiz builds a question from a random word: its primary
// translation plus the primary translations of two other random words.
// A target or distractor without a primary translation fails with
// ErrNoPrimaryTranslation; there is no retry with other words.
func (s *Service) GenerateChoiceQuiz(ctx context.Context) (*ChoiceQuiz, error) {
	target, err := s.words.Random(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrInsufficientWords
		}
		return nil, fmt.Errorf("quiz.GenerateChoiceQuiz pick target: %w", err)
	}

	correct, ok := target.Primary()
	if !ok {
		s.log.WarnContext(ctx, "word without primary translation",
			slog.String("word_id", target.ID.String()))
		return nil, domain.ErrNoPrimaryTranslation
	}

	others, err := s.words.SampleExcluding(ctx, target.ID, distractorCount)
	if err != nil {
		return nil, fmt.Errorf("quiz.GenerateChoiceQuiz sample distractors: %w", err)
	}
	if len(others) < distractorCount {
		return nil, domain.ErrInsufficientWords
	}

	q := &ChoiceQuiz{
		WordID:             target.ID,
		EnglishText:        target.EnglishText,
		CorrectTranslation: correct,
	}
	for i := range q.Distractors {
		text, ok := others[i].Primary()
		if !ok {
			s.log.WarnContext(ctx, "distractor without primary translation",
				slog.String("word_id", others[i].ID.String()))
			return nil, domain.ErrNoPrimaryTranslation
		}
		q.Distractors[i] = text
	}

	q.Options = append([]string{correct}, q.Distractors[:]...)
	s.shuffle(len(q.Options), func(i, j int) {
		q.Options[i], q.Options[j] = q.Options[j], q.Options[i]
	})

	return q, nil
}

// CheckChoiceAnswer compares the selected option with the primary
// translation of the word named by EnglishText. Lookup ignores case.
func (s *Service) CheckChoiceAnswer(ctx context.Context, input ChoiceAnswerInput) (*ChoiceVerdict, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	w, err := s.words.GetByEnglishText(ctx, strings.TrimSpace(input.EnglishText))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrWordNotFound
		}
		return nil, fmt.Errorf("quiz.CheckChoiceAnswer: %w", err)
	}

	correct, ok := w.Primary()
	if !ok {
		return nil, domain.ErrNoPrimaryTranslation
	}

	selected := domain.NormalizeAnswer(strings.TrimSpace(input.SelectedTranslation))
	return &ChoiceVerdict{
		IsCorrect:          selected == domain.NormalizeAnswer(correct),
		CorrectTranslation: correct,
	}, nil
}
