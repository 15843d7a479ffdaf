// Package quiz implements the free-text quiz and the multiple-choice quiz.
package quiz

import (
	"context"
	"log/slog"
	"math/rand/v2"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/heartmarshall/vocab-quiz/internal/domain"
)

// distractorCount is the number of wrong options in a choice quiz.
const distractorCount = 2

// wordRepo defines the word repository interface needed by quiz service.
type wordRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Word, error)
	GetByEnglishText(ctx context.Context, text string) (*domain.Word, error)
	Random(ctx context.Context) (*domain.Word, error)
	SampleExcluding(ctx context.Context, excludeID uuid.UUID, n int) ([]domain.Word, error)
}

// Service implements quiz operations. It holds no per-player state:
// sessions are passed in and returned by value.
type Service struct {
	log     *slog.Logger
	words   wordRepo
	shuffle func(n int, swap func(i, j int))
}

// NewService creates a new quiz service instance.
func NewService(logger *slog.Logger, words wordRepo) *Service {
	return &Service{
		log:     logger.With("service", "quiz"),
		words:   words,
		shuffle: rand.Shuffle,
	}
}

// matches reports whether input equals any of the word's translations
// once both sides are normalized.
func matches(w *domain.Word, input string) bool {
	normalized := lo.Map(w.AllTranslations(), func(t string, _ int) string {
		return domain.NormalizeAnswer(t)
	})
	return lo.Contains(normalized, domain.NormalizeAnswer(input))
}
