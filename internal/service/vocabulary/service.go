// Package vocabulary manages the word catalog used by the quizzes.
package vocabulary

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/vocab-quiz/internal/domain"
)

const (
	defaultPageSize = 50
	maxPageSize     = 200

	// importConcurrency bounds parallel upserts during Import.
	importConcurrency = 4
)

// wordRepo defines the word repository interface needed by vocabulary service.
type wordRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Word, error)
	List(ctx context.Context, limit, offset int) ([]domain.Word, int, error)
	Random(ctx context.Context) (*domain.Word, error)
	Create(ctx context.Context, w *domain.Word) (*domain.Word, error)
	Update(ctx context.Context, w *domain.Word) (*domain.Word, error)
	Upsert(ctx context.Context, w *domain.Word) (*domain.Word, bool, error)
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteAll(ctx context.Context) (int, error)
}

// Service implements word catalog operations.
type Service struct {
	log   *slog.Logger
	words wordRepo
}

// NewService creates a new vocabulary service instance.
func NewService(logger *slog.Logger, words wordRepo) *Service {
	return &Service{
		log:   logger.With("service", "vocabulary"),
		words: words,
	}
}
