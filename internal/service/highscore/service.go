// Package highscore keeps the best score of each user per difficulty.
package highscore

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/vocab-quiz/internal/domain"
)

// scoreRepo defines the high score repository interface needed by highscore service.
type scoreRepo interface {
	GetOrCreate(ctx context.Context, userID uuid.UUID, difficulty domain.Difficulty) (*domain.HighScore, bool, error)
	UpdateIfHigher(ctx context.Context, userID uuid.UUID, difficulty domain.Difficulty, score int) (*domain.HighScore, bool, error)
}

// Service implements high score operations.
type Service struct {
	log    *slog.Logger
	scores scoreRepo
}

// NewService creates a new high score service instance.
func NewService(logger *slog.Logger, scores scoreRepo) *Service {
	return &Service{
		log:    logger.With("service", "highscore"),
		scores: scores,
	}
}
