package highscore

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"math"
	"strings"

	"github.com/heartmarshall/vocab-quiz/internal/domain"
	"github.com/heartmarshall/vocab-quiz/pkg/ctxutil"
)

// SubmitInput holds parameters for Submit.
type SubmitInput struct {
	Difficulty string
	Score      int
}

// SubmitResult is returned by Submit.
// A fresh record that the submission only ties reports Created without Updated.
type SubmitResult struct {
	Record  *domain.HighScore
	Updated bool
	Created bool
}

// ParseScore converts a JSON number into a score.
// Fractions, exponents, negatives and values beyond the storage range are rejected.
func ParseScore(n json.Number) (int, error) {
	s := strings.TrimSpace(n.String())
	if s == "" || strings.ContainsAny(s, ".eE") {
		return 0, domain.ErrInvalidScore
	}
	v, err := n.Int64()
	if err != nil || v < 0 || v > math.MaxInt32 {
		return 0, domain.ErrInvalidScore
	}
	return int(v), nil
}

// Get returns the caller's high score for difficulty, creating a zero
// record on first access. created reports whether this call created it.
func (s *Service) Get(ctx context.Context, difficulty string) (*domain.HighScore, bool, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, false, domain.ErrUnauthorized
	}

	d, err := domain.ParseDifficulty(difficulty)
	if err != nil {
		return nil, false, err
	}

	hs, created, err := s.scores.GetOrCreate(ctx, userID, d)
	if err != nil {
		return nil, false, fmt.Errorf("highscore.Get: %w", err)
	}
	return hs, created, nil
}

// Submit records score if it strictly beats the caller's current high score.
func (s *Service) Submit(ctx context.Context, input SubmitInput) (*SubmitResult, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	d, err := domain.ParseDifficulty(input.Difficulty)
	if err != nil {
		return nil, err
	}
	if input.Score < 0 {
		return nil, domain.ErrInvalidScore
	}

	current, created, err := s.scores.GetOrCreate(ctx, userID, d)
	if err != nil {
		return nil, fmt.Errorf("highscore.Submit get: %w", err)
	}
	if !current.IsImprovedBy(input.Score) {
		return &SubmitResult{Record: current, Created: created}, nil
	}

	// The conditional update may still lose to a concurrent higher score.
	hs, updated, err := s.scores.UpdateIfHigher(ctx, userID, d, input.Score)
	if err != nil {
		return nil, fmt.Errorf("highscore.Submit update: %w", err)
	}

	if updated {
		s.log.InfoContext(ctx, "high score raised",
			slog.String("user_id", userID.String()),
			slog.String("difficulty", d.String()),
			slog.Int("score", hs.Score))
	}

	return &SubmitResult{Record: hs, Updated: updated, Created: created}, nil
}
