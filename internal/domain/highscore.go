package domain

import (
	"time"

	"github.com/google/uuid"
)

// HighScore is the best score a user reached on one difficulty.
type HighScore struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	Username   string
	Difficulty Difficulty
	Score      int
	UpdatedAt  time.Time
}

// IsImprovedBy reports whether score strictly beats the stored one.
func (h *HighScore) IsImprovedBy(score int) bool {
	return score > h.Score
}
