// Package highscore implements the HighScore repository using PostgreSQL.
package highscore

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	"github.com/heartmarshall/vocab-quiz/internal/adapter/postgres"
	"github.com/heartmarshall/vocab-quiz/internal/domain"
)

const table = "high_scores"

// Repo provides high score persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new high score repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type scoreRow struct {
	ID         uuid.UUID `db:"id"`
	UserID     uuid.UUID `db:"user_id"`
	Username   string    `db:"username"`
	Difficulty string    `db:"difficulty"`
	Score      int       `db:"score"`
	UpdatedAt  time.Time `db:"updated_at"`
}

func (r scoreRow) toDomain() *domain.HighScore {
	return &domain.HighScore{
		ID:         r.ID,
		UserID:     r.UserID,
		Username:   r.Username,
		Difficulty: domain.Difficulty(r.Difficulty),
		Score:      r.Score,
		UpdatedAt:  r.UpdatedAt,
	}
}

// Get returns the high score of a user on one difficulty.
func (r *Repo) Get(ctx context.Context, userID uuid.UUID, difficulty domain.Difficulty) (*domain.HighScore, error) {
	query, args, err := postgres.Builder.
		Select("h.id", "h.user_id", "u.username", "h.difficulty", "h.score", "h.updated_at").
		From(table + " h").
		Join("users u ON u.id = h.user_id").
		Where(sq.Eq{"h.user_id": userID, "h.difficulty": string(difficulty)}).
		ToSql()
	if err != nil {
		return nil, err
	}

	var row scoreRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "high_score", key(userID, difficulty))
	}
	return row.toDomain(), nil
}

// GetOrCreate returns the high score, inserting a zero score first when the
// user has none for difficulty. created reports whether this call inserted it.
func (r *Repo) GetOrCreate(ctx context.Context, userID uuid.UUID, difficulty domain.Difficulty) (*domain.HighScore, bool, error) {
	query, args, err := postgres.Builder.
		Insert(table).
		Columns("id", "user_id", "difficulty", "score", "updated_at").
		Values(uuid.New(), userID, string(difficulty), 0, sq.Expr("now()")).
		Suffix("ON CONFLICT (user_id, difficulty) DO NOTHING").
		ToSql()
	if err != nil {
		return nil, false, err
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return nil, false, postgres.MapError(err, "high_score", key(userID, difficulty))
	}

	hs, err := r.Get(ctx, userID, difficulty)
	if err != nil {
		return nil, false, err
	}
	return hs, tag.RowsAffected() == 1, nil
}

// UpdateIfHigher raises the stored score to score when score is strictly
// greater, as a single conditional UPDATE so concurrent writers converge on
// the maximum. It returns the stored record and whether it changed.
// The record must already exist.
func (r *Repo) UpdateIfHigher(ctx context.Context, userID uuid.UUID, difficulty domain.Difficulty, score int) (*domain.HighScore, bool, error) {
	query, args, err := postgres.Builder.
		Update(table).
		Set("score", score).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"user_id": userID, "difficulty": string(difficulty)}).
		Where(sq.Lt{"score": score}).
		ToSql()
	if err != nil {
		return nil, false, err
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return nil, false, postgres.MapError(err, "high_score", key(userID, difficulty))
	}

	hs, err := r.Get(ctx, userID, difficulty)
	if err != nil {
		return nil, false, err
	}
	return hs, tag.RowsAffected() == 1, nil
}

func key(userID uuid.UUID, difficulty domain.Difficulty) string {
	return fmt.Sprintf("%s/%s", userID, difficulty)
}
