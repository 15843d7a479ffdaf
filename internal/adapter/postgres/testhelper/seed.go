package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/vocab-quiz/internal/domain"
)

// SeedUser inserts a user with a unique username and email.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Microsecond)
	u := domain.User{
		ID:           uuid.New(),
		Username:     "user-" + uuid.New().String()[:8],
		PasswordHash: "$2a$04$seededhashseededhashseededhashseededhashseededhashse",
		Role:         domain.UserRoleUser,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	u.Email = u.Username + "@example.com"

	_, err := pool.Exec(context.Background(),
		`INSERT INTO users (id, username, email, password_hash, role, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		u.ID, u.Username, u.Email, u.PasswordHash, string(u.Role), u.CreatedAt, u.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: seed user: %v", err)
	}
	return u
}

// SeedWord inserts a word whose English text is made unique with a suffix.
// It returns the stored word.
func SeedWord(t *testing.T, pool *pgxpool.Pool, english string, translations ...string) domain.Word {
	t.Helper()

	tr, err := domain.NewTranslations(translations)
	if err != nil {
		t.Fatalf("testhelper: seed word: %v", err)
	}

	w := domain.Word{
		ID:           uuid.New(),
		EnglishText:  english + "-" + uuid.New().String()[:6],
		Translations: tr,
	}

	args := []any{w.ID, w.EnglishText}
	for _, s := range tr {
		if s == "" {
			args = append(args, nil)
			continue
		}
		args = append(args, s)
	}

	_, err = pool.Exec(context.Background(),
		`INSERT INTO words (id, english_text, translation_1, translation_2, translation_3, translation_4, translation_5)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		args...,
	)
	if err != nil {
		t.Fatalf("testhelper: seed word: %v", err)
	}
	return w
}
