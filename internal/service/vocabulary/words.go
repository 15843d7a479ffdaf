package vocabulary

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/vocab-quiz/internal/domain"
	"github.com/heartmarshall/vocab-quiz/pkg/ctxutil"
)

// List returns one page of words, newest first, and the total count.
func (s *Service) List(ctx context.Context, input ListInput) ([]domain.Word, int, error) {
	input = input.normalize()

	words, total, err := s.words.List(ctx, input.Limit, input.Offset)
	if err != nil {
		return nil, 0, fmt.Errorf("vocabulary.List: %w", err)
	}
	return words, total, nil
}

// Get returns a word by id.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.Word, error) {
	w, err := s.words.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("vocabulary.Get: %w", err)
	}
	return w, nil
}

// Random returns a uniformly chosen word with all its translations.
// An empty catalog yields ErrNoWordsAvailable.
func (s *Service) Random(ctx context.Context) (*domain.Word, error) {
	w, err := s.words.Random(ctx)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, domain.ErrNoWordsAvailable
	}
	if err != nil {
		return nil, fmt.Errorf("vocabulary.Random: %w", err)
	}
	return w, nil
}

// Create adds a new word (admin only).
// Returns ErrAlreadyExists when the English text is taken.
func (s *Service) Create(ctx context.Context, input WordInput) (*domain.Word, error) {
	if !ctxutil.IsAdminCtx(ctx) {
		return nil, domain.ErrForbidden
	}

	w, err := input.toWord()
	if err != nil {
		return nil, err
	}
	w.ID = uuid.New()

	created, err := s.words.Create(ctx, w)
	if err != nil {
		return nil, fmt.Errorf("vocabulary.Create: %w", err)
	}

	s.log.InfoContext(ctx, "word created",
		slog.String("word_id", created.ID.String()),
		slog.String("english_text", created.EnglishText))

	return created, nil
}

// Update replaces the fields of an existing word (admin only).
func (s *Service) Update(ctx context.Context, id uuid.UUID, input WordInput) (*domain.Word, error) {
	if !ctxutil.IsAdminCtx(ctx) {
		return nil, domain.ErrForbidden
	}

	w, err := input.toWord()
	if err != nil {
		return nil, err
	}
	w.ID = id

	updated, err := s.words.Update(ctx, w)
	if err != nil {
		return nil, fmt.Errorf("vocabulary.Update: %w", err)
	}
	return updated, nil
}

// UpsertByText creates the word or replaces the translations of the word
// with the same English text (admin only). created reports an insert.
func (s *Service) UpsertByText(ctx context.Context, input WordInput) (*domain.Word, bool, error) {
	if !ctxutil.IsAdminCtx(ctx) {
		return nil, false, domain.ErrForbidden
	}

	w, err := input.toWord()
	if err != nil {
		return nil, false, err
	}

	saved, created, err := s.words.Upsert(ctx, w)
	if err != nil {
		return nil, false, fmt.Errorf("vocabulary.UpsertByText: %w", err)
	}
	return saved, created, nil
}

// Delete removes a word (admin only).
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if !ctxutil.IsAdminCtx(ctx) {
		return domain.ErrForbidden
	}

	if err := s.words.Delete(ctx, id); err != nil {
		return fmt.Errorf("vocabulary.Delete: %w", err)
	}

	s.log.InfoContext(ctx, "word deleted", slog.String("word_id", id.String()))
	return nil
}
