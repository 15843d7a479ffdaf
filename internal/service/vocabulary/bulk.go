package vocabulary

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/vocab-quiz/internal/domain"
)

// Import upserts items keyed on English text. Items that fail validation
// are reported in Skipped, and when the same English text appears twice the
// later line wins. A storage error aborts the whole import.
// This is a maintenance operation used by the CLI.
func (s *Service) Import(ctx context.Context, items []ImportItem) (*ImportResult, error) {
	result := &ImportResult{}

	type pending struct {
		line int
		word *domain.Word
	}
	var queue []pending
	lastLine := make(map[string]int)

	for _, item := range items {
		w, err := item.toWord()
		if err != nil {
			result.Skipped = append(result.Skipped, ImportError{
				Line:        item.Line,
				EnglishText: item.EnglishText,
				Reason:      err.Error(),
			})
			continue
		}
		if prev, ok := lastLine[w.EnglishText]; ok {
			result.Skipped = append(result.Skipped, ImportError{
				Line:        prev,
				EnglishText: w.EnglishText,
				Reason:      fmt.Sprintf("superseded by line %d", item.Line),
			})
		}
		lastLine[w.EnglishText] = item.Line
		queue = append(queue, pending{line: item.Line, word: w})
	}

	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(importConcurrency)

	for _, p := range queue {
		if lastLine[p.word.EnglishText] != p.line {
			continue
		}
		line, w := p.line, p.word

		g.Go(func() error {
			_, created, err := s.words.Upsert(gctx, w)
			if err != nil {
				if errors.Is(err, domain.ErrValidation) {
					mu.Lock()
					result.Skipped = append(result.Skipped, ImportError{Line: line, EnglishText: w.EnglishText, Reason: err.Error()})
					mu.Unlock()
					return nil
				}
				return fmt.Errorf("line %d: %w", line, err)
			}

			mu.Lock()
			if created {
				result.Created++
			} else {
				result.Updated++
			}
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("vocabulary.Import: %w", err)
	}

	s.log.InfoContext(ctx, "words imported",
		slog.Int("created", result.Created),
		slog.Int("updated", result.Updated),
		slog.Int("skipped", len(result.Skipped)))

	return result, nil
}

// DeleteAll removes every word and returns how many were deleted.
// This is a maintenance operation used by the CLI.
func (s *Service) DeleteAll(ctx context.Context) (int, error) {
	n, err := s.words.DeleteAll(ctx)
	if err != nil {
		return 0, fmt.Errorf("vocabulary.DeleteAll: %w", err)
	}

	s.log.InfoContext(ctx, "words cleared", slog.Int("count", n))
	return n, nil
}
