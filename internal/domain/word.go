package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

// MaxTranslations is the number of translation slots a word has.
const MaxTranslations = 5

// MaxEnglishTextLength bounds the stored English text.
const MaxEnglishTextLength = 100

// Translations holds the ordered translation slots of a word.
// Slot 0 is the primary translation; empty strings mark unused slots.
type Translations [MaxTranslations]string

// Word is an English word or phrase with up to five Vietnamese translations.
type Word struct {
	ID           uuid.UUID
	EnglishText  string
	Translations Translations
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Primary returns the primary translation, or false when slot 1 is empty.
func (w *Word) Primary() (string, bool) {
	p := strings.TrimSpace(w.Translations[0])
	return p, p != ""
}

// AllTranslations returns the non-empty translations in slot order.
func (w *Word) AllTranslations() []string {
	return lo.FilterMap(w.Translations[:], func(t string, _ int) (string, bool) {
		t = strings.TrimSpace(t)
		return t, t != ""
	})
}

// NewTranslations packs values into slots, skipping blanks.
// More than MaxTranslations non-blank values is a validation error.
func NewTranslations(values []string) (Translations, error) {
	var out Translations
	cleaned := lo.FilterMap(values, func(v string, _ int) (string, bool) {
		v = CleanText(v)
		return v, v != ""
	})
	if len(cleaned) > MaxTranslations {
		return out, NewValidationError("translations", fmt.Sprintf("at most %d allowed", MaxTranslations))
	}
	copy(out[:], cleaned)
	return out, nil
}

// Validate checks the invariants of a word before it is stored.
func (w *Word) Validate() error {
	var errs []FieldError

	text := strings.TrimSpace(w.EnglishText)
	switch {
	case text == "":
		errs = append(errs, FieldError{Field: "englishText", Message: "required"})
	case len([]rune(text)) > MaxEnglishTextLength:
		errs = append(errs, FieldError{Field: "englishText", Message: fmt.Sprintf("must be at most %d characters", MaxEnglishTextLength)})
	}

	if _, ok := w.Primary(); !ok {
		errs = append(errs, FieldError{Field: "translations", Message: "primary translation required"})
	}

	if len(errs) > 0 {
		return NewValidationErrors(errs)
	}
	return nil
}
