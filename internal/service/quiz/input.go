package quiz

import (
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/vocab-quiz/internal/domain"
)

// CheckTranslationInput holds parameters for CheckTranslation.
type CheckTranslationInput struct {
	WordID      uuid.UUID
	Translation string
}

// Validate validates the check translation input.
func (i CheckTranslationInput) Validate() error {
	var errs []domain.FieldError

	if i.WordID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}
	if strings.TrimSpace(i.Translation) == "" {
		errs = append(errs, domain.FieldError{Field: "translation", Message: "required"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// ChoiceAnswerInput holds parameters for CheckChoiceAnswer.
type ChoiceAnswerInput struct {
	EnglishText         string
	SelectedTranslation string
}

// Validate validates the choice answer input.
func (i ChoiceAnswerInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.EnglishText) == "" {
		errs = append(errs, domain.FieldError{Field: "englishText", Message: "required"})
	}
	if strings.TrimSpace(i.SelectedTranslation) == "" {
		errs = append(errs, domain.FieldError{Field: "selectedTranslation", Message: "required"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
