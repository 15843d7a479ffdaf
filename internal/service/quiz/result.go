package quiz

import "github.com/google/uuid"

// PresentedWord is what the player sees when a word is drawn.
// Translations stay on the server until the answer is checked.
type PresentedWord struct {
	WordID      uuid.UUID
	EnglishText string
}

// AnswerResult is the outcome of a free-text answer.
type AnswerResult struct {
	Correct      bool
	EnglishText  string
	Translations []string
	UserInput    string
}

// ChoiceQuiz is a multiple-choice question. Options holds the correct
// translation and the distractors in random order.
type ChoiceQuiz struct {
	WordID             uuid.UUID
	EnglishText        string
	CorrectTranslation string
	Distractors        [distractorCount]string
	Options            []string
}

// ChoiceVerdict is the outcome of a multiple-choice answer.
type ChoiceVerdict struct {
	IsCorrect          bool
	CorrectTranslation string
}

// TranslationVerdict is the outcome of checking a translation against every slot.
type TranslationVerdict struct {
	IsCorrect           bool
	CorrectTranslations []string
}
