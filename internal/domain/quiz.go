package domain

import "github.com/google/uuid"

// QuizSession is the per-player state of the free-text quiz.
// It is passed into and returned from each quiz operation as a value.
type QuizSession struct {
	CurrentWordID *uuid.UUID
}

// NewQuizSession returns a session pending an answer for wordID.
func NewQuizSession(wordID uuid.UUID) QuizSession {
	return QuizSession{CurrentWordID: &wordID}
}

// HasCurrentWord reports whether a word is awaiting an answer.
func (s QuizSession) HasCurrentWord() bool {
	return s.CurrentWordID != nil && *s.CurrentWordID != uuid.Nil
}
