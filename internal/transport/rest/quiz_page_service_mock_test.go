package rest

import (
	"context"
	"sync"

	"github.com/heartmarshall/vocab-quiz/internal/domain"
	"github.com/heartmarshall/vocab-quiz/internal/service/quiz"
)

var _ quizPageService = &quizPageServiceMock{}

type quizPageServiceMock struct {
	PresentRandomWordFunc    func(ctx context.Context) (*quiz.PresentedWord, domain.QuizSession, error)
	CurrentWordFunc          func(ctx context.Context, session domain.QuizSession) (*quiz.PresentedWord, error)
	SubmitFreeTextAnswerFunc func(ctx context.Context, session domain.QuizSession, rawInput string) (*quiz.AnswerResult, domain.QuizSession, error)

	calls struct {
		PresentRandomWord []struct {
			Ctx context.Context
		}
		CurrentWord []struct {
			Ctx     context.Context
			Session domain.QuizSession
		}
		SubmitFreeTextAnswer []struct {
			Ctx      context.Context
			Session  domain.QuizSession
			RawInput string
		}
	}
	lockPresentRandomWord    sync.RWMutex
	lockCurrentWord          sync.RWMutex
	lockSubmitFreeTextAnswer sync.RWMutex
}

func (mock *quizPageServiceMock) PresentRandomWord(ctx context.Context) (*quiz.PresentedWord, domain.QuizSession, error) {
	if mock.PresentRandomWordFunc == nil {
		panic("quizPageServiceMock.PresentRandomWordFunc: method is nil but quizPageService.PresentRandomWord was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockPresentRandomWord.Lock()
	mock.calls.PresentRandomWord = append(mock.calls.PresentRandomWord, callInfo)
	mock.lockPresentRandomWord.Unlock()
	return mock.PresentRandomWordFunc(ctx)
}

func (mock *quizPageServiceMock) PresentRandomWordCalls() []struct {
	Ctx context.Context
} {
	mock.lockPresentRandomWord.RLock()
	calls := mock.calls.PresentRandomWord
	mock.lockPresentRandomWord.RUnlock()
	return calls
}

func (mock *quizPageServiceMock) CurrentWord(ctx context.Context, session domain.QuizSession) (*quiz.PresentedWord, error) {
	if mock.CurrentWordFunc == nil {
		panic("quizPageServiceMock.CurrentWordFunc: method is nil but quizPageService.CurrentWord was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		Session domain.QuizSession
	}{Ctx: ctx, Session: session}
	mock.lockCurrentWord.Lock()
	mock.calls.CurrentWord = append(mock.calls.CurrentWord, callInfo)
	mock.lockCurrentWord.Unlock()
	return mock.CurrentWordFunc(ctx, session)
}

func (mock *quizPageServiceMock) CurrentWordCalls() []struct {
	Ctx     context.Context
	Session domain.QuizSession
} {
	mock.lockCurrentWord.RLock()
	calls := mock.calls.CurrentWord
	mock.lockCurrentWord.RUnlock()
	return calls
}

func (mock *quizPageServiceMock) SubmitFreeTextAnswer(ctx context.Context, session domain.QuizSession, rawInput string) (*quiz.AnswerResult, domain.QuizSession, error) {
	if mock.SubmitFreeTextAnswerFunc == nil {
		panic("quizPageServiceMock.SubmitFreeTextAnswerFunc: method is nil but quizPageService.SubmitFreeTextAnswer was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		Session  domain.QuizSession
		RawInput string
	}{Ctx: ctx, Session: session, RawInput: rawInput}
	mock.lockSubmitFreeTextAnswer.Lock()
	mock.calls.SubmitFreeTextAnswer = append(mock.calls.SubmitFreeTextAnswer, callInfo)
	mock.lockSubmitFreeTextAnswer.Unlock()
	return mock.SubmitFreeTextAnswerFunc(ctx, session, rawInput)
}

func (mock *quizPageServiceMock) SubmitFreeTextAnswerCalls() []struct {
	Ctx      context.Context
	Session  domain.QuizSession
	RawInput string
} {
	mock.lockSubmitFreeTextAnswer.RLock()
	calls := mock.calls.SubmitFreeTextAnswer
	mock.lockSubmitFreeTextAnswer.RUnlock()
	return calls
}
