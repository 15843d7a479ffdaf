package rest

import (
	"context"
	"sync"

	"github.com/heartmarshall/vocab-quiz/internal/domain"
	"github.com/heartmarshall/vocab-quiz/internal/service/quiz"
)

var _ quizService = &quizServiceMock{}

type quizServiceMock struct {
	PresentRandomWordFunc    func(ctx context.Context) (*quiz.PresentedWord, domain.QuizSession, error)
	SubmitFreeTextAnswerFunc func(ctx context.Context, session domain.QuizSession, rawInput string) (*quiz.AnswerResult, domain.QuizSession, error)
	GenerateChoiceQuizFunc   func(ctx context.Context) (*quiz.ChoiceQuiz, error)
	CheckChoiceAnswerFunc    func(ctx context.Context, input quiz.ChoiceAnswerInput) (*quiz.ChoiceVerdict, error)

	calls struct {
		PresentRandomWord []struct {
			Ctx context.Context
		}
		SubmitFreeTextAnswer []struct {
			Ctx      context.Context
			Session  domain.QuizSession
			RawInput string
		}
		GenerateChoiceQuiz []struct {
			Ctx context.Context
		}
		CheckChoiceAnswer []struct {
			Ctx   context.Context
			Input quiz.ChoiceAnswerInput
		}
	}
	lockPresentRandomWord    sync.RWMutex
	lockSubmitFreeTextAnswer sync.RWMutex
	lockGenerateChoiceQuiz   sync.RWMutex
	lockCheckChoiceAnswer    sync.RWMutex
}

func (mock *quizServiceMock) PresentRandomWord(ctx context.Context) (*quiz.PresentedWord, domain.QuizSession, error) {
	if mock.PresentRandomWordFunc == nil {
		panic("quizServiceMock.PresentRandomWordFunc: method is nil but quizService.PresentRandomWord was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockPresentRandomWord.Lock()
	mock.calls.PresentRandomWord = append(mock.calls.PresentRandomWord, callInfo)
	mock.lockPresentRandomWord.Unlock()
	return mock.PresentRandomWordFunc(ctx)
}

func (mock *quizServiceMock) PresentRandomWordCalls() []struct {
	Ctx context.Context
} {
	mock.lockPresentRandomWord.RLock()
	calls := mock.calls.PresentRandomWord
	mock.lockPresentRandomWord.RUnlock()
	return calls
}

func (mock *quizServiceMock) SubmitFreeTextAnswer(ctx context.Context, session domain.QuizSession, rawInput string) (*quiz.AnswerResult, domain.QuizSession, error) {
	if mock.SubmitFreeTextAnswerFunc == nil {
		panic("quizServiceMock.SubmitFreeTextAnswerFunc: method is nil but quizService.SubmitFreeTextAnswer was just called")
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

func (mock *quizServiceMock) SubmitFreeTextAnswerCalls() []struct {
	Ctx      context.Context
	Session  domain.QuizSession
	RawInput string
} {
	mock.lockSubmitFreeTextAnswer.RLock()
	calls := mock.calls.SubmitFreeTextAnswer
	mock.lockSubmitFreeTextAnswer.RUnlock()
	return calls
}

func (mock *quizServiceMock) GenerateChoiceQuiz(ctx context.Context) (*quiz.ChoiceQuiz, error) {
	if mock.GenerateChoiceQuizFunc == nil {
		panic("quizServiceMock.GenerateChoiceQuizFunc: method is nil but quizService.GenerateChoiceQuiz was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockGenerateChoiceQuiz.Lock()
	mock.calls.GenerateChoiceQuiz = append(mock.calls.GenerateChoiceQuiz, callInfo)
	mock.lockGenerateChoiceQuiz.Unlock()
	return mock.GenerateChoiceQuizFunc(ctx)
}

func (mock *quizServiceMock) GenerateChoiceQuizCalls() []struct {
	Ctx context.Context
} {
	mock.lockGenerateChoiceQuiz.RLock()
	calls := mock.calls.GenerateChoiceQuiz
	mock.lockGenerateChoiceQuiz.RUnlock()
	return calls
}

func (mock *quizServiceMock) CheckChoiceAnswer(ctx context.Context, input quiz.ChoiceAnswerInput) (*quiz.ChoiceVerdict, error) {
	if mock.CheckChoiceAnswerFunc == nil {
		panic("quizServiceMock.CheckChoiceAnswerFunc: method is nil but quizService.CheckChoiceAnswer was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input quiz.ChoiceAnswerInput
	}{Ctx: ctx, Input: input}
	mock.lockCheckChoiceAnswer.Lock()
	mock.calls.CheckChoiceAnswer = append(mock.calls.CheckChoiceAnswer, callInfo)
	mock.lockCheckChoiceAnswer.Unlock()
	return mock.CheckChoiceAnswerFunc(ctx, input)
}

func (mock *quizServiceMock) CheckChoiceAnswerCalls() []struct {
	Ctx   context.Context
	Input quiz.ChoiceAnswerInput
} {
	mock.lockCheckChoiceAnswer.RLock()
	calls := mock.calls.CheckChoiceAnswer
	mock.lockCheckChoiceAnswer.RUnlock()
	return calls
}
