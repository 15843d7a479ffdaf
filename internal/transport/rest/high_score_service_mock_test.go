package rest

import (
	"context"
	"sync"

	"github.com/heartmarshall/vocab-quiz/internal/domain"
	"github.com/heartmarshall/vocab-quiz/internal/service/highscore"
)

var _ highScoreService = &highScoreServiceMock{}

type highScoreServiceMock struct {
	GetFunc    func(ctx context.Context, difficulty string) (*domain.HighScore, bool, error)
	SubmitFunc func(ctx context.Context, input highscore.SubmitInput) (*highscore.SubmitResult, error)

	calls struct {
		Get []struct {
			Ctx        context.Context
			Difficulty string
		}
		Submit []struct {
			Ctx   context.Context
			Input highscore.SubmitInput
		}
	}
	lockGet    sync.RWMutex
	lockSubmit sync.RWMutex
}

func (mock *highScoreServiceMock) Get(ctx context.Context, difficulty string) (*domain.HighScore, bool, error) {
	if mock.GetFunc == nil {
		panic("highScoreServiceMock.GetFunc: method is nil but highScoreService.Get was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		Difficulty string
	}{Ctx: ctx, Difficulty: difficulty}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx, difficulty)
}

func (mock *highScoreServiceMock) GetCalls() []struct {
	Ctx        context.Context
	Difficulty string
} {
	mock.lockGet.RLock()
	calls := mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

func (mock *highScoreServiceMock) Submit(ctx context.Context, input highscore.SubmitInput) (*highscore.SubmitResult, error) {
	if mock.SubmitFunc == nil {
		panic("highScoreServiceMock.SubmitFunc: method is nil but highScoreService.Submit was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input highscore.SubmitInput
	}{Ctx: ctx, Input: input}
	mock.lockSubmit.Lock()
	mock.calls.Submit = append(mock.calls.Submit, callInfo)
	mock.lockSubmit.Unlock()
	return mock.SubmitFunc(ctx, input)
}

func (mock *highScoreServiceMock) SubmitCalls() []struct {
	Ctx   context.Context
	Input highscore.SubmitInput
} {
	mock.lockSubmit.RLock()
	calls := mock.calls.Submit
	mock.lockSubmit.RUnlock()
	return calls
}
