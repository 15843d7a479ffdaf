package highscore

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/vocab-quiz/internal/domain"
)

var _ scoreRepo = &scoreRepoMock{}

type scoreRepoMock struct {
	GetOrCreateFunc    func(ctx context.Context, userID uuid.UUID, difficulty domain.Difficulty) (*domain.HighScore, bool, error)
	UpdateIfHigherFunc func(ctx context.Context, userID uuid.UUID, difficulty domain.Difficulty, score int) (*domain.HighScore, bool, error)

	calls struct {
		GetOrCreate []struct {
			Ctx        context.Context
			UserID     uuid.UUID
			Difficulty domain.Difficulty
		}
		UpdateIfHigher []struct {
			Ctx        context.Context
			UserID     uuid.UUID
			Difficulty domain.Difficulty
			Score      int
		}
	}
	lockGetOrCreate    sync.RWMutex
	lockUpdateIfHigher sync.RWMutex
}

func (mock *scoreRepoMock) GetOrCreate(ctx context.Context, userID uuid.UUID, difficulty domain.Difficulty) (*domain.HighScore, bool, error) {
	if mock.GetOrCreateFunc == nil {
		panic("scoreRepoMock.GetOrCreateFunc: method is nil but scoreRepo.GetOrCreate was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		UserID     uuid.UUID
		Difficulty domain.Difficulty
	}{Ctx: ctx, UserID: userID, Difficulty: difficulty}
	mock.lockGetOrCreate.Lock()
	mock.calls.GetOrCreate = append(mock.calls.GetOrCreate, callInfo)
	mock.lockGetOrCreate.Unlock()
	return mock.GetOrCreateFunc(ctx, userID, difficulty)
}

func (mock *scoreRepoMock) GetOrCreateCalls() []struct {
	Ctx        context.Context
	UserID     uuid.UUID
	Difficulty domain.Difficulty
} {
	mock.lockGetOrCreate.RLock()
	calls := mock.calls.GetOrCreate
	mock.lockGetOrCreate.RUnlock()
	return calls
}

func (mock *scoreRepoMock) UpdateIfHigher(ctx context.Context, userID uuid.UUID, difficulty domain.Difficulty, score int) (*domain.HighScore, bool, error) {
	if mock.UpdateIfHigherFunc == nil {
		panic("scoreRepoMock.UpdateIfHigherFunc: method is nil but scoreRepo.UpdateIfHigher was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		UserID     uuid.UUID
		Difficulty domain.Difficulty
		Score      int
	}{Ctx: ctx, UserID: userID, Difficulty: difficulty, Score: score}
	mock.lockUpdateIfHigher.Lock()
	mock.calls.UpdateIfHigher = append(mock.calls.UpdateIfHigher, callInfo)
	mock.lockUpdateIfHigher.Unlock()
	return mock.UpdateIfHigherFunc(ctx, userID, difficulty, score)
}

func (mock *scoreRepoMock) UpdateIfHigherCalls() []struct {
	Ctx        context.Context
	UserID     uuid.UUID
	Difficulty domain.Difficulty
	Score      int
} {
	mock.lockUpdateIfHigher.RLock()
	calls := mock.calls.UpdateIfHigher
	mock.lockUpdateIfHigher.RUnlock()
	return calls
}
