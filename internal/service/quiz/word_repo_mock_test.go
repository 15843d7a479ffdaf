package quiz

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/vocab-quiz/internal/domain"
)

var _ wordRepo = &wordRepoMock{}

type wordRepoMock struct {
	GetByIDFunc          func(ctx context.Context, id uuid.UUID) (*domain.Word, error)
	GetByEnglishTextFunc func(ctx context.Context, text string) (*domain.Word, error)
	RandomFunc           func(ctx context.Context) (*domain.Word, error)
	SampleExcludingFunc  func(ctx context.Context, excludeID uuid.UUID, n int) ([]domain.Word, error)

	calls struct {
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		GetByEnglishText []struct {
			Ctx  context.Context
			Text string
		}
		Random []struct {
			Ctx context.Context
		}
		SampleExcluding []struct {
			Ctx       context.Context
			ExcludeID uuid.UUID
			N         int
		}
	}
	lockGetByID          sync.RWMutex
	lockGetByEnglishText sync.RWMutex
	lockRandom           sync.RWMutex
	lockSampleExcluding  sync.RWMutex
}

func (mock *wordRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Word, error) {
	if mock.GetByIDFunc == nil {
		panic("wordRepoMock.GetByIDFunc: method is nil but wordRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *wordRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *wordRepoMock) GetByEnglishText(ctx context.Context, text string) (*domain.Word, error) {
	if mock.GetByEnglishTextFunc == nil {
		panic("wordRepoMock.GetByEnglishTextFunc: method is nil but wordRepo.GetByEnglishText was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Text string
	}{Ctx: ctx, Text: text}
	mock.lockGetByEnglishText.Lock()
	mock.calls.GetByEnglishText = append(mock.calls.GetByEnglishText, callInfo)
	mock.lockGetByEnglishText.Unlock()
	return mock.GetByEnglishTextFunc(ctx, text)
}

func (mock *wordRepoMock) GetByEnglishTextCalls() []struct {
	Ctx  context.Context
	Text string
} {
	mock.lockGetByEnglishText.RLock()
	calls := mock.calls.GetByEnglishText
	mock.lockGetByEnglishText.RUnlock()
	return calls
}

func (mock *wordRepoMock) Random(ctx context.Context) (*domain.Word, error) {
	if mock.RandomFunc == nil {
		panic("wordRepoMock.RandomFunc: method is nil but wordRepo.Random was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockRandom.Lock()
	mock.calls.Random = append(mock.calls.Random, callInfo)
	mock.lockRandom.Unlock()
	return mock.RandomFunc(ctx)
}

func (mock *wordRepoMock) RandomCalls() []struct {
	Ctx context.Context
} {
	mock.lockRandom.RLock()
	calls := mock.calls.Random
	mock.lockRandom.RUnlock()
	return calls
}

func (mock *wordRepoMock) SampleExcluding(ctx context.Context, excludeID uuid.UUID, n int) ([]domain.Word, error) {
	if mock.SampleExcludingFunc == nil {
		panic("wordRepoMock.SampleExcludingFunc: method is nil but wordRepo.SampleExcluding was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		ExcludeID uuid.UUID
		N         int
	}{Ctx: ctx, ExcludeID: excludeID, N: n}
	mock.lockSampleExcluding.Lock()
	mock.calls.SampleExcluding = append(mock.calls.SampleExcluding, callInfo)
	mock.lockSampleExcluding.Unlock()
	return mock.SampleExcludingFunc(ctx, excludeID, n)
}

func (mock *wordRepoMock) SampleExcludingCalls() []struct {
	Ctx       context.Context
	ExcludeID uuid.UUID
	N         int
} {
	mock.lockSampleExcluding.RLock()
	calls := mock.calls.SampleExcluding
	mock.lockSampleExcluding.RUnlock()
	return calls
}
