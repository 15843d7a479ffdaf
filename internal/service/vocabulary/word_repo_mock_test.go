package vocabulary

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/vocab-quiz/internal/domain"
)

var _ wordRepo = &wordRepoMock{}

type wordRepoMock struct {
	GetByIDFunc   func(ctx context.Context, id uuid.UUID) (*domain.Word, error)
	ListFunc      func(ctx context.Context, limit int, offset int) ([]domain.Word, int, error)
	RandomFunc    func(ctx context.Context) (*domain.Word, error)
	CreateFunc    func(ctx context.Context, w *domain.Word) (*domain.Word, error)
	UpdateFunc    func(ctx context.Context, w *domain.Word) (*domain.Word, error)
	UpsertFunc    func(ctx context.Context, w *domain.Word) (*domain.Word, bool, error)
	DeleteFunc    func(ctx context.Context, id uuid.UUID) error
	DeleteAllFunc func(ctx context.Context) (int, error)

	calls struct {
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		List []struct {
			Ctx    context.Context
			Limit  int
			Offset int
		}
		Random []struct {
			Ctx context.Context
		}
		Create []struct {
			Ctx context.Context
			W   *domain.Word
		}
		Update []struct {
			Ctx context.Context
			W   *domain.Word
		}
		Upsert []struct {
			Ctx context.Context
			W   *domain.Word
		}
		Delete []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		DeleteAll []struct {
			Ctx context.Context
		}
	}
	lockGetByID   sync.RWMutex
	lockList      sync.RWMutex
	lockRandom    sync.RWMutex
	lockCreate    sync.RWMutex
	lockUpdate    sync.RWMutex
	lockUpsert    sync.RWMutex
	lockDelete    sync.RWMutex
	lockDeleteAll sync.RWMutex
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

func (mock *wordRepoMock) List(ctx context.Context, limit int, offset int) ([]domain.Word, int, error) {
	if mock.ListFunc == nil {
		panic("wordRepoMock.ListFunc: method is nil but wordRepo.List was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Limit  int
		Offset int
	}{Ctx: ctx, Limit: limit, Offset: offset}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, limit, offset)
}

func (mock *wordRepoMock) ListCalls() []struct {
	Ctx    context.Context
	Limit  int
	Offset int
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
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

func (mock *wordRepoMock) Create(ctx context.Context, w *domain.Word) (*domain.Word, error) {
	if mock.CreateFunc == nil {
		panic("wordRepoMock.CreateFunc: method is nil but wordRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		W   *domain.Word
	}{Ctx: ctx, W: w}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, w)
}

func (mock *wordRepoMock) CreateCalls() []struct {
	Ctx context.Context
	W   *domain.Word
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *wordRepoMock) Update(ctx context.Context, w *domain.Word) (*domain.Word, error) {
	if mock.UpdateFunc == nil {
		panic("wordRepoMock.UpdateFunc: method is nil but wordRepo.Update was just called")
	}
	callInfo := struct {
		Ctx context.Context
		W   *domain.Word
	}{Ctx: ctx, W: w}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, w)
}

func (mock *wordRepoMock) UpdateCalls() []struct {
	Ctx context.Context
	W   *domain.Word
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *wordRepoMock) Upsert(ctx context.Context, w *domain.Word) (*domain.Word, bool, error) {
	if mock.UpsertFunc == nil {
		panic("wordRepoMock.UpsertFunc: method is nil but wordRepo.Upsert was just called")
	}
	callInfo := struct {
		Ctx context.Context
		W   *domain.Word
	}{Ctx: ctx, W: w}
	mock.lockUpsert.Lock()
	mock.calls.Upsert = append(mock.calls.Upsert, callInfo)
	mock.lockUpsert.Unlock()
	return mock.UpsertFunc(ctx, w)
}

func (mock *wordRepoMock) UpsertCalls() []struct {
	Ctx context.Context
	W   *domain.Word
} {
	mock.lockUpsert.RLock()
	calls := mock.calls.Upsert
	mock.lockUpsert.RUnlock()
	return calls
}

func (mock *wordRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("wordRepoMock.DeleteFunc: method is nil but wordRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, id)
}

func (mock *wordRepoMock) DeleteCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *wordRepoMock) DeleteAll(ctx context.Context) (int, error) {
	if mock.DeleteAllFunc == nil {
		panic("wordRepoMock.DeleteAllFunc: method is nil but wordRepo.DeleteAll was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockDeleteAll.Lock()
	mock.calls.DeleteAll = append(mock.calls.DeleteAll, callInfo)
	mock.lockDeleteAll.Unlock()
	return mock.DeleteAllFunc(ctx)
}

func (mock *wordRepoMock) DeleteAllCalls() []struct {
	Ctx context.Context
} {
	mock.lockDeleteAll.RLock()
	calls := mock.calls.DeleteAll
	mock.lockDeleteAll.RUnlock()
	return calls
}
