package vocabctl

import (
	"context"
	"sync"
)

var _ accountAdmin = &accountAdminMock{}

type accountAdminMock struct {
	PromoteFunc              func(ctx context.Context, username string) error
	CleanupExpiredTokensFunc func(ctx context.Context) (int, error)

	calls struct {
		Promote []struct {
			Ctx      context.Context
			Username string
		}
		CleanupExpiredTokens []struct {
			Ctx context.Context
		}
	}
	lockPromote              sync.RWMutex
	lockCleanupExpiredTokens sync.RWMutex
}

func (mock *accountAdminMock) Promote(ctx context.Context, username string) error {
	if mock.PromoteFunc == nil {
		panic("accountAdminMock.PromoteFunc: method is nil but accountAdmin.Promote was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		Username string
	}{Ctx: ctx, Username: username}
	mock.lockPromote.Lock()
	mock.calls.Promote = append(mock.calls.Promote, callInfo)
	mock.lockPromote.Unlock()
	return mock.PromoteFunc(ctx, username)
}

func (mock *accountAdminMock) PromoteCalls() []struct {
	Ctx      context.Context
	Username string
} {
	mock.lockPromote.RLock()
	calls := mock.calls.Promote
	mock.lockPromote.RUnlock()
	return calls
}

func (mock *accountAdminMock) CleanupExpiredTokens(ctx context.Context) (int, error) {
	if mock.CleanupExpiredTokensFunc == nil {
		panic("accountAdminMock.CleanupExpiredTokensFunc: method is nil but accountAdmin.CleanupExpiredTokens was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockCleanupExpiredTokens.Lock()
	mock.calls.CleanupExpiredTokens = append(mock.calls.CleanupExpiredTokens, callInfo)
	mock.lockCleanupExpiredTokens.Unlock()
	return mock.CleanupExpiredTokensFunc(ctx)
}

func (mock *accountAdminMock) CleanupExpiredTokensCalls() []struct {
	Ctx context.Context
} {
	mock.lockCleanupExpiredTokens.RLock()
	calls := mock.calls.CleanupExpiredTokens
	mock.lockCleanupExpiredTokens.RUnlock()
	return calls
}
