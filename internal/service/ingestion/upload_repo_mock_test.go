package ingestion

import (
	"context"
	"sync"

	"github.com/aidenliw/msl-mohawk/internal/domain"
)

var _ uploadRepo = &uploadRepoMock{}

type uploadRepoMock struct {
	CreateFunc func(ctx context.Context, u domain.Upload) (domain.Upload, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			U   domain.Upload
		}
	}
	lockCreate sync.RWMutex
}

func (mock *uploadRepoMock) Create(ctx context.Context, u domain.Upload) (domain.Upload, error) {
	if mock.CreateFunc == nil {
		panic("uploadRepoMock.CreateFunc: method is nil but uploadRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		U   domain.Upload
	}{Ctx: ctx, U: u}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, u)
}

func (mock *uploadRepoMock) CreateCalls() []struct {
	Ctx context.Context
	U   domain.Upload
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}
