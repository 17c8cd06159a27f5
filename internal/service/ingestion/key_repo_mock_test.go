package ingestion

import (
	"context"
	"sync"

	"github.com/aidenliw/msl-mohawk/internal/domain"
)

var _ keyRepo = &keyRepoMock{}

type keyRepoMock struct {
	InsertBatchFunc func(ctx context.Context, pairs []domain.KeyPair) (domain.KeyInsertResult, error)

	calls struct {
		InsertBatch []struct {
			Ctx   context.Context
			Pairs []domain.KeyPair
		}
	}
	lockInsertBatch sync.RWMutex
}

func (mock *keyRepoMock) InsertBatch(ctx context.Context, pairs []domain.KeyPair) (domain.KeyInsertResult, error) {
	if mock.InsertBatchFunc == nil {
		panic("keyRepoMock.InsertBatchFunc: method is nil but keyRepo.InsertBatch was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Pairs []domain.KeyPair
	}{Ctx: ctx, Pairs: pairs}
	mock.lockInsertBatch.Lock()
	mock.calls.InsertBatch = append(mock.calls.InsertBatch, callInfo)
	mock.lockInsertBatch.Unlock()
	return mock.InsertBatchFunc(ctx, pairs)
}

func (mock *keyRepoMock) InsertBatchCalls() []struct {
	Ctx   context.Context
	Pairs []domain.KeyPair
} {
	mock.lockInsertBatch.RLock()
	calls := mock.calls.InsertBatch
	mock.lockInsertBatch.RUnlock()
	return calls
}
