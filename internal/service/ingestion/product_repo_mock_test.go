package ingestion

import (
	"context"
	"sync"

	"github.com/aidenliw/msl-mohawk/internal/domain"
)

var _ productRepo = &productRepoMock{}

type productRepoMock struct {
	UpsertBatchFunc func(ctx context.Context, products []domain.Product) (int, error)

	calls struct {
		UpsertBatch []struct {
			Ctx      context.Context
			Products []domain.Product
		}
	}
	lockUpsertBatch sync.RWMutex
}

func (mock *productRepoMock) UpsertBatch(ctx context.Context, products []domain.Product) (int, error) {
	if mock.UpsertBatchFunc == nil {
		panic("productRepoMock.UpsertBatchFunc: method is nil but productRepo.UpsertBatch was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		Products []domain.Product
	}{Ctx: ctx, Products: products}
	mock.lockUpsertBatch.Lock()
	mock.calls.UpsertBatch = append(mock.calls.UpsertBatch, callInfo)
	mock.lockUpsertBatch.Unlock()
	return mock.UpsertBatchFunc(ctx, products)
}

func (mock *productRepoMock) UpsertBatchCalls() []struct {
	Ctx      context.Context
	Products []domain.Product
} {
	mock.lockUpsertBatch.RLock()
	calls := mock.calls.UpsertBatch
	mock.lockUpsertBatch.RUnlock()
	return calls
}
