package ingestion

import (
	"context"
	"sync"

	"github.com/aidenliw/msl-mohawk/internal/domain"
)

var _ studentRepo = &studentRepoMock{}

type studentRepoMock struct {
	UpsertBatchFunc func(ctx context.Context, students []domain.EligibleStudent) (int, error)

	calls struct {
		UpsertBatch []struct {
			Ctx      context.Context
			Students []domain.EligibleStudent
		}
	}
	lockUpsertBatch sync.RWMutex
}

func (mock *studentRepoMock) UpsertBatch(ctx context.Context, students []domain.EligibleStudent) (int, error) {
	if mock.UpsertBatchFunc == nil {
		panic("studentRepoMock.UpsertBatchFunc: method is nil but studentRepo.UpsertBatch was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		Students []domain.EligibleStudent
	}{Ctx: ctx, Students: students}
	mock.lockUpsertBatch.Lock()
	mock.calls.UpsertBatch = append(mock.calls.UpsertBatch, callInfo)
	mock.lockUpsertBatch.Unlock()
	return mock.UpsertBatchFunc(ctx, students)
}

func (mock *studentRepoMock) UpsertBatchCalls() []struct {
	Ctx      context.Context
	Students []domain.EligibleStudent
} {
	mock.lockUpsertBatch.RLock()
	calls := mock.calls.UpsertBatch
	mock.lockUpsertBatch.RUnlock()
	return calls
}
