package listing

import (
	"sync"

	"github.com/aidenliw/msl-mohawk/internal/domain"
	"github.com/aidenliw/msl-mohawk/internal/paging"
)

var _ studentRepo = &studentRepoMock{}

type studentRepoMock struct {
	QueryFunc func(f domain.StudentFilter) paging.Query[domain.EligibleStudent]

	calls struct {
		Query []struct {
			F domain.StudentFilter
		}
	}
	lockQuery sync.RWMutex
}

func (mock *studentRepoMock) Query(f domain.StudentFilter) paging.Query[domain.EligibleStudent] {
	if mock.QueryFunc == nil {
		panic("studentRepoMock.QueryFunc: method is nil but studentRepo.Query was just called")
	}
	callInfo := struct {
		F domain.StudentFilter
	}{F: f}
	mock.lockQuery.Lock()
	mock.calls.Query = append(mock.calls.Query, callInfo)
	mock.lockQuery.Unlock()
	return mock.QueryFunc(f)
}

func (mock *studentRepoMock) QueryCalls() []struct {
	F domain.StudentFilter
} {
	mock.lockQuery.RLock()
	calls := mock.calls.Query
	mock.lockQuery.RUnlock()
	return calls
}
