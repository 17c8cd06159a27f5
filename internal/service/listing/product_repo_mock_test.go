package listing

import (
	"sync"

	"github.com/aidenliw/msl-mohawk/internal/domain"
	"github.com/aidenliw/msl-mohawk/internal/paging"
)

var _ productRepo = &productRepoMock{}

type productRepoMock struct {
	QueryFunc func(f domain.ProductFilter) paging.Query[domain.ProductSummary]

	calls struct {
		Query []struct {
			F domain.ProductFilter
		}
	}
	lockQuery sync.RWMutex
}

func (mock *productRepoMock) Query(f domain.ProductFilter) paging.Query[domain.ProductSummary] {
	if mock.QueryFunc == nil {
		panic("productRepoMock.QueryFunc: method is nil but productRepo.Query was just called")
	}
	callInfo := struct {
		F domain.ProductFilter
	}{F: f}
	mock.lockQuery.Lock()
	mock.calls.Query = append(mock.calls.Query, callInfo)
	mock.lockQuery.Unlock()
	return mock.QueryFunc(f)
}

func (mock *productRepoMock) QueryCalls() []struct {
	F domain.ProductFilter
} {
	mock.lockQuery.RLock()
	calls := mock.calls.Query
	mock.lockQuery.RUnlock()
	return calls
}
