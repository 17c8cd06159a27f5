package listing

import (
	"sync"

	"github.com/aidenliw/msl-mohawk/internal/domain"
	"github.com/aidenliw/msl-mohawk/internal/paging"
)

var _ accountRepo = &accountRepoMock{}

type accountRepoMock struct {
	QueryFunc func(f domain.AccountFilter) paging.Query[domain.Account]

	calls struct {
		Query []struct {
			F domain.AccountFilter
		}
	}
	lockQuery sync.RWMutex
}

func (mock *accountRepoMock) Query(f domain.AccountFilter) paging.Query[domain.Account] {
	if mock.QueryFunc == nil {
		panic("accountRepoMock.QueryFunc: method is nil but accountRepo.Query was just called")
	}
	callInfo := struct {
		F domain.AccountFilter
	}{F: f}
	mock.lockQuery.Lock()
	mock.calls.Query = append(mock.calls.Query, callInfo)
	mock.lockQuery.Unlock()
	return mock.QueryFunc(f)
}

func (mock *accountRepoMock) QueryCalls() []struct {
	F domain.AccountFilter
} {
	mock.lockQuery.RLock()
	calls := mock.calls.Query
	mock.lockQuery.RUnlock()
	return calls
}
