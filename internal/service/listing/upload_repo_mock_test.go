package listing

import (
	"sync"

	"github.com/aidenliw/msl-mohawk/internal/domain"
	"github.com/aidenliw/msl-mohawk/internal/paging"
)

var _ uploadRepo = &uploadRepoMock{}

type uploadRepoMock struct {
	QueryFunc func() paging.Query[domain.Upload]

	calls struct {
		Query []struct{}
	}
	lockQuery sync.RWMutex
}

func (mock *uploadRepoMock) Query() paging.Query[domain.Upload] {
	if mock.QueryFunc == nil {
		panic("uploadRepoMock.QueryFunc: method is nil but uploadRepo.Query was just called")
	}
	mock.lockQuery.Lock()
	mock.calls.Query = append(mock.calls.Query, struct{}{})
	mock.lockQuery.Unlock()
	return mock.QueryFunc()
}

func (mock *uploadRepoMock) QueryCalls() []struct{} {
	mock.lockQuery.RLock()
	calls := mock.calls.Query
	mock.lockQuery.RUnlock()
	return calls
}
