package listing

import (
	"context"
	"sync"

	"github.com/aidenliw/msl-mohawk/internal/domain"
)

var _ keyRepo = &keyRepoMock{}

type keyRepoMock struct {
	ListByStudentFunc func(ctx context.Context, studentID int) ([]domain.StudentKey, error)

	calls struct {
		ListByStudent []struct {
			Ctx       context.Context
			StudentID int
		}
	}
	lockListByStudent sync.RWMutex
}

func (mock *keyRepoMock) ListByStudent(ctx context.Context, studentID int) ([]domain.StudentKey, error) {
	if mock.ListByStudentFunc == nil {
		panic("keyRepoMock.ListByStudentFunc: method is nil but keyRepo.ListByStudent was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		StudentID int
	}{Ctx: ctx, StudentID: studentID}
	mock.lockListByStudent.Lock()
	mock.calls.ListByStudent = append(mock.calls.ListByStudent, callInfo)
	mock.lockListByStudent.Unlock()
	return mock.ListByStudentFunc(ctx, studentID)
}

func (mock *keyRepoMock) ListByStudentCalls() []struct {
	Ctx       context.Context
	StudentID int
} {
	mock.lockListByStudent.RLock()
	calls := mock.calls.ListByStudent
	mock.lockListByStudent.RUnlock()
	return calls
}
