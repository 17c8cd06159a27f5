package account

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/aidenliw/msl-mohawk/internal/domain"
)

var _ accountRepo = &accountRepoMock{}

type accountRepoMock struct {
	DeleteFunc            func(ctx context.Context, id uuid.UUID) error
	GetByIDFunc           func(ctx context.Context, id uuid.UUID) (*domain.Account, error)
	UpdateRoleByEmailFunc func(ctx context.Context, email string, role domain.Role) (*domain.Account, error)
	UpdateStatusFunc      func(ctx context.Context, id uuid.UUID, status string) (*domain.Account, error)

	calls struct {
		Delete []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		UpdateRoleByEmail []struct {
			Ctx   context.Context
			Email string
			Role  domain.Role
		}
		UpdateStatus []struct {
			Ctx    context.Context
			ID     uuid.UUID
			Status string
		}
	}
	lockDelete            sync.RWMutex
	lockGetByID           sync.RWMutex
	lockUpdateRoleByEmail sync.RWMutex
	lockUpdateStatus      sync.RWMutex
}

func (mock *accountRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("accountRepoMock.DeleteFunc: method is nil but accountRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, id)
}

func (mock *accountRepoMock) DeleteCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *accountRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Account, error) {
	if mock.GetByIDFunc == nil {
		panic("accountRepoMock.GetByIDFunc: method is nil but accountRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *accountRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *accountRepoMock) UpdateRoleByEmail(ctx context.Context, email string, role domain.Role) (*domain.Account, error) {
	if mock.UpdateRoleByEmailFunc == nil {
		panic("accountRepoMock.UpdateRoleByEmailFunc: method is nil but accountRepo.UpdateRoleByEmail was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Email string
		Role  domain.Role
	}{
		Ctx:   ctx,
		Email: email,
		Role:  role,
	}
	mock.lockUpdateRoleByEmail.Lock()
	mock.calls.UpdateRoleByEmail = append(mock.calls.UpdateRoleByEmail, callInfo)
	mock.lockUpdateRoleByEmail.Unlock()
	return mock.UpdateRoleByEmailFunc(ctx, email, role)
}

func (mock *accountRepoMock) UpdateRoleByEmailCalls() []struct {
	Ctx   context.Context
	Email string
	Role  domain.Role
} {
	mock.lockUpdateRoleByEmail.RLock()
	calls := mock.calls.UpdateRoleByEmail
	mock.lockUpdateRoleByEmail.RUnlock()
	return calls
}

func (mock *accountRepoMock) UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*domain.Account, error) {
	if mock.UpdateStatusFunc == nil {
		panic("accountRepoMock.UpdateStatusFunc: method is nil but accountRepo.UpdateStatus was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		ID     uuid.UUID
		Status string
	}{Ctx: ctx, ID: id, Status: status}
	mock.lockUpdateStatus.Lock()
	mock.calls.UpdateStatus = append(mock.calls.UpdateStatus, callInfo)
	mock.lockUpdateStatus.Unlock()
	return mock.UpdateStatusFunc(ctx, id, status)
}

func (mock *accountRepoMock) UpdateStatusCalls() []struct {
	Ctx    context.Context
	ID     uuid.UUID
	Status string
} {
	mock.lockUpdateStatus.RLock()
	calls := mock.calls.UpdateStatus
	mock.lockUpdateStatus.RUnlock()
	return calls
}
