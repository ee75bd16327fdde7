package application

import (
	"context"
	"errors"
	"testing"

	"raffler/domain"
	"raffler/domain/entities"
	"raffler/domain/events"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestService() (*Service, *MockUnitOfWork) {
	uow := NewMockUnitOfWork()
	return NewService(&MockUnitOfWorkFactory{UOW: uow}, 100), uow
}

func TestService_RegisterNumber_CommitsAndPublishes(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, uow := newTestService()

	uow.MembershipRepo.On("Get", ctx, int64(7), int64(1)).
		Return(&entities.Membership{SellerID: 7, RaffleID: 1, Role: entities.RoleSeller}, nil)
	uow.NumberRepo.On("GetByRaffleAndNumber", ctx, int64(1), "042").Return(nil, nil)
	uow.NumberRepo.On("Create", ctx, mock.AnythingOfType("*entities.Number")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*entities.Number).ID = 99
		}).Return(nil)

	id, err := svc.RegisterNumber(ctx, 7, 1, "042", "Ana", "555-0101")
	require.NoError(t, err)
	assert.Equal(t, int64(99), id)

	assert.True(t, uow.Committed)
	assert.False(t, uow.RolledBack)
	require.Len(t, uow.Published, 1)
	assert.Equal(t, events.EventTypeNumberRegistered, uow.Published[0].Type())
	uow.NumberRepo.AssertExpectations(t)
}

func TestService_RegisterNumber_ForbiddenRollsBack(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, uow := newTestService()

	uow.MembershipRepo.On("Get", ctx, int64(7), int64(1)).Return(nil, nil)

	_, err := svc.RegisterNumber(ctx, 7, 1, "042", "Ana", "")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrForbidden))

	assert.False(t, uow.Committed)
	assert.True(t, uow.RolledBack)
	assert.Empty(t, uow.Published)
	uow.NumberRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_BeginFailure(t *testing.T) {
	t.Parallel()
	svc, uow := newTestService()
	uow.BeginErr = errors.New("pool exhausted")

	_, err := svc.GetRaffle(context.Background(), 1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to begin transaction")
	assert.False(t, uow.Committed)
}

func TestService_CommitFailure(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, uow := newTestService()
	uow.CommitErr = errors.New("serialization failure")

	uow.MembershipRepo.On("Get", ctx, int64(7), int64(1)).
		Return(&entities.Membership{SellerID: 7, RaffleID: 1, Role: entities.RoleOwner}, nil)
	uow.ChatRepo.On("Create", ctx, mock.AnythingOfType("*entities.ChatMessage")).Return(nil)

	_, err := svc.PostMessage(ctx, 7, 1, "hola")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to commit transaction")
	assert.True(t, uow.RolledBack)
	assert.Empty(t, uow.Published)
}

func TestService_CreateRaffle_InvalidTermsWriteNothing(t *testing.T) {
	t.Parallel()
	svc, uow := newTestService()

	_, err := svc.CreateRaffle(context.Background(), 1, 0, decimal.NewFromInt(5), nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
	uow.RaffleRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	assert.True(t, uow.RolledBack)
}

func TestService_GetChatHistory_NonMemberIsEmpty(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, uow := newTestService()

	uow.MembershipRepo.On("Get", ctx, int64(3), int64(1)).Return(nil, nil)

	history, err := svc.GetChatHistory(ctx, 3, 1)
	require.NoError(t, err)
	assert.Empty(t, history)
	assert.True(t, uow.Committed)
}

func TestService_SearchNumbers_UsesConfiguredCap(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	uow := NewMockUnitOfWork()
	svc := NewService(&MockUnitOfWorkFactory{UOW: uow}, 10)

	// a requested page size above the cap is clamped, fetching cap+1 rows
	uow.NumberRepo.On("Search", ctx, int64(1), "", 11, 0).Return([]*entities.Number{}, nil)

	page, err := svc.SearchNumbers(ctx, 1, "", 0, 500)
	require.NoError(t, err)
	assert.Equal(t, 10, page.PageSize)
	assert.True(t, page.IsDone)
	uow.NumberRepo.AssertExpectations(t)
}
