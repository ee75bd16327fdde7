package application_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"raffler/application"
	"raffler/domain"
	"raffler/domain/entities"
	"raffler/domain/testhelpers"
	"raffler/infrastructure"
	"raffler/repository/testutil"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupService(t *testing.T) (*application.Service, *testhelpers.MockEventPublisher) {
	t.Helper()
	testDB := testutil.SetupTestDatabase(t)

	publisher := new(testhelpers.MockEventPublisher)
	publisher.On("Publish", mock.Anything).Return(nil)

	factory := infrastructure.NewUnitOfWorkFactory(testDB.DB, publisher)
	return application.NewService(factory, 100), publisher
}

func TestServiceIntegration_RaffleLifecycle(t *testing.T) {
	t.Parallel()
	svc, publisher := setupService(t)
	ctx := context.Background()

	owner, err := svc.Login(ctx, "  Marta ")
	require.NoError(t, err)
	assert.Equal(t, "Marta", owner.Name)

	helper, err := svc.Login(ctx, "Luis")
	require.NoError(t, err)

	raffleID, err := svc.CreateRaffle(ctx, owner.ID, 100, decimal.RequireFromString("2.50"), []entities.InitialMembership{
		{SellerID: owner.ID, Role: entities.RoleOwner},
		{SellerID: helper.ID, Role: entities.RoleSeller},
	})
	require.NoError(t, err)

	raffle, err := svc.GetRaffle(ctx, raffleID)
	require.NoError(t, err)
	require.NotNil(t, raffle)
	assert.Equal(t, entities.RaffleStateWaiting, raffle.State)

	_, err = svc.RegisterNumber(ctx, helper.ID, raffleID, "07", "Ana", "ana@example.com")
	require.NoError(t, err)
	_, err = svc.RegisterNumber(ctx, owner.ID, raffleID, "13", "Beto", "")
	require.NoError(t, err)

	_, err = svc.RegisterNumber(ctx, owner.ID, raffleID, "07", "Carla", "")
	assert.True(t, errors.Is(err, domain.ErrConflict))

	summary, err := svc.GetRaffleSummary(ctx, raffleID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), summary.NumbersSold)
	assert.True(t, decimal.RequireFromString("5").Equal(summary.Revenue))

	page, err := svc.SearchNumbers(ctx, raffleID, "ana", 0, 10)
	require.NoError(t, err)
	require.Len(t, page.Results, 1)
	assert.Equal(t, "07", page.Results[0].Number)
	assert.True(t, page.IsDone)

	err = svc.SetRaffleState(ctx, helper.ID, raffleID, entities.RaffleStateStarted)
	assert.True(t, errors.Is(err, domain.ErrForbidden))

	require.NoError(t, svc.SetRaffleState(ctx, owner.ID, raffleID, entities.RaffleStateStarted))

	_, err = svc.PostMessage(ctx, helper.ID, raffleID, "  vendí dos  ")
	require.NoError(t, err)
	history, err := svc.GetChatHistory(ctx, owner.ID, raffleID)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, "vendí dos", history[0].Message)
	assert.Equal(t, "Luis", history[0].SellerName)

	// raffle created, two numbers, state change, chat message
	publisher.AssertNumberOfCalls(t, "Publish", 5)
}

func TestServiceIntegration_CreateRaffleIsAtomic(t *testing.T) {
	t.Parallel()
	svc, publisher := setupService(t)
	ctx := context.Background()

	owner, err := svc.Login(ctx, "owner")
	require.NoError(t, err)

	// the second membership references a seller that does not exist
	_, err = svc.CreateRaffle(ctx, owner.ID, 10, decimal.NewFromInt(1), []entities.InitialMembership{
		{SellerID: owner.ID, Role: entities.RoleOwner},
		{SellerID: owner.ID + 1000, Role: entities.RoleSeller},
	})
	require.Error(t, err)

	raffles, err := svc.ListRaffles(ctx)
	require.NoError(t, err)
	assert.Empty(t, raffles)

	mine, err := svc.GetRafflesForSeller(ctx, owner.ID)
	require.NoError(t, err)
	assert.Empty(t, mine)
	publisher.AssertNotCalled(t, "Publish", mock.Anything)
}

func TestServiceIntegration_CreateRaffleUnknownCreator(t *testing.T) {
	t.Parallel()
	svc, publisher := setupService(t)
	ctx := context.Background()

	_, err := svc.CreateRaffle(ctx, 987654, 10, decimal.NewFromInt(1), nil)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	raffles, err := svc.ListRaffles(ctx)
	require.NoError(t, err)
	assert.Empty(t, raffles)
	publisher.AssertNotCalled(t, "Publish", mock.Anything)
}

func TestServiceIntegration_ConcurrentRegistrationHasOneWinner(t *testing.T) {
	t.Parallel()
	svc, _ := setupService(t)
	ctx := context.Background()

	owner, err := svc.Login(ctx, "racer")
	require.NoError(t, err)
	raffleID, err := svc.CreateRaffle(ctx, owner.ID, 10, decimal.NewFromInt(1), []entities.InitialMembership{
		{SellerID: owner.ID, Role: entities.RoleOwner},
	})
	require.NoError(t, err)

	const attempts = 8
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		wins      int
		conflicts int
	)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.RegisterNumber(ctx, owner.ID, raffleID, "77", "Buyer", "")
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				wins++
			case errors.Is(err, domain.ErrConflict):
				conflicts++
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, wins)
	assert.Equal(t, attempts-1, conflicts)
}

func TestServiceIntegration_Membership(t *testing.T) {
	t.Parallel()
	svc, _ := setupService(t)
	ctx := context.Background()

	owner, err := svc.Login(ctx, "jefa")
	require.NoError(t, err)
	mod, err := svc.Login(ctx, "mod")
	require.NoError(t, err)
	newcomer, err := svc.Login(ctx, "nuevo")
	require.NoError(t, err)

	raffleID, err := svc.CreateRaffle(ctx, owner.ID, 50, decimal.NewFromInt(3), []entities.InitialMembership{
		{SellerID: owner.ID, Role: entities.RoleOwner},
		{SellerID: mod.ID, Role: entities.RoleModerator},
	})
	require.NoError(t, err)

	_, err = svc.AssignMember(ctx, newcomer.ID, newcomer.ID, raffleID, entities.RoleOwner)
	assert.True(t, errors.Is(err, domain.ErrForbidden))

	firstID, err := svc.AssignMember(ctx, mod.ID, newcomer.ID, raffleID, entities.RoleSeller)
	require.NoError(t, err)
	secondID, err := svc.AssignMember(ctx, mod.ID, newcomer.ID, raffleID, entities.RoleModerator)
	require.NoError(t, err)
	assert.Equal(t, firstID, secondID)

	role, err := svc.GetRole(ctx, newcomer.ID, raffleID)
	require.NoError(t, err)
	require.NotNil(t, role)
	assert.Equal(t, entities.RoleModerator, *role)

	err = svc.RemoveMember(ctx, owner.ID, owner.ID, raffleID)
	assert.True(t, errors.Is(err, domain.ErrInvalidOperation))

	require.NoError(t, svc.RemoveMember(ctx, mod.ID, mod.ID, raffleID))
	require.NoError(t, svc.RemoveMember(ctx, owner.ID, mod.ID, raffleID))

	members, err := svc.GetMembers(ctx, raffleID)
	require.NoError(t, err)
	require.Len(t, members, 2)
	assert.Equal(t, owner.ID, members[0].Seller.ID)
	assert.Equal(t, newcomer.ID, members[1].Seller.ID)
}
