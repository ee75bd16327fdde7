package services

import (
	"context"
	"testing"

	"raffler/domain"
	"raffler/domain/entities"
	"raffler/domain/events"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestChatService_PostMessage(t *testing.T) {
	t.Parallel()

	t.Run("member posts trimmed message", func(t *testing.T) {
		t.Parallel()

		mocks := NewTestMocks()
		helper := NewMockHelper(mocks)
		helper.ExpectMembership(TestSellerID, TestRaffleID, entities.RoleSeller)
		mocks.ChatRepo.On("Create", mock.Anything, mock.MatchedBy(func(m *entities.ChatMessage) bool {
			return m.Message == "hola equipo" && m.SellerID == TestSellerID && m.RaffleID == TestRaffleID
		})).Run(func(args mock.Arguments) {
			args.Get(1).(*entities.ChatMessage).ID = 9
		}).Return(nil)
		helper.ExpectEventPublish(events.EventTypeChatMessagePosted)

		service := NewChatService(mocks.ChatRepo, mocks.MembershipRepo, mocks.EventPublisher)
		id, err := service.PostMessage(context.Background(), TestSellerID, TestRaffleID, "  hola equipo \n")
		require.NoError(t, err)
		assert.Equal(t, int64(9), id)
		mocks.AssertAllExpectations(t)
	})

	t.Run("non-member is forbidden", func(t *testing.T) {
		t.Parallel()

		mocks := NewTestMocks()
		NewMockHelper(mocks).ExpectNoMembership(TestOutsiderID, TestRaffleID)

		service := NewChatService(mocks.ChatRepo, mocks.MembershipRepo, mocks.EventPublisher)
		_, err := service.PostMessage(context.Background(), TestOutsiderID, TestRaffleID, "hola")
		assert.ErrorIs(t, err, domain.ErrForbidden)
		mocks.ChatRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("whitespace message is invalid", func(t *testing.T) {
		t.Parallel()

		mocks := NewTestMocks()
		NewMockHelper(mocks).ExpectMembership(TestOwnerID, TestRaffleID, entities.RoleOwner)

		service := NewChatService(mocks.ChatRepo, mocks.MembershipRepo, mocks.EventPublisher)
		_, err := service.PostMessage(context.Background(), TestOwnerID, TestRaffleID, " \t ")
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
		mocks.ChatRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestChatService_GetHistory(t *testing.T) {
	t.Parallel()

	t.Run("non-member gets empty history", func(t *testing.T) {
		t.Parallel()

		mocks := NewTestMocks()
		NewMockHelper(mocks).ExpectNoMembership(TestOutsiderID, TestRaffleID)

		service := NewChatService(mocks.ChatRepo, mocks.MembershipRepo, mocks.EventPublisher)
		history, err := service.GetHistory(context.Background(), TestOutsiderID, TestRaffleID)
		require.NoError(t, err)
		assert.NotNil(t, history)
		assert.Empty(t, history)
		mocks.ChatRepo.AssertNotCalled(t, "GetByRaffle", mock.Anything, mock.Anything)
	})

	t.Run("member gets messages", func(t *testing.T) {
		t.Parallel()

		mocks := NewTestMocks()
		NewMockHelper(mocks).ExpectMembership(TestSellerID, TestRaffleID, entities.RoleSeller)
		expected := []*entities.ChatMessage{
			{ID: 1, Message: "primero", SellerName: "Ana"},
			{ID: 2, Message: "segundo", SellerName: entities.UnknownSellerName},
		}
		mocks.ChatRepo.On("GetByRaffle", mock.Anything, TestRaffleID).Return(expected, nil)

		service := NewChatService(mocks.ChatRepo, mocks.MembershipRepo, mocks.EventPublisher)
		history, err := service.GetHistory(context.Background(), TestSellerID, TestRaffleID)
		require.NoError(t, err)
		assert.Equal(t, expected, history)
		mocks.AssertAllExpectations(t)
	})
}
