package services

import (
	"context"
	"testing"

	"raffler/domain/entities"
	"raffler/domain/events"
	"raffler/domain/testhelpers"

	"github.com/stretchr/testify/mock"
)

// Test constants for consistent test data
const (
	TestRaffleID    = int64(10)
	TestOwnerID     = int64(100)
	TestModeratorID = int64(200)
	TestSellerID    = int64(300)
	TestOutsiderID  = int64(400)
)

// TestMocks aggregates all repository mocks for testing
type TestMocks struct {
	SellerRepo     *testhelpers.MockSellerRepository
	RaffleRepo     *testhelpers.MockRaffleRepository
	MembershipRepo *testhelpers.MockMembershipRepository
	NumberRepo     *testhelpers.MockNumberRepository
	ChatRepo       *testhelpers.MockChatMessageRepository
	EventPublisher *testhelpers.MockEventPublisher
}

// NewTestMocks creates a new set of mocks
func NewTestMocks() *TestMocks {
	return &TestMocks{
		SellerRepo:     &testhelpers.MockSellerRepository{},
		RaffleRepo:     &testhelpers.MockRaffleRepository{},
		MembershipRepo: &testhelpers.MockMembershipRepository{},
		NumberRepo:     &testhelpers.MockNumberRepository{},
		ChatRepo:       &testhelpers.MockChatMessageRepository{},
		EventPublisher: &testhelpers.MockEventPublisher{},
	}
}

// AssertAllExpectations verifies all mock expectations were met
func (m *TestMocks) AssertAllExpectations(t *testing.T) {
	m.SellerRepo.AssertExpectations(t)
	m.RaffleRepo.AssertExpectations(t)
	m.MembershipRepo.AssertExpectations(t)
	m.NumberRepo.AssertExpectations(t)
	m.ChatRepo.AssertExpectations(t)
	m.EventPublisher.AssertExpectations(t)
}

// MockHelper provides common mock setup patterns
type MockHelper struct {
	mocks *TestMocks
	ctx   context.Context
}

// NewMockHelper creates a new mock helper
func NewMockHelper(mocks *TestMocks) *MockHelper {
	return &MockHelper{
		mocks: mocks,
		ctx:   context.Background(),
	}
}

// ExpectMembership sets up the membership repository to return a role for the seller
func (h *MockHelper) ExpectMembership(sellerID, raffleID int64, role entities.Role) {
	h.mocks.MembershipRepo.On("Get", mock.Anything, sellerID, raffleID).Return(&entities.Membership{
		ID:       sellerID + raffleID,
		SellerID: sellerID,
		RaffleID: raffleID,
		Role:     role,
	}, nil)
}

// ExpectNoMembership sets up the membership repository to return no membership
func (h *MockHelper) ExpectNoMembership(sellerID, raffleID int64) {
	h.mocks.MembershipRepo.On("Get", mock.Anything, sellerID, raffleID).Return(nil, nil)
}

// ExpectRaffleLookup sets up the raffle repository to return a raffle
func (h *MockHelper) ExpectRaffleLookup(raffle *entities.Raffle) {
	h.mocks.RaffleRepo.On("GetByID", mock.Anything, raffle.ID).Return(raffle, nil)
}

// ExpectRaffleNotFound sets up the raffle repository to return not found
func (h *MockHelper) ExpectRaffleNotFound(raffleID int64) {
	h.mocks.RaffleRepo.On("GetByID", mock.Anything, raffleID).Return(nil, nil)
}

// ExpectEventPublish sets up event publisher mock expectations
func (h *MockHelper) ExpectEventPublish(eventType events.EventType) {
	h.mocks.EventPublisher.On("Publish", mock.MatchedBy(func(e events.Event) bool {
		return e.Type() == eventType
	})).Return(nil)
}
