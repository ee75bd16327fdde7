package testhelpers

import (
	"context"

	"raffler/domain/entities"
	"raffler/domain/events"

	"github.com/stretchr/testify/mock"
)

// MockSellerRepository is a mock implementation of SellerRepository
type MockSellerRepository struct {
	mock.Mock
}

func (m *MockSellerRepository) GetByID(ctx context.Context, id int64) (*entities.Seller, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Seller), args.Error(1)
}

func (m *MockSellerRepository) GetByName(ctx context.Context, name string) (*entities.Seller, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Seller), args.Error(1)
}

func (m *MockSellerRepository) GetOrCreate(ctx context.Context, name string) (*entities.Seller, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Seller), args.Error(1)
}

func (m *MockSellerRepository) Search(ctx context.Context, term string, limit int) ([]*entities.Seller, error) {
	args := m.Called(ctx, term, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Seller), args.Error(1)
}

// MockRaffleRepository is a mock implementation of RaffleRepository
type MockRaffleRepository struct {
	mock.Mock
}

func (m *MockRaffleRepository) Create(ctx context.Context, raffle *entities.Raffle) error {
	args := m.Called(ctx, raffle)
	return args.Error(0)
}

func (m *MockRaffleRepository) GetByID(ctx context.Context, id int64) (*entities.Raffle, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Raffle), args.Error(1)
}

func (m *MockRaffleRepository) UpdateState(ctx context.Context, id int64, state entities.RaffleState) error {
	args := m.Called(ctx, id, state)
	return args.Error(0)
}

func (m *MockRaffleRepository) List(ctx context.Context) ([]*entities.Raffle, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Raffle), args.Error(1)
}

// MockMembershipRepository is a mock implementation of MembershipRepository
type MockMembershipRepository struct {
	mock.Mock
}

func (m *MockMembershipRepository) Get(ctx context.Context, sellerID, raffleID int64) (*entities.Membership, error) {
	args := m.Called(ctx, sellerID, raffleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Membership), args.Error(1)
}

func (m *MockMembershipRepository) Upsert(ctx context.Context, sellerID, raffleID int64, role entities.Role) (*entities.Membership, error) {
	args := m.Called(ctx, sellerID, raffleID, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Membership), args.Error(1)
}

func (m *MockMembershipRepository) Delete(ctx context.Context, sellerID, raffleID int64) (bool, error) {
	args := m.Called(ctx, sellerID, raffleID)
	return args.Bool(0), args.Error(1)
}

func (m *MockMembershipRepository) GetMembersByRaffle(ctx context.Context, raffleID int64) ([]*entities.MemberInfo, error) {
	args := m.Called(ctx, raffleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.MemberInfo), args.Error(1)
}

func (m *MockMembershipRepository) GetRafflesBySeller(ctx context.Context, sellerID int64) ([]*entities.RaffleWithRole, error) {
	args := m.Called(ctx, sellerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.RaffleWithRole), args.Error(1)
}

// MockNumberRepository is a mock implementation of NumberRepository
type MockNumberRepository struct {
	mock.Mock
}

func (m *MockNumberRepository) Create(ctx context.Context, number *entities.Number) error {
	args := m.Called(ctx, number)
	return args.Error(0)
}

func (m *MockNumberRepository) GetByID(ctx context.Context, id int64) (*entities.Number, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Number), args.Error(1)
}

func (m *MockNumberRepository) GetByRaffleAndNumber(ctx context.Context, raffleID int64, number string) (*entities.Number, error) {
	args := m.Called(ctx, raffleID, number)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Number), args.Error(1)
}

func (m *MockNumberRepository) Search(ctx context.Context, raffleID int64, term string, limit, offset int) ([]*entities.Number, error) {
	args := m.Called(ctx, raffleID, term, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Number), args.Error(1)
}

func (m *MockNumberRepository) GetByRaffle(ctx context.Context, raffleID int64) ([]*entities.Number, error) {
	args := m.Called(ctx, raffleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Number), args.Error(1)
}

func (m *MockNumberRepository) CountByRaffle(ctx context.Context, raffleID int64) (int64, error) {
	args := m.Called(ctx, raffleID)
	return args.Get(0).(int64), args.Error(1)
}

// MockChatMessageRepository is a mock implementation of ChatMessageRepository
type MockChatMessageRepository struct {
	mock.Mock
}

func (m *MockChatMessageRepository) Create(ctx context.Context, message *entities.ChatMessage) error {
	args := m.Called(ctx, message)
	return args.Error(0)
}

func (m *MockChatMessageRepository) GetByRaffle(ctx context.Context, raffleID int64) ([]*entities.ChatMessage, error) {
	args := m.Called(ctx, raffleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.ChatMessage), args.Error(1)
}

// MockEventPublisher is a mock implementation of EventPublisher
type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) Publish(event events.Event) error {
	args := m.Called(event)
	return args.Error(0)
}
