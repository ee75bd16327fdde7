package httpapi

import (
	"context"

	"raffler/domain/entities"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) Login(ctx context.Context, name string) (*entities.Seller, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Seller), args.Error(1)
}

func (m *mockService) FindSellerByName(ctx context.Context, name string) (*entities.Seller, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Seller), args.Error(1)
}

func (m *mockService) GetSeller(ctx context.Context, sellerID int64) (*entities.Seller, error) {
	args := m.Called(ctx, sellerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Seller), args.Error(1)
}

func (m *mockService) SearchSellers(ctx context.Context, term string) ([]*entities.Seller, error) {
	args := m.Called(ctx, term)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Seller), args.Error(1)
}

func (m *mockService) GetRole(ctx context.Context, sellerID, raffleID int64) (*entities.Role, error) {
	args := m.Called(ctx, sellerID, raffleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Role), args.Error(1)
}

func (m *mockService) AssignMember(ctx context.Context, requesterID, sellerID, raffleID int64, role entities.Role) (int64, error) {
	args := m.Called(ctx, requesterID, sellerID, raffleID, role)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockService) RemoveMember(ctx context.Context, requesterID, sellerID, raffleID int64) error {
	args := m.Called(ctx, requesterID, sellerID, raffleID)
	return args.Error(0)
}

func (m *mockService) GetMembers(ctx context.Context, raffleID int64) ([]*entities.MemberInfo, error) {
	args := m.Called(ctx, raffleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.MemberInfo), args.Error(1)
}

func (m *mockService) GetRafflesForSeller(ctx context.Context, sellerID int64) ([]*entities.RaffleWithRole, error) {
	args := m.Called(ctx, sellerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.RaffleWithRole), args.Error(1)
}

func (m *mockService) CreateRaffle(ctx context.Context, creatorID int64, amountOfNumbers int, price decimal.Decimal, members []entities.InitialMembership) (int64, error) {
	args := m.Called(ctx, creatorID, amountOfNumbers, price, members)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockService) GetRaffle(ctx context.Context, raffleID int64) (*entities.Raffle, error) {
	args := m.Called(ctx, raffleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Raffle), args.Error(1)
}

func (m *mockService) SetRaffleState(ctx context.Context, requesterID, raffleID int64, state entities.RaffleState) error {
	args := m.Called(ctx, requesterID, raffleID, state)
	return args.Error(0)
}

func (m *mockService) ListRaffles(ctx context.Context) ([]*entities.Raffle, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Raffle), args.Error(1)
}

func (m *mockService) GetRaffleSummary(ctx context.Context, raffleID int64) (*entities.RaffleSummary, error) {
	args := m.Called(ctx, raffleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.RaffleSummary), args.Error(1)
}

func (m *mockService) RegisterNumber(ctx context.Context, sellerID, raffleID int64, number, buyerName, buyerContact string) (int64, error) {
	args := m.Called(ctx, sellerID, raffleID, number, buyerName, buyerContact)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockService) SearchNumbers(ctx context.Context, raffleID int64, term string, page, pageSize int) (*entities.NumberPage, error) {
	args := m.Called(ctx, raffleID, term, page, pageSize)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.NumberPage), args.Error(1)
}

func (m *mockService) GetNumbersForRaffle(ctx context.Context, raffleID int64) ([]*entities.Number, error) {
	args := m.Called(ctx, raffleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Number), args.Error(1)
}

func (m *mockService) GetNumber(ctx context.Context, numberID int64) (*entities.Number, error) {
	args := m.Called(ctx, numberID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Number), args.Error(1)
}

func (m *mockService) PostMessage(ctx context.Context, sellerID, raffleID int64, message string) (int64, error) {
	args := m.Called(ctx, sellerID, raffleID, message)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockService) GetChatHistory(ctx context.Context, sellerID, raffleID int64) ([]*entities.ChatMessage, error) {
	args := m.Called(ctx, sellerID, raffleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.ChatMessage), args.Error(1)
}

type stubPinger struct {
	err error
}

func (p stubPinger) HealthCheck(ctx context.Context) error { return p.err }
