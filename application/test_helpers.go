package application

import (
	"context"

	"raffler/domain/events"
	"raffler/domain/interfaces"
	"raffler/domain/testhelpers"
)

// MockUnitOfWork is an in-memory UnitOfWork backed by testify mocks. Events
// published during the unit of work are moved to Published on Commit.
type MockUnitOfWork struct {
	SellerRepo     *testhelpers.MockSellerRepository
	RaffleRepo     *testhelpers.MockRaffleRepository
	MembershipRepo *testhelpers.MockMembershipRepository
	NumberRepo     *testhelpers.MockNumberRepository
	ChatRepo       *testhelpers.MockChatMessageRepository

	BeginErr  error
	CommitErr error

	Began      bool
	Committed  bool
	RolledBack bool

	pending   []events.Event
	Published []events.Event
}

// NewMockUnitOfWork creates a MockUnitOfWork with fresh repository mocks
func NewMockUnitOfWork() *MockUnitOfWork {
	return &MockUnitOfWork{
		SellerRepo:     new(testhelpers.MockSellerRepository),
		RaffleRepo:     new(testhelpers.MockRaffleRepository),
		MembershipRepo: new(testhelpers.MockMembershipRepository),
		NumberRepo:     new(testhelpers.MockNumberRepository),
		ChatRepo:       new(testhelpers.MockChatMessageRepository),
	}
}

func (u *MockUnitOfWork) Begin(ctx context.Context) error {
	if u.BeginErr != nil {
		return u.BeginErr
	}
	u.Began = true
	return nil
}

func (u *MockUnitOfWork) Commit() error {
	if u.CommitErr != nil {
		return u.CommitErr
	}
	u.Committed = true
	u.Published = append(u.Published, u.pending...)
	u.pending = nil
	return nil
}

func (u *MockUnitOfWork) Rollback() error {
	if !u.Committed {
		u.RolledBack = true
	}
	u.pending = nil
	return nil
}

func (u *MockUnitOfWork) SellerRepository() interfaces.SellerRepository { return u.SellerRepo }

func (u *MockUnitOfWork) RaffleRepository() interfaces.RaffleRepository { return u.RaffleRepo }

func (u *MockUnitOfWork) MembershipRepository() interfaces.MembershipRepository {
	return u.MembershipRepo
}

func (u *MockUnitOfWork) NumberRepository() interfaces.NumberRepository { return u.NumberRepo }

func (u *MockUnitOfWork) ChatMessageRepository() interfaces.ChatMessageRepository {
	return u.ChatRepo
}

func (u *MockUnitOfWork) EventBus() interfaces.EventPublisher { return u }

// Publish buffers the event until Commit
func (u *MockUnitOfWork) Publish(event events.Event) error {
	u.pending = append(u.pending, event)
	return nil
}

// MockUnitOfWorkFactory hands out a single MockUnitOfWork
type MockUnitOfWorkFactory struct {
	UOW *MockUnitOfWork
}

func (f *MockUnitOfWorkFactory) Create() UnitOfWork {
	return f.UOW
}
