package application

import (
	"context"

	"raffler/domain/interfaces"
)

// UnitOfWork defines the interface for transactional repository operations
type UnitOfWork interface {
	// Begin starts a new transaction
	Begin(ctx context.Context) error

	// Commit commits the transaction and releases buffered events
	Commit() error

	// Rollback rolls back the transaction and drops buffered events
	Rollback() error

	// Repository getters
	SellerRepository() interfaces.SellerRepository
	RaffleRepository() interfaces.RaffleRepository
	MembershipRepository() interfaces.MembershipRepository
	NumberRepository() interfaces.NumberRepository
	ChatMessageRepository() interfaces.ChatMessageRepository
	EventBus() interfaces.EventPublisher
}

// UnitOfWorkFactory defines the interface for creating UnitOfWork instances
type UnitOfWorkFactory interface {
	// Create creates a new UnitOfWork instance
	Create() UnitOfWork
}
