package interfaces

import (
	"context"

	"raffler/domain/entities"
	"raffler/domain/events"
)

// SellerRepository defines the interface for seller data access
type SellerRepository interface {
	// GetByID retrieves a seller by ID, returning nil if absent
	GetByID(ctx context.Context, id int64) (*entities.Seller, error)

	// GetByName retrieves a seller by exact name, returning nil if absent
	GetByName(ctx context.Context, name string) (*entities.Seller, error)

	// GetOrCreate inserts a seller with the given name unless one exists and
	// returns the stored row. Safe under concurrent calls with the same name.
	GetOrCreate(ctx context.Context, name string) (*entities.Seller, error)

	// Search returns sellers whose name contains the term, case-insensitively
	Search(ctx context.Context, term string, limit int) ([]*entities.Seller, error)
}

// RaffleRepository defines the interface for raffle data access
type RaffleRepository interface {
	// Create inserts a raffle and fills in its ID, state and creation time
	Create(ctx context.Context, raffle *entities.Raffle) error

	// GetByID retrieves a raffle by ID, returning nil if absent
	GetByID(ctx context.Context, id int64) (*entities.Raffle, error)

	// UpdateState writes a new state for the raffle
	UpdateState(ctx context.Context, id int64, state entities.RaffleState) error

	// List returns all raffles, newest first
	List(ctx context.Context) ([]*entities.Raffle, error)
}

// MembershipRepository defines the interface for raffle membership data access
type MembershipRepository interface {
	// Get returns the membership of a seller on a raffle, or nil
	Get(ctx context.Context, sellerID, raffleID int64) (*entities.Membership, error)

	// Upsert creates the membership or updates its role in place
	Upsert(ctx context.Context, sellerID, raffleID int64, role entities.Role) (*entities.Membership, error)

	// Delete removes the membership, reporting whether a row existed
	Delete(ctx context.Context, sellerID, raffleID int64) (bool, error)

	// GetMembersByRaffle returns the members of a raffle in join order
	GetMembersByRaffle(ctx context.Context, raffleID int64) ([]*entities.MemberInfo, error)

	// GetRafflesBySeller returns the raffles a seller belongs to, newest first
	GetRafflesBySeller(ctx context.Context, sellerID int64) ([]*entities.RaffleWithRole, error)
}

// NumberRepository defines the interface for sold number data access
type NumberRepository interface {
	// Create inserts a number. Returns domain.ErrConflict when the number is
	// already registered for the raffle.
	Create(ctx context.Context, number *entities.Number) error

	// GetByID retrieves a number by ID, returning nil if absent
	GetByID(ctx context.Context, id int64) (*entities.Number, error)

	// GetByRaffleAndNumber retrieves a registered number, returning nil if absent
	GetByRaffleAndNumber(ctx context.Context, raffleID int64, number string) (*entities.Number, error)

	// Search returns numbers of a raffle matching term, newest first
	Search(ctx context.Context, raffleID int64, term string, limit, offset int) ([]*entities.Number, error)

	// GetByRaffle returns every number of a raffle, newest first
	GetByRaffle(ctx context.Context, raffleID int64) ([]*entities.Number, error)

	// CountByRaffle returns how many numbers a raffle has sold
	CountByRaffle(ctx context.Context, raffleID int64) (int64, error)
}

// ChatMessageRepository defines the interface for raffle chat data access
type ChatMessageRepository interface {
	// Create appends a message and fills in its ID and creation time
	Create(ctx context.Context, message *entities.ChatMessage) error

	// GetByRaffle returns the messages of a raffle in ascending order with author names
	GetByRaffle(ctx context.Context, raffleID int64) ([]*entities.ChatMessage, error)
}

// EventPublisher defines the interface for publishing events
type EventPublisher interface {
	Publish(event events.Event) error
}

// TransactionalEventPublisher buffers events until the surrounding
// transaction commits
type TransactionalEventPublisher interface {
	EventPublisher

	// Flush publishes all buffered events
	Flush(ctx context.Context) error

	// Discard drops all buffered events
	Discard()
}
