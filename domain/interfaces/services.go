package interfaces

import (
	"context"

	"raffler/domain/entities"

	"github.com/shopspring/decimal"
)

// SellerService defines the interface for seller directory operations
type SellerService interface {
	// Login returns the seller with the given name, creating it on first use
	Login(ctx context.Context, name string) (*entities.Seller, error)

	// FindByName returns the seller with the exact name, or nil
	FindByName(ctx context.Context, name string) (*entities.Seller, error)

	// GetSeller returns the seller with the given ID, or nil
	GetSeller(ctx context.Context, sellerID int64) (*entities.Seller, error)

	// SearchSellers returns sellers whose name contains term. A blank term yields no results.
	SearchSellers(ctx context.Context, term string) ([]*entities.Seller, error)
}

// MembershipService defines the interface for raffle membership operations
type MembershipService interface {
	// GetRole returns the role of a seller on a raffle, or nil when not a member
	GetRole(ctx context.Context, sellerID, raffleID int64) (*entities.Role, error)

	// Assign adds a seller to a raffle or changes their role
	Assign(ctx context.Context, requesterID, sellerID, raffleID int64, role entities.Role) (int64, error)

	// Remove takes a seller off a raffle
	Remove(ctx context.Context, requesterID, sellerID, raffleID int64) error

	// GetMembers returns the members of a raffle with their roles
	GetMembers(ctx context.Context, raffleID int64) ([]*entities.MemberInfo, error)

	// GetRafflesForSeller returns the raffles a seller belongs to with their roles
	GetRafflesForSeller(ctx context.Context, sellerID int64) ([]*entities.RaffleWithRole, error)
}

// RaffleService defines the interface for raffle registry operations
type RaffleService interface {
	// CreateRaffle stores a new waiting raffle together with its initial memberships
	CreateRaffle(ctx context.Context, creatorID int64, amountOfNumbers int, price decimal.Decimal, members []entities.InitialMembership) (int64, error)

	// GetRaffle returns a raffle, or nil
	GetRaffle(ctx context.Context, raffleID int64) (*entities.Raffle, error)

	// SetState transitions a raffle to the given state
	SetState(ctx context.Context, requesterID, raffleID int64, state entities.RaffleState) error

	// ListRaffles returns every raffle, newest first
	ListRaffles(ctx context.Context) ([]*entities.Raffle, error)

	// GetSummary returns sales figures for a raffle, or nil when it does not exist
	GetSummary(ctx context.Context, raffleID int64) (*entities.RaffleSummary, error)
}

// NumberService defines the interface for number ledger operations
type NumberService interface {
	// RegisterNumber records a sold number for a raffle
	RegisterNumber(ctx context.Context, sellerID, raffleID int64, number, buyerName, buyerContact string) (int64, error)

	// SearchNumbers returns one page of a raffle's numbers filtered by term
	SearchNumbers(ctx context.Context, raffleID int64, term string, page, pageSize int) (*entities.NumberPage, error)

	// GetNumbersForRaffle returns every number of a raffle, newest first
	GetNumbersForRaffle(ctx context.Context, raffleID int64) ([]*entities.Number, error)

	// GetNumber returns a number by ID, or nil
	GetNumber(ctx context.Context, numberID int64) (*entities.Number, error)
}

// ChatService defines the interface for raffle chat operations
type ChatService interface {
	// PostMessage appends a message to a raffle chat
	PostMessage(ctx context.Context, sellerID, raffleID int64, message string) (int64, error)

	// GetHistory returns a raffle chat in ascending order. Non-members get an empty history.
	GetHistory(ctx context.Context, sellerID, raffleID int64) ([]*entities.ChatMessage, error)
}
