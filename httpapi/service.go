package httpapi

import (
	"context"

	"raffler/domain/entities"

	"github.com/shopspring/decimal"
)

// RaffleService is the set of operations the HTTP API exposes.
// application.Service implements it.
type RaffleService interface {
	Login(ctx context.Context, name string) (*entities.Seller, error)
	FindSellerByName(ctx context.Context, name string) (*entities.Seller, error)
	GetSeller(ctx context.Context, sellerID int64) (*entities.Seller, error)
	SearchSellers(ctx context.Context, term string) ([]*entities.Seller, error)

	GetRole(ctx context.Context, sellerID, raffleID int64) (*entities.Role, error)
	AssignMember(ctx context.Context, requesterID, sellerID, raffleID int64, role entities.Role) (int64, error)
	RemoveMember(ctx context.Context, requesterID, sellerID, raffleID int64) error
	GetMembers(ctx context.Context, raffleID int64) ([]*entities.MemberInfo, error)
	GetRafflesForSeller(ctx context.Context, sellerID int64) ([]*entities.RaffleWithRole, error)

	CreateRaffle(ctx context.Context, creatorID int64, amountOfNumbers int, price decimal.Decimal, members []entities.InitialMembership) (int64, error)
	GetRaffle(ctx context.Context, raffleID int64) (*entities.Raffle, error)
	SetRaffleState(ctx context.Context, requesterID, raffleID int64, state entities.RaffleState) error
	ListRaffles(ctx context.Context) ([]*entities.Raffle, error)
	GetRaffleSummary(ctx context.Context, raffleID int64) (*entities.RaffleSummary, error)

	RegisterNumber(ctx context.Context, sellerID, raffleID int64, number, buyerName, buyerContact string) (int64, error)
	SearchNumbers(ctx context.Context, raffleID int64, term string, page, pageSize int) (*entities.NumberPage, error)
	GetNumbersForRaffle(ctx context.Context, raffleID int64) ([]*entities.Number, error)
	GetNumber(ctx context.Context, numberID int64) (*entities.Number, error)

	PostMessage(ctx context.Context, sellerID, raffleID int64, message string) (int64, error)
	GetChatHistory(ctx context.Context, sellerID, raffleID int64) ([]*entities.ChatMessage, error)
}

// Pinger reports whether a backing store is reachable
type Pinger interface {
	HealthCheck(ctx context.Context) error
}
