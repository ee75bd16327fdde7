package testutil

import (
	"context"
	"testing"

	"raffler/database"
	"raffler/domain/entities"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

// CreateSeller inserts a seller with the given name
func CreateSeller(t *testing.T, db *database.DB, name string) *entities.Seller {
	t.Helper()

	seller := &entities.Seller{Name: name}
	err := db.QueryRow(context.Background(),
		`INSERT INTO sellers (name) VALUES ($1) RETURNING id, created_at`, name,
	).Scan(&seller.ID, &seller.CreatedAt)
	require.NoError(t, err)
	return seller
}

// CreateRaffle inserts a waiting raffle created by creatorID
func CreateRaffle(t *testing.T, db *database.DB, creatorID int64, amountOfNumbers int, price string) *entities.Raffle {
	t.Helper()

	raffle := &entities.Raffle{
		AmountOfNumbers: amountOfNumbers,
		Price:           decimal.RequireFromString(price),
		State:           entities.RaffleStateWaiting,
		CreatedBy:       creatorID,
	}
	err := db.QueryRow(context.Background(),
		`INSERT INTO raffles (amount_of_numbers, price, state, created_by)
		 VALUES ($1, $2, $3, $4) RETURNING id, created_at`,
		raffle.AmountOfNumbers, raffle.Price, raffle.State, raffle.CreatedBy,
	).Scan(&raffle.ID, &raffle.CreatedAt)
	require.NoError(t, err)
	return raffle
}

// AddMember gives a seller a role on a raffle
func AddMember(t *testing.T, db *database.DB, sellerID, raffleID int64, role entities.Role) *entities.Membership {
	t.Helper()

	m := &entities.Membership{SellerID: sellerID, RaffleID: raffleID, Role: role}
	err := db.QueryRow(context.Background(),
		`INSERT INTO seller_raffles (seller_id, raffle_id, role) VALUES ($1, $2, $3) RETURNING id, created_at`,
		sellerID, raffleID, role,
	).Scan(&m.ID, &m.CreatedAt)
	require.NoError(t, err)
	return m
}

// NewNumber builds an unsaved number for a raffle
func NewNumber(raffleID, sellerID int64, number, buyerName string) *entities.Number {
	return &entities.Number{
		RaffleID:     raffleID,
		SellerID:     sellerID,
		Number:       number,
		BuyerName:    buyerName,
		BuyerContact: buyerName + "@example.com",
	}
}
