package entities

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// RaffleState represents the lifecycle state of a raffle
type RaffleState string

const (
	RaffleStateWaiting  RaffleState = "waiting"
	RaffleStateStarted  RaffleState = "started"
	RaffleStateComplete RaffleState = "complete"
)

// ParseRaffleState converts a string into a RaffleState, rejecting unknown values
func ParseRaffleState(s string) (RaffleState, error) {
	state := RaffleState(strings.ToLower(strings.TrimSpace(s)))
	if !state.IsValid() {
		return "", fmt.Errorf("unknown raffle state %q", s)
	}
	return state, nil
}

// IsValid reports whether the state is one of the known raffle states
func (s RaffleState) IsValid() bool {
	switch s {
	case RaffleStateWaiting, RaffleStateStarted, RaffleStateComplete:
		return true
	}
	return false
}

// Raffle is a ticket sale with a fixed per-number price
type Raffle struct {
	ID              int64           `db:"id"`
	AmountOfNumbers int             `db:"amount_of_numbers"` // Informational, registrations are not capped by it
	Price           decimal.Decimal `db:"price"`
	State           RaffleState     `db:"state"`
	CreatedBy       int64           `db:"created_by"`
	CreatedAt       time.Time       `db:"created_at"`
}

// IsWaiting returns true if the raffle has not started yet
func (r *Raffle) IsWaiting() bool {
	return r.State == RaffleStateWaiting
}

// IsComplete returns true if the raffle has finished
func (r *Raffle) IsComplete() bool {
	return r.State == RaffleStateComplete
}

// Revenue returns the amount collected for the given number of sold numbers
func (r *Raffle) Revenue(numbersSold int64) decimal.Decimal {
	return r.Price.Mul(decimal.NewFromInt(numbersSold))
}

// ValidateRaffleTerms checks the amount and price of a new raffle
func ValidateRaffleTerms(amountOfNumbers int, price decimal.Decimal) error {
	if amountOfNumbers <= 0 {
		return fmt.Errorf("amount of numbers must be positive, got %d", amountOfNumbers)
	}
	if !price.IsPositive() {
		return fmt.Errorf("price must be positive, got %s", price.String())
	}
	return nil
}

// RaffleSummary aggregates sales figures for a raffle
type RaffleSummary struct {
	Raffle      *Raffle
	NumbersSold int64
	Revenue     decimal.Decimal
}
