package entities

import (
	"strings"
	"time"
)

// Number is a sold raffle number with the buyer's identity. Numbers are immutable
// once registered.
type Number struct {
	ID           int64     `db:"id"`
	RaffleID     int64     `db:"raffle_id"`
	SellerID     int64     `db:"seller_id"`
	Number       string    `db:"number"`
	BuyerName    string    `db:"buyer_name"`
	BuyerContact string    `db:"buyer_contact"`
	CreatedAt    time.Time `db:"created_at"`
}

// Matches reports whether the term appears, case-insensitively, in the number,
// buyer name or buyer contact. A blank term matches everything.
func (n *Number) Matches(term string) bool {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return true
	}
	return strings.Contains(strings.ToLower(n.Number), term) ||
		strings.Contains(strings.ToLower(n.BuyerName), term) ||
		strings.Contains(strings.ToLower(n.BuyerContact), term)
}

const (
	// DefaultNumberPageSize is used when a search asks for a non-positive page size
	DefaultNumberPageSize = 20
	// MaxNumberPageSize caps the page size of number searches
	MaxNumberPageSize = 100
)

// NumberPage is one page of a number search
type NumberPage struct {
	Results  []*Number
	Page     int
	PageSize int
	IsDone   bool
	NextPage *int // nil when IsDone
}
