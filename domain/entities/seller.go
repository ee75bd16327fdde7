package entities

import (
	"strings"
	"time"
)

// Seller is a person who sells numbers, identified by a unique name
type Seller struct {
	ID        int64     `db:"id"`
	Name      string    `db:"name"`
	CreatedAt time.Time `db:"created_at"`
}

// NormalizeSellerName trims surrounding whitespace from a seller name
func NormalizeSellerName(name string) string {
	return strings.TrimSpace(name)
}
