package entities

import "time"

// UnknownSellerName is shown for messages whose author no longer resolves
const UnknownSellerName = "Desconocido"

// ChatMessage is a single message in a raffle's chat
type ChatMessage struct {
	ID         int64     `db:"id"`
	RaffleID   int64     `db:"raffle_id"`
	SellerID   int64     `db:"seller_id"`
	SellerName string    `db:"-"` // Populated from sellers on read
	Message    string    `db:"message"`
	CreatedAt  time.Time `db:"created_at"`
}
