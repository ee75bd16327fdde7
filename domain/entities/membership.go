package entities

import "time"

// Membership links a seller to a raffle with a role
type Membership struct {
	ID        int64     `db:"id"`
	SellerID  int64     `db:"seller_id"`
	RaffleID  int64     `db:"raffle_id"`
	Role      Role      `db:"role"`
	CreatedAt time.Time `db:"created_at"`
}

// InitialMembership is a membership requested at raffle creation
type InitialMembership struct {
	SellerID int64
	Role     Role
}

// MemberInfo is a raffle member with their role
type MemberInfo struct {
	Seller *Seller
	Role   Role
}

// RaffleWithRole is a raffle together with the role a seller holds on it
type RaffleWithRole struct {
	Raffle *Raffle
	Role   Role
}
