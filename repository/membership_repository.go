package repository

import (
	"context"
	"errors"
	"fmt"

	"raffler/database"
	"raffler/domain/entities"

	"github.com/jackc/pgx/v5"
)

// MembershipRepository implements the MembershipRepository interface over seller_raffles
type MembershipRepository struct {
	q Queryable
}

// NewMembershipRepository creates a new membership repository
func NewMembershipRepository(db *database.DB) *MembershipRepository {
	return &MembershipRepository{q: db.Pool}
}

// newMembershipRepositoryWithTx creates a membership repository bound to a transaction
func newMembershipRepositoryWithTx(tx Queryable) *MembershipRepository {
	return &MembershipRepository{q: tx}
}

// Get returns the membership of a seller on a raffle
func (r *MembershipRepository) Get(ctx context.Context, sellerID, raffleID int64) (*entities.Membership, error) {
	query := `
		SELECT id, seller_id, raffle_id, role, created_at
		FROM seller_raffles
		WHERE seller_id = $1 AND raffle_id = $2
	`

	var m entities.Membership
	err := r.q.QueryRow(ctx, query, sellerID, raffleID).Scan(
		&m.ID,
		&m.SellerID,
		&m.RaffleID,
		&m.Role,
		&m.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get membership of seller %d in raffle %d: %w", sellerID, raffleID, err)
	}

	return &m, nil
}

// Upsert creates the membership or updates its role in place, keeping its ID
func (r *MembershipRepository) Upsert(ctx context.Context, sellerID, raffleID int64, role entities.Role) (*entities.Membership, error) {
	query := `
		INSERT INTO seller_raffles (seller_id, raffle_id, role)
		VALUES ($1, $2, $3)
		ON CONFLICT (seller_id, raffle_id) DO UPDATE SET role = EXCLUDED.role
		RETURNING id, seller_id, raffle_id, role, created_at
	`

	var m entities.Membership
	err := r.q.QueryRow(ctx, query, sellerID, raffleID, role).Scan(
		&m.ID,
		&m.SellerID,
		&m.RaffleID,
		&m.Role,
		&m.CreatedAt,
	)
	if err != nil {
		return nil, mapWriteError(err, "membership")
	}

	return &m, nil
}

// Delete removes the membership, reporting whether a row existed
func (r *MembershipRepository) Delete(ctx context.Context, sellerID, raffleID int64) (bool, error) {
	query := `DELETE FROM seller_raffles WHERE seller_id = $1 AND raffle_id = $2`

	tag, err := r.q.Exec(ctx, query, sellerID, raffleID)
	if err != nil {
		return false, fmt.Errorf("failed to delete membership: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}

// GetMembersByRaffle returns the members of a raffle in the order they joined
func (r *MembershipRepository) GetMembersByRaffle(ctx context.Context, raffleID int64) ([]*entities.MemberInfo, error) {
	query := `
		SELECT s.id, s.name, s.created_at, sr.role
		FROM seller_raffles sr
		JOIN sellers s ON s.id = sr.seller_id
		WHERE sr.raffle_id = $1
		ORDER BY sr.created_at ASC, sr.id ASC
	`

	rows, err := r.q.Query(ctx, query, raffleID)
	if err != nil {
		return nil, fmt.Errorf("failed to get members of raffle %d: %w", raffleID, err)
	}
	defer rows.Close()

	members := []*entities.MemberInfo{}
	for rows.Next() {
		var seller entities.Seller
		var role entities.Role
		if err := rows.Scan(&seller.ID, &seller.Name, &seller.CreatedAt, &role); err != nil {
			return nil, fmt.Errorf("failed to scan member: %w", err)
		}
		members = append(members, &entities.MemberInfo{Seller: &seller, Role: role})
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate members: %w", err)
	}

	return members, nil
}

// GetRafflesBySeller returns the raffles a seller belongs to, newest raffle first
func (r *MembershipRepository) GetRafflesBySeller(ctx context.Context, sellerID int64) ([]*entities.RaffleWithRole, error) {
	query := `
		SELECT r.id, r.amount_of_numbers, r.price, r.state, r.created_by, r.created_at, sr.role
		FROM seller_raffles sr
		JOIN raffles r ON r.id = sr.raffle_id
		WHERE sr.seller_id = $1
		ORDER BY r.created_at DESC, r.id DESC
	`

	rows, err := r.q.Query(ctx, query, sellerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get raffles of seller %d: %w", sellerID, err)
	}
	defer rows.Close()

	raffles := []*entities.RaffleWithRole{}
	for rows.Next() {
		var raffle entities.Raffle
		var role entities.Role
		err := rows.Scan(
			&raffle.ID,
			&raffle.AmountOfNumbers,
			&raffle.Price,
			&raffle.State,
			&raffle.CreatedBy,
			&raffle.CreatedAt,
			&role,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan raffle: %w", err)
		}
		raffles = append(raffles, &entities.RaffleWithRole{Raffle: &raffle, Role: role})
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate raffles: %w", err)
	}

	return raffles, nil
}
