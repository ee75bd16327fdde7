package repository

import (
	"context"
	"errors"
	"fmt"

	"raffler/database"
	"raffler/domain"
	"raffler/domain/entities"

	"github.com/jackc/pgx/v5"
)

const raffleColumns = `id, amount_of_numbers, price, state, created_by, created_at`

// RaffleRepository implements the RaffleRepository interface
type RaffleRepository struct {
	q Queryable
}

// NewRaffleRepository creates a new raffle repository
func NewRaffleRepository(db *database.DB) *RaffleRepository {
	return &RaffleRepository{q: db.Pool}
}

// newRaffleRepositoryWithTx creates a raffle repository bound to a transaction
func newRaffleRepositoryWithTx(tx Queryable) *RaffleRepository {
	return &RaffleRepository{q: tx}
}

// Create inserts a raffle. State defaults to waiting when unset.
func (r *RaffleRepository) Create(ctx context.Context, raffle *entities.Raffle) error {
	if raffle.State == "" {
		raffle.State = entities.RaffleStateWaiting
	}

	query := `
		INSERT INTO raffles (amount_of_numbers, price, state, created_by)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`

	err := r.q.QueryRow(ctx, query,
		raffle.AmountOfNumbers,
		raffle.Price,
		raffle.State,
		raffle.CreatedBy,
	).Scan(&raffle.ID, &raffle.CreatedAt)
	if err != nil {
		return mapWriteError(err, "raffle")
	}

	return nil
}

// GetByID retrieves a raffle by ID
func (r *RaffleRepository) GetByID(ctx context.Context, id int64) (*entities.Raffle, error) {
	query := `SELECT ` + raffleColumns + ` FROM raffles WHERE id = $1`

	raffle, err := scanRaffle(r.q.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get raffle %d: %w", id, err)
	}

	return raffle, nil
}

// UpdateState writes a new state. Returns domain.ErrNotFound for an unknown raffle.
func (r *RaffleRepository) UpdateState(ctx context.Context, id int64, state entities.RaffleState) error {
	query := `UPDATE raffles SET state = $2 WHERE id = $1`

	tag, err := r.q.Exec(ctx, query, id, state)
	if err != nil {
		return fmt.Errorf("failed to update raffle state: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: raffle %d", domain.ErrNotFound, id)
	}

	return nil
}

// List returns all raffles, newest first
func (r *RaffleRepository) List(ctx context.Context) ([]*entities.Raffle, error) {
	query := `SELECT ` + raffleColumns + ` FROM raffles ORDER BY created_at DESC, id DESC`

	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list raffles: %w", err)
	}
	defer rows.Close()

	raffles := []*entities.Raffle{}
	for rows.Next() {
		raffle, err := scanRaffle(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan raffle: %w", err)
		}
		raffles = append(raffles, raffle)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate raffles: %w", err)
	}

	return raffles, nil
}

// scanRaffle reads raffleColumns from a row
func scanRaffle(row pgx.Row) (*entities.Raffle, error) {
	var raffle entities.Raffle
	err := row.Scan(
		&raffle.ID,
		&raffle.AmountOfNumbers,
		&raffle.Price,
		&raffle.State,
		&raffle.CreatedBy,
		&raffle.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &raffle, nil
}
