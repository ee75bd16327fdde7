package repository

import (
	"context"
	"errors"
	"fmt"

	"raffler/database"
	"raffler/domain/entities"

	"github.com/jackc/pgx/v5"
)

const numberColumns = `id, raffle_id, seller_id, number, buyer_name, buyer_contact, created_at`

// NumberRepository implements the NumberRepository interface
type NumberRepository struct {
	q Queryable
}

// NewNumberRepository creates a new number repository
func NewNumberRepository(db *database.DB) *NumberRepository {
	return &NumberRepository{q: db.Pool}
}

// newNumberRepositoryWithTx creates a number repository bound to a transaction
func newNumberRepositoryWithTx(tx Queryable) *NumberRepository {
	return &NumberRepository{q: tx}
}

// Create inserts a number. A duplicate (raffle, number) yields domain.ErrConflict.
func (r *NumberRepository) Create(ctx context.Context, number *entities.Number) error {
	query := `
		INSERT INTO numbers (raffle_id, seller_id, number, buyer_name, buyer_contact)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`

	err := r.q.QueryRow(ctx, query,
		number.RaffleID,
		number.SellerID,
		number.Number,
		number.BuyerName,
		number.BuyerContact,
	).Scan(&number.ID, &number.CreatedAt)
	if err != nil {
		return mapWriteError(err, fmt.Sprintf("number %s in raffle %d", number.Number, number.RaffleID))
	}

	return nil
}

// GetByID retrieves a number by ID
func (r *NumberRepository) GetByID(ctx context.Context, id int64) (*entities.Number, error) {
	query := `SELECT ` + numberColumns + ` FROM numbers WHERE id = $1`

	number, err := scanNumber(r.q.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get number %d: %w", id, err)
	}
	return number, nil
}

// GetByRaffleAndNumber retrieves a registered number of a raffle
func (r *NumberRepository) GetByRaffleAndNumber(ctx context.Context, raffleID int64, value string) (*entities.Number, error) {
	query := `SELECT ` + numberColumns + ` FROM numbers WHERE raffle_id = $1 AND number = $2`

	number, err := scanNumber(r.q.QueryRow(ctx, query, raffleID, value))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get number %s of raffle %d: %w", value, raffleID, err)
	}
	return number, nil
}

// Search returns numbers of a raffle, newest first. A non-empty term filters
// case-insensitively on number, buyer name and buyer contact.
func (r *NumberRepository) Search(ctx context.Context, raffleID int64, term string, limit, offset int) ([]*entities.Number, error) {
	var rows pgx.Rows
	var err error

	if term == "" {
		query := `
			SELECT ` + numberColumns + `
			FROM numbers
			WHERE raffle_id = $1
			ORDER BY created_at DESC, id DESC
			LIMIT $2 OFFSET $3
		`
		rows, err = r.q.Query(ctx, query, raffleID, limit, offset)
	} else {
		query := `
			SELECT ` + numberColumns + `
			FROM numbers
			WHERE raffle_id = $1
			  AND (number ILIKE $2 OR buyer_name ILIKE $2 OR buyer_contact ILIKE $2)
			ORDER BY created_at DESC, id DESC
			LIMIT $3 OFFSET $4
		`
		rows, err = r.q.Query(ctx, query, raffleID, likePattern(term), limit, offset)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to search numbers of raffle %d: %w", raffleID, err)
	}

	return collectNumbers(rows)
}

// GetByRaffle returns every number of a raffle, newest first
func (r *NumberRepository) GetByRaffle(ctx context.Context, raffleID int64) ([]*entities.Number, error) {
	query := `
		SELECT ` + numberColumns + `
		FROM numbers
		WHERE raffle_id = $1
		ORDER BY created_at DESC, id DESC
	`

	rows, err := r.q.Query(ctx, query, raffleID)
	if err != nil {
		return nil, fmt.Errorf("failed to get numbers of raffle %d: %w", raffleID, err)
	}

	return collectNumbers(rows)
}

// CountByRaffle returns how many numbers a raffle has sold
func (r *NumberRepository) CountByRaffle(ctx context.Context, raffleID int64) (int64, error) {
	var count int64
	err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM numbers WHERE raffle_id = $1`, raffleID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count numbers of raffle %d: %w", raffleID, err)
	}
	return count, nil
}

func collectNumbers(rows pgx.Rows) ([]*entities.Number, error) {
	defer rows.Close()

	numbers := []*entities.Number{}
	for rows.Next() {
		number, err := scanNumber(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan number: %w", err)
		}
		numbers = append(numbers, number)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate numbers: %w", err)
	}

	return numbers, nil
}

func scanNumber(row pgx.Row) (*entities.Number, error) {
	var n entities.Number
	err := row.Scan(
		&n.ID,
		&n.RaffleID,
		&n.SellerID,
		&n.Number,
		&n.BuyerName,
		&n.BuyerContact,
		&n.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &n, nil
}
