package repository

import (
	"context"
	"errors"
	"fmt"

	"raffler/database"
	"raffler/domain/entities"

	"github.com/jackc/pgx/v5"
)

// SellerRepository implements the SellerRepository interface
type SellerRepository struct {
	q Queryable
}

// NewSellerRepository creates a new seller repository
func NewSellerRepository(db *database.DB) *SellerRepository {
	return &SellerRepository{q: db.Pool}
}

// newSellerRepositoryWithTx creates a seller repository bound to a transaction
func newSellerRepositoryWithTx(tx Queryable) *SellerRepository {
	return &SellerRepository{q: tx}
}

// GetByID retrieves a seller by ID
func (r *SellerRepository) GetByID(ctx context.Context, id int64) (*entities.Seller, error) {
	query := `SELECT id, name, created_at FROM sellers WHERE id = $1`

	var seller entities.Seller
	err := r.q.QueryRow(ctx, query, id).Scan(&seller.ID, &seller.Name, &seller.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get seller %d: %w", id, err)
	}

	return &seller, nil
}

// GetByName retrieves a seller by exact name
func (r *SellerRepository) GetByName(ctx context.Context, name string) (*entities.Seller, error) {
	query := `SELECT id, name, created_at FROM sellers WHERE name = $1`

	var seller entities.Seller
	err := r.q.QueryRow(ctx, query, name).Scan(&seller.ID, &seller.Name, &seller.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get seller by name: %w", err)
	}

	return &seller, nil
}

// GetOrCreate inserts the seller unless the name is taken, then returns the stored row
func (r *SellerRepository) GetOrCreate(ctx context.Context, name string) (*entities.Seller, error) {
	insertQuery := `
		INSERT INTO sellers (name)
		VALUES ($1)
		ON CONFLICT (name) DO NOTHING
	`
	if _, err := r.q.Exec(ctx, insertQuery, name); err != nil {
		return nil, fmt.Errorf("failed to insert seller: %w", err)
	}

	seller, err := r.GetByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if seller == nil {
		return nil, fmt.Errorf("seller %q missing after insert", name)
	}
	return seller, nil
}

// Search returns sellers whose name contains term, case-insensitively, ordered by name
func (r *SellerRepository) Search(ctx context.Context, term string, limit int) ([]*entities.Seller, error) {
	query := `
		SELECT id, name, created_at
		FROM sellers
		WHERE name ILIKE $1
		ORDER BY name ASC, id ASC
		LIMIT $2
	`

	rows, err := r.q.Query(ctx, query, likePattern(term), limit)
	if err != nil {
		return nil, fmt.Errorf("failed to search sellers: %w", err)
	}
	defer rows.Close()

	sellers := []*entities.Seller{}
	for rows.Next() {
		var seller entities.Seller
		if err := rows.Scan(&seller.ID, &seller.Name, &seller.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan seller: %w", err)
		}
		sellers = append(sellers, &seller)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate sellers: %w", err)
	}

	return sellers, nil
}
