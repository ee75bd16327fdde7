package repository

import (
	"context"
	"fmt"

	"raffler/database"
	"raffler/domain/entities"
)

// ChatMessageRepository implements the ChatMessageRepository interface
type ChatMessageRepository struct {
	q Queryable
}

// NewChatMessageRepository creates a new chat message repository
func NewChatMessageRepository(db *database.DB) *ChatMessageRepository {
	return &ChatMessageRepository{q: db.Pool}
}

// newChatMessageRepositoryWithTx creates a chat message repository bound to a transaction
func newChatMessageRepositoryWithTx(tx Queryable) *ChatMessageRepository {
	return &ChatMessageRepository{q: tx}
}

// Create appends a message to a raffle chat
func (r *ChatMessageRepository) Create(ctx context.Context, message *entities.ChatMessage) error {
	query := `
		INSERT INTO chat_messages (raffle_id, seller_id, message)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`

	err := r.q.QueryRow(ctx, query, message.RaffleID, message.SellerID, message.Message).
		Scan(&message.ID, &message.CreatedAt)
	if err != nil {
		return mapWriteError(err, "chat message")
	}

	return nil
}

// GetByRaffle returns a raffle's messages oldest first. Authors that no longer
// resolve to a seller are shown as entities.UnknownSellerName.
func (r *ChatMessageRepository) GetByRaffle(ctx context.Context, raffleID int64) ([]*entities.ChatMessage, error) {
	query := `
		SELECT m.id, m.raffle_id, m.seller_id, COALESCE(s.name, $2), m.message, m.created_at
		FROM chat_messages m
		LEFT JOIN sellers s ON s.id = m.seller_id
		WHERE m.raffle_id = $1
		ORDER BY m.created_at ASC, m.id ASC
	`

	rows, err := r.q.Query(ctx, query, raffleID, entities.UnknownSellerName)
	if err != nil {
		return nil, fmt.Errorf("failed to get chat messages of raffle %d: %w", raffleID, err)
	}
	defer rows.Close()

	messages := []*entities.ChatMessage{}
	for rows.Next() {
		var m entities.ChatMessage
		err := rows.Scan(&m.ID, &m.RaffleID, &m.SellerID, &m.SellerName, &m.Message, &m.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan chat message: %w", err)
		}
		messages = append(messages, &m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate chat messages: %w", err)
	}

	return messages, nil
}
