package services

import (
	"context"
	"fmt"
	"strings"

	"raffler/domain"
	"raffler/domain/entities"
	"raffler/domain/events"
	"raffler/domain/interfaces"
)

// chatService implements the ChatService interface
type chatService struct {
	chatRepo       interfaces.ChatMessageRepository
	membershipRepo interfaces.MembershipRepository
	eventPublisher interfaces.EventPublisher
}

// NewChatService creates a new chat service
func NewChatService(
	chatRepo interfaces.ChatMessageRepository,
	membershipRepo interfaces.MembershipRepository,
	eventPublisher interfaces.EventPublisher,
) interfaces.ChatService {
	return &chatService{
		chatRepo:       chatRepo,
		membershipRepo: membershipRepo,
		eventPublisher: eventPublisher,
	}
}

// PostMessage appends a trimmed message to a raffle chat. Only members may post.
func (s *chatService) PostMessage(ctx context.Context, sellerID, raffleID int64, message string) (int64, error) {
	membership, err := s.membershipRepo.Get(ctx, sellerID, raffleID)
	if err != nil {
		return 0, fmt.Errorf("failed to get membership: %w", err)
	}
	if membership == nil || !membership.Role.CanChat() {
		return 0, fmt.Errorf("%w: seller %d is not a member of raffle %d", domain.ErrForbidden, sellerID, raffleID)
	}

	message = strings.TrimSpace(message)
	if message == "" {
		return 0, fmt.Errorf("%w: message must not be empty", domain.ErrInvalidInput)
	}

	chatMessage := &entities.ChatMessage{
		RaffleID: raffleID,
		SellerID: sellerID,
		Message:  message,
	}
	if err := s.chatRepo.Create(ctx, chatMessage); err != nil {
		return 0, fmt.Errorf("failed to post message: %w", err)
	}

	if err := s.eventPublisher.Publish(events.ChatMessagePostedEvent{
		MessageID: chatMessage.ID,
		RaffleID:  raffleID,
		SellerID:  sellerID,
		Message:   message,
	}); err != nil {
		return 0, fmt.Errorf("failed to publish chat message event: %w", err)
	}

	return chatMessage.ID, nil
}

// GetHistory returns a raffle chat in ascending order. Reading is lenient:
// a non-member gets an empty history rather than an error.
func (s *chatService) GetHistory(ctx context.Context, sellerID, raffleID int64) ([]*entities.ChatMessage, error) {
	membership, err := s.membershipRepo.Get(ctx, sellerID, raffleID)
	if err != nil {
		return nil, fmt.Errorf("failed to get membership: %w", err)
	}
	if membership == nil || !membership.Role.CanChat() {
		return []*entities.ChatMessage{}, nil
	}

	messages, err := s.chatRepo.GetByRaffle(ctx, raffleID)
	if err != nil {
		return nil, fmt.Errorf("failed to get chat history: %w", err)
	}
	return messages, nil
}
