package services

import (
	"context"
	"fmt"

	"raffler/domain"
	"raffler/domain/entities"
	"raffler/domain/events"
	"raffler/domain/interfaces"

	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
)

// raffleService implements the RaffleService interface
type raffleService struct {
	raffleRepo     interfaces.RaffleRepository
	membershipRepo interfaces.MembershipRepository
	numberRepo     interfaces.NumberRepository
	eventPublisher interfaces.EventPublisher
}

// NewRaffleService creates a new raffle service
func NewRaffleService(
	raffleRepo interfaces.RaffleRepository,
	membershipRepo interfaces.MembershipRepository,
	numberRepo interfaces.NumberRepository,
	eventPublisher interfaces.EventPublisher,
) interfaces.RaffleService {
	return &raffleService{
		raffleRepo:     raffleRepo,
		membershipRepo: membershipRepo,
		numberRepo:     numberRepo,
		eventPublisher: eventPublisher,
	}
}

// CreateRaffle stores a new waiting raffle together with its initial
// memberships. The caller's unit of work makes the inserts all-or-nothing.
// The creator is recorded but is not required to appear among the members.
func (s *raffleService) CreateRaffle(ctx context.Context, creatorID int64, amountOfNumbers int, price decimal.Decimal, members []entities.InitialMembership) (int64, error) {
	if err := entities.ValidateRaffleTerms(amountOfNumbers, price); err != nil {
		return 0, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	seen := make(map[int64]struct{}, len(members))
	for _, m := range members {
		if !m.Role.IsValid() {
			return 0, fmt.Errorf("%w: unknown role %q for seller %d", domain.ErrInvalidInput, m.Role, m.SellerID)
		}
		if _, dup := seen[m.SellerID]; dup {
			return 0, fmt.Errorf("%w: seller %d listed more than once", domain.ErrInvalidInput, m.SellerID)
		}
		seen[m.SellerID] = struct{}{}
	}

	raffle := &entities.Raffle{
		AmountOfNumbers: amountOfNumbers,
		Price:           price,
		State:           entities.RaffleStateWaiting,
		CreatedBy:       creatorID,
	}
	if err := s.raffleRepo.Create(ctx, raffle); err != nil {
		return 0, fmt.Errorf("failed to create raffle: %w", err)
	}

	for _, m := range members {
		if _, err := s.membershipRepo.Upsert(ctx, m.SellerID, raffle.ID, m.Role); err != nil {
			return 0, fmt.Errorf("failed to add seller %d to raffle: %w", m.SellerID, err)
		}
	}

	if err := s.eventPublisher.Publish(events.RaffleCreatedEvent{
		RaffleID:        raffle.ID,
		CreatedBy:       creatorID,
		AmountOfNumbers: amountOfNumbers,
		Price:           price.String(),
		MemberCount:     len(members),
	}); err != nil {
		return 0, fmt.Errorf("failed to publish raffle created event: %w", err)
	}

	log.WithFields(log.Fields{
		"raffleID":        raffle.ID,
		"creatorID":       creatorID,
		"amountOfNumbers": amountOfNumbers,
		"price":           price.String(),
		"members":         len(members),
	}).Info("Raffle created")

	return raffle.ID, nil
}

// GetRaffle returns a raffle, or nil
func (s *raffleService) GetRaffle(ctx context.Context, raffleID int64) (*entities.Raffle, error) {
	raffle, err := s.raffleRepo.GetByID(ctx, raffleID)
	if err != nil {
		return nil, fmt.Errorf("failed to get raffle: %w", err)
	}
	return raffle, nil
}

// SetState transitions a raffle to the given state. There is no transition
// graph; owners and moderators may write any known state.
func (s *raffleService) SetState(ctx context.Context, requesterID, raffleID int64, state entities.RaffleState) error {
	if !state.IsValid() {
		return fmt.Errorf("%w: unknown raffle state %q", domain.ErrInvalidInput, state)
	}

	raffle, err := s.raffleRepo.GetByID(ctx, raffleID)
	if err != nil {
		return fmt.Errorf("failed to get raffle: %w", err)
	}
	if raffle == nil {
		return fmt.Errorf("%w: raffle %d", domain.ErrNotFound, raffleID)
	}

	requester, err := s.membershipRepo.Get(ctx, requesterID, raffleID)
	if err != nil {
		return fmt.Errorf("failed to get requester membership: %w", err)
	}
	if requester == nil || !requester.Role.CanChangeRaffleState() {
		return fmt.Errorf("%w: seller %d cannot change the state of raffle %d", domain.ErrForbidden, requesterID, raffleID)
	}

	if err := s.raffleRepo.UpdateState(ctx, raffleID, state); err != nil {
		return fmt.Errorf("failed to update raffle state: %w", err)
	}

	if err := s.eventPublisher.Publish(events.RaffleStateChangedEvent{
		RaffleID:    raffleID,
		RequesterID: requesterID,
		OldState:    string(raffle.State),
		NewState:    string(state),
	}); err != nil {
		return fmt.Errorf("failed to publish raffle state changed event: %w", err)
	}

	log.WithFields(log.Fields{
		"raffleID":    raffleID,
		"requesterID": requesterID,
		"oldState":    raffle.State,
		"newState":    state,
	}).Info("Raffle state changed")

	return nil
}

// ListRaffles returns every raffle, newest first
func (s *raffleService) ListRaffles(ctx context.Context) ([]*entities.Raffle, error) {
	raffles, err := s.raffleRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list raffles: %w", err)
	}
	return raffles, nil
}

// GetSummary returns sales figures for a raffle, or nil when it does not exist
func (s *raffleService) GetSummary(ctx context.Context, raffleID int64) (*entities.RaffleSummary, error) {
	raffle, err := s.raffleRepo.GetByID(ctx, raffleID)
	if err != nil {
		return nil, fmt.Errorf("failed to get raffle: %w", err)
	}
	if raffle == nil {
		return nil, nil
	}

	sold, err := s.numberRepo.CountByRaffle(ctx, raffleID)
	if err != nil {
		return nil, fmt.Errorf("failed to count raffle numbers: %w", err)
	}

	return &entities.RaffleSummary{
		Raffle:      raffle,
		NumbersSold: sold,
		Revenue:     raffle.Revenue(sold),
	}, nil
}
