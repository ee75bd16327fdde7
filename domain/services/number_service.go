package services

import (
	"context"
	"fmt"
	"math"
	"strings"

	"raffler/domain"
	"raffler/domain/entities"
	"raffler/domain/events"
	"raffler/domain/interfaces"

	log "github.com/sirupsen/logrus"
)

// numberService implements the NumberService interface
type numberService struct {
	numberRepo     interfaces.NumberRepository
	membershipRepo interfaces.MembershipRepository
	eventPublisher interfaces.EventPublisher
	maxPageSize    int
}

// NewNumberService creates a new number service. A non-positive maxPageSize
// falls back to entities.MaxNumberPageSize.
func NewNumberService(
	numberRepo interfaces.NumberRepository,
	membershipRepo interfaces.MembershipRepository,
	eventPublisher interfaces.EventPublisher,
	maxPageSize int,
) interfaces.NumberService {
	if maxPageSize <= 0 {
		maxPageSize = entities.MaxNumberPageSize
	}
	return &numberService{
		numberRepo:     numberRepo,
		membershipRepo: membershipRepo,
		eventPublisher: eventPublisher,
		maxPageSize:    maxPageSize,
	}
}

// RegisterNumber records a sold number for a raffle. Any member may register;
// a number can be sold only once per raffle.
func (s *numberService) RegisterNumber(ctx context.Context, sellerID, raffleID int64, number, buyerName, buyerContact string) (int64, error) {
	buyerName = strings.TrimSpace(buyerName)
	buyerContact = strings.TrimSpace(buyerContact)

	// The number is stored as given; " 007" and "007" are different numbers
	if strings.TrimSpace(number) == "" {
		return 0, fmt.Errorf("%w: number must not be empty", domain.ErrInvalidInput)
	}
	if buyerName == "" {
		return 0, fmt.Errorf("%w: buyer name must not be empty", domain.ErrInvalidInput)
	}

	membership, err := s.membershipRepo.Get(ctx, sellerID, raffleID)
	if err != nil {
		return 0, fmt.Errorf("failed to get membership: %w", err)
	}
	if membership == nil || !membership.Role.CanRegisterNumbers() {
		return 0, fmt.Errorf("%w: seller %d is not a member of raffle %d", domain.ErrForbidden, sellerID, raffleID)
	}

	existing, err := s.numberRepo.GetByRaffleAndNumber(ctx, raffleID, number)
	if err != nil {
		return 0, fmt.Errorf("failed to check number availability: %w", err)
	}
	if existing != nil {
		return 0, fmt.Errorf("%w: number %s is already registered in raffle %d", domain.ErrConflict, number, raffleID)
	}

	entry := &entities.Number{
		RaffleID:     raffleID,
		SellerID:     sellerID,
		Number:       number,
		BuyerName:    buyerName,
		BuyerContact: buyerContact,
	}
	// The unique index still decides concurrent registrations of the same number
	if err := s.numberRepo.Create(ctx, entry); err != nil {
		return 0, fmt.Errorf("failed to register number %s: %w", number, err)
	}

	if err := s.eventPublisher.Publish(events.NumberRegisteredEvent{
		NumberID:  entry.ID,
		RaffleID:  raffleID,
		SellerID:  sellerID,
		Number:    number,
		BuyerName: buyerName,
	}); err != nil {
		return 0, fmt.Errorf("failed to publish number registered event: %w", err)
	}

	log.WithFields(log.Fields{
		"raffleID": raffleID,
		"sellerID": sellerID,
		"number":   number,
		"numberID": entry.ID,
	}).Info("Number registered")

	return entry.ID, nil
}

// SearchNumbers returns one page of a raffle's numbers, newest first, filtered
// by a case-insensitive term over number, buyer name and buyer contact.
func (s *numberService) SearchNumbers(ctx context.Context, raffleID int64, term string, page, pageSize int) (*entities.NumberPage, error) {
	if page < 0 {
		return nil, fmt.Errorf("%w: page must not be negative", domain.ErrInvalidInput)
	}
	if pageSize <= 0 {
		pageSize = entities.DefaultNumberPageSize
	}
	if pageSize > s.maxPageSize {
		pageSize = s.maxPageSize
	}
	if page > (math.MaxInt-1)/pageSize {
		return nil, fmt.Errorf("%w: page %d is out of range", domain.ErrInvalidInput, page)
	}

	// Fetch one extra row to learn whether another page exists
	rows, err := s.numberRepo.Search(ctx, raffleID, strings.TrimSpace(term), pageSize+1, page*pageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to search numbers: %w", err)
	}

	result := &entities.NumberPage{
		Page:     page,
		PageSize: pageSize,
		IsDone:   len(rows) <= pageSize,
	}
	if !result.IsDone {
		rows = rows[:pageSize]
		next := page + 1
		result.NextPage = &next
	}
	if rows == nil {
		rows = []*entities.Number{}
	}
	result.Results = rows

	return result, nil
}

// GetNumbersForRaffle returns every number of a raffle, newest first
func (s *numberService) GetNumbersForRaffle(ctx context.Context, raffleID int64) ([]*entities.Number, error) {
	numbers, err := s.numberRepo.GetByRaffle(ctx, raffleID)
	if err != nil {
		return nil, fmt.Errorf("failed to get numbers for raffle: %w", err)
	}
	return numbers, nil
}

// GetNumber returns a number by ID, or nil
func (s *numberService) GetNumber(ctx context.Context, numberID int64) (*entities.Number, error) {
	number, err := s.numberRepo.GetByID(ctx, numberID)
	if err != nil {
		return nil, fmt.Errorf("failed to get number: %w", err)
	}
	return number, nil
}
