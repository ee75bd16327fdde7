package application

import (
	"context"
	"fmt"

	"raffler/domain/entities"
	"raffler/domain/interfaces"
	"raffler/domain/services"
	"raffler/infrastructure/observability"

	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
)

// Service exposes every raffle operation. Each call runs in its own unit of
// work, so a failed mutation leaves no partial writes and its events are
// never published.
type Service struct {
	uowFactory  UnitOfWorkFactory
	maxPageSize int
}

// NewService creates a new application service
func NewService(uowFactory UnitOfWorkFactory, maxPageSize int) *Service {
	return &Service{
		uowFactory:  uowFactory,
		maxPageSize: maxPageSize,
	}
}

// withUnitOfWork runs fn inside a transaction and commits when it succeeds
func (s *Service) withUnitOfWork(ctx context.Context, fn func(uow UnitOfWork) error) error {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err := uow.Rollback(); err != nil {
			log.WithError(err).Warn("Failed to roll back unit of work")
		}
	}()

	if err := fn(uow); err != nil {
		return err
	}

	if err := uow.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

func (s *Service) sellerService(uow UnitOfWork) interfaces.SellerService {
	return services.NewSellerService(uow.SellerRepository())
}

func (s *Service) membershipService(uow UnitOfWork) interfaces.MembershipService {
	return services.NewMembershipService(uow.MembershipRepository(), uow.EventBus())
}

func (s *Service) raffleService(uow UnitOfWork) interfaces.RaffleService {
	return services.NewRaffleService(uow.RaffleRepository(), uow.MembershipRepository(), uow.NumberRepository(), uow.EventBus())
}

func (s *Service) numberService(uow UnitOfWork) interfaces.NumberService {
	return services.NewNumberService(uow.NumberRepository(), uow.MembershipRepository(), uow.EventBus(), s.maxPageSize)
}

func (s *Service) chatService(uow UnitOfWork) interfaces.ChatService {
	return services.NewChatService(uow.ChatMessageRepository(), uow.MembershipRepository(), uow.EventBus())
}

// Login returns the seller with the given name, creating it on first use
func (s *Service) Login(ctx context.Context, name string) (*entities.Seller, error) {
	var seller *entities.Seller
	err := s.withUnitOfWork(ctx, func(uow UnitOfWork) error {
		var err error
		seller, err = s.sellerService(uow).Login(ctx, name)
		return err
	})
	return seller, err
}

// FindSellerByName returns the seller with exactly this name, or nil
func (s *Service) FindSellerByName(ctx context.Context, name string) (*entities.Seller, error) {
	var seller *entities.Seller
	err := s.withUnitOfWork(ctx, func(uow UnitOfWork) error {
		var err error
		seller, err = s.sellerService(uow).FindByName(ctx, name)
		return err
	})
	return seller, err
}

// GetSeller returns a seller by ID, or nil
func (s *Service) GetSeller(ctx context.Context, sellerID int64) (*entities.Seller, error) {
	var seller *entities.Seller
	err := s.withUnitOfWork(ctx, func(uow UnitOfWork) error {
		var err error
		seller, err = s.sellerService(uow).GetSeller(ctx, sellerID)
		return err
	})
	return seller, err
}

// SearchSellers returns sellers whose name contains term
func (s *Service) SearchSellers(ctx context.Context, term string) ([]*entities.Seller, error) {
	var sellers []*entities.Seller
	err := s.withUnitOfWork(ctx, func(uow UnitOfWork) error {
		var err error
		sellers, err = s.sellerService(uow).SearchSellers(ctx, term)
		return err
	})
	return sellers, err
}

// GetRole returns the role of a seller on a raffle, or nil when not a member
func (s *Service) GetRole(ctx context.Context, sellerID, raffleID int64) (*entities.Role, error) {
	var role *entities.Role
	err := s.withUnitOfWork(ctx, func(uow UnitOfWork) error {
		var err error
		role, err = s.membershipService(uow).GetRole(ctx, sellerID, raffleID)
		return err
	})
	return role, err
}

// AssignMember adds a seller to a raffle or changes their role
func (s *Service) AssignMember(ctx context.Context, requesterID, sellerID, raffleID int64, role entities.Role) (int64, error) {
	var membershipID int64
	err := s.withUnitOfWork(ctx, func(uow UnitOfWork) error {
		var err error
		membershipID, err = s.membershipService(uow).Assign(ctx, requesterID, sellerID, raffleID, role)
		return err
	})
	if err != nil {
		return 0, err
	}

	observability.GetMetrics().RecordMembershipChange(observability.MembershipChangeAssigned)
	return membershipID, nil
}

// RemoveMember takes a seller off a raffle
func (s *Service) RemoveMember(ctx context.Context, requesterID, sellerID, raffleID int64) error {
	err := s.withUnitOfWork(ctx, func(uow UnitOfWork) error {
		return s.membershipService(uow).Remove(ctx, requesterID, sellerID, raffleID)
	})
	if err != nil {
		return err
	}

	observability.GetMetrics().RecordMembershipChange(observability.MembershipChangeRemoved)
	return nil
}

// GetMembers returns the members of a raffle with their roles
func (s *Service) GetMembers(ctx context.Context, raffleID int64) ([]*entities.MemberInfo, error) {
	var members []*entities.MemberInfo
	err := s.withUnitOfWork(ctx, func(uow UnitOfWork) error {
		var err error
		members, err = s.membershipService(uow).GetMembers(ctx, raffleID)
		return err
	})
	return members, err
}

// GetRafflesForSeller returns the raffles a seller belongs to with their roles
func (s *Service) GetRafflesForSeller(ctx context.Context, sellerID int64) ([]*entities.RaffleWithRole, error) {
	var raffles []*entities.RaffleWithRole
	err := s.withUnitOfWork(ctx, func(uow UnitOfWork) error {
		var err error
		raffles, err = s.membershipService(uow).GetRafflesForSeller(ctx, sellerID)
		return err
	})
	return raffles, err
}

// CreateRaffle stores a raffle and its initial memberships in one transaction
func (s *Service) CreateRaffle(ctx context.Context, creatorID int64, amountOfNumbers int, price decimal.Decimal, members []entities.InitialMembership) (int64, error) {
	var raffleID int64
	err := s.withUnitOfWork(ctx, func(uow UnitOfWork) error {
		var err error
		raffleID, err = s.raffleService(uow).CreateRaffle(ctx, creatorID, amountOfNumbers, price, members)
		return err
	})
	if err != nil {
		return 0, err
	}

	observability.GetMetrics().RecordRaffleCreated()
	return raffleID, nil
}

// GetRaffle returns a raffle, or nil
func (s *Service) GetRaffle(ctx context.Context, raffleID int64) (*entities.Raffle, error) {
	var raffle *entities.Raffle
	err := s.withUnitOfWork(ctx, func(uow UnitOfWork) error {
		var err error
		raffle, err = s.raffleService(uow).GetRaffle(ctx, raffleID)
		return err
	})
	return raffle, err
}

// SetRaffleState transitions a raffle to the given state
func (s *Service) SetRaffleState(ctx context.Context, requesterID, raffleID int64, state entities.RaffleState) error {
	err := s.withUnitOfWork(ctx, func(uow UnitOfWork) error {
		return s.raffleService(uow).SetState(ctx, requesterID, raffleID, state)
	})
	if err != nil {
		return err
	}

	observability.GetMetrics().RecordRaffleStateChange(string(state))
	return nil
}

// ListRaffles returns every raffle, newest first
func (s *Service) ListRaffles(ctx context.Context) ([]*entities.Raffle, error) {
	var raffles []*entities.Raffle
	err := s.withUnitOfWork(ctx, func(uow UnitOfWork) error {
		var err error
		raffles, err = s.raffleService(uow).ListRaffles(ctx)
		return err
	})
	return raffles, err
}

// GetRaffleSummary returns sales figures for a raffle, or nil
func (s *Service) GetRaffleSummary(ctx context.Context, raffleID int64) (*entities.RaffleSummary, error) {
	var summary *entities.RaffleSummary
	err := s.withUnitOfWork(ctx, func(uow UnitOfWork) error {
		var err error
		summary, err = s.raffleService(uow).GetSummary(ctx, raffleID)
		return err
	})
	return summary, err
}

// RegisterNumber records a sold number for a raffle
func (s *Service) RegisterNumber(ctx context.Context, sellerID, raffleID int64, number, buyerName, buyerContact string) (int64, error) {
	var numberID int64
	err := s.withUnitOfWork(ctx, func(uow UnitOfWork) error {
		var err error
		numberID, err = s.numberService(uow).RegisterNumber(ctx, sellerID, raffleID, number, buyerName, buyerContact)
		return err
	})
	if err != nil {
		return 0, err
	}

	observability.GetMetrics().RecordNumberRegistered()
	return numberID, nil
}

// SearchNumbers returns one page of a raffle's numbers
func (s *Service) SearchNumbers(ctx context.Context, raffleID int64, term string, page, pageSize int) (*entities.NumberPage, error) {
	var result *entities.NumberPage
	err := s.withUnitOfWork(ctx, func(uow UnitOfWork) error {
		var err error
		result, err = s.numberService(uow).SearchNumbers(ctx, raffleID, term, page, pageSize)
		return err
	})
	return result, err
}

// GetNumbersForRaffle returns every number of a raffle, newest first
func (s *Service) GetNumbersForRaffle(ctx context.Context, raffleID int64) ([]*entities.Number, error) {
	var numbers []*entities.Number
	err := s.withUnitOfWork(ctx, func(uow UnitOfWork) error {
		var err error
		numbers, err = s.numberService(uow).GetNumbersForRaffle(ctx, raffleID)
		return err
	})
	return numbers, err
}

// GetNumber returns a number by ID, or nil
func (s *Service) GetNumber(ctx context.Context, numberID int64) (*entities.Number, error) {
	var number *entities.Number
	err := s.withUnitOfWork(ctx, func(uow UnitOfWork) error {
		var err error
		number, err = s.numberService(uow).GetNumber(ctx, numberID)
		return err
	})
	return number, err
}

// PostMessage appends a message to a raffle chat
func (s *Service) PostMessage(ctx context.Context, sellerID, raffleID int64, message string) (int64, error) {
	var messageID int64
	err := s.withUnitOfWork(ctx, func(uow UnitOfWork) error {
		var err error
		messageID, err = s.chatService(uow).PostMessage(ctx, sellerID, raffleID, message)
		return err
	})
	if err != nil {
		return 0, err
	}

	observability.GetMetrics().RecordChatMessagePosted()
	return messageID, nil
}

// GetChatHistory returns a raffle chat in ascending order
func (s *Service) GetChatHistory(ctx context.Context, sellerID, raffleID int64) ([]*entities.ChatMessage, error) {
	var messages []*entities.ChatMessage
	err := s.withUnitOfWork(ctx, func(uow UnitOfWork) error {
		var err error
		messages, err = s.chatService(uow).GetHistory(ctx, sellerID, raffleID)
		return err
	})
	return messages, err
}
