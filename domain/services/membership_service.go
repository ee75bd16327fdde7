package services

import (
	"context"
	"fmt"

	"raffler/domain"
	"raffler/domain/entities"
	"raffler/domain/events"
	"raffler/domain/interfaces"

	log "github.com/sirupsen/logrus"
)

// membershipService implements the MembershipService interface
type membershipService struct {
	membershipRepo interfaces.MembershipRepository
	eventPublisher interfaces.EventPublisher
}

// NewMembershipService creates a new membership service
func NewMembershipService(
	membershipRepo interfaces.MembershipRepository,
	eventPublisher interfaces.EventPublisher,
) interfaces.MembershipService {
	return &membershipService{
		membershipRepo: membershipRepo,
		eventPublisher: eventPublisher,
	}
}

// GetRole returns the role of a seller on a raffle, or nil when not a member
func (s *membershipService) GetRole(ctx context.Context, sellerID, raffleID int64) (*entities.Role, error) {
	membership, err := s.membershipRepo.Get(ctx, sellerID, raffleID)
	if err != nil {
		return nil, fmt.Errorf("failed to get membership: %w", err)
	}
	if membership == nil {
		return nil, nil
	}
	role := membership.Role
	return &role, nil
}

// Assign adds a seller to a raffle or changes their role. Only owners and
// moderators may assign, and any role may be granted, owner included.
func (s *membershipService) Assign(ctx context.Context, requesterID, sellerID, raffleID int64, role entities.Role) (int64, error) {
	if !role.IsValid() {
		return 0, fmt.Errorf("%w: unknown role %q", domain.ErrInvalidInput, role)
	}

	if _, err := s.requireManager(ctx, requesterID, raffleID); err != nil {
		return 0, err
	}

	membership, err := s.membershipRepo.Upsert(ctx, sellerID, raffleID, role)
	if err != nil {
		return 0, fmt.Errorf("failed to assign membership: %w", err)
	}

	if err := s.eventPublisher.Publish(events.MembershipAssignedEvent{
		MembershipID: membership.ID,
		RaffleID:     raffleID,
		SellerID:     sellerID,
		RequesterID:  requesterID,
		Role:         string(role),
	}); err != nil {
		return 0, fmt.Errorf("failed to publish membership assigned event: %w", err)
	}

	log.WithFields(log.Fields{
		"raffleID":    raffleID,
		"sellerID":    sellerID,
		"requesterID": requesterID,
		"role":        role,
	}).Info("Membership assigned")

	return membership.ID, nil
}

// Remove takes a seller off a raffle. An owner cannot remove themselves;
// removing a seller who is not a member does nothing.
func (s *membershipService) Remove(ctx context.Context, requesterID, sellerID, raffleID int64) error {
	requester, err := s.requireManager(ctx, requesterID, raffleID)
	if err != nil {
		return err
	}

	if sellerID == requesterID && requester.Role == entities.RoleOwner {
		return fmt.Errorf("%w: an owner cannot remove themselves from a raffle", domain.ErrInvalidOperation)
	}

	deleted, err := s.membershipRepo.Delete(ctx, sellerID, raffleID)
	if err != nil {
		return fmt.Errorf("failed to remove membership: %w", err)
	}
	if !deleted {
		return nil
	}

	if err := s.eventPublisher.Publish(events.MembershipRemovedEvent{
		RaffleID:    raffleID,
		SellerID:    sellerID,
		RequesterID: requesterID,
	}); err != nil {
		return fmt.Errorf("failed to publish membership removed event: %w", err)
	}

	log.WithFields(log.Fields{
		"raffleID":    raffleID,
		"sellerID":    sellerID,
		"requesterID": requesterID,
	}).Info("Membership removed")

	return nil
}

// GetMembers returns the members of a raffle with their roles
func (s *membershipService) GetMembers(ctx context.Context, raffleID int64) ([]*entities.MemberInfo, error) {
	members, err := s.membershipRepo.GetMembersByRaffle(ctx, raffleID)
	if err != nil {
		return nil, fmt.Errorf("failed to get raffle members: %w", err)
	}
	return members, nil
}

// GetRafflesForSeller returns the raffles a seller belongs to with their roles
func (s *membershipService) GetRafflesForSeller(ctx context.Context, sellerID int64) ([]*entities.RaffleWithRole, error) {
	raffles, err := s.membershipRepo.GetRafflesBySeller(ctx, sellerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get raffles for seller: %w", err)
	}
	return raffles, nil
}

// requireManager returns the requester's membership if it allows managing members
func (s *membershipService) requireManager(ctx context.Context, requesterID, raffleID int64) (*entities.Membership, error) {
	requester, err := s.membershipRepo.Get(ctx, requesterID, raffleID)
	if err != nil {
		return nil, fmt.Errorf("failed to get requester membership: %w", err)
	}
	if requester == nil || !requester.Role.CanManageMembers() {
		return nil, fmt.Errorf("%w: seller %d cannot manage members of raffle %d", domain.ErrForbidden, requesterID, raffleID)
	}
	return requester, nil
}
