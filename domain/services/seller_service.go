package services

import (
	"context"
	"fmt"
	"strings"

	"raffler/domain"
	"raffler/domain/entities"
	"raffler/domain/interfaces"
)

// sellerSearchLimit bounds the number of sellers returned by a name search
const sellerSearchLimit = 50

// sellerService implements the SellerService interface
type sellerService struct {
	sellerRepo interfaces.SellerRepository
}

// NewSellerService creates a new seller service
func NewSellerService(sellerRepo interfaces.SellerRepository) interfaces.SellerService {
	return &sellerService{
		sellerRepo: sellerRepo,
	}
}

// Login returns the seller with the given name, creating it on first use.
// Identity is the name alone; there is no credential check.
func (s *sellerService) Login(ctx context.Context, name string) (*entities.Seller, error) {
	name = entities.NormalizeSellerName(name)
	if name == "" {
		return nil, fmt.Errorf("%w: seller name must not be empty", domain.ErrInvalidInput)
	}

	seller, err := s.sellerRepo.GetOrCreate(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("failed to get or create seller: %w", err)
	}

	return seller, nil
}

// FindByName returns the seller with the exact name, or nil
func (s *sellerService) FindByName(ctx context.Context, name string) (*entities.Seller, error) {
	name = entities.NormalizeSellerName(name)
	if name == "" {
		return nil, nil
	}

	seller, err := s.sellerRepo.GetByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("failed to find seller by name: %w", err)
	}
	return seller, nil
}

// GetSeller returns the seller with the given ID, or nil
func (s *sellerService) GetSeller(ctx context.Context, sellerID int64) (*entities.Seller, error) {
	seller, err := s.sellerRepo.GetByID(ctx, sellerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get seller: %w", err)
	}
	return seller, nil
}

// SearchSellers returns sellers whose name contains term
func (s *sellerService) SearchSellers(ctx context.Context, term string) ([]*entities.Seller, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return []*entities.Seller{}, nil
	}

	sellers, err := s.sellerRepo.Search(ctx, term, sellerSearchLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to search sellers: %w", err)
	}
	return sellers, nil
}
