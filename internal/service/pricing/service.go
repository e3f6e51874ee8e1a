package pricing

import (
	"context"
	"fmt"

	"github.com/go-chi/jwtauth/v5"
	"github.com/shopspring/decimal"
	"github.com/tals012/agriculture-hrms-sub002/internal/domain/auth"
	"github.com/tals012/agriculture-hrms-sub002/internal/domain/client"
	"github.com/tals012/agriculture-hrms-sub002/internal/domain/master/harvesttype"
	"github.com/tals012/agriculture-hrms-sub002/internal/domain/master/species"
	"github.com/tals012/agriculture-hrms-sub002/internal/domain/pricing"
)

type PricingServiceImpl struct {
	pricing.CombinationRepository
	client.ClientRepository
	species.SpeciesRepository
	harvesttype.HarvestTypeRepository
}

func NewPricingService(
	combinationRepo pricing.CombinationRepository,
	clientRepo client.ClientRepository,
	speciesRepo species.SpeciesRepository,
	harvestTypeRepo harvesttype.HarvestTypeRepository,
) pricing.PricingService {
	return &PricingServiceImpl{
		CombinationRepository: combinationRepo,
		ClientRepository:      clientRepo,
		SpeciesRepository:     speciesRepo,
		HarvestTypeRepository: harvestTypeRepo,
	}
}

func organizationIDFromContext(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}
	organizationID, ok := claims["organization_id"].(string)
	if !ok || organizationID == "" {
		return "", auth.ErrOrganizationMissing
	}
	return organizationID, nil
}

// CreateCombination implements pricing.PricingService.
func (s *PricingServiceImpl) CreateCombination(ctx context.Context, req pricing.CreateCombinationRequest) (pricing.Combination, error) {
	if err := req.Validate(); err != nil {
		return pricing.Combination{}, err
	}

	organizationID, err := organizationIDFromContext(ctx)
	if err != nil {
		return pricing.Combination{}, err
	}

	price, err := decimal.NewFromString(req.Price)
	if err != nil || price.IsNegative() {
		return pricing.Combination{}, fmt.Errorf("invalid price %q: %w", req.Price, err)
	}

	// All three referenced rows must belong to the same organization.
	if _, err := s.ClientRepository.GetByID(ctx, req.ClientID, organizationID); err != nil {
		return pricing.Combination{}, err
	}
	if _, err := s.SpeciesRepository.GetByID(ctx, req.SpeciesID, organizationID); err != nil {
		return pricing.Combination{}, err
	}
	if _, err := s.HarvestTypeRepository.GetByID(ctx, req.HarvestTypeID, organizationID); err != nil {
		return pricing.Combination{}, err
	}

	c := pricing.Combination{
		OrganizationID: organizationID,
		ClientID:       req.ClientID,
		SpeciesID:      req.SpeciesID,
		HarvestTypeID:  req.HarvestTypeID,
		Price:          price,
		ContainerNorm:  req.ContainerNorm,
	}

	return s.CombinationRepository.Create(ctx, c)
}

// GetCombination implements pricing.PricingService.
func (s *PricingServiceImpl) GetCombination(ctx context.Context, id string) (pricing.Combination, error) {
	organizationID, err := organizationIDFromContext(ctx)
	if err != nil {
		return pricing.Combination{}, err
	}

	return s.CombinationRepository.GetByID(ctx, id, organizationID)
}

// ListCombinationsByClient implements pricing.PricingService.
func (s *PricingServiceImpl) ListCombinationsByClient(ctx context.Context, clientID string) ([]pricing.Combination, error) {
	organizationID, err := organizationIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	return s.CombinationRepository.GetByClientID(ctx, clientID, organizationID)
}

// UpdateCombination implements pricing.PricingService.
func (s *PricingServiceImpl) UpdateCombination(ctx context.Context, req pricing.UpdateCombinationRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	organizationID, err := organizationIDFromContext(ctx)
	if err != nil {
		return err
	}

	if _, err := decimal.NewFromString(req.Price); err != nil {
		return fmt.Errorf("invalid price %q: %w", req.Price, err)
	}

	return s.CombinationRepository.Update(ctx, req, organizationID)
}

// DeleteCombination implements pricing.PricingService.
func (s *PricingServiceImpl) DeleteCombination(ctx context.Context, id string) error {
	organizationID, err := organizationIDFromContext(ctx)
	if err != nil {
		return err
	}

	return s.CombinationRepository.Delete(ctx, id, organizationID)
}
