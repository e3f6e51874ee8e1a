package master

import (
	"context"
	"fmt"

	"github.com/go-chi/jwtauth/v5"
	"github.com/tals012/agriculture-hrms-sub002/internal/domain/auth"
	"github.com/tals012/agriculture-hrms-sub002/internal/domain/master/harvesttype"
	"github.com/tals012/agriculture-hrms-sub002/internal/domain/master/species"
)

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

type SpeciesServiceImpl struct {
	species.SpeciesRepository
}

func NewSpeciesService(repo species.SpeciesRepository) species.SpeciesService {
	return &SpeciesServiceImpl{SpeciesRepository: repo}
}

// CreateSpecies implements species.SpeciesService.
func (s *SpeciesServiceImpl) CreateSpecies(ctx context.Context, req species.CreateSpeciesRequest) (species.Species, error) {
	if err := req.Validate(); err != nil {
		return species.Species{}, err
	}

	organizationID, err := organizationIDFromContext(ctx)
	if err != nil {
		return species.Species{}, err
	}

	return s.SpeciesRepository.Create(ctx, species.Species{
		OrganizationID: organizationID,
		Name:           req.Name,
		NameHe:         req.NameHe,
	})
}

// ListSpecies implements species.SpeciesService.
func (s *SpeciesServiceImpl) ListSpecies(ctx context.Context) ([]species.Species, error) {
	organizationID, err := organizationIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	return s.SpeciesRepository.GetByOrganizationID(ctx, organizationID)
}

// UpdateSpecies implements species.SpeciesService.
func (s *SpeciesServiceImpl) UpdateSpecies(ctx context.Context, req species.UpdateSpeciesRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	organizationID, err := organizationIDFromContext(ctx)
	if err != nil {
		return err
	}

	return s.SpeciesRepository.Update(ctx, req, organizationID)
}

// DeleteSpecies implements species.SpeciesService.
func (s *SpeciesServiceImpl) DeleteSpecies(ctx context.Context, id string) error {
	organizationID, err := organizationIDFromContext(ctx)
	if err != nil {
		return err
	}

	return s.SpeciesRepository.Delete(ctx, id, organizationID)
}

type HarvestTypeServiceImpl struct {
	harvesttype.HarvestTypeRepository
}

func NewHarvestTypeService(repo harvesttype.HarvestTypeRepository) harvesttype.HarvestTypeService {
	return &HarvestTypeServiceImpl{HarvestTypeRepository: repo}
}

// CreateHarvestType implements harvesttype.HarvestTypeService.
func (s *HarvestTypeServiceImpl) CreateHarvestType(ctx context.Context, req harvesttype.CreateHarvestTypeRequest) (harvesttype.HarvestType, error) {
	if err := req.Validate(); err != nil {
		return harvesttype.HarvestType{}, err
	}

	organizationID, err := organizationIDFromContext(ctx)
	if err != nil {
		return harvesttype.HarvestType{}, err
	}

	return s.HarvestTypeRepository.Create(ctx, harvesttype.HarvestType{
		OrganizationID: organizationID,
		Name:           req.Name,
		NameHe:         req.NameHe,
	})
}

// ListHarvestTypes implements harvesttype.HarvestTypeService.
func (s *HarvestTypeServiceImpl) ListHarvestTypes(ctx context.Context) ([]harvesttype.HarvestType, error) {
	organizationID, err := organizationIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	return s.HarvestTypeRepository.GetByOrganizationID(ctx, organizationID)
}

// UpdateHarvestType implements harvesttype.HarvestTypeService.
func (s *HarvestTypeServiceImpl) UpdateHarvestType(ctx context.Context, req harvesttype.UpdateHarvestTypeRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	organizationID, err := organizationIDFromContext(ctx)
	if err != nil {
		return err
	}

	return s.HarvestTypeRepository.Update(ctx, req, organizationID)
}

// DeleteHarvestType implements harvesttype.HarvestTypeService.
func (s *HarvestTypeServiceImpl) DeleteHarvestType(ctx context.Context, id string) error {
	organizationID, err := organizationIDFromContext(ctx)
	if err != nil {
		return err
	}

	return s.HarvestTypeRepository.Delete(ctx, id, organizationID)
}
