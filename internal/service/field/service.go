package field

import (
	"context"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/tals012/agriculture-hrms-sub002/internal/domain/auth"
	"github.com/tals012/agriculture-hrms-sub002/internal/domain/client"
	"github.com/tals012/agriculture-hrms-sub002/internal/domain/field"
)

type FieldServiceImpl struct {
	field.FieldRepository
	client.ClientRepository
}

func NewFieldService(fieldRepo field.FieldRepository, clientRepo client.ClientRepository) field.FieldService {
	return &FieldServiceImpl{
		FieldRepository:  fieldRepo,
		ClientRepository: clientRepo,
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

// CreateField implements field.FieldService.
func (s *FieldServiceImpl) CreateField(ctx context.Context, req field.CreateFieldRequest) (field.Field, error) {
	if err := req.Validate(); err != nil {
		return field.Field{}, err
	}

	organizationID, err := organizationIDFromContext(ctx)
	if err != nil {
		return field.Field{}, err
	}

	// The client must exist in the same organization.
	if _, err := s.ClientRepository.GetByID(ctx, req.ClientID, organizationID); err != nil {
		return field.Field{}, err
	}

	f := field.Field{
		OrganizationID: organizationID,
		ClientID:       req.ClientID,
		Name:           req.Name,
		AreaDunam:      req.AreaDunam,
		Region:         req.Region,
		IsActive:       true,
	}

	created, err := s.FieldRepository.Create(ctx, f)
	if err != nil {
		return field.Field{}, fmt.Errorf("failed to create field: %w", err)
	}

	return created, nil
}

// GetField implements field.FieldService.
func (s *FieldServiceImpl) GetField(ctx context.Context, id string) (field.Field, error) {
	organizationID, err := organizationIDFromContext(ctx)
	if err != nil {
		return field.Field{}, err
	}

	return s.FieldRepository.GetByID(ctx, id, organizationID)
}

// ListFields implements field.FieldService.
func (s *FieldServiceImpl) ListFields(ctx context.Context, filter field.FieldFilter) ([]field.Field, int64, error) {
	organizationID, err := organizationIDFromContext(ctx)
	if err != nil {
		return nil, 0, err
	}

	return s.FieldRepository.List(ctx, filter, organizationID)
}

// UpdateField implements field.FieldService.
func (s *FieldServiceImpl) UpdateField(ctx context.Context, req field.UpdateFieldRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	organizationID, err := organizationIDFromContext(ctx)
	if err != nil {
		return err
	}

	existing, err := s.FieldRepository.GetByID(ctx, req.ID, organizationID)
	if err != nil {
		return err
	}

	existing.Name = req.Name
	existing.AreaDunam = req.AreaDunam
	existing.Region = req.Region
	if req.IsActive != nil {
		existing.IsActive = *req.IsActive
	}
	existing.UpdatedAt = time.Now().UTC()

	return s.FieldRepository.Update(ctx, existing)
}

// DeleteField implements field.FieldService.
func (s *FieldServiceImpl) DeleteField(ctx context.Context, id string) error {
	organizationID, err := organizationIDFromContext(ctx)
	if err != nil {
		return err
	}

	return s.FieldRepository.Delete(ctx, id, organizationID)
}
