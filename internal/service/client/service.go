package client

import (
	"context"
	"fmt"

	"github.com/go-chi/jwtauth/v5"
	"github.com/tals012/agriculture-hrms-sub002/internal/domain/auth"
	"github.com/tals012/agriculture-hrms-sub002/internal/domain/client"
)

type ClientServiceImpl struct {
	client.ClientRepository
}

func NewClientService(clientRepo client.ClientRepository) client.ClientService {
	return &ClientServiceImpl{ClientRepository: clientRepo}
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

// CreateClient implements client.ClientService.
func (s *ClientServiceImpl) CreateClient(ctx context.Context, req client.CreateClientRequest) (client.Client, error) {
	if err := req.Validate(); err != nil {
		return client.Client{}, err
	}

	organizationID, err := organizationIDFromContext(ctx)
	if err != nil {
		return client.Client{}, err
	}

	c := client.Client{
		OrganizationID: organizationID,
		Name:           req.Name,
		NameHe:         req.NameHe,
		ContactName:    req.ContactName,
		Phone:          req.Phone,
		Email:          req.Email,
		Address:        req.Address,
		City:           req.City,
		IsActive:       true,
	}

	created, err := s.ClientRepository.Create(ctx, c)
	if err != nil {
		return client.Client{}, fmt.Errorf("failed to create client: %w", err)
	}

	return created, nil
}

// GetClient implements client.ClientService.
func (s *ClientServiceImpl) GetClient(ctx context.Context, id string) (client.Client, error) {
	organizationID, err := organizationIDFromContext(ctx)
	if err != nil {
		return client.Client{}, err
	}

	return s.ClientRepository.GetByID(ctx, id, organizationID)
}

// ListClients implements client.ClientService.
func (s *ClientServiceImpl) ListClients(ctx context.Context, filter client.ClientFilter) ([]client.Client, int64, error) {
	organizationID, err := organizationIDFromContext(ctx)
	if err != nil {
		return nil, 0, err
	}

	return s.ClientRepository.List(ctx, filter, organizationID)
}

// UpdateClient implements client.ClientService.
func (s *ClientServiceImpl) UpdateClient(ctx context.Context, req client.UpdateClientRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	organizationID, err := organizationIDFromContext(ctx)
	if err != nil {
		return err
	}

	existing, err := s.ClientRepository.GetByID(ctx, req.ID, organizationID)
	if err != nil {
		return err
	}

	existing.Name = req.Name
	existing.NameHe = req.NameHe
	existing.ContactName = req.ContactName
	existing.Phone = req.Phone
	existing.Email = req.Email
	existing.Address = req.Address
	existing.City = req.City
	if req.IsActive != nil {
		existing.IsActive = *req.IsActive
	}

	return s.ClientRepository.Update(ctx, existing)
}

// DeleteClient implements client.ClientService.
func (s *ClientServiceImpl) DeleteClient(ctx context.Context, id string) error {
	organizationID, err := organizationIDFromContext(ctx)
	if err != nil {
		return err
	}

	return s.ClientRepository.Delete(ctx, id, organizationID)
}
