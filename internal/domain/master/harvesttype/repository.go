package harvesttype

import "context"

type HarvestTypeRepository interface {
	Create(ctx context.Context, h HarvestType) (HarvestType, error)
	GetByID(ctx context.Context, id string, organizationID string) (HarvestType, error)
	GetByOrganizationID(ctx context.Context, organizationID string) ([]HarvestType, error)
	Update(ctx context.Context, req UpdateHarvestTypeRequest, organizationID string) error
	Delete(ctx context.Context, id string, organizationID string) error
}
