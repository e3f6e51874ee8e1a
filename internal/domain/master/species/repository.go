package species

import "context"

type SpeciesRepository interface {
	Create(ctx context.Context, s Species) (Species, error)
	GetByID(ctx context.Context, id string, organizationID string) (Species, error)
	GetByOrganizationID(ctx context.Context, organizationID string) ([]Species, error)
	Update(ctx context.Context, req UpdateSpeciesRequest, organizationID string) error
	Delete(ctx context.Context, id string, organizationID string) error
}
