package pricing

import "context"

type CombinationRepository interface {
	Create(ctx context.Context, c Combination) (Combination, error)
	GetByID(ctx context.Context, id string, organizationID string) (Combination, error)
	// GetByKey looks up the combination for (client, species, harvestType).
	GetByKey(ctx context.Context, clientID, speciesID, harvestTypeID string, organizationID string) (Combination, error)
	GetByClientID(ctx context.Context, clientID string, organizationID string) ([]Combination, error)
	Update(ctx context.Context, req UpdateCombinationRequest, organizationID string) error
	Delete(ctx context.Context, id string, organizationID string) error
}
