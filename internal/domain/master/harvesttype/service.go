package harvesttype

import "context"

type HarvestTypeService interface {
	CreateHarvestType(ctx context.Context, req CreateHarvestTypeRequest) (HarvestType, error)
	ListHarvestTypes(ctx context.Context) ([]HarvestType, error)
	UpdateHarvestType(ctx context.Context, req UpdateHarvestTypeRequest) error
	DeleteHarvestType(ctx context.Context, id string) error
}
