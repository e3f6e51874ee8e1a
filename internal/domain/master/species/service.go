package species

import "context"

type SpeciesService interface {
	CreateSpecies(ctx context.Context, req CreateSpeciesRequest) (Species, error)
	ListSpecies(ctx context.Context) ([]Species, error)
	UpdateSpecies(ctx context.Context, req UpdateSpeciesRequest) error
	DeleteSpecies(ctx context.Context, id string) error
}
