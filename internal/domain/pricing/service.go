package pricing

import "context"

type PricingService interface {
	CreateCombination(ctx context.Context, req CreateCombinationRequest) (Combination, error)
	GetCombination(ctx context.Context, id string) (Combination, error)
	ListCombinationsByClient(ctx context.Context, clientID string) ([]Combination, error)
	UpdateCombination(ctx context.Context, req UpdateCombinationRequest) error
	DeleteCombination(ctx context.Context, id string) error
}
