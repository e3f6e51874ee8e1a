package field

import "context"

type FieldService interface {
	CreateField(ctx context.Context, req CreateFieldRequest) (Field, error)
	GetField(ctx context.Context, id string) (Field, error)
	ListFields(ctx context.Context, filter FieldFilter) ([]Field, int64, error)
	UpdateField(ctx context.Context, req UpdateFieldRequest) error
	DeleteField(ctx context.Context, id string) error
}
