package field

import "context"

type FieldRepository interface {
	Create(ctx context.Context, f Field) (Field, error)
	GetByID(ctx context.Context, id string, organizationID string) (Field, error)
	List(ctx context.Context, filter FieldFilter, organizationID string) ([]Field, int64, error)
	Update(ctx context.Context, f Field) error
	Delete(ctx context.Context, id string, organizationID string) error
}
