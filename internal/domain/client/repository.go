package client

import "context"

// ClientRepository defines data access for clients. All methods take
// organizationID to enforce tenant isolation.
type ClientRepository interface {
	Create(ctx context.Context, c Client) (Client, error)
	GetByID(ctx context.Context, id string, organizationID string) (Client, error)
	List(ctx context.Context, filter ClientFilter, organizationID string) ([]Client, int64, error)
	Update(ctx context.Context, c Client) error
	Delete(ctx context.Context, id string, organizationID string) error
}
