package client

import "context"

type ClientService interface {
	CreateClient(ctx context.Context, req CreateClientRequest) (Client, error)
	GetClient(ctx context.Context, id string) (Client, error)
	ListClients(ctx context.Context, filter ClientFilter) ([]Client, int64, error)
	UpdateClient(ctx context.Context, req UpdateClientRequest) error
	DeleteClient(ctx context.Context, id string) error
}
