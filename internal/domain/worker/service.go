package worker

import "context"

type WorkerService interface {
	CreateWorker(ctx context.Context, req CreateWorkerRequest) (Worker, error)
	GetWorker(ctx context.Context, id string) (Worker, error)
	ListWorkers(ctx context.Context, filter WorkerFilter) ([]Worker, int64, error)
	UpdateWorker(ctx context.Context, req UpdateWorkerRequest) error
	DeleteWorker(ctx context.Context, id string) error
}
