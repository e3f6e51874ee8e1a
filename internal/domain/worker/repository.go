package worker

import "context"

type WorkerRepository interface {
	Create(ctx context.Context, w Worker) (Worker, error)
	GetByID(ctx context.Context, id string, organizationID string) (Worker, error)
	GetByIDs(ctx context.Context, ids []string, organizationID string) ([]Worker, error)
	List(ctx context.Context, filter WorkerFilter, organizationID string) ([]Worker, int64, error)
	Update(ctx context.Context, w Worker) error
	SetSalarySystemID(ctx context.Context, id string, salarySystemID string) error
	Delete(ctx context.Context, id string, organizationID string) error
}
