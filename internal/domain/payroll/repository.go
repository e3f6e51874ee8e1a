package payroll

import "context"

type MonthlySubmissionRepository interface {
	// Upsert inserts or overwrites the row for (worker_id, month_year).
	// Re-running aggregation must never duplicate submissions.
	Upsert(ctx context.Context, s MonthlySubmission) (MonthlySubmission, error)

	GetByWorkerAndMonth(ctx context.Context, workerID, monthYear string, organizationID string) (MonthlySubmission, error)
	ListByMonth(ctx context.Context, monthYear string, organizationID string) ([]MonthlySubmission, error)

	// MarkPendingSend flags the selected submissions for the dispatch job.
	MarkPendingSend(ctx context.Context, workerIDs []string, monthYear string, organizationID string) (int64, error)

	// ListPendingSend returns up to limit submissions awaiting dispatch,
	// oldest first, with worker identity fields joined.
	ListPendingSend(ctx context.Context, limit int) ([]MonthlySubmission, error)

	MarkSent(ctx context.Context, id string) error
	MarkFailed(ctx context.Context, id string, sendError string) error
}
