package payroll

import "context"

// PayrollService defines the monthly aggregation and salary-system dispatch
// business logic.
type PayrollService interface {
	// AggregateMonth sums approved attendance rows per worker for the
	// period and upserts one MonthlySubmission per worker. Idempotent for
	// unchanged attendance data.
	AggregateMonth(ctx context.Context, req AggregateMonthRequest) ([]MonthlySubmissionResponse, error)

	// QueueSend marks the selected submissions PENDING_SEND and returns
	// immediately. The dispatch job delivers them in batches.
	QueueSend(ctx context.Context, req SendToSalaryRequest) (int64, error)

	// DispatchPending sends pending submissions to the external salary
	// system in batches. Called by the cron scheduler, and re-triggerable
	// manually after failures.
	DispatchPending(ctx context.Context) error

	// RegisterWorker registers a worker in the external salary system.
	RegisterWorker(ctx context.Context, req RegisterWorkerRequest) error
}
