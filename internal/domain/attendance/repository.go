package attendance

import (
	"context"
	"time"
)

// AttendanceRepository defines data access for attendance records. All
// methods take organizationID to enforce tenant isolation.
type AttendanceRepository interface {
	Create(ctx context.Context, a WorkerAttendance) (WorkerAttendance, error)
	GetByID(ctx context.Context, id string, organizationID string) (WorkerAttendance, error)

	// GetByWorkerDateGroup is used to reject duplicate submissions.
	// Returns nil, nil when no row exists.
	GetByWorkerDateGroup(ctx context.Context, workerID string, date time.Time, groupID string, organizationID string) (*WorkerAttendance, error)

	Update(ctx context.Context, a WorkerAttendance) error
	List(ctx context.Context, filter AttendanceFilter, organizationID string) ([]WorkerAttendance, int64, error)

	// ListApprovedInRange returns APPROVED rows for the workers in the
	// closed date range, ordered by worker then date. Feeds the monthly
	// aggregator.
	ListApprovedInRange(ctx context.Context, workerIDs []string, from, to time.Time, organizationID string) ([]WorkerAttendance, error)

	Delete(ctx context.Context, id string, organizationID string) error
}
