package schedule

import "context"

// WorkingScheduleRepository provides access to immutable schedule rows.
type WorkingScheduleRepository interface {
	Create(ctx context.Context, s WorkingSchedule) (WorkingSchedule, error)

	// GetLatestByScope returns the newest schedule row matching the given
	// source and scope id (nil scopeID for the organization scope).
	// Returns nil, nil when no row exists at that scope.
	GetLatestByScope(ctx context.Context, source Source, scopeID *string, organizationID string) (*WorkingSchedule, error)

	ListByScope(ctx context.Context, source Source, scopeID *string, organizationID string) ([]WorkingSchedule, error)
}
