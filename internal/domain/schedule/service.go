package schedule

import "context"

// ScheduleService defines business logic for working schedule management.
type ScheduleService interface {
	// Generate creates a new immutable schedule row at the requested scope.
	Generate(ctx context.Context, req GenerateScheduleRequest) (ScheduleResponse, error)

	// Resolve selects the single most-specific schedule for the scope,
	// falling back to the hard-coded organization default when no row
	// exists anywhere.
	Resolve(ctx context.Context, ref ScopeRef) (ResolvedSchedule, error)
}
