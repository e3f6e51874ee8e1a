package schedule

import "time"

type Source string

const (
	SourceWorker       Source = "WORKER"
	SourceGroup        Source = "GROUP"
	SourceField        Source = "FIELD"
	SourceClient       Source = "CLIENT"
	SourceOrganization Source = "ORGANIZATION"
)

var SourceValues = []string{
	string(SourceWorker),
	string(SourceGroup),
	string(SourceField),
	string(SourceClient),
	string(SourceOrganization),
}

// WorkingSchedule is an immutable working-time configuration row. At most one
// of WorkerID/GroupID/FieldID/ClientID is set; all nil means an
// organization-wide default. Updates insert a new row and resolution takes
// the newest per scope.
type WorkingSchedule struct {
	ID                  string
	OrganizationID      string
	Source              Source
	WorkerID            *string
	GroupID             *string
	FieldID             *string
	ClientID            *string
	TotalHoursPerDay    float64
	TotalDaysPerWeek    int
	StartTimeInMinutes  int
	EndTimeInMinutes    int
	BreakTimeInMinutes  int
	IsBreakTimePaid     bool
	CreatedAt           time.Time
}

// Organization-wide defaults used when no schedule row exists at any scope:
// 08:00-17:00 with a 30 minute unpaid break.
const (
	DefaultStartTimeInMinutes = 480
	DefaultEndTimeInMinutes   = 1020
	DefaultBreakTimeInMinutes = 30
	DefaultTotalHoursPerDay   = 8
	DefaultTotalDaysPerWeek   = 6
)

// ScopeRef identifies the context a schedule is resolved for. Any subset of
// the scope IDs may be set; resolution walks worker > group > field > client
// > organization.
type ScopeRef struct {
	OrganizationID string
	WorkerID       *string
	GroupID        *string
	FieldID        *string
	ClientID       *string
}

// ResolvedSchedule is the outcome of schedule resolution. IsFallback reports
// that no row existed at any scope and the hard-coded defaults were used.
type ResolvedSchedule struct {
	Schedule   WorkingSchedule
	IsFallback bool
}

// FallbackSchedule returns the hard-coded organization default.
func FallbackSchedule(organizationID string) WorkingSchedule {
	return WorkingSchedule{
		OrganizationID:     organizationID,
		Source:             SourceOrganization,
		TotalHoursPerDay:   DefaultTotalHoursPerDay,
		TotalDaysPerWeek:   DefaultTotalDaysPerWeek,
		StartTimeInMinutes: DefaultStartTimeInMinutes,
		EndTimeInMinutes:   DefaultEndTimeInMinutes,
		BreakTimeInMinutes: DefaultBreakTimeInMinutes,
		IsBreakTimePaid:    false,
	}
}
