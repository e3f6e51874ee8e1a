package attendance

import (
	"time"

	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusWorking   Status = "WORKING"
	StatusSickLeave Status = "SICK_LEAVE"
	StatusDayOff    Status = "DAY_OFF"
	StatusAbsent    Status = "ABSENT"
	StatusHoliday   Status = "HOLIDAY"
	StatusInterVisa Status = "INTER_VISA"
)

var StatusValues = []string{
	string(StatusWorking),
	string(StatusSickLeave),
	string(StatusDayOff),
	string(StatusAbsent),
	string(StatusHoliday),
	string(StatusInterVisa),
}

type ApprovalStatus string

const (
	ApprovalPending  ApprovalStatus = "PENDING"
	ApprovalApproved ApprovalStatus = "APPROVED"
	ApprovalRejected ApprovalStatus = "REJECTED"
)

// WorkerAttendance is one attendance event per (worker, date, group).
// Hour and container fields are nil unless Status is WORKING.
type WorkerAttendance struct {
	ID                    string
	OrganizationID        string
	WorkerID              string
	GroupID               string
	CombinationID         *string
	AttendanceDate        time.Time
	Status                Status
	TotalContainersFilled *float64
	StartTimeInMinutes    *int
	EndTimeInMinutes      *int
	BreakTimeInMinutes    *int
	TotalHoursWorked      *float64
	HoursWindow100        *float64
	HoursWindow125        *float64
	HoursWindow150        *float64
	BaseWage              *decimal.Decimal
	DailyWage             *decimal.Decimal
	ApprovalStatus        ApprovalStatus
	ApprovedBy            *string
	ApprovedAt            *time.Time
	RejectionReason       *string
	CreatedAt             time.Time
	UpdatedAt             time.Time

	// Joined fields
	WorkerName *string
}
