package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

type SendStatus string

const (
	SendStatusNotSent     SendStatus = "NOT_SENT"
	SendStatusPendingSend SendStatus = "PENDING_SEND"
	SendStatusSent        SendStatus = "SENT"
	SendStatusFailed      SendStatus = "FAILED"
)

type ApprovalStatus string

const (
	ApprovalPending  ApprovalStatus = "PENDING"
	ApprovalApproved ApprovalStatus = "APPROVED"
	ApprovalRejected ApprovalStatus = "REJECTED"
)

// MonthlySubmission is one worker's aggregate for a month, upserted
// idempotently by the unique (worker_id, month_year) key. MonthYear uses the
// "MM-YYYY" form the external salary system expects.
type MonthlySubmission struct {
	ID              string
	OrganizationID  string
	WorkerID        string
	MonthYear       string
	TotalContainers float64
	TotalBaseSalary decimal.Decimal
	Bonus           decimal.Decimal
	HoursWindow100  float64
	HoursWindow125  float64
	HoursWindow150  float64
	WorkedDays      int
	SickDays        int
	ApprovalStatus  ApprovalStatus
	SendStatus      SendStatus
	SendError       *string
	SentAt          *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time

	// Joined fields
	WorkerPassport  *string
	WorkerFirstName *string
	WorkerLastName  *string
}
