package payroll

import "errors"

var (
	ErrSubmissionNotFound   = errors.New("monthly submission not found")
	ErrInvalidPeriod        = errors.New("invalid payroll period")
	ErrNothingToAggregate   = errors.New("no approved attendance records in the requested period")
	ErrSalarySystemDisabled = errors.New("salary system integration is not configured")
)
