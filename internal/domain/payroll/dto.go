package payroll

import (
	"fmt"
	"time"

	"github.com/tals012/agriculture-hrms-sub002/internal/pkg/validator"
)

type AggregateMonthRequest struct {
	Month     int      `json:"month"`
	Year      int      `json:"year"`
	WorkerIDs []string `json:"worker_ids"`
}

func (r *AggregateMonthRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Month < 1 || r.Month > 12 {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be between 1 and 12",
		})
	}
	if r.Year < 2000 || r.Year > 2100 {
		errs = append(errs, validator.ValidationError{
			Field:   "year",
			Message: "year is out of range",
		})
	}
	if len(r.WorkerIDs) == 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "worker_ids",
			Message: "at least one worker_id is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// MonthYearOf formats a period as the "MM-YYYY" submission key.
func MonthYearOf(month, year int) string {
	return fmt.Sprintf("%02d-%d", month, year)
}

// PeriodBounds returns the first and last day of the month.
func PeriodBounds(month, year int) (time.Time, time.Time) {
	from := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, -1)
	return from, to
}

type SendToSalaryRequest struct {
	Month             int      `json:"month"`
	Year              int      `json:"year"`
	SelectedWorkerIDs []string `json:"selected_worker_ids"`
}

func (r *SendToSalaryRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Month < 1 || r.Month > 12 {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be between 1 and 12",
		})
	}
	if r.Year < 2000 || r.Year > 2100 {
		errs = append(errs, validator.ValidationError{
			Field:   "year",
			Message: "year is out of range",
		})
	}
	if len(r.SelectedWorkerIDs) == 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "selected_worker_ids",
			Message: "at least one worker id is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type RegisterWorkerRequest struct {
	WorkerID string `json:"worker_id"`
}

func (r *RegisterWorkerRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.WorkerID) {
		errs = append(errs, validator.ValidationError{
			Field:   "worker_id",
			Message: "worker_id is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type MonthlySubmissionResponse struct {
	ID              string  `json:"id"`
	WorkerID        string  `json:"worker_id"`
	MonthYear       string  `json:"month_year"`
	TotalContainers float64 `json:"total_containers"`
	TotalBaseSalary string  `json:"total_base_salary"`
	Bonus           string  `json:"bonus"`
	HoursWindow100  float64 `json:"hours_window_100"`
	HoursWindow125  float64 `json:"hours_window_125"`
	HoursWindow150  float64 `json:"hours_window_150"`
	WorkedDays      int     `json:"worked_days"`
	SickDays        int     `json:"sick_days"`
	ApprovalStatus  string  `json:"approval_status"`
	SendStatus      string  `json:"send_status"`
}
