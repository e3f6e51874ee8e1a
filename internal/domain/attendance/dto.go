package attendance

import (
	"strconv"

	"github.com/tals012/agriculture-hrms-sub002/internal/pkg/validator"
)

// WorkerEntry is one worker's report inside a group submission.
type WorkerEntry struct {
	WorkerID         string   `json:"worker_id"`
	Status           string   `json:"status"`
	ContainersFilled *float64 `json:"containers_filled"`
}

type GroupSubmissionRequest struct {
	GroupID       string        `json:"group_id"`
	Date          string        `json:"date"`
	SpeciesID     string        `json:"species_id"`
	HarvestTypeID string        `json:"harvest_type_id"`
	Entries       []WorkerEntry `json:"entries"`
}

func (r *GroupSubmissionRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.GroupID) {
		errs = append(errs, validator.ValidationError{
			Field:   "group_id",
			Message: "group_id is required",
		})
	}
	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}
	if validator.IsEmpty(r.SpeciesID) {
		errs = append(errs, validator.ValidationError{
			Field:   "species_id",
			Message: "species_id is required",
		})
	}
	if validator.IsEmpty(r.HarvestTypeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "harvest_type_id",
			Message: "harvest_type_id is required",
		})
	}
	if len(r.Entries) == 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "entries",
			Message: "at least one worker entry is required",
		})
	}
	for i, entry := range r.Entries {
		prefix := "entries[" + strconv.Itoa(i) + "]"
		if validator.IsEmpty(entry.WorkerID) {
			errs = append(errs, validator.ValidationError{
				Field:   prefix + ".worker_id",
				Message: "worker_id is required",
			})
		}
		if !validator.IsInSlice(entry.Status, StatusValues) {
			errs = append(errs, validator.ValidationError{
				Field:   prefix + ".status",
				Message: "status must be one of WORKING, SICK_LEAVE, DAY_OFF, ABSENT, HOLIDAY, INTER_VISA",
			})
		}
		if entry.Status == string(StatusWorking) && (entry.ContainersFilled == nil || *entry.ContainersFilled < 0) {
			errs = append(errs, validator.ValidationError{
				Field:   prefix + ".containers_filled",
				Message: "containers_filled is required and must be >= 0 for WORKING status",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// WorkerResult reports the outcome for one worker in a group submission.
// Failures do not abort the batch.
type WorkerResult struct {
	WorkerID     string  `json:"worker_id"`
	Success      bool    `json:"success"`
	AttendanceID *string `json:"attendance_id,omitempty"`
	Error        *string `json:"error,omitempty"`
}

type GroupSubmissionResponse struct {
	OK      bool           `json:"ok"`
	Results []WorkerResult `json:"results"`
}

type ApproveAttendanceRequest struct {
	ID string `json:"id"`
}

type RejectAttendanceRequest struct {
	ID              string `json:"id"`
	RejectionReason string `json:"rejection_reason"`
}

func (r *RejectAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}
	if validator.IsEmpty(r.RejectionReason) {
		errs = append(errs, validator.ValidationError{
			Field:   "rejection_reason",
			Message: "rejection_reason is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// CorrectAttendanceRequest carries the whitelist of editable fields. Any
// field left nil is not changed; dependent fields are recomputed.
type CorrectAttendanceRequest struct {
	ID                 string   `json:"id"`
	ContainersFilled   *float64 `json:"containers_filled"`
	StartTimeInMinutes *int     `json:"start_time_in_minutes"`
	EndTimeInMinutes   *int     `json:"end_time_in_minutes"`
	BreakTimeInMinutes *int     `json:"break_time_in_minutes"`
	TotalHoursWorked   *float64 `json:"total_hours_worked"`
}

func (r *CorrectAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}
	if r.ContainersFilled != nil && *r.ContainersFilled < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "containers_filled",
			Message: "containers_filled must be >= 0",
		})
	}
	if r.StartTimeInMinutes != nil && !validator.IsValidTimeInMinutes(*r.StartTimeInMinutes) {
		errs = append(errs, validator.ValidationError{
			Field:   "start_time_in_minutes",
			Message: "start_time_in_minutes must be between 0 and 1440",
		})
	}
	if r.TotalHoursWorked != nil && (*r.TotalHoursWorked < 0 || *r.TotalHoursWorked > 24) {
		errs = append(errs, validator.ValidationError{
			Field:   "total_hours_worked",
			Message: "total_hours_worked must be between 0 and 24",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type AttendanceFilter struct {
	WorkerID       string
	GroupID        string
	DateFrom       string
	DateTo         string
	Status         string
	ApprovalStatus string
	Page           int
	Limit          int
}

type AttendanceResponse struct {
	ID                    string   `json:"id"`
	WorkerID              string   `json:"worker_id"`
	WorkerName            *string  `json:"worker_name,omitempty"`
	GroupID               string   `json:"group_id"`
	Date                  string   `json:"date"`
	Status                string   `json:"status"`
	TotalContainersFilled *float64 `json:"total_containers_filled"`
	StartTimeInMinutes    *int     `json:"start_time_in_minutes"`
	EndTimeInMinutes      *int     `json:"end_time_in_minutes"`
	BreakTimeInMinutes    *int     `json:"break_time_in_minutes"`
	TotalHoursWorked      *float64 `json:"total_hours_worked"`
	HoursWindow100        *float64 `json:"hours_window_100"`
	HoursWindow125        *float64 `json:"hours_window_125"`
	HoursWindow150        *float64 `json:"hours_window_150"`
	DailyWage             *string  `json:"daily_wage,omitempty"`
	ApprovalStatus        string   `json:"approval_status"`
	RejectionReason       *string  `json:"rejection_reason,omitempty"`
}

type ListAttendanceResponse struct {
	Items      []AttendanceResponse `json:"items"`
	TotalItems int64                `json:"total_items"`
}
