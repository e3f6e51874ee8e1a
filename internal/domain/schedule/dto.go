package schedule

import "github.com/tals012/agriculture-hrms-sub002/internal/pkg/validator"

type GenerateScheduleRequest struct {
	WorkerID           *string `json:"worker_id"`
	GroupID            *string `json:"group_id"`
	FieldID            *string `json:"field_id"`
	ClientID           *string `json:"client_id"`
	TotalHoursPerDay   float64 `json:"total_hours_per_day"`
	TotalDaysPerWeek   int     `json:"total_days_per_week"`
	StartTimeInMinutes int     `json:"start_time_in_minutes"`
	EndTimeInMinutes   int     `json:"end_time_in_minutes"`
	BreakTimeInMinutes int     `json:"break_time_in_minutes"`
	IsBreakTimePaid    bool    `json:"is_break_time_paid"`
}

func (r *GenerateScheduleRequest) Validate() error {
	var errs validator.ValidationErrors

	scopeCount := 0
	for _, id := range []*string{r.WorkerID, r.GroupID, r.FieldID, r.ClientID} {
		if id != nil && !validator.IsEmpty(*id) {
			scopeCount++
		}
	}
	if scopeCount > 1 {
		errs = append(errs, validator.ValidationError{
			Field:   "scope",
			Message: "at most one of worker_id, group_id, field_id, client_id may be set",
		})
	}

	if r.TotalHoursPerDay <= 0 || r.TotalHoursPerDay > 24 {
		errs = append(errs, validator.ValidationError{
			Field:   "total_hours_per_day",
			Message: "total_hours_per_day must be between 0 and 24",
		})
	}
	if r.TotalDaysPerWeek < 1 || r.TotalDaysPerWeek > 7 {
		errs = append(errs, validator.ValidationError{
			Field:   "total_days_per_week",
			Message: "total_days_per_week must be between 1 and 7",
		})
	}
	if !validator.IsValidTimeInMinutes(r.StartTimeInMinutes) {
		errs = append(errs, validator.ValidationError{
			Field:   "start_time_in_minutes",
			Message: "start_time_in_minutes must be between 0 and 1440",
		})
	}
	if !validator.IsValidTimeInMinutes(r.EndTimeInMinutes) || r.EndTimeInMinutes <= r.StartTimeInMinutes {
		errs = append(errs, validator.ValidationError{
			Field:   "end_time_in_minutes",
			Message: "end_time_in_minutes must be after start_time_in_minutes",
		})
	}
	if r.BreakTimeInMinutes < 0 || r.BreakTimeInMinutes > 240 {
		errs = append(errs, validator.ValidationError{
			Field:   "break_time_in_minutes",
			Message: "break_time_in_minutes must be between 0 and 240",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ResolveScheduleRequest struct {
	WorkerID *string `json:"worker_id"`
	GroupID  *string `json:"group_id"`
	FieldID  *string `json:"field_id"`
	ClientID *string `json:"client_id"`
}

type ScheduleResponse struct {
	ID                 string  `json:"id,omitempty"`
	Source             string  `json:"source"`
	TotalHoursPerDay   float64 `json:"total_hours_per_day"`
	TotalDaysPerWeek   int     `json:"total_days_per_week"`
	StartTimeInMinutes int     `json:"start_time_in_minutes"`
	EndTimeInMinutes   int     `json:"end_time_in_minutes"`
	BreakTimeInMinutes int     `json:"break_time_in_minutes"`
	IsBreakTimePaid    bool    `json:"is_break_time_paid"`
	IsFallback         bool    `json:"is_fallback"`
}
