package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/tals012/agriculture-hrms-sub002/internal/domain/auth"
	"github.com/tals012/agriculture-hrms-sub002/internal/domain/schedule"
	"github.com/tals012/agriculture-hrms-sub002/internal/handler/http/response"
)

type ScheduleHandler interface {
	GenerateSchedule(w http.ResponseWriter, r *http.Request)
	ResolveSchedule(w http.ResponseWriter, r *http.Request)
}

type scheduleHandlerImpl struct {
	scheduleService schedule.ScheduleService
}

func NewScheduleHandler(scheduleService schedule.ScheduleService) ScheduleHandler {
	return &scheduleHandlerImpl{scheduleService: scheduleService}
}

func (h *scheduleHandlerImpl) GenerateSchedule(w http.ResponseWriter, r *http.Request) {
	var req schedule.GenerateScheduleRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.scheduleService.Generate(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Working schedule created successfully", result)
}

func (h *scheduleHandlerImpl) ResolveSchedule(w http.ResponseWriter, r *http.Request) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}
	organizationID, ok := claims["organization_id"].(string)
	if !ok || organizationID == "" {
		response.HandleError(w, auth.ErrOrganizationMissing)
		return
	}

	ref := schedule.ScopeRef{OrganizationID: organizationID}
	if v := r.URL.Query().Get("worker_id"); v != "" {
		ref.WorkerID = &v
	}
	if v := r.URL.Query().Get("group_id"); v != "" {
		ref.GroupID = &v
	}
	if v := r.URL.Query().Get("field_id"); v != "" {
		ref.FieldID = &v
	}
	if v := r.URL.Query().Get("client_id"); v != "" {
		ref.ClientID = &v
	}

	resolved, err := h.scheduleService.Resolve(r.Context(), ref)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result := schedule.ScheduleResponse{
		ID:                 resolved.Schedule.ID,
		Source:             string(resolved.Schedule.Source),
		TotalHoursPerDay:   resolved.Schedule.TotalHoursPerDay,
		TotalDaysPerWeek:   resolved.Schedule.TotalDaysPerWeek,
		StartTimeInMinutes: resolved.Schedule.StartTimeInMinutes,
		EndTimeInMinutes:   resolved.Schedule.EndTimeInMinutes,
		BreakTimeInMinutes: resolved.Schedule.BreakTimeInMinutes,
		IsBreakTimePaid:    resolved.Schedule.IsBreakTimePaid,
		IsFallback:         resolved.IsFallback,
	}

	response.Success(w, result)
}
