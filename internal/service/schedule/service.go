package schedule

import (
	"context"
	"fmt"

	"github.com/go-chi/jwtauth/v5"
	"github.com/tals012/agriculture-hrms-sub002/internal/domain/auth"
	"github.com/tals012/agriculture-hrms-sub002/internal/domain/schedule"
)

type ScheduleServiceImpl struct {
	schedule.WorkingScheduleRepository
}

func NewScheduleService(repo schedule.WorkingScheduleRepository) schedule.ScheduleService {
	return &ScheduleServiceImpl{WorkingScheduleRepository: repo}
}

func organizationIDFromContext(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}
	organizationID, ok := claims["organization_id"].(string)
	if !ok || organizationID == "" {
		return "", auth.ErrOrganizationMissing
	}
	return organizationID, nil
}

// sourceForRequest derives the scope from which request ids are set. The
// request validator already rejected more than one id.
func sourceForRequest(req schedule.GenerateScheduleRequest) (schedule.Source, *string) {
	switch {
	case req.WorkerID != nil && *req.WorkerID != "":
		return schedule.SourceWorker, req.WorkerID
	case req.GroupID != nil && *req.GroupID != "":
		return schedule.SourceGroup, req.GroupID
	case req.FieldID != nil && *req.FieldID != "":
		return schedule.SourceField, req.FieldID
	case req.ClientID != nil && *req.ClientID != "":
		return schedule.SourceClient, req.ClientID
	default:
		return schedule.SourceOrganization, nil
	}
}

// Generate implements schedule.ScheduleService. Schedule rows are immutable:
// changing a scope's schedule inserts a new row and resolution picks the
// newest one.
func (s *ScheduleServiceImpl) Generate(ctx context.Context, req schedule.GenerateScheduleRequest) (schedule.ScheduleResponse, error) {
	if err := req.Validate(); err != nil {
		return schedule.ScheduleResponse{}, err
	}

	organizationID, err := organizationIDFromContext(ctx)
	if err != nil {
		return schedule.ScheduleResponse{}, err
	}

	source, _ := sourceForRequest(req)

	row := schedule.WorkingSchedule{
		OrganizationID:     organizationID,
		Source:             source,
		WorkerID:           req.WorkerID,
		GroupID:            req.GroupID,
		FieldID:            req.FieldID,
		ClientID:           req.ClientID,
		TotalHoursPerDay:   req.TotalHoursPerDay,
		TotalDaysPerWeek:   req.TotalDaysPerWeek,
		StartTimeInMinutes: req.StartTimeInMinutes,
		EndTimeInMinutes:   req.EndTimeInMinutes,
		BreakTimeInMinutes: req.BreakTimeInMinutes,
		IsBreakTimePaid:    req.IsBreakTimePaid,
	}

	created, err := s.WorkingScheduleRepository.Create(ctx, row)
	if err != nil {
		return schedule.ScheduleResponse{}, err
	}

	return toResponse(created, false), nil
}

// Resolve implements schedule.ScheduleService. The most specific scope with a
// schedule row wins: worker, then group, then field, then client, then the
// organization-wide row. When nothing exists anywhere the hard-coded default
// is returned with IsFallback set.
func (s *ScheduleServiceImpl) Resolve(ctx context.Context, ref schedule.ScopeRef) (schedule.ResolvedSchedule, error) {
	lookups := []struct {
		source  schedule.Source
		scopeID *string
	}{
		{schedule.SourceWorker, ref.WorkerID},
		{schedule.SourceGroup, ref.GroupID},
		{schedule.SourceField, ref.FieldID},
		{schedule.SourceClient, ref.ClientID},
	}

	for _, l := range lookups {
		if l.scopeID == nil || *l.scopeID == "" {
			continue
		}
		row, err := s.WorkingScheduleRepository.GetLatestByScope(ctx, l.source, l.scopeID, ref.OrganizationID)
		if err != nil {
			return schedule.ResolvedSchedule{}, fmt.Errorf("failed to resolve %s schedule: %w", l.source, err)
		}
		if row != nil {
			return schedule.ResolvedSchedule{Schedule: *row}, nil
		}
	}

	row, err := s.WorkingScheduleRepository.GetLatestByScope(ctx, schedule.SourceOrganization, nil, ref.OrganizationID)
	if err != nil {
		return schedule.ResolvedSchedule{}, fmt.Errorf("failed to resolve organization schedule: %w", err)
	}
	if row != nil {
		return schedule.ResolvedSchedule{Schedule: *row}, nil
	}

	return schedule.ResolvedSchedule{
		Schedule:   schedule.FallbackSchedule(ref.OrganizationID),
		IsFallback: true,
	}, nil
}

func toResponse(row schedule.WorkingSchedule, isFallback bool) schedule.ScheduleResponse {
	return schedule.ScheduleResponse{
		ID:                 row.ID,
		Source:             string(row.Source),
		TotalHoursPerDay:   row.TotalHoursPerDay,
		TotalDaysPerWeek:   row.TotalDaysPerWeek,
		StartTimeInMinutes: row.StartTimeInMinutes,
		EndTimeInMinutes:   row.EndTimeInMinutes,
		BreakTimeInMinutes: row.BreakTimeInMinutes,
		IsBreakTimePaid:    row.IsBreakTimePaid,
		IsFallback:         isFallback,
	}
}
