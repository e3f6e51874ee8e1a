package attendance

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/shopspring/decimal"
	"github.com/tals012/agriculture-hrms-sub002/internal/domain/attendance"
	"github.com/tals012/agriculture-hrms-sub002/internal/domain/auth"
	"github.com/tals012/agriculture-hrms-sub002/internal/domain/group"
	"github.com/tals012/agriculture-hrms-sub002/internal/domain/pricing"
	"github.com/tals012/agriculture-hrms-sub002/internal/domain/schedule"
	"golang.org/x/sync/errgroup"
)

// submissionConcurrency bounds the worker fan-out of a group submission so a
// large crew does not exhaust the connection pool.
const submissionConcurrency = 8

type AttendanceServiceImpl struct {
	attendance.AttendanceRepository
	group.GroupRepository
	pricing.CombinationRepository
	scheduleService schedule.ScheduleService
}

func NewAttendanceService(
	attendanceRepo attendance.AttendanceRepository,
	groupRepo group.GroupRepository,
	combinationRepo pricing.CombinationRepository,
	scheduleService schedule.ScheduleService,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		AttendanceRepository:  attendanceRepo,
		GroupRepository:       groupRepo,
		CombinationRepository: combinationRepo,
		scheduleService:       scheduleService,
	}
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

func userIDFromContext(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}
	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return "", auth.ErrInvalidToken
	}
	return userID, nil
}

// SubmitGroupAttendance implements attendance.AttendanceService.
//
// Workers are processed independently: one worker failing membership,
// duplicate or pricing checks never rejects the rest of the crew. The
// response always reports ok with a per-worker result list.
func (s *AttendanceServiceImpl) SubmitGroupAttendance(ctx context.Context, req attendance.GroupSubmissionRequest) (attendance.GroupSubmissionResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.GroupSubmissionResponse{}, err
	}

	organizationID, err := organizationIDFromContext(ctx)
	if err != nil {
		return attendance.GroupSubmissionResponse{}, err
	}

	g, err := s.GroupRepository.GetByID(ctx, req.GroupID, organizationID)
	if err != nil {
		return attendance.GroupSubmissionResponse{}, err
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return attendance.GroupSubmissionResponse{}, fmt.Errorf("failed to parse date: %w", err)
	}

	memberIDs, err := s.GroupRepository.GetActiveMemberWorkerIDs(ctx, g.ID)
	if err != nil {
		return attendance.GroupSubmissionResponse{}, fmt.Errorf("failed to get group members: %w", err)
	}
	members := make(map[string]struct{}, len(memberIDs))
	for _, id := range memberIDs {
		members[id] = struct{}{}
	}

	// One pricing lookup covers the whole submission; it is only needed
	// for WORKING entries.
	combo, err := s.CombinationRepository.GetByKey(ctx, g.ClientID, req.SpeciesID, req.HarvestTypeID, organizationID)
	hasPricing := err == nil
	if err != nil && !errors.Is(err, pricing.ErrCombinationNotFound) {
		return attendance.GroupSubmissionResponse{}, err
	}

	results := make([]attendance.WorkerResult, len(req.Entries))

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(submissionConcurrency)

	for i, entry := range req.Entries {
		i, entry := i, entry
		eg.Go(func() error {
			record, err := s.processEntry(egCtx, entry, g, date, combo, hasPricing, members, organizationID)
			if err != nil {
				msg := err.Error()
				results[i] = attendance.WorkerResult{WorkerID: entry.WorkerID, Error: &msg}
				return nil
			}
			results[i] = attendance.WorkerResult{
				WorkerID:     entry.WorkerID,
				Success:      true,
				AttendanceID: &record.ID,
			}
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return attendance.GroupSubmissionResponse{}, err
	}

	return attendance.GroupSubmissionResponse{OK: true, Results: results}, nil
}

func (s *AttendanceServiceImpl) processEntry(
	ctx context.Context,
	entry attendance.WorkerEntry,
	g group.Group,
	date time.Time,
	combo pricing.Combination,
	hasPricing bool,
	members map[string]struct{},
	organizationID string,
) (attendance.WorkerAttendance, error) {
	if _, ok := members[entry.WorkerID]; !ok {
		return attendance.WorkerAttendance{}, attendance.ErrNotGroupMember
	}

	existing, err := s.AttendanceRepository.GetByWorkerDateGroup(ctx, entry.WorkerID, date, g.ID, organizationID)
	if err != nil {
		return attendance.WorkerAttendance{}, err
	}
	if existing != nil {
		return attendance.WorkerAttendance{}, attendance.ErrAttendanceExists
	}

	record := attendance.WorkerAttendance{
		OrganizationID: organizationID,
		WorkerID:       entry.WorkerID,
		GroupID:        g.ID,
		AttendanceDate: date,
		Status:         attendance.Status(entry.Status),
		ApprovalStatus: attendance.ApprovalPending,
	}

	if record.Status == attendance.StatusWorking {
		if !hasPricing {
			return attendance.WorkerAttendance{}, attendance.ErrPricingNotFound
		}

		resolved, err := s.scheduleService.Resolve(ctx, schedule.ScopeRef{
			OrganizationID: organizationID,
			WorkerID:       &entry.WorkerID,
			GroupID:        &g.ID,
			FieldID:        g.FieldID,
			ClientID:       &g.ClientID,
		})
		if err != nil {
			return attendance.WorkerAttendance{}, err
		}

		hours := HoursFromContainers(*entry.ContainersFilled, combo.ContainerNorm)
		windows := SplitHours(hours)
		base := BaseWage(combo.HourlyRate(), windows)
		wage := DailyWage(combo.HourlyRate(), windows)

		// End time follows the actual hours worked, not the schedule's
		// nominal end.
		endTime := resolved.Schedule.StartTimeInMinutes + int(math.Round(hours*60))

		record.CombinationID = &combo.ID
		record.TotalContainersFilled = entry.ContainersFilled
		record.StartTimeInMinutes = &resolved.Schedule.StartTimeInMinutes
		record.EndTimeInMinutes = &endTime
		record.BreakTimeInMinutes = &resolved.Schedule.BreakTimeInMinutes
		record.TotalHoursWorked = &windows.Total
		record.HoursWindow100 = &windows.Window100
		record.HoursWindow125 = &windows.Window125
		record.HoursWindow150 = &windows.Window150
		record.BaseWage = &base
		record.DailyWage = &wage
	}

	return s.AttendanceRepository.Create(ctx, record)
}

// GetAttendance implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) GetAttendance(ctx context.Context, id string) (attendance.AttendanceResponse, error) {
	organizationID, err := organizationIDFromContext(ctx)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	record, err := s.AttendanceRepository.GetByID(ctx, id, organizationID)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	return toAttendanceResponse(record), nil
}

// ListAttendance implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ListAttendance(ctx context.Context, filter attendance.AttendanceFilter) (attendance.ListAttendanceResponse, error) {
	organizationID, err := organizationIDFromContext(ctx)
	if err != nil {
		return attendance.ListAttendanceResponse{}, err
	}

	records, total, err := s.AttendanceRepository.List(ctx, filter, organizationID)
	if err != nil {
		return attendance.ListAttendanceResponse{}, err
	}

	items := make([]attendance.AttendanceResponse, 0, len(records))
	for _, record := range records {
		items = append(items, toAttendanceResponse(record))
	}

	return attendance.ListAttendanceResponse{Items: items, TotalItems: total}, nil
}

// ApproveAttendance implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ApproveAttendance(ctx context.Context, req attendance.ApproveAttendanceRequest) (attendance.AttendanceResponse, error) {
	organizationID, err := organizationIDFromContext(ctx)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	userID, err := userIDFromContext(ctx)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	record, err := s.AttendanceRepository.GetByID(ctx, req.ID, organizationID)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	if record.ApprovalStatus != attendance.ApprovalPending {
		return attendance.AttendanceResponse{}, attendance.ErrAlreadyProcessed
	}

	now := time.Now().UTC()
	record.ApprovalStatus = attendance.ApprovalApproved
	record.ApprovedBy = &userID
	record.ApprovedAt = &now
	record.RejectionReason = nil

	if err := s.AttendanceRepository.Update(ctx, record); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	return toAttendanceResponse(record), nil
}

// RejectAttendance implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) RejectAttendance(ctx context.Context, req attendance.RejectAttendanceRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	organizationID, err := organizationIDFromContext(ctx)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	userID, err := userIDFromContext(ctx)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	record, err := s.AttendanceRepository.GetByID(ctx, req.ID, organizationID)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	if record.ApprovalStatus != attendance.ApprovalPending {
		return attendance.AttendanceResponse{}, attendance.ErrAlreadyProcessed
	}

	now := time.Now().UTC()
	record.ApprovalStatus = attendance.ApprovalRejected
	record.ApprovedBy = &userID
	record.ApprovedAt = &now
	record.RejectionReason = &req.RejectionReason

	if err := s.AttendanceRepository.Update(ctx, record); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	return toAttendanceResponse(record), nil
}

// CorrectAttendance implements attendance.AttendanceService. Only the fields
// in the request whitelist can change; hour windows and the daily wage are
// recomputed, and the record returns to PENDING approval.
func (s *AttendanceServiceImpl) CorrectAttendance(ctx context.Context, req attendance.CorrectAttendanceRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	organizationID, err := organizationIDFromContext(ctx)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	record, err := s.AttendanceRepository.GetByID(ctx, req.ID, organizationID)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	if req.StartTimeInMinutes != nil {
		record.StartTimeInMinutes = req.StartTimeInMinutes
	}
	if req.EndTimeInMinutes != nil {
		record.EndTimeInMinutes = req.EndTimeInMinutes
	}
	if req.BreakTimeInMinutes != nil {
		record.BreakTimeInMinutes = req.BreakTimeInMinutes
	}

	recompute := false
	if req.ContainersFilled != nil {
		record.TotalContainersFilled = req.ContainersFilled
		recompute = true
	}
	if req.TotalHoursWorked != nil {
		record.TotalHoursWorked = req.TotalHoursWorked
		recompute = true
	}

	if recompute {
		if record.CombinationID == nil {
			return attendance.AttendanceResponse{}, attendance.ErrPricingNotFound
		}
		combo, err := s.CombinationRepository.GetByID(ctx, *record.CombinationID, organizationID)
		if err != nil {
			return attendance.AttendanceResponse{}, err
		}

		var hours float64
		if req.TotalHoursWorked != nil {
			// An explicit hour override wins over the container count.
			hours = *req.TotalHoursWorked
		} else {
			hours = HoursFromContainers(*record.TotalContainersFilled, combo.ContainerNorm)
		}

		windows := SplitHours(hours)
		base := BaseWage(combo.HourlyRate(), windows)
		wage := DailyWage(combo.HourlyRate(), windows)

		record.TotalHoursWorked = &windows.Total
		record.HoursWindow100 = &windows.Window100
		record.HoursWindow125 = &windows.Window125
		record.HoursWindow150 = &windows.Window150
		record.BaseWage = &base
		record.DailyWage = &wage

		// The end time tracks the corrected hours unless the caller set
		// it explicitly.
		if req.EndTimeInMinutes == nil && record.StartTimeInMinutes != nil {
			endTime := *record.StartTimeInMinutes + int(math.Round(windows.Total*60))
			record.EndTimeInMinutes = &endTime
		}
	}

	record.ApprovalStatus = attendance.ApprovalPending
	record.ApprovedBy = nil
	record.ApprovedAt = nil
	record.RejectionReason = nil

	if err := s.AttendanceRepository.Update(ctx, record); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	return toAttendanceResponse(record), nil
}

// DeleteAttendance implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) DeleteAttendance(ctx context.Context, id string) error {
	organizationID, err := organizationIDFromContext(ctx)
	if err != nil {
		return err
	}

	return s.AttendanceRepository.Delete(ctx, id, organizationID)
}

func decimalPtrToString(d *decimal.Decimal) *string {
	if d == nil {
		return nil
	}
	s := d.StringFixed(2)
	return &s
}

func toAttendanceResponse(record attendance.WorkerAttendance) attendance.AttendanceResponse {
	return attendance.AttendanceResponse{
		ID:                    record.ID,
		WorkerID:              record.WorkerID,
		WorkerName:            record.WorkerName,
		GroupID:               record.GroupID,
		Date:                  record.AttendanceDate.Format("2006-01-02"),
		Status:                string(record.Status),
		TotalContainersFilled: record.TotalContainersFilled,
		StartTimeInMinutes:    record.StartTimeInMinutes,
		EndTimeInMinutes:      record.EndTimeInMinutes,
		BreakTimeInMinutes:    record.BreakTimeInMinutes,
		TotalHoursWorked:      record.TotalHoursWorked,
		HoursWindow100:        record.HoursWindow100,
		HoursWindow125:        record.HoursWindow125,
		HoursWindow150:        record.HoursWindow150,
		DailyWage:             decimalPtrToString(record.DailyWage),
		ApprovalStatus:        string(record.ApprovalStatus),
		RejectionReason:       record.RejectionReason,
	}
}
