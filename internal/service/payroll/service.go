package payroll

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/go-chi/jwtauth/v5"
	"github.com/shopspring/decimal"
	"github.com/tals012/agriculture-hrms-sub002/internal/domain/attendance"
	"github.com/tals012/agriculture-hrms-sub002/internal/domain/auth"
	"github.com/tals012/agriculture-hrms-sub002/internal/domain/payroll"
	"github.com/tals012/agriculture-hrms-sub002/internal/domain/worker"
	"github.com/tals012/agriculture-hrms-sub002/internal/pkg/salary"
)

type PayrollServiceImpl struct {
	payroll.MonthlySubmissionRepository
	attendance.AttendanceRepository
	worker.WorkerRepository
	salaryClient *salary.Client
	batchSize    int
	logger       *slog.Logger
}

func NewPayrollService(
	submissionRepo payroll.MonthlySubmissionRepository,
	attendanceRepo attendance.AttendanceRepository,
	workerRepo worker.WorkerRepository,
	salaryClient *salary.Client,
	batchSize int,
	logger *slog.Logger,
) payroll.PayrollService {
	if batchSize <= 0 {
		batchSize = 20
	}
	return &PayrollServiceImpl{
		MonthlySubmissionRepository: submissionRepo,
		AttendanceRepository:        attendanceRepo,
		WorkerRepository:            workerRepo,
		salaryClient:                salaryClient,
		batchSize:                   batchSize,
		logger:                      logger,
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

// AggregateMonth implements payroll.PayrollService.
//
// Each worker's approved attendance for the period collapses into a single
// MonthlySubmission keyed by (worker, month-year). Re-running after
// corrections overwrites the previous totals instead of duplicating rows.
func (s *PayrollServiceImpl) AggregateMonth(ctx context.Context, req payroll.AggregateMonthRequest) ([]payroll.MonthlySubmissionResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	organizationID, err := organizationIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	from, to := payroll.PeriodBounds(req.Month, req.Year)
	monthYear := payroll.MonthYearOf(req.Month, req.Year)

	records, err := s.AttendanceRepository.ListApprovedInRange(ctx, req.WorkerIDs, from, to, organizationID)
	if err != nil {
		return nil, fmt.Errorf("failed to list approved attendance: %w", err)
	}
	if len(records) == 0 {
		return nil, payroll.ErrNothingToAggregate
	}

	totals := make(map[string]*payroll.MonthlySubmission)
	order := make([]string, 0)

	for _, record := range records {
		t, ok := totals[record.WorkerID]
		if !ok {
			t = &payroll.MonthlySubmission{
				OrganizationID:  organizationID,
				WorkerID:        record.WorkerID,
				MonthYear:       monthYear,
				TotalBaseSalary: decimal.Zero,
				Bonus:           decimal.Zero,
				ApprovalStatus:  payroll.ApprovalPending,
				SendStatus:      payroll.SendStatusNotSent,
			}
			totals[record.WorkerID] = t
			order = append(order, record.WorkerID)
		}

		switch record.Status {
		case attendance.StatusWorking:
			t.WorkedDays++
			if record.TotalContainersFilled != nil {
				t.TotalContainers += *record.TotalContainersFilled
			}
			if record.HoursWindow100 != nil {
				t.HoursWindow100 += *record.HoursWindow100
			}
			if record.HoursWindow125 != nil {
				t.HoursWindow125 += *record.HoursWindow125
			}
			if record.HoursWindow150 != nil {
				t.HoursWindow150 += *record.HoursWindow150
			}
			// Only the 100%-window component feeds the base salary; the
			// overtime windows are priced by the salary system from the
			// hour totals sent alongside.
			if record.BaseWage != nil {
				t.TotalBaseSalary = t.TotalBaseSalary.Add(*record.BaseWage)
			}
		case attendance.StatusSickLeave:
			t.SickDays++
		}
	}

	responses := make([]payroll.MonthlySubmissionResponse, 0, len(order))
	for _, workerID := range order {
		upserted, err := s.MonthlySubmissionRepository.Upsert(ctx, *totals[workerID])
		if err != nil {
			return nil, fmt.Errorf("failed to upsert monthly submission: %w", err)
		}
		responses = append(responses, toSubmissionResponse(upserted))
	}

	return responses, nil
}

// QueueSend implements payroll.PayrollService. Submissions are flagged
// PENDING_SEND and the cron dispatch job delivers them asynchronously.
func (s *PayrollServiceImpl) QueueSend(ctx context.Context, req payroll.SendToSalaryRequest) (int64, error) {
	if err := req.Validate(); err != nil {
		return 0, err
	}

	if !s.salaryClient.Enabled() {
		return 0, payroll.ErrSalarySystemDisabled
	}

	organizationID, err := organizationIDFromContext(ctx)
	if err != nil {
		return 0, err
	}

	monthYear := payroll.MonthYearOf(req.Month, req.Year)

	queued, err := s.MonthlySubmissionRepository.MarkPendingSend(ctx, req.SelectedWorkerIDs, monthYear, organizationID)
	if err != nil {
		return 0, fmt.Errorf("failed to queue submissions: %w", err)
	}
	if queued == 0 {
		return 0, payroll.ErrSubmissionNotFound
	}

	return queued, nil
}

// DispatchPending implements payroll.PayrollService. It drains the
// PENDING_SEND queue in fixed-size batches; each submission is marked SENT
// or FAILED individually so one bad row never blocks the rest.
func (s *PayrollServiceImpl) DispatchPending(ctx context.Context) error {
	if !s.salaryClient.Enabled() {
		return payroll.ErrSalarySystemDisabled
	}

	for {
		batch, err := s.MonthlySubmissionRepository.ListPendingSend(ctx, s.batchSize)
		if err != nil {
			return fmt.Errorf("failed to list pending submissions: %w", err)
		}
		if len(batch) == 0 {
			return nil
		}

		s.logger.Info("dispatching salary batch", "count", len(batch))

		for _, submission := range batch {
			if err := s.dispatchOne(ctx, submission); err != nil {
				s.logger.Error("salary dispatch failed",
					"submission_id", submission.ID,
					"worker_id", submission.WorkerID,
					"error", err,
				)
				if markErr := s.MonthlySubmissionRepository.MarkFailed(ctx, submission.ID, err.Error()); markErr != nil {
					return fmt.Errorf("failed to mark submission failed: %w", markErr)
				}
				continue
			}
			if err := s.MonthlySubmissionRepository.MarkSent(ctx, submission.ID); err != nil {
				return fmt.Errorf("failed to mark submission sent: %w", err)
			}
		}

		if len(batch) < s.batchSize {
			return nil
		}
	}
}

func (s *PayrollServiceImpl) dispatchOne(ctx context.Context, submission payroll.MonthlySubmission) error {
	w, err := s.WorkerRepository.GetByID(ctx, submission.WorkerID, submission.OrganizationID)
	if err != nil {
		return fmt.Errorf("failed to get worker: %w", err)
	}

	firstName := w.FirstName
	if w.FirstNameHe != nil && *w.FirstNameHe != "" {
		firstName = *w.FirstNameHe
	}
	lastName := w.LastName
	if w.LastNameHe != nil && *w.LastNameHe != "" {
		lastName = *w.LastNameHe
	}

	return s.salaryClient.SubmitMonthly(ctx, salary.MonthlyPayload{
		MisparTZ:      w.PassportNumber,
		ShemMishpacha: lastName,
		ShemPrati:     firstName,
		Chodesh:       submission.MonthYear,
		Shaot100:      submission.HoursWindow100,
		Shaot125:      submission.HoursWindow125,
		Shaot150:      submission.HoursWindow150,
		YemeiAvoda:    submission.WorkedDays,
		YemeiMachala:  submission.SickDays,
		SchumBasis:    submission.TotalBaseSalary.StringFixed(2),
		Bonus:         submission.Bonus.StringFixed(2),
	})
}

// RegisterWorker implements payroll.PayrollService.
func (s *PayrollServiceImpl) RegisterWorker(ctx context.Context, req payroll.RegisterWorkerRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	if !s.salaryClient.Enabled() {
		return payroll.ErrSalarySystemDisabled
	}

	organizationID, err := organizationIDFromContext(ctx)
	if err != nil {
		return err
	}

	w, err := s.WorkerRepository.GetByID(ctx, req.WorkerID, organizationID)
	if err != nil {
		return err
	}

	if w.SalarySystemID != nil && *w.SalarySystemID != "" {
		return worker.ErrAlreadyRegistered
	}
	if w.PassportNumber == "" || w.FirstNameHe == nil || *w.FirstNameHe == "" ||
		w.LastNameHe == nil || *w.LastNameHe == "" {
		return worker.ErrMissingSalaryDetails
	}

	phone := ""
	if w.Phone != nil {
		phone = *w.Phone
	}

	systemID, err := s.salaryClient.RegisterWorker(ctx, salary.RegisterPayload{
		MisparTZ:      w.PassportNumber,
		ShemMishpacha: *w.LastNameHe,
		ShemPrati:     *w.FirstNameHe,
		Telefon:       phone,
	})
	if err != nil {
		return fmt.Errorf("failed to register worker with salary system: %w", err)
	}
	if systemID == "" {
		systemID = w.PassportNumber
	}

	if err := s.WorkerRepository.SetSalarySystemID(ctx, w.ID, systemID); err != nil {
		return fmt.Errorf("failed to store salary system id: %w", err)
	}

	return nil
}

func toSubmissionResponse(s payroll.MonthlySubmission) payroll.MonthlySubmissionResponse {
	return payroll.MonthlySubmissionResponse{
		ID:              s.ID,
		WorkerID:        s.WorkerID,
		MonthYear:       s.MonthYear,
		TotalContainers: s.TotalContainers,
		TotalBaseSalary: s.TotalBaseSalary.StringFixed(2),
		Bonus:           s.Bonus.StringFixed(2),
		HoursWindow100:  s.HoursWindow100,
		HoursWindow125:  s.HoursWindow125,
		HoursWindow150:  s.HoursWindow150,
		WorkedDays:      s.WorkedDays,
		SickDays:        s.SickDays,
		ApprovalStatus:  string(s.ApprovalStatus),
		SendStatus:      string(s.SendStatus),
	}
}
