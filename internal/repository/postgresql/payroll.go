package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tals012/agriculture-hrms-sub002/internal/domain/payroll"
	"github.com/tals012/agriculture-hrms-sub002/internal/pkg/database"
)

type monthlySubmissionRepositoryImpl struct {
	db *database.DB
}

func NewMonthlySubmissionRepository(db *database.DB) payroll.MonthlySubmissionRepository {
	return &monthlySubmissionRepositoryImpl{db: db}
}

const monthlySubmissionColumns = `
	ms.id, ms.organization_id, ms.worker_id, ms.month_year,
	ms.total_containers, ms.total_base_salary, ms.bonus,
	ms.hours_window_100, ms.hours_window_125, ms.hours_window_150,
	ms.worked_days, ms.sick_days, ms.approval_status, ms.send_status,
	ms.send_error, ms.sent_at, ms.created_at, ms.updated_at,
	w.passport_number, w.first_name, w.last_name
`

func scanMonthlySubmission(row pgx.Row) (payroll.MonthlySubmission, error) {
	var s payroll.MonthlySubmission
	err := row.Scan(
		&s.ID, &s.OrganizationID, &s.WorkerID, &s.MonthYear,
		&s.TotalContainers, &s.TotalBaseSalary, &s.Bonus,
		&s.HoursWindow100, &s.HoursWindow125, &s.HoursWindow150,
		&s.WorkedDays, &s.SickDays, &s.ApprovalStatus, &s.SendStatus,
		&s.SendError, &s.SentAt, &s.CreatedAt, &s.UpdatedAt,
		&s.WorkerPassport, &s.WorkerFirstName, &s.WorkerLastName,
	)
	return s, err
}

// Upsert implements payroll.MonthlySubmissionRepository.
//
// Re-aggregating a month overwrites the totals and resets the approval and
// send state, so the dispatch job never sends stale numbers.
func (r *monthlySubmissionRepositoryImpl) Upsert(ctx context.Context, s payroll.MonthlySubmission) (payroll.MonthlySubmission, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO monthly_submissions (
			id, organization_id, worker_id, month_year,
			total_containers, total_base_salary, bonus,
			hours_window_100, hours_window_125, hours_window_150,
			worked_days, sick_days, approval_status, send_status,
			created_at, updated_at
		)
		VALUES (
			gen_random_uuid(), $1, $2, $3, $4, $5, $6, $7, $8, $9,
			$10, $11, $12, $13, NOW(), NOW()
		)
		ON CONFLICT (worker_id, month_year) DO UPDATE SET
			total_containers = EXCLUDED.total_containers,
			total_base_salary = EXCLUDED.total_base_salary,
			bonus = EXCLUDED.bonus,
			hours_window_100 = EXCLUDED.hours_window_100,
			hours_window_125 = EXCLUDED.hours_window_125,
			hours_window_150 = EXCLUDED.hours_window_150,
			worked_days = EXCLUDED.worked_days,
			sick_days = EXCLUDED.sick_days,
			approval_status = EXCLUDED.approval_status,
			send_status = EXCLUDED.send_status,
			send_error = NULL,
			updated_at = NOW()
		RETURNING id, organization_id, worker_id, month_year,
			total_containers, total_base_salary, bonus,
			hours_window_100, hours_window_125, hours_window_150,
			worked_days, sick_days, approval_status, send_status,
			send_error, sent_at, created_at, updated_at
	`

	var result payroll.MonthlySubmission
	err := q.QueryRow(ctx, query,
		s.OrganizationID, s.WorkerID, s.MonthYear,
		s.TotalContainers, s.TotalBaseSalary, s.Bonus,
		s.HoursWindow100, s.HoursWindow125, s.HoursWindow150,
		s.WorkedDays, s.SickDays, s.ApprovalStatus, s.SendStatus,
	).Scan(
		&result.ID, &result.OrganizationID, &result.WorkerID, &result.MonthYear,
		&result.TotalContainers, &result.TotalBaseSalary, &result.Bonus,
		&result.HoursWindow100, &result.HoursWindow125, &result.HoursWindow150,
		&result.WorkedDays, &result.SickDays, &result.ApprovalStatus, &result.SendStatus,
		&result.SendError, &result.SentAt, &result.CreatedAt, &result.UpdatedAt,
	)

	if err != nil {
		return payroll.MonthlySubmission{}, fmt.Errorf("failed to upsert monthly submission: %w", err)
	}

	return result, nil
}

// GetByWorkerAndMonth implements payroll.MonthlySubmissionRepository.
func (r *monthlySubmissionRepositoryImpl) GetByWorkerAndMonth(ctx context.Context, workerID, monthYear string, organizationID string) (payroll.MonthlySubmission, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s
		FROM monthly_submissions ms
		LEFT JOIN workers w ON w.id = ms.worker_id
		WHERE ms.worker_id = $1 AND ms.month_year = $2 AND ms.organization_id = $3
	`, monthlySubmissionColumns)

	s, err := scanMonthlySubmission(q.QueryRow(ctx, query, workerID, monthYear, organizationID))
	if errors.Is(err, pgx.ErrNoRows) {
		return payroll.MonthlySubmission{}, payroll.ErrSubmissionNotFound
	}
	if err != nil {
		return payroll.MonthlySubmission{}, fmt.Errorf("failed to get monthly submission: %w", err)
	}

	return s, nil
}

// ListByMonth implements payroll.MonthlySubmissionRepository.
func (r *monthlySubmissionRepositoryImpl) ListByMonth(ctx context.Context, monthYear string, organizationID string) ([]payroll.MonthlySubmission, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s
		FROM monthly_submissions ms
		LEFT JOIN workers w ON w.id = ms.worker_id
		WHERE ms.month_year = $1 AND ms.organization_id = $2
		ORDER BY w.last_name ASC, w.first_name ASC
	`, monthlySubmissionColumns)

	rows, err := q.Query(ctx, query, monthYear, organizationID)
	if err != nil {
		return nil, fmt.Errorf("failed to list monthly submissions: %w", err)
	}
	defer rows.Close()

	var list []payroll.MonthlySubmission
	for rows.Next() {
		s, err := scanMonthlySubmission(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan monthly submission: %w", err)
		}
		list = append(list, s)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return list, nil
}

// MarkPendingSend implements payroll.MonthlySubmissionRepository.
func (r *monthlySubmissionRepositoryImpl) MarkPendingSend(ctx context.Context, workerIDs []string, monthYear string, organizationID string) (int64, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE monthly_submissions
		SET send_status = $1, send_error = NULL, updated_at = NOW()
		WHERE worker_id = ANY($2) AND month_year = $3 AND organization_id = $4
			AND send_status <> $5
	`

	commandTag, err := q.Exec(ctx, query,
		payroll.SendStatusPendingSend, workerIDs, monthYear, organizationID,
		payroll.SendStatusSent,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to mark submissions pending send: %w", err)
	}

	return commandTag.RowsAffected(), nil
}

// ListPendingSend implements payroll.MonthlySubmissionRepository.
func (r *monthlySubmissionRepositoryImpl) ListPendingSend(ctx context.Context, limit int) ([]payroll.MonthlySubmission, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s
		FROM monthly_submissions ms
		LEFT JOIN workers w ON w.id = ms.worker_id
		WHERE ms.send_status = $1
		ORDER BY ms.updated_at ASC
		LIMIT $2
	`, monthlySubmissionColumns)

	rows, err := q.Query(ctx, query, payroll.SendStatusPendingSend, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending submissions: %w", err)
	}
	defer rows.Close()

	var list []payroll.MonthlySubmission
	for rows.Next() {
		s, err := scanMonthlySubmission(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan monthly submission: %w", err)
		}
		list = append(list, s)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return list, nil
}

// MarkSent implements payroll.MonthlySubmissionRepository.
func (r *monthlySubmissionRepositoryImpl) MarkSent(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE monthly_submissions
		SET send_status = $1, send_error = NULL, sent_at = NOW(), updated_at = NOW()
		WHERE id = $2
	`

	commandTag, err := q.Exec(ctx, query, payroll.SendStatusSent, id)
	if err != nil {
		return fmt.Errorf("failed to mark submission sent: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return payroll.ErrSubmissionNotFound
	}

	return nil
}

// MarkFailed implements payroll.MonthlySubmissionRepository.
func (r *monthlySubmissionRepositoryImpl) MarkFailed(ctx context.Context, id string, sendError string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE monthly_submissions
		SET send_status = $1, send_error = $2, updated_at = NOW()
		WHERE id = $3
	`

	commandTag, err := q.Exec(ctx, query, payroll.SendStatusFailed, sendError, id)
	if err != nil {
		return fmt.Errorf("failed to mark submission failed: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return payroll.ErrSubmissionNotFound
	}

	return nil
}
