package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/tals012/agriculture-hrms-sub002/internal/domain/attendance"
	"github.com/tals012/agriculture-hrms-sub002/internal/pkg/database"
)

type attendanceRepositoryImpl struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepositoryImpl{db: db}
}

const attendanceColumns = `
	wa.id, wa.organization_id, wa.worker_id, wa.group_id, wa.combination_id,
	wa.attendance_date, wa.status, wa.total_containers_filled,
	wa.start_time_in_minutes, wa.end_time_in_minutes, wa.break_time_in_minutes,
	wa.total_hours_worked, wa.hours_window_100, wa.hours_window_125,
	wa.hours_window_150, wa.base_wage, wa.daily_wage, wa.approval_status, wa.approved_by,
	wa.approved_at, wa.rejection_reason, wa.created_at, wa.updated_at,
	w.first_name || ' ' || w.last_name AS worker_name
`

func scanAttendance(row pgx.Row) (attendance.WorkerAttendance, error) {
	var a attendance.WorkerAttendance
	err := row.Scan(
		&a.ID, &a.OrganizationID, &a.WorkerID, &a.GroupID, &a.CombinationID,
		&a.AttendanceDate, &a.Status, &a.TotalContainersFilled,
		&a.StartTimeInMinutes, &a.EndTimeInMinutes, &a.BreakTimeInMinutes,
		&a.TotalHoursWorked, &a.HoursWindow100, &a.HoursWindow125,
		&a.HoursWindow150, &a.BaseWage, &a.DailyWage, &a.ApprovalStatus, &a.ApprovedBy,
		&a.ApprovedAt, &a.RejectionReason, &a.CreatedAt, &a.UpdatedAt,
		&a.WorkerName,
	)
	return a, err
}

// Create implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) Create(ctx context.Context, a attendance.WorkerAttendance) (attendance.WorkerAttendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO worker_attendances (
			id, organization_id, worker_id, group_id, combination_id,
			attendance_date, status, total_containers_filled,
			start_time_in_minutes, end_time_in_minutes, break_time_in_minutes,
			total_hours_worked, hours_window_100, hours_window_125,
			hours_window_150, base_wage, daily_wage, approval_status, created_at, updated_at
		)
		VALUES (
			gen_random_uuid(), $1, $2, $3, $4, $5, $6, $7, $8, $9, $10,
			$11, $12, $13, $14, $15, $16, $17, NOW(), NOW()
		)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		a.OrganizationID, a.WorkerID, a.GroupID, a.CombinationID,
		a.AttendanceDate, a.Status, a.TotalContainersFilled,
		a.StartTimeInMinutes, a.EndTimeInMinutes, a.BreakTimeInMinutes,
		a.TotalHoursWorked, a.HoursWindow100, a.HoursWindow125,
		a.HoursWindow150, a.BaseWage, a.DailyWage, a.ApprovalStatus,
	).Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return attendance.WorkerAttendance{}, attendance.ErrAttendanceExists
		}
		return attendance.WorkerAttendance{}, fmt.Errorf("failed to create attendance record: %w", err)
	}

	return a, nil
}

// GetByID implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) GetByID(ctx context.Context, id string, organizationID string) (attendance.WorkerAttendance, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s
		FROM worker_attendances wa
		LEFT JOIN workers w ON w.id = wa.worker_id
		WHERE wa.id = $1 AND wa.organization_id = $2
	`, attendanceColumns)

	a, err := scanAttendance(q.QueryRow(ctx, query, id, organizationID))
	if errors.Is(err, pgx.ErrNoRows) {
		return attendance.WorkerAttendance{}, attendance.ErrAttendanceNotFound
	}
	if err != nil {
		return attendance.WorkerAttendance{}, fmt.Errorf("failed to get attendance record: %w", err)
	}

	return a, nil
}

// GetByWorkerDateGroup implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) GetByWorkerDateGroup(ctx context.Context, workerID string, date time.Time, groupID string, organizationID string) (*attendance.WorkerAttendance, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s
		FROM worker_attendances wa
		LEFT JOIN workers w ON w.id = wa.worker_id
		WHERE wa.worker_id = $1 AND wa.attendance_date = $2 AND wa.group_id = $3
			AND wa.organization_id = $4
	`, attendanceColumns)

	a, err := scanAttendance(q.QueryRow(ctx, query, workerID, date, groupID, organizationID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get attendance record: %w", err)
	}

	return &a, nil
}

// Update implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) Update(ctx context.Context, a attendance.WorkerAttendance) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE worker_attendances
		SET status = $1,
			combination_id = $2,
			total_containers_filled = $3,
			start_time_in_minutes = $4,
			end_time_in_minutes = $5,
			break_time_in_minutes = $6,
			total_hours_worked = $7,
			hours_window_100 = $8,
			hours_window_125 = $9,
			hours_window_150 = $10,
			base_wage = $11,
			daily_wage = $12,
			approval_status = $13,
			approved_by = $14,
			approved_at = $15,
			rejection_reason = $16,
			updated_at = NOW()
		WHERE id = $17 AND organization_id = $18
	`

	commandTag, err := q.Exec(ctx, query,
		a.Status, a.CombinationID, a.TotalContainersFilled,
		a.StartTimeInMinutes, a.EndTimeInMinutes, a.BreakTimeInMinutes,
		a.TotalHoursWorked, a.HoursWindow100, a.HoursWindow125,
		a.HoursWindow150, a.BaseWage, a.DailyWage, a.ApprovalStatus, a.ApprovedBy,
		a.ApprovedAt, a.RejectionReason, a.ID, a.OrganizationID,
	)
	if err != nil {
		return fmt.Errorf("failed to update attendance record: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return attendance.ErrAttendanceNotFound
	}

	return nil
}

// List implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) List(ctx context.Context, filter attendance.AttendanceFilter, organizationID string) ([]attendance.WorkerAttendance, int64, error) {
	q := GetQuerier(ctx, r.db)

	conditions := "wa.organization_id = $1"
	args := []any{organizationID}
	argPos := 2

	if filter.WorkerID != "" {
		conditions += fmt.Sprintf(" AND wa.worker_id = $%d", argPos)
		args = append(args, filter.WorkerID)
		argPos++
	}
	if filter.GroupID != "" {
		conditions += fmt.Sprintf(" AND wa.group_id = $%d", argPos)
		args = append(args, filter.GroupID)
		argPos++
	}
	if filter.DateFrom != "" {
		conditions += fmt.Sprintf(" AND wa.attendance_date >= $%d", argPos)
		args = append(args, filter.DateFrom)
		argPos++
	}
	if filter.DateTo != "" {
		conditions += fmt.Sprintf(" AND wa.attendance_date <= $%d", argPos)
		args = append(args, filter.DateTo)
		argPos++
	}
	if filter.Status != "" {
		conditions += fmt.Sprintf(" AND wa.status = $%d", argPos)
		args = append(args, filter.Status)
		argPos++
	}
	if filter.ApprovalStatus != "" {
		conditions += fmt.Sprintf(" AND wa.approval_status = $%d", argPos)
		args = append(args, filter.ApprovalStatus)
		argPos++
	}

	countQuery := fmt.Sprintf(`
		SELECT COUNT(*)
		FROM worker_attendances wa
		WHERE %s
	`, conditions)

	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count attendance records: %w", err)
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 20
	}
	page := filter.Page
	if page <= 0 {
		page = 1
	}
	offset := (page - 1) * limit

	listQuery := fmt.Sprintf(`
		SELECT %s
		FROM worker_attendances wa
		LEFT JOIN workers w ON w.id = wa.worker_id
		WHERE %s
		ORDER BY wa.attendance_date DESC, wa.created_at DESC
		LIMIT $%d OFFSET $%d
	`, attendanceColumns, conditions, argPos, argPos+1)
	args = append(args, limit, offset)

	rows, err := q.Query(ctx, listQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list attendance records: %w", err)
	}
	defer rows.Close()

	var list []attendance.WorkerAttendance
	for rows.Next() {
		a, err := scanAttendance(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan attendance record: %w", err)
		}
		list = append(list, a)
	}

	if err = rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("rows iteration error: %w", err)
	}

	return list, total, nil
}

// ListApprovedInRange implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) ListApprovedInRange(ctx context.Context, workerIDs []string, from, to time.Time, organizationID string) ([]attendance.WorkerAttendance, error) {
	if len(workerIDs) == 0 {
		return nil, nil
	}

	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s
		FROM worker_attendances wa
		LEFT JOIN workers w ON w.id = wa.worker_id
		WHERE wa.worker_id = ANY($1)
			AND wa.attendance_date >= $2 AND wa.attendance_date <= $3
			AND wa.approval_status = $4
			AND wa.organization_id = $5
		ORDER BY wa.worker_id ASC, wa.attendance_date ASC
	`, attendanceColumns)

	rows, err := q.Query(ctx, query, workerIDs, from, to, attendance.ApprovalApproved, organizationID)
	if err != nil {
		return nil, fmt.Errorf("failed to list approved attendance records: %w", err)
	}
	defer rows.Close()

	var list []attendance.WorkerAttendance
	for rows.Next() {
		a, err := scanAttendance(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance record: %w", err)
		}
		list = append(list, a)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return list, nil
}

// Delete implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) Delete(ctx context.Context, id string, organizationID string) error {
	q := GetQuerier(ctx, r.db)

	query := `DELETE FROM worker_attendances WHERE id = $1 AND organization_id = $2`

	commandTag, err := q.Exec(ctx, query, id, organizationID)
	if err != nil {
		return fmt.Errorf("failed to delete attendance record: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return attendance.ErrAttendanceNotFound
	}

	return nil
}
