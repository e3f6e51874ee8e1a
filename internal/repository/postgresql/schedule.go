package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tals012/agriculture-hrms-sub002/internal/domain/schedule"
	"github.com/tals012/agriculture-hrms-sub002/internal/pkg/database"
)

type workingScheduleRepositoryImpl struct {
	db *database.DB
}

func NewWorkingScheduleRepository(db *database.DB) schedule.WorkingScheduleRepository {
	return &workingScheduleRepositoryImpl{db: db}
}

const workingScheduleColumns = `
	id, organization_id, source, worker_id, group_id, field_id, client_id,
	total_hours_per_day, total_days_per_week, start_time_in_minutes,
	end_time_in_minutes, break_time_in_minutes, is_break_time_paid, created_at
`

func scanWorkingSchedule(row pgx.Row) (schedule.WorkingSchedule, error) {
	var s schedule.WorkingSchedule
	err := row.Scan(
		&s.ID, &s.OrganizationID, &s.Source, &s.WorkerID, &s.GroupID,
		&s.FieldID, &s.ClientID, &s.TotalHoursPerDay, &s.TotalDaysPerWeek,
		&s.StartTimeInMinutes, &s.EndTimeInMinutes, &s.BreakTimeInMinutes,
		&s.IsBreakTimePaid, &s.CreatedAt,
	)
	return s, err
}

// scopeColumn maps a schedule source to the column carrying its scope id.
func scopeColumn(source schedule.Source) (string, bool) {
	switch source {
	case schedule.SourceWorker:
		return "worker_id", true
	case schedule.SourceGroup:
		return "group_id", true
	case schedule.SourceField:
		return "field_id", true
	case schedule.SourceClient:
		return "client_id", true
	default:
		return "", false
	}
}

// Create implements schedule.WorkingScheduleRepository.
func (r *workingScheduleRepositoryImpl) Create(ctx context.Context, s schedule.WorkingSchedule) (schedule.WorkingSchedule, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		INSERT INTO working_schedules (
			id, organization_id, source, worker_id, group_id, field_id, client_id,
			total_hours_per_day, total_days_per_week, start_time_in_minutes,
			end_time_in_minutes, break_time_in_minutes, is_break_time_paid, created_at
		)
		VALUES (gen_random_uuid(), $1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, NOW())
		RETURNING %s
	`, workingScheduleColumns)

	result, err := scanWorkingSchedule(q.QueryRow(ctx, query,
		s.OrganizationID, s.Source, s.WorkerID, s.GroupID, s.FieldID, s.ClientID,
		s.TotalHoursPerDay, s.TotalDaysPerWeek, s.StartTimeInMinutes,
		s.EndTimeInMinutes, s.BreakTimeInMinutes, s.IsBreakTimePaid,
	))

	if err != nil {
		return schedule.WorkingSchedule{}, fmt.Errorf("failed to create working schedule: %w", err)
	}

	return result, nil
}

// GetLatestByScope implements schedule.WorkingScheduleRepository.
func (r *workingScheduleRepositoryImpl) GetLatestByScope(ctx context.Context, source schedule.Source, scopeID *string, organizationID string) (*schedule.WorkingSchedule, error) {
	q := GetQuerier(ctx, r.db)

	var (
		query string
		args  []any
	)

	if column, ok := scopeColumn(source); ok {
		if scopeID == nil {
			return nil, fmt.Errorf("scope id is required for source %s", source)
		}
		query = fmt.Sprintf(`
			SELECT %s
			FROM working_schedules
			WHERE source = $1 AND %s = $2 AND organization_id = $3
			ORDER BY created_at DESC
			LIMIT 1
		`, workingScheduleColumns, column)
		args = []any{source, *scopeID, organizationID}
	} else {
		query = fmt.Sprintf(`
			SELECT %s
			FROM working_schedules
			WHERE source = $1 AND organization_id = $2
			ORDER BY created_at DESC
			LIMIT 1
		`, workingScheduleColumns)
		args = []any{source, organizationID}
	}

	s, err := scanWorkingSchedule(q.QueryRow(ctx, query, args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get working schedule: %w", err)
	}

	return &s, nil
}

// ListByScope implements schedule.WorkingScheduleRepository.
func (r *workingScheduleRepositoryImpl) ListByScope(ctx context.Context, source schedule.Source, scopeID *string, organizationID string) ([]schedule.WorkingSchedule, error) {
	q := GetQuerier(ctx, r.db)

	var (
		query string
		args  []any
	)

	if column, ok := scopeColumn(source); ok {
		if scopeID == nil {
			return nil, fmt.Errorf("scope id is required for source %s", source)
		}
		query = fmt.Sprintf(`
			SELECT %s
			FROM working_schedules
			WHERE source = $1 AND %s = $2 AND organization_id = $3
			ORDER BY created_at DESC
		`, workingScheduleColumns, column)
		args = []any{source, *scopeID, organizationID}
	} else {
		query = fmt.Sprintf(`
			SELECT %s
			FROM working_schedules
			WHERE source = $1 AND organization_id = $2
			ORDER BY created_at DESC
		`, workingScheduleColumns)
		args = []any{source, organizationID}
	}

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list working schedules: %w", err)
	}
	defer rows.Close()

	var list []schedule.WorkingSchedule
	for rows.Next() {
		s, err := scanWorkingSchedule(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan working schedule: %w", err)
		}
		list = append(list, s)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return list, nil
}
