package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/tals012/agriculture-hrms-sub002/internal/domain/worker"
	"github.com/tals012/agriculture-hrms-sub002/internal/pkg/database"
)

type workerRepositoryImpl struct {
	db *database.DB
}

func NewWorkerRepository(db *database.DB) worker.WorkerRepository {
	return &workerRepositoryImpl{db: db}
}

const workerColumns = `
	id, organization_id, passport_number, first_name, last_name,
	first_name_he, last_name_he, phone, country_of_origin,
	visa_expiry_date, salary_system_id, is_active, created_at, updated_at
`

func scanWorker(row pgx.Row) (worker.Worker, error) {
	var w worker.Worker
	err := row.Scan(
		&w.ID, &w.OrganizationID, &w.PassportNumber, &w.FirstName, &w.LastName,
		&w.FirstNameHe, &w.LastNameHe, &w.Phone, &w.CountryOfOrigin,
		&w.VisaExpiryDate, &w.SalarySystemID, &w.IsActive, &w.CreatedAt, &w.UpdatedAt,
	)
	return w, err
}

// Create implements worker.WorkerRepository.
func (r *workerRepositoryImpl) Create(ctx context.Context, w worker.Worker) (worker.Worker, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO workers (
			id, organization_id, passport_number, first_name, last_name,
			first_name_he, last_name_he, phone, country_of_origin, visa_expiry_date, is_active
		) VALUES (gen_random_uuid(), $1, $2, $3, $4, $5, $6, $7, $8, $9, true)
		RETURNING id, is_active, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		w.OrganizationID, w.PassportNumber, w.FirstName, w.LastName,
		w.FirstNameHe, w.LastNameHe, w.Phone, w.CountryOfOrigin, w.VisaExpiryDate,
	).Scan(&w.ID, &w.IsActive, &w.CreatedAt, &w.UpdatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return worker.Worker{}, worker.ErrPassportExists
		}
		return worker.Worker{}, fmt.Errorf("failed to create worker: %w", err)
	}

	return w, nil
}

// GetByID implements worker.WorkerRepository.
func (r *workerRepositoryImpl) GetByID(ctx context.Context, id string, organizationID string) (worker.Worker, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + workerColumns + ` FROM workers WHERE id = $1 AND organization_id = $2`

	w, err := scanWorker(q.QueryRow(ctx, query, id, organizationID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return worker.Worker{}, worker.ErrWorkerNotFound
		}
		return worker.Worker{}, fmt.Errorf("failed to get worker: %w", err)
	}

	return w, nil
}

// GetByIDs implements worker.WorkerRepository.
func (r *workerRepositoryImpl) GetByIDs(ctx context.Context, ids []string, organizationID string) ([]worker.Worker, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + workerColumns + ` FROM workers WHERE id = ANY($1) AND organization_id = $2`

	rows, err := q.Query(ctx, query, ids, organizationID)
	if err != nil {
		return nil, fmt.Errorf("failed to get workers by ids: %w", err)
	}
	defer rows.Close()

	var workers []worker.Worker
	for rows.Next() {
		w, err := scanWorker(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan worker: %w", err)
		}
		workers = append(workers, w)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return workers, nil
}

// List implements worker.WorkerRepository.
func (r *workerRepositoryImpl) List(ctx context.Context, filter worker.WorkerFilter, organizationID string) ([]worker.Worker, int64, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{"w.organization_id = $1"}
	args := []interface{}{organizationID}
	argPos := 2

	if filter.GroupID != "" {
		conditions = append(conditions, fmt.Sprintf(
			"EXISTS (SELECT 1 FROM group_members gm WHERE gm.worker_id = w.id AND gm.group_id = $%d AND gm.left_at IS NULL)", argPos))
		args = append(args, filter.GroupID)
		argPos++
	}
	if filter.Search != "" {
		conditions = append(conditions, fmt.Sprintf(
			"(w.first_name ILIKE $%d OR w.last_name ILIKE $%d OR w.passport_number ILIKE $%d)", argPos, argPos, argPos))
		args = append(args, "%"+filter.Search+"%")
		argPos++
	}
	if filter.IsActive != nil {
		conditions = append(conditions, fmt.Sprintf("w.is_active = $%d", argPos))
		args = append(args, *filter.IsActive)
		argPos++
	}

	where := strings.Join(conditions, " AND ")

	var total int64
	countQuery := "SELECT COUNT(*) FROM workers w WHERE " + where
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count workers: %w", err)
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

	query := fmt.Sprintf(`
		SELECT w.id, w.organization_id, w.passport_number, w.first_name, w.last_name,
			   w.first_name_he, w.last_name_he, w.phone, w.country_of_origin,
			   w.visa_expiry_date, w.salary_system_id, w.is_active, w.created_at, w.updated_at
		FROM workers w
		WHERE %s
		ORDER BY w.last_name ASC, w.first_name ASC
		LIMIT $%d OFFSET $%d
	`, where, argPos, argPos+1)
	args = append(args, limit, offset)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list workers: %w", err)
	}
	defer rows.Close()

	var workers []worker.Worker
	for rows.Next() {
		w, err := scanWorker(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan worker: %w", err)
		}
		workers = append(workers, w)
	}

	if err = rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("rows iteration error: %w", err)
	}

	return workers, total, nil
}

// Update implements worker.WorkerRepository.
func (r *workerRepositoryImpl) Update(ctx context.Context, w worker.Worker) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE workers
		SET first_name = $1, last_name = $2, first_name_he = $3, last_name_he = $4,
			phone = $5, country_of_origin = $6, visa_expiry_date = $7, is_active = $8,
			updated_at = NOW()
		WHERE id = $9 AND organization_id = $10
	`

	commandTag, err := q.Exec(ctx, query,
		w.FirstName, w.LastName, w.FirstNameHe, w.LastNameHe,
		w.Phone, w.CountryOfOrigin, w.VisaExpiryDate, w.IsActive,
		w.ID, w.OrganizationID,
	)
	if err != nil {
		return fmt.Errorf("failed to update worker: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return worker.ErrWorkerNotFound
	}

	return nil
}

// SetSalarySystemID implements worker.WorkerRepository.
func (r *workerRepositoryImpl) SetSalarySystemID(ctx context.Context, id string, salarySystemID string) error {
	q := GetQuerier(ctx, r.db)

	query := `UPDATE workers SET salary_system_id = $1, updated_at = NOW() WHERE id = $2`

	commandTag, err := q.Exec(ctx, query, salarySystemID, id)
	if err != nil {
		return fmt.Errorf("failed to set salary system id: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return worker.ErrWorkerNotFound
	}

	return nil
}

// Delete implements worker.WorkerRepository.
func (r *workerRepositoryImpl) Delete(ctx context.Context, id string, organizationID string) error {
	q := GetQuerier(ctx, r.db)

	query := `DELETE FROM workers WHERE id = $1 AND organization_id = $2`

	commandTag, err := q.Exec(ctx, query, id, organizationID)
	if err != nil {
		return fmt.Errorf("failed to delete worker: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return worker.ErrWorkerNotFound
	}

	return nil
}
