package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/tals012/agriculture-hrms-sub002/internal/domain/field"
	"github.com/tals012/agriculture-hrms-sub002/internal/pkg/database"
)

type fieldRepositoryImpl struct {
	db *database.DB
}

func NewFieldRepository(db *database.DB) field.FieldRepository {
	return &fieldRepositoryImpl{db: db}
}

// Create implements field.FieldRepository.
func (r *fieldRepositoryImpl) Create(ctx context.Context, f field.Field) (field.Field, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO fields (id, organization_id, client_id, name, area_dunam, region, is_active)
		VALUES (gen_random_uuid(), $1, $2, $3, $4, $5, true)
		RETURNING id, is_active, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		f.OrganizationID, f.ClientID, f.Name, f.AreaDunam, f.Region,
	).Scan(&f.ID, &f.IsActive, &f.CreatedAt, &f.UpdatedAt)

	if err != nil {
		return field.Field{}, fmt.Errorf("failed to create field: %w", err)
	}

	return f, nil
}

// GetByID implements field.FieldRepository.
func (r *fieldRepositoryImpl) GetByID(ctx context.Context, id string, organizationID string) (field.Field, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT f.id, f.organization_id, f.client_id, f.name, f.area_dunam, f.region,
			   f.is_active, f.created_at, f.updated_at, c.name
		FROM fields f
		JOIN clients c ON c.id = f.client_id
		WHERE f.id = $1 AND f.organization_id = $2
	`

	var f field.Field
	err := q.QueryRow(ctx, query, id, organizationID).Scan(
		&f.ID, &f.OrganizationID, &f.ClientID, &f.Name, &f.AreaDunam, &f.Region,
		&f.IsActive, &f.CreatedAt, &f.UpdatedAt, &f.ClientName,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return field.Field{}, field.ErrFieldNotFound
		}
		return field.Field{}, fmt.Errorf("failed to get field: %w", err)
	}

	return f, nil
}

// List implements field.FieldRepository.
func (r *fieldRepositoryImpl) List(ctx context.Context, filter field.FieldFilter, organizationID string) ([]field.Field, int64, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{"f.organization_id = $1"}
	args := []interface{}{organizationID}
	argPos := 2

	if filter.ClientID != "" {
		conditions = append(conditions, fmt.Sprintf("f.client_id = $%d", argPos))
		args = append(args, filter.ClientID)
		argPos++
	}
	if filter.Search != "" {
		conditions = append(conditions, fmt.Sprintf("f.name ILIKE $%d", argPos))
		args = append(args, "%"+filter.Search+"%")
		argPos++
	}

	where := strings.Join(conditions, " AND ")

	var total int64
	countQuery := "SELECT COUNT(*) FROM fields f WHERE " + where
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count fields: %w", err)
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
		SELECT f.id, f.organization_id, f.client_id, f.name, f.area_dunam, f.region,
			   f.is_active, f.created_at, f.updated_at, c.name
		FROM fields f
		JOIN clients c ON c.id = f.client_id
		WHERE %s
		ORDER BY f.name ASC
		LIMIT $%d OFFSET $%d
	`, where, argPos, argPos+1)
	args = append(args, limit, offset)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list fields: %w", err)
	}
	defer rows.Close()

	var fields []field.Field
	for rows.Next() {
		var f field.Field
		err := rows.Scan(
			&f.ID, &f.OrganizationID, &f.ClientID, &f.Name, &f.AreaDunam, &f.Region,
			&f.IsActive, &f.CreatedAt, &f.UpdatedAt, &f.ClientName,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan field: %w", err)
		}
		fields = append(fields, f)
	}

	if err = rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("rows iteration error: %w", err)
	}

	return fields, total, nil
}

// Update implements field.FieldRepository.
func (r *fieldRepositoryImpl) Update(ctx context.Context, f field.Field) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE fields
		SET name = $1, area_dunam = $2, region = $3, is_active = $4, updated_at = NOW()
		WHERE id = $5 AND organization_id = $6
	`

	commandTag, err := q.Exec(ctx, query, f.Name, f.AreaDunam, f.Region, f.IsActive, f.ID, f.OrganizationID)
	if err != nil {
		return fmt.Errorf("failed to update field: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return field.ErrFieldNotFound
	}

	return nil
}

// Delete implements field.FieldRepository.
func (r *fieldRepositoryImpl) Delete(ctx context.Context, id string, organizationID string) error {
	q := GetQuerier(ctx, r.db)

	query := `DELETE FROM fields WHERE id = $1 AND organization_id = $2`

	commandTag, err := q.Exec(ctx, query, id, organizationID)
	if err != nil {
		return fmt.Errorf("failed to delete field: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return field.ErrFieldNotFound
	}

	return nil
}
