package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tals012/agriculture-hrms-sub002/internal/domain/master/harvesttype"
	"github.com/tals012/agriculture-hrms-sub002/internal/pkg/database"
)

type harvestTypeRepositoryImpl struct {
	db *database.DB
}

func NewHarvestTypeRepository(db *database.DB) harvesttype.HarvestTypeRepository {
	return &harvestTypeRepositoryImpl{db: db}
}

// Create implements harvesttype.HarvestTypeRepository.
func (r *harvestTypeRepositoryImpl) Create(ctx context.Context, h harvesttype.HarvestType) (harvesttype.HarvestType, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO harvest_types (id, organization_id, name, name_he)
		VALUES (gen_random_uuid(), $1, $2, $3)
		RETURNING id, organization_id, name, name_he
	`

	var result harvesttype.HarvestType
	err := q.QueryRow(ctx, query, h.OrganizationID, h.Name, h.NameHe).Scan(
		&result.ID, &result.OrganizationID, &result.Name, &result.NameHe,
	)

	if err != nil {
		return harvesttype.HarvestType{}, fmt.Errorf("failed to create harvest type: %w", err)
	}

	return result, nil
}

// GetByID implements harvesttype.HarvestTypeRepository.
func (r *harvestTypeRepositoryImpl) GetByID(ctx context.Context, id string, organizationID string) (harvesttype.HarvestType, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, organization_id, name, name_he
		FROM harvest_types
		WHERE id = $1 AND organization_id = $2
	`

	var result harvesttype.HarvestType
	err := q.QueryRow(ctx, query, id, organizationID).Scan(
		&result.ID, &result.OrganizationID, &result.Name, &result.NameHe,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return harvesttype.HarvestType{}, harvesttype.ErrHarvestTypeNotFound
	}
	if err != nil {
		return harvesttype.HarvestType{}, fmt.Errorf("failed to get harvest type: %w", err)
	}

	return result, nil
}

// GetByOrganizationID implements harvesttype.HarvestTypeRepository.
func (r *harvestTypeRepositoryImpl) GetByOrganizationID(ctx context.Context, organizationID string) ([]harvesttype.HarvestType, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, organization_id, name, name_he
		FROM harvest_types
		WHERE organization_id = $1
		ORDER BY name ASC
	`

	rows, err := q.Query(ctx, query, organizationID)
	if err != nil {
		return nil, fmt.Errorf("failed to get harvest types: %w", err)
	}
	defer rows.Close()

	var list []harvesttype.HarvestType
	for rows.Next() {
		var h harvesttype.HarvestType
		if err := rows.Scan(&h.ID, &h.OrganizationID, &h.Name, &h.NameHe); err != nil {
			return nil, fmt.Errorf("failed to scan harvest type: %w", err)
		}
		list = append(list, h)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return list, nil
}

// Update implements harvesttype.HarvestTypeRepository.
func (r *harvestTypeRepositoryImpl) Update(ctx context.Context, req harvesttype.UpdateHarvestTypeRequest, organizationID string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE harvest_types
		SET name = $1, name_he = $2
		WHERE id = $3 AND organization_id = $4
	`

	commandTag, err := q.Exec(ctx, query, req.Name, req.NameHe, req.ID, organizationID)
	if err != nil {
		return fmt.Errorf("failed to update harvest type: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return harvesttype.ErrHarvestTypeNotFound
	}

	return nil
}

// Delete implements harvesttype.HarvestTypeRepository.
func (r *harvestTypeRepositoryImpl) Delete(ctx context.Context, id string, organizationID string) error {
	q := GetQuerier(ctx, r.db)

	query := `DELETE FROM harvest_types WHERE id = $1 AND organization_id = $2`

	commandTag, err := q.Exec(ctx, query, id, organizationID)
	if err != nil {
		return fmt.Errorf("failed to delete harvest type: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return harvesttype.ErrHarvestTypeNotFound
	}

	return nil
}
