package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tals012/agriculture-hrms-sub002/internal/domain/master/species"
	"github.com/tals012/agriculture-hrms-sub002/internal/pkg/database"
)

type speciesRepositoryImpl struct {
	db *database.DB
}

func NewSpeciesRepository(db *database.DB) species.SpeciesRepository {
	return &speciesRepositoryImpl{db: db}
}

// Create implements species.SpeciesRepository.
func (r *speciesRepositoryImpl) Create(ctx context.Context, s species.Species) (species.Species, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO species (id, organization_id, name, name_he)
		VALUES (gen_random_uuid(), $1, $2, $3)
		RETURNING id, organization_id, name, name_he
	`

	var result species.Species
	err := q.QueryRow(ctx, query, s.OrganizationID, s.Name, s.NameHe).Scan(
		&result.ID, &result.OrganizationID, &result.Name, &result.NameHe,
	)

	if err != nil {
		return species.Species{}, fmt.Errorf("failed to create species: %w", err)
	}

	return result, nil
}

// GetByID implements species.SpeciesRepository.
func (r *speciesRepositoryImpl) GetByID(ctx context.Context, id string, organizationID string) (species.Species, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, organization_id, name, name_he
		FROM species
		WHERE id = $1 AND organization_id = $2
	`

	var result species.Species
	err := q.QueryRow(ctx, query, id, organizationID).Scan(
		&result.ID, &result.OrganizationID, &result.Name, &result.NameHe,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return species.Species{}, species.ErrSpeciesNotFound
	}
	if err != nil {
		return species.Species{}, fmt.Errorf("failed to get species: %w", err)
	}

	return result, nil
}

// GetByOrganizationID implements species.SpeciesRepository.
func (r *speciesRepositoryImpl) GetByOrganizationID(ctx context.Context, organizationID string) ([]species.Species, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, organization_id, name, name_he
		FROM species
		WHERE organization_id = $1
		ORDER BY name ASC
	`

	rows, err := q.Query(ctx, query, organizationID)
	if err != nil {
		return nil, fmt.Errorf("failed to get species list: %w", err)
	}
	defer rows.Close()

	var list []species.Species
	for rows.Next() {
		var s species.Species
		if err := rows.Scan(&s.ID, &s.OrganizationID, &s.Name, &s.NameHe); err != nil {
			return nil, fmt.Errorf("failed to scan species: %w", err)
		}
		list = append(list, s)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return list, nil
}

// Update implements species.SpeciesRepository.
func (r *speciesRepositoryImpl) Update(ctx context.Context, req species.UpdateSpeciesRequest, organizationID string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE species
		SET name = $1, name_he = $2
		WHERE id = $3 AND organization_id = $4
	`

	commandTag, err := q.Exec(ctx, query, req.Name, req.NameHe, req.ID, organizationID)
	if err != nil {
		return fmt.Errorf("failed to update species: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return species.ErrSpeciesNotFound
	}

	return nil
}

// Delete implements species.SpeciesRepository.
func (r *speciesRepositoryImpl) Delete(ctx context.Context, id string, organizationID string) error {
	q := GetQuerier(ctx, r.db)

	query := `DELETE FROM species WHERE id = $1 AND organization_id = $2`

	commandTag, err := q.Exec(ctx, query, id, organizationID)
	if err != nil {
		return fmt.Errorf("failed to delete species: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return species.ErrSpeciesNotFound
	}

	return nil
}
