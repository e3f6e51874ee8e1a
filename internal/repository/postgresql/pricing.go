package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/tals012/agriculture-hrms-sub002/internal/domain/pricing"
	"github.com/tals012/agriculture-hrms-sub002/internal/pkg/database"
)

type combinationRepositoryImpl struct {
	db *database.DB
}

func NewCombinationRepository(db *database.DB) pricing.CombinationRepository {
	return &combinationRepositoryImpl{db: db}
}

const combinationColumns = `
	pc.id, pc.organization_id, pc.client_id, pc.species_id, pc.harvest_type_id,
	pc.price, pc.container_norm, pc.created_at, pc.updated_at,
	s.name AS species_name, ht.name AS harvest_type_name
`

const combinationJoins = `
	LEFT JOIN species s ON s.id = pc.species_id
	LEFT JOIN harvest_types ht ON ht.id = pc.harvest_type_id
`

func scanCombination(row pgx.Row) (pricing.Combination, error) {
	var c pricing.Combination
	err := row.Scan(
		&c.ID, &c.OrganizationID, &c.ClientID, &c.SpeciesID, &c.HarvestTypeID,
		&c.Price, &c.ContainerNorm, &c.CreatedAt, &c.UpdatedAt,
		&c.SpeciesName, &c.HarvestTypeName,
	)
	return c, err
}

// Create implements pricing.CombinationRepository.
func (r *combinationRepositoryImpl) Create(ctx context.Context, c pricing.Combination) (pricing.Combination, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO pricing_combinations (
			id, organization_id, client_id, species_id, harvest_type_id,
			price, container_norm, created_at, updated_at
		)
		VALUES (gen_random_uuid(), $1, $2, $3, $4, $5, $6, NOW(), NOW())
		RETURNING id, organization_id, client_id, species_id, harvest_type_id,
			price, container_norm, created_at, updated_at
	`

	var result pricing.Combination
	err := q.QueryRow(ctx, query,
		c.OrganizationID, c.ClientID, c.SpeciesID, c.HarvestTypeID,
		c.Price, c.ContainerNorm,
	).Scan(
		&result.ID, &result.OrganizationID, &result.ClientID, &result.SpeciesID,
		&result.HarvestTypeID, &result.Price, &result.ContainerNorm,
		&result.CreatedAt, &result.UpdatedAt,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return pricing.Combination{}, pricing.ErrCombinationExists
		}
		return pricing.Combination{}, fmt.Errorf("failed to create pricing combination: %w", err)
	}

	return result, nil
}

// GetByID implements pricing.CombinationRepository.
func (r *combinationRepositoryImpl) GetByID(ctx context.Context, id string, organizationID string) (pricing.Combination, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s
		FROM pricing_combinations pc
		%s
		WHERE pc.id = $1 AND pc.organization_id = $2
	`, combinationColumns, combinationJoins)

	c, err := scanCombination(q.QueryRow(ctx, query, id, organizationID))
	if errors.Is(err, pgx.ErrNoRows) {
		return pricing.Combination{}, pricing.ErrCombinationNotFound
	}
	if err != nil {
		return pricing.Combination{}, fmt.Errorf("failed to get pricing combination: %w", err)
	}

	return c, nil
}

// GetByKey implements pricing.CombinationRepository.
func (r *combinationRepositoryImpl) GetByKey(ctx context.Context, clientID, speciesID, harvestTypeID string, organizationID string) (pricing.Combination, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s
		FROM pricing_combinations pc
		%s
		WHERE pc.client_id = $1 AND pc.species_id = $2 AND pc.harvest_type_id = $3
			AND pc.organization_id = $4
	`, combinationColumns, combinationJoins)

	c, err := scanCombination(q.QueryRow(ctx, query, clientID, speciesID, harvestTypeID, organizationID))
	if errors.Is(err, pgx.ErrNoRows) {
		return pricing.Combination{}, pricing.ErrCombinationNotFound
	}
	if err != nil {
		return pricing.Combination{}, fmt.Errorf("failed to get pricing combination by key: %w", err)
	}

	return c, nil
}

// GetByClientID implements pricing.CombinationRepository.
func (r *combinationRepositoryImpl) GetByClientID(ctx context.Context, clientID string, organizationID string) ([]pricing.Combination, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s
		FROM pricing_combinations pc
		%s
		WHERE pc.client_id = $1 AND pc.organization_id = $2
		ORDER BY s.name ASC, ht.name ASC
	`, combinationColumns, combinationJoins)

	rows, err := q.Query(ctx, query, clientID, organizationID)
	if err != nil {
		return nil, fmt.Errorf("failed to get pricing combinations: %w", err)
	}
	defer rows.Close()

	var list []pricing.Combination
	for rows.Next() {
		c, err := scanCombination(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan pricing combination: %w", err)
		}
		list = append(list, c)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return list, nil
}

// Update implements pricing.CombinationRepository.
func (r *combinationRepositoryImpl) Update(ctx context.Context, req pricing.UpdateCombinationRequest, organizationID string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE pricing_combinations
		SET price = $1, container_norm = $2, updated_at = NOW()
		WHERE id = $3 AND organization_id = $4
	`

	commandTag, err := q.Exec(ctx, query, req.Price, req.ContainerNorm, req.ID, organizationID)
	if err != nil {
		return fmt.Errorf("failed to update pricing combination: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return pricing.ErrCombinationNotFound
	}

	return nil
}

// Delete implements pricing.CombinationRepository.
func (r *combinationRepositoryImpl) Delete(ctx context.Context, id string, organizationID string) error {
	q := GetQuerier(ctx, r.db)

	query := `DELETE FROM pricing_combinations WHERE id = $1 AND organization_id = $2`

	commandTag, err := q.Exec(ctx, query, id, organizationID)
	if err != nil {
		return fmt.Errorf("failed to delete pricing combination: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return pricing.ErrCombinationNotFound
	}

	return nil
}
