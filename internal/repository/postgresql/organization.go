package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tals012/agriculture-hrms-sub002/internal/domain/organization"
	"github.com/tals012/agriculture-hrms-sub002/internal/pkg/database"
)

type organizationRepositoryImpl struct {
	db *database.DB
}

func NewOrganizationRepository(db *database.DB) organization.OrganizationRepository {
	return &organizationRepositoryImpl{db: db}
}

// GetByID implements organization.OrganizationRepository.
func (r *organizationRepositoryImpl) GetByID(ctx context.Context, id string) (organization.Organization, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, name_he, email, phone, is_active, created_at, updated_at
		FROM organizations
		WHERE id = $1
	`

	var o organization.Organization
	err := q.QueryRow(ctx, query, id).Scan(
		&o.ID, &o.Name, &o.NameHe, &o.Email, &o.Phone, &o.IsActive, &o.CreatedAt, &o.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return organization.Organization{}, organization.ErrOrganizationNotFound
		}
		return organization.Organization{}, fmt.Errorf("failed to get organization: %w", err)
	}

	return o, nil
}
