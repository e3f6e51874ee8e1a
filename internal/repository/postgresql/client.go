package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/tals012/agriculture-hrms-sub002/internal/domain/client"
	"github.com/tals012/agriculture-hrms-sub002/internal/pkg/database"
)

type clientRepositoryImpl struct {
	db *database.DB
}

func NewClientRepository(db *database.DB) client.ClientRepository {
	return &clientRepositoryImpl{db: db}
}

// Create implements client.ClientRepository.
func (r *clientRepositoryImpl) Create(ctx context.Context, c client.Client) (client.Client, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO clients (id, organization_id, name, name_he, contact_name, phone, email, address, city, is_active)
		VALUES (gen_random_uuid(), $1, $2, $3, $4, $5, $6, $7, $8, true)
		RETURNING id, is_active, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		c.OrganizationID, c.Name, c.NameHe, c.ContactName,
		c.Phone, c.Email, c.Address, c.City,
	).Scan(&c.ID, &c.IsActive, &c.CreatedAt, &c.UpdatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return client.Client{}, client.ErrClientNameExists
		}
		return client.Client{}, fmt.Errorf("failed to create client: %w", err)
	}

	return c, nil
}

// GetByID implements client.ClientRepository.
func (r *clientRepositoryImpl) GetByID(ctx context.Context, id string, organizationID string) (client.Client, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, organization_id, name, name_he, contact_name, phone, email, address, city, is_active, created_at, updated_at
		FROM clients
		WHERE id = $1 AND organization_id = $2
	`

	var c client.Client
	err := q.QueryRow(ctx, query, id, organizationID).Scan(
		&c.ID, &c.OrganizationID, &c.Name, &c.NameHe, &c.ContactName,
		&c.Phone, &c.Email, &c.Address, &c.City, &c.IsActive, &c.CreatedAt, &c.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return client.Client{}, client.ErrClientNotFound
		}
		return client.Client{}, fmt.Errorf("failed to get client: %w", err)
	}

	return c, nil
}

// List implements client.ClientRepository.
func (r *clientRepositoryImpl) List(ctx context.Context, filter client.ClientFilter, organizationID string) ([]client.Client, int64, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{"organization_id = $1"}
	args := []interface{}{organizationID}
	argPos := 2

	if filter.Search != "" {
		conditions = append(conditions, fmt.Sprintf("(name ILIKE $%d OR contact_name ILIKE $%d)", argPos, argPos))
		args = append(args, "%"+filter.Search+"%")
		argPos++
	}
	if filter.IsActive != nil {
		conditions = append(conditions, fmt.Sprintf("is_active = $%d", argPos))
		args = append(args, *filter.IsActive)
		argPos++
	}

	where := strings.Join(conditions, " AND ")

	var total int64
	countQuery := "SELECT COUNT(*) FROM clients WHERE " + where
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count clients: %w", err)
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
		SELECT id, organization_id, name, name_he, contact_name, phone, email, address, city, is_active, created_at, updated_at
		FROM clients
		WHERE %s
		ORDER BY name ASC
		LIMIT $%d OFFSET $%d
	`, where, argPos, argPos+1)
	args = append(args, limit, offset)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list clients: %w", err)
	}
	defer rows.Close()

	var clients []client.Client
	for rows.Next() {
		var c client.Client
		err := rows.Scan(
			&c.ID, &c.OrganizationID, &c.Name, &c.NameHe, &c.ContactName,
			&c.Phone, &c.Email, &c.Address, &c.City, &c.IsActive, &c.CreatedAt, &c.UpdatedAt,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan client: %w", err)
		}
		clients = append(clients, c)
	}

	if err = rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("rows iteration error: %w", err)
	}

	return clients, total, nil
}

// Update implements client.ClientRepository.
func (r *clientRepositoryImpl) Update(ctx context.Context, c client.Client) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE clients
		SET name = $1, name_he = $2, contact_name = $3, phone = $4, email = $5,
			address = $6, city = $7, is_active = $8, updated_at = NOW()
		WHERE id = $9 AND organization_id = $10
	`

	commandTag, err := q.Exec(ctx, query,
		c.Name, c.NameHe, c.ContactName, c.Phone, c.Email,
		c.Address, c.City, c.IsActive, c.ID, c.OrganizationID,
	)
	if err != nil {
		return fmt.Errorf("failed to update client: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return client.ErrClientNotFound
	}

	return nil
}

// Delete implements client.ClientRepository.
func (r *clientRepositoryImpl) Delete(ctx context.Context, id string, organizationID string) error {
	q := GetQuerier(ctx, r.db)

	query := `DELETE FROM clients WHERE id = $1 AND organization_id = $2`

	commandTag, err := q.Exec(ctx, query, id, organizationID)
	if err != nil {
		return fmt.Errorf("failed to delete client: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return client.ErrClientNotFound
	}

	return nil
}
