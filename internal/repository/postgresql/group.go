package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/tals012/agriculture-hrms-sub002/internal/domain/group"
	"github.com/tals012/agriculture-hrms-sub002/internal/pkg/database"
)

type groupRepositoryImpl struct {
	db *database.DB
}

func NewGroupRepository(db *database.DB) group.GroupRepository {
	return &groupRepositoryImpl{db: db}
}

// Create implements group.GroupRepository.
func (r *groupRepositoryImpl) Create(ctx context.Context, g group.Group) (group.Group, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO groups (id, organization_id, client_id, field_id, name, leader_worker_id, is_active)
		VALUES (gen_random_uuid(), $1, $2, $3, $4, $5, true)
		RETURNING id, is_active, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		g.OrganizationID, g.ClientID, g.FieldID, g.Name, g.LeaderWorkerID,
	).Scan(&g.ID, &g.IsActive, &g.CreatedAt, &g.UpdatedAt)

	if err != nil {
		return group.Group{}, fmt.Errorf("failed to create group: %w", err)
	}

	return g, nil
}

// GetByID implements group.GroupRepository.
func (r *groupRepositoryImpl) GetByID(ctx context.Context, id string, organizationID string) (group.Group, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, organization_id, client_id, field_id, name, leader_worker_id, is_active, created_at, updated_at
		FROM groups
		WHERE id = $1 AND organization_id = $2
	`

	var g group.Group
	err := q.QueryRow(ctx, query, id, organizationID).Scan(
		&g.ID, &g.OrganizationID, &g.ClientID, &g.FieldID, &g.Name,
		&g.LeaderWorkerID, &g.IsActive, &g.CreatedAt, &g.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return group.Group{}, group.ErrGroupNotFound
		}
		return group.Group{}, fmt.Errorf("failed to get group: %w", err)
	}

	return g, nil
}

// List implements group.GroupRepository.
func (r *groupRepositoryImpl) List(ctx context.Context, filter group.GroupFilter, organizationID string) ([]group.Group, int64, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{"organization_id = $1"}
	args := []interface{}{organizationID}
	argPos := 2

	if filter.ClientID != "" {
		conditions = append(conditions, fmt.Sprintf("client_id = $%d", argPos))
		args = append(args, filter.ClientID)
		argPos++
	}
	if filter.FieldID != "" {
		conditions = append(conditions, fmt.Sprintf("field_id = $%d", argPos))
		args = append(args, filter.FieldID)
		argPos++
	}
	if filter.Search != "" {
		conditions = append(conditions, fmt.Sprintf("name ILIKE $%d", argPos))
		args = append(args, "%"+filter.Search+"%")
		argPos++
	}

	where := strings.Join(conditions, " AND ")

	var total int64
	countQuery := "SELECT COUNT(*) FROM groups WHERE " + where
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count groups: %w", err)
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
		SELECT id, organization_id, client_id, field_id, name, leader_worker_id, is_active, created_at, updated_at
		FROM groups
		WHERE %s
		ORDER BY name ASC
		LIMIT $%d OFFSET $%d
	`, where, argPos, argPos+1)
	args = append(args, limit, offset)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list groups: %w", err)
	}
	defer rows.Close()

	var groups []group.Group
	for rows.Next() {
		var g group.Group
		err := rows.Scan(
			&g.ID, &g.OrganizationID, &g.ClientID, &g.FieldID, &g.Name,
			&g.LeaderWorkerID, &g.IsActive, &g.CreatedAt, &g.UpdatedAt,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan group: %w", err)
		}
		groups = append(groups, g)
	}

	if err = rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("rows iteration error: %w", err)
	}

	return groups, total, nil
}

// Update implements group.GroupRepository.
func (r *groupRepositoryImpl) Update(ctx context.Context, g group.Group) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE groups
		SET name = $1, field_id = $2, leader_worker_id = $3, is_active = $4, updated_at = NOW()
		WHERE id = $5 AND organization_id = $6
	`

	commandTag, err := q.Exec(ctx, query, g.Name, g.FieldID, g.LeaderWorkerID, g.IsActive, g.ID, g.OrganizationID)
	if err != nil {
		return fmt.Errorf("failed to update group: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return group.ErrGroupNotFound
	}

	return nil
}

// Delete implements group.GroupRepository.
func (r *groupRepositoryImpl) Delete(ctx context.Context, id string, organizationID string) error {
	q := GetQuerier(ctx, r.db)

	query := `DELETE FROM groups WHERE id = $1 AND organization_id = $2`

	commandTag, err := q.Exec(ctx, query, id, organizationID)
	if err != nil {
		return fmt.Errorf("failed to delete group: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return group.ErrGroupNotFound
	}

	return nil
}

// AddMembers implements group.GroupRepository.
func (r *groupRepositoryImpl) AddMembers(ctx context.Context, groupID string, workerIDs []string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO group_members (id, group_id, worker_id, joined_at)
		VALUES (gen_random_uuid(), $1, $2, NOW())
	`

	for _, workerID := range workerIDs {
		if _, err := q.Exec(ctx, query, groupID, workerID); err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == "23505" {
				return group.ErrWorkerAlreadyMember
			}
			return fmt.Errorf("failed to add group member: %w", err)
		}
	}

	return nil
}

// RemoveMember implements group.GroupRepository.
func (r *groupRepositoryImpl) RemoveMember(ctx context.Context, groupID string, workerID string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE group_members
		SET left_at = NOW()
		WHERE group_id = $1 AND worker_id = $2 AND left_at IS NULL
	`

	commandTag, err := q.Exec(ctx, query, groupID, workerID)
	if err != nil {
		return fmt.Errorf("failed to remove group member: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return group.ErrMemberNotFound
	}

	return nil
}

// GetMembers implements group.GroupRepository.
func (r *groupRepositoryImpl) GetMembers(ctx context.Context, groupID string) ([]group.GroupMember, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT gm.id, gm.group_id, gm.worker_id, gm.joined_at, gm.left_at, gm.created_at,
			   w.first_name || ' ' || w.last_name
		FROM group_members gm
		JOIN workers w ON w.id = gm.worker_id
		WHERE gm.group_id = $1
		ORDER BY gm.joined_at ASC
	`

	rows, err := q.Query(ctx, query, groupID)
	if err != nil {
		return nil, fmt.Errorf("failed to get group members: %w", err)
	}
	defer rows.Close()

	var members []group.GroupMember
	for rows.Next() {
		var m group.GroupMember
		err := rows.Scan(&m.ID, &m.GroupID, &m.WorkerID, &m.JoinedAt, &m.LeftAt, &m.CreatedAt, &m.WorkerName)
		if err != nil {
			return nil, fmt.Errorf("failed to scan group member: %w", err)
		}
		members = append(members, m)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return members, nil
}

// GetActiveMemberWorkerIDs implements group.GroupRepository.
func (r *groupRepositoryImpl) GetActiveMemberWorkerIDs(ctx context.Context, groupID string) ([]string, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT worker_id
		FROM group_members
		WHERE group_id = $1 AND left_at IS NULL
	`

	rows, err := q.Query(ctx, query, groupID)
	if err != nil {
		return nil, fmt.Errorf("failed to get active member ids: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan worker id: %w", err)
		}
		ids = append(ids, id)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return ids, nil
}
