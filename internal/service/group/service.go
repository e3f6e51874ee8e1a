package group

import (
	"context"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/tals012/agriculture-hrms-sub002/internal/domain/auth"
	"github.com/tals012/agriculture-hrms-sub002/internal/domain/client"
	"github.com/tals012/agriculture-hrms-sub002/internal/domain/group"
	"github.com/tals012/agriculture-hrms-sub002/internal/domain/worker"
	"github.com/tals012/agriculture-hrms-sub002/internal/pkg/database"
	"github.com/tals012/agriculture-hrms-sub002/internal/repository/postgresql"
)

type GroupServiceImpl struct {
	db *database.DB
	group.GroupRepository
	client.ClientRepository
	worker.WorkerRepository
}

func NewGroupService(db *database.DB, groupRepo group.GroupRepository, clientRepo client.ClientRepository, workerRepo worker.WorkerRepository) group.GroupService {
	return &GroupServiceImpl{
		db:               db,
		GroupRepository:  groupRepo,
		ClientRepository: clientRepo,
		WorkerRepository: workerRepo,
	}
}

func organizationIDFromContext(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}
	organizationID, ok := claims["organization_id"].(string)
	if !ok || organizationID == "" {
		return "", auth.ErrOrganizationMissing
	}
	return organizationID, nil
}

// CreateGroup implements group.GroupService. The group row and its initial
// member rows are written in one transaction so a failed member insert never
// leaves an empty group behind.
func (s *GroupServiceImpl) CreateGroup(ctx context.Context, req group.CreateGroupRequest) (group.Group, error) {
	if err := req.Validate(); err != nil {
		return group.Group{}, err
	}

	organizationID, err := organizationIDFromContext(ctx)
	if err != nil {
		return group.Group{}, err
	}

	if _, err := s.ClientRepository.GetByID(ctx, req.ClientID, organizationID); err != nil {
		return group.Group{}, err
	}

	if len(req.WorkerIDs) > 0 {
		workers, err := s.WorkerRepository.GetByIDs(ctx, req.WorkerIDs, organizationID)
		if err != nil {
			return group.Group{}, fmt.Errorf("failed to get workers: %w", err)
		}
		if len(workers) != len(req.WorkerIDs) {
			return group.Group{}, worker.ErrWorkerNotFound
		}
	}

	var created group.Group
	err = postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		g := group.Group{
			OrganizationID: organizationID,
			ClientID:       req.ClientID,
			FieldID:        req.FieldID,
			Name:           req.Name,
			LeaderWorkerID: req.LeaderWorkerID,
			IsActive:       true,
		}

		var err error
		created, err = s.GroupRepository.Create(txCtx, g)
		if err != nil {
			return err
		}

		if len(req.WorkerIDs) > 0 {
			if err := s.GroupRepository.AddMembers(txCtx, created.ID, req.WorkerIDs); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return group.Group{}, fmt.Errorf("failed to create group: %w", err)
	}

	members, err := s.GroupRepository.GetMembers(ctx, created.ID)
	if err != nil {
		return group.Group{}, fmt.Errorf("failed to get group members: %w", err)
	}
	created.Members = members

	return created, nil
}

// GetGroup implements group.GroupService.
func (s *GroupServiceImpl) GetGroup(ctx context.Context, id string) (group.Group, error) {
	organizationID, err := organizationIDFromContext(ctx)
	if err != nil {
		return group.Group{}, err
	}

	g, err := s.GroupRepository.GetByID(ctx, id, organizationID)
	if err != nil {
		return group.Group{}, err
	}

	members, err := s.GroupRepository.GetMembers(ctx, g.ID)
	if err != nil {
		return group.Group{}, fmt.Errorf("failed to get group members: %w", err)
	}
	g.Members = members

	return g, nil
}

// ListGroups implements group.GroupService.
func (s *GroupServiceImpl) ListGroups(ctx context.Context, filter group.GroupFilter) ([]group.Group, int64, error) {
	organizationID, err := organizationIDFromContext(ctx)
	if err != nil {
		return nil, 0, err
	}

	return s.GroupRepository.List(ctx, filter, organizationID)
}

// UpdateGroup implements group.GroupService.
func (s *GroupServiceImpl) UpdateGroup(ctx context.Context, req group.UpdateGroupRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	organizationID, err := organizationIDFromContext(ctx)
	if err != nil {
		return err
	}

	existing, err := s.GroupRepository.GetByID(ctx, req.ID, organizationID)
	if err != nil {
		return err
	}

	existing.Name = req.Name
	existing.FieldID = req.FieldID
	existing.LeaderWorkerID = req.LeaderWorkerID
	if req.IsActive != nil {
		existing.IsActive = *req.IsActive
	}
	existing.UpdatedAt = time.Now().UTC()

	return s.GroupRepository.Update(ctx, existing)
}

// DeleteGroup implements group.GroupService.
func (s *GroupServiceImpl) DeleteGroup(ctx context.Context, id string) error {
	organizationID, err := organizationIDFromContext(ctx)
	if err != nil {
		return err
	}

	return s.GroupRepository.Delete(ctx, id, organizationID)
}

// AddMembers implements group.GroupService.
func (s *GroupServiceImpl) AddMembers(ctx context.Context, req group.AddMembersRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	organizationID, err := organizationIDFromContext(ctx)
	if err != nil {
		return err
	}

	if _, err := s.GroupRepository.GetByID(ctx, req.GroupID, organizationID); err != nil {
		return err
	}

	workers, err := s.WorkerRepository.GetByIDs(ctx, req.WorkerIDs, organizationID)
	if err != nil {
		return fmt.Errorf("failed to get workers: %w", err)
	}
	if len(workers) != len(req.WorkerIDs) {
		return worker.ErrWorkerNotFound
	}

	return s.GroupRepository.AddMembers(ctx, req.GroupID, req.WorkerIDs)
}

// RemoveMember implements group.GroupService.
func (s *GroupServiceImpl) RemoveMember(ctx context.Context, groupID, workerID string) error {
	organizationID, err := organizationIDFromContext(ctx)
	if err != nil {
		return err
	}

	if _, err := s.GroupRepository.GetByID(ctx, groupID, organizationID); err != nil {
		return err
	}

	return s.GroupRepository.RemoveMember(ctx, groupID, workerID)
}
