package group

import "context"

type GroupRepository interface {
	// Create inserts the group row only. Member rows are created by
	// AddMembers inside the same transaction (see group service).
	Create(ctx context.Context, g Group) (Group, error)
	GetByID(ctx context.Context, id string, organizationID string) (Group, error)
	List(ctx context.Context, filter GroupFilter, organizationID string) ([]Group, int64, error)
	Update(ctx context.Context, g Group) error
	Delete(ctx context.Context, id string, organizationID string) error

	AddMembers(ctx context.Context, groupID string, workerIDs []string) error
	RemoveMember(ctx context.Context, groupID string, workerID string) error
	GetMembers(ctx context.Context, groupID string) ([]GroupMember, error)
	GetActiveMemberWorkerIDs(ctx context.Context, groupID string) ([]string, error)
}
