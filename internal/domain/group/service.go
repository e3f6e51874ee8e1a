package group

import "context"

type GroupService interface {
	// CreateGroup inserts the group and its initial members in one
	// transaction.
	CreateGroup(ctx context.Context, req CreateGroupRequest) (Group, error)

	GetGroup(ctx context.Context, id string) (Group, error)
	ListGroups(ctx context.Context, filter GroupFilter) ([]Group, int64, error)
	UpdateGroup(ctx context.Context, req UpdateGroupRequest) error
	DeleteGroup(ctx context.Context, id string) error

	AddMembers(ctx context.Context, req AddMembersRequest) error
	RemoveMember(ctx context.Context, groupID, workerID string) error
}
