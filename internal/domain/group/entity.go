package group

import "time"

// Group is a crew of workers assigned to a field. Workers report attendance
// through their group.
type Group struct {
	ID             string
	OrganizationID string
	ClientID       string
	FieldID        *string
	Name           string
	LeaderWorkerID *string
	IsActive       bool
	CreatedAt      time.Time
	UpdatedAt      time.Time

	Members []GroupMember
}

type GroupMember struct {
	ID        string
	GroupID   string
	WorkerID  string
	JoinedAt  time.Time
	LeftAt    *time.Time
	CreatedAt time.Time

	// Joined fields
	WorkerName *string
}
