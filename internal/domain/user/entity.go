package user

import "time"

type Role string

const (
	RoleAdmin        Role = "ADMIN"
	RoleFieldManager Role = "FIELD_MANAGER"
	RoleGroupLeader  Role = "GROUP_LEADER"
)

var RoleValues = []string{
	string(RoleAdmin),
	string(RoleFieldManager),
	string(RoleGroupLeader),
}

type User struct {
	ID             string
	OrganizationID string
	Email          string
	PasswordHash   string
	Name           string
	Phone          *string
	Role           Role
	IsActive       bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
