package client

import "time"

// Client is a farm customer of the organization. Fields, worker groups and
// pricing combinations all hang off a client.
type Client struct {
	ID             string
	OrganizationID string
	Name           string
	NameHe         *string
	ContactName    *string
	Phone          *string
	Email          *string
	Address        *string
	City           *string
	IsActive       bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
