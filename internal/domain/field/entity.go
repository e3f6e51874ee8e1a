package field

import "time"

// Field is a physical plot belonging to a client.
type Field struct {
	ID             string
	OrganizationID string
	ClientID       string
	Name           string
	AreaDunam      *float64
	Region         *string
	IsActive       bool
	CreatedAt      time.Time
	UpdatedAt      time.Time

	// Joined fields
	ClientName *string
}
