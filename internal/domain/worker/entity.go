package worker

import "time"

// Worker is a foreign agricultural laborer. Passport and transliterated
// Hebrew names are required for registration with the external salary system.
type Worker struct {
	ID               string
	OrganizationID   string
	PassportNumber   string
	FirstName        string
	LastName         string
	FirstNameHe      *string
	LastNameHe       *string
	Phone            *string
	CountryOfOrigin  *string
	VisaExpiryDate   *time.Time
	SalarySystemID   *string
	IsActive         bool
	CreatedAt        time.Time
	UpdatedAt        time.Time

	// Joined fields
	CurrentGroupID *string
}
