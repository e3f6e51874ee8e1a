package organization

import "time"

type Organization struct {
	ID        string
	Name      string
	NameHe    *string
	Email     *string
	Phone     *string
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
