package field

import "github.com/tals012/agriculture-hrms-sub002/internal/pkg/validator"

type CreateFieldRequest struct {
	ClientID  string   `json:"client_id"`
	Name      string   `json:"name"`
	AreaDunam *float64 `json:"area_dunam"`
	Region    *string  `json:"region"`
}

func (r *CreateFieldRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ClientID) {
		errs = append(errs, validator.ValidationError{
			Field:   "client_id",
			Message: "client_id is required",
		})
	}
	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}
	if r.AreaDunam != nil && *r.AreaDunam <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "area_dunam",
			Message: "area_dunam must be positive",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateFieldRequest struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	AreaDunam *float64 `json:"area_dunam"`
	Region    *string  `json:"region"`
	IsActive  *bool    `json:"is_active"`
}

func (r *UpdateFieldRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}
	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type FieldFilter struct {
	ClientID string
	Search   string
	Page     int
	Limit    int
}
