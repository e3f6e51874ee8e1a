package species

import "github.com/tals012/agriculture-hrms-sub002/internal/pkg/validator"

type Species struct {
	ID             string
	OrganizationID string
	Name           string
	NameHe         *string
}

type CreateSpeciesRequest struct {
	Name   string  `json:"name"`
	NameHe *string `json:"name_he"`
}

func (r *CreateSpeciesRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}
	if len(r.Name) > 100 {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not exceed 100 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateSpeciesRequest struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	NameHe *string `json:"name_he"`
}

func (r *UpdateSpeciesRequest) Validate() error {
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
