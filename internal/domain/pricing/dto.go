package pricing

import "github.com/tals012/agriculture-hrms-sub002/internal/pkg/validator"

type CreateCombinationRequest struct {
	ClientID      string  `json:"client_id"`
	SpeciesID     string  `json:"species_id"`
	HarvestTypeID string  `json:"harvest_type_id"`
	Price         string  `json:"price"`
	ContainerNorm float64 `json:"container_norm"`
}

func (r *CreateCombinationRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ClientID) {
		errs = append(errs, validator.ValidationError{
			Field:   "client_id",
			Message: "client_id is required",
		})
	}
	if validator.IsEmpty(r.SpeciesID) {
		errs = append(errs, validator.ValidationError{
			Field:   "species_id",
			Message: "species_id is required",
		})
	}
	if validator.IsEmpty(r.HarvestTypeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "harvest_type_id",
			Message: "harvest_type_id is required",
		})
	}
	if validator.IsEmpty(r.Price) {
		errs = append(errs, validator.ValidationError{
			Field:   "price",
			Message: "price is required",
		})
	}
	if r.ContainerNorm <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "container_norm",
			Message: "container_norm must be positive",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateCombinationRequest struct {
	ID            string  `json:"id"`
	Price         string  `json:"price"`
	ContainerNorm float64 `json:"container_norm"`
}

func (r *UpdateCombinationRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}
	if validator.IsEmpty(r.Price) {
		errs = append(errs, validator.ValidationError{
			Field:   "price",
			Message: "price is required",
		})
	}
	if r.ContainerNorm <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "container_norm",
			Message: "container_norm must be positive",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}
