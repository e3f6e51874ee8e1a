package worker

import "github.com/tals012/agriculture-hrms-sub002/internal/pkg/validator"

type CreateWorkerRequest struct {
	PassportNumber  string  `json:"passport_number"`
	FirstName       string  `json:"first_name"`
	LastName        string  `json:"last_name"`
	FirstNameHe     *string `json:"first_name_he"`
	LastNameHe      *string `json:"last_name_he"`
	Phone           *string `json:"phone"`
	CountryOfOrigin *string `json:"country_of_origin"`
	VisaExpiryDate  *string `json:"visa_expiry_date"`
}

func (r *CreateWorkerRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.PassportNumber) {
		errs = append(errs, validator.ValidationError{
			Field:   "passport_number",
			Message: "passport_number is required",
		})
	} else if !validator.IsValidPassport(r.PassportNumber) {
		errs = append(errs, validator.ValidationError{
			Field:   "passport_number",
			Message: "passport_number must be 5-20 alphanumeric characters",
		})
	}
	if validator.IsEmpty(r.FirstName) {
		errs = append(errs, validator.ValidationError{
			Field:   "first_name",
			Message: "first_name is required",
		})
	}
	if validator.IsEmpty(r.LastName) {
		errs = append(errs, validator.ValidationError{
			Field:   "last_name",
			Message: "last_name is required",
		})
	}
	if r.Phone != nil && !validator.IsEmpty(*r.Phone) && !validator.IsValidPhoneNumber(*r.Phone) {
		errs = append(errs, validator.ValidationError{
			Field:   "phone",
			Message: "phone number format is invalid",
		})
	}
	if r.VisaExpiryDate != nil && !validator.IsEmpty(*r.VisaExpiryDate) {
		if _, ok := validator.IsValidDate(*r.VisaExpiryDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "visa_expiry_date",
				Message: "visa_expiry_date must be in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateWorkerRequest struct {
	ID              string  `json:"id"`
	FirstName       string  `json:"first_name"`
	LastName        string  `json:"last_name"`
	FirstNameHe     *string `json:"first_name_he"`
	LastNameHe      *string `json:"last_name_he"`
	Phone           *string `json:"phone"`
	CountryOfOrigin *string `json:"country_of_origin"`
	VisaExpiryDate  *string `json:"visa_expiry_date"`
	IsActive        *bool   `json:"is_active"`
}

func (r *UpdateWorkerRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}
	if validator.IsEmpty(r.FirstName) {
		errs = append(errs, validator.ValidationError{
			Field:   "first_name",
			Message: "first_name is required",
		})
	}
	if validator.IsEmpty(r.LastName) {
		errs = append(errs, validator.ValidationError{
			Field:   "last_name",
			Message: "last_name is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type WorkerFilter struct {
	GroupID  string
	Search   string
	IsActive *bool
	Page     int
	Limit    int
}
