package document

import (
	"strconv"

	"github.com/tals012/agriculture-hrms-sub002/internal/pkg/validator"
)

type CreateSigningRequest struct {
	WorkerID string `json:"worker_id"`
	Name     string `json:"name"`
	Body     string `json:"body"`
}

func (r *CreateSigningRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.WorkerID) {
		errs = append(errs, validator.ValidationError{
			Field:   "worker_id",
			Message: "worker_id is required",
		})
	}
	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}
	if validator.IsEmpty(r.Body) {
		errs = append(errs, validator.ValidationError{
			Field:   "body",
			Message: "body is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// BulkSigningRequest sends one document body to many workers. Per-worker
// failures are collected in the results, not returned as errors.
type BulkSigningRequest struct {
	WorkerIDs []string `json:"worker_ids"`
	Name      string   `json:"name"`
	Body      string   `json:"body"`
}

func (r *BulkSigningRequest) Validate() error {
	var errs validator.ValidationErrors

	if len(r.WorkerIDs) == 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "worker_ids",
			Message: "at least one worker_id is required",
		})
	}
	for i, id := range r.WorkerIDs {
		if validator.IsEmpty(id) {
			errs = append(errs, validator.ValidationError{
				Field:   "worker_ids[" + strconv.Itoa(i) + "]",
				Message: "worker_id is empty",
			})
		}
	}
	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}
	if validator.IsEmpty(r.Body) {
		errs = append(errs, validator.ValidationError{
			Field:   "body",
			Message: "body is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type SigningResult struct {
	WorkerID   string  `json:"worker_id"`
	Success    bool    `json:"success"`
	DocumentID *string `json:"document_id,omitempty"`
	Error      *string `json:"error,omitempty"`
}

type BulkSigningResponse struct {
	OK      bool            `json:"ok"`
	Results []SigningResult `json:"results"`
}

type SignDocumentRequest struct {
	SigningToken string `json:"signing_token"`
	SigningCode  string `json:"signing_code"`
}

func (r *SignDocumentRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.SigningToken) {
		errs = append(errs, validator.ValidationError{
			Field:   "signing_token",
			Message: "signing_token is required",
		})
	}
	if len(r.SigningCode) != 6 || !validator.IsNumeric(r.SigningCode) {
		errs = append(errs, validator.ValidationError{
			Field:   "signing_code",
			Message: "signing_code must be a 6-digit number",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type DocumentResponse struct {
	ID         string  `json:"id"`
	WorkerID   string  `json:"worker_id"`
	WorkerName *string `json:"worker_name,omitempty"`
	Name       string  `json:"name"`
	Status     string  `json:"status"`
	ExpiresAt  string  `json:"expires_at"`
	SignedAt   *string `json:"signed_at,omitempty"`
}
