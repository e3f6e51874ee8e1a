package group

import (
	"strconv"

	"github.com/tals012/agriculture-hrms-sub002/internal/pkg/validator"
)

type CreateGroupRequest struct {
	ClientID       string   `json:"client_id"`
	FieldID        *string  `json:"field_id"`
	Name           string   `json:"name"`
	LeaderWorkerID *string  `json:"leader_worker_id"`
	WorkerIDs      []string `json:"worker_ids"`
}

func (r *CreateGroupRequest) Validate() error {
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
	for i, id := range r.WorkerIDs {
		if validator.IsEmpty(id) {
			errs = append(errs, validator.ValidationError{
				Field:   "worker_ids",
				Message: "worker_ids[" + strconv.Itoa(i) + "] is empty",
			})
			break
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type AddMembersRequest struct {
	GroupID   string   `json:"group_id"`
	WorkerIDs []string `json:"worker_ids"`
}

func (r *AddMembersRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.GroupID) {
		errs = append(errs, validator.ValidationError{
			Field:   "group_id",
			Message: "group_id is required",
		})
	}
	if len(r.WorkerIDs) == 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "worker_ids",
			Message: "at least one worker_id is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateGroupRequest struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	FieldID        *string `json:"field_id"`
	LeaderWorkerID *string `json:"leader_worker_id"`
	IsActive       *bool   `json:"is_active"`
}

func (r *UpdateGroupRequest) Validate() error {
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

type GroupFilter struct {
	ClientID string
	FieldID  string
	Search   string
	Page     int
	Limit    int
}
