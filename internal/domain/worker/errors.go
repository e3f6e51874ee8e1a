package worker

import "errors"

var (
	ErrWorkerNotFound       = errors.New("worker not found")
	ErrPassportExists       = errors.New("passport number already registered in this organization")
	ErrMissingSalaryDetails = errors.New("worker is missing passport or name fields required by the salary system")
	ErrAlreadyRegistered    = errors.New("worker is already registered in the salary system")
)
