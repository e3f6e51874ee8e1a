package attendance

import "errors"

var (
	ErrAttendanceNotFound  = errors.New("attendance record not found")
	ErrAttendanceExists    = errors.New("attendance already submitted for this worker, date and group")
	ErrAlreadyProcessed    = errors.New("attendance has already been approved or rejected")
	ErrPricingNotFound     = errors.New("no pricing combination found for the group's client, species and harvest type")
	ErrNotGroupMember      = errors.New("worker is not an active member of this group")
)
