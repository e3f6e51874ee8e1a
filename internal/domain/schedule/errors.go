package schedule

import "errors"

var (
	ErrScheduleNotFound   = errors.New("working schedule not found")
	ErrAmbiguousScope     = errors.New("at most one scope id may be set on a working schedule")
	ErrInvalidTimeWindow  = errors.New("end time must be after start time")
)
