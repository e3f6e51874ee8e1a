package attendance

import "context"

// AttendanceService defines business logic for attendance operations.
type AttendanceService interface {
	// SubmitGroupAttendance processes a daily group submission. Failures
	// for individual workers are collected in the response, not returned
	// as errors.
	SubmitGroupAttendance(ctx context.Context, req GroupSubmissionRequest) (GroupSubmissionResponse, error)

	GetAttendance(ctx context.Context, id string) (AttendanceResponse, error)
	ListAttendance(ctx context.Context, filter AttendanceFilter) (ListAttendanceResponse, error)

	// ApproveAttendance transitions PENDING -> APPROVED.
	ApproveAttendance(ctx context.Context, req ApproveAttendanceRequest) (AttendanceResponse, error)

	// RejectAttendance transitions PENDING -> REJECTED with a reason.
	RejectAttendance(ctx context.Context, req RejectAttendanceRequest) (AttendanceResponse, error)

	// CorrectAttendance updates the editable whitelist and recomputes
	// dependent hour and wage fields.
	CorrectAttendance(ctx context.Context, req CorrectAttendanceRequest) (AttendanceResponse, error)

	DeleteAttendance(ctx context.Context, id string) error
}
