package response

import (
	"errors"
	"net/http"

	"github.com/tals012/agriculture-hrms-sub002/internal/domain/attendance"
	"github.com/tals012/agriculture-hrms-sub002/internal/domain/auth"
	"github.com/tals012/agriculture-hrms-sub002/internal/domain/client"
	"github.com/tals012/agriculture-hrms-sub002/internal/domain/document"
	"github.com/tals012/agriculture-hrms-sub002/internal/domain/field"
	"github.com/tals012/agriculture-hrms-sub002/internal/domain/group"
	"github.com/tals012/agriculture-hrms-sub002/internal/domain/master/harvesttype"
	"github.com/tals012/agriculture-hrms-sub002/internal/domain/master/species"
	"github.com/tals012/agriculture-hrms-sub002/internal/domain/organization"
	"github.com/tals012/agriculture-hrms-sub002/internal/domain/payroll"
	"github.com/tals012/agriculture-hrms-sub002/internal/domain/pricing"
	"github.com/tals012/agriculture-hrms-sub002/internal/domain/schedule"
	"github.com/tals012/agriculture-hrms-sub002/internal/domain/user"
	"github.com/tals012/agriculture-hrms-sub002/internal/domain/worker"
	"github.com/tals012/agriculture-hrms-sub002/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or missing token")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, auth.ErrOrganizationMissing):
		Unauthorized(w, "Organization claim is missing")
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrUserInactive):
		Forbidden(w, "User account is inactive")
	case errors.Is(err, user.ErrEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, user.ErrAdminPrivilegeRequired):
		Forbidden(w, "Admin privilege required")
	case errors.Is(err, organization.ErrOrganizationNotFound):
		NotFound(w, "Organization not found")
	case errors.Is(err, organization.ErrOrganizationInactive):
		Forbidden(w, "Organization is deactivated")

	// CRM domain errors
	case errors.Is(err, client.ErrClientNotFound):
		NotFound(w, "Client not found")
	case errors.Is(err, client.ErrClientNameExists):
		Conflict(w, "Client name already exists in this organization")
	case errors.Is(err, field.ErrFieldNotFound):
		NotFound(w, "Field not found")
	case errors.Is(err, group.ErrGroupNotFound):
		NotFound(w, "Group not found")
	case errors.Is(err, group.ErrWorkerAlreadyMember):
		Conflict(w, "Worker is already a member of this group")
	case errors.Is(err, group.ErrMemberNotFound):
		NotFound(w, "Group member not found")
	case errors.Is(err, worker.ErrWorkerNotFound):
		NotFound(w, "Worker not found")
	case errors.Is(err, worker.ErrPassportExists):
		Conflict(w, "Passport number already registered")
	case errors.Is(err, worker.ErrMissingSalaryDetails):
		BadRequest(w, "Worker is missing details required by the salary system", nil)
	case errors.Is(err, worker.ErrAlreadyRegistered):
		Conflict(w, "Worker is already registered in the salary system")

	// Master data errors
	case errors.Is(err, species.ErrSpeciesNotFound):
		NotFound(w, "Species not found")
	case errors.Is(err, harvesttype.ErrHarvestTypeNotFound):
		NotFound(w, "Harvest type not found")

	// Pricing errors
	case errors.Is(err, pricing.ErrCombinationNotFound):
		NotFound(w, "Pricing combination not found")
	case errors.Is(err, pricing.ErrCombinationExists):
		Conflict(w, "Pricing combination already exists for this client, species and harvest type")
	case errors.Is(err, pricing.ErrInvalidContainerNorm):
		BadRequest(w, "Container norm must be positive", nil)

	// Schedule errors
	case errors.Is(err, schedule.ErrScheduleNotFound):
		NotFound(w, "Working schedule not found")
	case errors.Is(err, schedule.ErrAmbiguousScope):
		BadRequest(w, "At most one scope id may be set on a working schedule", nil)
	case errors.Is(err, schedule.ErrInvalidTimeWindow):
		BadRequest(w, "End time must be after start time", nil)

	// Attendance errors
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrAttendanceExists):
		Conflict(w, "Attendance already submitted for this worker, date and group")
	case errors.Is(err, attendance.ErrAlreadyProcessed):
		Conflict(w, "Attendance has already been approved or rejected")
	case errors.Is(err, attendance.ErrPricingNotFound):
		BadRequest(w, "No pricing combination found for the group's client, species and harvest type", nil)
	case errors.Is(err, attendance.ErrNotGroupMember):
		BadRequest(w, "Worker is not an active member of this group", nil)

	// Payroll errors
	case errors.Is(err, payroll.ErrSubmissionNotFound):
		NotFound(w, "Monthly submission not found")
	case errors.Is(err, payroll.ErrInvalidPeriod):
		BadRequest(w, "Invalid payroll period", nil)
	case errors.Is(err, payroll.ErrNothingToAggregate):
		BadRequest(w, "No approved attendance records in the requested period", nil)
	case errors.Is(err, payroll.ErrSalarySystemDisabled):
		ServiceUnavailable(w, "Salary system integration is not configured")

	// Document signing errors
	case errors.Is(err, document.ErrDocumentNotFound):
		NotFound(w, "Document not found")
	case errors.Is(err, document.ErrInvalidSigningCode):
		BadRequest(w, "Signing code does not match", nil)
	case errors.Is(err, document.ErrSigningExpired):
		Conflict(w, "Signing request has expired")
	case errors.Is(err, document.ErrAlreadySigned):
		Conflict(w, "Document has already been signed")
	case errors.Is(err, document.ErrWorkerHasNoPhone):
		BadRequest(w, "Worker has no phone number for SMS delivery", nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
