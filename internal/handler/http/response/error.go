package response

import (
	"errors"
	"net/http"

	"github.com/officetrack/attendance-backend-go/internal/domain/attendance"
	"github.com/officetrack/attendance-backend-go/internal/domain/auth"
	"github.com/officetrack/attendance-backend-go/internal/domain/employee"
	"github.com/officetrack/attendance-backend-go/internal/domain/report"
	"github.com/officetrack/attendance-backend-go/internal/domain/user"
	"github.com/officetrack/attendance-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	// Auth domain errors
	switch {
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid token")
	case errors.Is(err, auth.ErrNoSession):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrEmailAlreadyInUse):
		Conflict(w, "Email already registered")
	case errors.Is(err, auth.ErrAdminOnly):
		Forbidden(w, err.Error())
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")

	// Attendance capture errors
	case errors.Is(err, attendance.ErrDepartmentRequired):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, attendance.ErrNoEmployeesFound):
		NotFound(w, err.Error())
	case errors.Is(err, attendance.ErrConfirmationRequired):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, attendance.ErrAlreadySubmitted):
		Conflict(w, err.Error())

	// Attendance edit gate errors
	case errors.Is(err, attendance.ErrPasswordRequired):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, attendance.ErrReauthenticationFailed):
		Unauthorized(w, err.Error())
	case errors.Is(err, attendance.ErrEditCapabilityRequired):
		Forbidden(w, err.Error())
	case errors.Is(err, attendance.ErrNoRecordsFound):
		NotFound(w, err.Error())
	case errors.Is(err, attendance.ErrRecordNotFound):
		NotFound(w, err.Error())

	// Employee directory errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmployeeCodeExists):
		Conflict(w, "Employee code already exists")
	case errors.Is(err, employee.ErrInvalidDepartment):
		BadRequest(w, err.Error(), nil)

	// Report errors
	case errors.Is(err, report.ErrNoAttendanceData):
		EmptyResult(w, err.Error())

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
