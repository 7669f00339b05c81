package response

import (
	"errors"
	"net/http"

	"github.com/MHamza118/EMSFSPro-sub000/internal/domain/attendance"
	"github.com/MHamza118/EMSFSPro-sub000/internal/domain/auth"
	"github.com/MHamza118/EMSFSPro-sub000/internal/domain/compensation"
	"github.com/MHamza118/EMSFSPro-sub000/internal/domain/employee"
	"github.com/MHamza118/EMSFSPro-sub000/internal/domain/holiday"
	"github.com/MHamza118/EMSFSPro-sub000/internal/domain/notification"
	"github.com/MHamza118/EMSFSPro-sub000/internal/domain/task"
	"github.com/MHamza118/EMSFSPro-sub000/internal/domain/user"
	"github.com/MHamza118/EMSFSPro-sub000/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	// A rejected attendance action carries its decision; the reason code
	// and message are surfaced verbatim so the client can branch on them.
	var gateErr *attendance.GateError
	if errors.As(err, &gateErr) {
		writeJSON(w, http.StatusConflict, Response{
			Success: false,
			Data:    gateErr.Decision,
			Error: &ErrorDetail{
				Code:    string(gateErr.Decision.Reason),
				Message: gateErr.Decision.Message,
			},
		})
		return
	}

	// Auth domain errors
	switch {
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrAccountDisabled):
		Forbidden(w, "Account is disabled")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, auth.ErrUserNotFound):
		NotFound(w, "User not found")

	// User domain errors
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, user.ErrAdminPrivilegeRequired):
		Forbidden(w, "Admin privilege required")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmailExists):
		Conflict(w, "Email already registered")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrEventNotFound):
		NotFound(w, "Attendance event not found")

	// Holiday domain errors
	case errors.Is(err, holiday.ErrRequestNotFound):
		NotFound(w, "Holiday request not found")
	case errors.Is(err, holiday.ErrAlreadyDecided):
		Conflict(w, "Holiday request already decided")

	// Compensation domain errors
	case errors.Is(err, compensation.ErrRequestNotFound):
		NotFound(w, "Compensation request not found")
	case errors.Is(err, compensation.ErrAlreadyDecided):
		Conflict(w, "Compensation request already decided")

	// Task domain errors
	case errors.Is(err, task.ErrTaskNotFound):
		NotFound(w, "Task not found")
	case errors.Is(err, task.ErrInvalidTransition):
		Conflict(w, "Invalid task status transition")

	// Notification domain errors
	case errors.Is(err, notification.ErrNotificationNotFound):
		NotFound(w, "Notification not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
