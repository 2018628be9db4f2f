// Package errors provides custom error types for the Vita API.
// All service-layer errors should use AppError to ensure consistent,
// secure error responses that never leak internal details to clients.
package errors

import "net/http"

// AppError represents a structured application error with an error code,
// human-readable message, HTTP status code, and optional internal error.
type AppError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	StatusCode int    `json:"-"`
	Internal   error  `json:"-"`
}

// Error implements the error interface.
func (e *AppError) Error() string { return e.Message }

// Unwrap returns the internal error for use with errors.Is/As.
func (e *AppError) Unwrap() error { return e.Internal }

// Wrap creates a new AppError with the same code/message/status but wraps an internal error.
func Wrap(sentinel *AppError, internal error) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    sentinel.Message,
		StatusCode: sentinel.StatusCode,
		Internal:   internal,
	}
}

// WithMessage creates a new AppError with a custom message.
func WithMessage(sentinel *AppError, message string) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    message,
		StatusCode: sentinel.StatusCode,
		Internal:   sentinel.Internal,
	}
}

// Authentication & authorization errors.
var (
	ErrUnauthorized       = &AppError{Code: "UNAUTHORIZED", Message: "Authentication required", StatusCode: http.StatusUnauthorized}
	ErrInvalidCredentials = &AppError{Code: "INVALID_CREDENTIALS", Message: "Invalid email or password", StatusCode: http.StatusUnauthorized}
	ErrInvalidToken       = &AppError{Code: "INVALID_TOKEN", Message: "Invalid token", StatusCode: http.StatusUnauthorized}
	ErrTokenExpired       = &AppError{Code: "TOKEN_EXPIRED", Message: "Token has expired", StatusCode: http.StatusUnauthorized}
	ErrWrongPassword      = &AppError{Code: "WRONG_PASSWORD", Message: "Current password is incorrect", StatusCode: http.StatusUnauthorized}
)

// General errors.
var (
	ErrInvalidInput   = &AppError{Code: "INVALID_INPUT", Message: "Invalid input", StatusCode: http.StatusBadRequest}
	ErrInternalServer = &AppError{Code: "INTERNAL_ERROR", Message: "An internal error occurred", StatusCode: http.StatusInternalServerError}
)

// User errors.
var (
	ErrUserNotFound = &AppError{Code: "USER_NOT_FOUND", Message: "User not found", StatusCode: http.StatusNotFound}
	// The original API answers duplicate email and duplicate display name with
	// the same 400 response; clients depend on that mapping.
	ErrDuplicateIdentity = &AppError{Code: "DUPLICATE_IDENTITY", Message: "This email or display name is already in use", StatusCode: http.StatusBadRequest}
	ErrSamePassword      = &AppError{Code: "SAME_PASSWORD", Message: "New password must be different from the current password", StatusCode: http.StatusBadRequest}
	ErrPasswordTooShort  = &AppError{Code: "PASSWORD_TOO_SHORT", Message: "Password does not meet the minimum length", StatusCode: http.StatusBadRequest}
)

// Password reset errors. Invalid, expired and never-issued tokens share one
// sentinel so redemption cannot be used as a token-guessing oracle.
var (
	ErrInvalidResetToken = &AppError{Code: "INVALID_RESET_TOKEN", Message: "Invalid or expired reset token. Please request a new password reset.", StatusCode: http.StatusBadRequest}
	ErrMailSendFailed    = &AppError{Code: "MAIL_SEND_FAILED", Message: "Failed to send the password reset email", StatusCode: http.StatusInternalServerError}
)

// Child entity errors. Records owned by another user intentionally map to the
// same 404 as nonexistent records.
var (
	ErrTaskNotFound         = &AppError{Code: "TASK_NOT_FOUND", Message: "Task not found", StatusCode: http.StatusNotFound}
	ErrNoteNotFound         = &AppError{Code: "NOTE_NOT_FOUND", Message: "Note not found", StatusCode: http.StatusNotFound}
	ErrEventNotFound        = &AppError{Code: "EVENT_NOT_FOUND", Message: "Calendar event not found", StatusCode: http.StatusNotFound}
	ErrPomodoroTaskNotFound = &AppError{Code: "POMODORO_TASK_NOT_FOUND", Message: "Pomodoro task not found", StatusCode: http.StatusNotFound}
	ErrInvalidPriority      = &AppError{Code: "INVALID_PRIORITY", Message: "Priority must be one of 'low', 'medium' or 'high'", StatusCode: http.StatusBadRequest}
)
