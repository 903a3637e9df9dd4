package utils

import (
	"errors"
	"fmt"
	"net/http"
)

// Domain-level errors used by the service layer to provide
// fine-grained failure reasons.
var (
	ErrRateLimitExceeded    = errors.New("rate_limit_exceeded")
	ErrUnknownClient        = errors.New("unknown_client")
	ErrMissingDatabaseURL   = errors.New("missing_database_url")
	ErrInvalidStorageDriver = errors.New("invalid_storage_driver")
)

// AppError is the structured error passed from services to controllers.
type AppError struct {
	StatusCode int
	Code       string
	Message    string
	Details    any
	Err        error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NewValidationError(message string, details any) *AppError {
	return &AppError{StatusCode: http.StatusUnprocessableEntity, Code: ErrCodeValidation, Message: message, Details: details}
}

func NewNotFoundError(entity string, id int64) *AppError {
	return &AppError{StatusCode: http.StatusNotFound, Code: ErrCodeNotFound, Message: fmt.Sprintf("%s %d not found", entity, id)}
}

// NewInternalError keeps the cause for logs only; callers see message.
func NewInternalError(message string, err error) *AppError {
	return &AppError{StatusCode: http.StatusInternalServerError, Code: ErrCodeInternal, Message: message, Err: err}
}

func NewConflictError(message string) *AppError {
	return &AppError{StatusCode: http.StatusConflict, Code: ErrCodeConflict, Message: message}
}

// HandleAppError centralizes responding to AppErrors.
func HandleAppError(w http.ResponseWriter, err error) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		RespondErrorWithCode(w, appErr.StatusCode, appErr.Code, appErr.Message, appErr.Details, appErr.Err)
	} else {
		// Fallback for unexpected error types
		RespondErrorWithCode(w, http.StatusInternalServerError, ErrCodeInternal, "An unexpected error occurred", nil, err)
	}
}

// IsErrorCode reports whether err is an AppError carrying code.
func IsErrorCode(err error, code string) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Code == code
}
