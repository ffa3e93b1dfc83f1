package errors

import "fmt"

type ErrorCode string

const (
	// Generic codes
	ErrInvalidInput       ErrorCode = "invalid_input"
	ErrInvalidRequestData ErrorCode = "invalid_request_data"
	ErrUnauthorized       ErrorCode = "unauthorized"
	ErrForbidden          ErrorCode = "forbidden"
	ErrNotFound           ErrorCode = "not_found"
	ErrAlreadyExists      ErrorCode = "already_exists"
	ErrInternalServer     ErrorCode = "internal_server"

	// Token codes
	ErrTokenExpired               ErrorCode = "token_expired"
	ErrInvalidTokenFormat         ErrorCode = "invalid_token_format"
	ErrMissingAuthorizationHeader ErrorCode = "missing_authorization_header"

	// Workflow codes
	ErrCapacityExceeded  ErrorCode = "capacity_exceeded"
	ErrAlreadyAssigned   ErrorCode = "already_assigned"
	ErrUnknownAssignment ErrorCode = "unknown_assignment"
	ErrIllegalTransition ErrorCode = "illegal_transition"
	ErrStoreUnavailable  ErrorCode = "store_unavailable"
	ErrConflict          ErrorCode = "conflict"
)

// AppError is the error type carried between services and controllers.
type AppError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Err     error     `json:"-"`
}

func NewAppError(code ErrorCode, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}
