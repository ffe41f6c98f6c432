package apperrors

import (
	"errors"
	"fmt"
)

// ErrUnauthorized indicates that the caller lacks the role required for an operation.
var ErrUnauthorized = errors.New("caller lacks required role")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrLimitExceeded indicates that a deposit would push a balance above its deposit limit.
var ErrLimitExceeded = errors.New("deposit limit exceeded")

// ErrInvalidState indicates that the operation is not valid in the current pause state.
var ErrInvalidState = errors.New("invalid state for operation")

// ErrInsufficientBalance indicates that a debit exceeds the available balance.
var ErrInsufficientBalance = errors.New("insufficient balance")

// ErrCompliance indicates a whitelist or partition violation.
var ErrCompliance = errors.New("compliance check failed")

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrReentrancy indicates a nested call into a protected operation.
var ErrReentrancy = errors.New("reentrant call")

// ErrGateway indicates that the external asset transfer failed.
var ErrGateway = errors.New("external asset transfer failed")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// Specific compliance violations. Each one matches ErrCompliance with errors.Is.
var (
	ErrSenderNotWhitelisted    = fmt.Errorf("%w: sender not whitelisted", ErrCompliance)
	ErrRecipientNotWhitelisted = fmt.Errorf("%w: recipient not whitelisted", ErrCompliance)
	ErrPartitionMismatch       = fmt.Errorf("%w: partition mismatch", ErrCompliance)
	ErrAccountNotWhitelisted   = fmt.Errorf("%w: account not whitelisted", ErrCompliance)
	ErrAssetNotWhitelisted     = fmt.Errorf("%w: asset not whitelisted for deposits", ErrCompliance)
)

// AppError is an infrastructure error carrying the HTTP status it should map to.
type AppError struct {
	Code    int
	Message string
	Err     error
}

// NewAppError wraps err with a status code and message.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

func (e *AppError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Kind classifies err into a short, stable label for logs and metrics.
func Kind(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, ErrUnauthorized):
		return "unauthorized"
	case errors.Is(err, ErrValidation):
		return "validation"
	case errors.Is(err, ErrLimitExceeded):
		return "limit_exceeded"
	case errors.Is(err, ErrInvalidState):
		return "invalid_state"
	case errors.Is(err, ErrInsufficientBalance):
		return "insufficient_balance"
	case errors.Is(err, ErrCompliance):
		return "compliance"
	case errors.Is(err, ErrNotFound):
		return "not_found"
	case errors.Is(err, ErrReentrancy):
		return "reentrancy"
	case errors.Is(err, ErrGateway):
		return "gateway"
	default:
		return "internal"
	}
}
