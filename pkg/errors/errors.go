package errors

import (
	"errors"
	"fmt"
)

// Domain errors
var (
	ErrNotFound         = errors.New("entity not found")
	ErrInvalidReference = errors.New("referenced entity not found")
	ErrValidation       = errors.New("validation failed")
)

// ServiceError represents a failure surfaced by the service layer
type ServiceError struct {
	Code    string
	Message string
	Err     error
}

func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *ServiceError) Unwrap() error {
	return e.Err
}

// NewServiceError creates a new service error
func NewServiceError(code, message string, err error) *ServiceError {
	return &ServiceError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Error codes
const (
	ErrCodeClientNotFound         = "CLIENT_NOT_FOUND"
	ErrCodeCreditNotFound         = "CREDIT_NOT_FOUND"
	ErrCodeRepaymentNotFound      = "REPAYMENT_NOT_FOUND"
	ErrCodeInvalidClientReference = "INVALID_CLIENT_REFERENCE"
	ErrCodeInvalidCreditReference = "INVALID_CREDIT_REFERENCE"
	ErrCodeValidationFailed       = "VALIDATION_FAILED"
	ErrCodeDatabaseError          = "DATABASE_ERROR"
)

// Wrap common errors with business context
func WrapClientNotFound(id int64) *ServiceError {
	return NewServiceError(
		ErrCodeClientNotFound,
		fmt.Sprintf("Client with ID %d not found", id),
		ErrNotFound,
	)
}

func WrapCreditNotFound(id int64) *ServiceError {
	return NewServiceError(
		ErrCodeCreditNotFound,
		fmt.Sprintf("Credit with ID %d not found", id),
		ErrNotFound,
	)
}

func WrapRepaymentNotFound(id int64) *ServiceError {
	return NewServiceError(
		ErrCodeRepaymentNotFound,
		fmt.Sprintf("Repayment with ID %d not found", id),
		ErrNotFound,
	)
}

func WrapInvalidClientReference(clientID int64) *ServiceError {
	return NewServiceError(
		ErrCodeInvalidClientReference,
		fmt.Sprintf("Client with ID %d does not exist", clientID),
		ErrInvalidReference,
	)
}

func WrapInvalidCreditReference(creditID int64) *ServiceError {
	return NewServiceError(
		ErrCodeInvalidCreditReference,
		fmt.Sprintf("Credit with ID %d does not exist", creditID),
		ErrInvalidReference,
	)
}

func WrapValidationFailed(err error) *ServiceError {
	return NewServiceError(
		ErrCodeValidationFailed,
		"invalid input",
		fmt.Errorf("%w: %v", ErrValidation, err),
	)
}

func WrapValidationMessage(message string) *ServiceError {
	return NewServiceError(
		ErrCodeValidationFailed,
		message,
		ErrValidation,
	)
}

func WrapDatabaseError(err error) *ServiceError {
	return NewServiceError(
		ErrCodeDatabaseError,
		"database operation failed",
		err,
	)
}

// IsNotFound reports whether err is a not-found failure
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsInvalidReference reports whether err is an invalid-reference failure
func IsInvalidReference(err error) bool {
	return errors.Is(err, ErrInvalidReference)
}

// IsValidation reports whether err is a validation failure
func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation)
}
