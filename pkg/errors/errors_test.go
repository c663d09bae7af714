package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrapClientNotFound(t *testing.T) {
	err := WrapClientNotFound(42)

	assert.True(t, IsNotFound(err))
	assert.False(t, IsValidation(err))
	assert.Equal(t, ErrCodeClientNotFound, err.Code)
	assert.Contains(t, err.Error(), "42")
}

func TestWrapInvalidCreditReference(t *testing.T) {
	err := WrapInvalidCreditReference(21)

	assert.True(t, IsInvalidReference(err))
	assert.False(t, IsNotFound(err))
	assert.Equal(t, ErrCodeInvalidCreditReference, err.Code)
}

func TestWrapValidationFailed_KeepsCause(t *testing.T) {
	cause := fmt.Errorf("amount must be positive")
	err := WrapValidationFailed(cause)

	assert.True(t, IsValidation(err))
	assert.Contains(t, err.Error(), "amount must be positive")
}

func TestServiceError_UnwrapsThroughAs(t *testing.T) {
	wrapped := fmt.Errorf("handling request: %w", WrapRepaymentNotFound(31))

	var svcErr *ServiceError
	assert.True(t, errors.As(wrapped, &svcErr))
	assert.Equal(t, ErrCodeRepaymentNotFound, svcErr.Code)
	assert.True(t, IsNotFound(wrapped))
}

func TestWrapDatabaseError_IsNoCategory(t *testing.T) {
	err := WrapDatabaseError(errors.New("connection refused"))

	assert.False(t, IsNotFound(err))
	assert.False(t, IsInvalidReference(err))
	assert.False(t, IsValidation(err))
	assert.Equal(t, ErrCodeDatabaseError, err.Code)
}
