package errors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundError(t *testing.T) {
	t.Run("Error message", func(t *testing.T) {
		err := &NotFoundError{Entity: "assignment"}
		assert.Equal(t, "assignment not found", err.Error())
	})

	t.Run("errors.Is comparison with same entity", func(t *testing.T) {
		err1 := &NotFoundError{Entity: "assignment"}
		err2 := &NotFoundError{Entity: "assignment"}
		assert.True(t, errors.Is(err1, err2))
	})

	t.Run("errors.Is comparison with different entity", func(t *testing.T) {
		err1 := &NotFoundError{Entity: "assignment"}
		err2 := &NotFoundError{Entity: "complaint"}
		assert.False(t, errors.Is(err1, err2))
	})

	t.Run("errors.Is with predefined errors", func(t *testing.T) {
		assert.True(t, errors.Is(ErrAssignmentNotFound, ErrAssignmentNotFound))
		assert.False(t, errors.Is(ErrAssignmentNotFound, ErrComplaintNotFound))
	})

	t.Run("IsNotFound helper", func(t *testing.T) {
		assert.True(t, IsNotFound(ErrAssignmentNotFound))
		assert.False(t, IsNotFound(ErrInvalidAction))
	})
}

func TestAlreadyExistsError(t *testing.T) {
	t.Run("Error message with context", func(t *testing.T) {
		err := &AlreadyExistsError{Entity: "leader", Context: "for this complaint"}
		assert.Equal(t, "leader already exists for this complaint", err.Error())
	})

	t.Run("Error message without context", func(t *testing.T) {
		err := &AlreadyExistsError{Entity: "leader"}
		assert.Equal(t, "leader already exists", err.Error())
	})

	t.Run("errors.Is comparison", func(t *testing.T) {
		err1 := &AlreadyExistsError{Entity: "profile", Context: "with this email"}
		err2 := &AlreadyExistsError{Entity: "profile", Context: "with this email"}
		assert.True(t, errors.Is(err1, err2))
	})

	t.Run("IsAlreadyExists helper", func(t *testing.T) {
		assert.True(t, IsAlreadyExists(ErrProfileExists))
		assert.False(t, IsAlreadyExists(ErrProfileNotFound))
	})
}

func TestValidationError(t *testing.T) {
	t.Run("Error message with field", func(t *testing.T) {
		err := &ValidationError{Field: "time_out", Message: "must be after time_in"}
		assert.Equal(t, "validation error: time_out - must be after time_in", err.Error())
	})

	t.Run("Error message without field", func(t *testing.T) {
		err := &ValidationError{Message: "invalid payload"}
		assert.Equal(t, "validation error: invalid payload", err.Error())
	})

	t.Run("IsValidation helper", func(t *testing.T) {
		assert.True(t, IsValidation(NewValidationError("action", "unknown action")))
		assert.False(t, IsValidation(ErrAssignmentNotFound))
	})
}

func TestAuthErrors(t *testing.T) {
	t.Run("IsAuthentication helper", func(t *testing.T) {
		assert.True(t, IsAuthentication(ErrInvalidCredentials))
		assert.False(t, IsAuthentication(ErrNotAssignmentOwner))
	})

	t.Run("IsAuthorization helper", func(t *testing.T) {
		assert.True(t, IsAuthorization(ErrSupervisorOnly))
		assert.True(t, IsAuthorization(ErrNotAssignmentOwner))
		assert.False(t, IsAuthorization(ErrInvalidCredentials))
	})
}
