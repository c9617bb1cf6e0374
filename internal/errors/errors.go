package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// AlreadyExistsError represents an error when an entity already exists
type AlreadyExistsError struct {
	Entity  string
	Context string // Additional context like "for this complaint"
}

func (e *AlreadyExistsError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s already exists %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is enables errors.Is() comparison for AlreadyExistsError
func (e *AlreadyExistsError) Is(target error) bool {
	t, ok := target.(*AlreadyExistsError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// AuthenticationError represents authentication-related errors
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// AuthorizationError represents authorization-related errors
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string {
	return e.Message
}

// Entity Not Found Errors
var (
	ErrProfileNotFound       = &NotFoundError{Entity: "profile"}
	ErrComplaintNotFound     = &NotFoundError{Entity: "complaint"}
	ErrComplaintTypeNotFound = &NotFoundError{Entity: "complaint type"}
	ErrAssignmentNotFound    = &NotFoundError{Entity: "assignment"}
	ErrStoreNotFound         = &NotFoundError{Entity: "store"}
	ErrMaterialNotFound      = &NotFoundError{Entity: "material"}
	ErrBuildingNotFound      = &NotFoundError{Entity: "building"}
	ErrLeaderNotFound        = &NotFoundError{Entity: "leader"}
)

// Already Exists Errors
var (
	ErrProfileExists    = &AlreadyExistsError{Entity: "profile", Context: "with this email"}
	ErrAssignmentExists = &AlreadyExistsError{Entity: "assignment", Context: "for this worker on this complaint"}
)

// Business Logic Errors
var (
	ErrInvalidAction           = errors.New("invalid action")
	ErrInvalidStatus           = errors.New("invalid status")
	ErrInvalidTimeRange        = errors.New("time_out must be after time_in")
	ErrInvalidScheduleRange    = errors.New("scheduled_end must be after scheduled_start")
	ErrAssignmentTerminal      = errors.New("assignment is already in a terminal state")
	ErrVisitWindowIncomplete   = errors.New("record time in and time out on the latest visit before marking done")
	ErrLeaderRequired          = errors.New("leader_id is required and must be one of worker_ids when assigning the first time")
	ErrLeaderConflict          = errors.New("leader already set for this complaint; cannot set a different leader in this assignment")
	ErrLeaderMustRemain        = errors.New("a leader must be designated among remaining workers")
	ErrLeaderNotAmongRemaining = errors.New("leader_id must be among remaining assigned workers")
	ErrWorkerIDsRequired       = errors.New("worker_ids is required")
	ErrComplaintStatusDerived  = errors.New("complaint status is derived from assignments; approve or reopen assignments to change it")
	ErrNoFieldsToUpdate        = errors.New("no valid fields to update")
)

// Authentication and Authorization Errors
var (
	ErrInvalidCredentials = &AuthenticationError{Message: "invalid email or password"}
	ErrProfileInactive    = &AuthenticationError{Message: "profile is deactivated"}
	ErrNotAssignmentOwner = &AuthorizationError{Message: "only the assigned worker may perform this action"}
	ErrSupervisorOnly     = &AuthorizationError{Message: "supervisor role required"}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsAlreadyExists checks if an error is an AlreadyExistsError
func IsAlreadyExists(err error) bool {
	var existsErr *AlreadyExistsError
	return errors.As(err, &existsErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsAuthentication checks if an error is an AuthenticationError
func IsAuthentication(err error) bool {
	var authErr *AuthenticationError
	return errors.As(err, &authErr)
}

// IsAuthorization checks if an error is an AuthorizationError
func IsAuthorization(err error) bool {
	var authzErr *AuthorizationError
	return errors.As(err, &authzErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewAuthenticationError creates a new AuthenticationError
func NewAuthenticationError(message string) error {
	return &AuthenticationError{Message: message}
}

// NewAuthorizationError creates a new AuthorizationError
func NewAuthorizationError(message string) error {
	return &AuthorizationError{Message: message}
}
