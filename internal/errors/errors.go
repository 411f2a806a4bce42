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
	Context string // Additional context like "for this date"
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

// Entity Not Found Errors
var (
	ErrEmployeeNotFound      = &NotFoundError{Entity: "employee"}
	ErrShiftNotFound         = &NotFoundError{Entity: "shift"}
	ErrTimeOffNotFound       = &NotFoundError{Entity: "time-off entry"}
	ErrRunnerNotFound        = &NotFoundError{Entity: "shift runner"}
	ErrShiftTypeNotFound     = &NotFoundError{Entity: "shift type"}
	ErrTemplateEntryNotFound = &NotFoundError{Entity: "template entry"}
	ErrScheduleNoteNotFound  = &NotFoundError{Entity: "schedule note"}
	ErrPatternNotFound       = &NotFoundError{Entity: "availability pattern"}
)

// Already Exists Errors
var (
	ErrEmployeeExists  = &AlreadyExistsError{Entity: "employee", Context: "with this display name"}
	ErrShiftTypeExists = &AlreadyExistsError{Entity: "shift type", Context: "with this key"}
)

// Business Logic Errors
var (
	ErrInvalidTimeRange      = errors.New("invalid time range")
	ErrInvalidTimeOfDay      = errors.New("invalid time of day")
	ErrInvalidWeekday        = errors.New("weekday must be between 0 (Sunday) and 6 (Saturday)")
	ErrInvalidTimeOffType    = errors.New("invalid time-off type")
	ErrMalformedTemplateTime = errors.New("malformed template time")
	ErrNothingToUndo         = errors.New("nothing to undo")
	ErrNothingToRedo         = errors.New("nothing to redo")
	ErrShiftNotPersisted     = errors.New("shift has not been persisted")
	ErrShiftTypeWindowClash  = errors.New("shift type windows overlap")
)

// Authentication Errors
var (
	ErrInvalidCredentials = &AuthenticationError{Message: "invalid credentials"}
	ErrInvalidToken       = &AuthenticationError{Message: "invalid or expired token"}
	ErrMissingToken       = &AuthenticationError{Message: "authorization token required"}
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

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}
