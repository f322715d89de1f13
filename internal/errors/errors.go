package errors

import (
	"errors"
	"fmt"
)

// Machine-readable error kinds rendered in API error bodies
const (
	KindValidation         = "validation"
	KindUnauthenticated    = "unauthenticated"
	KindStorageUnavailable = "storage_unavailable"
	KindConflict           = "conflict"
	KindNotFound           = "not_found"
	KindConfiguration      = "configuration"
	KindInternal           = "internal"
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

// AlreadyExistsError represents a conflict with an existing record
type AlreadyExistsError struct {
	Entity  string
	Context string // Additional context like "with this email"
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

// AuthenticationError is returned when no verified principal or tenant can be resolved
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// StorageUnavailableError wraps a persistence failure the caller may retry.
// Nothing is visible to readers when it is returned.
type StorageUnavailableError struct {
	Op  string
	Err error
}

func (e *StorageUnavailableError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("storage unavailable: %s", e.Op)
	}
	return fmt.Sprintf("storage unavailable: %s: %v", e.Op, e.Err)
}

func (e *StorageUnavailableError) Unwrap() error {
	return e.Err
}

// ConfigurationError represents configuration-related errors
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return e.Message
}

// Entity Not Found Errors
var (
	ErrItemNotFound   = &NotFoundError{Entity: "item"}
	ErrTenantNotFound = &NotFoundError{Entity: "tenant"}
	ErrUserNotFound   = &NotFoundError{Entity: "user"}
)

// Already Exists Errors
var (
	ErrItemExists = &AlreadyExistsError{Entity: "item", Context: "with this id"}
	ErrUserExists = &AlreadyExistsError{Entity: "user", Context: "with this email"}
)

// Authentication Errors
var (
	ErrMissingTenant      = &AuthenticationError{Message: "no authenticated tenant"}
	ErrUnknownTenant      = &AuthenticationError{Message: "authenticated tenant does not exist"}
	ErrInvalidCredentials = &AuthenticationError{Message: "invalid credentials"}
	ErrInactiveUser       = &AuthenticationError{Message: "user is inactive"}
)

// Business Logic Errors
var (
	ErrUnknownResourceKind     = errors.New("unknown resource kind")
	ErrInvalidPaginationParams = errors.New("invalid pagination parameters")
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

// IsConflict is an alias of IsAlreadyExists
func IsConflict(err error) bool {
	return IsAlreadyExists(err)
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

// IsStorageUnavailable checks if an error is a StorageUnavailableError
func IsStorageUnavailable(err error) bool {
	var storageErr *StorageUnavailableError
	return errors.As(err, &storageErr)
}

// IsConfiguration checks if an error is a ConfigurationError
func IsConfiguration(err error) bool {
	var configErr *ConfigurationError
	return errors.As(err, &configErr)
}

// Kind returns the machine-readable kind for err
func Kind(err error) string {
	switch {
	case err == nil:
		return ""
	case IsValidation(err):
		return KindValidation
	case IsAuthentication(err):
		return KindUnauthenticated
	case IsStorageUnavailable(err):
		return KindStorageUnavailable
	case IsAlreadyExists(err):
		return KindConflict
	case IsNotFound(err):
		return KindNotFound
	case IsConfiguration(err):
		return KindConfiguration
	default:
		return KindInternal
	}
}

// FieldOf returns the failing field of a ValidationError, or ""
func FieldOf(err error) string {
	var validationErr *ValidationError
	if errors.As(err, &validationErr) {
		return validationErr.Field
	}
	return ""
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewAlreadyExistsError creates a new AlreadyExistsError for a custom entity
func NewAlreadyExistsError(entity, context string) error {
	return &AlreadyExistsError{Entity: entity, Context: context}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewAuthenticationError creates a new AuthenticationError
func NewAuthenticationError(message string) error {
	return &AuthenticationError{Message: message}
}

// NewStorageUnavailableError creates a new StorageUnavailableError
func NewStorageUnavailableError(op string, err error) error {
	return &StorageUnavailableError{Op: op, Err: err}
}

// NewConfigurationError creates a new ConfigurationError
func NewConfigurationError(message string) error {
	return &ConfigurationError{Message: message}
}
