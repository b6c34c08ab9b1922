package store

import (
	"errors"
	"fmt"

	"github.com/phrazzld/holocron-api/internal/domain"
)

// Common store errors used across all store implementations.
var (
	// ErrNotFound is returned when a requested entity does not exist in the store.
	// Entity-specific variants below wrap it.
	ErrNotFound = errors.New("entity not found")

	// ErrDuplicate is returned when an operation would violate a unique constraint.
	ErrDuplicate = errors.New("entity already exists")

	// ErrInvalidEntity is returned when an entity fails validation or
	// references rows that do not exist.
	ErrInvalidEntity = errors.New("invalid entity")

	// Entity-specific "not found" errors

	// ErrUserNotFound indicates that the requested user does not exist in the store.
	ErrUserNotFound = fmt.Errorf("%w: user", ErrNotFound)

	// ErrCharacterNotFound indicates that the requested character does not exist.
	ErrCharacterNotFound = fmt.Errorf("%w: character", ErrNotFound)

	// ErrPlanetNotFound indicates that the requested planet does not exist.
	ErrPlanetNotFound = fmt.Errorf("%w: planet", ErrNotFound)

	// ErrVehicleNotFound indicates that the requested vehicle does not exist.
	ErrVehicleNotFound = fmt.Errorf("%w: vehicle", ErrNotFound)

	// ErrFavoriteNotFound indicates that no favorite link matches the request.
	ErrFavoriteNotFound = fmt.Errorf("%w: favorite", ErrNotFound)
)

// ItemNotFoundError returns the "not found" error matching a catalog kind.
func ItemNotFoundError(kind domain.Kind) error {
	switch kind {
	case domain.KindCharacter:
		return ErrCharacterNotFound
	case domain.KindPlanet:
		return ErrPlanetNotFound
	case domain.KindVehicle:
		return ErrVehicleNotFound
	default:
		return ErrNotFound
	}
}

// IsNotFoundError checks if the error is any kind of "not found" error.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsDuplicateError checks if the error is a unique constraint conflict.
func IsDuplicateError(err error) bool {
	return errors.Is(err, ErrDuplicate)
}

// StoreError is a custom error type for store-specific errors with additional context.
type StoreError struct {
	Entity    string // The entity type (e.g., "user", "favorite_planet")
	Operation string // The operation that failed (e.g., "create", "delete")
	Message   string // Error message
	Err       error  // Original error
}

// Error implements the error interface for StoreError.
func (e *StoreError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf(
			"%s operation on %s failed: %s: %v",
			e.Operation,
			e.Entity,
			e.Message,
			e.Err,
		)
	}
	return fmt.Sprintf("%s operation on %s failed: %s", e.Operation, e.Entity, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *StoreError) Unwrap() error {
	return e.Err
}

// NewStoreError creates a new StoreError with the given entity, operation, message, and wrapped error.
func NewStoreError(entity, operation, message string, err error) *StoreError {
	return &StoreError{
		Entity:    entity,
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}
