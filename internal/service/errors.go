package service

import (
	"errors"
	"fmt"

	"github.com/phrazzld/holocron-api/internal/domain"
	"github.com/phrazzld/holocron-api/internal/store"
)

// Sentinel errors returned by the services. They alias the store sentinels so
// callers can match either with errors.Is.
//
// Error handling principles:
// 1. Expected conditions (missing rows, bad input) come back as sentinels or
// domain validation errors, unwrapped.
// 2. Unexpected errors are wrapped in *ServiceError.
// 3. The API layer maps both to HTTP status codes.
var (
	ErrUserNotFound      = store.ErrUserNotFound
	ErrCharacterNotFound = store.ErrCharacterNotFound
	ErrPlanetNotFound    = store.ErrPlanetNotFound
	ErrVehicleNotFound   = store.ErrVehicleNotFound
	ErrFavoriteNotFound  = store.ErrFavoriteNotFound
)

// ServiceError wraps an unexpected failure with the service and operation
// it happened in.
type ServiceError struct {
	Service   string
	Operation string
	Message   string
	Err       error
}

// Error implements the error interface for ServiceError.
func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s service %s failed: %s: %v", e.Service, e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("%s service %s failed: %s", e.Service, e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *ServiceError) Unwrap() error {
	return e.Err
}

// wrapError returns expected errors unchanged and wraps everything else in a
// ServiceError. A nil err yields nil.
func wrapError(service, operation, message string, err error) error {
	if err == nil {
		return nil
	}
	if store.IsNotFoundError(err) || errors.Is(err, domain.ErrValidation) {
		return err
	}
	return &ServiceError{
		Service:   service,
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}

func missingDependency(service, name string) error {
	return &ServiceError{
		Service:   service,
		Operation: "create_service",
		Message:   name + " cannot be nil",
	}
}
