package service

import (
	"errors"
	"fmt"

	"github.com/ccrayp/portfolio-api/internal/store"
)

// Common service errors. Callers check them with errors.Is; the API layer
// maps any ErrNotFound variant to 404.
var (
	// ErrNotFound indicates that the requested resource does not exist.
	ErrNotFound = errors.New("resource not found")

	ErrPostNotFound       = fmt.Errorf("%w: post", ErrNotFound)
	ErrProjectNotFound    = fmt.Errorf("%w: project", ErrNotFound)
	ErrTechnologyNotFound = fmt.Errorf("%w: technology", ErrNotFound)
)

// ServiceError wraps an unexpected failure with the operation it happened in.
type ServiceError struct {
	// Entity is the resource kind, e.g. "post"
	Entity string
	// Operation is the operation that failed, e.g. "create" or "update"
	Operation string
	// Message is a human-readable description of the error
	Message string
	// Err is the underlying error that caused the failure
	Err error
}

// Error implements the error interface for ServiceError.
func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s service %s failed: %s: %v", e.Entity, e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("%s service %s failed: %s", e.Entity, e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *ServiceError) Unwrap() error {
	return e.Err
}

// NewServiceError wraps err in a ServiceError. Not-found conditions and
// errors that are already ServiceErrors are returned as the matching
// sentinel or unchanged, so they are never double wrapped.
func NewServiceError(entity, operation, message string, err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, ErrNotFound) {
		return err
	}
	if errors.Is(err, store.ErrNotFound) {
		return notFoundFor(entity)
	}

	var svcErr *ServiceError
	if errors.As(err, &svcErr) {
		return err
	}

	return &ServiceError{
		Entity:    entity,
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}

func notFoundFor(entity string) error {
	switch entity {
	case entityPost:
		return ErrPostNotFound
	case entityProject:
		return ErrProjectNotFound
	case entityTechnology:
		return ErrTechnologyNotFound
	}
	return ErrNotFound
}

const (
	entityPost       = "post"
	entityProject    = "project"
	entityTechnology = "technology"
)
