package service

import "fmt"

// Typed service errors. Handlers map these to HTTP statuses:
// NotFoundError → 404, ValidationError → 400, ConsistencyError → 409.

type NotFoundError struct {
	Entity string
	ID     uint
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %d no encontrado", e.Entity, e.ID)
}

func notFound(entity string, id uint) error {
	return &NotFoundError{Entity: entity, ID: id}
}

// ValidationError signals a business-rule violation in the request payload
// that structural validation (tags) cannot express.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

func invalid(format string, args ...interface{}) error {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

// ConsistencyError signals that an operation would break a stock invariant.
// Available carries the quantity the warehouse can actually serve.
type ConsistencyError struct {
	Msg       string
	Available int
}

func (e *ConsistencyError) Error() string { return e.Msg }
