package store

import (
	"errors"
	"fmt"
)

// Common store errors used across all store implementations.
var (
	// ErrNotFound is returned when a requested entity does not exist in the store.
	// This is a generic version of the entity-specific not found errors
	// (e.g., ErrUserNotFound, ErrFlightNotFound).
	ErrNotFound = errors.New("entity not found")

	// ErrDuplicate is returned when an operation would create a duplicate
	// of a unique entity (e.g., a user with the same email).
	ErrDuplicate = errors.New("entity already exists")

	// ErrInvalidEntity is returned when an entity fails validation before
	// being stored, or references another entity that does not exist.
	// Check the wrapped error for specific validation details.
	ErrInvalidEntity = errors.New("invalid entity")

	// ErrUpdateFailed is returned when an update operation fails, for example
	// because the entity does not exist or the update violates constraints.
	ErrUpdateFailed = errors.New("update failed")

	// ErrDeleteFailed is returned when a delete operation fails.
	ErrDeleteFailed = errors.New("delete failed")

	// ErrTransactionFailed is returned when a database transaction fails
	// to commit or when an operation within a transaction fails.
	ErrTransactionFailed = errors.New("transaction failed")

	// Entity-specific "not found" errors

	// ErrUserNotFound indicates that the requested user does not exist in the store.
	ErrUserNotFound = fmt.Errorf("%w: user", ErrNotFound)

	// ErrCrewNotFound indicates that the requested crew member does not exist in the store.
	ErrCrewNotFound = fmt.Errorf("%w: crew", ErrNotFound)

	// ErrAirportNotFound indicates that the requested airport does not exist in the store.
	ErrAirportNotFound = fmt.Errorf("%w: airport", ErrNotFound)

	// ErrRouteNotFound indicates that the requested route does not exist in the store.
	ErrRouteNotFound = fmt.Errorf("%w: route", ErrNotFound)

	// ErrAirplaneTypeNotFound indicates that the requested airplane type does not exist in the store.
	ErrAirplaneTypeNotFound = fmt.Errorf("%w: airplane type", ErrNotFound)

	// ErrAirplaneNotFound indicates that the requested airplane does not exist in the store.
	ErrAirplaneNotFound = fmt.Errorf("%w: airplane", ErrNotFound)

	// ErrFlightNotFound indicates that the requested flight does not exist in the store.
	ErrFlightNotFound = fmt.Errorf("%w: flight", ErrNotFound)

	// ErrOrderNotFound indicates that the requested order does not exist in the store.
	ErrOrderNotFound = fmt.Errorf("%w: order", ErrNotFound)

	// Entity-specific "duplicate" errors

	// ErrEmailExists indicates that a user with the given email already exists.
	// This is returned when attempting to create a user with an email that's already in use.
	ErrEmailExists = fmt.Errorf("%w: email", ErrDuplicate)

	// ErrSeatTaken indicates that the requested seat on a flight is already
	// booked by another ticket. The (flight, row, seat) uniqueness is enforced
	// by a storage constraint, so concurrent bookings of the same seat cannot
	// both succeed.
	ErrSeatTaken = fmt.Errorf("%w: seat already booked", ErrDuplicate)
)

// IsNotFoundError checks if the error is any kind of "not found" error.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsDuplicateError checks if the error is any kind of "duplicate" error.
func IsDuplicateError(err error) bool {
	return errors.Is(err, ErrDuplicate)
}
