package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/vportnov/airport-api/internal/api/shared"
	"github.com/vportnov/airport-api/internal/domain"
	"github.com/vportnov/airport-api/internal/service/auth"
	"github.com/vportnov/airport-api/internal/store"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	// Authentication errors
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, auth.ErrTokenNotYetValid),
		errors.Is(err, auth.ErrInvalidRefreshToken),
		errors.Is(err, auth.ErrExpiredRefreshToken),
		errors.Is(err, auth.ErrWrongTokenType),
		errors.Is(err, auth.ErrInvalidCredentials):
		return http.StatusUnauthorized

	// Authorization errors
	case errors.Is(err, auth.ErrForbidden),
		errors.Is(err, domain.ErrUnauthorized):
		return http.StatusForbidden

	// Not found errors cover every entity-specific sentinel
	case errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound

	// Conflict errors
	case errors.Is(err, store.ErrEmailExists):
		return http.StatusConflict

	// Bad request errors. A taken seat is a validation failure to the
	// client, not a conflict: the payload asked for a seat that cannot
	// be booked.
	case errors.Is(err, store.ErrSeatTaken),
		errors.Is(err, store.ErrInvalidEntity),
		errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidID),
		isDomainValidationError(err):
		return http.StatusBadRequest

	// Default: internal server error
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. This prevents leaking sensitive internal details.
func GetSafeErrorMessage(err error) string {
	// Handle nil error
	if err == nil {
		return "An unexpected error occurred"
	}

	switch {
	// Authentication errors
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, auth.ErrTokenNotYetValid):
		return "Invalid token"

	case errors.Is(err, auth.ErrInvalidRefreshToken),
		errors.Is(err, auth.ErrExpiredRefreshToken),
		errors.Is(err, auth.ErrWrongTokenType):
		return "Invalid refresh token"

	case errors.Is(err, auth.ErrInvalidCredentials):
		return "Invalid credentials"

	// Authorization errors
	case errors.Is(err, auth.ErrForbidden),
		errors.Is(err, domain.ErrUnauthorized):
		return "You do not have permission to perform this action"

	// Not found errors
	case errors.Is(err, store.ErrUserNotFound):
		return "User not found"
	case errors.Is(err, store.ErrCrewNotFound):
		return "Crew member not found"
	case errors.Is(err, store.ErrAirplaneTypeNotFound):
		return "Airplane type not found"
	case errors.Is(err, store.ErrAirplaneNotFound):
		return "Airplane not found"
	case errors.Is(err, store.ErrAirportNotFound):
		return "Airport not found"
	case errors.Is(err, store.ErrRouteNotFound):
		return "Route not found"
	case errors.Is(err, store.ErrFlightNotFound):
		return "Flight not found"
	case errors.Is(err, store.ErrOrderNotFound):
		return "Order not found"
	case errors.Is(err, store.ErrNotFound):
		return "Resource not found"

	// Conflict errors
	case errors.Is(err, store.ErrEmailExists):
		return "Email already exists"

	// Bad request errors
	case errors.Is(err, store.ErrSeatTaken):
		return "This place is already taken"
	case errors.Is(err, store.ErrInvalidEntity):
		return "Request references an entity that does not exist"
	case isDomainValidationError(err):
		// Domain validation messages are written for clients: they name the
		// field and the allowed range without internal detail.
		return err.Error()
	case errors.Is(err, domain.ErrValidation), errors.Is(err, domain.ErrInvalidID):
		return err.Error()

	// Default case for unknown errors
	default:
		return "An unexpected error occurred"
	}
}

// HandleAPIError maps the error to a status code and safe message and writes
// the JSON error response, logging the underlying error at a level matching
// the status. An empty overrideMessage uses the mapped safe message.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error, overrideMessage string) {
	status := MapErrorToStatusCode(err)
	message := overrideMessage
	if message == "" {
		message = GetSafeErrorMessage(err)
	}
	shared.RespondWithErrorAndLog(w, r, status, message, err)
}

// SanitizeValidationError converts request-validation failures into a
// client-facing message that names the offending fields without echoing
// submitted values.
func SanitizeValidationError(err error) string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return "Invalid request"
	}

	fields := make([]string, 0, len(validationErrors))
	for _, fieldErr := range validationErrors {
		fields = append(fields, strings.ToLower(fieldErr.Field()))
	}

	return "Validation failed on fields: " + strings.Join(fields, ", ")
}

// isDomainValidationError reports whether err is (or wraps) a
// *domain.ValidationError produced by entity invariants such as seat bounds.
func isDomainValidationError(err error) bool {
	var vErr *domain.ValidationError
	return errors.As(err, &vErr)
}
