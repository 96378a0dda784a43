package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/vportnov/airport-api/internal/api/middleware"
	"github.com/vportnov/airport-api/internal/api/shared"
	"github.com/vportnov/airport-api/internal/domain"
	"github.com/vportnov/airport-api/internal/service/auth"
	"github.com/vportnov/airport-api/internal/store"
)

// getPrincipal extracts the authenticated principal from the request context.
// It writes a 401 response and returns false if no principal is present,
// which only happens when a handler is mounted without the authentication
// middleware.
func getPrincipal(w http.ResponseWriter, r *http.Request) (auth.Principal, bool) {
	principal, ok := middleware.GetPrincipal(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Authentication required")
		return auth.Principal{}, false
	}
	return principal, true
}

// getPathUUID extracts a UUID from the URL path parameters.
// Returns a validation error if the parameter is missing or malformed.
func getPathUUID(r *http.Request, paramName string) (uuid.UUID, error) {
	pathParam := chi.URLParam(r, paramName)
	if pathParam == "" {
		return uuid.Nil, domain.NewValidationError(paramName, "is required", domain.ErrValidation)
	}

	id, err := uuid.Parse(pathParam)
	if err != nil {
		return uuid.Nil, domain.NewValidationError(paramName, "has invalid format", domain.ErrInvalidID)
	}

	return id, nil
}

// handlePathUUID extracts a UUID from the URL path, writing an error
// response on failure.
func handlePathUUID(w http.ResponseWriter, r *http.Request, paramName string) (uuid.UUID, bool) {
	id, err := getPathUUID(r, paramName)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return uuid.Nil, false
	}
	return id, true
}

// parseListParams reads the page and page_size query parameters. Malformed
// or out-of-range values fall back to the defaults; the store normalizes
// the final bounds.
func parseListParams(r *http.Request) store.ListParams {
	params := store.ListParams{}

	if raw := r.URL.Query().Get("page"); raw != "" {
		if page, err := strconv.Atoi(raw); err == nil && page > 0 {
			params.Page = page
		}
	}

	if raw := r.URL.Query().Get("page_size"); raw != "" {
		if size, err := strconv.Atoi(raw); err == nil && size > 0 {
			params.PageSize = size
		}
	}

	return params.Normalize()
}

// decodeAndValidate decodes the JSON request body into target and runs
// struct validation, writing the error response on failure.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, target any) bool {
	if err := shared.DecodeJSON(r, target); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return false
	}

	if err := shared.ValidateRequest(target); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return false
	}

	return true
}
