package api

import (
	"net/http"

	"github.com/vportnov/airport-api/internal/api/shared"
	"github.com/vportnov/airport-api/internal/domain"
	"github.com/vportnov/airport-api/internal/store"
)

// AirplaneTypeHandler handles airplane type API requests.
type AirplaneTypeHandler struct {
	typeStore store.AirplaneTypeStore
}

// NewAirplaneTypeHandler creates a new AirplaneTypeHandler with the given dependencies.
func NewAirplaneTypeHandler(typeStore store.AirplaneTypeStore) *AirplaneTypeHandler {
	return &AirplaneTypeHandler{typeStore: typeStore}
}

// List handles GET /api/airplane-types/.
func (h *AirplaneTypeHandler) List(w http.ResponseWriter, r *http.Request) {
	params := parseListParams(r)

	types, count, err := h.typeStore.List(r.Context(), params)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list airplane types")
		return
	}

	results := make([]AirplaneTypeResponse, 0, len(types))
	for i := range types {
		results = append(results, NewAirplaneTypeResponse(&types[i]))
	}

	shared.RespondWithJSON(w, r, http.StatusOK, NewPageResponse(r, count, params, results))
}

// Create handles POST /api/airplane-types/.
func (h *AirplaneTypeHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req AirplaneTypeRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	airplaneType, err := domain.NewAirplaneType(req.Name)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	if err := h.typeStore.Create(r.Context(), airplaneType); err != nil {
		HandleAPIError(w, r, err, "Failed to create airplane type")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, NewAirplaneTypeResponse(airplaneType))
}

// Get handles GET /api/airplane-types/{id}/.
func (h *AirplaneTypeHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := handlePathUUID(w, r, "id")
	if !ok {
		return
	}

	airplaneType, err := h.typeStore.GetByID(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, NewAirplaneTypeResponse(airplaneType))
}

// Update handles PUT and PATCH /api/airplane-types/{id}/. With a single
// required field the two methods behave identically.
func (h *AirplaneTypeHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := handlePathUUID(w, r, "id")
	if !ok {
		return
	}

	var req AirplaneTypeRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	airplaneType, err := h.typeStore.GetByID(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	airplaneType.Name = req.Name

	if err := h.typeStore.Update(r.Context(), airplaneType); err != nil {
		HandleAPIError(w, r, err, "Failed to update airplane type")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, NewAirplaneTypeResponse(airplaneType))
}

// Delete handles DELETE /api/airplane-types/{id}/.
func (h *AirplaneTypeHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := handlePathUUID(w, r, "id")
	if !ok {
		return
	}

	if err := h.typeStore.Delete(r.Context(), id); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
