package api

import (
	"net/http"

	"github.com/vportnov/airport-api/internal/api/shared"
	"github.com/vportnov/airport-api/internal/domain"
	"github.com/vportnov/airport-api/internal/store"
)

// AirportHandler handles airport API requests.
type AirportHandler struct {
	airportStore store.AirportStore
	routeStore   store.RouteStore
}

// NewAirportHandler creates a new AirportHandler with the given dependencies.
// The route store serves the departing-routes embed on retrievals.
func NewAirportHandler(airportStore store.AirportStore, routeStore store.RouteStore) *AirportHandler {
	return &AirportHandler{
		airportStore: airportStore,
		routeStore:   routeStore,
	}
}

// List handles GET /api/airports/.
func (h *AirportHandler) List(w http.ResponseWriter, r *http.Request) {
	params := parseListParams(r)

	airports, count, err := h.airportStore.List(r.Context(), params)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list airports")
		return
	}

	results := make([]AirportResponse, 0, len(airports))
	for i := range airports {
		results = append(results, NewAirportResponse(&airports[i]))
	}

	shared.RespondWithJSON(w, r, http.StatusOK, NewPageResponse(r, count, params, results))
}

// Create handles POST /api/airports/.
func (h *AirportHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req AirportRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	airport, err := domain.NewAirport(req.Name, req.ClosestBigCity)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	if err := h.airportStore.Create(r.Context(), airport); err != nil {
		HandleAPIError(w, r, err, "Failed to create airport")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, NewAirportResponse(airport))
}

// Get handles GET /api/airports/{id}/.
// The response embeds the routes departing this airport.
func (h *AirportHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := handlePathUUID(w, r, "id")
	if !ok {
		return
	}

	airport, err := h.airportStore.GetByID(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	routes, err := h.routeStore.ListBySource(r.Context(), airport.ID)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to load airport routes")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, NewAirportDetailResponse(airport, routes))
}

// Update handles PUT /api/airports/{id}/.
func (h *AirportHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := handlePathUUID(w, r, "id")
	if !ok {
		return
	}

	var req AirportRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	airport, err := h.airportStore.GetByID(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	airport.Name = req.Name
	airport.ClosestBigCity = req.ClosestBigCity

	if err := h.airportStore.Update(r.Context(), airport); err != nil {
		HandleAPIError(w, r, err, "Failed to update airport")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, NewAirportResponse(airport))
}

// Patch handles PATCH /api/airports/{id}/.
func (h *AirportHandler) Patch(w http.ResponseWriter, r *http.Request) {
	id, ok := handlePathUUID(w, r, "id")
	if !ok {
		return
	}

	var req AirportPatchRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	airport, err := h.airportStore.GetByID(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	if req.Name != nil {
		airport.Name = *req.Name
	}
	if req.ClosestBigCity != nil {
		airport.ClosestBigCity = *req.ClosestBigCity
	}

	if err := h.airportStore.Update(r.Context(), airport); err != nil {
		HandleAPIError(w, r, err, "Failed to update airport")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, NewAirportResponse(airport))
}

// Delete handles DELETE /api/airports/{id}/.
func (h *AirportHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := handlePathUUID(w, r, "id")
	if !ok {
		return
	}

	if err := h.airportStore.Delete(r.Context(), id); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
