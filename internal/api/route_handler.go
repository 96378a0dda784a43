package api

import (
	"net/http"

	"github.com/vportnov/airport-api/internal/api/shared"
	"github.com/vportnov/airport-api/internal/domain"
	"github.com/vportnov/airport-api/internal/store"
)

// RouteHandler handles route API requests.
type RouteHandler struct {
	routeStore store.RouteStore
}

// NewRouteHandler creates a new RouteHandler with the given dependencies.
func NewRouteHandler(routeStore store.RouteStore) *RouteHandler {
	return &RouteHandler{routeStore: routeStore}
}

// List handles GET /api/routes/.
// Supports case-insensitive source/destination city filters.
func (h *RouteHandler) List(w http.ResponseWriter, r *http.Request) {
	params := parseListParams(r)
	filter := store.RouteFilter{
		SourceCity:      r.URL.Query().Get("source"),
		DestinationCity: r.URL.Query().Get("destination"),
	}

	routes, count, err := h.routeStore.List(r.Context(), filter, params)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list routes")
		return
	}

	results := make([]RouteListResponse, 0, len(routes))
	for i := range routes {
		results = append(results, NewRouteListResponse(&routes[i]))
	}

	shared.RespondWithJSON(w, r, http.StatusOK, NewPageResponse(r, count, params, results))
}

// Create handles POST /api/routes/.
func (h *RouteHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req RouteRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	route, err := domain.NewRoute(req.Source, req.Destination, req.Distance)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	if err := h.routeStore.Create(r.Context(), route); err != nil {
		HandleAPIError(w, r, err, "Failed to create route")
		return
	}

	detail, err := h.routeStore.GetByID(r.Context(), route.ID)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to load created route")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, NewRouteDetailResponse(detail))
}

// Get handles GET /api/routes/{id}/.
func (h *RouteHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := handlePathUUID(w, r, "id")
	if !ok {
		return
	}

	detail, err := h.routeStore.GetByID(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, NewRouteDetailResponse(detail))
}

// Update handles PUT /api/routes/{id}/.
func (h *RouteHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := handlePathUUID(w, r, "id")
	if !ok {
		return
	}

	var req RouteRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	detail, err := h.routeStore.GetByID(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	route := detail.Route
	route.SourceID = req.Source
	route.DestinationID = req.Destination
	route.Distance = req.Distance

	if err := route.Validate(); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	if err := h.routeStore.Update(r.Context(), &route); err != nil {
		HandleAPIError(w, r, err, "Failed to update route")
		return
	}

	updated, err := h.routeStore.GetByID(r.Context(), route.ID)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to load updated route")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, NewRouteDetailResponse(updated))
}

// Patch handles PATCH /api/routes/{id}/.
func (h *RouteHandler) Patch(w http.ResponseWriter, r *http.Request) {
	id, ok := handlePathUUID(w, r, "id")
	if !ok {
		return
	}

	var req RoutePatchRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	detail, err := h.routeStore.GetByID(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	route := detail.Route
	if req.Source != nil {
		route.SourceID = *req.Source
	}
	if req.Destination != nil {
		route.DestinationID = *req.Destination
	}
	if req.Distance != nil {
		route.Distance = *req.Distance
	}

	if err := route.Validate(); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	if err := h.routeStore.Update(r.Context(), &route); err != nil {
		HandleAPIError(w, r, err, "Failed to update route")
		return
	}

	updated, err := h.routeStore.GetByID(r.Context(), route.ID)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to load updated route")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, NewRouteDetailResponse(updated))
}

// Delete handles DELETE /api/routes/{id}/.
func (h *RouteHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := handlePathUUID(w, r, "id")
	if !ok {
		return
	}

	if err := h.routeStore.Delete(r.Context(), id); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
