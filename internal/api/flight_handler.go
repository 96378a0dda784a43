package api

import (
	"context"
	"database/sql"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/vportnov/airport-api/internal/api/shared"
	"github.com/vportnov/airport-api/internal/domain"
	"github.com/vportnov/airport-api/internal/platform/logger"
	"github.com/vportnov/airport-api/internal/platform/redis"
	"github.com/vportnov/airport-api/internal/store"
)

// FlightHandler handles flight API requests. Listings are served through
// a read-through cache when one is configured; every flight write
// invalidates the cached listings.
type FlightHandler struct {
	flightStore store.FlightStore
	db          *sql.DB
	cache       *redis.FlightListCache
}

// NewFlightHandler creates a new FlightHandler with the given dependencies.
// The database handle is used to run flight-with-crew writes in one
// transaction. A nil cache disables caching.
func NewFlightHandler(
	flightStore store.FlightStore,
	db *sql.DB,
	cache *redis.FlightListCache,
) *FlightHandler {
	return &FlightHandler{
		flightStore: flightStore,
		db:          db,
		cache:       cache,
	}
}

// parseFlightFilter reads the route, airport, and date query parameters.
// route takes the "City1-City2" form; date is a UTC day (YYYY-MM-DD).
// Returns a validation error for a malformed date.
func parseFlightFilter(r *http.Request) (store.FlightFilter, error) {
	filter := store.FlightFilter{}
	query := r.URL.Query()

	if route := query.Get("route"); route != "" {
		source, destination, found := strings.Cut(route, "-")
		filter.SourceCity = strings.TrimSpace(source)
		if found {
			filter.DestinationCity = strings.TrimSpace(destination)
		}
	}

	filter.AirportCity = strings.TrimSpace(query.Get("airport"))

	if rawDate := query.Get("date"); rawDate != "" {
		date, err := time.ParseInLocation("2006-01-02", rawDate, time.UTC)
		if err != nil {
			return store.FlightFilter{}, domain.NewValidationError(
				"date", "must be in YYYY-MM-DD format", domain.ErrValidation)
		}
		filter.Date = &date
	}

	return filter, nil
}

// List handles GET /api/flights/.
func (h *FlightHandler) List(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), slog.Default())

	filter, err := parseFlightFilter(r)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	params := parseListParams(r)

	cacheKey := redis.Key(filter, params)
	if body, ok := h.cache.Get(r.Context(), cacheKey); ok {
		log.Debug("flight list served from cache", slog.String("key", cacheKey))
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(body)
		return
	}

	flights, count, err := h.flightStore.List(r.Context(), filter, params)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list flights")
		return
	}

	results := make([]FlightListResponse, 0, len(flights))
	for i := range flights {
		results = append(results, NewFlightListResponse(&flights[i]))
	}

	page := NewPageResponse(r, count, params, results)

	body, err := json.Marshal(page)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to encode flight list")
		return
	}

	h.cache.Set(r.Context(), cacheKey, body)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}

// Create handles POST /api/flights/.
// The flight and its crew assignments are written in one transaction.
func (h *FlightHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req FlightRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	flight, err := domain.NewFlight(req.Route, req.Airplane, req.DepartureTime, req.ArrivalTime, req.Crew)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	err = store.RunInTransaction(r.Context(), h.db, func(ctx context.Context, tx *sql.Tx) error {
		return h.flightStore.WithTx(tx).Create(ctx, flight)
	})
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	h.cache.Invalidate(r.Context())

	detail, err := h.flightStore.GetByID(r.Context(), flight.ID)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to load created flight")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, NewFlightDetailResponse(detail))
}

// Get handles GET /api/flights/{id}/.
func (h *FlightHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := handlePathUUID(w, r, "id")
	if !ok {
		return
	}

	detail, err := h.flightStore.GetByID(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, NewFlightDetailResponse(detail))
}

// Update handles PUT /api/flights/{id}/.
func (h *FlightHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := handlePathUUID(w, r, "id")
	if !ok {
		return
	}

	var req FlightRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	detail, err := h.flightStore.GetByID(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	flight := detail.Flight
	flight.RouteID = req.Route
	flight.AirplaneID = req.Airplane
	flight.DepartureTime = req.DepartureTime.UTC()
	flight.ArrivalTime = req.ArrivalTime.UTC()
	flight.CrewIDs = req.Crew

	h.applyFlightUpdate(w, r, &flight)
}

// Patch handles PATCH /api/flights/{id}/.
func (h *FlightHandler) Patch(w http.ResponseWriter, r *http.Request) {
	id, ok := handlePathUUID(w, r, "id")
	if !ok {
		return
	}

	var req FlightPatchRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	detail, err := h.flightStore.GetByID(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	flight := detail.Flight
	if req.Route != nil {
		flight.RouteID = *req.Route
	}
	if req.Airplane != nil {
		flight.AirplaneID = *req.Airplane
	}
	if req.DepartureTime != nil {
		flight.DepartureTime = req.DepartureTime.UTC()
	}
	if req.ArrivalTime != nil {
		flight.ArrivalTime = req.ArrivalTime.UTC()
	}
	if req.Crew != nil {
		flight.CrewIDs = *req.Crew
	}

	h.applyFlightUpdate(w, r, &flight)
}

// applyFlightUpdate validates and persists a modified flight, replacing its
// crew assignments in one transaction, and writes the updated detail.
func (h *FlightHandler) applyFlightUpdate(w http.ResponseWriter, r *http.Request, flight *domain.Flight) {
	if err := flight.Validate(); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	err := store.RunInTransaction(r.Context(), h.db, func(ctx context.Context, tx *sql.Tx) error {
		return h.flightStore.WithTx(tx).Update(ctx, flight)
	})
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	h.cache.Invalidate(r.Context())

	updated, err := h.flightStore.GetByID(r.Context(), flight.ID)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to load updated flight")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, NewFlightDetailResponse(updated))
}

// Delete handles DELETE /api/flights/{id}/.
func (h *FlightHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := handlePathUUID(w, r, "id")
	if !ok {
		return
	}

	if err := h.flightStore.Delete(r.Context(), id); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	h.cache.Invalidate(r.Context())

	w.WriteHeader(http.StatusNoContent)
}
