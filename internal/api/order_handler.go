package api

import (
	"context"
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/vportnov/airport-api/internal/api/shared"
	"github.com/vportnov/airport-api/internal/domain"
	"github.com/vportnov/airport-api/internal/platform/logger"
	"github.com/vportnov/airport-api/internal/platform/redis"
	"github.com/vportnov/airport-api/internal/store"
)

// OrderHandler handles order API requests. Orders are always scoped to the
// authenticated owner; another user's order is indistinguishable from a
// missing one.
type OrderHandler struct {
	orderStore store.OrderStore
	db         *sql.DB
	cache      *redis.FlightListCache
}

// NewOrderHandler creates a new OrderHandler with the given dependencies.
// The database handle is used to create an order and its tickets in one
// transaction. Booking changes seat availability, so the flight list cache
// is invalidated on every order write.
func NewOrderHandler(
	orderStore store.OrderStore,
	db *sql.DB,
	cache *redis.FlightListCache,
) *OrderHandler {
	return &OrderHandler{
		orderStore: orderStore,
		db:         db,
		cache:      cache,
	}
}

// List handles GET /api/orders/.
// Lists only the caller's orders, newest first.
func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	principal, ok := getPrincipal(w, r)
	if !ok {
		return
	}

	params := parseListParams(r)

	orders, count, err := h.orderStore.List(r.Context(), principal.UserID, params)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list orders")
		return
	}

	results := make([]OrderResponse, 0, len(orders))
	for i := range orders {
		results = append(results, NewOrderResponse(&orders[i]))
	}

	shared.RespondWithJSON(w, r, http.StatusOK, NewPageResponse(r, count, params, results))
}

// Create handles POST /api/orders/.
// The order and all its tickets are written in one transaction; any seat
// conflict rolls back the whole order.
func (h *OrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), slog.Default())

	principal, ok := getPrincipal(w, r)
	if !ok {
		return
	}

	var req OrderCreateRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	order, err := domain.NewOrder(principal.UserID)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	for _, ticket := range req.Tickets {
		if err := order.AddTicket(ticket.Row, ticket.Seat, ticket.Flight); err != nil {
			HandleAPIError(w, r, err, "")
			return
		}
	}

	err = store.RunInTransaction(r.Context(), h.db, func(ctx context.Context, tx *sql.Tx) error {
		return h.orderStore.WithTx(tx).Create(ctx, order)
	})
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	h.cache.Invalidate(r.Context())

	detail, err := h.orderStore.GetByID(r.Context(), order.ID)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to load created order")
		return
	}

	log.Info("order created",
		slog.String("order_id", order.ID.String()),
		slog.Int("tickets", len(order.Tickets)))
	shared.RespondWithJSON(w, r, http.StatusCreated, NewOrderResponse(detail))
}

// Get handles GET /api/orders/{id}/.
func (h *OrderHandler) Get(w http.ResponseWriter, r *http.Request) {
	principal, ok := getPrincipal(w, r)
	if !ok {
		return
	}

	id, ok := handlePathUUID(w, r, "id")
	if !ok {
		return
	}

	detail, err := h.orderStore.GetByID(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	// Another user's order reads as not found.
	if detail.Order.UserID != principal.UserID {
		HandleAPIError(w, r, store.ErrOrderNotFound, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, NewOrderResponse(detail))
}

// Delete handles DELETE /api/orders/{id}/.
// Deleting an order releases its seats.
func (h *OrderHandler) Delete(w http.ResponseWriter, r *http.Request) {
	principal, ok := getPrincipal(w, r)
	if !ok {
		return
	}

	id, ok := handlePathUUID(w, r, "id")
	if !ok {
		return
	}

	detail, err := h.orderStore.GetByID(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	if detail.Order.UserID != principal.UserID {
		HandleAPIError(w, r, store.ErrOrderNotFound, "")
		return
	}

	if err := h.orderStore.Delete(r.Context(), id); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	h.cache.Invalidate(r.Context())

	w.WriteHeader(http.StatusNoContent)
}

// MethodNotAllowed handles PUT and PATCH on /api/orders/{id}/.
// Orders are immutable once created.
func (h *OrderHandler) MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithError(w, r, http.StatusMethodNotAllowed, "Orders cannot be modified")
}
