package api

import (
	"net/http"

	"github.com/vportnov/airport-api/internal/api/shared"
	"github.com/vportnov/airport-api/internal/domain"
	"github.com/vportnov/airport-api/internal/store"
)

// CrewHandler handles crew member API requests.
type CrewHandler struct {
	crewStore store.CrewStore
}

// NewCrewHandler creates a new CrewHandler with the given dependencies.
func NewCrewHandler(crewStore store.CrewStore) *CrewHandler {
	return &CrewHandler{crewStore: crewStore}
}

// List handles GET /api/crews/.
func (h *CrewHandler) List(w http.ResponseWriter, r *http.Request) {
	params := parseListParams(r)

	crews, count, err := h.crewStore.List(r.Context(), params)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list crew members")
		return
	}

	results := make([]CrewResponse, 0, len(crews))
	for i := range crews {
		results = append(results, NewCrewResponse(&crews[i]))
	}

	shared.RespondWithJSON(w, r, http.StatusOK, NewPageResponse(r, count, params, results))
}

// Create handles POST /api/crews/.
func (h *CrewHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CrewRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	crew, err := domain.NewCrew(req.FirstName, req.LastName)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	if err := h.crewStore.Create(r.Context(), crew); err != nil {
		HandleAPIError(w, r, err, "Failed to create crew member")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, NewCrewResponse(crew))
}

// Get handles GET /api/crews/{id}/.
func (h *CrewHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := handlePathUUID(w, r, "id")
	if !ok {
		return
	}

	crew, err := h.crewStore.GetByID(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, NewCrewResponse(crew))
}

// Update handles PUT /api/crews/{id}/.
func (h *CrewHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := handlePathUUID(w, r, "id")
	if !ok {
		return
	}

	var req CrewRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	crew, err := h.crewStore.GetByID(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	crew.FirstName = req.FirstName
	crew.LastName = req.LastName

	if err := h.crewStore.Update(r.Context(), crew); err != nil {
		HandleAPIError(w, r, err, "Failed to update crew member")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, NewCrewResponse(crew))
}

// Patch handles PATCH /api/crews/{id}/.
func (h *CrewHandler) Patch(w http.ResponseWriter, r *http.Request) {
	id, ok := handlePathUUID(w, r, "id")
	if !ok {
		return
	}

	var req CrewPatchRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	crew, err := h.crewStore.GetByID(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	if req.FirstName != nil {
		crew.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		crew.LastName = *req.LastName
	}

	if err := h.crewStore.Update(r.Context(), crew); err != nil {
		HandleAPIError(w, r, err, "Failed to update crew member")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, NewCrewResponse(crew))
}

// Delete handles DELETE /api/crews/{id}/.
func (h *CrewHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := handlePathUUID(w, r, "id")
	if !ok {
		return
	}

	if err := h.crewStore.Delete(r.Context(), id); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
