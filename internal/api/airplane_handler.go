package api

import (
	"io"
	"net/http"

	"github.com/vportnov/airport-api/internal/api/shared"
	"github.com/vportnov/airport-api/internal/domain"
	"github.com/vportnov/airport-api/internal/store"
)

// maxImageBytes caps airplane image uploads at 5 MiB.
const maxImageBytes = 5 << 20

// AirplaneHandler handles airplane API requests, including image upload
// and retrieval.
type AirplaneHandler struct {
	airplaneStore store.AirplaneStore
}

// NewAirplaneHandler creates a new AirplaneHandler with the given dependencies.
func NewAirplaneHandler(airplaneStore store.AirplaneStore) *AirplaneHandler {
	return &AirplaneHandler{airplaneStore: airplaneStore}
}

// List handles GET /api/airplanes/.
func (h *AirplaneHandler) List(w http.ResponseWriter, r *http.Request) {
	params := parseListParams(r)

	airplanes, count, err := h.airplaneStore.List(r.Context(), params)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list airplanes")
		return
	}

	results := make([]AirplaneListResponse, 0, len(airplanes))
	for i := range airplanes {
		results = append(results, NewAirplaneListResponse(&airplanes[i]))
	}

	shared.RespondWithJSON(w, r, http.StatusOK, NewPageResponse(r, count, params, results))
}

// Create handles POST /api/airplanes/.
func (h *AirplaneHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req AirplaneRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	airplane, err := domain.NewAirplane(req.Name, req.Rows, req.SeatsInRow, req.AirplaneType)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	if err := h.airplaneStore.Create(r.Context(), airplane); err != nil {
		HandleAPIError(w, r, err, "Failed to create airplane")
		return
	}

	detail, err := h.airplaneStore.GetByID(r.Context(), airplane.ID)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to load created airplane")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, NewAirplaneDetailResponse(detail))
}

// Get handles GET /api/airplanes/{id}/.
func (h *AirplaneHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := handlePathUUID(w, r, "id")
	if !ok {
		return
	}

	detail, err := h.airplaneStore.GetByID(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, NewAirplaneDetailResponse(detail))
}

// Update handles PUT /api/airplanes/{id}/.
func (h *AirplaneHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := handlePathUUID(w, r, "id")
	if !ok {
		return
	}

	var req AirplaneRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	detail, err := h.airplaneStore.GetByID(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	airplane := detail.Airplane
	airplane.Name = req.Name
	airplane.Rows = req.Rows
	airplane.SeatsInRow = req.SeatsInRow
	airplane.AirplaneTypeID = req.AirplaneType

	if err := h.airplaneStore.Update(r.Context(), &airplane); err != nil {
		HandleAPIError(w, r, err, "Failed to update airplane")
		return
	}

	updated, err := h.airplaneStore.GetByID(r.Context(), airplane.ID)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to load updated airplane")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, NewAirplaneDetailResponse(updated))
}

// Patch handles PATCH /api/airplanes/{id}/.
func (h *AirplaneHandler) Patch(w http.ResponseWriter, r *http.Request) {
	id, ok := handlePathUUID(w, r, "id")
	if !ok {
		return
	}

	var req AirplanePatchRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	detail, err := h.airplaneStore.GetByID(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	airplane := detail.Airplane
	if req.Name != nil {
		airplane.Name = *req.Name
	}
	if req.Rows != nil {
		airplane.Rows = *req.Rows
	}
	if req.SeatsInRow != nil {
		airplane.SeatsInRow = *req.SeatsInRow
	}
	if req.AirplaneType != nil {
		airplane.AirplaneTypeID = *req.AirplaneType
	}

	if err := h.airplaneStore.Update(r.Context(), &airplane); err != nil {
		HandleAPIError(w, r, err, "Failed to update airplane")
		return
	}

	updated, err := h.airplaneStore.GetByID(r.Context(), airplane.ID)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to load updated airplane")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, NewAirplaneDetailResponse(updated))
}

// Delete handles DELETE /api/airplanes/{id}/.
func (h *AirplaneHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := handlePathUUID(w, r, "id")
	if !ok {
		return
	}

	if err := h.airplaneStore.Delete(r.Context(), id); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// UploadImage handles POST /api/airplanes/{id}/upload-image/.
// Accepts a multipart form with an "image" file field.
func (h *AirplaneHandler) UploadImage(w http.ResponseWriter, r *http.Request) {
	id, ok := handlePathUUID(w, r, "id")
	if !ok {
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxImageBytes)
	if err := r.ParseMultipartForm(maxImageBytes); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid multipart form")
		return
	}

	file, _, err := r.FormFile("image")
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Missing image file")
		return
	}
	defer func() { _ = file.Close() }()

	image, err := io.ReadAll(file)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to read image")
		return
	}
	if len(image) == 0 {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Image file is empty")
		return
	}

	if err := h.airplaneStore.UpdateImage(r.Context(), id, image); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	detail, err := h.airplaneStore.GetByID(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to load airplane")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, NewAirplaneDetailResponse(detail))
}

// GetImage handles GET /api/airplanes/{id}/image/.
// Serves the stored image bytes with a sniffed content type.
func (h *AirplaneHandler) GetImage(w http.ResponseWriter, r *http.Request) {
	id, ok := handlePathUUID(w, r, "id")
	if !ok {
		return
	}

	image, err := h.airplaneStore.GetImage(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	w.Header().Set("Content-Type", http.DetectContentType(image))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(image)
}
