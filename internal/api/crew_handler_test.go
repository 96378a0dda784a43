package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vportnov/airport-api/internal/domain"
	"github.com/vportnov/airport-api/internal/mocks"
	"github.com/vportnov/airport-api/internal/store"
)

// withURLParam attaches a chi route parameter to the request, the way the
// router does when dispatching.
func withURLParam(r *http.Request, key, value string) *http.Request {
	routeCtx := chi.NewRouteContext()
	routeCtx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, routeCtx))
}

func TestCrewHandler_List(t *testing.T) {
	crews := []domain.Crew{
		{ID: uuid.New(), FirstName: "Jim", LastName: "Halpert"},
		{ID: uuid.New(), FirstName: "Pam", LastName: "Beesly"},
	}
	crewStore := &mocks.MockCrewStore{
		ListFn: func(ctx context.Context, params store.ListParams) ([]domain.Crew, int, error) {
			assert.Equal(t, 1, params.Page)
			assert.Equal(t, store.DefaultPageSize, params.PageSize)
			return crews, 2, nil
		},
	}
	handler := NewCrewHandler(crewStore)

	req := httptest.NewRequest(http.MethodGet, "/api/crews/", nil)
	rr := httptest.NewRecorder()
	handler.List(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var page struct {
		Count    int            `json:"count"`
		Next     *string        `json:"next"`
		Previous *string        `json:"previous"`
		Results  []CrewResponse `json:"results"`
	}
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&page))
	assert.Equal(t, 2, page.Count)
	assert.Nil(t, page.Next)
	assert.Nil(t, page.Previous)
	require.Len(t, page.Results, 2)
	assert.Equal(t, "Jim Halpert", page.Results[0].FullName)
}

func TestCrewHandler_Create(t *testing.T) {
	var created *domain.Crew
	crewStore := &mocks.MockCrewStore{
		CreateFn: func(ctx context.Context, crew *domain.Crew) error {
			created = crew
			return nil
		},
	}
	handler := NewCrewHandler(crewStore)

	req := jsonRequest(t, http.MethodPost, "/api/crews/", CrewRequest{
		FirstName: "Amelia",
		LastName:  "Earhart",
	})
	rr := httptest.NewRecorder()
	handler.Create(rr, req)

	require.Equal(t, http.StatusCreated, rr.Code)
	require.NotNil(t, created)

	var resp CrewResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Equal(t, created.ID, resp.ID)
	assert.Equal(t, "Amelia Earhart", resp.FullName)
}

func TestCrewHandler_Create_MissingFields(t *testing.T) {
	handler := NewCrewHandler(&mocks.MockCrewStore{})

	req := jsonRequest(t, http.MethodPost, "/api/crews/", CrewRequest{FirstName: "Amelia"})
	rr := httptest.NewRecorder()
	handler.Create(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "Validation failed on fields: lastname", decodeErrorResponse(t, rr).Error)
}

func TestCrewHandler_Get_NotFound(t *testing.T) {
	crewStore := &mocks.MockCrewStore{
		GetByIDFn: func(ctx context.Context, id uuid.UUID) (*domain.Crew, error) {
			return nil, store.ErrCrewNotFound
		},
	}
	handler := NewCrewHandler(crewStore)

	req := withURLParam(
		httptest.NewRequest(http.MethodGet, "/api/crews/"+uuid.NewString()+"/", nil),
		"id", uuid.NewString(),
	)
	rr := httptest.NewRecorder()
	handler.Get(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "Crew member not found", decodeErrorResponse(t, rr).Error)
}

func TestCrewHandler_Get_MalformedID(t *testing.T) {
	handler := NewCrewHandler(&mocks.MockCrewStore{})

	req := withURLParam(
		httptest.NewRequest(http.MethodGet, "/api/crews/not-a-uuid/", nil),
		"id", "not-a-uuid",
	)
	rr := httptest.NewRecorder()
	handler.Get(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestCrewHandler_Patch(t *testing.T) {
	id := uuid.New()
	var updated *domain.Crew
	crewStore := &mocks.MockCrewStore{
		GetByIDFn: func(ctx context.Context, crewID uuid.UUID) (*domain.Crew, error) {
			return &domain.Crew{ID: crewID, FirstName: "Amelia", LastName: "Earhart"}, nil
		},
		UpdateFn: func(ctx context.Context, crew *domain.Crew) error {
			updated = crew
			return nil
		},
	}
	handler := NewCrewHandler(crewStore)

	lastName := "Putnam"
	req := withURLParam(
		jsonRequest(t, http.MethodPatch, "/api/crews/"+id.String()+"/", CrewPatchRequest{LastName: &lastName}),
		"id", id.String(),
	)
	rr := httptest.NewRecorder()
	handler.Patch(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	require.NotNil(t, updated)
	// Untouched fields keep their stored values.
	assert.Equal(t, "Amelia", updated.FirstName)
	assert.Equal(t, "Putnam", updated.LastName)
}

func TestCrewHandler_Delete(t *testing.T) {
	id := uuid.New()
	crewStore := &mocks.MockCrewStore{
		DeleteFn: func(ctx context.Context, crewID uuid.UUID) error {
			assert.Equal(t, id, crewID)
			return nil
		},
	}
	handler := NewCrewHandler(crewStore)

	req := withURLParam(
		httptest.NewRequest(http.MethodDelete, "/api/crews/"+id.String()+"/", nil),
		"id", id.String(),
	)
	rr := httptest.NewRecorder()
	handler.Delete(rr, req)

	assert.Equal(t, http.StatusNoContent, rr.Code)
}
