package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vportnov/airport-api/internal/domain"
	"github.com/vportnov/airport-api/internal/mocks"
	"github.com/vportnov/airport-api/internal/store"
)

func testRouteDetail() store.RouteDetail {
	return store.RouteDetail{
		Route: domain.Route{
			ID:       uuid.New(),
			Distance: 950,
		},
		Source:      domain.Airport{ID: uuid.New(), Name: "Heathrow", ClosestBigCity: "London"},
		Destination: domain.Airport{ID: uuid.New(), Name: "Charles de Gaulle", ClosestBigCity: "Paris"},
	}
}

func TestRouteHandler_List_Filtered(t *testing.T) {
	routeStore := &mocks.MockRouteStore{
		ListFn: func(ctx context.Context, filter store.RouteFilter, params store.ListParams) ([]store.RouteDetail, int, error) {
			assert.Equal(t, "London", filter.SourceCity)
			assert.Equal(t, "Paris", filter.DestinationCity)
			return []store.RouteDetail{testRouteDetail()}, 1, nil
		},
	}
	handler := NewRouteHandler(routeStore)

	req := httptest.NewRequest(http.MethodGet, "/api/routes/?source=London&destination=Paris", nil)
	rr := httptest.NewRecorder()
	handler.List(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var page struct {
		Count   int                 `json:"count"`
		Results []RouteListResponse `json:"results"`
	}
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&page))
	require.Len(t, page.Results, 1)
	// Listings carry cities, not airport objects.
	assert.Equal(t, "London", page.Results[0].Source)
	assert.Equal(t, "Paris", page.Results[0].Destination)
	assert.Equal(t, "London - Paris", page.Results[0].CitiesRoute)
}

func TestRouteHandler_Create_SameAirports(t *testing.T) {
	handler := NewRouteHandler(&mocks.MockRouteStore{})

	airportID := uuid.New()
	req := jsonRequest(t, http.MethodPost, "/api/routes/", RouteRequest{
		Source:      airportID,
		Destination: airportID,
		Distance:    100,
	})
	rr := httptest.NewRecorder()
	handler.Create(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestRouteHandler_Create(t *testing.T) {
	var created *domain.Route
	routeStore := &mocks.MockRouteStore{
		CreateFn: func(ctx context.Context, route *domain.Route) error {
			created = route
			return nil
		},
		GetByIDFn: func(ctx context.Context, id uuid.UUID) (*store.RouteDetail, error) {
			detail := testRouteDetail()
			detail.Route.ID = id
			return &detail, nil
		},
	}
	handler := NewRouteHandler(routeStore)

	req := jsonRequest(t, http.MethodPost, "/api/routes/", RouteRequest{
		Source:      uuid.New(),
		Destination: uuid.New(),
		Distance:    950,
	})
	rr := httptest.NewRecorder()
	handler.Create(rr, req)

	require.Equal(t, http.StatusCreated, rr.Code)
	require.NotNil(t, created)
	assert.Equal(t, 950, created.Distance)
}

func TestAirportHandler_Get_EmbedsRoutes(t *testing.T) {
	airportID := uuid.New()
	airportStore := &mocks.MockAirportStore{
		GetByIDFn: func(ctx context.Context, id uuid.UUID) (*domain.Airport, error) {
			return &domain.Airport{ID: id, Name: "Heathrow", ClosestBigCity: "London"}, nil
		},
	}
	routeStore := &mocks.MockRouteStore{
		ListBySourceFn: func(ctx context.Context, sourceID uuid.UUID) ([]store.RouteDetail, error) {
			assert.Equal(t, airportID, sourceID)
			return []store.RouteDetail{testRouteDetail()}, nil
		},
	}
	handler := NewAirportHandler(airportStore, routeStore)

	req := withURLParam(
		httptest.NewRequest(http.MethodGet, "/api/airports/"+airportID.String()+"/", nil),
		"id", airportID.String(),
	)
	rr := httptest.NewRecorder()
	handler.Get(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var resp AirportDetailResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Equal(t, "Heathrow", resp.Name)
	require.Len(t, resp.Routes, 1)
	// Embedded routes name the airports, with the cities route alongside.
	assert.Equal(t, "Heathrow", resp.Routes[0].Source)
	assert.Equal(t, "Charles de Gaulle", resp.Routes[0].Destination)
	assert.Equal(t, "London - Paris", resp.Routes[0].CitiesRoute)
}

func TestAirportHandler_Create_MissingCity(t *testing.T) {
	handler := NewAirportHandler(&mocks.MockAirportStore{}, &mocks.MockRouteStore{})

	req := jsonRequest(t, http.MethodPost, "/api/airports/", AirportRequest{Name: "Heathrow"})
	rr := httptest.NewRecorder()
	handler.Create(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}
