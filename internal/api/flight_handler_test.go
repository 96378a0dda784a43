package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vportnov/airport-api/internal/domain"
	"github.com/vportnov/airport-api/internal/mocks"
	"github.com/vportnov/airport-api/internal/store"
)

func TestParseFlightFilter(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		expected store.FlightFilter
	}{
		{
			name:     "no filters",
			query:    "",
			expected: store.FlightFilter{},
		},
		{
			name:  "route with both cities",
			query: "route=London-Paris",
			expected: store.FlightFilter{
				SourceCity:      "London",
				DestinationCity: "Paris",
			},
		},
		{
			name:     "route with source only",
			query:    "route=London",
			expected: store.FlightFilter{SourceCity: "London"},
		},
		{
			name:  "route trims whitespace",
			query: "route=London+-+Paris",
			expected: store.FlightFilter{
				SourceCity:      "London",
				DestinationCity: "Paris",
			},
		},
		{
			name:     "airport filter",
			query:    "airport=Berlin",
			expected: store.FlightFilter{AirportCity: "Berlin"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/flights/?"+tt.query, nil)
			filter, err := parseFlightFilter(req)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, filter)
		})
	}
}

func TestParseFlightFilter_Date(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/flights/?date=2025-06-01", nil)
	filter, err := parseFlightFilter(req)
	require.NoError(t, err)
	require.NotNil(t, filter.Date)
	assert.Equal(t, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), *filter.Date)
}

func TestParseFlightFilter_MalformedDate(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/flights/?date=01.06.2025", nil)
	_, err := parseFlightFilter(req)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func testFlightDetail(ticketsAvailable int) store.FlightDetail {
	now := time.Now().UTC()
	return store.FlightDetail{
		Flight: domain.Flight{
			ID:            uuid.New(),
			RouteID:       uuid.New(),
			AirplaneID:    uuid.New(),
			DepartureTime: now.Add(24 * time.Hour),
			ArrivalTime:   now.Add(27 * time.Hour),
		},
		Route: store.RouteDetail{
			Route:       domain.Route{ID: uuid.New(), Distance: 950},
			Source:      domain.Airport{ID: uuid.New(), Name: "Heathrow", ClosestBigCity: "London"},
			Destination: domain.Airport{ID: uuid.New(), Name: "Charles de Gaulle", ClosestBigCity: "Paris"},
		},
		Airplane: store.AirplaneDetail{
			Airplane: domain.Airplane{ID: uuid.New(), Name: "Sky Liner", Rows: 10, SeatsInRow: 6},
			Type:     domain.AirplaneType{ID: uuid.New(), Name: "Boeing 737"},
		},
		TicketsAvailable: ticketsAvailable,
	}
}

func TestFlightHandler_List(t *testing.T) {
	detail := testFlightDetail(53)
	flightStore := &mocks.MockFlightStore{
		ListFn: func(ctx context.Context, filter store.FlightFilter, params store.ListParams) ([]store.FlightDetail, int, error) {
			assert.Equal(t, "London", filter.SourceCity)
			assert.Equal(t, "Paris", filter.DestinationCity)
			return []store.FlightDetail{detail}, 1, nil
		},
	}
	handler := NewFlightHandler(flightStore, nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/flights/?route=London-Paris", nil)
	rr := httptest.NewRecorder()
	handler.List(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	var page struct {
		Count   int                  `json:"count"`
		Results []FlightListResponse `json:"results"`
	}
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&page))
	assert.Equal(t, 1, page.Count)
	require.Len(t, page.Results, 1)
	assert.Equal(t, "London - Paris", page.Results[0].Route)
	assert.Equal(t, "Sky Liner", page.Results[0].Airplane)
	assert.Equal(t, 53, page.Results[0].TicketsAvailable)
}

func TestFlightHandler_List_MalformedDate(t *testing.T) {
	handler := NewFlightHandler(&mocks.MockFlightStore{}, nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/flights/?date=not-a-date", nil)
	rr := httptest.NewRecorder()
	handler.List(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestFlightHandler_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	mock.ExpectBegin()
	mock.ExpectCommit()

	var created *domain.Flight
	flightStore := &mocks.MockFlightStore{
		CreateFn: func(ctx context.Context, flight *domain.Flight) error {
			created = flight
			return nil
		},
		GetByIDFn: func(ctx context.Context, id uuid.UUID) (*store.FlightDetail, error) {
			detail := testFlightDetail(60)
			detail.Flight.ID = id
			return &detail, nil
		},
	}
	handler := NewFlightHandler(flightStore, db, nil)

	departure := time.Now().UTC().Add(24 * time.Hour)
	req := jsonRequest(t, http.MethodPost, "/api/flights/", FlightRequest{
		Route:         uuid.New(),
		Airplane:      uuid.New(),
		DepartureTime: departure,
		ArrivalTime:   departure.Add(3 * time.Hour),
		Crew:          []uuid.UUID{uuid.New()},
	})
	rr := httptest.NewRecorder()
	handler.Create(rr, req)

	require.Equal(t, http.StatusCreated, rr.Code)
	require.NotNil(t, created)
	assert.Len(t, created.CrewIDs, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFlightHandler_Create_ArrivalBeforeDeparture(t *testing.T) {
	handler := NewFlightHandler(&mocks.MockFlightStore{}, nil, nil)

	departure := time.Now().UTC().Add(24 * time.Hour)
	req := jsonRequest(t, http.MethodPost, "/api/flights/", FlightRequest{
		Route:         uuid.New(),
		Airplane:      uuid.New(),
		DepartureTime: departure,
		ArrivalTime:   departure.Add(-time.Hour),
	})
	rr := httptest.NewRecorder()
	handler.Create(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestFlightHandler_Get(t *testing.T) {
	id := uuid.New()
	flightStore := &mocks.MockFlightStore{
		GetByIDFn: func(ctx context.Context, flightID uuid.UUID) (*store.FlightDetail, error) {
			detail := testFlightDetail(58)
			detail.Flight.ID = flightID
			detail.Crew = []domain.Crew{{ID: uuid.New(), FirstName: "Amelia", LastName: "Earhart"}}
			detail.TakenPlaces = []domain.Ticket{{ID: uuid.New(), Row: 2, Seat: 3}}
			return &detail, nil
		},
	}
	handler := NewFlightHandler(flightStore, nil, nil)

	req := withURLParam(
		httptest.NewRequest(http.MethodGet, "/api/flights/"+id.String()+"/", nil),
		"id", id.String(),
	)
	rr := httptest.NewRecorder()
	handler.Get(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var resp FlightDetailResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Equal(t, id, resp.ID)
	assert.Equal(t, []string{"Amelia Earhart"}, resp.Crew)
	require.Len(t, resp.TakenPlaces, 1)
	assert.Equal(t, 2, resp.TakenPlaces[0].Row)
	assert.Equal(t, 3, resp.TakenPlaces[0].Seat)
}

func TestFlightHandler_Get_NotFound(t *testing.T) {
	flightStore := &mocks.MockFlightStore{
		GetByIDFn: func(ctx context.Context, id uuid.UUID) (*store.FlightDetail, error) {
			return nil, store.ErrFlightNotFound
		},
	}
	handler := NewFlightHandler(flightStore, nil, nil)

	id := uuid.NewString()
	req := withURLParam(
		httptest.NewRequest(http.MethodGet, "/api/flights/"+id+"/", nil),
		"id", id,
	)
	rr := httptest.NewRecorder()
	handler.Get(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "Flight not found", decodeErrorResponse(t, rr).Error)
}

func TestFlightHandler_Delete(t *testing.T) {
	id := uuid.New()
	flightStore := &mocks.MockFlightStore{
		DeleteFn: func(ctx context.Context, flightID uuid.UUID) error {
			assert.Equal(t, id, flightID)
			return nil
		},
	}
	handler := NewFlightHandler(flightStore, nil, nil)

	req := withURLParam(
		httptest.NewRequest(http.MethodDelete, "/api/flights/"+id.String()+"/", nil),
		"id", id.String(),
	)
	rr := httptest.NewRecorder()
	handler.Delete(rr, req)

	assert.Equal(t, http.StatusNoContent, rr.Code)
}
