package mocks

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/vportnov/airport-api/internal/domain"
	"github.com/vportnov/airport-api/internal/store"
)

// MockUserStore implements store.UserStore for testing.
type MockUserStore struct {
	CreateFn     func(ctx context.Context, user *domain.User) error
	GetByIDFn    func(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmailFn func(ctx context.Context, email string) (*domain.User, error)
	UpdateFn     func(ctx context.Context, user *domain.User) error
	DeleteFn     func(ctx context.Context, id uuid.UUID) error
}

func (m *MockUserStore) Create(ctx context.Context, user *domain.User) error {
	return m.CreateFn(ctx, user)
}

func (m *MockUserStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return m.GetByIDFn(ctx, id)
}

func (m *MockUserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return m.GetByEmailFn(ctx, email)
}

func (m *MockUserStore) Update(ctx context.Context, user *domain.User) error {
	return m.UpdateFn(ctx, user)
}

func (m *MockUserStore) Delete(ctx context.Context, id uuid.UUID) error {
	return m.DeleteFn(ctx, id)
}

func (m *MockUserStore) WithTx(tx *sql.Tx) store.UserStore { return m }

// MockCrewStore implements store.CrewStore for testing.
type MockCrewStore struct {
	CreateFn  func(ctx context.Context, crew *domain.Crew) error
	GetByIDFn func(ctx context.Context, id uuid.UUID) (*domain.Crew, error)
	ListFn    func(ctx context.Context, params store.ListParams) ([]domain.Crew, int, error)
	UpdateFn  func(ctx context.Context, crew *domain.Crew) error
	DeleteFn  func(ctx context.Context, id uuid.UUID) error
}

func (m *MockCrewStore) Create(ctx context.Context, crew *domain.Crew) error {
	return m.CreateFn(ctx, crew)
}

func (m *MockCrewStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Crew, error) {
	return m.GetByIDFn(ctx, id)
}

func (m *MockCrewStore) List(
	ctx context.Context,
	params store.ListParams,
) ([]domain.Crew, int, error) {
	return m.ListFn(ctx, params)
}

func (m *MockCrewStore) Update(ctx context.Context, crew *domain.Crew) error {
	return m.UpdateFn(ctx, crew)
}

func (m *MockCrewStore) Delete(ctx context.Context, id uuid.UUID) error {
	return m.DeleteFn(ctx, id)
}

func (m *MockCrewStore) WithTx(tx *sql.Tx) store.CrewStore { return m }

// MockAirplaneTypeStore implements store.AirplaneTypeStore for testing.
type MockAirplaneTypeStore struct {
	CreateFn  func(ctx context.Context, airplaneType *domain.AirplaneType) error
	GetByIDFn func(ctx context.Context, id uuid.UUID) (*domain.AirplaneType, error)
	ListFn    func(ctx context.Context, params store.ListParams) ([]domain.AirplaneType, int, error)
	UpdateFn  func(ctx context.Context, airplaneType *domain.AirplaneType) error
	DeleteFn  func(ctx context.Context, id uuid.UUID) error
}

func (m *MockAirplaneTypeStore) Create(ctx context.Context, airplaneType *domain.AirplaneType) error {
	return m.CreateFn(ctx, airplaneType)
}

func (m *MockAirplaneTypeStore) GetByID(
	ctx context.Context,
	id uuid.UUID,
) (*domain.AirplaneType, error) {
	return m.GetByIDFn(ctx, id)
}

func (m *MockAirplaneTypeStore) List(
	ctx context.Context,
	params store.ListParams,
) ([]domain.AirplaneType, int, error) {
	return m.ListFn(ctx, params)
}

func (m *MockAirplaneTypeStore) Update(ctx context.Context, airplaneType *domain.AirplaneType) error {
	return m.UpdateFn(ctx, airplaneType)
}

func (m *MockAirplaneTypeStore) Delete(ctx context.Context, id uuid.UUID) error {
	return m.DeleteFn(ctx, id)
}

func (m *MockAirplaneTypeStore) WithTx(tx *sql.Tx) store.AirplaneTypeStore { return m }

// MockAirplaneStore implements store.AirplaneStore for testing.
type MockAirplaneStore struct {
	CreateFn      func(ctx context.Context, airplane *domain.Airplane) error
	GetByIDFn     func(ctx context.Context, id uuid.UUID) (*store.AirplaneDetail, error)
	ListFn        func(ctx context.Context, params store.ListParams) ([]store.AirplaneDetail, int, error)
	UpdateFn      func(ctx context.Context, airplane *domain.Airplane) error
	DeleteFn      func(ctx context.Context, id uuid.UUID) error
	UpdateImageFn func(ctx context.Context, id uuid.UUID, image []byte) error
	GetImageFn    func(ctx context.Context, id uuid.UUID) ([]byte, error)
}

func (m *MockAirplaneStore) Create(ctx context.Context, airplane *domain.Airplane) error {
	return m.CreateFn(ctx, airplane)
}

func (m *MockAirplaneStore) GetByID(
	ctx context.Context,
	id uuid.UUID,
) (*store.AirplaneDetail, error) {
	return m.GetByIDFn(ctx, id)
}

func (m *MockAirplaneStore) List(
	ctx context.Context,
	params store.ListParams,
) ([]store.AirplaneDetail, int, error) {
	return m.ListFn(ctx, params)
}

func (m *MockAirplaneStore) Update(ctx context.Context, airplane *domain.Airplane) error {
	return m.UpdateFn(ctx, airplane)
}

func (m *MockAirplaneStore) Delete(ctx context.Context, id uuid.UUID) error {
	return m.DeleteFn(ctx, id)
}

func (m *MockAirplaneStore) UpdateImage(ctx context.Context, id uuid.UUID, image []byte) error {
	return m.UpdateImageFn(ctx, id, image)
}

func (m *MockAirplaneStore) GetImage(ctx context.Context, id uuid.UUID) ([]byte, error) {
	return m.GetImageFn(ctx, id)
}

func (m *MockAirplaneStore) WithTx(tx *sql.Tx) store.AirplaneStore { return m }

// MockAirportStore implements store.AirportStore for testing.
type MockAirportStore struct {
	CreateFn  func(ctx context.Context, airport *domain.Airport) error
	GetByIDFn func(ctx context.Context, id uuid.UUID) (*domain.Airport, error)
	ListFn    func(ctx context.Context, params store.ListParams) ([]domain.Airport, int, error)
	UpdateFn  func(ctx context.Context, airport *domain.Airport) error
	DeleteFn  func(ctx context.Context, id uuid.UUID) error
}

func (m *MockAirportStore) Create(ctx context.Context, airport *domain.Airport) error {
	return m.CreateFn(ctx, airport)
}

func (m *MockAirportStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Airport, error) {
	return m.GetByIDFn(ctx, id)
}

func (m *MockAirportStore) List(
	ctx context.Context,
	params store.ListParams,
) ([]domain.Airport, int, error) {
	return m.ListFn(ctx, params)
}

func (m *MockAirportStore) Update(ctx context.Context, airport *domain.Airport) error {
	return m.UpdateFn(ctx, airport)
}

func (m *MockAirportStore) Delete(ctx context.Context, id uuid.UUID) error {
	return m.DeleteFn(ctx, id)
}

func (m *MockAirportStore) WithTx(tx *sql.Tx) store.AirportStore { return m }

// MockRouteStore implements store.RouteStore for testing.
type MockRouteStore struct {
	CreateFn       func(ctx context.Context, route *domain.Route) error
	GetByIDFn      func(ctx context.Context, id uuid.UUID) (*store.RouteDetail, error)
	ListFn         func(ctx context.Context, filter store.RouteFilter, params store.ListParams) ([]store.RouteDetail, int, error)
	ListBySourceFn func(ctx context.Context, airportID uuid.UUID) ([]store.RouteDetail, error)
	UpdateFn       func(ctx context.Context, route *domain.Route) error
	DeleteFn       func(ctx context.Context, id uuid.UUID) error
}

func (m *MockRouteStore) Create(ctx context.Context, route *domain.Route) error {
	return m.CreateFn(ctx, route)
}

func (m *MockRouteStore) GetByID(ctx context.Context, id uuid.UUID) (*store.RouteDetail, error) {
	return m.GetByIDFn(ctx, id)
}

func (m *MockRouteStore) List(
	ctx context.Context,
	filter store.RouteFilter,
	params store.ListParams,
) ([]store.RouteDetail, int, error) {
	return m.ListFn(ctx, filter, params)
}

func (m *MockRouteStore) ListBySource(
	ctx context.Context,
	airportID uuid.UUID,
) ([]store.RouteDetail, error) {
	return m.ListBySourceFn(ctx, airportID)
}

func (m *MockRouteStore) Update(ctx context.Context, route *domain.Route) error {
	return m.UpdateFn(ctx, route)
}

func (m *MockRouteStore) Delete(ctx context.Context, id uuid.UUID) error {
	return m.DeleteFn(ctx, id)
}

func (m *MockRouteStore) WithTx(tx *sql.Tx) store.RouteStore { return m }

// MockFlightStore implements store.FlightStore for testing.
type MockFlightStore struct {
	CreateFn  func(ctx context.Context, flight *domain.Flight) error
	GetByIDFn func(ctx context.Context, id uuid.UUID) (*store.FlightDetail, error)
	ListFn    func(ctx context.Context, filter store.FlightFilter, params store.ListParams) ([]store.FlightDetail, int, error)
	UpdateFn  func(ctx context.Context, flight *domain.Flight) error
	DeleteFn  func(ctx context.Context, id uuid.UUID) error
}

func (m *MockFlightStore) Create(ctx context.Context, flight *domain.Flight) error {
	return m.CreateFn(ctx, flight)
}

func (m *MockFlightStore) GetByID(ctx context.Context, id uuid.UUID) (*store.FlightDetail, error) {
	return m.GetByIDFn(ctx, id)
}

func (m *MockFlightStore) List(
	ctx context.Context,
	filter store.FlightFilter,
	params store.ListParams,
) ([]store.FlightDetail, int, error) {
	return m.ListFn(ctx, filter, params)
}

func (m *MockFlightStore) Update(ctx context.Context, flight *domain.Flight) error {
	return m.UpdateFn(ctx, flight)
}

func (m *MockFlightStore) Delete(ctx context.Context, id uuid.UUID) error {
	return m.DeleteFn(ctx, id)
}

func (m *MockFlightStore) WithTx(tx *sql.Tx) store.FlightStore { return m }

// MockOrderStore implements store.OrderStore for testing.
type MockOrderStore struct {
	CreateFn  func(ctx context.Context, order *domain.Order) error
	GetByIDFn func(ctx context.Context, id uuid.UUID) (*store.OrderDetail, error)
	ListFn    func(ctx context.Context, userID uuid.UUID, params store.ListParams) ([]store.OrderDetail, int, error)
	DeleteFn  func(ctx context.Context, id uuid.UUID) error
}

func (m *MockOrderStore) Create(ctx context.Context, order *domain.Order) error {
	return m.CreateFn(ctx, order)
}

func (m *MockOrderStore) GetByID(ctx context.Context, id uuid.UUID) (*store.OrderDetail, error) {
	return m.GetByIDFn(ctx, id)
}

func (m *MockOrderStore) List(
	ctx context.Context,
	userID uuid.UUID,
	params store.ListParams,
) ([]store.OrderDetail, int, error) {
	return m.ListFn(ctx, userID, params)
}

func (m *MockOrderStore) Delete(ctx context.Context, id uuid.UUID) error {
	return m.DeleteFn(ctx, id)
}

func (m *MockOrderStore) WithTx(tx *sql.Tx) store.OrderStore { return m }
