package api

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/vportnov/airport-api/internal/domain"
	"github.com/vportnov/airport-api/internal/store"
)

// Request and response structures for all endpoints. Responses mirror the
// read shapes the stores produce: listings use compact representations
// (names and city strings), retrievals embed the full related objects.

// --- Authentication ---

// RegisterRequest defines the payload for the user registration endpoint.
type RegisterRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

// TokenRequest defines the payload for the token (login) endpoint.
type TokenRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=1"`
}

// TokenResponse defines the successful response for the token endpoints.
type TokenResponse struct {
	// Access is the JWT used for API authorization
	Access string `json:"access"`

	// Refresh is the JWT used to obtain new token pairs
	Refresh string `json:"refresh"`
}

// RefreshRequest defines the payload for the token refresh endpoint.
type RefreshRequest struct {
	Refresh string `json:"refresh" validate:"required"`
}

// UserResponse defines the user profile shape. Password fields are never
// serialized.
type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	IsStaff   bool      `json:"is_staff"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewUserResponse builds the profile response for a user.
func NewUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		IsStaff:   user.CanWriteCatalog(),
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}

// UpdateMeRequest defines the payload for updating the caller's own profile.
// Both fields are optional; at least one must be provided.
type UpdateMeRequest struct {
	Email    *string `json:"email"    validate:"omitempty,email"`
	Password *string `json:"password" validate:"omitempty,min=8,max=72"`
}

// --- Crew ---

// CrewRequest defines the payload for creating or replacing a crew member.
type CrewRequest struct {
	FirstName string `json:"first_name" validate:"required,max=255"`
	LastName  string `json:"last_name"  validate:"required,max=255"`
}

// CrewPatchRequest defines the payload for partially updating a crew member.
type CrewPatchRequest struct {
	FirstName *string `json:"first_name" validate:"omitempty,min=1,max=255"`
	LastName  *string `json:"last_name"  validate:"omitempty,min=1,max=255"`
}

// CrewResponse defines the crew member shape for all reads.
type CrewResponse struct {
	ID        uuid.UUID `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	FullName  string    `json:"full_name"`
}

// NewCrewResponse builds the response for a crew member.
func NewCrewResponse(crew *domain.Crew) CrewResponse {
	return CrewResponse{
		ID:        crew.ID,
		FirstName: crew.FirstName,
		LastName:  crew.LastName,
		FullName:  crew.FullName(),
	}
}

// --- Airplane types ---

// AirplaneTypeRequest defines the payload for creating or replacing an
// airplane type.
type AirplaneTypeRequest struct {
	Name string `json:"name" validate:"required,max=255"`
}

// AirplaneTypeResponse defines the airplane type shape for all reads.
type AirplaneTypeResponse struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// NewAirplaneTypeResponse builds the response for an airplane type.
func NewAirplaneTypeResponse(airplaneType *domain.AirplaneType) AirplaneTypeResponse {
	return AirplaneTypeResponse{
		ID:   airplaneType.ID,
		Name: airplaneType.Name,
	}
}

// --- Airplanes ---

// AirplaneRequest defines the payload for creating or replacing an airplane.
type AirplaneRequest struct {
	Name         string    `json:"name"          validate:"required,max=255"`
	Rows         int       `json:"rows"          validate:"required,min=1"`
	SeatsInRow   int       `json:"seats_in_row"  validate:"required,min=1"`
	AirplaneType uuid.UUID `json:"airplane_type" validate:"required"`
}

// AirplanePatchRequest defines the payload for partially updating an airplane.
type AirplanePatchRequest struct {
	Name         *string    `json:"name"          validate:"omitempty,min=1,max=255"`
	Rows         *int       `json:"rows"          validate:"omitempty,min=1"`
	SeatsInRow   *int       `json:"seats_in_row"  validate:"omitempty,min=1"`
	AirplaneType *uuid.UUID `json:"airplane_type"`
}

// AirplaneListResponse defines the airplane shape for listings: the type
// collapses to its name.
type AirplaneListResponse struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Rows         int       `json:"rows"`
	SeatsInRow   int       `json:"seats_in_row"`
	Capacity     int       `json:"capacity"`
	AirplaneType string    `json:"airplane_type"`
	Image        *string   `json:"image"`
}

// AirplaneDetailResponse defines the airplane shape for retrievals: the full
// type object is embedded.
type AirplaneDetailResponse struct {
	ID           uuid.UUID            `json:"id"`
	Name         string               `json:"name"`
	Rows         int                  `json:"rows"`
	SeatsInRow   int                  `json:"seats_in_row"`
	Capacity     int                  `json:"capacity"`
	AirplaneType AirplaneTypeResponse `json:"airplane_type"`
	Image        *string              `json:"image"`
}

// airplaneImageURL returns the image endpoint URL for the airplane, or nil
// when no image has been uploaded.
func airplaneImageURL(airplane *domain.Airplane) *string {
	if !airplane.HasImage {
		return nil
	}
	url := fmt.Sprintf("/api/airplanes/%s/image/", airplane.ID)
	return &url
}

// NewAirplaneListResponse builds the listing response for an airplane.
func NewAirplaneListResponse(detail *store.AirplaneDetail) AirplaneListResponse {
	return AirplaneListResponse{
		ID:           detail.Airplane.ID,
		Name:         detail.Airplane.Name,
		Rows:         detail.Airplane.Rows,
		SeatsInRow:   detail.Airplane.SeatsInRow,
		Capacity:     detail.Airplane.Capacity(),
		AirplaneType: detail.Type.Name,
		Image:        airplaneImageURL(&detail.Airplane),
	}
}

// NewAirplaneDetailResponse builds the retrieval response for an airplane.
func NewAirplaneDetailResponse(detail *store.AirplaneDetail) AirplaneDetailResponse {
	return AirplaneDetailResponse{
		ID:           detail.Airplane.ID,
		Name:         detail.Airplane.Name,
		Rows:         detail.Airplane.Rows,
		SeatsInRow:   detail.Airplane.SeatsInRow,
		Capacity:     detail.Airplane.Capacity(),
		AirplaneType: NewAirplaneTypeResponse(&detail.Type),
		Image:        airplaneImageURL(&detail.Airplane),
	}
}

// --- Airports ---

// AirportRequest defines the payload for creating or replacing an airport.
type AirportRequest struct {
	Name           string `json:"name"             validate:"required,max=255"`
	ClosestBigCity string `json:"closest_big_city" validate:"required,max=255"`
}

// AirportPatchRequest defines the payload for partially updating an airport.
type AirportPatchRequest struct {
	Name           *string `json:"name"             validate:"omitempty,min=1,max=255"`
	ClosestBigCity *string `json:"closest_big_city" validate:"omitempty,min=1,max=255"`
}

// AirportResponse defines the airport shape for listings and embedding.
type AirportResponse struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	ClosestBigCity string    `json:"closest_big_city"`
}

// NewAirportResponse builds the response for an airport.
func NewAirportResponse(airport *domain.Airport) AirportResponse {
	return AirportResponse{
		ID:             airport.ID,
		Name:           airport.Name,
		ClosestBigCity: airport.ClosestBigCity,
	}
}

// AirportRouteResponse is a route departing an airport, as embedded in the
// airport retrieval. Source and destination are airport names.
type AirportRouteResponse struct {
	Source      string `json:"source"`
	Destination string `json:"destination"`
	Distance    int    `json:"distance"`
	CitiesRoute string `json:"cities_route"`
}

// AirportDetailResponse defines the airport shape for retrievals, embedding
// the routes that depart it.
type AirportDetailResponse struct {
	ID             uuid.UUID              `json:"id"`
	Name           string                 `json:"name"`
	ClosestBigCity string                 `json:"closest_big_city"`
	Routes         []AirportRouteResponse `json:"routes"`
}

// NewAirportDetailResponse builds the retrieval response for an airport and
// its departing routes.
func NewAirportDetailResponse(airport *domain.Airport, routes []store.RouteDetail) AirportDetailResponse {
	routeResponses := make([]AirportRouteResponse, 0, len(routes))
	for i := range routes {
		routeResponses = append(routeResponses, AirportRouteResponse{
			Source:      routes[i].Source.Name,
			Destination: routes[i].Destination.Name,
			Distance:    routes[i].Route.Distance,
			CitiesRoute: routes[i].CitiesRoute(),
		})
	}

	return AirportDetailResponse{
		ID:             airport.ID,
		Name:           airport.Name,
		ClosestBigCity: airport.ClosestBigCity,
		Routes:         routeResponses,
	}
}

// --- Routes ---

// RouteRequest defines the payload for creating or replacing a route.
type RouteRequest struct {
	Source      uuid.UUID `json:"source"      validate:"required"`
	Destination uuid.UUID `json:"destination" validate:"required"`
	Distance    int       `json:"distance"    validate:"required,min=1"`
}

// RoutePatchRequest defines the payload for partially updating a route.
type RoutePatchRequest struct {
	Source      *uuid.UUID `json:"source"`
	Destination *uuid.UUID `json:"destination"`
	Distance    *int       `json:"distance" validate:"omitempty,min=1"`
}

// RouteListResponse defines the route shape for listings: airports collapse
// to their closest big cities.
type RouteListResponse struct {
	ID          uuid.UUID `json:"id"`
	Source      string    `json:"source"`
	Destination string    `json:"destination"`
	Distance    int       `json:"distance"`
	CitiesRoute string    `json:"cities_route"`
}

// RouteDetailResponse defines the route shape for retrievals: the full
// airport objects are embedded.
type RouteDetailResponse struct {
	ID          uuid.UUID       `json:"id"`
	Source      AirportResponse `json:"source"`
	Destination AirportResponse `json:"destination"`
	Distance    int             `json:"distance"`
	CitiesRoute string          `json:"cities_route"`
}

// NewRouteListResponse builds the listing response for a route.
func NewRouteListResponse(detail *store.RouteDetail) RouteListResponse {
	return RouteListResponse{
		ID:          detail.Route.ID,
		Source:      detail.Source.ClosestBigCity,
		Destination: detail.Destination.ClosestBigCity,
		Distance:    detail.Route.Distance,
		CitiesRoute: detail.CitiesRoute(),
	}
}

// NewRouteDetailResponse builds the retrieval response for a route.
func NewRouteDetailResponse(detail *store.RouteDetail) RouteDetailResponse {
	return RouteDetailResponse{
		ID:          detail.Route.ID,
		Source:      NewAirportResponse(&detail.Source),
		Destination: NewAirportResponse(&detail.Destination),
		Distance:    detail.Route.Distance,
		CitiesRoute: detail.CitiesRoute(),
	}
}

// --- Flights ---

// FlightRequest defines the payload for creating or replacing a flight.
type FlightRequest struct {
	Route         uuid.UUID   `json:"route"          validate:"required"`
	Airplane      uuid.UUID   `json:"airplane"       validate:"required"`
	DepartureTime time.Time   `json:"departure_time" validate:"required"`
	ArrivalTime   time.Time   `json:"arrival_time"   validate:"required"`
	Crew          []uuid.UUID `json:"crew"`
}

// FlightPatchRequest defines the payload for partially updating a flight.
// A present Crew field replaces the whole assignment list.
type FlightPatchRequest struct {
	Route         *uuid.UUID   `json:"route"`
	Airplane      *uuid.UUID   `json:"airplane"`
	DepartureTime *time.Time   `json:"departure_time"`
	ArrivalTime   *time.Time   `json:"arrival_time"`
	Crew          *[]uuid.UUID `json:"crew"`
}

// FlightListResponse defines the flight shape for listings: the route
// collapses to its cities string and the airplane to its name.
type FlightListResponse struct {
	ID               uuid.UUID `json:"id"`
	Route            string    `json:"route"`
	Airplane         string    `json:"airplane"`
	DepartureTime    time.Time `json:"departure_time"`
	ArrivalTime      time.Time `json:"arrival_time"`
	TicketsAvailable int       `json:"tickets_available"`
}

// TakenPlaceResponse is one booked seat on a flight.
type TakenPlaceResponse struct {
	Row  int `json:"row"`
	Seat int `json:"seat"`
}

// FlightDetailResponse defines the flight shape for retrievals: full route
// and airplane objects, crew as full names, and the booked seats.
type FlightDetailResponse struct {
	ID            uuid.UUID            `json:"id"`
	Route         RouteDetailResponse  `json:"route"`
	Airplane      AirplaneListResponse `json:"airplane"`
	DepartureTime time.Time            `json:"departure_time"`
	ArrivalTime   time.Time            `json:"arrival_time"`
	Crew          []string             `json:"crew"`
	TakenPlaces   []TakenPlaceResponse `json:"taken_places"`
}

// NewFlightListResponse builds the listing response for a flight.
func NewFlightListResponse(detail *store.FlightDetail) FlightListResponse {
	return FlightListResponse{
		ID:               detail.Flight.ID,
		Route:            detail.Route.CitiesRoute(),
		Airplane:         detail.Airplane.Airplane.Name,
		DepartureTime:    detail.Flight.DepartureTime,
		ArrivalTime:      detail.Flight.ArrivalTime,
		TicketsAvailable: detail.TicketsAvailable,
	}
}

// NewFlightDetailResponse builds the retrieval response for a flight.
func NewFlightDetailResponse(detail *store.FlightDetail) FlightDetailResponse {
	crew := make([]string, 0, len(detail.Crew))
	for i := range detail.Crew {
		crew = append(crew, detail.Crew[i].FullName())
	}

	takenPlaces := make([]TakenPlaceResponse, 0, len(detail.TakenPlaces))
	for i := range detail.TakenPlaces {
		takenPlaces = append(takenPlaces, TakenPlaceResponse{
			Row:  detail.TakenPlaces[i].Row,
			Seat: detail.TakenPlaces[i].Seat,
		})
	}

	return FlightDetailResponse{
		ID:            detail.Flight.ID,
		Route:         NewRouteDetailResponse(&detail.Route),
		Airplane:      NewAirplaneListResponse(&detail.Airplane),
		DepartureTime: detail.Flight.DepartureTime,
		ArrivalTime:   detail.Flight.ArrivalTime,
		Crew:          crew,
		TakenPlaces:   takenPlaces,
	}
}

// --- Orders and tickets ---

// TicketRequest is one requested seat inside an order creation payload.
type TicketRequest struct {
	Row    int       `json:"row"    validate:"required,min=1"`
	Seat   int       `json:"seat"   validate:"required,min=1"`
	Flight uuid.UUID `json:"flight" validate:"required"`
}

// OrderCreateRequest defines the payload for creating an order with its
// tickets.
type OrderCreateRequest struct {
	Tickets []TicketRequest `json:"tickets" validate:"required,min=1,dive"`
}

// TicketResponse is a booked ticket with its flight in listing shape.
type TicketResponse struct {
	ID     uuid.UUID          `json:"id"`
	Row    int                `json:"row"`
	Seat   int                `json:"seat"`
	Flight FlightListResponse `json:"flight"`
}

// OrderResponse defines the order shape for all reads.
type OrderResponse struct {
	ID        uuid.UUID        `json:"id"`
	Tickets   []TicketResponse `json:"tickets"`
	CreatedAt time.Time        `json:"created_at"`
}

// NewOrderResponse builds the response for an order and its tickets.
func NewOrderResponse(detail *store.OrderDetail) OrderResponse {
	tickets := make([]TicketResponse, 0, len(detail.Tickets))
	for i := range detail.Tickets {
		tickets = append(tickets, TicketResponse{
			ID:     detail.Tickets[i].Ticket.ID,
			Row:    detail.Tickets[i].Ticket.Row,
			Seat:   detail.Tickets[i].Ticket.Seat,
			Flight: NewFlightListResponse(&detail.Tickets[i].Flight),
		})
	}

	return OrderResponse{
		ID:        detail.Order.ID,
		Tickets:   tickets,
		CreatedAt: detail.Order.CreatedAt,
	}
}
