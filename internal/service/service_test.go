package service

import (
	"context"
	"sync"
	"testing"
	"time"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/yizeng/gab/gin/gorm/airport-api/internal/db/dbtest"
	"github.com/yizeng/gab/gin/gorm/airport-api/internal/domain"
	"github.com/yizeng/gab/gin/gorm/airport-api/internal/repository"
	"github.com/yizeng/gab/gin/gorm/airport-api/internal/repository/dao"
)

type services struct {
	auth          *AuthService
	users         *UserService
	airports      *AirportService
	routes        *RouteService
	airplaneTypes *AirplaneTypeService
	airplanes     *AirplaneService
	crew          *CrewService
	flights       *FlightService
	orders        *OrderService
}

func setupServices(t *testing.T) *services {
	t.Helper()

	gormDB := dbtest.Open(t)

	return newServices(gormDB)
}

func newServices(gormDB *gorm.DB) *services {
	users := repository.NewUserRepository(dao.NewUserDAO(gormDB))
	airports := repository.NewAirportRepository(dao.NewAirportDAO(gormDB))
	routes := repository.NewRouteRepository(dao.NewRouteDAO(gormDB))
	types := repository.NewAirplaneTypeRepository(dao.NewAirplaneTypeDAO(gormDB))
	airplanes := repository.NewAirplaneRepository(dao.NewAirplaneDAO(gormDB))
	crew := repository.NewCrewRepository(dao.NewCrewDAO(gormDB))
	flights := repository.NewFlightRepository(dao.NewFlightDAO(gormDB))
	orders := repository.NewOrderRepository(dao.NewOrderDAO(gormDB))

	return &services{
		auth:          NewAuthService(users),
		users:         NewUserService(users),
		airports:      NewAirportService(airports),
		routes:        NewRouteService(routes, airports),
		airplaneTypes: NewAirplaneTypeService(types),
		airplanes:     NewAirplaneService(airplanes, types),
		crew:          NewCrewService(crew),
		flights:       NewFlightService(flights, routes, airplanes, crew),
		orders:        NewOrderService(orders, flights),
	}
}

type seeded struct {
	kyiv, lviv domain.Airport
	route      domain.Route
	airplane   domain.Airplane
	flight     domain.Flight
	buyer      domain.Principal
}

// seed creates one flight on a 10 rows x 4 seats airplane and a passenger.
func seed(t *testing.T, s *services) seeded {
	t.Helper()
	ctx := context.Background()

	var out seeded
	var err error

	out.kyiv, err = s.airports.CreateAirport(ctx, domain.Airport{Name: "Boryspil", ClosestBigCity: "Kyiv"})
	require.NoError(t, err)
	out.lviv, err = s.airports.CreateAirport(ctx, domain.Airport{Name: "Lviv Danylo Halytskyi", ClosestBigCity: "Lviv"})
	require.NoError(t, err)

	out.route, err = s.routes.CreateRoute(ctx, domain.Route{SourceID: out.kyiv.ID, DestinationID: out.lviv.ID, Distance: 540})
	require.NoError(t, err)

	airplaneType, err := s.airplaneTypes.CreateAirplaneType(ctx, domain.AirplaneType{Name: "Airbus A320"})
	require.NoError(t, err)
	out.airplane, err = s.airplanes.CreateAirplane(ctx, domain.Airplane{Name: "UR-PSA", TypeID: airplaneType.ID, Rows: 10, SeatsInRow: 4})
	require.NoError(t, err)

	departure := time.Date(2024, 5, 1, 8, 30, 0, 0, time.UTC)
	out.flight, err = s.flights.CreateFlight(ctx, domain.Flight{
		RouteID:       out.route.ID,
		AirplaneID:    out.airplane.ID,
		DepartureTime: departure,
		ArrivalTime:   departure.Add(90 * time.Minute),
	})
	require.NoError(t, err)

	user, err := s.auth.Signup(ctx, domain.User{Email: "buyer@example.com", Password: "secret123"})
	require.NoError(t, err)
	out.buyer = domain.Principal{UserID: user.ID}

	return out
}

func fieldErrors(t *testing.T, err error) validation.Errors {
	t.Helper()

	var errs validation.Errors
	require.ErrorAs(t, err, &errs)

	return errs
}

func TestAuthService(t *testing.T) {
	s := setupServices(t)
	ctx := context.Background()

	user, err := s.auth.Signup(ctx, domain.User{Email: "jane@example.com", Password: "secret123", IsStaff: true})
	require.NoError(t, err)
	assert.False(t, user.IsStaff)
	assert.NotEqual(t, "secret123", user.Password)

	_, err = s.auth.Signup(ctx, domain.User{Email: "jane@example.com", Password: "secret123"})
	assert.ErrorIs(t, err, ErrUserEmailExists)

	logged, err := s.auth.Login(ctx, "jane@example.com", "secret123")
	require.NoError(t, err)
	assert.Equal(t, user.ID, logged.ID)

	_, err = s.auth.Login(ctx, "jane@example.com", "wrong")
	assert.ErrorIs(t, err, ErrWrongPassword)

	// Addresses are matched regardless of case and surrounding spaces.
	_, err = s.auth.Signup(ctx, domain.User{Email: " Jane@Example.COM", Password: "secret123"})
	assert.ErrorIs(t, err, ErrUserEmailExists)

	logged, err = s.auth.Login(ctx, "JANE@example.com ", "secret123")
	require.NoError(t, err)
	assert.Equal(t, user.ID, logged.ID)

	_, err = s.auth.Login(ctx, "nobody@example.com", "secret123")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUserService_EnsureAdmin(t *testing.T) {
	s := setupServices(t)
	ctx := context.Background()

	admin, err := s.users.EnsureAdmin(ctx, "admin@example.com", "secret123")
	require.NoError(t, err)
	assert.True(t, admin.IsStaff)

	again, err := s.users.EnsureAdmin(ctx, "admin@example.com", "ignored")
	require.NoError(t, err)
	assert.Equal(t, admin.ID, again.ID)

	passenger, err := s.auth.Signup(ctx, domain.User{Email: "jane@example.com", Password: "secret123"})
	require.NoError(t, err)

	promoted, err := s.users.EnsureAdmin(ctx, "jane@example.com", "secret123")
	require.NoError(t, err)
	assert.Equal(t, passenger.ID, promoted.ID)

	found, err := s.users.GetUser(ctx, passenger.ID)
	require.NoError(t, err)
	assert.True(t, found.IsStaff)
}

func TestAirportService_DuplicateName(t *testing.T) {
	s := setupServices(t)
	out := seed(t, s)

	_, err := s.airports.CreateAirport(context.Background(), domain.Airport{Name: out.kyiv.Name, ClosestBigCity: "Kyiv"})
	require.True(t, IsValidationError(err))
	assert.Contains(t, fieldErrors(t, err), "name")
}

func TestAirportService_UpdateMissing(t *testing.T) {
	s := setupServices(t)

	_, err := s.airports.UpdateAirport(context.Background(), domain.Airport{ID: 99, Name: "Nowhere", ClosestBigCity: "None"})
	assert.ErrorIs(t, err, ErrAirportNotFound)
}

func TestRouteService_Validation(t *testing.T) {
	s := setupServices(t)
	out := seed(t, s)
	ctx := context.Background()

	tests := []struct {
		name    string
		route   domain.Route
		field   string
		message string
	}{
		{
			name:    "same endpoints",
			route:   domain.Route{SourceID: out.kyiv.ID, DestinationID: out.kyiv.ID, Distance: 10},
			field:   "destination",
			message: "source and destination cannot be the same",
		},
		{
			name:    "zero distance",
			route:   domain.Route{SourceID: out.lviv.ID, DestinationID: out.kyiv.ID, Distance: 0},
			field:   "distance",
			message: "distance should be greater than 0",
		},
		{
			name:    "unknown airport",
			route:   domain.Route{SourceID: out.lviv.ID, DestinationID: 999, Distance: 10},
			field:   "destination",
			message: `invalid pk "999" - object does not exist`,
		},
		{
			name:    "duplicate",
			route:   domain.Route{SourceID: out.kyiv.ID, DestinationID: out.lviv.ID, Distance: 10},
			field:   "destination",
			message: ErrRouteExists.Error(),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.routes.CreateRoute(ctx, tt.route)
			errs := fieldErrors(t, err)
			assert.EqualError(t, errs[tt.field], tt.message)
		})
	}
}

func TestRouteService_UpdateMissingBeforeValidation(t *testing.T) {
	s := setupServices(t)

	_, err := s.routes.UpdateRoute(context.Background(), domain.Route{ID: 77, SourceID: 1, DestinationID: 1})
	assert.ErrorIs(t, err, ErrRouteNotFound)
}

func TestAirplaneService_UnknownType(t *testing.T) {
	s := setupServices(t)

	_, err := s.airplanes.CreateAirplane(context.Background(), domain.Airplane{Name: "UR-X", TypeID: 5, Rows: 1, SeatsInRow: 1})
	errs := fieldErrors(t, err)
	assert.EqualError(t, errs["type"], `invalid pk "5" - object does not exist`)
}

func TestFlightService_Crew(t *testing.T) {
	s := setupServices(t)
	out := seed(t, s)
	ctx := context.Background()

	pilot, err := s.crew.CreateCrew(ctx, domain.Crew{FirstName: "Olena", LastName: "Shevchenko"})
	require.NoError(t, err)
	steward, err := s.crew.CreateCrew(ctx, domain.Crew{FirstName: "Taras", LastName: "Bondarenko"})
	require.NoError(t, err)

	update := out.flight
	update.CrewIDs = []uint{steward.ID, pilot.ID, steward.ID}
	updated, err := s.flights.UpdateFlight(ctx, update)
	require.NoError(t, err)
	assert.Equal(t, []uint{pilot.ID, steward.ID}, updated.CrewIDs)

	flight, err := s.flights.GetFlight(ctx, out.flight.ID)
	require.NoError(t, err)
	assert.Len(t, flight.Crew, 2)

	update.CrewIDs = []uint{pilot.ID, 404}
	_, err = s.flights.UpdateFlight(ctx, update)
	assert.EqualError(t, fieldErrors(t, err)["crew"], `invalid pk "404" - object does not exist`)
}

func TestFlightService_InvalidReferences(t *testing.T) {
	s := setupServices(t)
	out := seed(t, s)

	flight := out.flight
	flight.ID = 0
	flight.RouteID = 500
	flight.AirplaneID = 600
	_, err := s.flights.CreateFlight(context.Background(), flight)
	errs := fieldErrors(t, err)
	assert.Contains(t, errs, "route")
	assert.Contains(t, errs, "airplane")
}

func TestOrderService_CreateOrder(t *testing.T) {
	s := setupServices(t)
	out := seed(t, s)
	ctx := context.Background()

	order, err := s.orders.CreateOrder(ctx, out.buyer, []domain.Ticket{
		{FlightID: out.flight.ID, Row: 1, Seat: 1},
		{FlightID: out.flight.ID, Row: 1, Seat: 2},
	})
	require.NoError(t, err)
	assert.Len(t, order.Tickets, 2)
	assert.Equal(t, out.buyer.UserID, order.UserID)

	page, err := s.flights.ListFlights(ctx, domain.FlightFilter{}, domain.PageRequest{Page: 1, Size: 10})
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, 38, page.Items[0].TicketsAvailable)

	_, err = s.orders.CreateOrder(ctx, out.buyer, []domain.Ticket{{FlightID: out.flight.ID, Row: 1, Seat: 2}})
	assert.ErrorIs(t, err, ErrTicketTaken)
}

func TestOrderService_TicketValidation(t *testing.T) {
	s := setupServices(t)
	out := seed(t, s)
	ctx := context.Background()

	tests := []struct {
		name    string
		tickets []domain.Ticket
		check   func(t *testing.T, errs validation.Errors)
	}{
		{
			name:    "no tickets",
			tickets: nil,
			check: func(t *testing.T, errs validation.Errors) {
				assert.Contains(t, errs, "tickets")
			},
		},
		{
			name:    "row out of range",
			tickets: []domain.Ticket{{FlightID: out.flight.ID, Row: 11, Seat: 1}},
			check: func(t *testing.T, errs validation.Errors) {
				ticket := errs["tickets"].(validation.Errors)["0"].(validation.Errors)
				assert.EqualError(t, ticket["row"], "row should be in range: [1, 10]")
			},
		},
		{
			name: "seat out of range on second ticket",
			tickets: []domain.Ticket{
				{FlightID: out.flight.ID, Row: 1, Seat: 1},
				{FlightID: out.flight.ID, Row: 1, Seat: 5},
			},
			check: func(t *testing.T, errs validation.Errors) {
				tickets := errs["tickets"].(validation.Errors)
				assert.NotContains(t, tickets, "0")
				assert.EqualError(t, tickets["1"].(validation.Errors)["seat"], "seat should be in range: [1, 4]")
			},
		},
		{
			name:    "unknown flight",
			tickets: []domain.Ticket{{FlightID: 9000, Row: 1, Seat: 1}},
			check: func(t *testing.T, errs validation.Errors) {
				ticket := errs["tickets"].(validation.Errors)["0"].(validation.Errors)
				assert.EqualError(t, ticket["flight"], `invalid pk "9000" - object does not exist`)
			},
		},
		{
			name: "same seat twice",
			tickets: []domain.Ticket{
				{FlightID: out.flight.ID, Row: 3, Seat: 3},
				{FlightID: out.flight.ID, Row: 3, Seat: 3},
			},
			check: func(t *testing.T, errs validation.Errors) {
				assert.Contains(t, errs["tickets"].(validation.Errors), "1")
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.orders.CreateOrder(ctx, out.buyer, tt.tickets)
			tt.check(t, fieldErrors(t, err))
		})
	}

	// None of the rejected orders sold a seat.
	page, err := s.orders.ListOrders(ctx, out.buyer, domain.PageRequest{Page: 1, Size: 10})
	require.NoError(t, err)
	assert.Zero(t, page.Total)
}

func TestOrderService_ConcurrentBuyers(t *testing.T) {
	s := setupServices(t)
	out := seed(t, s)

	const buyers = 10
	errs := make([]error, buyers)

	var wg sync.WaitGroup
	for i := 0; i < buyers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = s.orders.CreateOrder(context.Background(), out.buyer, []domain.Ticket{
				{FlightID: out.flight.ID, Row: 4, Seat: 4},
			})
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
			continue
		}
		assert.ErrorIs(t, err, ErrTicketTaken)
	}
	assert.Equal(t, 1, succeeded)
}

func TestOrderService_ScopedToCaller(t *testing.T) {
	s := setupServices(t)
	out := seed(t, s)
	ctx := context.Background()

	order, err := s.orders.CreateOrder(ctx, out.buyer, []domain.Ticket{{FlightID: out.flight.ID, Row: 2, Seat: 2}})
	require.NoError(t, err)

	other, err := s.auth.Signup(ctx, domain.User{Email: "other@example.com", Password: "secret123"})
	require.NoError(t, err)
	stranger := domain.Principal{UserID: other.ID, IsStaff: true}

	_, err = s.orders.GetOrder(ctx, stranger, order.ID)
	assert.ErrorIs(t, err, ErrOrderNotFound)
	_, err = s.orders.ReplaceTickets(ctx, stranger, order.ID, []domain.Ticket{{FlightID: out.flight.ID, Row: 3, Seat: 3}})
	assert.ErrorIs(t, err, ErrOrderNotFound)
	assert.ErrorIs(t, s.orders.DeleteOrder(ctx, stranger, order.ID), ErrOrderNotFound)

	found, err := s.orders.GetOrder(ctx, out.buyer, order.ID)
	require.NoError(t, err)
	assert.Len(t, found.Tickets, 1)
}

func TestOrderService_ReplaceTickets(t *testing.T) {
	s := setupServices(t)
	out := seed(t, s)
	ctx := context.Background()

	held, err := s.orders.CreateOrder(ctx, out.buyer, []domain.Ticket{{FlightID: out.flight.ID, Row: 9, Seat: 1}})
	require.NoError(t, err)
	order, err := s.orders.CreateOrder(ctx, out.buyer, []domain.Ticket{{FlightID: out.flight.ID, Row: 2, Seat: 2}})
	require.NoError(t, err)

	replaced, err := s.orders.ReplaceTickets(ctx, out.buyer, order.ID, []domain.Ticket{
		{FlightID: out.flight.ID, Row: 2, Seat: 2},
		{FlightID: out.flight.ID, Row: 2, Seat: 3},
	})
	require.NoError(t, err)
	assert.Len(t, replaced.Tickets, 2)

	_, err = s.orders.ReplaceTickets(ctx, out.buyer, order.ID, []domain.Ticket{{FlightID: out.flight.ID, Row: 9, Seat: 1}})
	assert.ErrorIs(t, err, ErrTicketTaken)

	require.NoError(t, s.orders.DeleteOrder(ctx, out.buyer, held.ID))
	_, err = s.orders.ReplaceTickets(ctx, out.buyer, order.ID, []domain.Ticket{{FlightID: out.flight.ID, Row: 9, Seat: 1}})
	assert.NoError(t, err)
}

// staleSeatCheck reports every seat as free, as seen by a buyer whose
// availability check ran before a competing order committed.
type staleSeatCheck struct {
	*repository.OrderRepository
}

func (staleSeatCheck) SeatTaken(context.Context, domain.SeatKey, uint) (bool, error) {
	return false, nil
}

func TestOrderService_SeatLostAfterAvailabilityCheck(t *testing.T) {
	gormDB := dbtest.Open(t)
	s := newServices(gormDB)
	out := seed(t, s)
	ctx := context.Background()

	late := NewOrderService(
		staleSeatCheck{repository.NewOrderRepository(dao.NewOrderDAO(gormDB))},
		repository.NewFlightRepository(dao.NewFlightDAO(gormDB)),
	)

	_, err := s.orders.CreateOrder(ctx, out.buyer, []domain.Ticket{{FlightID: out.flight.ID, Row: 1, Seat: 1}})
	require.NoError(t, err)

	_, err = late.CreateOrder(ctx, out.buyer, []domain.Ticket{{FlightID: out.flight.ID, Row: 1, Seat: 1}})
	assert.ErrorIs(t, err, ErrTicketTaken)
	assert.EqualError(t, err, "ticket already sold: a requested seat was sold to another order")

	other, err := s.orders.CreateOrder(ctx, out.buyer, []domain.Ticket{{FlightID: out.flight.ID, Row: 2, Seat: 2}})
	require.NoError(t, err)

	_, err = late.ReplaceTickets(ctx, out.buyer, other.ID, []domain.Ticket{{FlightID: out.flight.ID, Row: 1, Seat: 1}})
	assert.ErrorIs(t, err, ErrTicketTaken)
	assert.EqualError(t, err, "ticket already sold: a requested seat was sold to another order")

	// The losing replacement leaves the order untouched.
	found, err := s.orders.GetOrder(ctx, out.buyer, other.ID)
	require.NoError(t, err)
	require.Len(t, found.Tickets, 1)
	assert.Equal(t, 2, found.Tickets[0].Row)
}
