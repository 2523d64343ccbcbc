package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yizeng/gab/gin/gorm/airport-api/internal/domain"
	"github.com/yizeng/gab/gin/gorm/airport-api/internal/repository/dao"
)

type fakeOrderDAO struct {
	inserted dao.Order
	page     dao.Page
	err      error
}

func (f *fakeOrderDAO) Insert(_ context.Context, order dao.Order) (dao.Order, error) {
	f.inserted = order
	order.Tickets = append([]dao.Ticket(nil), order.Tickets...)
	order.ID = 11
	order.CreatedAt = time.Date(2024, 5, 1, 11, 0, 0, 0, time.FixedZone("EEST", 3*60*60))
	for i := range order.Tickets {
		order.Tickets[i].ID = uint(i + 1)
		order.Tickets[i].OrderID = order.ID
	}

	return order, f.err
}

func (f *fakeOrderDAO) ReplaceTickets(context.Context, uint, uint, []dao.Ticket) (dao.Order, error) {
	return dao.Order{}, f.err
}

func (f *fakeOrderDAO) FindByID(context.Context, uint, uint) (dao.Order, error) {
	return dao.Order{}, f.err
}

func (f *fakeOrderDAO) FindAll(_ context.Context, _ uint, page dao.Page) ([]dao.Order, int64, error) {
	f.page = page
	return []dao.Order{{ID: 1}, {ID: 2}}, 7, f.err
}

func (f *fakeOrderDAO) Delete(context.Context, uint, uint) error {
	return f.err
}

func (f *fakeOrderDAO) SeatTaken(context.Context, uint, int, int, uint) (bool, error) {
	return false, f.err
}

func TestOrderRepository_Create(t *testing.T) {
	fake := &fakeOrderDAO{}
	repo := NewOrderRepository(fake)

	order, err := repo.Create(context.Background(), domain.Order{
		UserID: 3,
		Tickets: []domain.Ticket{
			{FlightID: 5, Row: 1, Seat: 2},
			{FlightID: 5, Row: 1, Seat: 3},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, uint(3), fake.inserted.UserID)
	require.Len(t, fake.inserted.Tickets, 2)
	assert.Equal(t, dao.Ticket{FlightID: 5, Row: 1, Seat: 3}, fake.inserted.Tickets[1])

	assert.Equal(t, uint(11), order.ID)
	assert.Equal(t, time.UTC, order.CreatedAt.Location())
	require.Len(t, order.Tickets, 2)
	assert.Equal(t, uint(11), order.Tickets[0].OrderID)
	assert.Equal(t, 2, order.Tickets[0].Seat)
}

func TestOrderRepository_FindAll(t *testing.T) {
	fake := &fakeOrderDAO{}
	repo := NewOrderRepository(fake)

	page, err := repo.FindAll(context.Background(), 3, domain.PageRequest{Page: 3, Size: 5})
	require.NoError(t, err)

	assert.Equal(t, dao.Page{Offset: 10, Limit: 5}, fake.page)
	assert.Equal(t, int64(7), page.Total)
	assert.Len(t, page.Items, 2)
}

func TestOrderRepository_WrapsErrors(t *testing.T) {
	repo := NewOrderRepository(&fakeOrderDAO{err: dao.ErrTicketTaken})

	_, err := repo.Create(context.Background(), domain.Order{UserID: 1})
	assert.ErrorIs(t, err, ErrTicketTaken)
	assert.EqualError(t, err, "r.dao.Insert -> ticket already sold")

	repo = NewOrderRepository(&fakeOrderDAO{err: dao.ErrOrderNotFound})
	err = repo.Delete(context.Background(), 1, 1)
	assert.True(t, errors.Is(err, ErrOrderNotFound))

	_, err = repo.SeatTaken(context.Background(), domain.SeatKey{FlightID: 1, Row: 1, Seat: 1}, 0)
	assert.ErrorIs(t, err, ErrOrderNotFound)
}

func TestFlightMapping(t *testing.T) {
	departure := time.Date(2024, 5, 1, 11, 30, 0, 0, time.FixedZone("EEST", 3*60*60))
	row := dao.Flight{
		ID:            4,
		RouteID:       2,
		AirplaneID:    1,
		DepartureTime: departure,
		ArrivalTime:   departure.Add(time.Hour),
		Crew:          []dao.Crew{{ID: 8, FirstName: "Olena", LastName: "Kovalenko"}, {ID: 9}},
		Route: dao.Route{
			ID:          2,
			Source:      dao.Airport{Name: "Boryspil"},
			Destination: dao.Airport{Name: "Lviv"},
		},
		Airplane:         dao.Airplane{Rows: 10, SeatsInRow: 4},
		TicketsAvailable: 38,
	}

	flight := flightToDomain(row)
	assert.Equal(t, []uint{8, 9}, flight.CrewIDs)
	assert.Equal(t, time.Date(2024, 5, 1, 8, 30, 0, 0, time.UTC), flight.DepartureTime)
	assert.Equal(t, "Boryspil", flight.Route.Source.Name)
	assert.Equal(t, 38, flight.TicketsAvailable)
	assert.Equal(t, 40, flight.Airplane.Capacity())

	back := flightToDAO(flight)
	assert.Equal(t, []dao.Crew{{ID: 8}, {ID: 9}}, back.Crew)
	assert.Equal(t, uint(2), back.RouteID)
}
