package repository

import (
	"github.com/yizeng/gab/gin/gorm/airport-api/internal/domain"
	"github.com/yizeng/gab/gin/gorm/airport-api/internal/repository/dao"
)

func toDAOPage(p domain.PageRequest) dao.Page {
	return dao.Page{Offset: p.Offset(), Limit: p.Size}
}

func airportToDomain(a dao.Airport) domain.Airport {
	return domain.Airport{
		ID:             a.ID,
		Name:           a.Name,
		ClosestBigCity: a.ClosestBigCity,
	}
}

func routeToDomain(r dao.Route) domain.Route {
	return domain.Route{
		ID:            r.ID,
		SourceID:      r.SourceID,
		DestinationID: r.DestinationID,
		Distance:      r.Distance,
		Source:        airportToDomain(r.Source),
		Destination:   airportToDomain(r.Destination),
	}
}

func airplaneTypeToDomain(t dao.AirplaneType) domain.AirplaneType {
	return domain.AirplaneType{
		ID:   t.ID,
		Name: t.Name,
	}
}

func airplaneToDomain(a dao.Airplane) domain.Airplane {
	return domain.Airplane{
		ID:         a.ID,
		Name:       a.Name,
		TypeID:     a.TypeID,
		Rows:       a.Rows,
		SeatsInRow: a.SeatsInRow,
		Type:       airplaneTypeToDomain(a.Type),
	}
}

func crewToDomain(c dao.Crew) domain.Crew {
	return domain.Crew{
		ID:        c.ID,
		FirstName: c.FirstName,
		LastName:  c.LastName,
	}
}

func flightToDomain(f dao.Flight) domain.Flight {
	crew := make([]domain.Crew, 0, len(f.Crew))
	crewIDs := make([]uint, 0, len(f.Crew))
	for _, c := range f.Crew {
		crew = append(crew, crewToDomain(c))
		crewIDs = append(crewIDs, c.ID)
	}

	return domain.Flight{
		ID:               f.ID,
		RouteID:          f.RouteID,
		AirplaneID:       f.AirplaneID,
		DepartureTime:    f.DepartureTime.UTC(),
		ArrivalTime:      f.ArrivalTime.UTC(),
		CrewIDs:          crewIDs,
		Route:            routeToDomain(f.Route),
		Airplane:         airplaneToDomain(f.Airplane),
		Crew:             crew,
		TicketsAvailable: f.TicketsAvailable,
	}
}

func flightToDAO(f domain.Flight) dao.Flight {
	crew := make([]dao.Crew, 0, len(f.CrewIDs))
	for _, id := range f.CrewIDs {
		crew = append(crew, dao.Crew{ID: id})
	}

	return dao.Flight{
		ID:            f.ID,
		RouteID:       f.RouteID,
		AirplaneID:    f.AirplaneID,
		DepartureTime: f.DepartureTime.UTC(),
		ArrivalTime:   f.ArrivalTime.UTC(),
		Crew:          crew,
	}
}

func ticketToDomain(t dao.Ticket) domain.Ticket {
	return domain.Ticket{
		ID:       t.ID,
		OrderID:  t.OrderID,
		FlightID: t.FlightID,
		Row:      t.Row,
		Seat:     t.Seat,
		Flight:   flightToDomain(t.Flight),
	}
}

func ticketsToDAO(tickets []domain.Ticket) []dao.Ticket {
	rows := make([]dao.Ticket, 0, len(tickets))
	for _, t := range tickets {
		rows = append(rows, dao.Ticket{
			FlightID: t.FlightID,
			Row:      t.Row,
			Seat:     t.Seat,
		})
	}

	return rows
}

func orderToDomain(o dao.Order) domain.Order {
	tickets := make([]domain.Ticket, 0, len(o.Tickets))
	for _, t := range o.Tickets {
		tickets = append(tickets, ticketToDomain(t))
	}

	return domain.Order{
		ID:        o.ID,
		UserID:    o.UserID,
		CreatedAt: o.CreatedAt.UTC(),
		Tickets:   tickets,
	}
}

func userToDomain(u dao.User) domain.User {
	return domain.User{
		ID:        u.ID,
		Email:     u.Email,
		Password:  u.Password,
		IsStaff:   u.IsStaff,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func mapAll[D any, T any](rows []D, fn func(D) T) []T {
	items := make([]T, 0, len(rows))
	for _, row := range rows {
		items = append(items, fn(row))
	}

	return items
}
