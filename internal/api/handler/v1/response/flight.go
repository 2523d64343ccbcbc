package response

import (
	"time"

	"github.com/yizeng/gab/gin/gorm/airport-api/internal/domain"
)

type FlightListItem struct {
	ID               uint      `json:"id"`
	Route            string    `json:"route"`
	Airplane         string    `json:"airplane"`
	AirplaneCapacity int       `json:"airplane_capacity"`
	DepartureTime    time.Time `json:"departure_time"`
	ArrivalTime      time.Time `json:"arrival_time"`
	TicketsAvailable int       `json:"tickets_available"`
}

func NewFlightListItem(f domain.Flight) FlightListItem {
	return FlightListItem{
		ID:               f.ID,
		Route:            f.Route.String(),
		Airplane:         f.Airplane.String(),
		AirplaneCapacity: f.Airplane.Capacity(),
		DepartureTime:    f.DepartureTime,
		ArrivalTime:      f.ArrivalTime,
		TicketsAvailable: f.TicketsAvailable,
	}
}

type FlightRoute struct {
	ID          uint    `json:"id"`
	Source      Airport `json:"source"`
	Destination Airport `json:"destination"`
	Distance    int     `json:"distance"`
}

type FlightAirplane struct {
	ID         uint   `json:"id"`
	Name       string `json:"name"`
	Type       string `json:"type"`
	Rows       int    `json:"rows"`
	SeatsInRow int    `json:"seats_in_row"`
	Capacity   int    `json:"capacity"`
}

// FlightDetail nests the route with both airports, the airplane and the crew roster.
type FlightDetail struct {
	ID            uint           `json:"id"`
	Route         FlightRoute    `json:"route"`
	Airplane      FlightAirplane `json:"airplane"`
	DepartureTime time.Time      `json:"departure_time"`
	ArrivalTime   time.Time      `json:"arrival_time"`
	Crew          []Crew         `json:"crew"`
}

func NewFlightDetail(f domain.Flight) FlightDetail {
	crew := make([]Crew, 0, len(f.Crew))
	for _, c := range f.Crew {
		crew = append(crew, NewCrew(c))
	}

	return FlightDetail{
		ID: f.ID,
		Route: FlightRoute{
			ID:          f.Route.ID,
			Source:      NewAirport(f.Route.Source),
			Destination: NewAirport(f.Route.Destination),
			Distance:    f.Route.Distance,
		},
		Airplane: FlightAirplane{
			ID:         f.Airplane.ID,
			Name:       f.Airplane.Name,
			Type:       f.Airplane.Type.String(),
			Rows:       f.Airplane.Rows,
			SeatsInRow: f.Airplane.SeatsInRow,
			Capacity:   f.Airplane.Capacity(),
		},
		DepartureTime: f.DepartureTime,
		ArrivalTime:   f.ArrivalTime,
		Crew:          crew,
	}
}

type Flight struct {
	ID            uint      `json:"id"`
	Route         uint      `json:"route"`
	Airplane      uint      `json:"airplane"`
	DepartureTime time.Time `json:"departure_time"`
	ArrivalTime   time.Time `json:"arrival_time"`
	Crew          []uint    `json:"crew"`
}

func NewFlight(f domain.Flight) Flight {
	crew := f.CrewIDs
	if crew == nil {
		crew = []uint{}
	}

	return Flight{
		ID:            f.ID,
		Route:         f.RouteID,
		Airplane:      f.AirplaneID,
		DepartureTime: f.DepartureTime,
		ArrivalTime:   f.ArrivalTime,
		Crew:          crew,
	}
}
