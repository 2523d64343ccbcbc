package domain

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation"
)

type Flight struct {
	ID            uint      `json:"id"`
	RouteID       uint      `json:"route"`
	AirplaneID    uint      `json:"airplane"`
	DepartureTime time.Time `json:"departure_time"`
	ArrivalTime   time.Time `json:"arrival_time"`
	CrewIDs       []uint    `json:"crew"`

	Route    Route    `json:"-"`
	Airplane Airplane `json:"-"`
	Crew     []Crew   `json:"-"`

	// TicketsAvailable is only populated by flight listings.
	TicketsAvailable int `json:"-"`
}

func (f Flight) String() string {
	return f.Route.String()
}

func (f Flight) Validate() error {
	return validation.ValidateStruct(
		&f,
		validation.Field(&f.RouteID, validation.Required),
		validation.Field(&f.AirplaneID, validation.Required),
		validation.Field(&f.DepartureTime, validation.Required),
		validation.Field(&f.ArrivalTime, validation.Required),
	)
}

// FlightFilter narrows flight listings. Date matches the UTC calendar day of departure.
type FlightFilter struct {
	Date        *time.Time
	Source      string
	Destination string
}
