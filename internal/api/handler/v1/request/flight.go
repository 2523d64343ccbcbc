package request

import (
	"time"

	"github.com/yizeng/gab/gin/gorm/airport-api/internal/domain"
)

type FlightRequest struct {
	Route         *uint      `json:"route"`
	Airplane      *uint      `json:"airplane"`
	DepartureTime *time.Time `json:"departure_time"`
	ArrivalTime   *time.Time `json:"arrival_time"`
	Crew          *[]uint    `json:"crew"`
}

func (req *FlightRequest) Apply(base domain.Flight) domain.Flight {
	if req.Route != nil {
		base.RouteID = *req.Route
	}
	if req.Airplane != nil {
		base.AirplaneID = *req.Airplane
	}
	if req.DepartureTime != nil {
		base.DepartureTime = req.DepartureTime.UTC()
	}
	if req.ArrivalTime != nil {
		base.ArrivalTime = req.ArrivalTime.UTC()
	}
	if req.Crew != nil {
		base.CrewIDs = *req.Crew
	}

	return base
}
