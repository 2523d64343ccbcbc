package request

import "github.com/yizeng/gab/gin/gorm/airport-api/internal/domain"

// Write payloads use pointer fields so a partial update can tell an omitted
// field from a zero value. Apply copies the supplied fields onto base.

type CrewRequest struct {
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
}

func (req *CrewRequest) Apply(base domain.Crew) domain.Crew {
	if req.FirstName != nil {
		base.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		base.LastName = *req.LastName
	}

	return base
}

type AirportRequest struct {
	Name           *string `json:"name"`
	ClosestBigCity *string `json:"closest_big_city"`
}

func (req *AirportRequest) Apply(base domain.Airport) domain.Airport {
	if req.Name != nil {
		base.Name = *req.Name
	}
	if req.ClosestBigCity != nil {
		base.ClosestBigCity = *req.ClosestBigCity
	}

	return base
}

type AirplaneTypeRequest struct {
	Name *string `json:"name"`
}

func (req *AirplaneTypeRequest) Apply(base domain.AirplaneType) domain.AirplaneType {
	if req.Name != nil {
		base.Name = *req.Name
	}

	return base
}

type AirplaneRequest struct {
	Name       *string `json:"name"`
	Type       *uint   `json:"type"`
	Rows       *int    `json:"rows"`
	SeatsInRow *int    `json:"seats_in_row"`
}

func (req *AirplaneRequest) Apply(base domain.Airplane) domain.Airplane {
	if req.Name != nil {
		base.Name = *req.Name
	}
	if req.Type != nil {
		base.TypeID = *req.Type
	}
	if req.Rows != nil {
		base.Rows = *req.Rows
	}
	if req.SeatsInRow != nil {
		base.SeatsInRow = *req.SeatsInRow
	}

	return base
}

type RouteRequest struct {
	Source      *uint `json:"source"`
	Destination *uint `json:"destination"`
	Distance    *int  `json:"distance"`
}

func (req *RouteRequest) Apply(base domain.Route) domain.Route {
	if req.Source != nil {
		base.SourceID = *req.Source
	}
	if req.Destination != nil {
		base.DestinationID = *req.Destination
	}
	if req.Distance != nil {
		base.Distance = *req.Distance
	}

	return base
}
