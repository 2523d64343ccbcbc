package response

import "github.com/yizeng/gab/gin/gorm/airport-api/internal/domain"

type Crew struct {
	ID        uint   `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	FullName  string `json:"full_name"`
}

func NewCrew(c domain.Crew) Crew {
	return Crew{
		ID:        c.ID,
		FirstName: c.FirstName,
		LastName:  c.LastName,
		FullName:  c.String(),
	}
}

type Airport struct {
	ID             uint   `json:"id"`
	Name           string `json:"name"`
	ClosestBigCity string `json:"closest_big_city"`
}

func NewAirport(a domain.Airport) Airport {
	return Airport{
		ID:             a.ID,
		Name:           a.Name,
		ClosestBigCity: a.ClosestBigCity,
	}
}

type AirplaneType struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

func NewAirplaneType(t domain.AirplaneType) AirplaneType {
	return AirplaneType{
		ID:   t.ID,
		Name: t.Name,
	}
}

// AirplaneListItem names the airplane type instead of referencing it.
type AirplaneListItem struct {
	ID         uint   `json:"id"`
	Name       string `json:"name"`
	Type       string `json:"type"`
	Rows       int    `json:"rows"`
	SeatsInRow int    `json:"seats_in_row"`
	Capacity   int    `json:"capacity"`
}

func NewAirplaneListItem(a domain.Airplane) AirplaneListItem {
	return AirplaneListItem{
		ID:         a.ID,
		Name:       a.Name,
		Type:       a.Type.String(),
		Rows:       a.Rows,
		SeatsInRow: a.SeatsInRow,
		Capacity:   a.Capacity(),
	}
}

type Airplane struct {
	ID         uint   `json:"id"`
	Name       string `json:"name"`
	Type       uint   `json:"type"`
	Rows       int    `json:"rows"`
	SeatsInRow int    `json:"seats_in_row"`
	Capacity   int    `json:"capacity"`
}

func NewAirplane(a domain.Airplane) Airplane {
	return Airplane{
		ID:         a.ID,
		Name:       a.Name,
		Type:       a.TypeID,
		Rows:       a.Rows,
		SeatsInRow: a.SeatsInRow,
		Capacity:   a.Capacity(),
	}
}

// RouteListItem names both airports instead of referencing them.
type RouteListItem struct {
	ID          uint   `json:"id"`
	Source      string `json:"source"`
	Destination string `json:"destination"`
	Distance    int    `json:"distance"`
}

func NewRouteListItem(r domain.Route) RouteListItem {
	return RouteListItem{
		ID:          r.ID,
		Source:      r.Source.String(),
		Destination: r.Destination.String(),
		Distance:    r.Distance,
	}
}

type Route struct {
	ID          uint `json:"id"`
	Source      uint `json:"source"`
	Destination uint `json:"destination"`
	Distance    int  `json:"distance"`
}

func NewRoute(r domain.Route) Route {
	return Route{
		ID:          r.ID,
		Source:      r.SourceID,
		Destination: r.DestinationID,
		Distance:    r.Distance,
	}
}
