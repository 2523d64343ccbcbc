package domain

import (
	"fmt"
	"time"
)

type Order struct {
	ID        uint      `json:"id"`
	UserID    uint      `json:"-"`
	CreatedAt time.Time `json:"created_at"`
	Tickets   []Ticket  `json:"tickets"`
}

func (o Order) String() string {
	return o.CreatedAt.Format(time.RFC3339)
}

type Ticket struct {
	ID       uint   `json:"id"`
	OrderID  uint   `json:"-"`
	FlightID uint   `json:"flight"`
	Row      int    `json:"row"`
	Seat     int    `json:"seat"`
	Flight   Flight `json:"-"`
}

func (t Ticket) String() string {
	return fmt.Sprintf("%s (row: %d, seat: %d)", t.Flight, t.Row, t.Seat)
}

// SeatKey identifies a seat on a flight independently of the order holding it.
type SeatKey struct {
	FlightID uint
	Row      int
	Seat     int
}

func (t Ticket) SeatKey() SeatKey {
	return SeatKey{FlightID: t.FlightID, Row: t.Row, Seat: t.Seat}
}
