package response

import (
	"time"

	"github.com/yizeng/gab/gin/gorm/airport-api/internal/domain"
)

type TicketListItem struct {
	ID     uint   `json:"id"`
	Flight string `json:"flight"`
	Row    int    `json:"row"`
	Seat   int    `json:"seat"`
}

type OrderListItem struct {
	ID        uint             `json:"id"`
	CreatedAt time.Time        `json:"created_at"`
	Tickets   []TicketListItem `json:"tickets"`
}

func NewOrderListItem(o domain.Order) OrderListItem {
	tickets := make([]TicketListItem, 0, len(o.Tickets))
	for _, t := range o.Tickets {
		tickets = append(tickets, TicketListItem{
			ID:     t.ID,
			Flight: t.Flight.String(),
			Row:    t.Row,
			Seat:   t.Seat,
		})
	}

	return OrderListItem{
		ID:        o.ID,
		CreatedAt: o.CreatedAt,
		Tickets:   tickets,
	}
}

type Ticket struct {
	ID     uint `json:"id"`
	Flight uint `json:"flight"`
	Row    int  `json:"row"`
	Seat   int  `json:"seat"`
}

type Order struct {
	ID        uint      `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	Tickets   []Ticket  `json:"tickets"`
}

func NewOrder(o domain.Order) Order {
	tickets := make([]Ticket, 0, len(o.Tickets))
	for _, t := range o.Tickets {
		tickets = append(tickets, Ticket{
			ID:     t.ID,
			Flight: t.FlightID,
			Row:    t.Row,
			Seat:   t.Seat,
		})
	}

	return Order{
		ID:        o.ID,
		CreatedAt: o.CreatedAt,
		Tickets:   tickets,
	}
}
