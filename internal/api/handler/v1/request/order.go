package request

import (
	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/yizeng/gab/gin/gorm/airport-api/internal/domain"
)

type TicketRequest struct {
	Flight uint `json:"flight"`
	Row    int  `json:"row"`
	Seat   int  `json:"seat"`
}

func (req TicketRequest) Validate() error {
	return validation.ValidateStruct(
		&req,
		validation.Field(&req.Flight, validation.Required),
		validation.Field(&req.Row, validation.Required),
		validation.Field(&req.Seat, validation.Required),
	)
}

type OrderRequest struct {
	Tickets []TicketRequest `json:"tickets"`
}

func (req *OrderRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Tickets, validation.Required),
	)
}

func (req *OrderRequest) ToDomain() []domain.Ticket {
	tickets := make([]domain.Ticket, 0, len(req.Tickets))
	for _, t := range req.Tickets {
		tickets = append(tickets, domain.Ticket{
			FlightID: t.Flight,
			Row:      t.Row,
			Seat:     t.Seat,
		})
	}

	return tickets
}
