package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	validation "github.com/go-ozzo/ozzo-validation"
	"go.uber.org/zap"

	"github.com/yizeng/gab/gin/gorm/airport-api/internal/domain"
	"github.com/yizeng/gab/gin/gorm/airport-api/internal/repository"
)

var (
	ErrOrderNotFound = repository.ErrOrderNotFound
	ErrTicketTaken   = repository.ErrTicketTaken

	errNoTickets = errors.New("an order needs at least one ticket")
)

type OrderRepository interface {
	Create(ctx context.Context, order domain.Order) (domain.Order, error)
	ReplaceTickets(ctx context.Context, order domain.Order) (domain.Order, error)
	FindByID(ctx context.Context, id, userID uint) (domain.Order, error)
	FindAll(ctx context.Context, userID uint, page domain.PageRequest) (domain.Page[domain.Order], error)
	Delete(ctx context.Context, id, userID uint) error
	SeatTaken(ctx context.Context, seat domain.SeatKey, excludeOrderID uint) (bool, error)
}

type OrderFlightRepository interface {
	FindByID(ctx context.Context, id uint) (domain.Flight, error)
}

type OrderService struct {
	repo    OrderRepository
	flights OrderFlightRepository
}

func NewOrderService(repo OrderRepository, flights OrderFlightRepository) *OrderService {
	return &OrderService{
		repo:    repo,
		flights: flights,
	}
}

func (s *OrderService) ListOrders(ctx context.Context, caller domain.Principal, page domain.PageRequest) (domain.Page[domain.Order], error) {
	orders, err := s.repo.FindAll(ctx, caller.UserID, page)
	if err != nil {
		return domain.Page[domain.Order]{}, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	return orders, nil
}

// GetOrder returns the caller's order. Orders of other users are reported as not found.
func (s *OrderService) GetOrder(ctx context.Context, caller domain.Principal, id uint) (domain.Order, error) {
	order, err := s.repo.FindByID(ctx, id, caller.UserID)
	if err != nil {
		return domain.Order{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return order, nil
}

// CreateOrder validates every ticket against its flight's seating grid and
// the seats already sold, then stores the order and its tickets atomically.
func (s *OrderService) CreateOrder(ctx context.Context, caller domain.Principal, tickets []domain.Ticket) (domain.Order, error) {
	if err := s.validateTickets(ctx, tickets, 0); err != nil {
		return domain.Order{}, err
	}

	created, err := s.repo.Create(ctx, domain.Order{UserID: caller.UserID, Tickets: tickets})
	if err != nil {
		if errors.Is(err, ErrTicketTaken) {
			return domain.Order{}, seatSoldConcurrently("s.repo.Create", err)
		}

		return domain.Order{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

// ReplaceTickets swaps the ticket set of one of the caller's orders.
func (s *OrderService) ReplaceTickets(ctx context.Context, caller domain.Principal, id uint, tickets []domain.Ticket) (domain.Order, error) {
	if _, err := s.repo.FindByID(ctx, id, caller.UserID); err != nil {
		return domain.Order{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}
	if err := s.validateTickets(ctx, tickets, id); err != nil {
		return domain.Order{}, err
	}

	updated, err := s.repo.ReplaceTickets(ctx, domain.Order{ID: id, UserID: caller.UserID, Tickets: tickets})
	if err != nil {
		if errors.Is(err, ErrTicketTaken) {
			return domain.Order{}, seatSoldConcurrently("s.repo.ReplaceTickets", err)
		}

		return domain.Order{}, fmt.Errorf("s.repo.ReplaceTickets -> %w", err)
	}

	return updated, nil
}

func (s *OrderService) DeleteOrder(ctx context.Context, caller domain.Principal, id uint) error {
	if err := s.repo.Delete(ctx, id, caller.UserID); err != nil {
		return fmt.Errorf("s.repo.Delete -> %w", err)
	}

	return nil
}

// seatSoldConcurrently reports a seat lost to a concurrent order after the
// availability check passed. The storage error is logged, not returned.
func seatSoldConcurrently(op string, err error) error {
	zap.L().Info("seat sold to a concurrent order", zap.String("op", op), zap.Error(err))

	return fmt.Errorf("%w: a requested seat was sold to another order", ErrTicketTaken)
}

func (s *OrderService) validateTickets(ctx context.Context, tickets []domain.Ticket, orderID uint) error {
	if len(tickets) == 0 {
		return fieldError("tickets", errNoTickets)
	}

	flights := make(map[uint]domain.Flight)
	seen := make(map[domain.SeatKey]int, len(tickets))
	errs := validation.Errors{}

	for i, ticket := range tickets {
		key := strconv.Itoa(i)

		flight, ok := flights[ticket.FlightID]
		if !ok {
			found, err := s.flights.FindByID(ctx, ticket.FlightID)
			if err != nil {
				if !errors.Is(err, repository.ErrFlightNotFound) {
					return fmt.Errorf("s.flights.FindByID -> %w", err)
				}
				errs[key] = invalidReference("flight", ticket.FlightID)
				continue
			}
			flight = found
			flights[ticket.FlightID] = flight
		}

		if err := flight.Airplane.ValidateSeat(ticket.Row, ticket.Seat); err != nil {
			errs[key] = err
			continue
		}

		if first, dup := seen[ticket.SeatKey()]; dup {
			errs[key] = fieldError("seat", fmt.Errorf("seat is already requested by ticket %d", first))
			continue
		}
		seen[ticket.SeatKey()] = i
	}

	if len(errs) > 0 {
		return fieldError("tickets", errs)
	}

	for _, ticket := range tickets {
		taken, err := s.repo.SeatTaken(ctx, ticket.SeatKey(), orderID)
		if err != nil {
			return fmt.Errorf("s.repo.SeatTaken -> %w", err)
		}
		if taken {
			return fmt.Errorf("%w: flight %d, row %d, seat %d", ErrTicketTaken, ticket.FlightID, ticket.Row, ticket.Seat)
		}
	}

	return nil
}
