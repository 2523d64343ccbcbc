package repository

import (
	"context"
	"fmt"

	"github.com/yizeng/gab/gin/gorm/airport-api/internal/domain"
	"github.com/yizeng/gab/gin/gorm/airport-api/internal/repository/dao"
)

var (
	ErrOrderNotFound = dao.ErrOrderNotFound
	ErrTicketTaken   = dao.ErrTicketTaken
)

type OrderDAO interface {
	Insert(ctx context.Context, order dao.Order) (dao.Order, error)
	ReplaceTickets(ctx context.Context, id, userID uint, tickets []dao.Ticket) (dao.Order, error)
	FindByID(ctx context.Context, id, userID uint) (dao.Order, error)
	FindAll(ctx context.Context, userID uint, page dao.Page) ([]dao.Order, int64, error)
	Delete(ctx context.Context, id, userID uint) error
	SeatTaken(ctx context.Context, flightID uint, row, seat int, excludeOrderID uint) (bool, error)
}

type OrderRepository struct {
	dao OrderDAO
}

func NewOrderRepository(dao OrderDAO) *OrderRepository {
	return &OrderRepository{
		dao: dao,
	}
}

func (r *OrderRepository) Create(ctx context.Context, order domain.Order) (domain.Order, error) {
	created, err := r.dao.Insert(ctx, dao.Order{
		UserID:  order.UserID,
		Tickets: ticketsToDAO(order.Tickets),
	})
	if err != nil {
		return domain.Order{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return orderToDomain(created), nil
}

func (r *OrderRepository) ReplaceTickets(ctx context.Context, order domain.Order) (domain.Order, error) {
	updated, err := r.dao.ReplaceTickets(ctx, order.ID, order.UserID, ticketsToDAO(order.Tickets))
	if err != nil {
		return domain.Order{}, fmt.Errorf("r.dao.ReplaceTickets -> %w", err)
	}

	return orderToDomain(updated), nil
}

func (r *OrderRepository) FindByID(ctx context.Context, id, userID uint) (domain.Order, error) {
	found, err := r.dao.FindByID(ctx, id, userID)
	if err != nil {
		return domain.Order{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return orderToDomain(found), nil
}

func (r *OrderRepository) FindAll(ctx context.Context, userID uint, page domain.PageRequest) (domain.Page[domain.Order], error) {
	found, total, err := r.dao.FindAll(ctx, userID, toDAOPage(page))
	if err != nil {
		return domain.Page[domain.Order]{}, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	return domain.Page[domain.Order]{Items: mapAll(found, orderToDomain), Total: total}, nil
}

func (r *OrderRepository) Delete(ctx context.Context, id, userID uint) error {
	if err := r.dao.Delete(ctx, id, userID); err != nil {
		return fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return nil
}

func (r *OrderRepository) SeatTaken(ctx context.Context, seat domain.SeatKey, excludeOrderID uint) (bool, error) {
	taken, err := r.dao.SeatTaken(ctx, seat.FlightID, seat.Row, seat.Seat, excludeOrderID)
	if err != nil {
		return false, fmt.Errorf("r.dao.SeatTaken -> %w", err)
	}

	return taken, nil
}
