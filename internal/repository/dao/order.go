package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Order struct {
	ID        uint      `gorm:"primaryKey"`
	UserID    uint      `gorm:"not null;index"`
	User      User      `gorm:"constraint:OnDelete:CASCADE"`
	Tickets   []Ticket  `gorm:"constraint:OnDelete:CASCADE"`
	CreatedAt time.Time `gorm:"not null;index"`
}

type Ticket struct {
	ID       uint   `gorm:"primaryKey"`
	OrderID  uint   `gorm:"not null;index"`
	FlightID uint   `gorm:"not null;uniqueIndex:idx_tickets_seat"`
	Flight   Flight `gorm:"constraint:OnDelete:CASCADE"`
	Row      int    `gorm:"not null;uniqueIndex:idx_tickets_seat"`
	Seat     int    `gorm:"not null;uniqueIndex:idx_tickets_seat"`
}

func ticketsBySeat(db *gorm.DB) *gorm.DB {
	return db.
		Order(clause.OrderByColumn{Column: clause.Column{Name: "row"}}).
		Order(clause.OrderByColumn{Column: clause.Column{Name: "seat"}})
}

type OrderDAO struct {
	db *gorm.DB
}

func NewOrderDAO(db *gorm.DB) *OrderDAO {
	return &OrderDAO{
		db: db,
	}
}

// Insert stores the order and all of its tickets in one transaction. A seat
// already held by another ticket rolls the whole order back with ErrTicketTaken.
func (d *OrderDAO) Insert(ctx context.Context, order Order) (Order, error) {
	tickets := order.Tickets
	order.Tickets = nil

	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(&order).Error; err != nil {
			return err
		}

		return insertTickets(tx, order.ID, tickets)
	})
	if err != nil {
		return Order{}, translate(err, ErrOrderNotFound, ErrTicketTaken)
	}

	order.Tickets = tickets

	return order, nil
}

// ReplaceTickets swaps the ticket set of the caller's order in one transaction.
func (d *OrderDAO) ReplaceTickets(ctx context.Context, id, userID uint, tickets []Ticket) (Order, error) {
	var order Order

	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ? AND user_id = ?", id, userID).First(&order).Error; err != nil {
			return err
		}
		if err := tx.Where("order_id = ?", id).Delete(&Ticket{}).Error; err != nil {
			return err
		}

		return insertTickets(tx, id, tickets)
	})
	if err != nil {
		return Order{}, translate(err, ErrOrderNotFound, ErrTicketTaken)
	}

	order.Tickets = tickets

	return order, nil
}

func insertTickets(tx *gorm.DB, orderID uint, tickets []Ticket) error {
	if len(tickets) == 0 {
		return errors.New("order has no tickets")
	}

	for i := range tickets {
		tickets[i].ID = 0
		tickets[i].OrderID = orderID
	}

	return tx.Omit(clause.Associations).Create(&tickets).Error
}

func (d *OrderDAO) FindByID(ctx context.Context, id, userID uint) (Order, error) {
	var order Order

	result := d.db.WithContext(ctx).
		Preload("Tickets", ticketsBySeat).
		Where("user_id = ?", userID).
		First(&order, id)
	if result.Error != nil {
		return Order{}, translate(result.Error, ErrOrderNotFound, nil)
	}

	return order, nil
}

// FindAll lists the user's orders, newest first, with every ticket's flight
// route and airplane loaded.
func (d *OrderDAO) FindAll(ctx context.Context, userID uint, page Page) ([]Order, int64, error) {
	var total int64
	if err := d.db.WithContext(ctx).Model(&Order{}).Where("user_id = ?", userID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var orders []Order
	result := d.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Preload("Tickets", ticketsBySeat).
		Preload("Tickets.Flight.Route.Source").
		Preload("Tickets.Flight.Route.Destination").
		Preload("Tickets.Flight.Airplane").
		Order("created_at DESC").
		Order("id DESC").
		Scopes(paginate(page)).
		Find(&orders)
	if result.Error != nil {
		return nil, 0, result.Error
	}

	return orders, total, nil
}

func (d *OrderDAO) Delete(ctx context.Context, id, userID uint) error {
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var order Order
		if err := tx.Where("id = ? AND user_id = ?", id, userID).First(&order).Error; err != nil {
			return translate(err, ErrOrderNotFound, nil)
		}
		if err := tx.Where("order_id = ?", id).Delete(&Ticket{}).Error; err != nil {
			return err
		}

		return tx.Delete(&order).Error
	})
}

// SeatTaken reports whether a ticket outside excludeOrderID holds the seat.
func (d *OrderDAO) SeatTaken(ctx context.Context, flightID uint, row, seat int, excludeOrderID uint) (bool, error) {
	db := d.db.WithContext(ctx).Model(&Ticket{}).Where(map[string]interface{}{
		"flight_id": flightID,
		"row":       row,
		"seat":      seat,
	})
	if excludeOrderID != 0 {
		db = db.Where("order_id <> ?", excludeOrderID)
	}

	var count int64
	if err := db.Count(&count).Error; err != nil {
		return false, err
	}

	return count > 0, nil
}
