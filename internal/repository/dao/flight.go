package dao

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Flight struct {
	ID            uint      `gorm:"primaryKey"`
	RouteID       uint      `gorm:"not null;index"`
	Route         Route     `gorm:"constraint:OnDelete:CASCADE"`
	AirplaneID    uint      `gorm:"not null;index"`
	Airplane      Airplane  `gorm:"constraint:OnDelete:CASCADE"`
	DepartureTime time.Time `gorm:"not null;index"`
	ArrivalTime   time.Time `gorm:"not null"`
	Crew          []Crew    `gorm:"many2many:flight_crew;constraint:OnDelete:CASCADE"`

	// TicketsAvailable is computed by FindAll and is not a column.
	TicketsAvailable int `gorm:"->;-:migration"`
}

// FlightCrew is the join table between flights and crew.
type FlightCrew struct {
	FlightID uint   `gorm:"primaryKey"`
	Flight   Flight `gorm:"constraint:OnDelete:CASCADE"`
	CrewID   uint   `gorm:"primaryKey"`
	Crew     Crew   `gorm:"constraint:OnDelete:CASCADE"`
}

func (FlightCrew) TableName() string {
	return "flight_crew"
}

// FlightFilter narrows flight listings. Source and Destination match airport names.
type FlightFilter struct {
	Date        *time.Time
	Source      string
	Destination string
}

func (f FlightFilter) apply(db *gorm.DB) *gorm.DB {
	if f.Date != nil {
		y, m, d := f.Date.UTC().Date()
		start := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
		db = db.Where("flights.departure_time >= ? AND flights.departure_time < ?", start, start.Add(24*time.Hour))
	}
	if f.Source != "" || f.Destination != "" {
		db = db.Joins("JOIN routes ON routes.id = flights.route_id")
	}
	if f.Source != "" {
		db = db.Joins("JOIN airports AS src ON src.id = routes.source_id").
			Where("LOWER(src.name) "+ilike, contains(f.Source))
	}
	if f.Destination != "" {
		db = db.Joins("JOIN airports AS dst ON dst.id = routes.destination_id").
			Where("LOWER(dst.name) "+ilike, contains(f.Destination))
	}

	return db
}

const selectTicketsAvailable = "flights.*, " +
	"airplanes.rows * airplanes.seats_in_row - " +
	"(SELECT COUNT(*) FROM tickets WHERE tickets.flight_id = flights.id) AS tickets_available"

type FlightDAO struct {
	db *gorm.DB
}

func NewFlightDAO(db *gorm.DB) *FlightDAO {
	return &FlightDAO{
		db: db,
	}
}

func (d *FlightDAO) Insert(ctx context.Context, flight Flight) (Flight, error) {
	crew := flight.Crew
	flight.Crew = nil

	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(&flight).Error; err != nil {
			return err
		}

		return assignCrew(tx, flight.ID, crew)
	})
	if err != nil {
		return Flight{}, translate(err, ErrFlightNotFound, nil)
	}

	flight.Crew = crew

	return flight, nil
}

func (d *FlightDAO) Update(ctx context.Context, flight Flight) (Flight, error) {
	crew := flight.Crew
	flight.Crew = nil

	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&flight).
			Select("RouteID", "AirplaneID", "DepartureTime", "ArrivalTime").
			Updates(&flight)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrFlightNotFound
		}

		if err := tx.Where("flight_id = ?", flight.ID).Delete(&FlightCrew{}).Error; err != nil {
			return err
		}

		return assignCrew(tx, flight.ID, crew)
	})
	if err != nil {
		return Flight{}, translate(err, ErrFlightNotFound, nil)
	}

	flight.Crew = crew

	return flight, nil
}

func assignCrew(tx *gorm.DB, flightID uint, crew []Crew) error {
	if len(crew) == 0 {
		return nil
	}

	rows := make([]FlightCrew, 0, len(crew))
	for _, c := range crew {
		rows = append(rows, FlightCrew{FlightID: flightID, CrewID: c.ID})
	}

	return tx.Omit(clause.Associations).Create(&rows).Error
}

// FindByID loads the flight with its route endpoints, airplane type and crew roster.
func (d *FlightDAO) FindByID(ctx context.Context, id uint) (Flight, error) {
	var flight Flight

	result := d.db.WithContext(ctx).
		Preload("Route.Source").
		Preload("Route.Destination").
		Preload("Airplane.Type").
		Preload("Crew", func(db *gorm.DB) *gorm.DB {
			return db.Order("crew.last_name").Order("crew.id")
		}).
		First(&flight, id)
	if result.Error != nil {
		return Flight{}, translate(result.Error, ErrFlightNotFound, nil)
	}

	return flight, nil
}

// FindAll lists flights by departure time with the count of unsold seats.
func (d *FlightDAO) FindAll(ctx context.Context, filter FlightFilter, page Page) ([]Flight, int64, error) {
	var total int64
	if err := filter.apply(d.db.WithContext(ctx).Model(&Flight{})).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var flights []Flight
	result := filter.apply(d.db.WithContext(ctx).Model(&Flight{})).
		Select(selectTicketsAvailable).
		Joins("JOIN airplanes ON airplanes.id = flights.airplane_id").
		Preload("Route.Source").
		Preload("Route.Destination").
		Preload("Airplane").
		Order("flights.departure_time").
		Order("flights.id").
		Scopes(paginate(page)).
		Find(&flights)
	if result.Error != nil {
		return nil, 0, result.Error
	}

	return flights, total, nil
}

// Delete removes the flight together with its tickets and crew assignments.
func (d *FlightDAO) Delete(ctx context.Context, id uint) error {
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("flight_id = ?", id).Delete(&FlightCrew{}).Error; err != nil {
			return err
		}
		if err := tx.Where("flight_id = ?", id).Delete(&Ticket{}).Error; err != nil {
			return err
		}

		result := tx.Delete(&Flight{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrFlightNotFound
		}

		return nil
	})
}
