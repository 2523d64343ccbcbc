package repository

import (
	"context"
	"fmt"

	"github.com/yizeng/gab/gin/gorm/airport-api/internal/domain"
	"github.com/yizeng/gab/gin/gorm/airport-api/internal/repository/dao"
)

var ErrFlightNotFound = dao.ErrFlightNotFound

type FlightDAO interface {
	Insert(ctx context.Context, flight dao.Flight) (dao.Flight, error)
	Update(ctx context.Context, flight dao.Flight) (dao.Flight, error)
	FindByID(ctx context.Context, id uint) (dao.Flight, error)
	FindAll(ctx context.Context, filter dao.FlightFilter, page dao.Page) ([]dao.Flight, int64, error)
	Delete(ctx context.Context, id uint) error
}

type FlightRepository struct {
	dao FlightDAO
}

func NewFlightRepository(dao FlightDAO) *FlightRepository {
	return &FlightRepository{
		dao: dao,
	}
}

func (r *FlightRepository) Create(ctx context.Context, flight domain.Flight) (domain.Flight, error) {
	created, err := r.dao.Insert(ctx, flightToDAO(flight))
	if err != nil {
		return domain.Flight{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return flightToDomain(created), nil
}

func (r *FlightRepository) Update(ctx context.Context, flight domain.Flight) (domain.Flight, error) {
	updated, err := r.dao.Update(ctx, flightToDAO(flight))
	if err != nil {
		return domain.Flight{}, fmt.Errorf("r.dao.Update -> %w", err)
	}

	return flightToDomain(updated), nil
}

func (r *FlightRepository) FindByID(ctx context.Context, id uint) (domain.Flight, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Flight{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return flightToDomain(found), nil
}

func (r *FlightRepository) FindAll(ctx context.Context, filter domain.FlightFilter, page domain.PageRequest) (domain.Page[domain.Flight], error) {
	found, total, err := r.dao.FindAll(ctx, dao.FlightFilter{
		Date:        filter.Date,
		Source:      filter.Source,
		Destination: filter.Destination,
	}, toDAOPage(page))
	if err != nil {
		return domain.Page[domain.Flight]{}, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	return domain.Page[domain.Flight]{Items: mapAll(found, flightToDomain), Total: total}, nil
}

func (r *FlightRepository) Delete(ctx context.Context, id uint) error {
	if err := r.dao.Delete(ctx, id); err != nil {
		return fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return nil
}
