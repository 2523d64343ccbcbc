package repository

import (
	"context"
	"fmt"

	"github.com/yizeng/gab/gin/gorm/airport-api/internal/domain"
	"github.com/yizeng/gab/gin/gorm/airport-api/internal/repository/dao"
)

var (
	ErrAirportNotFound   = dao.ErrAirportNotFound
	ErrAirportNameExists = dao.ErrAirportNameExists
	ErrReferenceNotFound = dao.ErrReferenceNotFound
)

type AirportDAO interface {
	Insert(ctx context.Context, airport dao.Airport) (dao.Airport, error)
	Update(ctx context.Context, airport dao.Airport) (dao.Airport, error)
	FindByID(ctx context.Context, id uint) (dao.Airport, error)
	FindAll(ctx context.Context, page dao.Page) ([]dao.Airport, int64, error)
	Delete(ctx context.Context, id uint) error
}

type AirportRepository struct {
	dao AirportDAO
}

func NewAirportRepository(dao AirportDAO) *AirportRepository {
	return &AirportRepository{
		dao: dao,
	}
}

func (r *AirportRepository) Create(ctx context.Context, airport domain.Airport) (domain.Airport, error) {
	created, err := r.dao.Insert(ctx, dao.Airport{
		Name:           airport.Name,
		ClosestBigCity: airport.ClosestBigCity,
	})
	if err != nil {
		return domain.Airport{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return airportToDomain(created), nil
}

func (r *AirportRepository) Update(ctx context.Context, airport domain.Airport) (domain.Airport, error) {
	updated, err := r.dao.Update(ctx, dao.Airport{
		ID:             airport.ID,
		Name:           airport.Name,
		ClosestBigCity: airport.ClosestBigCity,
	})
	if err != nil {
		return domain.Airport{}, fmt.Errorf("r.dao.Update -> %w", err)
	}

	return airportToDomain(updated), nil
}

func (r *AirportRepository) FindByID(ctx context.Context, id uint) (domain.Airport, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Airport{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return airportToDomain(found), nil
}

func (r *AirportRepository) FindAll(ctx context.Context, page domain.PageRequest) (domain.Page[domain.Airport], error) {
	found, total, err := r.dao.FindAll(ctx, toDAOPage(page))
	if err != nil {
		return domain.Page[domain.Airport]{}, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	return domain.Page[domain.Airport]{Items: mapAll(found, airportToDomain), Total: total}, nil
}

func (r *AirportRepository) Delete(ctx context.Context, id uint) error {
	if err := r.dao.Delete(ctx, id); err != nil {
		return fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return nil
}
