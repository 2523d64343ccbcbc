package repository

import (
	"context"
	"fmt"

	"github.com/yizeng/gab/gin/gorm/airport-api/internal/domain"
	"github.com/yizeng/gab/gin/gorm/airport-api/internal/repository/dao"
)

var (
	ErrAirplaneTypeNotFound = dao.ErrAirplaneTypeNotFound
	ErrAirplaneTypeExists   = dao.ErrAirplaneTypeExists
	ErrAirplaneNotFound     = dao.ErrAirplaneNotFound
)

type AirplaneTypeDAO interface {
	Insert(ctx context.Context, airplaneType dao.AirplaneType) (dao.AirplaneType, error)
	Update(ctx context.Context, airplaneType dao.AirplaneType) (dao.AirplaneType, error)
	FindByID(ctx context.Context, id uint) (dao.AirplaneType, error)
	FindAll(ctx context.Context, page dao.Page) ([]dao.AirplaneType, int64, error)
	Delete(ctx context.Context, id uint) error
}

type AirplaneTypeRepository struct {
	dao AirplaneTypeDAO
}

func NewAirplaneTypeRepository(dao AirplaneTypeDAO) *AirplaneTypeRepository {
	return &AirplaneTypeRepository{
		dao: dao,
	}
}

func (r *AirplaneTypeRepository) Create(ctx context.Context, airplaneType domain.AirplaneType) (domain.AirplaneType, error) {
	created, err := r.dao.Insert(ctx, dao.AirplaneType{Name: airplaneType.Name})
	if err != nil {
		return domain.AirplaneType{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return airplaneTypeToDomain(created), nil
}

func (r *AirplaneTypeRepository) Update(ctx context.Context, airplaneType domain.AirplaneType) (domain.AirplaneType, error) {
	updated, err := r.dao.Update(ctx, dao.AirplaneType{ID: airplaneType.ID, Name: airplaneType.Name})
	if err != nil {
		return domain.AirplaneType{}, fmt.Errorf("r.dao.Update -> %w", err)
	}

	return airplaneTypeToDomain(updated), nil
}

func (r *AirplaneTypeRepository) FindByID(ctx context.Context, id uint) (domain.AirplaneType, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.AirplaneType{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return airplaneTypeToDomain(found), nil
}

func (r *AirplaneTypeRepository) FindAll(ctx context.Context, page domain.PageRequest) (domain.Page[domain.AirplaneType], error) {
	found, total, err := r.dao.FindAll(ctx, toDAOPage(page))
	if err != nil {
		return domain.Page[domain.AirplaneType]{}, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	return domain.Page[domain.AirplaneType]{Items: mapAll(found, airplaneTypeToDomain), Total: total}, nil
}

func (r *AirplaneTypeRepository) Delete(ctx context.Context, id uint) error {
	if err := r.dao.Delete(ctx, id); err != nil {
		return fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return nil
}

type AirplaneDAO interface {
	Insert(ctx context.Context, airplane dao.Airplane) (dao.Airplane, error)
	Update(ctx context.Context, airplane dao.Airplane) (dao.Airplane, error)
	FindByID(ctx context.Context, id uint) (dao.Airplane, error)
	FindAll(ctx context.Context, filter dao.AirplaneFilter, page dao.Page) ([]dao.Airplane, int64, error)
	Delete(ctx context.Context, id uint) error
}

type AirplaneRepository struct {
	dao AirplaneDAO
}

func NewAirplaneRepository(dao AirplaneDAO) *AirplaneRepository {
	return &AirplaneRepository{
		dao: dao,
	}
}

func (r *AirplaneRepository) Create(ctx context.Context, airplane domain.Airplane) (domain.Airplane, error) {
	created, err := r.dao.Insert(ctx, r.domainToDAO(airplane))
	if err != nil {
		return domain.Airplane{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return airplaneToDomain(created), nil
}

func (r *AirplaneRepository) Update(ctx context.Context, airplane domain.Airplane) (domain.Airplane, error) {
	updated, err := r.dao.Update(ctx, r.domainToDAO(airplane))
	if err != nil {
		return domain.Airplane{}, fmt.Errorf("r.dao.Update -> %w", err)
	}

	return airplaneToDomain(updated), nil
}

func (r *AirplaneRepository) FindByID(ctx context.Context, id uint) (domain.Airplane, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Airplane{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return airplaneToDomain(found), nil
}

func (r *AirplaneRepository) FindAll(ctx context.Context, filter domain.AirplaneFilter, page domain.PageRequest) (domain.Page[domain.Airplane], error) {
	found, total, err := r.dao.FindAll(ctx, dao.AirplaneFilter{
		Name: filter.Name,
		Type: filter.Type,
	}, toDAOPage(page))
	if err != nil {
		return domain.Page[domain.Airplane]{}, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	return domain.Page[domain.Airplane]{Items: mapAll(found, airplaneToDomain), Total: total}, nil
}

func (r *AirplaneRepository) Delete(ctx context.Context, id uint) error {
	if err := r.dao.Delete(ctx, id); err != nil {
		return fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return nil
}

func (r *AirplaneRepository) domainToDAO(airplane domain.Airplane) dao.Airplane {
	return dao.Airplane{
		ID:         airplane.ID,
		Name:       airplane.Name,
		TypeID:     airplane.TypeID,
		Rows:       airplane.Rows,
		SeatsInRow: airplane.SeatsInRow,
	}
}
