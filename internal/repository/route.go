package repository

import (
	"context"
	"fmt"

	"github.com/yizeng/gab/gin/gorm/airport-api/internal/domain"
	"github.com/yizeng/gab/gin/gorm/airport-api/internal/repository/dao"
)

var (
	ErrRouteNotFound = dao.ErrRouteNotFound
	ErrRouteExists   = dao.ErrRouteExists
)

type RouteDAO interface {
	Insert(ctx context.Context, route dao.Route) (dao.Route, error)
	Update(ctx context.Context, route dao.Route) (dao.Route, error)
	FindByID(ctx context.Context, id uint) (dao.Route, error)
	FindAll(ctx context.Context, filter dao.RouteFilter, page dao.Page) ([]dao.Route, int64, error)
	Delete(ctx context.Context, id uint) error
}

type RouteRepository struct {
	dao RouteDAO
}

func NewRouteRepository(dao RouteDAO) *RouteRepository {
	return &RouteRepository{
		dao: dao,
	}
}

func (r *RouteRepository) Create(ctx context.Context, route domain.Route) (domain.Route, error) {
	created, err := r.dao.Insert(ctx, r.domainToDAO(route))
	if err != nil {
		return domain.Route{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return routeToDomain(created), nil
}

func (r *RouteRepository) Update(ctx context.Context, route domain.Route) (domain.Route, error) {
	updated, err := r.dao.Update(ctx, r.domainToDAO(route))
	if err != nil {
		return domain.Route{}, fmt.Errorf("r.dao.Update -> %w", err)
	}

	return routeToDomain(updated), nil
}

func (r *RouteRepository) FindByID(ctx context.Context, id uint) (domain.Route, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Route{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return routeToDomain(found), nil
}

func (r *RouteRepository) FindAll(ctx context.Context, filter domain.RouteFilter, page domain.PageRequest) (domain.Page[domain.Route], error) {
	found, total, err := r.dao.FindAll(ctx, dao.RouteFilter{
		Source:      filter.Source,
		Destination: filter.Destination,
	}, toDAOPage(page))
	if err != nil {
		return domain.Page[domain.Route]{}, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	return domain.Page[domain.Route]{Items: mapAll(found, routeToDomain), Total: total}, nil
}

func (r *RouteRepository) Delete(ctx context.Context, id uint) error {
	if err := r.dao.Delete(ctx, id); err != nil {
		return fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return nil
}

func (r *RouteRepository) domainToDAO(route domain.Route) dao.Route {
	return dao.Route{
		ID:            route.ID,
		SourceID:      route.SourceID,
		DestinationID: route.DestinationID,
		Distance:      route.Distance,
	}
}
