package service

import (
	"context"
	"errors"
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/yizeng/gab/gin/gorm/airport-api/internal/domain"
	"github.com/yizeng/gab/gin/gorm/airport-api/internal/repository"
)

var (
	ErrRouteNotFound = repository.ErrRouteNotFound
	ErrRouteExists   = repository.ErrRouteExists
)

type RouteRepository interface {
	Create(ctx context.Context, route domain.Route) (domain.Route, error)
	Update(ctx context.Context, route domain.Route) (domain.Route, error)
	FindByID(ctx context.Context, id uint) (domain.Route, error)
	FindAll(ctx context.Context, filter domain.RouteFilter, page domain.PageRequest) (domain.Page[domain.Route], error)
	Delete(ctx context.Context, id uint) error
}

type RouteAirportRepository interface {
	FindByID(ctx context.Context, id uint) (domain.Airport, error)
}

type RouteService struct {
	repo     RouteRepository
	airports RouteAirportRepository
}

func NewRouteService(repo RouteRepository, airports RouteAirportRepository) *RouteService {
	return &RouteService{
		repo:     repo,
		airports: airports,
	}
}

func (s *RouteService) ListRoutes(ctx context.Context, filter domain.RouteFilter, page domain.PageRequest) (domain.Page[domain.Route], error) {
	routes, err := s.repo.FindAll(ctx, filter, page)
	if err != nil {
		return domain.Page[domain.Route]{}, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	return routes, nil
}

func (s *RouteService) GetRoute(ctx context.Context, id uint) (domain.Route, error) {
	route, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Route{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return route, nil
}

func (s *RouteService) CreateRoute(ctx context.Context, route domain.Route) (domain.Route, error) {
	if err := s.validate(ctx, route); err != nil {
		return domain.Route{}, err
	}

	created, err := s.repo.Create(ctx, route)
	if err != nil {
		return domain.Route{}, s.writeError("s.repo.Create", err)
	}

	return created, nil
}

func (s *RouteService) UpdateRoute(ctx context.Context, route domain.Route) (domain.Route, error) {
	if _, err := s.repo.FindByID(ctx, route.ID); err != nil {
		return domain.Route{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}
	if err := s.validate(ctx, route); err != nil {
		return domain.Route{}, err
	}

	updated, err := s.repo.Update(ctx, route)
	if err != nil {
		return domain.Route{}, s.writeError("s.repo.Update", err)
	}

	return updated, nil
}

func (s *RouteService) DeleteRoute(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("s.repo.Delete -> %w", err)
	}

	return nil
}

// validate checks the route's own invariants, then that both airports exist.
func (s *RouteService) validate(ctx context.Context, route domain.Route) error {
	if err := route.Validate(); err != nil {
		return err
	}

	errs := validation.Errors{}
	for field, id := range map[string]uint{"source": route.SourceID, "destination": route.DestinationID} {
		if _, err := s.airports.FindByID(ctx, id); err != nil {
			if !errors.Is(err, repository.ErrAirportNotFound) {
				return fmt.Errorf("s.airports.FindByID -> %w", err)
			}
			errs[field] = invalidReference(field, id)[field]
		}
	}

	return errs.Filter()
}

func (s *RouteService) writeError(op string, err error) error {
	switch {
	case errors.Is(err, repository.ErrRouteExists):
		return fieldError("destination", ErrRouteExists)
	case errors.Is(err, repository.ErrReferenceNotFound):
		return fieldError("source", repository.ErrReferenceNotFound)
	default:
		return fmt.Errorf("%s -> %w", op, err)
	}
}
