package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/yizeng/gab/gin/gorm/airport-api/internal/domain"
	"github.com/yizeng/gab/gin/gorm/airport-api/internal/repository"
)

var ErrFlightNotFound = repository.ErrFlightNotFound

type FlightRepository interface {
	Create(ctx context.Context, flight domain.Flight) (domain.Flight, error)
	Update(ctx context.Context, flight domain.Flight) (domain.Flight, error)
	FindByID(ctx context.Context, id uint) (domain.Flight, error)
	FindAll(ctx context.Context, filter domain.FlightFilter, page domain.PageRequest) (domain.Page[domain.Flight], error)
	Delete(ctx context.Context, id uint) error
}

type FlightRouteRepository interface {
	FindByID(ctx context.Context, id uint) (domain.Route, error)
}

type FlightAirplaneRepository interface {
	FindByID(ctx context.Context, id uint) (domain.Airplane, error)
}

type FlightCrewRepository interface {
	FindByIDs(ctx context.Context, ids []uint) ([]domain.Crew, error)
}

type FlightService struct {
	repo      FlightRepository
	routes    FlightRouteRepository
	airplanes FlightAirplaneRepository
	crew      FlightCrewRepository
}

func NewFlightService(
	repo FlightRepository,
	routes FlightRouteRepository,
	airplanes FlightAirplaneRepository,
	crew FlightCrewRepository,
) *FlightService {
	return &FlightService{
		repo:      repo,
		routes:    routes,
		airplanes: airplanes,
		crew:      crew,
	}
}

func (s *FlightService) ListFlights(ctx context.Context, filter domain.FlightFilter, page domain.PageRequest) (domain.Page[domain.Flight], error) {
	flights, err := s.repo.FindAll(ctx, filter, page)
	if err != nil {
		return domain.Page[domain.Flight]{}, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	return flights, nil
}

func (s *FlightService) GetFlight(ctx context.Context, id uint) (domain.Flight, error) {
	flight, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Flight{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return flight, nil
}

func (s *FlightService) CreateFlight(ctx context.Context, flight domain.Flight) (domain.Flight, error) {
	flight.CrewIDs = uniqueIDs(flight.CrewIDs)
	if err := s.validate(ctx, flight); err != nil {
		return domain.Flight{}, err
	}

	created, err := s.repo.Create(ctx, flight)
	if err != nil {
		return domain.Flight{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *FlightService) UpdateFlight(ctx context.Context, flight domain.Flight) (domain.Flight, error) {
	if _, err := s.repo.FindByID(ctx, flight.ID); err != nil {
		return domain.Flight{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	flight.CrewIDs = uniqueIDs(flight.CrewIDs)
	if err := s.validate(ctx, flight); err != nil {
		return domain.Flight{}, err
	}

	updated, err := s.repo.Update(ctx, flight)
	if err != nil {
		return domain.Flight{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}

func (s *FlightService) DeleteFlight(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("s.repo.Delete -> %w", err)
	}

	return nil
}

// validate checks the flight's fields, then that the route, airplane and
// every crew member it references exist.
func (s *FlightService) validate(ctx context.Context, flight domain.Flight) error {
	if err := flight.Validate(); err != nil {
		return err
	}

	errs := validation.Errors{}

	if _, err := s.routes.FindByID(ctx, flight.RouteID); err != nil {
		if !errors.Is(err, repository.ErrRouteNotFound) {
			return fmt.Errorf("s.routes.FindByID -> %w", err)
		}
		errs["route"] = invalidReference("route", flight.RouteID)["route"]
	}

	if _, err := s.airplanes.FindByID(ctx, flight.AirplaneID); err != nil {
		if !errors.Is(err, repository.ErrAirplaneNotFound) {
			return fmt.Errorf("s.airplanes.FindByID -> %w", err)
		}
		errs["airplane"] = invalidReference("airplane", flight.AirplaneID)["airplane"]
	}

	if len(flight.CrewIDs) > 0 {
		found, err := s.crew.FindByIDs(ctx, flight.CrewIDs)
		if err != nil {
			return fmt.Errorf("s.crew.FindByIDs -> %w", err)
		}
		if missing := missingIDs(flight.CrewIDs, found); len(missing) > 0 {
			errs["crew"] = fmt.Errorf("invalid pk %s - object does not exist", strings.Join(missing, ", "))
		}
	}

	return errs.Filter()
}

func uniqueIDs(ids []uint) []uint {
	seen := make(map[uint]struct{}, len(ids))
	unique := make([]uint, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		unique = append(unique, id)
	}
	sort.Slice(unique, func(i, j int) bool { return unique[i] < unique[j] })

	return unique
}

func missingIDs(ids []uint, found []domain.Crew) []string {
	present := make(map[uint]struct{}, len(found))
	for _, c := range found {
		present[c.ID] = struct{}{}
	}

	var missing []string
	for _, id := range ids {
		if _, ok := present[id]; !ok {
			missing = append(missing, fmt.Sprintf("%q", fmt.Sprint(id)))
		}
	}

	return missing
}
