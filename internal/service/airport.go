package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/yizeng/gab/gin/gorm/airport-api/internal/domain"
	"github.com/yizeng/gab/gin/gorm/airport-api/internal/repository"
)

var (
	ErrAirportNotFound   = repository.ErrAirportNotFound
	ErrAirportNameExists = repository.ErrAirportNameExists
)

type AirportRepository interface {
	Create(ctx context.Context, airport domain.Airport) (domain.Airport, error)
	Update(ctx context.Context, airport domain.Airport) (domain.Airport, error)
	FindByID(ctx context.Context, id uint) (domain.Airport, error)
	FindAll(ctx context.Context, page domain.PageRequest) (domain.Page[domain.Airport], error)
	Delete(ctx context.Context, id uint) error
}

type AirportService struct {
	repo AirportRepository
}

func NewAirportService(repo AirportRepository) *AirportService {
	return &AirportService{
		repo: repo,
	}
}

func (s *AirportService) ListAirports(ctx context.Context, page domain.PageRequest) (domain.Page[domain.Airport], error) {
	airports, err := s.repo.FindAll(ctx, page)
	if err != nil {
		return domain.Page[domain.Airport]{}, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	return airports, nil
}

func (s *AirportService) GetAirport(ctx context.Context, id uint) (domain.Airport, error) {
	airport, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Airport{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return airport, nil
}

func (s *AirportService) CreateAirport(ctx context.Context, airport domain.Airport) (domain.Airport, error) {
	if err := airport.Validate(); err != nil {
		return domain.Airport{}, err
	}

	created, err := s.repo.Create(ctx, airport)
	if err != nil {
		return domain.Airport{}, s.writeError("s.repo.Create", err)
	}

	return created, nil
}

func (s *AirportService) UpdateAirport(ctx context.Context, airport domain.Airport) (domain.Airport, error) {
	if _, err := s.repo.FindByID(ctx, airport.ID); err != nil {
		return domain.Airport{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}
	if err := airport.Validate(); err != nil {
		return domain.Airport{}, err
	}

	updated, err := s.repo.Update(ctx, airport)
	if err != nil {
		return domain.Airport{}, s.writeError("s.repo.Update", err)
	}

	return updated, nil
}

func (s *AirportService) DeleteAirport(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("s.repo.Delete -> %w", err)
	}

	return nil
}

func (s *AirportService) writeError(op string, err error) error {
	if errors.Is(err, repository.ErrAirportNameExists) {
		return fieldError("name", ErrAirportNameExists)
	}

	return fmt.Errorf("%s -> %w", op, err)
}
