package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/yizeng/gab/gin/gorm/airport-api/internal/domain"
	"github.com/yizeng/gab/gin/gorm/airport-api/internal/repository"
)

var (
	ErrAirplaneTypeNotFound = repository.ErrAirplaneTypeNotFound
	ErrAirplaneTypeExists   = repository.ErrAirplaneTypeExists
	ErrAirplaneNotFound     = repository.ErrAirplaneNotFound
)

type AirplaneTypeRepository interface {
	Create(ctx context.Context, airplaneType domain.AirplaneType) (domain.AirplaneType, error)
	Update(ctx context.Context, airplaneType domain.AirplaneType) (domain.AirplaneType, error)
	FindByID(ctx context.Context, id uint) (domain.AirplaneType, error)
	FindAll(ctx context.Context, page domain.PageRequest) (domain.Page[domain.AirplaneType], error)
	Delete(ctx context.Context, id uint) error
}

type AirplaneTypeService struct {
	repo AirplaneTypeRepository
}

func NewAirplaneTypeService(repo AirplaneTypeRepository) *AirplaneTypeService {
	return &AirplaneTypeService{
		repo: repo,
	}
}

func (s *AirplaneTypeService) ListAirplaneTypes(ctx context.Context, page domain.PageRequest) (domain.Page[domain.AirplaneType], error) {
	types, err := s.repo.FindAll(ctx, page)
	if err != nil {
		return domain.Page[domain.AirplaneType]{}, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	return types, nil
}

func (s *AirplaneTypeService) GetAirplaneType(ctx context.Context, id uint) (domain.AirplaneType, error) {
	airplaneType, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.AirplaneType{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return airplaneType, nil
}

func (s *AirplaneTypeService) CreateAirplaneType(ctx context.Context, airplaneType domain.AirplaneType) (domain.AirplaneType, error) {
	if err := airplaneType.Validate(); err != nil {
		return domain.AirplaneType{}, err
	}

	created, err := s.repo.Create(ctx, airplaneType)
	if err != nil {
		return domain.AirplaneType{}, s.writeError("s.repo.Create", err)
	}

	return created, nil
}

func (s *AirplaneTypeService) UpdateAirplaneType(ctx context.Context, airplaneType domain.AirplaneType) (domain.AirplaneType, error) {
	if _, err := s.repo.FindByID(ctx, airplaneType.ID); err != nil {
		return domain.AirplaneType{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}
	if err := airplaneType.Validate(); err != nil {
		return domain.AirplaneType{}, err
	}

	updated, err := s.repo.Update(ctx, airplaneType)
	if err != nil {
		return domain.AirplaneType{}, s.writeError("s.repo.Update", err)
	}

	return updated, nil
}

func (s *AirplaneTypeService) DeleteAirplaneType(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("s.repo.Delete -> %w", err)
	}

	return nil
}

func (s *AirplaneTypeService) writeError(op string, err error) error {
	if errors.Is(err, repository.ErrAirplaneTypeExists) {
		return fieldError("name", ErrAirplaneTypeExists)
	}

	return fmt.Errorf("%s -> %w", op, err)
}

type AirplaneRepository interface {
	Create(ctx context.Context, airplane domain.Airplane) (domain.Airplane, error)
	Update(ctx context.Context, airplane domain.Airplane) (domain.Airplane, error)
	FindByID(ctx context.Context, id uint) (domain.Airplane, error)
	FindAll(ctx context.Context, filter domain.AirplaneFilter, page domain.PageRequest) (domain.Page[domain.Airplane], error)
	Delete(ctx context.Context, id uint) error
}

type AirplaneService struct {
	repo  AirplaneRepository
	types AirplaneTypeRepository
}

func NewAirplaneService(repo AirplaneRepository, types AirplaneTypeRepository) *AirplaneService {
	return &AirplaneService{
		repo:  repo,
		types: types,
	}
}

func (s *AirplaneService) ListAirplanes(ctx context.Context, filter domain.AirplaneFilter, page domain.PageRequest) (domain.Page[domain.Airplane], error) {
	airplanes, err := s.repo.FindAll(ctx, filter, page)
	if err != nil {
		return domain.Page[domain.Airplane]{}, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	return airplanes, nil
}

func (s *AirplaneService) GetAirplane(ctx context.Context, id uint) (domain.Airplane, error) {
	airplane, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Airplane{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return airplane, nil
}

func (s *AirplaneService) CreateAirplane(ctx context.Context, airplane domain.Airplane) (domain.Airplane, error) {
	if err := s.validate(ctx, airplane); err != nil {
		return domain.Airplane{}, err
	}

	created, err := s.repo.Create(ctx, airplane)
	if err != nil {
		return domain.Airplane{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *AirplaneService) UpdateAirplane(ctx context.Context, airplane domain.Airplane) (domain.Airplane, error) {
	if _, err := s.repo.FindByID(ctx, airplane.ID); err != nil {
		return domain.Airplane{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}
	if err := s.validate(ctx, airplane); err != nil {
		return domain.Airplane{}, err
	}

	updated, err := s.repo.Update(ctx, airplane)
	if err != nil {
		return domain.Airplane{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}

func (s *AirplaneService) DeleteAirplane(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("s.repo.Delete -> %w", err)
	}

	return nil
}

func (s *AirplaneService) validate(ctx context.Context, airplane domain.Airplane) error {
	if err := airplane.Validate(); err != nil {
		return err
	}

	if _, err := s.types.FindByID(ctx, airplane.TypeID); err != nil {
		if errors.Is(err, repository.ErrAirplaneTypeNotFound) {
			return invalidReference("type", airplane.TypeID)
		}

		return fmt.Errorf("s.types.FindByID -> %w", err)
	}

	return nil
}
