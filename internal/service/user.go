package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/yizeng/gab/gin/gorm/airport-api/internal/domain"
	"github.com/yizeng/gab/gin/gorm/airport-api/internal/repository"
)

var (
	ErrUserNotFound = repository.ErrUserNotFound
)

type UserRepository interface {
	Create(ctx context.Context, user domain.User) (domain.User, error)
	FindByID(ctx context.Context, id uint) (domain.User, error)
	FindByEmail(ctx context.Context, email string) (domain.User, error)
	PromoteToStaff(ctx context.Context, id uint) error
}

type UserService struct {
	repo UserRepository
}

func NewUserService(repo UserRepository) *UserService {
	return &UserService{
		repo: repo,
	}
}

func (s *UserService) GetUser(ctx context.Context, id uint) (domain.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.User{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return user, nil
}

// EnsureAdmin makes sure an administrator with the given email exists,
// creating it or promoting an existing account.
func (s *UserService) EnsureAdmin(ctx context.Context, email, password string) (domain.User, error) {
	email = normalizeEmail(email)

	user, err := s.repo.FindByEmail(ctx, email)
	if err == nil {
		if user.IsStaff {
			return user, nil
		}
		if err = s.repo.PromoteToStaff(ctx, user.ID); err != nil {
			return domain.User{}, fmt.Errorf("s.repo.PromoteToStaff -> %w", err)
		}
		zap.L().Info("promoted existing user to admin", zap.String("email", email))
		user.IsStaff = true

		return user, nil
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return domain.User{}, fmt.Errorf("s.repo.FindByEmail -> %w", err)
	}

	hash, err := hashPassword(password)
	if err != nil {
		return domain.User{}, err
	}

	created, err := s.repo.Create(ctx, domain.User{Email: email, Password: hash, IsStaff: true})
	if err != nil {
		return domain.User{}, fmt.Errorf("s.repo.Create -> %w", err)
	}
	zap.L().Info("created admin user", zap.String("email", email))

	return created, nil
}
