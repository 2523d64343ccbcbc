package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var (
	ErrUserEmailExists = errors.New("user already exists")
	ErrUserNotFound    = errors.New("user not found")
)

// User is a passenger or, with IsStaff set, an administrator.
type User struct {
	ID        uint      `gorm:"primaryKey"`
	Email     string    `gorm:"size:254;unique;not null"`
	Password  string    `gorm:"not null"`
	IsStaff   bool      `gorm:"not null;default:false"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type UserDAO struct {
	db *gorm.DB
}

func NewUserDAO(db *gorm.DB) *UserDAO {
	return &UserDAO{
		db: db,
	}
}

func (d *UserDAO) Insert(ctx context.Context, user User) (User, error) {
	result := d.db.WithContext(ctx).Create(&user)
	if result.Error != nil {
		return User{}, translate(result.Error, ErrUserNotFound, ErrUserEmailExists)
	}

	return user, nil
}

func (d *UserDAO) FindByID(ctx context.Context, id uint) (User, error) {
	var user User

	if err := d.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return User{}, translate(err, ErrUserNotFound, nil)
	}

	return user, nil
}

// FindByEmail matches the address case-insensitively; stored addresses are lower case.
func (d *UserDAO) FindByEmail(ctx context.Context, email string) (User, error) {
	var user User

	if err := d.db.WithContext(ctx).Where("LOWER(email) = LOWER(?)", email).First(&user).Error; err != nil {
		return User{}, translate(err, ErrUserNotFound, nil)
	}

	return user, nil
}

// PromoteToStaff grants administrator privilege to an existing user.
func (d *UserDAO) PromoteToStaff(ctx context.Context, id uint) error {
	result := d.db.WithContext(ctx).Model(&User{}).Where("id = ?", id).Update("is_staff", true)
	if result.Error != nil {
		return translate(result.Error, ErrUserNotFound, nil)
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}

	return nil
}
