package response

import (
	"time"

	"github.com/yizeng/gab/gin/gorm/airport-api/internal/domain"
)

type User struct {
	ID        uint      `json:"id"`
	Email     string    `json:"email"`
	IsStaff   bool      `json:"is_staff"`
	CreatedAt time.Time `json:"created_at"`
}

func NewUser(u domain.User) User {
	return User{
		ID:        u.ID,
		Email:     u.Email,
		IsStaff:   u.IsStaff,
		CreatedAt: u.CreatedAt,
	}
}

type LoginResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}
