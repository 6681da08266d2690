package dto

import (
	"time"

	"github.com/domus-inc/domus/internal/domain/profile"
)

type UserDTO struct {
	ID          uint      `json:"id"`
	Email       string    `json:"email"`
	DisplayName string    `json:"display_name"`
	Role        string    `json:"role"`
	CreatedAt   time.Time `json:"created_at"`
}

func ToUserDTO(p *profile.Profile) UserDTO {
	return UserDTO{
		ID:          p.ID(),
		Email:       p.Email(),
		DisplayName: p.DisplayName(),
		Role:        p.Role().String(),
		CreatedAt:   p.CreatedAt(),
	}
}
