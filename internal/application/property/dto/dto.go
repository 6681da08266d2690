package dto

import (
	"time"

	"github.com/domus-inc/domus/internal/domain/property"
)

type PropertyDTO struct {
	ID        uint      `json:"id"`
	Title     string    `json:"title"`
	Address   string    `json:"address"`
	OwnerID   uint      `json:"owner_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func ToPropertyDTO(p *property.Property) PropertyDTO {
	return PropertyDTO{
		ID:        p.ID(),
		Title:     p.Title(),
		Address:   p.Address(),
		OwnerID:   p.OwnerID(),
		CreatedAt: p.CreatedAt(),
		UpdatedAt: p.UpdatedAt(),
	}
}

func ToPropertyDTOs(properties []*property.Property) []PropertyDTO {
	result := make([]PropertyDTO, 0, len(properties))
	for _, p := range properties {
		result = append(result, ToPropertyDTO(p))
	}
	return result
}
