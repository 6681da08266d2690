package mappers

import (
	"github.com/domus-inc/domus/internal/domain/property"
	"github.com/domus-inc/domus/internal/infrastructure/persistence/models"
)

// PropertyMapper handles the conversion between Property domain entities and
// persistence models.
type PropertyMapper interface {
	ToModel(p *property.Property) *models.PropertyModel
	ToDomain(model *models.PropertyModel) (*property.Property, error)
}

type PropertyMapperImpl struct{}

func NewPropertyMapper() PropertyMapper {
	return &PropertyMapperImpl{}
}

func (m *PropertyMapperImpl) ToModel(p *property.Property) *models.PropertyModel {
	return &models.PropertyModel{
		ID:        p.ID(),
		Title:     p.Title(),
		Address:   p.Address(),
		OwnerID:   p.OwnerID(),
		Version:   p.Version(),
		CreatedAt: p.CreatedAt(),
		UpdatedAt: p.UpdatedAt(),
	}
}

func (m *PropertyMapperImpl) ToDomain(model *models.PropertyModel) (*property.Property, error) {
	return property.ReconstructProperty(
		model.ID,
		model.Title,
		model.Address,
		model.OwnerID,
		model.Version,
		model.CreatedAt,
		model.UpdatedAt,
	)
}
