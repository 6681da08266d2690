package mappers

import (
	"github.com/domus-inc/domus/internal/domain/profile"
	"github.com/domus-inc/domus/internal/infrastructure/persistence/models"
	"github.com/domus-inc/domus/internal/shared/authorization"
)

// ProfileMapper handles the conversion between Profile domain entities and
// persistence models.
type ProfileMapper interface {
	ToModel(p *profile.Profile) *models.ProfileModel
	ToDomain(model *models.ProfileModel) (*profile.Profile, error)
}

type ProfileMapperImpl struct{}

func NewProfileMapper() ProfileMapper {
	return &ProfileMapperImpl{}
}

func (m *ProfileMapperImpl) ToModel(p *profile.Profile) *models.ProfileModel {
	return &models.ProfileModel{
		ID:           p.ID(),
		Email:        p.Email(),
		PasswordHash: p.PasswordHash(),
		DisplayName:  p.DisplayName(),
		Role:         p.Role().String(),
		Version:      p.Version(),
		CreatedAt:    p.CreatedAt(),
		UpdatedAt:    p.UpdatedAt(),
	}
}

func (m *ProfileMapperImpl) ToDomain(model *models.ProfileModel) (*profile.Profile, error) {
	return profile.ReconstructProfile(
		model.ID,
		model.Email,
		model.PasswordHash,
		model.DisplayName,
		authorization.ParseUserRole(model.Role),
		model.Version,
		model.CreatedAt,
		model.UpdatedAt,
	)
}
