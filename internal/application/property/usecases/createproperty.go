package usecases

import (
	"context"

	"github.com/domus-inc/domus/internal/application/property/dto"
	"github.com/domus-inc/domus/internal/domain/profile"
	"github.com/domus-inc/domus/internal/domain/property"
	"github.com/domus-inc/domus/internal/shared/errors"
	"github.com/domus-inc/domus/internal/shared/logger"
	"github.com/domus-inc/domus/internal/shared/services/sanitize"
)

type CreatePropertyCommand struct {
	Title   string
	Address string
	OwnerID uint
}

type CreatePropertyUseCase struct {
	propertyRepo property.PropertyRepository
	profileRepo  profile.ProfileRepository
	logger       logger.Interface
}

func NewCreatePropertyUseCase(
	propertyRepo property.PropertyRepository,
	profileRepo profile.ProfileRepository,
	logger logger.Interface,
) *CreatePropertyUseCase {
	return &CreatePropertyUseCase{
		propertyRepo: propertyRepo,
		profileRepo:  profileRepo,
		logger:       logger,
	}
}

func (uc *CreatePropertyUseCase) Execute(ctx context.Context, cmd CreatePropertyCommand) (*dto.PropertyDTO, error) {
	uc.logger.Infow("executing create property use case", "title", cmd.Title, "owner_id", cmd.OwnerID)

	if cmd.OwnerID == 0 {
		return nil, errors.NewValidationError("owner ID is required")
	}

	if _, err := uc.profileRepo.GetByID(ctx, cmd.OwnerID); err != nil {
		if errors.IsNotFoundError(err) {
			return nil, errors.NewValidationError("owner does not exist")
		}
		return nil, err
	}

	p, err := property.NewProperty(sanitize.Text(cmd.Title), sanitize.Text(cmd.Address), cmd.OwnerID)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.propertyRepo.Save(ctx, p); err != nil {
		uc.logger.Errorw("failed to save property", "error", err)
		return nil, err
	}

	uc.logger.Infow("property created", "property_id", p.ID())

	result := dto.ToPropertyDTO(p)
	return &result, nil
}
