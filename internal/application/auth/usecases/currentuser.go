package usecases

import (
	"context"

	"github.com/domus-inc/domus/internal/application/auth/dto"
	"github.com/domus-inc/domus/internal/domain/profile"
	"github.com/domus-inc/domus/internal/shared/errors"
	"github.com/domus-inc/domus/internal/shared/logger"
)

type CurrentUserQuery struct {
	UserID uint
}

type CurrentUserUseCase struct {
	profileRepo profile.ProfileRepository
	logger      logger.Interface
}

func NewCurrentUserUseCase(profileRepo profile.ProfileRepository, logger logger.Interface) *CurrentUserUseCase {
	return &CurrentUserUseCase{
		profileRepo: profileRepo,
		logger:      logger,
	}
}

func (uc *CurrentUserUseCase) Execute(ctx context.Context, query CurrentUserQuery) (*dto.UserDTO, error) {
	if query.UserID == 0 {
		return nil, errors.NewValidationError("user ID is required")
	}

	p, err := uc.profileRepo.GetByID(ctx, query.UserID)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, errors.NewNotFoundError("user not found")
		}
		uc.logger.Errorw("failed to load current user", "user_id", query.UserID, "error", err)
		return nil, err
	}

	result := dto.ToUserDTO(p)
	return &result, nil
}
