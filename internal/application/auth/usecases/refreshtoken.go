package usecases

import (
	"context"

	"github.com/domus-inc/domus/internal/domain/profile"
	"github.com/domus-inc/domus/internal/shared/errors"
	"github.com/domus-inc/domus/internal/shared/logger"
)

type RefreshTokenCommand struct {
	RefreshToken string
}

type RefreshTokenResult struct {
	AccessToken  string
	RefreshToken string
	ExpiresIn    int64
}

// RefreshTokenUseCase exchanges a valid refresh token for a fresh pair. The
// profile must still exist, tokens issued before an account was removed stop
// working at the first refresh.
type RefreshTokenUseCase struct {
	profileRepo profile.ProfileRepository
	tokens      TokenService
	logger      logger.Interface
}

func NewRefreshTokenUseCase(
	profileRepo profile.ProfileRepository,
	tokens TokenService,
	logger logger.Interface,
) *RefreshTokenUseCase {
	return &RefreshTokenUseCase{
		profileRepo: profileRepo,
		tokens:      tokens,
		logger:      logger,
	}
}

func (uc *RefreshTokenUseCase) Execute(ctx context.Context, cmd RefreshTokenCommand) (*RefreshTokenResult, error) {
	if cmd.RefreshToken == "" {
		return nil, errors.NewValidationError("refresh token is required")
	}

	claims, err := uc.tokens.VerifyRefresh(cmd.RefreshToken)
	if err != nil {
		return nil, errors.NewUnauthorizedError("invalid refresh token")
	}

	userID, err := claims.UserID()
	if err != nil {
		return nil, errors.NewUnauthorizedError("invalid refresh token")
	}

	p, err := uc.profileRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, errors.NewUnauthorizedError("invalid refresh token")
		}
		uc.logger.Errorw("failed to load profile for refresh", "user_id", userID, "error", err)
		return nil, err
	}

	pair, err := uc.tokens.Generate(p.ID())
	if err != nil {
		uc.logger.Errorw("failed to generate token pair", "user_id", p.ID(), "error", err)
		return nil, errors.NewInternalError("failed to issue tokens")
	}

	return &RefreshTokenResult{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		ExpiresIn:    pair.ExpiresIn,
	}, nil
}
