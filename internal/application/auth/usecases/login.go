package usecases

import (
	"context"
	"strings"

	"github.com/domus-inc/domus/internal/application/auth/dto"
	"github.com/domus-inc/domus/internal/domain/profile"
	"github.com/domus-inc/domus/internal/shared/errors"
	"github.com/domus-inc/domus/internal/shared/logger"
)

type LoginCommand struct {
	Email    string
	Password string
}

type LoginResult struct {
	AccessToken  string
	RefreshToken string
	ExpiresIn    int64
	User         dto.UserDTO
}

type LoginUseCase struct {
	profileRepo profile.ProfileRepository
	hasher      PasswordVerifier
	tokens      TokenService
	logger      logger.Interface
}

func NewLoginUseCase(
	profileRepo profile.ProfileRepository,
	hasher PasswordVerifier,
	tokens TokenService,
	logger logger.Interface,
) *LoginUseCase {
	return &LoginUseCase{
		profileRepo: profileRepo,
		hasher:      hasher,
		tokens:      tokens,
		logger:      logger,
	}
}

func (uc *LoginUseCase) Execute(ctx context.Context, cmd LoginCommand) (*LoginResult, error) {
	email := strings.TrimSpace(strings.ToLower(cmd.Email))
	if email == "" || cmd.Password == "" {
		return nil, errors.NewValidationError("email and password are required")
	}

	p, err := uc.profileRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.IsNotFoundError(err) {
			// Same error as a wrong password so the response does not reveal
			// whether the account exists.
			return nil, errors.NewUnauthorizedError("invalid email or password")
		}
		uc.logger.Errorw("failed to load profile for login", "error", err)
		return nil, err
	}

	if err := uc.hasher.Verify(cmd.Password, p.PasswordHash()); err != nil {
		return nil, errors.NewUnauthorizedError("invalid email or password")
	}

	pair, err := uc.tokens.Generate(p.ID())
	if err != nil {
		uc.logger.Errorw("failed to generate token pair", "user_id", p.ID(), "error", err)
		return nil, errors.NewInternalError("failed to issue tokens")
	}

	uc.logger.Infow("user logged in", "user_id", p.ID(), "role", p.Role().String())

	return &LoginResult{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		ExpiresIn:    pair.ExpiresIn,
		User:         dto.ToUserDTO(p),
	}, nil
}
