package usecases

import (
	"context"

	"github.com/domus-inc/domus/internal/application/auth/dto"
	"github.com/domus-inc/domus/internal/infrastructure/auth"
)

// PasswordVerifier checks a plaintext password against a stored hash.
// Satisfied by *auth.BcryptPasswordHasher.
type PasswordVerifier interface {
	Verify(password, hash string) error
}

// TokenService issues and verifies token pairs. Satisfied by *auth.JWTService.
type TokenService interface {
	Generate(userID uint) (*auth.TokenPair, error)
	VerifyRefresh(tokenString string) (*auth.Claims, error)
}

type LoginExecutor interface {
	Execute(ctx context.Context, cmd LoginCommand) (*LoginResult, error)
}

type RefreshTokenExecutor interface {
	Execute(ctx context.Context, cmd RefreshTokenCommand) (*RefreshTokenResult, error)
}

type CurrentUserExecutor interface {
	Execute(ctx context.Context, query CurrentUserQuery) (*dto.UserDTO, error)
}
