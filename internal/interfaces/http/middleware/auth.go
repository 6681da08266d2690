package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/domus-inc/domus/internal/domain/profile"
	"github.com/domus-inc/domus/internal/infrastructure/auth"
	"github.com/domus-inc/domus/internal/infrastructure/cache"
	"github.com/domus-inc/domus/internal/shared/authorization"
	"github.com/domus-inc/domus/internal/shared/errors"
	"github.com/domus-inc/domus/internal/shared/logger"
	"github.com/domus-inc/domus/internal/shared/utils"
)

// RoleResolver returns the current role for a user. Implemented by the Redis
// role cache with the profile store as fallback.
type RoleResolver interface {
	Get(ctx context.Context, userID uint) (authorization.UserRole, error)
	Set(ctx context.Context, userID uint, role authorization.UserRole) error
}

type AuthMiddleware struct {
	jwtService  *auth.JWTService
	roleCache   RoleResolver
	profileRepo profile.ProfileRepository
	logger      logger.Interface
}

func NewAuthMiddleware(
	jwtService *auth.JWTService,
	roleCache RoleResolver,
	profileRepo profile.ProfileRepository,
	logger logger.Interface,
) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService:  jwtService,
		roleCache:   roleCache,
		profileRepo: profileRepo,
		logger:      logger,
	}
}

// RequireAuth verifies the bearer token, resolves the caller's role and puts
// a Principal on the request context. The token carries identity only; the
// role always comes from the cache or the profile store so role changes take
// effect without re-issuing tokens.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c)
		if !ok {
			utils.ErrorResponse(c, http.StatusUnauthorized, "missing or malformed authorization header")
			c.Abort()
			return
		}

		claims, err := m.jwtService.VerifyAccess(token)
		if err != nil {
			m.logger.Warnw("failed to verify access token", "error", err)
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid or expired token")
			c.Abort()
			return
		}

		userID, err := claims.UserID()
		if err != nil {
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid or expired token")
			c.Abort()
			return
		}

		role, err := m.resolveRole(c.Request.Context(), userID)
		if err != nil {
			if errors.IsNotFoundError(err) {
				utils.ErrorResponse(c, http.StatusForbidden, "account no longer exists")
			} else {
				m.logger.Errorw("failed to resolve role", "user_id", userID, "error", err)
				utils.ErrorResponse(c, http.StatusInternalServerError, "failed to resolve caller identity")
			}
			c.Abort()
			return
		}

		authorization.SetPrincipal(c, authorization.Principal{UserID: userID, Role: role})
		c.Next()
	}
}

func (m *AuthMiddleware) resolveRole(ctx context.Context, userID uint) (authorization.UserRole, error) {
	role, err := m.roleCache.Get(ctx, userID)
	if err == nil {
		return role, nil
	}
	if err != cache.ErrRoleNotCached {
		// Redis trouble is not fatal, fall through to the profile store.
		m.logger.Warnw("role cache unavailable", "user_id", userID, "error", err)
	}

	p, err := m.profileRepo.GetByID(ctx, userID)
	if err != nil {
		return "", err
	}

	if cacheErr := m.roleCache.Set(ctx, userID, p.Role()); cacheErr != nil {
		m.logger.Warnw("failed to cache role", "user_id", userID, "error", cacheErr)
	}
	return p.Role(), nil
}

func bearerToken(c *gin.Context) (string, bool) {
	header := c.GetHeader("Authorization")
	if header == "" {
		return "", false
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}
