package authorization

import "github.com/gin-gonic/gin"

// Principal is the authenticated caller as resolved by the auth middleware.
type Principal struct {
	UserID uint
	Role   UserRole
}

const principalContextKey = "principal"

// SetPrincipal stores the resolved principal on the request context.
func SetPrincipal(c *gin.Context, p Principal) {
	c.Set(principalContextKey, p)
	c.Set("user_id", p.UserID)
	c.Set("user_role", p.Role.String())
}

// GetPrincipal returns the principal set by the auth middleware.
func GetPrincipal(c *gin.Context) (Principal, bool) {
	v, exists := c.Get(principalContextKey)
	if !exists {
		return Principal{}, false
	}
	p, ok := v.(Principal)
	return p, ok
}
