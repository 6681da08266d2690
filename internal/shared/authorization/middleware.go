package authorization

import (
	"github.com/gin-gonic/gin"
)

// RequireRoles allows the request through only when the caller's role is in
// the allow-list. Must run after the auth middleware.
func RequireRoles(allowed ...UserRole) gin.HandlerFunc {
	allowSet := make(map[UserRole]struct{}, len(allowed))
	for _, r := range allowed {
		allowSet[r] = struct{}{}
	}
	return func(c *gin.Context) {
		p, ok := GetPrincipal(c)
		if !ok {
			c.JSON(401, gin.H{
				"error": "authentication required",
			})
			c.Abort()
			return
		}
		if _, allowed := allowSet[p.Role]; !allowed {
			c.JSON(403, gin.H{
				"error": "insufficient role",
			})
			c.Abort()
			return
		}
		c.Next()
	}
}

func RequireAdmin() gin.HandlerFunc {
	return RequireRoles(RoleAdmin)
}

type OwnedResource interface {
	GetOwnerID() uint
}

func CanAccessResource(userID uint, userRole UserRole, resource OwnedResource) bool {
	if userRole.IsAdmin() {
		return true
	}
	return userID == resource.GetOwnerID()
}

func CanAccessResourceByOwnerID(userID uint, userRole UserRole, resourceOwnerID uint) bool {
	if userRole.IsAdmin() {
		return true
	}
	return userID == resourceOwnerID
}
