package middlewares

import (
	"net/http"
	"strings"

	"github.com/anantkataria/Anant-Restaurant-API/services"
	"github.com/anantkataria/Anant-Restaurant-API/utils"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware checks the bearer token, resolves the caller's roles
// once for the request, and (if required roles are given) enforces
// them. Admin passes every role gate.
func AuthMiddleware(secret string, roles *services.RoleService, requiredRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if h == "" || !strings.HasPrefix(h, "Bearer ") {
			c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "missing or invalid token"})
			c.Abort()
			return
		}
		tokenStr := strings.TrimPrefix(h, "Bearer ")

		claims, err := utils.ParseToken(tokenStr, secret)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "invalid token"})
			c.Abort()
			return
		}

		caller, err := roles.Resolve(claims.UserID)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "unknown user"})
			c.Abort()
			return
		}

		c.Set("userId", caller.ID)
		c.Set("caller", caller)

		if len(requiredRoles) > 0 && !allowed(caller.Roles, requiredRoles) {
			c.JSON(http.StatusForbidden, gin.H{"ok": false, "error": "forbidden"})
			c.Abort()
			return
		}

		c.Next()
	}
}

func allowed(r services.Roles, required []string) bool {
	if r.Admin {
		return true
	}
	for _, name := range required {
		switch name {
		case "manager":
			if r.Manager {
				return true
			}
		case "delivery-crew":
			if r.DeliveryCrew {
				return true
			}
		}
	}
	return false
}

// CallerFromContext returns the identity stored by AuthMiddleware.
func CallerFromContext(c *gin.Context) *services.Caller {
	if v, ok := c.Get("caller"); ok {
		if caller, ok := v.(*services.Caller); ok {
			return caller
		}
	}
	return nil
}
