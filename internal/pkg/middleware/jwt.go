package middleware

import (
	"github.com/labstack/echo/v4"
	"github.com/lajubus/lajubus/internal/pkg/models"
	"github.com/lajubus/lajubus/internal/utils"
)

const authUserKey = "auth_user"

// SetAuthUser stores the session identity on the Echo context. The JWT
// middleware calls this after validating the token; RequireRoles and the
// handlers read it back.
func SetAuthUser(c echo.Context, user models.AuthUser) {
	c.Set(authUserKey, user)
	c.Set("user_id", user.ID)
	c.Set("user_role", user.Role)
}

// RequireRoles gates a route group to the given roles. Must run after the
// JWT middleware has stored the session identity.
func RequireRoles(roles ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, ok := c.Get(authUserKey).(models.AuthUser)
			if !ok || user.ID == "" || user.Role == "" {
				return utils.UnauthorizedResponse(c, "Missing session")
			}
			for _, role := range roles {
				if user.Role == role {
					return next(c)
				}
			}
			return utils.ForbiddenResponse(c, "Insufficient role")
		}
	}
}

// AuthUserFromContext returns the session identity stored by the JWT
// middleware, if any.
func AuthUserFromContext(c echo.Context) (models.AuthUser, bool) {
	user, ok := c.Get(authUserKey).(models.AuthUser)
	return user, ok
}
