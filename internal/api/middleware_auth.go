package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/vitalis/internal/models"
)

// Routes a user flagged for a password change may still reach.
var passwordChangeAllowedPaths = map[string]struct{}{
	"/api/me":          {},
	"/api/me/password": {},
	"/api/auth/logout": {},
}

func (handler *Handler) AuthRequired(c *fiber.Ctx) error {
	raw := requestToken(c)
	if raw == "" {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	claims, err := handler.parseToken(raw)
	if err != nil {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	user, err := handler.authService.FindByID(claims.UserID)
	if err != nil {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	if user.MustChangePassword {
		if _, allowed := passwordChangeAllowedPaths[c.Path()]; !allowed {
			return apiError(c, fiber.StatusForbidden, "password change required")
		}
	}

	c.Locals(contextUserKey, &user)
	return c.Next()
}

func currentUser(c *fiber.Ctx) (*models.User, bool) {
	user, ok := c.Locals(contextUserKey).(*models.User)
	return user, ok && user != nil
}
