package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/vitalis/internal/models"
	"github.com/terraincognita07/vitalis/internal/services"
)

type credentialsInput struct {
	Email       string `json:"email" form:"email"`
	Password    string `json:"password" form:"password"`
	DisplayName string `json:"display_name" form:"display_name"`
	RememberMe  bool   `json:"remember_me" form:"remember_me"`
}

type changePasswordInput struct {
	CurrentPassword string `json:"current_password" form:"current_password"`
	NewPassword     string `json:"new_password" form:"new_password"`
}

type sessionResponse struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

func (handler *Handler) Register(c *fiber.Ctx) error {
	var input credentialsInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	user, err := handler.authService.Register(input.Email, input.Password, input.DisplayName, handler.now())
	if errors.Is(err, services.ErrAuthEmailTaken) {
		return apiError(c, fiber.StatusConflict, "email already exists")
	}
	if err != nil {
		return handler.respondServiceError(c, err, "failed to create account")
	}

	return handler.startSession(c, &user, true, fiber.StatusCreated)
}

func (handler *Handler) Login(c *fiber.Ctx) error {
	limiterKey := requestLimiterKey(c)
	now := handler.now()
	if handler.loginLimiter.tooManyRecent(limiterKey, now, loginAttemptLimit, loginAttemptWindow) {
		return apiError(c, fiber.StatusTooManyRequests, "too many login attempts")
	}

	var input credentialsInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	user, err := handler.authService.Authenticate(input.Email, input.Password)
	if errors.Is(err, services.ErrAuthCredentialsInvalid) {
		handler.loginLimiter.addFailure(limiterKey, now, loginAttemptWindow)
		return apiError(c, fiber.StatusUnauthorized, "invalid credentials")
	}
	if err != nil {
		return handler.respondServiceError(c, err, "failed to sign in")
	}

	handler.loginLimiter.reset(limiterKey)
	return handler.startSession(c, &user, input.RememberMe, fiber.StatusOK)
}

func (handler *Handler) Logout(c *fiber.Ctx) error {
	handler.clearAuthCookie(c)
	return c.SendStatus(fiber.StatusNoContent)
}

func (handler *Handler) Me(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	return c.JSON(user)
}

func (handler *Handler) ChangePassword(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	var input changePasswordInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	err := handler.authService.ChangePassword(*user, input.CurrentPassword, input.NewPassword)
	if errors.Is(err, services.ErrAuthCredentialsInvalid) {
		return apiError(c, fiber.StatusUnauthorized, "invalid current password")
	}
	if err != nil {
		return handler.respondServiceError(c, err, "failed to change password")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (handler *Handler) startSession(c *fiber.Ctx, user *models.User, rememberMe bool, status int) error {
	ttl := defaultAuthTokenTTL
	if rememberMe {
		ttl = rememberAuthTokenTTL
	}

	token, err := handler.buildToken(user, ttl)
	if err != nil {
		return handler.respondServiceError(c, err, "failed to create session")
	}
	handler.setAuthCookie(c, token, ttl, rememberMe)
	return c.Status(status).JSON(sessionResponse{Token: token, User: *user})
}
