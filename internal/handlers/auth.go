package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/example/brandsbridge/internal/config"
	"github.com/example/brandsbridge/internal/middleware"
	"github.com/example/brandsbridge/internal/repository"
	"github.com/example/brandsbridge/internal/utils"
)

// AuthHandler bundles dependencies for authentication endpoints.
type AuthHandler struct {
	users *repository.UserRepository
	cfg   *config.Config
}

// NewAuthHandler constructs an AuthHandler.
func NewAuthHandler(users *repository.UserRepository, cfg *config.Config) *AuthHandler {
	return &AuthHandler{users: users, cfg: cfg}
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Login authenticates a back-office account and issues a JWT.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if err := utils.ValidateStruct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, utils.FormatValidationError(err))
	}

	user, err := h.users.GetByEmail(req.Email)
	if err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "invalid credentials")
	}

	if !user.IsActive {
		return fiber.NewError(fiber.StatusUnauthorized, "account is disabled")
	}

	if !utils.CheckPassword(user.Password, req.Password) {
		return fiber.NewError(fiber.StatusUnauthorized, "invalid credentials")
	}

	token, err := utils.GenerateToken(h.cfg.JWTSecret, user.ID, string(user.Role), h.cfg.TokenExpires)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to generate token")
	}

	return c.JSON(fiber.Map{
		"user":        user,
		"accessToken": token,
	})
}

// Profile returns the authenticated account.
func (h *AuthHandler) Profile(c *fiber.Ctx) error {
	userID, ok := middleware.GetCurrentUserID(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "missing authentication")
	}

	user, err := h.users.GetByID(userID)
	if err != nil {
		return translateRepoError(err)
	}

	return c.JSON(user)
}
