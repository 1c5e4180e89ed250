package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/example/brandsbridge/internal/middleware"
	"github.com/example/brandsbridge/internal/models"
	"github.com/example/brandsbridge/internal/repository"
	"github.com/example/brandsbridge/internal/utils"
)

// UserHandler manages admin user accounts.
type UserHandler struct {
	repo *repository.UserRepository
}

// NewUserHandler constructs UserHandler.
func NewUserHandler(repo *repository.UserRepository) *UserHandler {
	return &UserHandler{repo: repo}
}

// List returns all admin users.
func (h *UserHandler) List(c *fiber.Ctx) error {
	users, err := h.repo.List()
	if err != nil {
		return err
	}
	return c.JSON(users)
}

// Get returns a single user by ID.
func (h *UserHandler) Get(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	user, err := h.repo.GetByID(id)
	if err != nil {
		return translateRepoError(err)
	}
	return c.JSON(user)
}

type userRequest struct {
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=8"`
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
	Role      string `json:"role"`
	IsActive  *bool  `json:"isActive"`
}

// Create registers a new admin user. 409 when the email is taken.
func (h *UserHandler) Create(c *fiber.Ctx) error {
	var req userRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if err := utils.ValidateStruct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, utils.FormatValidationError(err))
	}
	role := models.UserRole(req.Role)
	if req.Role == "" {
		role = models.RoleEditor
	} else if !models.ValidUserRole(role) {
		return fiber.NewError(fiber.StatusBadRequest, "invalid role")
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		return err
	}

	user := models.User{
		Email:     req.Email,
		Password:  hashed,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Role:      role,
		IsActive:  true,
	}
	if req.IsActive != nil {
		user.IsActive = *req.IsActive
	}

	if err := h.repo.Create(&user); err != nil {
		return translateRepoError(err)
	}
	return c.Status(fiber.StatusCreated).JSON(user)
}

type userUpdateRequest struct {
	Email     *string `json:"email"`
	Password  *string `json:"password"`
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
	Role      *string `json:"role"`
	IsActive  *bool   `json:"isActive"`
}

// Update applies a partial update to a user. A new password is re-hashed.
func (h *UserHandler) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	var req userUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	updates := map[string]interface{}{}
	if req.Email != nil {
		updates["email"] = *req.Email
	}
	if req.Password != nil {
		if len(*req.Password) < 8 {
			return fiber.NewError(fiber.StatusBadRequest, "password must be at least 8 characters")
		}
		hashed, err := utils.HashPassword(*req.Password)
		if err != nil {
			return err
		}
		updates["password"] = hashed
	}
	if req.FirstName != nil {
		updates["first_name"] = *req.FirstName
	}
	if req.LastName != nil {
		updates["last_name"] = *req.LastName
	}
	if req.Role != nil {
		role := models.UserRole(*req.Role)
		if !models.ValidUserRole(role) {
			return fiber.NewError(fiber.StatusBadRequest, "invalid role")
		}
		updates["role"] = role
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}

	user, err := h.repo.Update(id, updates)
	if err != nil {
		return translateRepoError(err)
	}
	return c.JSON(user)
}

// ToggleActive flips a user's active flag. Self-demotion is blocked.
func (h *UserHandler) ToggleActive(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}
	if current, ok := middleware.GetCurrentUserID(c); ok && current == id {
		return fiber.NewError(fiber.StatusBadRequest, "cannot deactivate your own account")
	}

	user, err := h.repo.ToggleActive(id)
	if err != nil {
		return translateRepoError(err)
	}
	return c.JSON(user)
}

// Delete removes a user. Self-deletion is blocked.
func (h *UserHandler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}
	if current, ok := middleware.GetCurrentUserID(c); ok && current == id {
		return fiber.NewError(fiber.StatusBadRequest, "cannot delete your own account")
	}

	if err := h.repo.Delete(id); err != nil {
		return translateRepoError(err)
	}
	return c.JSON(fiber.Map{"message": "User deleted successfully"})
}
