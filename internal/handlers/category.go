package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/example/brandsbridge/internal/models"
	"github.com/example/brandsbridge/internal/repository"
	"github.com/example/brandsbridge/internal/utils"
)

// CategoryHandler manages category endpoints.
type CategoryHandler struct {
	repo *repository.CategoryRepository
}

// NewCategoryHandler constructs CategoryHandler.
func NewCategoryHandler(repo *repository.CategoryRepository) *CategoryHandler {
	return &CategoryHandler{repo: repo}
}

// List returns all categories, active-only unless includeInactive is set.
func (h *CategoryHandler) List(c *fiber.Ctx) error {
	categories, err := h.repo.List(repository.CategoryListOptions{
		IncludeInactive: c.QueryBool("includeInactive", false),
	})
	if err != nil {
		return err
	}
	return c.JSON(categories)
}

// GetBySlug returns a single category with its active products.
func (h *CategoryHandler) GetBySlug(c *fiber.Ctx) error {
	category, err := h.repo.GetBySlug(c.Params("slug"))
	if err != nil {
		return translateRepoError(err)
	}
	return c.JSON(category)
}

// Get returns a single category by ID.
func (h *CategoryHandler) Get(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	category, err := h.repo.GetByID(id)
	if err != nil {
		return translateRepoError(err)
	}
	return c.JSON(category)
}

type categoryRequest struct {
	Name        string `json:"name" validate:"required"`
	NameAr      string `json:"nameAr"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
	Image       string `json:"image"`
	Icon        string `json:"icon"`
	SortOrder   *int   `json:"sortOrder"`
	IsActive    *bool  `json:"isActive"`
}

// Create persists a new category. 409 when the slug is taken.
func (h *CategoryHandler) Create(c *fiber.Ctx) error {
	var req categoryRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if err := utils.ValidateStruct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, utils.FormatValidationError(err))
	}

	category := models.Category{
		Name:        req.Name,
		NameAr:      req.NameAr,
		Slug:        utils.EnsureSlug(req.Slug, req.Name),
		Description: req.Description,
		Image:       req.Image,
		Icon:        req.Icon,
		IsActive:    true,
	}
	if req.SortOrder != nil {
		category.SortOrder = *req.SortOrder
	}
	if req.IsActive != nil {
		category.IsActive = *req.IsActive
	}

	if err := h.repo.Create(&category); err != nil {
		return translateRepoError(err)
	}
	return c.Status(fiber.StatusCreated).JSON(category)
}

type categoryUpdateRequest struct {
	Name        *string `json:"name"`
	NameAr      *string `json:"nameAr"`
	Slug        *string `json:"slug"`
	Description *string `json:"description"`
	Image       *string `json:"image"`
	Icon        *string `json:"icon"`
	SortOrder   *int    `json:"sortOrder"`
	IsActive    *bool   `json:"isActive"`
}

func (r categoryUpdateRequest) updates() map[string]interface{} {
	updates := map[string]interface{}{}
	if r.Name != nil {
		updates["name"] = *r.Name
	}
	if r.NameAr != nil {
		updates["name_ar"] = *r.NameAr
	}
	if r.Slug != nil {
		updates["slug"] = *r.Slug
	}
	if r.Description != nil {
		updates["description"] = *r.Description
	}
	if r.Image != nil {
		updates["image"] = *r.Image
	}
	if r.Icon != nil {
		updates["icon"] = *r.Icon
	}
	if r.SortOrder != nil {
		updates["sort_order"] = *r.SortOrder
	}
	if r.IsActive != nil {
		updates["is_active"] = *r.IsActive
	}
	return updates
}

// Update applies a partial update to a category.
func (h *CategoryHandler) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	var req categoryUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	category, err := h.repo.Update(id, req.updates())
	if err != nil {
		return translateRepoError(err)
	}
	return c.JSON(category)
}

// ToggleActive flips the category's visibility flag.
func (h *CategoryHandler) ToggleActive(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	category, err := h.repo.ToggleActive(id)
	if err != nil {
		return translateRepoError(err)
	}
	return c.JSON(category)
}

// Delete removes a category; blocked while products reference it.
func (h *CategoryHandler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	if err := h.repo.Delete(id); err != nil {
		return translateRepoError(err)
	}
	return c.JSON(fiber.Map{"message": "Category deleted successfully"})
}
