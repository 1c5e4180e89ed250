package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/example/brandsbridge/internal/models"
	"github.com/example/brandsbridge/internal/repository"
	"github.com/example/brandsbridge/internal/utils"
)

// BrandHandler manages brand endpoints.
type BrandHandler struct {
	repo *repository.BrandRepository
}

// NewBrandHandler constructs BrandHandler.
func NewBrandHandler(repo *repository.BrandRepository) *BrandHandler {
	return &BrandHandler{repo: repo}
}

// List returns brands, optionally filtered by featured flag.
func (h *BrandHandler) List(c *fiber.Ctx) error {
	opts := repository.BrandListOptions{
		IncludeInactive: c.QueryBool("includeInactive", false),
	}
	if c.Query("featured") != "" {
		featured := c.QueryBool("featured")
		opts.Featured = &featured
	}

	brands, err := h.repo.List(opts)
	if err != nil {
		return err
	}
	return c.JSON(brands)
}

// ListFeatured returns the featured brands for the home page.
func (h *BrandHandler) ListFeatured(c *fiber.Ctx) error {
	limit := utils.ParseLimit(c, utils.FeaturedLimit)
	brands, err := h.repo.ListFeatured(limit)
	if err != nil {
		return err
	}
	return c.JSON(brands)
}

// GetBySlug returns a single brand with its active products.
func (h *BrandHandler) GetBySlug(c *fiber.Ctx) error {
	brand, err := h.repo.GetBySlug(c.Params("slug"))
	if err != nil {
		return translateRepoError(err)
	}
	return c.JSON(brand)
}

// Get returns a single brand by ID.
func (h *BrandHandler) Get(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	brand, err := h.repo.GetByID(id)
	if err != nil {
		return translateRepoError(err)
	}
	return c.JSON(brand)
}

type brandRequest struct {
	Name        string `json:"name" validate:"required"`
	NameAr      string `json:"nameAr"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
	Logo        string `json:"logo"`
	Website     string `json:"website"`
	Country     string `json:"country"`
	SortOrder   *int   `json:"sortOrder"`
	IsFeatured  *bool  `json:"isFeatured"`
	IsActive    *bool  `json:"isActive"`
}

// Create persists a new brand. 409 when the slug is taken.
func (h *BrandHandler) Create(c *fiber.Ctx) error {
	var req brandRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if err := utils.ValidateStruct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, utils.FormatValidationError(err))
	}

	brand := models.Brand{
		Name:        req.Name,
		NameAr:      req.NameAr,
		Slug:        utils.EnsureSlug(req.Slug, req.Name),
		Description: req.Description,
		Logo:        req.Logo,
		Website:     req.Website,
		Country:     req.Country,
		IsActive:    true,
	}
	if req.SortOrder != nil {
		brand.SortOrder = *req.SortOrder
	}
	if req.IsFeatured != nil {
		brand.IsFeatured = *req.IsFeatured
	}
	if req.IsActive != nil {
		brand.IsActive = *req.IsActive
	}

	if err := h.repo.Create(&brand); err != nil {
		return translateRepoError(err)
	}
	return c.Status(fiber.StatusCreated).JSON(brand)
}

type brandUpdateRequest struct {
	Name        *string `json:"name"`
	NameAr      *string `json:"nameAr"`
	Slug        *string `json:"slug"`
	Description *string `json:"description"`
	Logo        *string `json:"logo"`
	Website     *string `json:"website"`
	Country     *string `json:"country"`
	SortOrder   *int    `json:"sortOrder"`
	IsFeatured  *bool   `json:"isFeatured"`
	IsActive    *bool   `json:"isActive"`
}

func (r brandUpdateRequest) updates() map[string]interface{} {
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
	if r.Logo != nil {
		updates["logo"] = *r.Logo
	}
	if r.Website != nil {
		updates["website"] = *r.Website
	}
	if r.Country != nil {
		updates["country"] = *r.Country
	}
	if r.SortOrder != nil {
		updates["sort_order"] = *r.SortOrder
	}
	if r.IsFeatured != nil {
		updates["is_featured"] = *r.IsFeatured
	}
	if r.IsActive != nil {
		updates["is_active"] = *r.IsActive
	}
	return updates
}

// Update applies a partial update to a brand.
func (h *BrandHandler) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	var req brandUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	brand, err := h.repo.Update(id, req.updates())
	if err != nil {
		return translateRepoError(err)
	}
	return c.JSON(brand)
}

// ToggleActive flips the brand's visibility flag.
func (h *BrandHandler) ToggleActive(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	brand, err := h.repo.ToggleActive(id)
	if err != nil {
		return translateRepoError(err)
	}
	return c.JSON(brand)
}

// ToggleFeatured flips the brand's home-page flag.
func (h *BrandHandler) ToggleFeatured(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	brand, err := h.repo.ToggleFeatured(id)
	if err != nil {
		return translateRepoError(err)
	}
	return c.JSON(brand)
}

// Delete removes a brand; blocked while products reference it.
func (h *BrandHandler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	if err := h.repo.Delete(id); err != nil {
		return translateRepoError(err)
	}
	return c.JSON(fiber.Map{"message": "Brand deleted successfully"})
}
