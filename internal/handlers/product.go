package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"

	"github.com/example/brandsbridge/internal/models"
	"github.com/example/brandsbridge/internal/repository"
	"github.com/example/brandsbridge/internal/utils"
)

// ProductHandler manages product endpoints.
type ProductHandler struct {
	repo *repository.ProductRepository
}

// NewProductHandler constructs ProductHandler.
func NewProductHandler(repo *repository.ProductRepository) *ProductHandler {
	return &ProductHandler{repo: repo}
}

// List returns a paginated product page with category/brand preloaded.
// Supports search, categoryId, brandId and featured query filters.
func (h *ProductHandler) List(c *fiber.Ctx) error {
	filter := repository.ProductFilter{
		Search:          c.Query("search"),
		IncludeInactive: c.QueryBool("includeInactive", false),
		Pagination:      utils.ParsePagination(c),
	}
	if raw := c.Query("categoryId"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid categoryId")
		}
		filter.CategoryID = &id
	}
	if raw := c.Query("brandId"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid brandId")
		}
		filter.BrandID = &id
	}
	if c.Query("featured") != "" {
		featured := c.QueryBool("featured")
		filter.Featured = &featured
	}

	products, meta, err := h.repo.List(filter)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": products, "meta": meta})
}

// ListFeatured returns the featured products for the home page.
func (h *ProductHandler) ListFeatured(c *fiber.Ctx) error {
	limit := utils.ParseLimit(c, utils.FeaturedLimit)
	products, err := h.repo.ListFeatured(limit)
	if err != nil {
		return err
	}
	return c.JSON(products)
}

// Stats returns aggregate product counts for the admin dashboard.
func (h *ProductHandler) Stats(c *fiber.Ctx) error {
	stats, err := h.repo.Stats()
	if err != nil {
		return err
	}
	return c.JSON(stats)
}

// ListByCategory returns active products belonging to a category.
func (h *ProductHandler) ListByCategory(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("categoryId"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid categoryId")
	}

	products, err := h.repo.ListByCategory(id, utils.ParseLimit(c, 0))
	if err != nil {
		return err
	}
	return c.JSON(products)
}

// ListByBrand returns active products belonging to a brand.
func (h *ProductHandler) ListByBrand(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("brandId"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid brandId")
	}

	products, err := h.repo.ListByBrand(id, utils.ParseLimit(c, 0))
	if err != nil {
		return err
	}
	return c.JSON(products)
}

// GetBySlug returns a single product with its category and brand.
func (h *ProductHandler) GetBySlug(c *fiber.Ctx) error {
	product, err := h.repo.GetBySlug(c.Params("slug"))
	if err != nil {
		return translateRepoError(err)
	}
	return c.JSON(product)
}

// Get returns a single product by ID.
func (h *ProductHandler) Get(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	product, err := h.repo.GetByID(id)
	if err != nil {
		return translateRepoError(err)
	}
	return c.JSON(product)
}

type productRequest struct {
	Name             string                 `json:"name" validate:"required"`
	NameAr           string                 `json:"nameAr"`
	Slug             string                 `json:"slug"`
	Description      string                 `json:"description"`
	ShortDescription string                 `json:"shortDescription"`
	SKU              string                 `json:"sku"`
	Image            string                 `json:"image"`
	Images           []string               `json:"images"`
	Specifications   map[string]interface{} `json:"specifications"`
	IsFeatured       *bool                  `json:"isFeatured"`
	IsActive         *bool                  `json:"isActive"`
	SortOrder        *int                   `json:"sortOrder"`
	CategoryID       *uuid.UUID             `json:"categoryId"`
	BrandID          *uuid.UUID             `json:"brandId"`
}

// Create persists a new product. 409 when the slug or SKU is taken.
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var req productRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if err := utils.ValidateStruct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, utils.FormatValidationError(err))
	}

	product := models.Product{
		Name:             req.Name,
		NameAr:           req.NameAr,
		Slug:             utils.EnsureSlug(req.Slug, req.Name),
		Description:      req.Description,
		ShortDescription: req.ShortDescription,
		Image:            req.Image,
		Images:           pq.StringArray(req.Images),
		Specifications:   datatypes.JSONMap(req.Specifications),
		IsActive:         true,
		CategoryID:       req.CategoryID,
		BrandID:          req.BrandID,
	}
	if req.SKU != "" {
		sku := req.SKU
		product.SKU = &sku
	}
	if req.IsFeatured != nil {
		product.IsFeatured = *req.IsFeatured
	}
	if req.IsActive != nil {
		product.IsActive = *req.IsActive
	}
	if req.SortOrder != nil {
		product.SortOrder = *req.SortOrder
	}

	if err := h.repo.Create(&product); err != nil {
		return translateRepoError(err)
	}
	return c.Status(fiber.StatusCreated).JSON(product)
}

type productUpdateRequest struct {
	Name             *string                `json:"name"`
	NameAr           *string                `json:"nameAr"`
	Slug             *string                `json:"slug"`
	Description      *string                `json:"description"`
	ShortDescription *string                `json:"shortDescription"`
	SKU              *string                `json:"sku"`
	Image            *string                `json:"image"`
	Images           []string               `json:"images"`
	Specifications   map[string]interface{} `json:"specifications"`
	IsFeatured       *bool                  `json:"isFeatured"`
	IsActive         *bool                  `json:"isActive"`
	SortOrder        *int                   `json:"sortOrder"`
	CategoryID       *uuid.UUID             `json:"categoryId"`
	BrandID          *uuid.UUID             `json:"brandId"`
}

func (r productUpdateRequest) updates() map[string]interface{} {
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
	if r.ShortDescription != nil {
		updates["short_description"] = *r.ShortDescription
	}
	if r.SKU != nil {
		if *r.SKU == "" {
			updates["sku"] = nil
		} else {
			updates["sku"] = *r.SKU
		}
	}
	if r.Image != nil {
		updates["image"] = *r.Image
	}
	if r.Images != nil {
		updates["images"] = pq.StringArray(r.Images)
	}
	if r.Specifications != nil {
		updates["specifications"] = datatypes.JSONMap(r.Specifications)
	}
	if r.IsFeatured != nil {
		updates["is_featured"] = *r.IsFeatured
	}
	if r.IsActive != nil {
		updates["is_active"] = *r.IsActive
	}
	if r.SortOrder != nil {
		updates["sort_order"] = *r.SortOrder
	}
	if r.CategoryID != nil {
		updates["category_id"] = *r.CategoryID
	}
	if r.BrandID != nil {
		updates["brand_id"] = *r.BrandID
	}
	return updates
}

// Update applies a partial update to a product.
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	var req productUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	product, err := h.repo.Update(id, req.updates())
	if err != nil {
		return translateRepoError(err)
	}
	return c.JSON(product)
}

// ToggleActive flips the product's visibility flag.
func (h *ProductHandler) ToggleActive(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	product, err := h.repo.ToggleActive(id)
	if err != nil {
		return translateRepoError(err)
	}
	return c.JSON(product)
}

// ToggleFeatured flips the product's home-page flag.
func (h *ProductHandler) ToggleFeatured(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	product, err := h.repo.ToggleFeatured(id)
	if err != nil {
		return translateRepoError(err)
	}
	return c.JSON(product)
}

// Delete removes a product.
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	if err := h.repo.Delete(id); err != nil {
		return translateRepoError(err)
	}
	return c.JSON(fiber.Map{"message": "Product deleted successfully"})
}
