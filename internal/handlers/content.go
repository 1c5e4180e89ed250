package handlers

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/example/brandsbridge/internal/cache"
	"github.com/example/brandsbridge/internal/models"
	"github.com/example/brandsbridge/internal/repository"
	"github.com/example/brandsbridge/internal/utils"
)

const contentCacheTTL = 5 * time.Minute

// ContentHandler manages editable content blocks, settings and the
// display-only home page records.
type ContentHandler struct {
	repo  *repository.ContentRepository
	cache *cache.Cache
}

// NewContentHandler constructs ContentHandler.
func NewContentHandler(repo *repository.ContentRepository, cache *cache.Cache) *ContentHandler {
	return &ContentHandler{repo: repo, cache: cache}
}

// List returns content rows, optionally filtered by section.
func (h *ContentHandler) List(c *fiber.Ctx) error {
	rows, err := h.repo.List(c.Query("section"))
	if err != nil {
		return err
	}
	return c.JSON(rows)
}

// Public returns the content table folded into a key -> value map for
// the public site. Cached for a few minutes.
func (h *ContentHandler) Public(c *fiber.Ctx) error {
	var cached map[string]repository.ContentValue
	if found, err := h.cache.GetJSON(c.Context(), "content:public", &cached); err == nil && found {
		return c.JSON(cached)
	}

	folded, err := h.repo.PublicContent()
	if err != nil {
		return err
	}
	if err := h.cache.SetJSON(c.Context(), "content:public", folded, contentCacheTTL); err != nil {
		log.Printf("cache: content:public set failed: %v", err)
	}
	return c.JSON(folded)
}

// GetByKey returns a single content row.
func (h *ContentHandler) GetByKey(c *fiber.Ctx) error {
	content, err := h.repo.GetByKey(c.Params("key"))
	if err != nil {
		return translateRepoError(err)
	}
	return c.JSON(content)
}

type contentRequest struct {
	Key     string `json:"key" validate:"required"`
	Type    string `json:"type"`
	Value   string `json:"value" validate:"required"`
	ValueAr string `json:"valueAr"`
	Section string `json:"section"`
}

// Create persists a new content row. 409 when the key is taken.
func (h *ContentHandler) Create(c *fiber.Ctx) error {
	var req contentRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if err := utils.ValidateStruct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, utils.FormatValidationError(err))
	}

	content := models.Content{
		Key:     req.Key,
		Type:    models.ContentType(req.Type),
		Value:   req.Value,
		ValueAr: req.ValueAr,
		Section: req.Section,
	}
	if content.Type == "" {
		content.Type = models.ContentTypeText
	}

	if err := h.repo.Create(&content); err != nil {
		return translateRepoError(err)
	}
	h.invalidateContent(c)
	return c.Status(fiber.StatusCreated).JSON(content)
}

type contentUpdateRequest struct {
	Type    *string `json:"type"`
	Value   *string `json:"value"`
	ValueAr *string `json:"valueAr"`
	Section *string `json:"section"`
}

func (r contentUpdateRequest) updates() map[string]interface{} {
	updates := map[string]interface{}{}
	if r.Type != nil {
		updates["type"] = *r.Type
	}
	if r.Value != nil {
		updates["value"] = *r.Value
	}
	if r.ValueAr != nil {
		updates["value_ar"] = *r.ValueAr
	}
	if r.Section != nil {
		updates["section"] = *r.Section
	}
	return updates
}

// UpdateByKey applies a partial update to a content row.
func (h *ContentHandler) UpdateByKey(c *fiber.Ctx) error {
	var req contentUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	content, err := h.repo.UpdateByKey(c.Params("key"), req.updates())
	if err != nil {
		return translateRepoError(err)
	}
	h.invalidateContent(c)
	return c.JSON(content)
}

// DeleteByKey removes a content row.
func (h *ContentHandler) DeleteByKey(c *fiber.Ctx) error {
	if err := h.repo.DeleteByKey(c.Params("key")); err != nil {
		return translateRepoError(err)
	}
	h.invalidateContent(c)
	return c.JSON(fiber.Map{"message": "Content deleted successfully"})
}

// Settings returns setting rows, optionally filtered by group.
func (h *ContentHandler) Settings(c *fiber.Ctx) error {
	rows, err := h.repo.Settings(c.Query("group"))
	if err != nil {
		return err
	}
	return c.JSON(rows)
}

// SettingsMap returns settings folded into a key -> value map.
// Cached per group for a few minutes.
func (h *ContentHandler) SettingsMap(c *fiber.Ctx) error {
	group := c.Query("group")
	cacheKey := "settings:" + group

	var cached map[string]string
	if found, err := h.cache.GetJSON(c.Context(), cacheKey, &cached); err == nil && found {
		return c.JSON(cached)
	}

	folded, err := h.repo.SettingsMap(group)
	if err != nil {
		return err
	}
	if err := h.cache.SetJSON(c.Context(), cacheKey, folded, contentCacheTTL); err != nil {
		log.Printf("cache: %s set failed: %v", cacheKey, err)
	}
	return c.JSON(folded)
}

type settingRequest struct {
	Value string `json:"value" validate:"required"`
}

// UpsertSetting creates or overwrites a setting value by key.
func (h *ContentHandler) UpsertSetting(c *fiber.Ctx) error {
	var req settingRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if err := utils.ValidateStruct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, utils.FormatValidationError(err))
	}

	setting, err := h.repo.UpsertSetting(c.Params("key"), req.Value)
	if err != nil {
		return err
	}
	if err := h.cache.DeletePattern(c.Context(), "settings:*"); err != nil {
		log.Printf("cache: settings invalidation failed: %v", err)
	}
	return c.JSON(setting)
}

// Statistics returns the active home page statistics.
func (h *ContentHandler) Statistics(c *fiber.Ctx) error {
	rows, err := h.repo.Statistics()
	if err != nil {
		return err
	}
	return c.JSON(rows)
}

// Values returns the active company value cards.
func (h *ContentHandler) Values(c *fiber.Ctx) error {
	rows, err := h.repo.Values()
	if err != nil {
		return err
	}
	return c.JSON(rows)
}

// Services returns the active service cards.
func (h *ContentHandler) Services(c *fiber.Ctx) error {
	rows, err := h.repo.Services()
	if err != nil {
		return err
	}
	return c.JSON(rows)
}

// Partners returns active partners, optionally filtered by type.
func (h *ContentHandler) Partners(c *fiber.Ctx) error {
	partnerType := models.PartnerType(c.Query("type"))
	rows, err := h.repo.Partners(partnerType)
	if err != nil {
		return err
	}
	return c.JSON(rows)
}

func (h *ContentHandler) invalidateContent(c *fiber.Ctx) {
	if err := h.cache.Delete(c.Context(), "content:public"); err != nil {
		log.Printf("cache: content invalidation failed: %v", err)
	}
}
