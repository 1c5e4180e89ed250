package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/example/brandsbridge/internal/models"
	"github.com/example/brandsbridge/internal/repository"
	"github.com/example/brandsbridge/internal/services"
	"github.com/example/brandsbridge/internal/utils"
)

// InquiryHandler manages contact form submissions and their admin workflow.
type InquiryHandler struct {
	repo     *repository.InquiryRepository
	telegram *services.TelegramService
}

// NewInquiryHandler constructs InquiryHandler.
func NewInquiryHandler(repo *repository.InquiryRepository, telegram *services.TelegramService) *InquiryHandler {
	return &InquiryHandler{repo: repo, telegram: telegram}
}

type inquiryRequest struct {
	Type      string `json:"type"`
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Phone     string `json:"phone"`
	Company   string `json:"company"`
	Country   string `json:"country"`
	Subject   string `json:"subject"`
	Message   string `json:"message" validate:"required"`
}

// Create accepts a public contact form submission and notifies the admin
// channel. Notification failures are logged, never surfaced.
func (h *InquiryHandler) Create(c *fiber.Ctx) error {
	var req inquiryRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if err := utils.ValidateStruct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, utils.FormatValidationError(err))
	}
	if req.Type != "" && !models.ValidInquiryType(models.InquiryType(req.Type)) {
		return fiber.NewError(fiber.StatusBadRequest, "invalid inquiry type")
	}

	inquiry := models.Inquiry{
		Type:      models.InquiryType(req.Type),
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
		Company:   req.Company,
		Country:   req.Country,
		Subject:   req.Subject,
		Message:   req.Message,
	}
	if err := h.repo.Create(&inquiry); err != nil {
		return err
	}

	if h.telegram != nil {
		go func(saved models.Inquiry) {
			err := h.telegram.NotifyNewInquiry(services.InquiryNotification{
				Type:      string(saved.Type),
				FirstName: saved.FirstName,
				LastName:  saved.LastName,
				Email:     saved.Email,
				Phone:     saved.Phone,
				Company:   saved.Company,
				Country:   saved.Country,
				Subject:   saved.Subject,
				Message:   saved.Message,
			})
			if err != nil {
				log.Printf("telegram: inquiry notification failed: %v", err)
			}
		}(inquiry)
	}

	return c.Status(fiber.StatusCreated).JSON(inquiry)
}

// List returns a paginated inquiry page, newest first.
// Supports search, type and status query filters.
func (h *InquiryHandler) List(c *fiber.Ctx) error {
	filter := repository.InquiryFilter{
		Search:     c.Query("search"),
		Pagination: utils.ParsePagination(c),
	}
	if raw := c.Query("type"); raw != "" {
		t := models.InquiryType(raw)
		if !models.ValidInquiryType(t) {
			return fiber.NewError(fiber.StatusBadRequest, "invalid inquiry type")
		}
		filter.Type = t
	}
	if raw := c.Query("status"); raw != "" {
		s := models.InquiryStatus(raw)
		if !models.ValidInquiryStatus(s) {
			return fiber.NewError(fiber.StatusBadRequest, "invalid inquiry status")
		}
		filter.Status = s
	}

	inquiries, meta, err := h.repo.List(filter)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": inquiries, "meta": meta})
}

// Stats returns aggregate inquiry counts for the admin dashboard.
func (h *InquiryHandler) Stats(c *fiber.Ctx) error {
	stats, err := h.repo.Stats()
	if err != nil {
		return err
	}
	return c.JSON(stats)
}

// Get returns a single inquiry by ID.
func (h *InquiryHandler) Get(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	inquiry, err := h.repo.GetByID(id)
	if err != nil {
		return translateRepoError(err)
	}
	return c.JSON(inquiry)
}

type inquiryStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// UpdateStatus moves an inquiry through its workflow. Transitioning to
// RESPONDED stamps respondedAt.
func (h *InquiryHandler) UpdateStatus(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	var req inquiryStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if err := utils.ValidateStruct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, utils.FormatValidationError(err))
	}
	status := models.InquiryStatus(req.Status)
	if !models.ValidInquiryStatus(status) {
		return fiber.NewError(fiber.StatusBadRequest, "invalid inquiry status")
	}

	inquiry, err := h.repo.UpdateStatus(id, status)
	if err != nil {
		return translateRepoError(err)
	}
	return c.JSON(inquiry)
}

type inquiryNotesRequest struct {
	Notes string `json:"notes"`
}

// UpdateNotes replaces the internal notes on an inquiry.
func (h *InquiryHandler) UpdateNotes(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	var req inquiryNotesRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	inquiry, err := h.repo.UpdateNotes(id, req.Notes)
	if err != nil {
		return translateRepoError(err)
	}
	return c.JSON(inquiry)
}

// Delete removes an inquiry.
func (h *InquiryHandler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	if err := h.repo.Delete(id); err != nil {
		return translateRepoError(err)
	}
	return c.JSON(fiber.Map{"message": "Inquiry deleted successfully"})
}
