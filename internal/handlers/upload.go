package handlers

import (
	"errors"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/example/brandsbridge/internal/storage"
)

// UploadHandler manages admin file uploads.
type UploadHandler struct {
	store storage.Storage
}

// NewUploadHandler constructs UploadHandler.
func NewUploadHandler(store storage.Storage) *UploadHandler {
	return &UploadHandler{store: store}
}

var allowedUploadExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
	".svg":  true,
	".pdf":  true,
}

// Upload stores a multipart file under a generated name and returns its URL.
func (h *UploadHandler) Upload(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "file is required")
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if !allowedUploadExts[ext] {
		return fiber.NewError(fiber.StatusBadRequest, "file type not allowed")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "could not read file")
	}
	defer file.Close()

	filename := uuid.New().String() + ext
	contentType := fileHeader.Header.Get("Content-Type")

	url, err := h.store.Save(c.Context(), filename, file, fileHeader.Size, contentType)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"filename": filename,
		"url":      url,
		"size":     fileHeader.Size,
	})
}

// List returns the stored file names. Storage errors degrade to an
// empty list so the admin UI keeps working.
func (h *UploadHandler) List(c *fiber.Ctx) error {
	files, err := h.store.List(c.Context())
	if err != nil {
		files = []string{}
	}
	return c.JSON(files)
}

// Info returns metadata for a stored file.
func (h *UploadHandler) Info(c *fiber.Ctx) error {
	filename := c.Params("filename")
	if strings.Contains(filename, "..") || strings.ContainsAny(filename, "/\\") {
		return fiber.NewError(fiber.StatusBadRequest, "invalid filename")
	}

	info, err := h.store.Stat(c.Context(), filename)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "file not found")
		}
		return err
	}
	return c.JSON(info)
}

// Delete removes a stored file by name.
func (h *UploadHandler) Delete(c *fiber.Ctx) error {
	filename := c.Params("filename")
	if strings.Contains(filename, "..") || strings.ContainsAny(filename, "/\\") {
		return fiber.NewError(fiber.StatusBadRequest, "invalid filename")
	}

	if err := h.store.Delete(c.Context(), filename); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "file not found")
		}
		return err
	}
	return c.JSON(fiber.Map{"message": "File deleted successfully"})
}
