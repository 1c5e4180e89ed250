package utils

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
)

const (
	// DefaultLimit is the page size when the query omits one.
	DefaultLimit = 20
	// FeaturedLimit is the default for the /featured shortcut lists.
	FeaturedLimit = 8
)

// Pagination holds pagination parameters.
type Pagination struct {
	Page   int
	Limit  int
	Offset int
}

// ListMeta describes the full result set a page was cut from.
type ListMeta struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"totalPages"`
}

// ParsePagination reads page and limit query params with sane defaults.
func ParsePagination(c *fiber.Ctx) Pagination {
	return NewPagination(
		parseInt(c.Query("page", "1"), 1),
		parseInt(c.Query("limit", ""), DefaultLimit),
	)
}

// NewPagination clamps page and limit to ≥ 1 and derives the offset.
func NewPagination(page, limit int) Pagination {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 {
		limit = DefaultLimit
	}
	return Pagination{
		Page:   page,
		Limit:  limit,
		Offset: (page - 1) * limit,
	}
}

// Meta builds the response metadata for a total row count.
func (p Pagination) Meta(total int64) ListMeta {
	totalPages := int((total + int64(p.Limit) - 1) / int64(p.Limit))
	return ListMeta{
		Total:      total,
		Page:       p.Page,
		Limit:      p.Limit,
		TotalPages: totalPages,
	}
}

// ParseLimit reads a bare limit query param for shortcut lists.
func ParseLimit(c *fiber.Ctx, fallback int) int {
	limit := parseInt(c.Query("limit", ""), fallback)
	if limit <= 0 {
		return fallback
	}
	return limit
}

func parseInt(value string, fallback int) int {
	if parsed, err := strconv.Atoi(value); err == nil {
		return parsed
	}
	return fallback
}
