package models

import (
	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
)

type Product struct {
	BaseModel
	Name             string            `json:"name"`
	NameAr           string            `json:"nameAr,omitempty"`
	Slug             string            `gorm:"uniqueIndex" json:"slug"`
	Description      string            `json:"description,omitempty"`
	ShortDescription string            `json:"shortDescription,omitempty"`
	SKU              *string           `gorm:"uniqueIndex" json:"sku,omitempty"`
	Image            string            `json:"image,omitempty"`
	Images           pq.StringArray    `gorm:"type:text[]" json:"images,omitempty"`
	Specifications   datatypes.JSONMap `json:"specifications,omitempty"`
	IsFeatured       bool              `json:"isFeatured"`
	IsActive         bool              `json:"isActive"`
	SortOrder        int               `json:"sortOrder"`

	CategoryID *uuid.UUID `gorm:"type:uuid" json:"categoryId,omitempty"`
	Category   *Category  `json:"category,omitempty"`
	BrandID    *uuid.UUID `gorm:"type:uuid" json:"brandId,omitempty"`
	Brand      *Brand     `json:"brand,omitempty"`
}
