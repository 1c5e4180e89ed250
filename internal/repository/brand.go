package repository

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/example/brandsbridge/internal/models"
)

const brandProductCount = "brands.*, (SELECT COUNT(*) FROM products WHERE products.brand_id = brands.id) AS product_count"

// BrandRepository manages brand reads and writes.
type BrandRepository struct {
	db *gorm.DB
}

// NewBrandRepository constructs BrandRepository.
func NewBrandRepository(db *gorm.DB) *BrandRepository {
	return &BrandRepository{db: db}
}

// BrandListOptions narrows a brand listing. A nil Featured means no
// constraint on the flag.
type BrandListOptions struct {
	IncludeInactive bool
	Featured        *bool
}

// List returns brands sorted by sortOrder, each with its product count.
func (r *BrandRepository) List(opts BrandListOptions) ([]models.Brand, error) {
	query := r.db.Model(&models.Brand{}).Select(brandProductCount)
	if !opts.IncludeInactive {
		query = query.Where("is_active = ?", true)
	}
	if opts.Featured != nil {
		query = query.Where("is_featured = ?", *opts.Featured)
	}

	var brands []models.Brand
	if err := query.Order("sort_order ASC, created_at ASC").Find(&brands).Error; err != nil {
		return nil, err
	}
	return brands, nil
}

// ListFeatured returns up to limit active featured brands.
func (r *BrandRepository) ListFeatured(limit int) ([]models.Brand, error) {
	var brands []models.Brand
	err := r.db.Model(&models.Brand{}).Select(brandProductCount).
		Where("is_active = ? AND is_featured = ?", true, true).
		Order("sort_order ASC, created_at ASC").
		Limit(limit).
		Find(&brands).Error
	if err != nil {
		return nil, err
	}
	return brands, nil
}

// GetByID loads one brand with its active products.
func (r *BrandRepository) GetByID(id uuid.UUID) (models.Brand, error) {
	return r.getOne("id = ?", id)
}

// GetBySlug loads one brand with its active products.
func (r *BrandRepository) GetBySlug(slug string) (models.Brand, error) {
	return r.getOne("slug = ?", slug)
}

func (r *BrandRepository) getOne(cond string, value interface{}) (models.Brand, error) {
	var brand models.Brand
	err := r.db.Model(&models.Brand{}).Select(brandProductCount).
		Preload("Products", activeProductsScope).
		Preload("Products.Category").
		First(&brand, cond, value).Error
	if err != nil {
		return models.Brand{}, notFound("brand", err)
	}
	return brand, nil
}

// Create inserts a brand after checking slug uniqueness.
func (r *BrandRepository) Create(brand *models.Brand) error {
	taken, err := r.slugTaken(brand.Slug, uuid.Nil)
	if err != nil {
		return err
	}
	if taken {
		return duplicateErr("brand", "slug")
	}
	return r.db.Create(brand).Error
}

// Update applies the provided columns to an existing brand.
func (r *BrandRepository) Update(id uuid.UUID, updates map[string]interface{}) (models.Brand, error) {
	if _, err := r.GetByID(id); err != nil {
		return models.Brand{}, err
	}

	if slug, ok := updates["slug"].(string); ok {
		taken, err := r.slugTaken(slug, id)
		if err != nil {
			return models.Brand{}, err
		}
		if taken {
			return models.Brand{}, duplicateErr("brand", "slug")
		}
	}

	if err := r.db.Model(&models.Brand{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		return models.Brand{}, err
	}
	return r.GetByID(id)
}

// ToggleActive atomically flips the visibility flag.
func (r *BrandRepository) ToggleActive(id uuid.UUID) (models.Brand, error) {
	return r.toggle(id, "is_active")
}

// ToggleFeatured atomically flips the promotion flag.
func (r *BrandRepository) ToggleFeatured(id uuid.UUID) (models.Brand, error) {
	return r.toggle(id, "is_featured")
}

func (r *BrandRepository) toggle(id uuid.UUID, column string) (models.Brand, error) {
	if _, err := r.GetByID(id); err != nil {
		return models.Brand{}, err
	}
	updates := map[string]interface{}{column: gorm.Expr("NOT " + column)}
	if err := r.db.Model(&models.Brand{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		return models.Brand{}, err
	}
	return r.GetByID(id)
}

// Delete removes a brand unless products still reference it.
func (r *BrandRepository) Delete(id uuid.UUID) error {
	if _, err := r.GetByID(id); err != nil {
		return err
	}

	var dependents int64
	if err := r.db.Model(&models.Product{}).Where("brand_id = ?", id).Count(&dependents).Error; err != nil {
		return err
	}
	if dependents > 0 {
		return &ConflictError{Message: fmt.Sprintf("brand still has %d products; reassign or delete them first", dependents)}
	}

	return r.db.Delete(&models.Brand{}, "id = ?", id).Error
}

func (r *BrandRepository) slugTaken(slug string, exclude uuid.UUID) (bool, error) {
	query := r.db.Model(&models.Brand{}).Where("slug = ?", slug)
	if exclude != uuid.Nil {
		query = query.Where("id <> ?", exclude)
	}
	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
