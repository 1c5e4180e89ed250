package repository

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/example/brandsbridge/internal/models"
	"github.com/example/brandsbridge/internal/utils"
)

// ProductRepository manages product reads and writes.
type ProductRepository struct {
	db *gorm.DB
}

// NewProductRepository constructs ProductRepository.
func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

// ProductFilter narrows a product listing. Nil or zero fields mean
// "no constraint".
type ProductFilter struct {
	Search          string
	CategoryID      *uuid.UUID
	BrandID         *uuid.UUID
	Featured        *bool
	IncludeInactive bool
	Pagination      utils.Pagination
}

func (f ProductFilter) apply(query *gorm.DB) *gorm.DB {
	if !f.IncludeInactive {
		query = query.Where("is_active = ?", true)
	}
	if f.CategoryID != nil {
		query = query.Where("category_id = ?", *f.CategoryID)
	}
	if f.BrandID != nil {
		query = query.Where("brand_id = ?", *f.BrandID)
	}
	if f.Featured != nil {
		query = query.Where("is_featured = ?", *f.Featured)
	}
	if f.Search != "" {
		q := "%" + f.Search + "%"
		query = query.Where("name ILIKE ? OR description ILIKE ? OR sku ILIKE ?", q, q, q)
	}
	return query
}

// List returns one page of products plus metadata about the full match set.
func (r *ProductRepository) List(filter ProductFilter) ([]models.Product, utils.ListMeta, error) {
	query := filter.apply(r.db.Model(&models.Product{}))

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, utils.ListMeta{}, err
	}

	var products []models.Product
	err := query.Preload("Category").Preload("Brand").
		Order("sort_order ASC, created_at ASC").
		Limit(filter.Pagination.Limit).Offset(filter.Pagination.Offset).
		Find(&products).Error
	if err != nil {
		return nil, utils.ListMeta{}, err
	}

	return products, filter.Pagination.Meta(total), nil
}

// ListFeatured returns up to limit active featured products.
func (r *ProductRepository) ListFeatured(limit int) ([]models.Product, error) {
	var products []models.Product
	err := r.db.Where("is_active = ? AND is_featured = ?", true, true).
		Preload("Category").Preload("Brand").
		Order("sort_order ASC, created_at ASC").
		Limit(limit).
		Find(&products).Error
	return products, err
}

// ListByCategory returns active products of one category. A limit ≤ 0 means
// no limit.
func (r *ProductRepository) ListByCategory(categoryID uuid.UUID, limit int) ([]models.Product, error) {
	return r.listByRef("category_id = ?", categoryID, "Brand", limit)
}

// ListByBrand returns active products of one brand.
func (r *ProductRepository) ListByBrand(brandID uuid.UUID, limit int) ([]models.Product, error) {
	return r.listByRef("brand_id = ?", brandID, "Category", limit)
}

func (r *ProductRepository) listByRef(cond string, id uuid.UUID, preload string, limit int) ([]models.Product, error) {
	query := r.db.Where(cond, id).Where("is_active = ?", true).
		Preload(preload).
		Order("sort_order ASC, created_at ASC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	var products []models.Product
	err := query.Find(&products).Error
	return products, err
}

// GetByID loads one product with its category and brand.
func (r *ProductRepository) GetByID(id uuid.UUID) (models.Product, error) {
	return r.getOne("id = ?", id)
}

// GetBySlug loads one product with its category and brand.
func (r *ProductRepository) GetBySlug(slug string) (models.Product, error) {
	return r.getOne("slug = ?", slug)
}

func (r *ProductRepository) getOne(cond string, value interface{}) (models.Product, error) {
	var product models.Product
	err := r.db.Preload("Category").Preload("Brand").First(&product, cond, value).Error
	if err != nil {
		return models.Product{}, notFound("product", err)
	}
	return product, nil
}

// Create inserts a product after checking slug and, when present, SKU
// uniqueness. Both columns carry unique indexes as the backstop.
func (r *ProductRepository) Create(product *models.Product) error {
	taken, err := r.slugTaken(product.Slug, uuid.Nil)
	if err != nil {
		return err
	}
	if taken {
		return duplicateErr("product", "slug")
	}

	if product.SKU != nil && *product.SKU != "" {
		taken, err := r.skuTaken(*product.SKU, uuid.Nil)
		if err != nil {
			return err
		}
		if taken {
			return duplicateErr("product", "sku")
		}
	}

	return r.db.Create(product).Error
}

// Update applies the provided columns to an existing product, re-checking
// slug and SKU uniqueness against every other row.
func (r *ProductRepository) Update(id uuid.UUID, updates map[string]interface{}) (models.Product, error) {
	if _, err := r.GetByID(id); err != nil {
		return models.Product{}, err
	}

	if slug, ok := updates["slug"].(string); ok {
		taken, err := r.slugTaken(slug, id)
		if err != nil {
			return models.Product{}, err
		}
		if taken {
			return models.Product{}, duplicateErr("product", "slug")
		}
	}

	if sku, ok := updates["sku"].(string); ok && sku != "" {
		taken, err := r.skuTaken(sku, id)
		if err != nil {
			return models.Product{}, err
		}
		if taken {
			return models.Product{}, duplicateErr("product", "sku")
		}
	}

	if err := r.db.Model(&models.Product{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		return models.Product{}, err
	}
	return r.GetByID(id)
}

// ToggleActive atomically flips the visibility flag.
func (r *ProductRepository) ToggleActive(id uuid.UUID) (models.Product, error) {
	return r.toggle(id, "is_active")
}

// ToggleFeatured atomically flips the promotion flag.
func (r *ProductRepository) ToggleFeatured(id uuid.UUID) (models.Product, error) {
	return r.toggle(id, "is_featured")
}

func (r *ProductRepository) toggle(id uuid.UUID, column string) (models.Product, error) {
	if _, err := r.GetByID(id); err != nil {
		return models.Product{}, err
	}
	updates := map[string]interface{}{column: gorm.Expr("NOT " + column)}
	if err := r.db.Model(&models.Product{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		return models.Product{}, err
	}
	return r.GetByID(id)
}

// Delete removes a product after an existence check.
func (r *ProductRepository) Delete(id uuid.UUID) error {
	if _, err := r.GetByID(id); err != nil {
		return err
	}
	return r.db.Delete(&models.Product{}, "id = ?", id).Error
}

// ProductCountRow is a per-category or per-brand product tally.
type ProductCountRow struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Count int64     `json:"count"`
}

// ProductStats aggregates catalog counts for the admin dashboard.
type ProductStats struct {
	Total      int64             `json:"total"`
	Active     int64             `json:"active"`
	Featured   int64             `json:"featured"`
	ByCategory []ProductCountRow `json:"byCategory"`
	ByBrand    []ProductCountRow `json:"byBrand"`
}

// Stats computes catalog-wide counts plus product tallies per category and
// per brand.
func (r *ProductRepository) Stats() (ProductStats, error) {
	var stats ProductStats

	if err := r.db.Model(&models.Product{}).Count(&stats.Total).Error; err != nil {
		return ProductStats{}, err
	}
	if err := r.db.Model(&models.Product{}).Where("is_active = ?", true).Count(&stats.Active).Error; err != nil {
		return ProductStats{}, err
	}
	if err := r.db.Model(&models.Product{}).Where("is_featured = ?", true).Count(&stats.Featured).Error; err != nil {
		return ProductStats{}, err
	}

	err := r.db.Model(&models.Category{}).
		Select("id, name, (SELECT COUNT(*) FROM products WHERE products.category_id = categories.id) AS count").
		Order("name ASC").
		Scan(&stats.ByCategory).Error
	if err != nil {
		return ProductStats{}, err
	}

	err = r.db.Model(&models.Brand{}).
		Select("id, name, (SELECT COUNT(*) FROM products WHERE products.brand_id = brands.id) AS count").
		Order("name ASC").
		Scan(&stats.ByBrand).Error
	if err != nil {
		return ProductStats{}, err
	}

	return stats, nil
}

func (r *ProductRepository) slugTaken(slug string, exclude uuid.UUID) (bool, error) {
	return r.fieldTaken("slug = ?", slug, exclude)
}

func (r *ProductRepository) skuTaken(sku string, exclude uuid.UUID) (bool, error) {
	return r.fieldTaken("sku = ?", sku, exclude)
}

func (r *ProductRepository) fieldTaken(cond, value string, exclude uuid.UUID) (bool, error) {
	query := r.db.Model(&models.Product{}).Where(cond, value)
	if exclude != uuid.Nil {
		query = query.Where("id <> ?", exclude)
	}
	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
