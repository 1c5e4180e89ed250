package repository

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/example/brandsbridge/internal/models"
)

const categoryProductCount = "categories.*, (SELECT COUNT(*) FROM products WHERE products.category_id = categories.id) AS product_count"

// CategoryRepository manages category reads and writes.
type CategoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository constructs CategoryRepository.
func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

// CategoryListOptions narrows a category listing.
type CategoryListOptions struct {
	IncludeInactive bool
}

// List returns categories sorted by sortOrder, each with its product count.
func (r *CategoryRepository) List(opts CategoryListOptions) ([]models.Category, error) {
	query := r.db.Model(&models.Category{}).Select(categoryProductCount)
	if !opts.IncludeInactive {
		query = query.Where("is_active = ?", true)
	}

	var categories []models.Category
	if err := query.Order("sort_order ASC, created_at ASC").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

// GetByID loads one category with its active products.
func (r *CategoryRepository) GetByID(id uuid.UUID) (models.Category, error) {
	return r.getOne("id = ?", id)
}

// GetBySlug loads one category with its active products.
func (r *CategoryRepository) GetBySlug(slug string) (models.Category, error) {
	return r.getOne("slug = ?", slug)
}

func (r *CategoryRepository) getOne(cond string, value interface{}) (models.Category, error) {
	var category models.Category
	err := r.db.Model(&models.Category{}).Select(categoryProductCount).
		Preload("Products", activeProductsScope).
		First(&category, cond, value).Error
	if err != nil {
		return models.Category{}, notFound("category", err)
	}
	return category, nil
}

func activeProductsScope(db *gorm.DB) *gorm.DB {
	return db.Where("is_active = ?", true).Order("sort_order ASC, created_at ASC")
}

// Create inserts a category after checking slug uniqueness. The slug column
// also carries a unique index, so a racing duplicate fails at the store.
func (r *CategoryRepository) Create(category *models.Category) error {
	taken, err := r.slugTaken(category.Slug, uuid.Nil)
	if err != nil {
		return err
	}
	if taken {
		return duplicateErr("category", "slug")
	}
	return r.db.Create(category).Error
}

// Update applies the provided columns to an existing category.
func (r *CategoryRepository) Update(id uuid.UUID, updates map[string]interface{}) (models.Category, error) {
	if _, err := r.GetByID(id); err != nil {
		return models.Category{}, err
	}

	if slug, ok := updates["slug"].(string); ok {
		taken, err := r.slugTaken(slug, id)
		if err != nil {
			return models.Category{}, err
		}
		if taken {
			return models.Category{}, duplicateErr("category", "slug")
		}
	}

	if err := r.db.Model(&models.Category{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		return models.Category{}, err
	}
	return r.GetByID(id)
}

// ToggleActive atomically flips the visibility flag.
func (r *CategoryRepository) ToggleActive(id uuid.UUID) (models.Category, error) {
	return r.toggle(id, "is_active")
}

func (r *CategoryRepository) toggle(id uuid.UUID, column string) (models.Category, error) {
	if _, err := r.GetByID(id); err != nil {
		return models.Category{}, err
	}
	updates := map[string]interface{}{column: gorm.Expr("NOT " + column)}
	if err := r.db.Model(&models.Category{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		return models.Category{}, err
	}
	return r.GetByID(id)
}

// Delete removes a category. Deletion is blocked while products still
// reference it, so catalog rows are never silently orphaned.
func (r *CategoryRepository) Delete(id uuid.UUID) error {
	if _, err := r.GetByID(id); err != nil {
		return err
	}

	var dependents int64
	if err := r.db.Model(&models.Product{}).Where("category_id = ?", id).Count(&dependents).Error; err != nil {
		return err
	}
	if dependents > 0 {
		return &ConflictError{Message: fmt.Sprintf("category still has %d products; reassign or delete them first", dependents)}
	}

	return r.db.Delete(&models.Category{}, "id = ?", id).Error
}

func (r *CategoryRepository) slugTaken(slug string, exclude uuid.UUID) (bool, error) {
	query := r.db.Model(&models.Category{}).Where("slug = ?", slug)
	if exclude != uuid.Nil {
		query = query.Where("id <> ?", exclude)
	}
	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
