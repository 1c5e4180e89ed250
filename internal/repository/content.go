package repository

import (
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/example/brandsbridge/internal/models"
)

// ContentRepository manages site copy, settings and the display-only
// records the public pages render.
type ContentRepository struct {
	db *gorm.DB
}

// NewContentRepository constructs ContentRepository.
func NewContentRepository(db *gorm.DB) *ContentRepository {
	return &ContentRepository{db: db}
}

// List returns content rows, optionally narrowed to one section.
func (r *ContentRepository) List(section string) ([]models.Content, error) {
	query := r.db.Model(&models.Content{})
	if section != "" {
		query = query.Where("section = ?", section)
	}

	var contents []models.Content
	if err := query.Order("key ASC").Find(&contents).Error; err != nil {
		return nil, err
	}
	return contents, nil
}

// GetByKey loads one content row by its natural key.
func (r *ContentRepository) GetByKey(key string) (models.Content, error) {
	var content models.Content
	if err := r.db.First(&content, "key = ?", key).Error; err != nil {
		return models.Content{}, notFound("content", err)
	}
	return content, nil
}

// Create inserts a content row after checking key uniqueness.
func (r *ContentRepository) Create(content *models.Content) error {
	var count int64
	if err := r.db.Model(&models.Content{}).Where("key = ?", content.Key).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return duplicateErr("content", "key")
	}
	return r.db.Create(content).Error
}

// UpdateByKey applies the provided columns to an existing content row.
func (r *ContentRepository) UpdateByKey(key string, updates map[string]interface{}) (models.Content, error) {
	if _, err := r.GetByKey(key); err != nil {
		return models.Content{}, err
	}
	if err := r.db.Model(&models.Content{}).Where("key = ?", key).Updates(updates).Error; err != nil {
		return models.Content{}, err
	}
	return r.GetByKey(key)
}

// DeleteByKey removes a content row after an existence check.
func (r *ContentRepository) DeleteByKey(key string) error {
	if _, err := r.GetByKey(key); err != nil {
		return err
	}
	return r.db.Delete(&models.Content{}, "key = ?", key).Error
}

// ContentValue is the projection the public map exposes per key.
type ContentValue struct {
	Value   string             `json:"value"`
	ValueAr string             `json:"valueAr,omitempty"`
	Type    models.ContentType `json:"type"`
}

// FoldContent reshapes content rows into a key→value map for O(1) lookup on
// the public site. Keys are unique; if a relaxed path ever produced a
// duplicate, the later row wins.
func FoldContent(rows []models.Content) map[string]ContentValue {
	folded := make(map[string]ContentValue, len(rows))
	for _, row := range rows {
		folded[row.Key] = ContentValue{
			Value:   row.Value,
			ValueAr: row.ValueAr,
			Type:    row.Type,
		}
	}
	return folded
}

// PublicContent returns every content row folded into the public map.
func (r *ContentRepository) PublicContent() (map[string]ContentValue, error) {
	var contents []models.Content
	if err := r.db.Find(&contents).Error; err != nil {
		return nil, err
	}
	return FoldContent(contents), nil
}

// FoldSettings reshapes setting rows into a key→value map. Type and group
// metadata are dropped in this projection; callers needing them use the
// list form.
func FoldSettings(rows []models.Setting) map[string]string {
	folded := make(map[string]string, len(rows))
	for _, row := range rows {
		folded[row.Key] = row.Value
	}
	return folded
}

// Settings returns setting rows, optionally narrowed to one group.
func (r *ContentRepository) Settings(group string) ([]models.Setting, error) {
	query := r.db.Model(&models.Setting{})
	if group != "" {
		query = query.Where(&models.Setting{Group: group})
	}

	var settings []models.Setting
	if err := query.Order("key ASC").Find(&settings).Error; err != nil {
		return nil, err
	}
	return settings, nil
}

// SettingsMap returns settings folded into a key→value map.
func (r *ContentRepository) SettingsMap(group string) (map[string]string, error) {
	settings, err := r.Settings(group)
	if err != nil {
		return nil, err
	}
	return FoldSettings(settings), nil
}

// UpsertSetting writes a setting by key, creating it when absent. This is
// the one natural-key upsert exposed to admins; everything else creates
// explicitly.
func (r *ContentRepository) UpsertSetting(key, value string) (models.Setting, error) {
	setting := models.Setting{Key: key, Value: value}
	err := r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "key"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"value":      value,
			"updated_at": time.Now(),
		}),
	}).Create(&setting).Error
	if err != nil {
		return models.Setting{}, err
	}

	var saved models.Setting
	if err := r.db.First(&saved, "key = ?", key).Error; err != nil {
		return models.Setting{}, err
	}
	return saved, nil
}

// Statistics returns the active headline numbers in display order.
func (r *ContentRepository) Statistics() ([]models.Statistic, error) {
	var statistics []models.Statistic
	err := r.activeSorted().Find(&statistics).Error
	return statistics, err
}

// Values returns the active company value cards in display order.
func (r *ContentRepository) Values() ([]models.CompanyValue, error) {
	var values []models.CompanyValue
	err := r.activeSorted().Find(&values).Error
	return values, err
}

// Services returns the active service cards in display order.
func (r *ContentRepository) Services() ([]models.Service, error) {
	var services []models.Service
	err := r.activeSorted().Find(&services).Error
	return services, err
}

// Partners returns active partners in display order, optionally narrowed to
// one partner type.
func (r *ContentRepository) Partners(partnerType models.PartnerType) ([]models.Partner, error) {
	query := r.activeSorted()
	if partnerType != "" {
		query = query.Where("type = ?", partnerType)
	}

	var partners []models.Partner
	err := query.Find(&partners).Error
	return partners, err
}

func (r *ContentRepository) activeSorted() *gorm.DB {
	return r.db.Where("is_active = ?", true).Order("sort_order ASC, created_at ASC")
}
