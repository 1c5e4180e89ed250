package repository

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/example/brandsbridge/internal/models"
	"github.com/example/brandsbridge/internal/utils"
)

const recentInquiries = 5

// InquiryRepository manages contact form submissions.
type InquiryRepository struct {
	db *gorm.DB
}

// NewInquiryRepository constructs InquiryRepository.
func NewInquiryRepository(db *gorm.DB) *InquiryRepository {
	return &InquiryRepository{db: db}
}

// InquiryFilter narrows an inquiry listing. Empty fields mean "no constraint".
type InquiryFilter struct {
	Search     string
	Type       models.InquiryType
	Status     models.InquiryStatus
	Pagination utils.Pagination
}

func (f InquiryFilter) apply(query *gorm.DB) *gorm.DB {
	if f.Type != "" {
		query = query.Where("type = ?", f.Type)
	}
	if f.Status != "" {
		query = query.Where("status = ?", f.Status)
	}
	if f.Search != "" {
		q := "%" + f.Search + "%"
		query = query.Where(
			"first_name ILIKE ? OR last_name ILIKE ? OR email ILIKE ? OR company ILIKE ? OR subject ILIKE ?",
			q, q, q, q, q,
		)
	}
	return query
}

// Create stores a public submission, defaulting type and status.
func (r *InquiryRepository) Create(inquiry *models.Inquiry) error {
	if inquiry.Type == "" {
		inquiry.Type = models.InquiryTypeGeneral
	}
	if inquiry.Status == "" {
		inquiry.Status = models.InquiryStatusNew
	}
	return r.db.Create(inquiry).Error
}

// List returns one page of inquiries, newest first.
func (r *InquiryRepository) List(filter InquiryFilter) ([]models.Inquiry, utils.ListMeta, error) {
	query := filter.apply(r.db.Model(&models.Inquiry{}))

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, utils.ListMeta{}, err
	}

	var inquiries []models.Inquiry
	err := query.Order("created_at DESC").
		Limit(filter.Pagination.Limit).Offset(filter.Pagination.Offset).
		Find(&inquiries).Error
	if err != nil {
		return nil, utils.ListMeta{}, err
	}

	return inquiries, filter.Pagination.Meta(total), nil
}

// GetByID loads one inquiry.
func (r *InquiryRepository) GetByID(id uuid.UUID) (models.Inquiry, error) {
	var inquiry models.Inquiry
	if err := r.db.First(&inquiry, "id = ?", id).Error; err != nil {
		return models.Inquiry{}, notFound("inquiry", err)
	}
	return inquiry, nil
}

// Update applies the provided columns. The respondedAt stamp belongs to
// UpdateStatus only; a plain status column update here does not set it.
func (r *InquiryRepository) Update(id uuid.UUID, updates map[string]interface{}) (models.Inquiry, error) {
	if _, err := r.GetByID(id); err != nil {
		return models.Inquiry{}, err
	}
	if err := r.db.Model(&models.Inquiry{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		return models.Inquiry{}, err
	}
	return r.GetByID(id)
}

// UpdateStatus sets the status and stamps respondedAt exactly when the new
// status is RESPONDED. A repeat transition overwrites the stamp; no other
// transition ever clears it.
func (r *InquiryRepository) UpdateStatus(id uuid.UUID, status models.InquiryStatus) (models.Inquiry, error) {
	return r.Update(id, statusUpdates(status, time.Now()))
}

// statusUpdates builds the column set for a status transition.
func statusUpdates(status models.InquiryStatus, now time.Time) map[string]interface{} {
	updates := map[string]interface{}{"status": status}
	if status == models.InquiryStatusResponded {
		updates["responded_at"] = now
	}
	return updates
}

// UpdateNotes replaces the admin notes.
func (r *InquiryRepository) UpdateNotes(id uuid.UUID, notes string) (models.Inquiry, error) {
	return r.Update(id, map[string]interface{}{"notes": notes})
}

// Delete removes an inquiry after an existence check.
func (r *InquiryRepository) Delete(id uuid.UUID) error {
	if _, err := r.GetByID(id); err != nil {
		return err
	}
	return r.db.Delete(&models.Inquiry{}, "id = ?", id).Error
}

// InquirySummary is the reduced projection used by the recent list:
// message, notes and contact details beyond email are excluded.
type InquirySummary struct {
	ID        uuid.UUID            `json:"id"`
	FirstName string               `json:"firstName"`
	LastName  string               `json:"lastName"`
	Email     string               `json:"email"`
	Type      models.InquiryType   `json:"type"`
	Status    models.InquiryStatus `json:"status"`
	CreatedAt time.Time            `json:"createdAt"`
}

// InquiryStats aggregates inquiry counts for the admin dashboard.
type InquiryStats struct {
	Total    int64            `json:"total"`
	ByStatus map[string]int64 `json:"byStatus"`
	ByType   map[string]int64 `json:"byType"`
	Recent   []InquirySummary `json:"recent"`
}

type groupCount struct {
	Label string
	Count int64
}

// groupCountsToMap folds group-by rows into a label→count map. Only labels
// actually present in the table appear.
func groupCountsToMap(rows []groupCount) map[string]int64 {
	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.Label] = row.Count
	}
	return counts
}

// Stats computes the total, per-status and per-type counts, and the five
// most recent submissions in reduced projection.
func (r *InquiryRepository) Stats() (InquiryStats, error) {
	var stats InquiryStats

	if err := r.db.Model(&models.Inquiry{}).Count(&stats.Total).Error; err != nil {
		return InquiryStats{}, err
	}

	var byStatus []groupCount
	err := r.db.Model(&models.Inquiry{}).
		Select("status AS label, COUNT(*) AS count").
		Group("status").
		Scan(&byStatus).Error
	if err != nil {
		return InquiryStats{}, err
	}
	stats.ByStatus = groupCountsToMap(byStatus)

	var byType []groupCount
	err = r.db.Model(&models.Inquiry{}).
		Select("type AS label, COUNT(*) AS count").
		Group("type").
		Scan(&byType).Error
	if err != nil {
		return InquiryStats{}, err
	}
	stats.ByType = groupCountsToMap(byType)

	err = r.db.Model(&models.Inquiry{}).
		Select("id, first_name, last_name, email, type, status, created_at").
		Order("created_at DESC").
		Limit(recentInquiries).
		Scan(&stats.Recent).Error
	if err != nil {
		return InquiryStats{}, err
	}

	return stats, nil
}
