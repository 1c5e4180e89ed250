package repository

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/example/brandsbridge/internal/models"
)

// UserRepository manages back-office accounts.
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository constructs UserRepository.
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// List returns every account, oldest first.
func (r *UserRepository) List() ([]models.User, error) {
	var users []models.User
	if err := r.db.Order("created_at ASC").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// GetByID loads one account.
func (r *UserRepository) GetByID(id uuid.UUID) (models.User, error) {
	var user models.User
	if err := r.db.First(&user, "id = ?", id).Error; err != nil {
		return models.User{}, notFound("user", err)
	}
	return user, nil
}

// GetByEmail loads one account by its natural key.
func (r *UserRepository) GetByEmail(email string) (models.User, error) {
	var user models.User
	if err := r.db.First(&user, "email = ?", email).Error; err != nil {
		return models.User{}, notFound("user", err)
	}
	return user, nil
}

// Create inserts an account after checking email uniqueness.
func (r *UserRepository) Create(user *models.User) error {
	taken, err := r.emailTaken(user.Email, uuid.Nil)
	if err != nil {
		return err
	}
	if taken {
		return duplicateErr("user", "email")
	}
	return r.db.Create(user).Error
}

// Update applies the provided columns, re-checking email uniqueness.
func (r *UserRepository) Update(id uuid.UUID, updates map[string]interface{}) (models.User, error) {
	if _, err := r.GetByID(id); err != nil {
		return models.User{}, err
	}

	if email, ok := updates["email"].(string); ok {
		taken, err := r.emailTaken(email, id)
		if err != nil {
			return models.User{}, err
		}
		if taken {
			return models.User{}, duplicateErr("user", "email")
		}
	}

	if err := r.db.Model(&models.User{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		return models.User{}, err
	}
	return r.GetByID(id)
}

// ToggleActive atomically flips the account's active flag.
func (r *UserRepository) ToggleActive(id uuid.UUID) (models.User, error) {
	if _, err := r.GetByID(id); err != nil {
		return models.User{}, err
	}
	updates := map[string]interface{}{"is_active": gorm.Expr("NOT is_active")}
	if err := r.db.Model(&models.User{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		return models.User{}, err
	}
	return r.GetByID(id)
}

// Delete removes an account after an existence check.
func (r *UserRepository) Delete(id uuid.UUID) error {
	if _, err := r.GetByID(id); err != nil {
		return err
	}
	return r.db.Delete(&models.User{}, "id = ?", id).Error
}

func (r *UserRepository) emailTaken(email string, exclude uuid.UUID) (bool, error) {
	query := r.db.Model(&models.User{}).Where("email = ?", email)
	if exclude != uuid.Nil {
		query = query.Where("id <> ?", exclude)
	}
	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
