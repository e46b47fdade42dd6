package repository

import (
	"errors"

	"vitalog/internal/models"

	"gorm.io/gorm"
)

type HealthProfileRepository interface {
	Create(profile *models.HealthProfile) error
	Update(profile *models.HealthProfile) error
	Delete(id uint) error
	FindLatestByUserID(userID uint) (*models.HealthProfile, error)
	FindAllByUserID(userID uint) ([]models.HealthProfile, error)
}

type healthProfileRepository struct {
	db *gorm.DB
}

func NewHealthProfileRepository(db *gorm.DB) HealthProfileRepository {
	return &healthProfileRepository{db}
}

func (r *healthProfileRepository) Create(profile *models.HealthProfile) error {
	return r.db.Create(profile).Error
}

func (r *healthProfileRepository) Update(profile *models.HealthProfile) error {
	return r.db.Save(profile).Error
}

func (r *healthProfileRepository) Delete(id uint) error {
	return r.db.Delete(&models.HealthProfile{}, id).Error
}

// FindLatestByUserID returns the user's current profile, or (nil, nil) when
// the user has never submitted one.
func (r *healthProfileRepository) FindLatestByUserID(userID uint) (*models.HealthProfile, error) {
	var profile models.HealthProfile
	err := r.db.Where("user_id = ?", userID).Order("created_at DESC").First(&profile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *healthProfileRepository) FindAllByUserID(userID uint) ([]models.HealthProfile, error) {
	var profiles []models.HealthProfile
	err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&profiles).Error
	return profiles, err
}
