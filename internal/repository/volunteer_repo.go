package repository

import (
	"asha/internal/models"

	"gorm.io/gorm"
)

type VolunteerRepository struct {
	db *gorm.DB
}

func NewVolunteerRepository(db *gorm.DB) *VolunteerRepository {
	return &VolunteerRepository{db: db}
}

func (r *VolunteerRepository) Create(v *models.Volunteer) error {
	return r.db.Create(v).Error
}

func (r *VolunteerRepository) GetByID(id uint) (*models.Volunteer, error) {
	var v models.Volunteer
	if err := r.db.First(&v, id).Error; err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *VolunteerRepository) Update(v *models.Volunteer) error {
	return r.db.Save(v).Error
}

func (r *VolunteerRepository) List(limit, offset int) ([]models.Volunteer, error) {
	var volunteers []models.Volunteer
	err := r.db.Order("created_at DESC").Limit(limit).Offset(offset).Find(&volunteers).Error
	return volunteers, err
}
