package repository

import (
	"asha/internal/models"

	"gorm.io/gorm"
)

type ContactRepository struct {
	db *gorm.DB
}

func NewContactRepository(db *gorm.DB) *ContactRepository {
	return &ContactRepository{db: db}
}

func (r *ContactRepository) Create(m *models.ContactMessage) error {
	return r.db.Create(m).Error
}

func (r *ContactRepository) Update(m *models.ContactMessage) error {
	return r.db.Save(m).Error
}

func (r *ContactRepository) List(limit, offset int) ([]models.ContactMessage, error) {
	var messages []models.ContactMessage
	err := r.db.Order("created_at DESC").Limit(limit).Offset(offset).Find(&messages).Error
	return messages, err
}
