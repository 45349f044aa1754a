package repository

import (
	"time"

	"asha/internal/models"

	"gorm.io/gorm"
)

type EventRepository struct {
	db *gorm.DB
}

func NewEventRepository(db *gorm.DB) *EventRepository {
	return &EventRepository{db: db}
}

func (r *EventRepository) Create(e *models.Event) error {
	return r.db.Create(e).Error
}

func (r *EventRepository) GetByID(id uint) (*models.Event, error) {
	var e models.Event
	if err := r.db.First(&e, id).Error; err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *EventRepository) GetBySlug(slug string) (*models.Event, error) {
	var e models.Event
	if err := r.db.Where("slug = ?", slug).First(&e).Error; err != nil {
		return nil, err
	}
	return &e, nil
}

// ListUpcoming returns published events that have not ended yet.
func (r *EventRepository) ListUpcoming() ([]models.Event, error) {
	var events []models.Event
	now := time.Now()
	err := r.db.Where("published = ?", true).
		Where("starts_at >= ? OR (ends_at IS NOT NULL AND ends_at >= ?)", now, now).
		Order("starts_at ASC").
		Find(&events).Error
	return events, err
}

func (r *EventRepository) ListAll() ([]models.Event, error) {
	var events []models.Event
	err := r.db.Order("starts_at DESC").Find(&events).Error
	return events, err
}

func (r *EventRepository) Update(e *models.Event) error {
	return r.db.Save(e).Error
}

func (r *EventRepository) Delete(id uint) error {
	return r.db.Delete(&models.Event{}, id).Error
}
