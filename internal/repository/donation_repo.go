package repository

import (
	"asha/internal/domain"
	"asha/internal/models"

	"gorm.io/gorm"
)

type DonationRepository struct {
	db *gorm.DB
}

func NewDonationRepository(db *gorm.DB) *DonationRepository {
	return &DonationRepository{db: db}
}

func (r *DonationRepository) Create(d *models.Donation) error {
	return r.db.Create(d).Error
}

func (r *DonationRepository) GetByOrderID(orderID string) (*models.Donation, error) {
	var d models.Donation
	if err := r.db.Where("order_id = ?", orderID).First(&d).Error; err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *DonationRepository) Update(d *models.Donation) error {
	return r.db.Save(d).Error
}

func (r *DonationRepository) ListRecentCompleted(limit int) ([]models.Donation, error) {
	var donations []models.Donation
	err := r.db.Where("status = ?", domain.DonationCompleted).
		Order("completed_at DESC").
		Limit(limit).
		Find(&donations).Error
	return donations, err
}

func (r *DonationRepository) List(limit, offset int) ([]models.Donation, error) {
	var donations []models.Donation
	err := r.db.Order("created_at DESC").Limit(limit).Offset(offset).Find(&donations).Error
	return donations, err
}

// Totals returns the completed-donation sum in paise and the completed count.
// Bookkeeping numbers for the public stats widget, not a ledger.
func (r *DonationRepository) Totals() (totalPaise int64, count int64, err error) {
	row := r.db.Model(&models.Donation{}).
		Where("status = ?", domain.DonationCompleted).
		Select("COALESCE(SUM(amount_paise), 0), COUNT(*)").
		Row()
	err = row.Scan(&totalPaise, &count)
	return totalPaise, count, err
}
