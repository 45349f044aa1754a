package repository

import (
	"asha/internal/models"

	"gorm.io/gorm"
)

type ProgramRepository struct {
	db *gorm.DB
}

func NewProgramRepository(db *gorm.DB) *ProgramRepository {
	return &ProgramRepository{db: db}
}

func (r *ProgramRepository) Create(p *models.Program) error {
	return r.db.Create(p).Error
}

func (r *ProgramRepository) GetByID(id uint) (*models.Program, error) {
	var p models.Program
	if err := r.db.First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProgramRepository) GetBySlug(slug string) (*models.Program, error) {
	var p models.Program
	if err := r.db.Where("slug = ?", slug).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

// ListPublished returns programs visible on the public site, ordered for display.
func (r *ProgramRepository) ListPublished() ([]models.Program, error) {
	var programs []models.Program
	err := r.db.Where("published = ?", true).
		Order("sort_order ASC, created_at DESC").
		Find(&programs).Error
	return programs, err
}

// ListAll returns everything, drafts included, for the CMS.
func (r *ProgramRepository) ListAll() ([]models.Program, error) {
	var programs []models.Program
	err := r.db.Order("sort_order ASC, created_at DESC").Find(&programs).Error
	return programs, err
}

func (r *ProgramRepository) Update(p *models.Program) error {
	return r.db.Save(p).Error
}

func (r *ProgramRepository) Delete(id uint) error {
	return r.db.Delete(&models.Program{}, id).Error
}
