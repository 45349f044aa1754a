package models

import (
	"time"

	"gorm.io/gorm"
)

// Program is an ongoing initiative shown on the public site (e.g. a learning
// center or a health camp series).
type Program struct {
	ID           uint           `gorm:"primaryKey" json:"id"`
	Title        string         `gorm:"size:200;not null" json:"title"`
	Slug         string         `gorm:"uniqueIndex;size:200;not null" json:"slug"`
	Summary      string         `gorm:"size:500" json:"summary"`
	Body         string         `gorm:"type:text" json:"body"`
	Category     string         `gorm:"size:80;index" json:"category"`
	ImageURL     string         `gorm:"size:512" json:"image_url"`
	ThumbnailURL string         `gorm:"size:512" json:"thumbnail_url"`
	Published    bool           `gorm:"index;default:false" json:"published"`
	SortOrder    int            `gorm:"default:0" json:"sort_order"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Program) TableName() string {
	return "programs"
}
