package models

import (
	"time"

	"gorm.io/gorm"
)

type Volunteer struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Name      string         `gorm:"size:120;not null" json:"name"`
	Email     string         `gorm:"size:255;not null;index" json:"email"`
	Phone     string         `gorm:"size:20" json:"phone"`
	City      string         `gorm:"size:120" json:"city"`
	Interest  string         `gorm:"size:120" json:"interest"` // program area they want to help with
	Message   string         `gorm:"type:text" json:"message"`
	Status    string         `gorm:"size:20;default:'NEW';index" json:"status"`
	Forwarded bool           `gorm:"default:false" json:"forwarded"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Volunteer) TableName() string {
	return "volunteers"
}
