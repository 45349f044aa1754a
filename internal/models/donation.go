package models

import (
	"time"

	"gorm.io/gorm"
)

// Donation is local bookkeeping for a gateway order. Razorpay is the system of
// record for the transaction; signature verification never reads this table.
// Rows stuck in CREATED are orders the donor abandoned at checkout.
type Donation struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	OrderID     string         `gorm:"uniqueIndex;size:64;not null" json:"order_id"` // razorpay order id
	PaymentID   string         `gorm:"size:64;index" json:"payment_id"`
	Receipt     string         `gorm:"size:64" json:"receipt"`
	AmountPaise int64          `gorm:"not null" json:"amount_paise"`
	Currency    string         `gorm:"size:3;default:'INR'" json:"currency"`
	Category    string         `gorm:"size:120;index" json:"category"`
	Subcategory string         `gorm:"size:200" json:"subcategory"`
	Status      string         `gorm:"size:20;not null;index" json:"status"` // CREATED, COMPLETED, FAILED
	CompletedAt *time.Time     `json:"completed_at"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Donation) TableName() string {
	return "donations"
}
