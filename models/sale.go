package models

import "time"

// Sale is immutable once created: there is no update or delete path.
type Sale struct {
	ID            uint          `gorm:"primaryKey" json:"id"`
	TotalAmount   float64       `gorm:"not null" json:"total_amount"`
	PaymentMethod PaymentMethod `gorm:"type:enum('cash','debit','credit','qrcode');not null" json:"payment_method"`
	UserID        uint          `gorm:"not null;index" json:"user_id"`
	ClientName    *string       `gorm:"size:191" json:"client_name,omitempty"`
	Items         []SaleItem    `json:"items"`
	CreatedAt     time.Time     `gorm:"index" json:"created_at"`
}

// SaleItem freezes quantity and unit price at the moment of sale; later
// product price edits never change it. ProductID is a back-reference only.
type SaleItem struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	SaleID    uint      `gorm:"not null;index" json:"sale_id"`
	ProductID uint      `gorm:"not null;index" json:"product_id"`
	Product   Product   `json:"product"`
	Quantity  int       `gorm:"not null" json:"quantity"`
	UnitPrice float64   `gorm:"not null" json:"unit_price"`
	Subtotal  float64   `gorm:"not null" json:"subtotal"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}
