package models

import "time"

type Product struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	Name          string    `gorm:"size:191;not null" json:"name" binding:"required"`
	Description   *string   `gorm:"type:text" json:"description,omitempty"`
	Price         float64   `gorm:"not null" json:"price" binding:"gte=0"`
	StockQuantity int       `gorm:"not null;default:0" json:"stock_quantity" binding:"gte=0"`
	Category      string    `gorm:"size:100;not null" json:"category" binding:"required"`
	Barcode       *string   `gorm:"size:100" json:"barcode,omitempty"`
	ImageBase64   *string   `gorm:"type:longtext" json:"image_base64,omitempty"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
