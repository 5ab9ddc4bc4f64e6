package repository

import (
	"errors"

	"gorm.io/gorm"

	"pastel-pos/models"
)

var ErrInsufficientStock = errors.New("insufficient stock")

type SaleRepository struct {
	db *gorm.DB
}

func NewSaleRepository(db *gorm.DB) *SaleRepository {
	return &SaleRepository{db: db}
}

// CreateSale persists the sale with its items and decrements stock for every
// line in a single transaction: either everything commits or nothing does.
// The guarded UPDATE only matches rows with enough stock, so two sessions
// selling the last unit cannot drive stock_quantity negative.
func (r *SaleRepository) CreateSale(sale *models.Sale) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		for _, item := range sale.Items {
			res := tx.Model(&models.Product{}).
				Where("id = ? AND stock_quantity >= ?", item.ProductID, item.Quantity).
				Update("stock_quantity", gorm.Expr("stock_quantity - ?", item.Quantity))
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return ErrInsufficientStock
			}
		}

		return tx.Create(sale).Error
	})
}
