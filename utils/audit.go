package utils

import (
	"gorm.io/gorm"

	"pastel-pos/models"
)

// CreateProductAuditLog records a catalog mutation with before/after JSON
// snapshots. Callers run it inside the same transaction as the mutation.
func CreateProductAuditLog(
	db *gorm.DB,
	action string,
	entityID uint,
	oldProduct, newProduct *models.Product,
	userID *uint,
	ipAddress string,
	description string,
) error {
	auditLog := models.AuditLog{
		EntityType:  "product",
		EntityID:    entityID,
		Action:      action,
		UserID:      userID,
		OldValue:    ToJSONString(nilableProduct(oldProduct)),
		NewValue:    ToJSONString(nilableProduct(newProduct)),
		Changes:     calculateProductChanges(action, oldProduct, newProduct),
		IPAddress:   &ipAddress,
		Description: description,
	}

	return db.Create(&auditLog).Error
}

func nilableProduct(p *models.Product) interface{} {
	if p == nil {
		return nil
	}
	return p
}

func calculateProductChanges(action string, oldProduct, newProduct *models.Product) *string {
	if action != "update" || oldProduct == nil || newProduct == nil {
		return nil
	}

	changes := make(map[string]interface{})

	if oldProduct.Name != newProduct.Name {
		changes["name"] = map[string]string{"old": oldProduct.Name, "new": newProduct.Name}
	}

	if StringValue(oldProduct.Description) != StringValue(newProduct.Description) {
		changes["description"] = map[string]string{
			"old": StringValue(oldProduct.Description),
			"new": StringValue(newProduct.Description),
		}
	}

	if oldProduct.Price != newProduct.Price {
		changes["price"] = map[string]float64{"old": oldProduct.Price, "new": newProduct.Price}
	}

	if oldProduct.StockQuantity != newProduct.StockQuantity {
		changes["stock_quantity"] = map[string]int{"old": oldProduct.StockQuantity, "new": newProduct.StockQuantity}
	}

	if oldProduct.Category != newProduct.Category {
		changes["category"] = map[string]string{"old": oldProduct.Category, "new": newProduct.Category}
	}

	if StringValue(oldProduct.Barcode) != StringValue(newProduct.Barcode) {
		changes["barcode"] = map[string]string{
			"old": StringValue(oldProduct.Barcode),
			"new": StringValue(newProduct.Barcode),
		}
	}

	if len(changes) == 0 {
		return nil
	}

	return ToJSONString(changes)
}
