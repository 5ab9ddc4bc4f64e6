package controllers

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"pastel-pos/config"
	"pastel-pos/models"
	"pastel-pos/utils"
)

// GET /products?q=&in_stock=&page=&limit=
func GetProducts(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}
	offset := (page - 1) * limit

	query := config.DB.Model(&models.Product{})

	// Each search term must match the name or the category.
	for _, term := range strings.Fields(strings.ToLower(strings.TrimSpace(c.Query("q")))) {
		pattern := "%" + term + "%"
		query = query.Where("LOWER(name) LIKE ? OR LOWER(category) LIKE ?", pattern, pattern)
	}

	if c.Query("in_stock") == "true" {
		query = query.Where("stock_quantity > ?", 0)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	var products []models.Product
	if err := query.
		Order("name ASC").
		Limit(limit).
		Offset(offset).
		Find(&products).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":       products,
		"page":       page,
		"limit":      limit,
		"total":      total,
		"totalPages": int((total + int64(limit) - 1) / int64(limit)),
	})
}

func GetProductByID(c *gin.Context) {
	var product models.Product
	if err := config.DB.First(&product, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}
	c.JSON(http.StatusOK, product)
}

func GetProductByBarcode(c *gin.Context) {
	var product models.Product
	if err := config.DB.Where("barcode = ?", c.Param("code")).First(&product).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}
	c.JSON(http.StatusOK, product)
}

func CreateProduct(c *gin.Context) {
	var input models.Product
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var existing models.Product
	if err := config.DB.Where("name = ?", input.Name).First(&existing).Error; err == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "A product with this name already exists"})
		return
	}

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&input).Error; err != nil {
			return err
		}

		description := fmt.Sprintf("Product '%s' created", input.Name)
		return utils.CreateProductAuditLog(
			tx,
			"create",
			input.ID,
			nil,
			&input,
			utils.GetUserID(c),
			c.ClientIP(),
			description,
		)
	})

	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, input)
}

func UpdateProduct(c *gin.Context) {
	var oldProduct models.Product
	if err := config.DB.First(&oldProduct, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}

	var input models.Product
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var existing models.Product
	if err := config.DB.Where("name = ? AND id != ?", input.Name, oldProduct.ID).
		First(&existing).Error; err == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "A product with this name already exists"})
		return
	}

	oldCopy := oldProduct

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		oldProduct.Name = input.Name
		oldProduct.Description = input.Description
		oldProduct.Price = input.Price
		oldProduct.StockQuantity = input.StockQuantity
		oldProduct.Category = input.Category
		oldProduct.Barcode = input.Barcode
		oldProduct.ImageBase64 = input.ImageBase64

		if err := tx.Save(&oldProduct).Error; err != nil {
			return err
		}

		description := fmt.Sprintf("Product '%s' updated", oldProduct.Name)
		return utils.CreateProductAuditLog(
			tx,
			"update",
			oldProduct.ID,
			&oldCopy,
			&oldProduct,
			utils.GetUserID(c),
			c.ClientIP(),
			description,
		)
	})

	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, oldProduct)
}

func DeleteProduct(c *gin.Context) {
	var product models.Product
	if err := config.DB.First(&product, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}

	productCopy := product

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&product).Error; err != nil {
			return err
		}

		description := fmt.Sprintf("Product '%s' deleted", productCopy.Name)
		return utils.CreateProductAuditLog(
			tx,
			"delete",
			productCopy.ID,
			&productCopy,
			nil,
			utils.GetUserID(c),
			c.ClientIP(),
			description,
		)
	})

	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Product deleted successfully"})
}

func ExportProducts(c *gin.Context) {
	var products []models.Product
	if err := config.DB.Order("name ASC").Find(&products).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	var buffer bytes.Buffer
	writer := csv.NewWriter(&buffer)

	writer.Write([]string{"id", "name", "description", "category", "price", "stock_quantity", "barcode"})
	for _, product := range products {
		writer.Write([]string{
			fmt.Sprintf("%d", product.ID),
			product.Name,
			utils.StringValue(product.Description),
			product.Category,
			fmt.Sprintf("%.2f", product.Price),
			fmt.Sprintf("%d", product.StockQuantity),
			utils.StringValue(product.Barcode),
		})
	}
	writer.Flush()

	c.Header("Content-Description", "File Transfer")
	c.Header("Content-Disposition", `attachment; filename="products.csv"`)
	c.Data(http.StatusOK, "text/csv", buffer.Bytes())
}
