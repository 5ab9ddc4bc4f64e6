package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"pastel-pos/config"
	"pastel-pos/models"
	"pastel-pos/services"
)

type TopProduct struct {
	ProductID uint   `json:"product_id"`
	Name      string `json:"name"`
	Quantity  int64  `json:"quantity"`
}

const lowStockThreshold = 5

func GetDashboard(c *gin.Context) {
	loc := config.BusinessLocation()
	start, end := services.DayRange(time.Now(), loc)

	var totalProducts int64
	config.DB.Model(&models.Product{}).Count(&totalProducts)

	var lowStock int64
	config.DB.Model(&models.Product{}).Where("stock_quantity < ?", lowStockThreshold).Count(&lowStock)

	var todaySales int64
	config.DB.Model(&models.Sale{}).
		Where("created_at >= ? AND created_at < ?", start, end).
		Count(&todaySales)

	var todayRevenue float64
	config.DB.Model(&models.Sale{}).
		Select("COALESCE(SUM(total_amount), 0)").
		Where("created_at >= ? AND created_at < ?", start, end).
		Scan(&todayRevenue)

	// Top selling products (top 5, all time)
	var topProducts []TopProduct
	config.DB.Model(&models.SaleItem{}).
		Select("sale_items.product_id, products.name, SUM(sale_items.quantity) as quantity").
		Joins("JOIN products ON products.id = sale_items.product_id").
		Group("sale_items.product_id, products.name").
		Order("quantity desc").
		Limit(5).
		Scan(&topProducts)

	c.JSON(http.StatusOK, gin.H{
		"total_products":       totalProducts,
		"low_stock_products":   lowStock,
		"today_sales":          todaySales,
		"today_revenue":        todayRevenue,
		"top_selling_products": topProducts,
	})
}
