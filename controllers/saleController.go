package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"pastel-pos/config"
	"pastel-pos/dtos"
	"pastel-pos/models"
	"pastel-pos/services"
	"pastel-pos/utils"
)

// GET /sales?page=&limit=&date=YYYY-MM-DD (date interpreted in the business zone)
func GetSales(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	offset := (page - 1) * limit

	db := config.DB.Model(&models.Sale{})

	if filterDate := c.Query("date"); filterDate != "" {
		start, err := time.ParseInLocation("2006-01-02", filterDate, config.BusinessLocation())
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
			return
		}
		db = db.Where("created_at >= ? AND created_at < ?", start, start.AddDate(0, 0, 1))
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	var sales []models.Sale
	if err := db.Preload("Items.Product").
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&sales).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":       sales,
		"page":       page,
		"limit":      limit,
		"total":      total,
		"totalPages": int((total + int64(limit) - 1) / int64(limit)),
	})
}

func GetSaleByID(c *gin.Context) {
	var sale models.Sale
	if err := config.DB.Preload("Items.Product").First(&sale, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Sale not found"})
		return
	}
	c.JSON(http.StatusOK, sale)
}

type dailySaleRow struct {
	SaleID      uint      `json:"sale_id"`
	ProductName string    `json:"product_name"`
	ClientName  string    `json:"client_name"`
	Quantity    int       `json:"quantity"`
	UnitPrice   float64   `json:"unit_price"`
	Subtotal    float64   `json:"subtotal"`
	CreatedAt   time.Time `json:"created_at"`
}

// GET /sales/today — flattened line rows for the daily sales panel.
func GetTodaySaleItems(c *gin.Context) {
	loc := config.BusinessLocation()
	start, end := services.DayRange(time.Now(), loc)

	var sales []models.Sale
	if err := config.DB.Preload("Items.Product").
		Where("created_at >= ? AND created_at < ?", start, end).
		Order("created_at DESC").
		Find(&sales).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	rows := []dailySaleRow{}
	for _, sale := range sales {
		for _, item := range sale.Items {
			name := item.Product.Name
			if name == "" {
				name = dtos.MissingProductLabel
			}
			rows = append(rows, dailySaleRow{
				SaleID:      sale.ID,
				ProductName: name,
				ClientName:  utils.StringValue(sale.ClientName),
				Quantity:    item.Quantity,
				UnitPrice:   item.UnitPrice,
				Subtotal:    item.Subtotal,
				CreatedAt:   sale.CreatedAt,
			})
		}
	}

	c.JSON(http.StatusOK, rows)
}

// GET /sales/:id/receipt?client_name=&cash_received= — printable HTML receipt.
// The client name and the cash received are presentational parameters; they
// are not read from, nor written to, the sale record.
func GetSaleReceipt(c *gin.Context) {
	var sale models.Sale
	if err := config.DB.Preload("Items.Product").First(&sale, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Sale not found"})
		return
	}

	clientName := c.Query("client_name")
	if clientName == "" {
		clientName = utils.StringValue(sale.ClientName)
	}

	var cashReceived *float64
	if raw := c.Query("cash_received"); raw != "" {
		value, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "cash_received must be a number"})
			return
		}
		cashReceived = &value
	}

	data := utils.BuildReceiptData(sale, clientName, cashReceived, config.BusinessLocation())
	html, err := utils.RenderReceipt(data)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
}
