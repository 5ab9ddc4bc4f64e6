package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"pastel-pos/config"
	"pastel-pos/models"
)

func OpenCashSession(c *gin.Context) {
	db := config.DB

	userID := c.MustGet("user_id").(uint)

	var input struct {
		OpeningCash float64 `json:"opening_cash" binding:"required"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var existing models.CashSession
	if err := db.Where("user_id = ? AND status = 'open'", userID).
		First(&existing).Error; err == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "A cash session is already open"})
		return
	}

	session := models.CashSession{
		UserID:      userID,
		OpeningCash: input.OpeningCash,
		Status:      "open",
		OpenedAt:    time.Now().In(config.BusinessLocation()),
	}

	if err := db.Create(&session).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, session)
}

func GetCurrentCashSession(c *gin.Context) {
	db := config.DB
	userID := c.MustGet("user_id").(uint)

	var session models.CashSession
	if err := db.Where("user_id = ? AND status = 'open'", userID).
		First(&session).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No open cash session"})
		return
	}

	c.JSON(http.StatusOK, session)
}

// CloseCashSession reconciles the drawer: only cash-method sales move money
// through it, and the exact tendered amount is never persisted, so the
// expected figure is opening float plus cash sale totals.
func CloseCashSession(c *gin.Context) {
	db := config.DB
	userID := c.MustGet("user_id").(uint)

	var input struct {
		ClosingCash float64 `json:"closing_cash" binding:"required"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var session models.CashSession
	if err := db.Where("user_id = ? AND status = 'open'", userID).
		First(&session).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No open cash session"})
		return
	}

	now := time.Now().In(config.BusinessLocation())

	var cashSales float64
	db.Model(&models.Sale{}).
		Select("COALESCE(SUM(total_amount), 0)").
		Where("payment_method = ? AND user_id = ? AND created_at BETWEEN ? AND ?",
			models.PaymentCash, userID, session.OpenedAt, now).
		Scan(&cashSales)

	expected := session.OpeningCash + cashSales
	diff := input.ClosingCash - expected

	session.CashSales = cashSales
	session.ExpectedCash = expected
	session.ClosingCash = &input.ClosingCash
	session.Difference = &diff
	session.Status = "closed"
	session.ClosedAt = &now

	if err := db.Save(&session).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, session)
}
