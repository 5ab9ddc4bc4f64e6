package controllers

import (
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"

	"pastel-pos/config"
	"pastel-pos/dtos"
	"pastel-pos/models"
	"pastel-pos/services"
	"pastel-pos/utils"
)

func buildTodayReport() (dtos.DailyReport, error) {
	loc := config.BusinessLocation()
	now := time.Now().In(loc)
	start, end := services.DayRange(now, loc)

	var sales []models.Sale
	if err := config.DB.Preload("Items.Product").
		Where("created_at >= ? AND created_at < ?", start, end).
		Find(&sales).Error; err != nil {
		return dtos.DailyReport{}, err
	}

	return services.BuildDailyReport(now, loc, sales), nil
}

func GetDailyReport(c *gin.Context) {
	report, err := buildTodayReport()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, report)
}

// GET /reports/daily/whatsapp-link — share URL for manual sending.
func GetDailyReportWhatsAppLink(c *gin.Context) {
	report, err := buildTodayReport()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	message := utils.FormatDailyReportMessage(report)
	phone := os.Getenv("REPORT_WHATSAPP_PHONE")

	c.JSON(http.StatusOK, gin.H{
		"url":     utils.WhatsAppShareLink(phone, message),
		"message": message,
	})
}

// POST /reports/daily/whatsapp — pushes the summary through the gateway.
func SendDailyReportWhatsApp(c *gin.Context) {
	report, err := buildTodayReport()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	phone := os.Getenv("REPORT_WHATSAPP_PHONE")
	if phone == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "REPORT_WHATSAPP_PHONE is not set"})
		return
	}

	message := utils.FormatDailyReportMessage(report)
	if err := utils.SendWhatsAppNotification(phone, message); err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Report sent"})
}
