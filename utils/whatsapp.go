package utils

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"time"

	"pastel-pos/dtos"
)

// SendWhatsAppNotification delivers a message through the fonnte.com gateway.
func SendWhatsAppNotification(phone, message string) error {
	apiURL := "https://api.fonnte.com/send"
	token := os.Getenv("FONNTE_TOKEN")

	if token == "" {
		return fmt.Errorf("FONNTE_TOKEN is not set")
	}

	payload := map[string]string{
		"target":  phone,
		"message": message,
	}

	jsonData, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %v", err)
	}

	req, err := http.NewRequest("POST", apiURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return fmt.Errorf("failed to build request: %v", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", token)

	client := &http.Client{Timeout: 10 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("API returned status %d", resp.StatusCode)
	}

	return nil
}

// FormatDailyReportMessage renders the daily summary shared with the owner
// over WhatsApp: sales count, revenue, per-method breakdown and top sellers.
func FormatDailyReportMessage(report dtos.DailyReport) string {
	message := fmt.Sprintf("📊 *RELATÓRIO DIÁRIO - %s*\n\n", report.Date)
	message += fmt.Sprintf("🛒 *Total de Vendas:* %d\n", report.TotalSales)
	message += fmt.Sprintf("💰 *Faturamento Total:* R$ %.2f\n\n", report.TotalRevenue)

	message += "💳 *FORMAS DE PAGAMENTO:*\n"
	message += fmt.Sprintf("💵 Dinheiro: R$ %.2f\n", report.PaymentMethods.Cash)
	message += fmt.Sprintf("🏧 Cartão Débito: R$ %.2f\n", report.PaymentMethods.Debit)
	message += fmt.Sprintf("💳 Cartão Crédito: R$ %.2f\n", report.PaymentMethods.Credit)
	message += fmt.Sprintf("📱 QR Code/PIX: R$ %.2f\n", report.PaymentMethods.Qrcode)

	top := report.TopProducts(5)
	if len(top) > 0 {
		message += "\n📦 *PRODUTOS MAIS VENDIDOS:*\n"
		for _, product := range top {
			message += fmt.Sprintf("• %s: %dx (R$ %.2f)\n", product.Name, product.Quantity, product.Revenue)
		}
	}

	return message
}

// WhatsAppShareLink builds an api.whatsapp.com URL carrying the message, for
// manual sharing from a browser.
func WhatsAppShareLink(phone, message string) string {
	return fmt.Sprintf("https://api.whatsapp.com/send?phone=%s&text=%s", phone, url.QueryEscape(message))
}
