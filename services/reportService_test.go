package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pastel-pos/dtos"
	"pastel-pos/models"
)

func businessZone(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("America/Sao_Paulo")
	require.NoError(t, err)
	return loc
}

func sale(createdAt time.Time, method models.PaymentMethod, total float64, items ...models.SaleItem) models.Sale {
	return models.Sale{
		TotalAmount:   total,
		PaymentMethod: method,
		UserID:        1,
		Items:         items,
		CreatedAt:     createdAt,
	}
}

func item(name string, qty int, subtotal float64) models.SaleItem {
	return models.SaleItem{
		ProductID: 1,
		Product:   models.Product{ID: 1, Name: name},
		Quantity:  qty,
		UnitPrice: subtotal / float64(qty),
		Subtotal:  subtotal,
	}
}

func TestDayRange(t *testing.T) {
	loc := businessZone(t)
	now := time.Date(2025, 3, 10, 15, 30, 0, 0, loc)

	start, end := DayRange(now, loc)

	assert.Equal(t, time.Date(2025, 3, 10, 0, 0, 0, 0, loc), start)
	assert.Equal(t, time.Date(2025, 3, 11, 0, 0, 0, 0, loc), end)
}

func TestDayRangeFromOtherZone(t *testing.T) {
	loc := businessZone(t)
	// 01:00 UTC on March 11 is still 22:00 on March 10 in São Paulo.
	now := time.Date(2025, 3, 11, 1, 0, 0, 0, time.UTC)

	start, _ := DayRange(now, loc)

	assert.Equal(t, time.Date(2025, 3, 10, 0, 0, 0, 0, loc), start)
}

func TestSalesNearMidnightBelongToTheirOwnDay(t *testing.T) {
	loc := businessZone(t)

	lateSale := sale(time.Date(2025, 3, 10, 23, 59, 59, 0, loc), models.PaymentCash, 10.00, item("Pastel de Carne", 1, 10.00))
	earlySale := sale(time.Date(2025, 3, 11, 0, 0, 1, 0, loc), models.PaymentCash, 20.00, item("Pastel de Queijo", 1, 20.00))
	dataset := []models.Sale{lateSale, earlySale}

	day1 := BuildDailyReport(time.Date(2025, 3, 10, 12, 0, 0, 0, loc), loc, dataset)
	day2 := BuildDailyReport(time.Date(2025, 3, 11, 12, 0, 0, 0, loc), loc, dataset)

	assert.Equal(t, 1, day1.TotalSales)
	assert.Equal(t, 10.00, day1.TotalRevenue)
	assert.Equal(t, 1, day2.TotalSales)
	assert.Equal(t, 20.00, day2.TotalRevenue)
}

func TestPaymentTotalsSumToRevenue(t *testing.T) {
	loc := businessZone(t)
	now := time.Date(2025, 3, 10, 18, 0, 0, 0, loc)

	dataset := []models.Sale{
		sale(now.Add(-8*time.Hour), models.PaymentCash, 17.00),
		sale(now.Add(-6*time.Hour), models.PaymentCash, 8.50),
		sale(now.Add(-4*time.Hour), models.PaymentDebit, 12.00),
		sale(now.Add(-2*time.Hour), models.PaymentCredit, 25.00),
		sale(now.Add(-1*time.Hour), models.PaymentQrcode, 6.00),
	}

	report := BuildDailyReport(now, loc, dataset)

	assert.Equal(t, 5, report.TotalSales)
	sum := report.PaymentMethods.Cash +
		report.PaymentMethods.Debit +
		report.PaymentMethods.Credit +
		report.PaymentMethods.Qrcode
	assert.Equal(t, report.TotalRevenue, sum)
	assert.Equal(t, 25.50, report.PaymentMethods.Cash)
}

func TestReportIsIdempotent(t *testing.T) {
	loc := businessZone(t)
	now := time.Date(2025, 3, 10, 18, 0, 0, 0, loc)

	dataset := []models.Sale{
		sale(now.Add(-3*time.Hour), models.PaymentCash, 17.00,
			item("Pastel de Carne", 2, 17.00)),
		sale(now.Add(-2*time.Hour), models.PaymentDebit, 8.00,
			item("Pastel de Queijo", 1, 8.00)),
	}

	first := BuildDailyReport(now, loc, dataset)
	second := BuildDailyReport(now, loc, dataset)

	assert.Equal(t, first, second)
}

func TestProductsSoldAggregatesByName(t *testing.T) {
	loc := businessZone(t)
	now := time.Date(2025, 3, 10, 18, 0, 0, 0, loc)

	dataset := []models.Sale{
		sale(now.Add(-3*time.Hour), models.PaymentCash, 25.50,
			item("Pastel de Carne", 2, 17.00),
			item("Pastel de Queijo", 1, 8.50)),
		sale(now.Add(-1*time.Hour), models.PaymentCash, 8.50,
			item("Pastel de Carne", 1, 8.50)),
	}

	report := BuildDailyReport(now, loc, dataset)

	require.Len(t, report.ProductsSold, 2)
	assert.Equal(t, dtos.ProductSales{Name: "Pastel de Carne", Quantity: 3, Revenue: 25.50}, report.ProductsSold[0])
	assert.Equal(t, dtos.ProductSales{Name: "Pastel de Queijo", Quantity: 1, Revenue: 8.50}, report.ProductsSold[1])
}

func TestMissingProductFallsBackToPlaceholder(t *testing.T) {
	loc := businessZone(t)
	now := time.Date(2025, 3, 10, 18, 0, 0, 0, loc)

	orphan := models.SaleItem{ProductID: 99, Quantity: 2, UnitPrice: 5.00, Subtotal: 10.00}
	dataset := []models.Sale{
		sale(now.Add(-1*time.Hour), models.PaymentCash, 10.00, orphan),
	}

	report := BuildDailyReport(now, loc, dataset)

	// Lines whose product was deleted are not dropped.
	require.Len(t, report.ProductsSold, 1)
	assert.Equal(t, dtos.MissingProductLabel, report.ProductsSold[0].Name)
	assert.Equal(t, 2, report.ProductsSold[0].Quantity)
	assert.Equal(t, 10.00, report.ProductsSold[0].Revenue)
}

func TestProductsSoldSortedByQuantityDesc(t *testing.T) {
	loc := businessZone(t)
	now := time.Date(2025, 3, 10, 18, 0, 0, 0, loc)

	dataset := []models.Sale{
		sale(now.Add(-1*time.Hour), models.PaymentCash, 100.00,
			item("Suco de Laranja", 1, 7.00),
			item("Pastel de Carne", 5, 42.50),
			item("Refrigerante Lata", 3, 18.00)),
	}

	report := BuildDailyReport(now, loc, dataset)

	require.Len(t, report.ProductsSold, 3)
	assert.Equal(t, "Pastel de Carne", report.ProductsSold[0].Name)
	assert.Equal(t, "Refrigerante Lata", report.ProductsSold[1].Name)
	assert.Equal(t, "Suco de Laranja", report.ProductsSold[2].Name)

	top := report.TopProducts(2)
	assert.Len(t, top, 2)
	assert.Equal(t, "Pastel de Carne", top[0].Name)
}

func TestEmptyDataset(t *testing.T) {
	loc := businessZone(t)
	now := time.Date(2025, 3, 10, 18, 0, 0, 0, loc)

	report := BuildDailyReport(now, loc, nil)

	assert.Equal(t, 0, report.TotalSales)
	assert.Equal(t, 0.0, report.TotalRevenue)
	assert.Empty(t, report.ProductsSold)
	assert.Equal(t, "10/03/2025", report.Date)
}
