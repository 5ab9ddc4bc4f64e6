package services

import (
	"sort"
	"time"

	"pastel-pos/dtos"
	"pastel-pos/models"
)

// DayRange returns the half-open [start, end) interval of now's calendar day
// in loc. A sale belongs to that day iff its created_at falls inside.
func DayRange(now time.Time, loc *time.Location) (time.Time, time.Time) {
	t := now.In(loc)
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
	return start, start.AddDate(0, 0, 1)
}

// BuildDailyReport summarizes the sales belonging to now's calendar day in
// loc. It is a pure function of its inputs: the same dataset and the same
// "now" always produce the same report.
func BuildDailyReport(now time.Time, loc *time.Location, sales []models.Sale) dtos.DailyReport {
	start, end := DayRange(now, loc)

	report := dtos.DailyReport{
		Date: start.Format("02/01/2006"),
	}

	byProduct := make(map[string]*dtos.ProductSales)

	for _, sale := range sales {
		created := sale.CreatedAt.In(loc)
		if created.Before(start) || !created.Before(end) {
			continue
		}

		report.TotalSales++
		report.TotalRevenue += sale.TotalAmount

		switch sale.PaymentMethod {
		case models.PaymentCash:
			report.PaymentMethods.Cash += sale.TotalAmount
		case models.PaymentDebit:
			report.PaymentMethods.Debit += sale.TotalAmount
		case models.PaymentCredit:
			report.PaymentMethods.Credit += sale.TotalAmount
		case models.PaymentQrcode:
			report.PaymentMethods.Qrcode += sale.TotalAmount
		}

		for _, item := range sale.Items {
			name := item.Product.Name
			if name == "" {
				name = dtos.MissingProductLabel
			}

			entry, ok := byProduct[name]
			if !ok {
				entry = &dtos.ProductSales{Name: name}
				byProduct[name] = entry
			}
			entry.Quantity += item.Quantity
			entry.Revenue += item.Subtotal
		}
	}

	report.ProductsSold = make([]dtos.ProductSales, 0, len(byProduct))
	for _, entry := range byProduct {
		report.ProductsSold = append(report.ProductsSold, *entry)
	}

	// Quantity descending, name ascending on ties, so output is stable
	// across runs.
	sort.Slice(report.ProductsSold, func(i, j int) bool {
		a, b := report.ProductsSold[i], report.ProductsSold[j]
		if a.Quantity != b.Quantity {
			return a.Quantity > b.Quantity
		}
		return a.Name < b.Name
	})

	return report
}
