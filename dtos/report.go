package dtos

// MissingProductLabel is the fallback name for sale lines whose product was
// deleted from the catalog. The lines stay in reports and receipts so totals
// remain auditable.
const MissingProductLabel = "Produto não encontrado"

type PaymentBreakdown struct {
	Cash   float64 `json:"cash"`
	Debit  float64 `json:"debit"`
	Credit float64 `json:"credit"`
	Qrcode float64 `json:"qrcode"`
}

type ProductSales struct {
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Revenue  float64 `json:"revenue"`
}

type DailyReport struct {
	Date           string           `json:"date"`
	TotalSales     int              `json:"total_sales"`
	TotalRevenue   float64          `json:"total_revenue"`
	PaymentMethods PaymentBreakdown `json:"payment_methods"`
	ProductsSold   []ProductSales   `json:"products_sold"`
}

// TopProducts returns the n best sellers. ProductsSold is kept sorted by
// quantity descending.
func (r DailyReport) TopProducts(n int) []ProductSales {
	if n > len(r.ProductsSold) {
		n = len(r.ProductsSold)
	}
	return r.ProductsSold[:n]
}
