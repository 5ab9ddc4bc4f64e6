package models

import "time"

// CashSession tracks the drawer of one operator between opening and closing
// counts. Expected cash is derived from cash-method sales only; card and PIX
// sales never touch the drawer.
type CashSession struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	UserID       uint       `gorm:"not null;index" json:"user_id"`
	OpeningCash  float64    `gorm:"not null" json:"opening_cash"`
	CashSales    float64    `json:"cash_sales"`
	ExpectedCash float64    `json:"expected_cash"`
	ClosingCash  *float64   `json:"closing_cash,omitempty"`
	Difference   *float64   `json:"difference,omitempty"`
	Status       string     `gorm:"type:enum('open','closed');default:'open'" json:"status"`
	OpenedAt     time.Time  `json:"opened_at"`
	ClosedAt     *time.Time `json:"closed_at,omitempty"`
}
