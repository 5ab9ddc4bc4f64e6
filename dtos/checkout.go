package dtos

type CartItemInput struct {
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  int  `json:"quantity"`
}

// Quantity is a pointer so an explicit 0 (remove the line) binds.
type CartQuantityInput struct {
	Quantity *int `json:"quantity" binding:"required"`
}

// CashReceived is presentational only: it feeds the change calculation and
// the printed receipt but is never persisted. ClientName is stored on the
// sale when non-blank after trimming.
type CheckoutInput struct {
	PaymentMethod string   `json:"payment_method" binding:"required"`
	ClientName    *string  `json:"client_name,omitempty"`
	CashReceived  *float64 `json:"cash_received,omitempty"`
}
