package services

import (
	"errors"
	"strings"
	"time"

	"pastel-pos/dtos"
	"pastel-pos/models"
	"pastel-pos/pos"
)

var (
	ErrEmptyCart          = errors.New("cart is empty")
	ErrCashReceivedTooLow = errors.New("cash received is less than the total")
)

// SaleStore persists a sale with its items and the matching stock decrements
// atomically.
type SaleStore interface {
	CreateSale(sale *models.Sale) error
}

type CheckoutResult struct {
	Sale *models.Sale `json:"sale"`
	// Change is cash_received minus total for cash sales. Presentational
	// only; it is never stored.
	Change *float64 `json:"change,omitempty"`
}

type CheckoutService interface {
	Checkout(cart *pos.Cart, userID uint, input dtos.CheckoutInput) (*CheckoutResult, error)
}

type checkoutService struct {
	store SaleStore
	loc   *time.Location
}

func NewCheckoutService(store SaleStore, loc *time.Location) CheckoutService {
	return &checkoutService{store: store, loc: loc}
}

// Checkout converts a non-empty cart into a persisted sale. Unit prices are
// snapshotted from the cart lines, the sale total is the sum of the line
// subtotals, and created_at is recorded in the business time zone. The cart
// is cleared only after the store commits.
func (s *checkoutService) Checkout(cart *pos.Cart, userID uint, input dtos.CheckoutInput) (*CheckoutResult, error) {
	lines := cart.Lines()
	if len(lines) == 0 {
		return nil, ErrEmptyCart
	}

	method, err := models.ParsePaymentMethod(input.PaymentMethod)
	if err != nil {
		return nil, err
	}

	items := make([]models.SaleItem, 0, len(lines))
	var total float64
	for _, line := range lines {
		subtotal := line.Subtotal()
		items = append(items, models.SaleItem{
			ProductID: line.Product.ID,
			Quantity:  line.Quantity,
			UnitPrice: line.Product.Price,
			Subtotal:  subtotal,
		})
		total += subtotal
	}

	var change *float64
	if method == models.PaymentCash && input.CashReceived != nil {
		if *input.CashReceived < total {
			return nil, ErrCashReceivedTooLow
		}
		diff := *input.CashReceived - total
		change = &diff
	}

	var clientName *string
	if input.ClientName != nil {
		if name := strings.TrimSpace(*input.ClientName); name != "" {
			clientName = &name
		}
	}

	sale := models.Sale{
		TotalAmount:   total,
		PaymentMethod: method,
		UserID:        userID,
		ClientName:    clientName,
		Items:         items,
		CreatedAt:     time.Now().In(s.loc),
	}

	if err := s.store.CreateSale(&sale); err != nil {
		return nil, err
	}

	cart.Clear()

	return &CheckoutResult{Sale: &sale, Change: change}, nil
}
