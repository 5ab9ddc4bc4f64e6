package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"pastel-pos/dtos"
	"pastel-pos/models"
	"pastel-pos/pos"
	"pastel-pos/repository"
)

type mockSaleStore struct {
	mock.Mock
}

func (m *mockSaleStore) CreateSale(sale *models.Sale) error {
	args := m.Called(sale)
	return args.Error(0)
}

func float64Ptr(v float64) *float64 { return &v }

func cartWith(lines ...pos.CartLine) *pos.Cart {
	cart := pos.NewCart()
	for _, l := range lines {
		cart.Add(l.Product, l.Quantity)
	}
	return cart
}

func testCart() *pos.Cart {
	return cartWith(
		pos.CartLine{Product: models.Product{ID: 1, Name: "Pastel de Carne", Price: 5.00, StockQuantity: 10}, Quantity: 2},
		pos.CartLine{Product: models.Product{ID: 2, Name: "Caldo de Cana", Price: 3.50, StockQuantity: 10}, Quantity: 1},
	)
}

func TestCheckoutBuildsSaleFromCart(t *testing.T) {
	store := new(mockSaleStore)
	loc := time.FixedZone("BRT", -3*60*60)
	service := NewCheckoutService(store, loc)

	var created *models.Sale
	store.On("CreateSale", mock.AnythingOfType("*models.Sale")).
		Run(func(args mock.Arguments) {
			created = args.Get(0).(*models.Sale)
		}).
		Return(nil).Once()

	cart := testCart()
	result, err := service.Checkout(cart, 42, dtos.CheckoutInput{PaymentMethod: "cash"})

	assert.NoError(t, err)
	assert.NotNil(t, result)
	store.AssertExpectations(t)

	assert.Equal(t, 13.50, created.TotalAmount)
	assert.Equal(t, models.PaymentCash, created.PaymentMethod)
	assert.Equal(t, uint(42), created.UserID)
	assert.Equal(t, loc, created.CreatedAt.Location())

	assert.Len(t, created.Items, 2)
	assert.Equal(t, uint(1), created.Items[0].ProductID)
	assert.Equal(t, 2, created.Items[0].Quantity)
	assert.Equal(t, 5.00, created.Items[0].UnitPrice)
	assert.Equal(t, 10.00, created.Items[0].Subtotal)
	assert.Equal(t, uint(2), created.Items[1].ProductID)
	assert.Equal(t, 3.50, created.Items[1].Subtotal)

	// Cart is consumed only after the store commits.
	assert.Equal(t, 0, cart.Len())
}

func TestCheckoutEmptyCart(t *testing.T) {
	store := new(mockSaleStore)
	service := NewCheckoutService(store, time.UTC)

	result, err := service.Checkout(pos.NewCart(), 1, dtos.CheckoutInput{PaymentMethod: "cash"})

	assert.Nil(t, result)
	assert.ErrorIs(t, err, ErrEmptyCart)
	store.AssertNotCalled(t, "CreateSale", mock.Anything)
}

func TestCheckoutRejectsUnknownPaymentMethod(t *testing.T) {
	store := new(mockSaleStore)
	service := NewCheckoutService(store, time.UTC)

	result, err := service.Checkout(testCart(), 1, dtos.CheckoutInput{PaymentMethod: "cheque"})

	assert.Nil(t, result)
	assert.ErrorIs(t, err, models.ErrUnknownPaymentMethod)
	store.AssertNotCalled(t, "CreateSale", mock.Anything)
}

func TestCheckoutCashChange(t *testing.T) {
	store := new(mockSaleStore)
	store.On("CreateSale", mock.Anything).Return(nil).Once()
	service := NewCheckoutService(store, time.UTC)

	result, err := service.Checkout(testCart(), 1, dtos.CheckoutInput{
		PaymentMethod: "cash",
		CashReceived:  float64Ptr(20.00),
	})

	assert.NoError(t, err)
	assert.NotNil(t, result.Change)
	assert.Equal(t, 6.50, *result.Change)
}

func TestCheckoutCashReceivedTooLow(t *testing.T) {
	store := new(mockSaleStore)
	service := NewCheckoutService(store, time.UTC)

	result, err := service.Checkout(testCart(), 1, dtos.CheckoutInput{
		PaymentMethod: "cash",
		CashReceived:  float64Ptr(10.00),
	})

	assert.Nil(t, result)
	assert.ErrorIs(t, err, ErrCashReceivedTooLow)
	store.AssertNotCalled(t, "CreateSale", mock.Anything)
}

func TestCheckoutNonCashIgnoresCashReceived(t *testing.T) {
	store := new(mockSaleStore)
	store.On("CreateSale", mock.Anything).Return(nil).Once()
	service := NewCheckoutService(store, time.UTC)

	result, err := service.Checkout(testCart(), 1, dtos.CheckoutInput{
		PaymentMethod: "debit",
		CashReceived:  float64Ptr(20.00),
	})

	assert.NoError(t, err)
	assert.Nil(t, result.Change)
}

func TestCheckoutKeepsCartOnStoreFailure(t *testing.T) {
	store := new(mockSaleStore)
	store.On("CreateSale", mock.Anything).Return(repository.ErrInsufficientStock).Once()
	service := NewCheckoutService(store, time.UTC)

	cart := testCart()
	result, err := service.Checkout(cart, 1, dtos.CheckoutInput{PaymentMethod: "qrcode"})

	assert.Nil(t, result)
	assert.ErrorIs(t, err, repository.ErrInsufficientStock)
	assert.Equal(t, 2, cart.Len())
}

func TestCheckoutBlankClientNameDropped(t *testing.T) {
	store := new(mockSaleStore)

	var created *models.Sale
	store.On("CreateSale", mock.Anything).
		Run(func(args mock.Arguments) { created = args.Get(0).(*models.Sale) }).
		Return(nil).Twice()
	service := NewCheckoutService(store, time.UTC)

	_, err := service.Checkout(testCart(), 1, dtos.CheckoutInput{
		PaymentMethod: "cash",
		ClientName:    stringPtr("   "),
	})
	assert.NoError(t, err)
	assert.Nil(t, created.ClientName)

	_, err = service.Checkout(testCart(), 1, dtos.CheckoutInput{
		PaymentMethod: "cash",
		ClientName:    stringPtr("  Maria "),
	})
	assert.NoError(t, err)
	assert.NotNil(t, created.ClientName)
	assert.Equal(t, "Maria", *created.ClientName)
}

func stringPtr(s string) *string { return &s }
