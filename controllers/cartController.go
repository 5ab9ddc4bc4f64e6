package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"pastel-pos/config"
	"pastel-pos/dtos"
	"pastel-pos/models"
	"pastel-pos/pos"
	"pastel-pos/repository"
	"pastel-pos/services"
)

// One in-progress cart per operator, kept in process memory only.
var cartStore = pos.NewCartStore()

func currentCart(c *gin.Context) *pos.Cart {
	return cartStore.ForUser(c.MustGet("user_id").(uint))
}

func cartResponse(cart *pos.Cart) gin.H {
	return gin.H{
		"items": cart.Lines(),
		"total": cart.Total(),
	}
}

func GetCart(c *gin.Context) {
	c.JSON(http.StatusOK, cartResponse(currentCart(c)))
}

// POST /cart/items — adds to an existing line, clamped at current stock.
func AddCartItem(c *gin.Context) {
	var input dtos.CartItemInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var product models.Product
	if err := config.DB.First(&product, input.ProductID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}

	cart := currentCart(c)
	cart.Add(product, input.Quantity)

	c.JSON(http.StatusOK, cartResponse(cart))
}

// PUT /cart/items/:productId — sets the exact quantity. 0 removes the line;
// more than the current stock is rejected.
func UpdateCartItem(c *gin.Context) {
	productID, err := strconv.ParseUint(c.Param("productId"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product id"})
		return
	}

	var input dtos.CartQuantityInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var product models.Product
	if err := config.DB.First(&product, productID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}

	cart := currentCart(c)
	if !cart.SetQuantity(product, *input.Quantity) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Quantity exceeds available stock"})
		return
	}

	c.JSON(http.StatusOK, cartResponse(cart))
}

func RemoveCartItem(c *gin.Context) {
	productID, err := strconv.ParseUint(c.Param("productId"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product id"})
		return
	}

	cart := currentCart(c)
	cart.Remove(uint(productID))

	c.JSON(http.StatusOK, cartResponse(cart))
}

func ClearCart(c *gin.Context) {
	cart := currentCart(c)
	cart.Clear()
	c.JSON(http.StatusOK, cartResponse(cart))
}

// POST /cart/checkout
func Checkout(c *gin.Context) {
	var input dtos.CheckoutInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID := c.MustGet("user_id").(uint)
	cart := currentCart(c)

	service := services.NewCheckoutService(
		repository.NewSaleRepository(config.DB),
		config.BusinessLocation(),
	)

	result, err := service.Checkout(cart, userID, input)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrEmptyCart),
			errors.Is(err, services.ErrCashReceivedTooLow),
			errors.Is(err, models.ErrUnknownPaymentMethod):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, repository.ErrInsufficientStock):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	// Reload with product data so the client sees the full sale.
	if err := config.DB.Preload("Items.Product").First(result.Sale, result.Sale.ID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, result)
}
