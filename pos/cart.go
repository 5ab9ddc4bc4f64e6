package pos

import (
	"sync"

	"pastel-pos/models"
)

// CartLine pairs a product snapshot with a quantity. Lines live only for the
// duration of one checkout session and are never persisted.
type CartLine struct {
	Product  models.Product `json:"product"`
	Quantity int            `json:"quantity"`
}

func (l CartLine) Subtotal() float64 {
	return l.Product.Price * float64(l.Quantity)
}

// Cart accumulates candidate purchases for a single operator before checkout.
type Cart struct {
	mu    sync.Mutex
	lines []CartLine
}

func NewCart() *Cart {
	return &Cart{}
}

// Add puts qty units of product in the cart. An existing line grows but is
// clamped at the product's current stock; at the cap the call is a silent
// no-op. The stored product snapshot is refreshed on every call.
func (c *Cart) Add(product models.Product, qty int) {
	if qty <= 0 {
		qty = 1
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.lines {
		if c.lines[i].Product.ID == product.ID {
			next := c.lines[i].Quantity + qty
			if next > product.StockQuantity {
				next = product.StockQuantity
			}
			c.lines[i].Product = product
			c.lines[i].Quantity = next
			return
		}
	}

	if qty > product.StockQuantity {
		qty = product.StockQuantity
	}
	if qty <= 0 {
		return
	}
	c.lines = append(c.lines, CartLine{Product: product, Quantity: qty})
}

// SetQuantity sets a line to exactly qty. qty == 0 removes the line. A qty
// above the product's current stock is rejected and the line left untouched.
// Reports whether the cart was changed.
func (c *Cart) SetQuantity(product models.Product, qty int) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if qty == 0 {
		return c.removeLocked(product.ID)
	}
	if qty < 0 || qty > product.StockQuantity {
		return false
	}

	for i := range c.lines {
		if c.lines[i].Product.ID == product.ID {
			c.lines[i].Product = product
			c.lines[i].Quantity = qty
			return true
		}
	}
	return false
}

func (c *Cart) Remove(productID uint) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.removeLocked(productID)
}

func (c *Cart) removeLocked(productID uint) bool {
	for i := range c.lines {
		if c.lines[i].Product.ID == productID {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return true
		}
	}
	return false
}

// Total is recomputed on every call so that price edits between requests are
// always reflected.
func (c *Cart) Total() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	var total float64
	for _, l := range c.lines {
		total += l.Subtotal()
	}
	return total
}

// Lines returns a copy of the cart contents.
func (c *Cart) Lines() []CartLine {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]CartLine, len(c.lines))
	copy(out, c.lines)
	return out
}

func (c *Cart) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.lines)
}

func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lines = nil
}

// CartStore holds one in-progress cart per operator. Carts are process-local
// state, not shared across server instances.
type CartStore struct {
	mu    sync.Mutex
	carts map[uint]*Cart
}

func NewCartStore() *CartStore {
	return &CartStore{carts: make(map[uint]*Cart)}
}

func (s *CartStore) ForUser(userID uint) *Cart {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart, ok := s.carts[userID]
	if !ok {
		cart = NewCart()
		s.carts[userID] = cart
	}
	return cart
}
