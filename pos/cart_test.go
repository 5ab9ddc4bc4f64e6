package pos

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"pastel-pos/models"
)

func product(id uint, name string, price float64, stock int) models.Product {
	return models.Product{ID: id, Name: name, Price: price, StockQuantity: stock, Category: "Pastéis"}
}

func TestAddNewLineDefaultsToOne(t *testing.T) {
	cart := NewCart()
	cart.Add(product(1, "Pastel de Carne", 8.50, 10), 0)

	lines := cart.Lines()
	assert.Len(t, lines, 1)
	assert.Equal(t, 1, lines[0].Quantity)
}

func TestAddAccumulatesQuantity(t *testing.T) {
	cart := NewCart()
	p := product(1, "Pastel de Carne", 8.50, 10)

	cart.Add(p, 2)
	cart.Add(p, 3)

	lines := cart.Lines()
	assert.Len(t, lines, 1)
	assert.Equal(t, 5, lines[0].Quantity)
}

func TestAddClampsAtStock(t *testing.T) {
	cart := NewCart()
	p := product(1, "Pastel de Queijo", 8.00, 3)

	// One more add than there is stock: the line caps at the stock level.
	for i := 0; i < 4; i++ {
		cart.Add(p, 1)
	}

	lines := cart.Lines()
	assert.Len(t, lines, 1)
	assert.Equal(t, 3, lines[0].Quantity)
}

func TestAddOutOfStockProductIsNoop(t *testing.T) {
	cart := NewCart()
	cart.Add(product(1, "Esgotado", 5.00, 0), 1)

	assert.Equal(t, 0, cart.Len())
}

func TestSetQuantityZeroRemovesLine(t *testing.T) {
	cart := NewCart()
	p := product(1, "Pastel de Carne", 8.50, 10)
	cart.Add(p, 2)

	assert.True(t, cart.SetQuantity(p, 0))
	assert.Equal(t, 0, cart.Len())
}

func TestSetQuantityRejectsAboveStock(t *testing.T) {
	cart := NewCart()
	p := product(1, "Pastel de Carne", 8.50, 3)
	cart.Add(p, 2)

	// Rejected, not clamped: the line stays at its previous quantity.
	assert.False(t, cart.SetQuantity(p, 4))

	lines := cart.Lines()
	assert.Len(t, lines, 1)
	assert.Equal(t, 2, lines[0].Quantity)
}

func TestSetQuantityExact(t *testing.T) {
	cart := NewCart()
	p := product(1, "Pastel de Carne", 8.50, 10)
	cart.Add(p, 1)

	assert.True(t, cart.SetQuantity(p, 7))

	lines := cart.Lines()
	assert.Equal(t, 7, lines[0].Quantity)
}

func TestSetQuantityUnknownProduct(t *testing.T) {
	cart := NewCart()
	assert.False(t, cart.SetQuantity(product(9, "Fantasma", 1.00, 5), 2))
	assert.Equal(t, 0, cart.Len())
}

func TestTotalSumsLineSubtotals(t *testing.T) {
	cart := NewCart()
	cart.Add(product(1, "Pastel de Carne", 5.00, 10), 2)
	cart.Add(product(2, "Caldo de Cana", 3.50, 10), 1)

	assert.Equal(t, 13.50, cart.Total())
}

func TestTotalReflectsPriceEdits(t *testing.T) {
	cart := NewCart()
	p := product(1, "Pastel de Carne", 8.50, 10)
	cart.Add(p, 2)
	assert.Equal(t, 17.00, cart.Total())

	// The admin edits the price; the next add refreshes the snapshot and
	// the total is recomputed, never cached.
	p.Price = 10.00
	cart.Add(p, 1)
	assert.Equal(t, 30.00, cart.Total())
}

func TestRemoveAndClear(t *testing.T) {
	cart := NewCart()
	cart.Add(product(1, "Pastel de Carne", 8.50, 10), 1)
	cart.Add(product(2, "Caldo de Cana", 6.00, 10), 1)

	cart.Remove(1)
	assert.Equal(t, 1, cart.Len())

	cart.Clear()
	assert.Equal(t, 0, cart.Len())
	assert.Equal(t, 0.0, cart.Total())
}

func TestCartStoreIsPerUser(t *testing.T) {
	store := NewCartStore()

	a := store.ForUser(1)
	b := store.ForUser(2)

	a.Add(product(1, "Pastel de Carne", 8.50, 10), 1)

	assert.Equal(t, 1, a.Len())
	assert.Equal(t, 0, b.Len())
	assert.Same(t, a, store.ForUser(1))
}
