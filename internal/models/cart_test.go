package models_test

import (
	"math/rand"
	"testing"

	"sareeta/internal/models"

	"github.com/stretchr/testify/assert"
)

func sampleItem(id, name string, price float64) *models.Item {
	return &models.Item{ID: id, Name: name, Price: price}
}

func TestCartAddItem(t *testing.T) {
	cart := &models.Cart{ID: "cart-1"}
	cart.AddItem(sampleItem("item-1", "item1", 30))
	cart.AddItem(sampleItem("item-2", "item2", 20))

	assert.Len(t, cart.Items, 2)
	assert.Equal(t, 50.0, cart.Total)

	// Duplicates are allowed and represent quantity.
	cart.AddItem(sampleItem("item-1", "item1", 30))
	assert.Len(t, cart.Items, 3)
	assert.Equal(t, 80.0, cart.Total)
}

func TestCartRemoveItem(t *testing.T) {
	cart := &models.Cart{ID: "cart-1"}
	cart.AddItem(sampleItem("item-1", "item1", 30))
	cart.AddItem(sampleItem("item-2", "item2", 20))

	removed := cart.RemoveItem("item-1", 1)
	assert.Equal(t, 1, removed)
	assert.Len(t, cart.Items, 1)
	assert.Equal(t, 20.0, cart.Total)
	assert.Equal(t, "item-2", cart.Items[0].ItemID)
}

func TestCartRemoveItemMoreThanPresent(t *testing.T) {
	cart := &models.Cart{ID: "cart-1"}
	cart.AddItem(sampleItem("item-1", "item1", 30))
	cart.AddItem(sampleItem("item-1", "item1", 30))
	cart.AddItem(sampleItem("item-2", "item2", 20))

	removed := cart.RemoveItem("item-1", 5)
	assert.Equal(t, 2, removed)
	assert.Len(t, cart.Items, 1)
	assert.Equal(t, 20.0, cart.Total)
}

func TestCartRemoveItemAbsent(t *testing.T) {
	cart := &models.Cart{ID: "cart-1"}
	cart.AddItem(sampleItem("item-1", "item1", 30))

	removed := cart.RemoveItem("item-99", 2)
	assert.Equal(t, 0, removed)
	assert.Len(t, cart.Items, 1)
	assert.Equal(t, 30.0, cart.Total)
}

func TestCartRemoveItemZeroQuantity(t *testing.T) {
	cart := &models.Cart{ID: "cart-1"}
	cart.AddItem(sampleItem("item-1", "item1", 30))

	removed := cart.RemoveItem("item-1", 0)
	assert.Equal(t, 0, removed)
	assert.Len(t, cart.Items, 1)
	assert.Equal(t, 30.0, cart.Total)
}

func TestCartRecalculateTotalRepairsCorruptTotal(t *testing.T) {
	cart := &models.Cart{ID: "cart-1"}
	cart.AddItem(sampleItem("item-1", "item1", 30))
	cart.Total = 9999 // corrupt on purpose

	cart.RecalculateTotal()
	assert.Equal(t, 30.0, cart.Total)
}

// TestCartTotalInvariantRandomSequence drives a random add/remove sequence
// and asserts after every step that the total equals the sum of the prices
// of the entries currently in the cart.
func TestCartTotalInvariantRandomSequence(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	catalog := []*models.Item{
		sampleItem("item-1", "item1", 2.99),
		sampleItem("item-2", "item2", 1.99),
		sampleItem("item-3", "item3", 30),
		sampleItem("item-4", "item4", 20),
		sampleItem("item-5", "item5", 0),
	}

	cart := &models.Cart{ID: "cart-1"}
	for step := 0; step < 1000; step++ {
		item := catalog[rng.Intn(len(catalog))]
		quantity := rng.Intn(4)
		if rng.Intn(2) == 0 {
			for i := 0; i < quantity; i++ {
				cart.AddItem(item)
			}
		} else {
			cart.RemoveItem(item.ID, quantity)
		}

		var want float64
		for _, entry := range cart.Items {
			want += entry.Price
		}
		assert.Equal(t, want, cart.Total, "invariant broken at step %d", step)
	}
}

func TestOrderFromCart(t *testing.T) {
	user := &models.User{ID: "user-1", Username: "test"}
	cart := &models.Cart{ID: "cart-1"}
	cart.AddItem(sampleItem("item-1", "item1", 30))
	cart.AddItem(sampleItem("item-2", "item2", 20))

	order := models.OrderFromCart(user, cart)
	assert.Equal(t, "user-1", order.UserID)
	assert.Len(t, order.Items, 2)
	assert.Equal(t, 50.0, order.Total)

	// The snapshot must be independent of the source cart.
	cart.RemoveItem("item-1", 1)
	assert.Len(t, order.Items, 2)
	assert.Equal(t, 50.0, order.Total)
	assert.Len(t, cart.Items, 1)
}
