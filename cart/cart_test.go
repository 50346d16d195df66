package cart

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddItemMergesLines(t *testing.T) {
	var c Cart
	c.AddItem("a", "Burger Deluxe", 12.99)
	c.AddItem("a", "Burger Deluxe", 12.99)

	require.Len(t, c.Lines, 1)
	assert.Equal(t, 2, c.Lines[0].Quantity)
	assert.Equal(t, "Burger Deluxe", c.Lines[0].Name)
}

func TestChangeQuantity(t *testing.T) {
	var c Cart
	c.AddItem("a", "Burger Deluxe", 12.99)
	c.AddItem("b", "Caesar Salad", 8.99)

	c.ChangeQuantity("a", 2)
	require.Len(t, c.Lines, 2)
	assert.Equal(t, 3, c.Lines[0].Quantity)

	// Dropping to zero removes the line entirely
	c.ChangeQuantity("a", -3)
	require.Len(t, c.Lines, 1)
	assert.Equal(t, "b", c.Lines[0].ItemID)

	// Further decrements on a removed ID are a no-op
	c.ChangeQuantity("a", -1)
	require.Len(t, c.Lines, 1)

	// Large negative deltas floor at removal, never negative quantities
	c.ChangeQuantity("b", -100)
	assert.True(t, c.IsEmpty())
}

func TestChangeQuantityUnknownIDIsNoop(t *testing.T) {
	var c Cart
	c.AddItem("a", "Burger Deluxe", 12.99)
	c.ChangeQuantity("nope", -5)

	require.Len(t, c.Lines, 1)
	assert.Equal(t, 1, c.Lines[0].Quantity)
}

func TestSubtotalEmptyCart(t *testing.T) {
	var c Cart
	assert.Zero(t, c.Subtotal())
	assert.True(t, c.IsEmpty())
	assert.Zero(t, c.Total(0))
}

func TestOrderSummaryScenario(t *testing.T) {
	var c Cart
	c.AddItem("burger", "Burger Deluxe", 12.99)
	c.AddItem("burger", "Burger Deluxe", 12.99)
	c.AddItem("salad", "Caesar Salad", 8.99)

	assert.InDelta(t, 34.97, c.Subtotal(), 1e-9)
	assert.InDelta(t, 42.47, c.Total(7.50), 1e-9)
}

func TestTotalWithoutEstimateEqualsSubtotal(t *testing.T) {
	var c Cart
	c.AddItem("a", "Pizza Margherita", 16.99)
	assert.InDelta(t, c.Subtotal(), c.Total(0), 1e-9)
}

// No sequence of adds and quantity changes may ever leave a line with a
// non-positive quantity, and the subtotal must always equal the sum over the
// retained lines.
func TestCartInvariantsUnderRandomOps(t *testing.T) {
	rnd := rand.New(rand.NewSource(42))
	ids := []string{"a", "b", "c", "d"}
	prices := map[string]float64{"a": 12.99, "b": 8.99, "c": 14.99, "d": 5.99}

	var c Cart
	for i := 0; i < 5000; i++ {
		id := ids[rnd.Intn(len(ids))]
		if rnd.Intn(2) == 0 {
			c.AddItem(id, id, prices[id])
		} else {
			c.ChangeQuantity(id, rnd.Intn(7)-3)
		}

		var want float64
		seen := map[string]bool{}
		for _, l := range c.Lines {
			if l.Quantity <= 0 {
				t.Fatalf("op %d: line %q has quantity %d", i, l.ItemID, l.Quantity)
			}
			if seen[l.ItemID] {
				t.Fatalf("op %d: duplicate line for %q", i, l.ItemID)
			}
			seen[l.ItemID] = true
			want += l.Price * float64(l.Quantity)
		}
		if math.Abs(c.Subtotal()-want) > 1e-9 {
			t.Fatalf("op %d: subtotal %v, want %v", i, c.Subtotal(), want)
		}
	}
}
