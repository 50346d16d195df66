package cart

// Line is one distinct menu item plus its selected quantity. Name and price
// are snapshots taken when the item was first added.
type Line struct {
	ItemID   string  `json:"item_id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

// Cart is the authoritative in-memory cart for one checkout session. At most
// one line exists per item ID and no retained line ever has quantity <= 0.
type Cart struct {
	Lines []Line `json:"lines"`
}

// AddItem adds one unit of an item. If a line for the ID already exists its
// quantity is incremented, otherwise a new line is inserted with quantity 1.
func (c *Cart) AddItem(itemID, name string, price float64) {
	for i := range c.Lines {
		if c.Lines[i].ItemID == itemID {
			c.Lines[i].Quantity++
			return
		}
	}
	c.Lines = append(c.Lines, Line{ItemID: itemID, Name: name, Price: price, Quantity: 1})
}

// ChangeQuantity adjusts a line's quantity by delta, floored at 0. A line
// that reaches 0 is removed. Unknown item IDs are a no-op.
func (c *Cart) ChangeQuantity(itemID string, delta int) {
	for i := range c.Lines {
		if c.Lines[i].ItemID != itemID {
			continue
		}
		q := c.Lines[i].Quantity + delta
		if q <= 0 {
			c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)
		} else {
			c.Lines[i].Quantity = q
		}
		return
	}
}

// Subtotal is the sum of price * quantity over all lines; 0 for an empty cart
func (c *Cart) Subtotal() float64 {
	var sum float64
	for _, l := range c.Lines {
		sum += l.Price * float64(l.Quantity)
	}
	return sum
}

// Total is the subtotal plus the delivery fee. Pass 0 when no estimate has
// been generated yet.
func (c *Cart) Total(deliveryFee float64) float64 {
	return c.Subtotal() + deliveryFee
}

// IsEmpty reports whether the cart holds no lines
func (c *Cart) IsEmpty() bool {
	return len(c.Lines) == 0
}
