// Package cart holds a session's in-progress order before submission.
package cart

import (
	"github.com/bilaLBOOS8/foodieMeknes/internal/domain"
	"github.com/bilaLBOOS8/foodieMeknes/internal/pricing"
)

// Cart owns its lines exclusively until submission. One instance per
// session; it is not safe for concurrent use.
type Cart struct {
	items     []domain.CartItem
	total     float64
	itemCount int
}

func New() *Cart {
	return &Cart{}
}

// Add merges into an existing line for the same product, keeping that line's
// customizations, or appends a new line with the product's price captured at
// add time. Quantities below 1 count as 1.
func (c *Cart) Add(product domain.Product, quantity int, customizations map[string]string) {
	if quantity < 1 {
		quantity = 1
	}
	if line := c.find(product.ID); line != nil {
		line.Quantity += quantity
		c.recompute()
		return
	}
	if customizations == nil {
		customizations = map[string]string{}
	}
	c.items = append(c.items, domain.CartItem{
		Product:        product,
		Quantity:       quantity,
		Customizations: customizations,
		UnitPrice:      product.Price,
	})
	c.recompute()
}

// Remove drops the line for a product. Removing an absent product is a no-op.
func (c *Cart) Remove(productID int64) {
	for i := range c.items {
		if c.items[i].Product.ID == productID {
			c.items = append(c.items[:i], c.items[i+1:]...)
			break
		}
	}
	c.recompute()
}

// UpdateQuantity sets a line's quantity; zero or negative removes the line.
func (c *Cart) UpdateQuantity(productID int64, quantity int) {
	if quantity <= 0 {
		c.Remove(productID)
		return
	}
	if line := c.find(productID); line != nil {
		line.Quantity = quantity
	}
	c.recompute()
}

// UpdateCustomizations replaces a line's customization map wholesale.
func (c *Cart) UpdateCustomizations(productID int64, customizations map[string]string) {
	if customizations == nil {
		customizations = map[string]string{}
	}
	if line := c.find(productID); line != nil {
		line.Customizations = customizations
	}
	c.recompute()
}

func (c *Cart) Clear() {
	c.items = nil
	c.total = 0
	c.itemCount = 0
}

// Items returns a snapshot copy; mutating it does not touch the live cart.
func (c *Cart) Items() []domain.CartItem {
	out := make([]domain.CartItem, len(c.items))
	copy(out, c.items)
	return out
}

func (c *Cart) Total() float64 {
	return c.total
}

func (c *Cart) ItemCount() int {
	return c.itemCount
}

func (c *Cart) find(productID int64) *domain.CartItem {
	for i := range c.items {
		if c.items[i].Product.ID == productID {
			return &c.items[i]
		}
	}
	return nil
}

// recompute re-derives every line subtotal and the cached aggregates so the
// invariant subtotal == (unit_price + extras) * quantity holds at every
// observation point.
func (c *Cart) recompute() {
	c.total = 0
	c.itemCount = 0
	for i := range c.items {
		line := &c.items[i]
		line.Subtotal = (line.UnitPrice + pricing.PriceExtras(line.Customizations)) * float64(line.Quantity)
		c.total += line.Subtotal
		c.itemCount += line.Quantity
	}
}
