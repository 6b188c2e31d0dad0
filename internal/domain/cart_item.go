package domain

// CartItem is one customized-product-quantity line. The product is embedded
// as a full snapshot so the line survives later catalog edits and deletes;
// UnitPrice is captured at add time and never re-read from the catalog.
type CartItem struct {
	Product        Product           `json:"product"`
	Quantity       int               `json:"quantity"`
	Customizations map[string]string `json:"customizations"`
	UnitPrice      float64           `json:"unit_price"`
	Subtotal       float64           `json:"subtotal"`
	// Placeholder marks a line whose product could not be resolved at
	// submission time and was priced from the client's claim. Staff must
	// review these manually.
	Placeholder bool `json:"placeholder,omitempty"`
}
