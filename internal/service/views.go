package service

// CartLine is a read-model row for displaying one cart line.
type CartLine struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	Qty       int    `json:"qty"`
	UnitPrice string `json:"unit_price"`
	Subtotal  string `json:"subtotal"`
}

// CartSummary is a read-model of the whole cart for the UI layer.
type CartSummary struct {
	Lines    []CartLine `json:"lines"`
	Subtotal string     `json:"subtotal"`
}
