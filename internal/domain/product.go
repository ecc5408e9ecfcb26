package domain

import (
	"github.com/shopspring/decimal"
)

// Product is the catalogue's view of a sellable item. Carts and orders never
// hold a Product; they capture snapshots of its fields at add-time.
type Product struct {
	ID     string
	Name   string
	Price  decimal.Decimal
	Stock  int
	TypeID string
}

// ProductType is a catalogue category used for browsing filters.
type ProductType struct {
	ID          string
	Name        string
	Description string
}
