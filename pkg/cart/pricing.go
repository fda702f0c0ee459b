package cart

import (
	"math"

	"markethub-be/internal/entity"
)

const (
	TaxRate               = 0.08
	FreeShippingThreshold = 50.00
	FlatShippingFee       = 9.99
)

// PriceLookup returns the current unit price of a product.
type PriceLookup func(productId int) (price float64, ok bool)

type Totals struct {
	Subtotal              float64 `json:"subtotal"`
	Tax                   float64 `json:"tax"`
	Shipping              float64 `json:"shipping"`
	Total                 float64 `json:"total"`
	FreeShippingRemaining float64 `json:"free_shipping_remaining"`
}

// Subtotal sums quantity x unit price. Lines whose product cannot be priced are skipped.
func Subtotal(items []entity.LineItem, lookup PriceLookup) float64 {
	subtotal := 0.0
	for _, item := range items {
		price, ok := lookup(item.ProductId)
		if !ok {
			continue
		}
		subtotal += price * float64(item.Quantity)
	}
	return roundCents(subtotal)
}

func ComputeTotals(subtotal float64) Totals {
	subtotal = roundCents(subtotal)
	tax := roundCents(subtotal * TaxRate)

	shipping := FlatShippingFee
	remaining := roundCents(FreeShippingThreshold - subtotal)
	if subtotal >= FreeShippingThreshold {
		shipping = 0
		remaining = 0
	}

	return Totals{
		Subtotal:              subtotal,
		Tax:                   tax,
		Shipping:              shipping,
		Total:                 roundCents(subtotal + tax + shipping),
		FreeShippingRemaining: remaining,
	}
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
