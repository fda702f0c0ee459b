package cart

import (
	"testing"

	"markethub-be/internal/entity"

	"github.com/stretchr/testify/assert"
)

func TestComputeTotals(t *testing.T) {
	tests := []struct {
		name     string
		subtotal float64
		want     Totals
	}{
		{
			name:     "below free shipping",
			subtotal: 40.00,
			want:     Totals{Subtotal: 40, Tax: 3.20, Shipping: 9.99, Total: 53.19, FreeShippingRemaining: 10},
		},
		{
			name:     "above free shipping",
			subtotal: 60.00,
			want:     Totals{Subtotal: 60, Tax: 4.80, Shipping: 0, Total: 64.80},
		},
		{
			name:     "exactly at threshold",
			subtotal: 50.00,
			want:     Totals{Subtotal: 50, Tax: 4.00, Shipping: 0, Total: 54.00},
		},
		{
			name:     "empty cart still pays shipping",
			subtotal: 0,
			want:     Totals{Subtotal: 0, Tax: 0, Shipping: 9.99, Total: 9.99, FreeShippingRemaining: 50},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ComputeTotals(tt.subtotal))
		})
	}
}

func TestSubtotalSkipsUnpricedLines(t *testing.T) {
	prices := map[int]float64{1: 19.99, 2: 5.00}
	lookup := func(id int) (float64, bool) {
		p, ok := prices[id]
		return p, ok
	}
	items := []entity.LineItem{
		{Id: 1, ProductId: 1, Quantity: 2},
		{Id: 2, ProductId: 2, Quantity: 3},
		{Id: 3, ProductId: 404, Quantity: 10},
	}

	assert.Equal(t, 54.98, Subtotal(items, lookup))
}
