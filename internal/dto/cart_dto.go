package dto

import (
	"encoding/json"

	"markethub-be/internal/entity"
	"markethub-be/pkg/cart"
)

type CartResponse struct {
	Items []entity.LineItem `json:"items"`
	Count int               `json:"count"`
}

// AddToCartRequest accepts product_id as a number or a numeric string.
type AddToCartRequest struct {
	ProductId json.Number `json:"product_id" validate:"required"`
	Quantity  *int        `json:"quantity"`
}

// UpdateCartItemRequest sets an absolute quantity; 0 removes the line.
type UpdateCartItemRequest struct {
	Quantity *int `json:"quantity" validate:"required"`
}

type CartLineResponse struct {
	entity.LineItem
	Product   ProductResponse `json:"product"`
	LineTotal float64         `json:"line_total"`
}

type CartStoreGroupResponse struct {
	Store    *StoreResponse     `json:"store"`
	Lines    []CartLineResponse `json:"lines"`
	Subtotal float64            `json:"subtotal"`
}

type CartSummaryResponse struct {
	Items            []entity.LineItem        `json:"items"`
	Groups           []CartStoreGroupResponse `json:"groups"`
	Count            int                      `json:"count"`
	Totals           cart.Totals              `json:"totals"`
	FreeShippingHint string                   `json:"free_shipping_hint,omitempty"`
}
