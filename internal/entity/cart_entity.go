package entity

import "time"

// LineItem binds one product to a quantity inside the cart.
type LineItem struct {
	Id        int       `json:"id"`
	ProductId int       `json:"product_id"`
	Quantity  int       `json:"quantity"`
	AddedAt   time.Time `json:"added_at"`
}
