package dto

import (
	"time"

	"markethub-be/internal/entity"
)

type ShippingAddressRequest struct {
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Phone     string `json:"phone"`
	Address   string `json:"address" validate:"required"`
	City      string `json:"city" validate:"required"`
	State     string `json:"state" validate:"required"`
	ZipCode   string `json:"zip_code" validate:"required"`
	Country   string `json:"country"`
}

type CheckoutRequest struct {
	ShippingAddress ShippingAddressRequest `json:"shipping_address" validate:"required"`
	PaymentMethod   string                 `json:"payment_method" validate:"omitempty,oneof=card"`
}

func (r ShippingAddressRequest) ToEntity() entity.ShippingAddress {
	country := r.Country
	if country == "" {
		country = entity.DefaultCountry
	}
	return entity.ShippingAddress{
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Email:     r.Email,
		Phone:     r.Phone,
		Address:   r.Address,
		City:      r.City,
		State:     r.State,
		ZipCode:   r.ZipCode,
		Country:   country,
	}
}

type OrderItemResponse struct {
	LineItemId int     `json:"line_item_id"`
	ProductId  int     `json:"product_id"`
	Name       string  `json:"name,omitempty"`
	Quantity   int     `json:"quantity"`
	Price      float64 `json:"price"`
	LineTotal  float64 `json:"line_total"`
}

type OrderResponse struct {
	Id                int                    `json:"id"`
	Items             []OrderItemResponse    `json:"items"`
	Total             float64                `json:"total"`
	ShippingAddress   entity.ShippingAddress `json:"shipping_address"`
	PaymentMethod     string                 `json:"payment_method"`
	Status            string                 `json:"status"`
	CreatedAt         time.Time              `json:"created_at"`
	EstimatedDelivery time.Time              `json:"estimated_delivery"`
}
