package entity

import "time"

const (
	OrderStatusConfirmed = "confirmed"
	DefaultCountry       = "United States"
	DefaultPaymentMethod = "card"
)

type OrderItem struct {
	ProductId int     `json:"product_id"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
}

type ShippingAddress struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
	City      string `json:"city"`
	State     string `json:"state"`
	ZipCode   string `json:"zip_code"`
	Country   string `json:"country"`
}

type Order struct {
	Id                int
	Items             []LineItem
	PricedItems       []OrderItem
	Total             float64
	ShippingAddress   ShippingAddress
	PaymentMethod     string
	Status            string
	CreatedAt         time.Time
	EstimatedDelivery time.Time
}

func (o Order) Clone() Order {
	out := o
	out.Items = append([]LineItem(nil), o.Items...)
	out.PricedItems = append([]OrderItem(nil), o.PricedItems...)
	return out
}
