package model

import (
	"time"

	"gorm.io/datatypes"
)

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

// Order ids are assigned by the cart, not by the database.
type Order struct {
	Id                int                                 `gorm:"primaryKey;autoIncrement:false"`
	Total             float64                             `gorm:"type:decimal(12,2);not null"`
	ShippingAddress   datatypes.JSONType[ShippingAddress] `gorm:"type:jsonb"`
	PaymentMethod     string                              `gorm:"type:varchar(32);not null"`
	Status            string                              `gorm:"type:varchar(32);not null;index"`
	Items             []OrderItem                         `gorm:"foreignKey:OrderId;constraint:OnDelete:CASCADE"`
	CreatedAt         time.Time
	EstimatedDelivery time.Time
}

func (Order) TableName() string {
	return "orders"
}

// OrderItem stores one cart line together with the price charged for it.
type OrderItem struct {
	Id         uint      `gorm:"primaryKey"`
	OrderId    int       `gorm:"not null;index"`
	LineItemId int       `gorm:"not null"`
	ProductId  int       `gorm:"not null;index"`
	Quantity   int       `gorm:"not null"`
	Price      float64   `gorm:"type:decimal(10,2);not null"`
	AddedAt    time.Time
}

func (OrderItem) TableName() string {
	return "order_items"
}
