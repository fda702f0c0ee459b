package events

import (
	"encoding/json"
	"fmt"
	"time"
)

// OrderPlaced is the wire form of an ORDER_PLACED event.
type OrderPlaced struct {
	OrderId           int       `json:"order_id"`
	Email             string    `json:"email"`
	CustomerName      string    `json:"customer_name"`
	Total             float64   `json:"total"`
	ItemCount         int       `json:"item_count"`
	Lines             []Line    `json:"lines"`
	CreatedAt         time.Time `json:"created_at"`
	EstimatedDelivery time.Time `json:"estimated_delivery"`
}

type Line struct {
	ProductId int     `json:"product_id"`
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
}

// Event converts the payload into a generic map-backed event.
func (o OrderPlaced) Event() (BaseEvent, error) {
	raw, err := json.Marshal(o)
	if err != nil {
		return BaseEvent{}, err
	}
	var data map[string]interface{}
	if err := json.Unmarshal(raw, &data); err != nil {
		return BaseEvent{}, err
	}
	return New(TypeOrderPlaced, data, o.CreatedAt), nil
}

// DecodeOrderPlaced rebuilds the typed payload from a generic event.
func DecodeOrderPlaced(e Event) (OrderPlaced, error) {
	var out OrderPlaced
	raw, err := json.Marshal(e.Payload())
	if err != nil {
		return out, err
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return out, fmt.Errorf("decode %s: %w", e.EventType(), err)
	}
	return out, nil
}
