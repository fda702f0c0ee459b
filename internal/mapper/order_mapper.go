package mapper

import (
	"markethub-be/internal/entity"
	"markethub-be/internal/model"

	"gorm.io/datatypes"
)

type OrderMapper struct{}

func NewOrderMapper() *OrderMapper {
	return &OrderMapper{}
}

// ToModel merges the cart lines with the prices charged at checkout.
// Lines without a priced counterpart are stored with a zero price.
func (m *OrderMapper) ToModel(o *entity.Order) *model.Order {
	if o == nil {
		return nil
	}

	prices := make(map[int]float64, len(o.PricedItems))
	for _, p := range o.PricedItems {
		prices[p.ProductId] = p.Price
	}

	items := make([]model.OrderItem, 0, len(o.Items))
	for _, line := range o.Items {
		items = append(items, model.OrderItem{
			OrderId:    o.Id,
			LineItemId: line.Id,
			ProductId:  line.ProductId,
			Quantity:   line.Quantity,
			Price:      prices[line.ProductId],
			AddedAt:    line.AddedAt,
		})
	}

	return &model.Order{
		Id:                o.Id,
		Total:             o.Total,
		ShippingAddress:   datatypes.NewJSONType(model.ShippingAddress(o.ShippingAddress)),
		PaymentMethod:     o.PaymentMethod,
		Status:            o.Status,
		Items:             items,
		CreatedAt:         o.CreatedAt,
		EstimatedDelivery: o.EstimatedDelivery,
	}
}

func (m *OrderMapper) ToEntity(o *model.Order) *entity.Order {
	if o == nil {
		return nil
	}

	lines := make([]entity.LineItem, 0, len(o.Items))
	priced := make([]entity.OrderItem, 0, len(o.Items))
	for _, it := range o.Items {
		lines = append(lines, entity.LineItem{
			Id:        it.LineItemId,
			ProductId: it.ProductId,
			Quantity:  it.Quantity,
			AddedAt:   it.AddedAt,
		})
		priced = append(priced, entity.OrderItem{
			ProductId: it.ProductId,
			Quantity:  it.Quantity,
			Price:     it.Price,
		})
	}

	return &entity.Order{
		Id:                o.Id,
		Items:             lines,
		PricedItems:       priced,
		Total:             o.Total,
		ShippingAddress:   entity.ShippingAddress(o.ShippingAddress.Data()),
		PaymentMethod:     o.PaymentMethod,
		Status:            o.Status,
		CreatedAt:         o.CreatedAt,
		EstimatedDelivery: o.EstimatedDelivery,
	}
}
