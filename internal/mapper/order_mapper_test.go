package mapper

import (
	"testing"
	"time"

	"markethub-be/internal/entity"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestOrderMapper_RoundTripKeepsPricesPerLine(t *testing.T) {
	added := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	order := &entity.Order{
		Id: 9,
		Items: []entity.LineItem{
			{Id: 1, ProductId: 3, Quantity: 2, AddedAt: added},
			{Id: 2, ProductId: 7, Quantity: 1, AddedAt: added},
		},
		PricedItems: []entity.OrderItem{
			{ProductId: 3, Quantity: 2, Price: 79.99},
			{ProductId: 7, Quantity: 1, Price: 64.00},
		},
		Total:           242.52,
		ShippingAddress: entity.ShippingAddress{FirstName: "Ada", Country: entity.DefaultCountry},
		PaymentMethod:   entity.DefaultPaymentMethod,
		Status:          entity.OrderStatusConfirmed,
		CreatedAt:       added,
	}

	m := NewOrderMapper()
	row := m.ToModel(order)

	assert.Len(t, row.Items, 2)
	assert.Equal(t, 9, row.Items[0].OrderId)
	assert.Equal(t, 64.00, row.Items[1].Price)

	back := m.ToEntity(row)
	if diff := cmp.Diff(order, back); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestOrderMapper_UnpricedLineGetsZero(t *testing.T) {
	row := NewOrderMapper().ToModel(&entity.Order{
		Id:    1,
		Items: []entity.LineItem{{Id: 1, ProductId: 42, Quantity: 1}},
	})

	assert.Equal(t, 0.0, row.Items[0].Price)
}

func TestProductMapper_DoesNotShareSlices(t *testing.T) {
	p := &entity.Product{Id: 1, Images: []string{"a"}, Specifications: map[string]string{"k": "v"}}
	row := NewProductMapper().ToModel(p)

	p.Images[0] = "changed"
	p.Specifications["k"] = "changed"

	assert.Equal(t, "a", row.Images[0])
	assert.Equal(t, "v", row.Specifications.Data()["k"])
}
