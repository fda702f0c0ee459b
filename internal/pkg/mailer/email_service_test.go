package mailer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderOrderConfirmation(t *testing.T) {
	body, err := RenderOrderConfirmation(OrderConfirmation{
		OrderId:           12,
		CustomerName:      "Ada <Lovelace>",
		Lines:             []OrderLine{{Name: "Yoga Mat", Quantity: 2, UnitPrice: 39.99}},
		Total:             86.38,
		EstimatedDelivery: "Jan 6, 2024",
	})
	require.NoError(t, err)

	assert.Contains(t, body, "#12")
	assert.Contains(t, body, "Ada &lt;Lovelace&gt;")
	assert.Contains(t, body, "$39.99")
	assert.Contains(t, body, "$86.38")
	assert.NotContains(t, body, "View your order")
}

func TestNoopEmailService(t *testing.T) {
	assert.NoError(t, NoopEmailService{}.SendOrderConfirmation("a@b.c", OrderConfirmation{OrderId: 1}))
}
