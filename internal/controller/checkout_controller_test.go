package controller

import (
	"fmt"
	"net/http"
	"testing"

	"markethub-be/internal/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func shippingBody() map[string]interface{} {
	return map[string]interface{}{
		"shipping_address": map[string]interface{}{
			"first_name": "Grace",
			"last_name":  "Hopper",
			"email":      "grace@example.com",
			"address":    "1 Compiler Rd",
			"city":       "Arlington",
			"state":      "VA",
			"zip_code":   "22201",
		},
	}
}

func TestCheckoutController_PlaceAndShowOrder(t *testing.T) {
	app := newTestApp(t)

	status, _ := do(t, app, http.MethodPost, "/api/cart/v1/items", map[string]interface{}{"product_id": 13, "quantity": 2})
	require.Equal(t, http.StatusOK, status)

	status, env := do(t, app, http.MethodPost, "/api/checkout/v1", shippingBody())
	require.Equal(t, http.StatusCreated, status)
	order := decode[dto.OrderResponse](t, env.Data)
	assert.Equal(t, 1, order.Id)
	// 25.98 + 2.08 tax + 9.99 shipping
	assert.Equal(t, 38.05, order.Total)
	assert.Equal(t, "card", order.PaymentMethod)
	assert.Equal(t, "United States", order.ShippingAddress.Country)

	status, env = do(t, app, http.MethodGet, "/api/cart/v1", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, 0, decode[dto.CartResponse](t, env.Data).Count)

	status, env = do(t, app, http.MethodGet, fmt.Sprintf("/api/order/v1/%d", order.Id), nil)
	require.Equal(t, http.StatusOK, status)
	stored := decode[dto.OrderResponse](t, env.Data)
	require.Len(t, stored.Items, 1)
	assert.Equal(t, "Stars for Little Dreamers", stored.Items[0].Name)

	status, _ = do(t, app, http.MethodGet, "/api/order/v1/2", nil)
	assert.Equal(t, http.StatusNotFound, status)
}

func TestCheckoutController_Rejections(t *testing.T) {
	app := newTestApp(t)

	status, env := do(t, app, http.MethodPost, "/api/checkout/v1", shippingBody())
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "cart is empty", env.Message)

	body := shippingBody()
	body["shipping_address"].(map[string]interface{})["email"] = "not-an-email"
	body["payment_method"] = "cash"
	status, env = do(t, app, http.MethodPost, "/api/checkout/v1", body)
	require.Equal(t, http.StatusBadRequest, status)
	fields := decode[map[string]string](t, env.Data)
	assert.Equal(t, "must be a valid email address", fields["email"])
	assert.Contains(t, fields, "payment_method")
}
