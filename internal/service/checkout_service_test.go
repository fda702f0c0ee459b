package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"markethub-be/internal/dto"
	"markethub-be/internal/entity"
	"markethub-be/internal/pkg/logger"
	"markethub-be/internal/repository/unitofwork"
	"markethub-be/pkg/cart"
	"markethub-be/pkg/events"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func checkoutRequest() *dto.CheckoutRequest {
	return &dto.CheckoutRequest{
		ShippingAddress: dto.ShippingAddressRequest{
			FirstName: "Ada",
			LastName:  "Lovelace",
			Email:     "ada@example.com",
			Address:   "12 Analytical Way",
			City:      "London",
			State:     "LDN",
			ZipCode:   "10001",
		},
	}
}

func TestCheckoutService_Checkout(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.cart.AddItem(ctx, &dto.AddToCartRequest{ProductId: json.Number("11"), Quantity: intPtr(2)})
	require.NoError(t, err)
	_, err = f.cart.AddItem(ctx, &dto.AddToCartRequest{ProductId: json.Number("4")})
	require.NoError(t, err)

	order, err := f.checkout.Checkout(ctx, checkoutRequest())
	require.NoError(t, err)

	assert.Equal(t, 1, order.Id)
	assert.Equal(t, 58.29, order.Total)
	assert.Equal(t, entity.OrderStatusConfirmed, order.Status)
	assert.Equal(t, entity.DefaultPaymentMethod, order.PaymentMethod)
	assert.Equal(t, entity.DefaultCountry, order.ShippingAddress.Country)
	assert.Equal(t, fixedNow, order.CreatedAt)
	assert.Equal(t, fixedNow.Add(cart.DefaultDeliveryOffset), order.EstimatedDelivery)

	require.Len(t, order.Items, 2)
	assert.Equal(t, "The Silent Orchard", order.Items[0].Name)
	assert.Equal(t, 33.98, order.Items[0].LineTotal)
	assert.Equal(t, 19.99, order.Items[1].Price)

	assert.Equal(t, 0, f.cart.Count())

	product, err := f.catalogRepo.Products().FindByID(ctx, 11)
	require.NoError(t, err)
	assert.Equal(t, 73, product.Stock)

	require.Len(t, f.events, 1)
	assert.Equal(t, events.TypeOrderPlaced, f.events[0].EventType())
	placed, err := events.DecodeOrderPlaced(f.events[0])
	require.NoError(t, err)
	assert.Equal(t, 3, placed.ItemCount)
	assert.Equal(t, "Ada Lovelace", placed.CustomerName)

	require.Len(t, f.emails.payloads, 1)
	assert.Equal(t, "ada@example.com", f.emails.payloads[0].(events.OrderPlaced).Email)

	stored, err := f.checkout.GetOrder(ctx, order.Id)
	require.NoError(t, err)
	assert.Equal(t, order.Items, stored.Items)
}

func TestCheckoutService_EmptyCart(t *testing.T) {
	f := newFixture(t)

	_, err := f.checkout.Checkout(context.Background(), checkoutRequest())
	assert.ErrorIs(t, err, cart.ErrEmptyCart)
	assert.Empty(t, f.events)
}

func TestCheckoutService_OrderIdsIncrease(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	for want := 1; want <= 3; want++ {
		_, err := f.cart.AddItem(ctx, &dto.AddToCartRequest{ProductId: json.Number("2")})
		require.NoError(t, err)
		order, err := f.checkout.Checkout(ctx, checkoutRequest())
		require.NoError(t, err)
		assert.Equal(t, want, order.Id)
	}
}

type failingFactory struct{}

func (failingFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return failingUnitOfWork{}
}

type failingUnitOfWork struct {
	unitofwork.UnitOfWork
}

func (failingUnitOfWork) Begin(ctx context.Context) error {
	return errors.New("database unavailable")
}

func TestCheckoutService_PersistFailureKeepsCart(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	svc := NewCheckoutService(f.manager, f.catalog, failingFactory{}, f.bus, f.emails, logger.NewNopLogger())

	_, err := f.cart.AddItem(ctx, &dto.AddToCartRequest{ProductId: json.Number("1")})
	require.NoError(t, err)

	_, err = svc.Checkout(ctx, checkoutRequest())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "database unavailable")
	assert.Equal(t, 1, f.cart.Count())
	assert.Empty(t, f.events)

	order, err := f.checkout.Checkout(ctx, checkoutRequest())
	require.NoError(t, err)
	assert.Equal(t, 1, order.Id)
}

func TestCheckoutService_GetOrderNotFound(t *testing.T) {
	f := newFixture(t)

	_, err := f.checkout.GetOrder(context.Background(), 7)
	assert.ErrorIs(t, err, entity.ErrNotFound)
}
