package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"markethub-be/internal/bootstrap"
	"markethub-be/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T) *config.Config {
	return &config.Config{
		App: config.AppConfig{
			Port:               "0",
			ClientURL:          "http://localhost:5173",
			Environment:        "test",
			LogFilePath:        t.TempDir() + "/markethub.log",
			CorsAllowedOrigins: "*",
		},
		Checkout: config.CheckoutConfig{DeliveryDays: 5},
	}
}

func TestServer_RoutesMounted(t *testing.T) {
	cfg := testConfig(t)
	container, err := bootstrap.NewContainer(context.Background(), nil, cfg)
	require.NoError(t, err)
	defer container.Close()

	app := New(cfg, container).GetApp()

	tests := []struct {
		path   string
		status int
	}{
		{path: "/health", status: http.StatusOK},
		{path: "/api/store/v1", status: http.StatusOK},
		{path: "/api/product/v1/featured", status: http.StatusOK},
		{path: "/api/cart/v1", status: http.StatusOK},
		{path: "/api/order/v1/1", status: http.StatusNotFound},
		{path: "/ws/chat", status: http.StatusUpgradeRequired},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			resp, err := app.Test(httptest.NewRequest(http.MethodGet, tt.path, nil), -1)
			require.NoError(t, err)
			defer resp.Body.Close()
			assert.Equal(t, tt.status, resp.StatusCode)

			var body map[string]interface{}
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			assert.Contains(t, body, "success")
		})
	}
}
