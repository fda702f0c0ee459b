package controller

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"markethub-be/internal/pkg/logger"
	"markethub-be/internal/pkg/serverutils"
	"markethub-be/internal/repository/memory"
	"markethub-be/internal/repository/unitofwork"
	"markethub-be/internal/service"
	"markethub-be/pkg/cart"
	"markethub-be/pkg/catalog"
	"markethub-be/pkg/chat"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

type envelope struct {
	Success bool            `json:"success"`
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

type discardPublisher struct{}

func (discardPublisher) Publish(ctx context.Context, payload interface{}) error {
	return nil
}

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	log := logger.NewNopLogger()

	repo := memory.NewCatalogRepository(catalog.DefaultSeed())
	orders := memory.NewOrderRepository()
	factory := unitofwork.NewMemoryRepositoryFactory(repo.Stores(), repo.Products(), orders)
	bus := service.NewLocalEventBus()
	manager := cart.NewManager()

	catalogService := service.NewCatalogService(repo.Stores(), repo.Products(), bus, log)
	cartService := service.NewCartService(manager, catalogService, log)
	checkoutService := service.NewCheckoutService(manager, catalogService, factory, bus, discardPublisher{}, log)
	engine := chat.NewEngine(memory.NewSessionRepository(0), chat.WithLatency(0, 0), chat.WithSeed(3))
	chatbotService := service.NewChatbotService(engine, catalogService, cartService, log)

	app := fiber.New()
	app.Use(serverutils.ErrorHandlerMiddleware())
	api := app.Group("/api")
	NewStoreController(catalogService).RegisterRoutes(api)
	NewProductController(catalogService).RegisterRoutes(api)
	NewCartController(cartService).RegisterRoutes(api)
	NewCheckoutController(checkoutService).RegisterRoutes(api)
	NewChatbotController(chatbotService).RegisterRoutes(api)
	return app
}

func do(t *testing.T, app *fiber.App, method, path string, body interface{}) (int, envelope) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var env envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	return resp.StatusCode, env
}

func decode[T any](t *testing.T, raw json.RawMessage) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(raw, &out))
	return out
}
