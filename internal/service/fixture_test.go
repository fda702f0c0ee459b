package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"markethub-be/internal/pkg/logger"
	"markethub-be/internal/repository/memory"
	"markethub-be/internal/repository/unitofwork"
	"markethub-be/pkg/cart"
	"markethub-be/pkg/catalog"
	"markethub-be/pkg/chat"
	"markethub-be/pkg/events"
)

var fixedNow = time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

type recordingPublisher struct {
	mu       sync.Mutex
	payloads []interface{}
}

func (p *recordingPublisher) Publish(_ context.Context, payload interface{}) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.payloads = append(p.payloads, payload)
	return nil
}

type recordingDelivery struct {
	mu       sync.Mutex
	messages []string
	data     []interface{}
}

func (d *recordingDelivery) Broadcast(messageType string, data interface{}) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.messages = append(d.messages, messageType)
	d.data = append(d.data, data)
}

type fixture struct {
	catalogRepo *memory.CatalogRepository
	orders      *memory.OrderRepository
	factory     unitofwork.RepositoryFactory
	bus         *LocalEventBus
	events      []events.Event
	emails      *recordingPublisher
	manager     *cart.Manager

	catalog  ICatalogService
	cart     ICartService
	checkout ICheckoutService
	chatbot  IChatbotService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	log := logger.NewNopLogger()

	f := &fixture{
		catalogRepo: memory.NewCatalogRepository(catalog.DefaultSeed()),
		orders:      memory.NewOrderRepository(),
		bus:         NewLocalEventBus(),
		emails:      &recordingPublisher{},
		manager:     cart.NewManager(cart.WithClock(func() time.Time { return fixedNow })),
	}
	f.factory = unitofwork.NewMemoryRepositoryFactory(f.catalogRepo.Stores(), f.catalogRepo.Products(), f.orders)

	for _, eventType := range []string{events.TypeOrderPlaced, events.TypeCatalogChanged} {
		f.bus.Subscribe(eventType, func(_ context.Context, e events.Event) error {
			f.events = append(f.events, e)
			return nil
		})
	}

	f.catalog = NewCatalogService(f.catalogRepo.Stores(), f.catalogRepo.Products(), f.bus, log)
	f.cart = NewCartService(f.manager, f.catalog, log)
	f.checkout = NewCheckoutService(f.manager, f.catalog, f.factory, f.bus, f.emails, log)

	var (
		clockMu sync.Mutex
		tick    = fixedNow
	)
	clock := func() time.Time {
		clockMu.Lock()
		defer clockMu.Unlock()
		tick = tick.Add(time.Second)
		return tick
	}
	engine := chat.NewEngine(memory.NewSessionRepository(0), chat.WithLatency(0, 0), chat.WithSeed(1), chat.WithClock(clock))
	f.chatbot = NewChatbotService(engine, f.catalog, f.cart, log)
	return f
}
