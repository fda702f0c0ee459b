package bootstrap

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"markethub-be/internal/config"
	"markethub-be/internal/controller"
	"markethub-be/internal/handler"
	"markethub-be/internal/pkg/logger"
	"markethub-be/internal/pkg/mailer"
	"markethub-be/internal/repository/contract"
	"markethub-be/internal/repository/implementation"
	"markethub-be/internal/repository/memory"
	"markethub-be/internal/repository/unitofwork"
	"markethub-be/internal/service"
	"markethub-be/internal/websocket"
	"markethub-be/pkg/cart"
	"markethub-be/pkg/catalog"
	"markethub-be/pkg/chat"

	pktNats "markethub-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// OrderConfirmationTopic is the watermill topic feeding the confirmation email consumer.
const OrderConfirmationTopic = "order_confirmation"

type Container struct {
	// Controllers
	StoreController    controller.IStoreController
	ProductController  controller.IProductController
	CartController     controller.ICartController
	CheckoutController controller.ICheckoutController
	ChatbotController  controller.IChatbotController

	// Background Services (Exposed for main.go to run)
	ConsumerService     service.IConsumerService
	NotificationService *service.NotificationService

	// WebSockets
	ChatSocketHandler *handler.ChatSocketHandler
	WebSocketHub      *websocket.Hub

	Logger logger.ILogger

	closers []func() error
}

// NewContainer wires the application. A nil db keeps the catalog and orders in memory.
func NewContainer(ctx context.Context, db *gorm.DB, cfg *config.Config) (*Container, error) {
	// 1. Core Facades
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.IsProduction())
	c := &Container{Logger: sysLogger}

	var (
		stores     contract.StoreRepository
		products   contract.ProductRepository
		orders     contract.OrderRepository
		uowFactory unitofwork.RepositoryFactory
	)
	if db != nil {
		stores = implementation.NewStoreRepository(db)
		products = implementation.NewProductRepository(db)
		orders = implementation.NewOrderRepository(db)
		uowFactory = unitofwork.NewRepositoryFactory(db)
		log.Printf("[INFO] Using PostgreSQL catalog")
	} else {
		seed, err := loadSeed(cfg.Catalog.SeedFile)
		if err != nil {
			return nil, err
		}
		catalogRepo := memory.NewCatalogRepository(seed)
		orderRepo := memory.NewOrderRepository()
		stores, products, orders = catalogRepo.Stores(), catalogRepo.Products(), orderRepo
		uowFactory = unitofwork.NewMemoryRepositoryFactory(stores, products, orders)
		log.Printf("[INFO] Using in-memory catalog (%d stores, %d products)", len(seed.Stores), len(seed.Products))
	}

	var emailService mailer.IEmailService = mailer.NoopEmailService{}
	if cfg.SMTP.Enabled() {
		emailService = mailer.NewEmailService(
			cfg.SMTP.Host,
			cfg.SMTP.Port,
			cfg.SMTP.Email,
			cfg.SMTP.Password,
			cfg.SMTP.SenderName,
		)
	} else {
		log.Printf("[INFO] SMTP not configured, confirmation emails are skipped")
	}

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermillLogger)
	c.closers = append(c.closers, pubSub.Close)

	localBus := service.NewLocalEventBus()
	var eventPublisher service.EventPublisher = localBus
	var natsSub *pktNats.Subscriber
	if cfg.App.NatsURL != "" {
		natsPub, err := pktNats.NewPublisher(ctx, cfg.App.NatsURL)
		if err != nil {
			log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
		} else {
			eventPublisher = natsPub
			c.closers = append(c.closers, func() error { natsPub.Close(); return nil })
		}
		natsSub, err = pktNats.NewSubscriber(ctx, cfg.App.NatsURL)
		if err != nil {
			log.Printf("[WARN] Failed to connect to NATS Subscriber: %v", err)
			natsSub = nil
		} else {
			c.closers = append(c.closers, func() error { natsSub.Close(); return nil })
		}
	}

	// Redis
	var rdb *redis.Client
	if cfg.App.RedisURL != "" {
		opt, err := redis.ParseURL(cfg.App.RedisURL)
		if err != nil {
			log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
			opt = &redis.Options{Addr: cfg.App.RedisURL}
		}
		rdb = redis.NewClient(opt)
		pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
		if _, err := rdb.Ping(pingCtx).Result(); err != nil {
			log.Printf("[WARN] Failed to connect to Redis: %v", err)
		}
		cancel()
		c.closers = append(c.closers, rdb.Close)
	}

	// WebSocket Hub
	wsLogger := logger.NewIsolatedLogger("logs/notification.log")
	wsHub := websocket.NewHub(rdb, wsLogger)

	// 3. Services
	lastOrderId, err := orders.MaxID(ctx)
	if err != nil {
		return nil, fmt.Errorf("read order sequence: %w", err)
	}
	cartManager := cart.NewManager(
		cart.WithOrderSequence(lastOrderId),
		cart.WithDeliveryOffset(time.Duration(cfg.Checkout.DeliveryDays)*24*time.Hour),
	)

	engineOpts := []chat.Option{
		chat.WithLatency(cfg.Chat.MinLatency, cfg.Chat.MaxLatency),
		chat.WithLogger(sysLogger),
	}
	if cfg.Chat.Seed != 0 {
		engineOpts = append(engineOpts, chat.WithSeed(cfg.Chat.Seed))
	}
	engine := chat.NewEngine(memory.NewSessionRepository(cfg.Chat.SessionTTL), engineOpts...)

	publisherService := service.NewPublisherService(OrderConfirmationTopic, pubSub)
	consumerService := service.NewConsumerService(pubSub, OrderConfirmationTopic, emailService, func(orderId int) string {
		return fmt.Sprintf("%s/order-confirmation/%d", cfg.App.ClientURL, orderId)
	})

	catalogService := service.NewCatalogService(stores, products, eventPublisher, sysLogger)
	cartService := service.NewCartService(cartManager, catalogService, sysLogger)
	checkoutService := service.NewCheckoutService(cartManager, catalogService, uowFactory, eventPublisher, publisherService, sysLogger)
	chatbotService := service.NewChatbotService(engine, catalogService, cartService, sysLogger)

	// 3.5 Notification System Infrastructure
	notifService := service.NewNotificationService(natsSub, localBus, wsHub, wsLogger) // Hub implements NotificationDelivery

	// 4. Controllers
	c.StoreController = controller.NewStoreController(catalogService)
	c.ProductController = controller.NewProductController(catalogService)
	c.CartController = controller.NewCartController(cartService)
	c.CheckoutController = controller.NewCheckoutController(checkoutService)
	c.ChatbotController = controller.NewChatbotController(chatbotService)
	c.ChatSocketHandler = handler.NewChatSocketHandler(chatbotService, wsHub, wsLogger)
	c.WebSocketHub = wsHub
	c.ConsumerService = consumerService
	c.NotificationService = notifService
	return c, nil
}

// Close releases broker and cache connections in reverse order of creation.
func (c *Container) Close() {
	for i := len(c.closers) - 1; i >= 0; i-- {
		if err := c.closers[i](); err != nil {
			log.Printf("[WARN] Close failed: %v", err)
		}
	}
	_ = c.Logger.Sync()
}

func loadSeed(path string) (*catalog.Seed, error) {
	if path == "" {
		return catalog.DefaultSeed(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog seed: %w", err)
	}
	defer f.Close()
	return catalog.LoadSeed(f)
}
