package service

import (
	"context"
	"fmt"

	"markethub-be/internal/pkg/logger"
	"markethub-be/pkg/events"
	pktNats "markethub-be/pkg/nats"
)

// NotificationDelivery pushes real-time updates to connected clients.
// Implemented by the websocket Hub.
type NotificationDelivery interface {
	Broadcast(messageType string, data interface{})
}

// NotificationService turns domain events into websocket broadcasts. It listens
// on NATS when a subscriber is configured and on the local bus otherwise.
type NotificationService struct {
	subscriber *pktNats.Subscriber
	local      *LocalEventBus
	delivery   NotificationDelivery
	logger     logger.ILogger
}

func NewNotificationService(sub *pktNats.Subscriber, local *LocalEventBus, delivery NotificationDelivery, log logger.ILogger) *NotificationService {
	return &NotificationService{
		subscriber: sub,
		local:      local,
		delivery:   delivery,
		logger:     log,
	}
}

var notifiedEvents = []string{events.TypeOrderPlaced, events.TypeCatalogChanged}

// Start registers the event handlers.
func (s *NotificationService) Start(ctx context.Context) error {
	for _, eventType := range notifiedEvents {
		if s.subscriber != nil {
			durable := "notif-" + eventType
			if err := s.subscriber.Subscribe(ctx, eventType, durable, s.HandleEvent); err != nil {
				return fmt.Errorf("subscribe %s: %w", eventType, err)
			}
			continue
		}
		if s.local != nil {
			s.local.Subscribe(eventType, s.HandleEvent)
		}
	}
	s.logger.Info("NotificationService", "Notification service started", map[string]interface{}{"nats": s.subscriber != nil})
	return nil
}

func (s *NotificationService) HandleEvent(ctx context.Context, event events.Event) error {
	s.logger.Debug("NotificationService", "Processing event", map[string]interface{}{"type": event.EventType()})
	if s.delivery == nil {
		return nil
	}

	switch event.EventType() {
	case events.TypeOrderPlaced:
		placed, err := events.DecodeOrderPlaced(event)
		if err != nil {
			s.logger.Warn("NotificationService", "Malformed order event", map[string]interface{}{"error": err.Error()})
			return nil
		}
		// Only the public bits go out; the shipping address stays server-side.
		s.delivery.Broadcast("order_placed", map[string]interface{}{
			"order_id":   placed.OrderId,
			"total":      placed.Total,
			"item_count": placed.ItemCount,
			"created_at": placed.CreatedAt,
		})
	case events.TypeCatalogChanged:
		s.delivery.Broadcast("catalog_changed", event.Payload())
	default:
		s.logger.Debug("NotificationService", fmt.Sprintf("No notification for %s", event.EventType()), nil)
	}
	return nil
}
