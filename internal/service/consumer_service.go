package service

import (
	"context"
	"encoding/json"
	"log"

	"markethub-be/internal/pkg/mailer"
	"markethub-be/pkg/events"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

const (
	orderDateLayout  = "Mon, Jan 2, 2006"
	maxEmailAttempts = 3
)

type IConsumerService interface {
	// Consume subscribes and processes messages until ctx is cancelled.
	Consume(ctx context.Context) error
}

type consumerService struct {
	pubSub       *gochannel.GoChannel
	topicName    string
	emailService mailer.IEmailService
	orderURL     func(orderId int) string
	attempts     map[string]int
}

func NewConsumerService(pubSub *gochannel.GoChannel, topicName string, emailService mailer.IEmailService, orderURL func(orderId int) string) IConsumerService {
	return &consumerService{
		pubSub:       pubSub,
		topicName:    topicName,
		emailService: emailService,
		orderURL:     orderURL,
		attempts:     map[string]int{},
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case msg, ok := <-messages:
			if !ok {
				return nil
			}
			cs.processMessage(msg)
		}
	}
}

func (cs *consumerService) processMessage(msg *message.Message) {
	var payload events.OrderPlaced
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		log.Printf("[ERROR] Failed to unmarshal order confirmation: %v", err)
		msg.Ack() // malformed, retrying will not help
		return
	}

	log.Printf("[INFO] Sending confirmation for order %d", payload.OrderId)

	lines := make([]mailer.OrderLine, 0, len(payload.Lines))
	for _, l := range payload.Lines {
		lines = append(lines, mailer.OrderLine{Name: l.Name, Quantity: l.Quantity, UnitPrice: l.UnitPrice})
	}

	data := mailer.OrderConfirmation{
		OrderId:           payload.OrderId,
		CustomerName:      payload.CustomerName,
		Lines:             lines,
		Total:             payload.Total,
		EstimatedDelivery: payload.EstimatedDelivery.Format(orderDateLayout),
	}
	if cs.orderURL != nil {
		data.OrderURL = cs.orderURL(payload.OrderId)
	}

	if err := cs.emailService.SendOrderConfirmation(payload.Email, data); err != nil {
		cs.attempts[msg.UUID]++
		if cs.attempts[msg.UUID] < maxEmailAttempts {
			log.Printf("[WARN] Confirmation email for order %d failed, retrying: %v", payload.OrderId, err)
			msg.Nack()
			return
		}
		log.Printf("[ERROR] Giving up on confirmation email for order %d: %v", payload.OrderId, err)
	}
	delete(cs.attempts, msg.UUID)
	msg.Ack()
}
