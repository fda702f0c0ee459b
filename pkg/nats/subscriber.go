package nats

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"markethub-be/pkg/events"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
)

const timeLayout = time.RFC3339Nano

// EventHandler is a function that processes an event.
type EventHandler func(ctx context.Context, event events.Event) error

// Subscriber handles listening for events from NATS.
type Subscriber struct {
	nc       *nats.Conn
	js       jetstream.JetStream
	contexts []jetstream.ConsumeContext
}

func NewSubscriber(ctx context.Context, url string) (*Subscriber, error) {
	nc, js, err := connect(url)
	if err != nil {
		return nil, err
	}
	ensureStream(ctx, js)
	return &Subscriber{nc: nc, js: js}, nil
}

// Subscribe registers a durable consumer for one event type. Failed handlers
// cause a Nak so JetStream redelivers.
func (s *Subscriber) Subscribe(ctx context.Context, eventType, durableName string, handler EventHandler) error {
	consumer, err := s.js.CreateOrUpdateConsumer(ctx, StreamName, jetstream.ConsumerConfig{
		Durable:       durableName,
		FilterSubject: Subject(eventType),
		AckPolicy:     jetstream.AckExplicitPolicy,
		MaxDeliver:    5,
	})
	if err != nil {
		return fmt.Errorf("failed to create consumer: %w", err)
	}

	cc, err := consumer.Consume(func(msg jetstream.Msg) {
		event, err := decode(msg)
		if err != nil {
			log.Printf("Error unmarshalling event data: %v", err)
			msg.Term()
			return
		}

		if err := handler(ctx, event); err != nil {
			log.Printf("Handler failed for event %s: %v", msg.Subject(), err)
			msg.Nak()
			return
		}
		msg.Ack()
	})
	if err != nil {
		return fmt.Errorf("failed to start consuming: %w", err)
	}

	s.contexts = append(s.contexts, cc)
	log.Printf("[INFO] Subscribed to %s with durable %s", Subject(eventType), durableName)
	return nil
}

func decode(msg jetstream.Msg) (events.BaseEvent, error) {
	var payload map[string]interface{}
	if err := json.Unmarshal(msg.Data(), &payload); err != nil {
		return events.BaseEvent{}, err
	}

	eventType := msg.Headers().Get("Event-Type")
	if eventType == "" {
		eventType = strings.TrimPrefix(msg.Subject(), SubjectPrefix)
	}
	occurred, err := time.Parse(timeLayout, msg.Headers().Get("Occurred-At"))
	if err != nil {
		occurred = time.Now()
	}
	return events.New(eventType, payload, occurred), nil
}

func (s *Subscriber) Close() {
	for _, cc := range s.contexts {
		cc.Stop()
	}
	if s.nc != nil {
		s.nc.Close()
	}
}
