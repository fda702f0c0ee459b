package nats

import (
	"context"
	"encoding/json"
	"fmt"

	"markethub-be/pkg/events"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
)

// Publisher handles sending events to the NATS bus.
type Publisher struct {
	nc *nats.Conn
	js jetstream.JetStream
}

func NewPublisher(ctx context.Context, url string) (*Publisher, error) {
	nc, js, err := connect(url)
	if err != nil {
		return nil, err
	}
	ensureStream(ctx, js)
	return &Publisher{nc: nc, js: js}, nil
}

// Publish sends an event to NATS. A nil publisher drops events so callers
// work unchanged when NATS is not configured.
func (p *Publisher) Publish(ctx context.Context, event events.Event) error {
	if p == nil {
		return nil
	}

	data, err := json.Marshal(event.Payload())
	if err != nil {
		return fmt.Errorf("failed to marshal event payload: %w", err)
	}

	subject := Subject(event.EventType())
	msg := &nats.Msg{Subject: subject, Data: data, Header: nats.Header{}}
	msg.Header.Set("Event-Type", event.EventType())
	msg.Header.Set("Occurred-At", event.Timestamp().UTC().Format(timeLayout))

	if _, err := p.js.PublishMsg(ctx, msg); err != nil {
		return fmt.Errorf("failed to publish event to subject %s: %w", subject, err)
	}
	return nil
}

func (p *Publisher) Close() {
	if p != nil && p.nc != nil {
		p.nc.Close()
	}
}
