package nats

import (
	"context"
	"testing"
	"time"

	"markethub-be/pkg/events"

	"github.com/stretchr/testify/assert"
)

func TestSubject(t *testing.T) {
	assert.Equal(t, "events.ORDER_PLACED", Subject(events.TypeOrderPlaced))
}

func TestNilPublisherDropsEvents(t *testing.T) {
	var p *Publisher
	assert.NoError(t, p.Publish(context.Background(), events.New(events.TypeOrderPlaced, nil, time.Now())))
	p.Close()
}
