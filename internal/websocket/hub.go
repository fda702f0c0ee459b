package websocket

import (
	"context"
	"encoding/json"
	"sync"

	"markethub-be/internal/pkg/logger"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// ClusterChannel is the Redis channel instances use to share broadcasts.
const ClusterChannel = "cluster_events"

// Envelope is the frame format sent to browsers.
type Envelope struct {
	Type string      `json:"type"`
	Data interface{} `json:"data"`
}

type clusterMessage struct {
	Origin  string          `json:"origin"`
	Message json.RawMessage `json:"message"`
}

type Hub struct {
	// Registered clients keyed by connection id.
	clients map[string]*Client

	register   chan *Client
	unregister chan *Client

	// Closed when Run returns so pumps never block on a stopped hub.
	done chan struct{}

	// Closed once the Redis subscription is confirmed (or immediately without Redis).
	ready chan struct{}

	mu sync.RWMutex

	// Redis connection for cross-instance communication
	rdb        *redis.Client
	instanceId string

	logger logger.ILogger
}

func NewHub(rdb *redis.Client, log logger.ILogger) *Hub {
	return &Hub{
		clients:    make(map[string]*Client),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		done:       make(chan struct{}),
		ready:      make(chan struct{}),
		rdb:        rdb,
		instanceId: uuid.NewString(),
		logger:     log,
	}
}

// Run processes registrations until ctx is cancelled, then disconnects every client.
func (h *Hub) Run(ctx context.Context) {
	var wg sync.WaitGroup
	if h.rdb != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			h.subscribeToRedis(ctx)
		}()
	} else {
		close(h.ready)
	}

	defer func() {
		close(h.done)
		h.mu.Lock()
		for id, client := range h.clients {
			close(client.Send)
			delete(h.clients, id)
		}
		h.mu.Unlock()
		wg.Wait()
	}()

	for {
		select {
		case <-ctx.Done():
			return

		case client := <-h.register:
			h.mu.Lock()
			h.clients[client.Id] = client
			h.mu.Unlock()
			h.logger.Info("Hub", "Client registered", map[string]interface{}{"client_id": client.Id})

		case client := <-h.unregister:
			h.remove(client)
		}
	}
}

// Count returns the number of locally connected clients.
func (h *Hub) Count() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Broadcast sends a frame to every connected client here and on other instances.
func (h *Hub) Broadcast(messageType string, data interface{}) {
	frame, err := json.Marshal(Envelope{Type: messageType, Data: data})
	if err != nil {
		h.logger.Error("Hub", "Failed to encode broadcast", map[string]interface{}{"type": messageType, "error": err.Error()})
		return
	}

	h.deliverAll(frame)

	if h.rdb != nil {
		payload, _ := json.Marshal(clusterMessage{Origin: h.instanceId, Message: frame})
		if err := h.rdb.Publish(context.Background(), ClusterChannel, payload).Err(); err != nil {
			h.logger.Warn("Hub", "Redis publish failed", map[string]interface{}{"error": err.Error()})
		}
	}
}

// Send delivers a frame to one local client. It reports false when the
// client is gone or too slow to keep up.
func (h *Hub) Send(client *Client, messageType string, data interface{}) bool {
	frame, err := json.Marshal(Envelope{Type: messageType, Data: data})
	if err != nil {
		return false
	}

	h.mu.RLock()
	current, ok := h.clients[client.Id]
	delivered := false
	if ok && current == client {
		select {
		case client.Send <- frame:
			delivered = true
		default:
		}
	}
	h.mu.RUnlock()

	if ok && !delivered {
		h.dropSlow([]*Client{client})
	}
	return delivered
}

func (h *Hub) deliverAll(frame []byte) {
	var slow []*Client

	h.mu.RLock()
	for _, client := range h.clients {
		select {
		case client.Send <- frame:
		default:
			slow = append(slow, client)
		}
	}
	h.mu.RUnlock()

	h.dropSlow(slow)
}

func (h *Hub) dropSlow(clients []*Client) {
	for _, client := range clients {
		h.logger.Warn("Hub", "Client send buffer full, dropping connection", map[string]interface{}{"client_id": client.Id})
		h.remove(client)
	}
}

func (h *Hub) remove(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if current, ok := h.clients[client.Id]; ok && current == client {
		delete(h.clients, client.Id)
		close(client.Send)
		h.logger.Info("Hub", "Client unregistered", map[string]interface{}{"client_id": client.Id})
	}
}

func (h *Hub) subscribeToRedis(ctx context.Context) {
	pubsub := h.rdb.Subscribe(ctx, ClusterChannel)
	defer pubsub.Close()

	if _, err := pubsub.Receive(ctx); err != nil {
		h.logger.Error("Hub", "Redis subscribe failed", map[string]interface{}{"error": err.Error()})
		close(h.ready)
		return
	}
	close(h.ready)

	ch := pubsub.Channel()
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-ch:
			if !ok {
				return
			}
			var payload clusterMessage
			if err := json.Unmarshal([]byte(msg.Payload), &payload); err != nil {
				h.logger.Warn("Hub", "Redis message parse error", map[string]interface{}{"error": err.Error()})
				continue
			}
			if payload.Origin == h.instanceId {
				continue
			}
			h.deliverAll(payload.Message)
		}
	}
}
