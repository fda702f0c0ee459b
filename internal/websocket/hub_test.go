package websocket

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"markethub-be/internal/pkg/logger"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func startHub(t *testing.T, rdb *redis.Client) (*Hub, context.CancelFunc, chan struct{}) {
	t.Helper()
	hub := NewHub(rdb, logger.NewNopLogger())
	ctx, cancel := context.WithCancel(context.Background())
	stopped := make(chan struct{})
	go func() {
		hub.Run(ctx)
		close(stopped)
	}()
	select {
	case <-hub.ready:
	case <-time.After(2 * time.Second):
		t.Fatal("hub not ready")
	}
	return hub, cancel, stopped
}

func fakeClient(t *testing.T, hub *Hub, id string, buffer int) *Client {
	t.Helper()
	c := &Client{Id: id, Hub: hub, Send: make(chan []byte, buffer)}
	require.True(t, hub.join(c))
	require.Eventually(t, func() bool {
		hub.mu.RLock()
		defer hub.mu.RUnlock()
		return hub.clients[id] == c
	}, time.Second, 5*time.Millisecond)
	return c
}

func receive(t *testing.T, c *Client) Envelope {
	t.Helper()
	select {
	case frame, ok := <-c.Send:
		require.True(t, ok, "send channel closed")
		var env Envelope
		require.NoError(t, json.Unmarshal(frame, &env))
		return env
	case <-time.After(2 * time.Second):
		t.Fatalf("client %s received nothing", c.Id)
		return Envelope{}
	}
}

func TestHub_BroadcastReachesLocalClients(t *testing.T) {
	defer goleak.VerifyNone(t)

	hub, cancel, stopped := startHub(t, nil)
	a := fakeClient(t, hub, "a", 4)
	b := fakeClient(t, hub, "b", 4)
	assert.Equal(t, 2, hub.Count())

	hub.Broadcast("order_placed", map[string]interface{}{"order_id": 3})

	for _, c := range []*Client{a, b} {
		env := receive(t, c)
		assert.Equal(t, "order_placed", env.Type)
		assert.Equal(t, float64(3), env.Data.(map[string]interface{})["order_id"])
	}

	cancel()
	<-stopped

	_, open := <-a.Send
	assert.False(t, open)
	assert.Equal(t, 0, hub.Count())
	assert.False(t, hub.join(&Client{Id: "late", Send: make(chan []byte)}))
}

func TestHub_SendTargetsOneClient(t *testing.T) {
	defer goleak.VerifyNone(t)

	hub, cancel, stopped := startHub(t, nil)
	defer func() { cancel(); <-stopped }()

	a := fakeClient(t, hub, "a", 4)
	b := fakeClient(t, hub, "b", 4)

	require.True(t, hub.Send(a, "chat_reply", "hello"))
	assert.Equal(t, "hello", receive(t, a).Data)
	assert.Len(t, b.Send, 0)

	hub.leave(a)
	require.Eventually(t, func() bool { return hub.Count() == 1 }, time.Second, 5*time.Millisecond)
	assert.False(t, hub.Send(a, "chat_reply", "gone"))
}

func TestHub_DropsSlowClient(t *testing.T) {
	defer goleak.VerifyNone(t)

	hub, cancel, stopped := startHub(t, nil)
	defer func() { cancel(); <-stopped }()

	slow := fakeClient(t, hub, "slow", 1)
	fast := fakeClient(t, hub, "fast", 8)

	hub.Broadcast("catalog_changed", nil)
	hub.Broadcast("catalog_changed", nil)

	assert.Equal(t, 1, hub.Count())
	assert.Len(t, fast.Send, 2)

	<-slow.Send
	_, open := <-slow.Send
	assert.False(t, open)
}

func TestHub_RedisFanOut(t *testing.T) {
	mr := miniredis.RunT(t)

	rdbA := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	rdbB := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer rdbA.Close()
	defer rdbB.Close()

	hubA, cancelA, stoppedA := startHub(t, rdbA)
	hubB, cancelB, stoppedB := startHub(t, rdbB)
	defer func() {
		cancelA()
		cancelB()
		<-stoppedA
		<-stoppedB
	}()

	local := fakeClient(t, hubA, "local", 4)
	remote := fakeClient(t, hubB, "remote", 4)

	hubA.Broadcast("order_placed", map[string]interface{}{"order_id": 11})

	assert.Equal(t, "order_placed", receive(t, local).Type)
	env := receive(t, remote)
	assert.Equal(t, "order_placed", env.Type)
	assert.Equal(t, float64(11), env.Data.(map[string]interface{})["order_id"])

	// The origin instance skips its own echo.
	select {
	case frame := <-local.Send:
		t.Fatalf("duplicate frame delivered: %s", frame)
	case <-time.After(100 * time.Millisecond):
	}
}
