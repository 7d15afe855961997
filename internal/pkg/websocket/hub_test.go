package websocket

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testEvent struct {
	Seq int `json:"seq"`
}

func drainOne(t *testing.T, o *Observer) testEvent {
	t.Helper()
	select {
	case msg := <-o.Events():
		var ev testEvent
		require.NoError(t, json.Unmarshal(msg.Data, &ev))
		return ev
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for event")
		return testEvent{}
	}
}

func TestHub_RegisterUnregister(t *testing.T) {
	hub := NewHub(4)

	a := hub.Register("ops-1", nil)
	b := hub.Register("ops-2", nil)
	assert.Equal(t, 2, hub.Count())

	hub.Unregister(a.ID)
	assert.Equal(t, 1, hub.Count())

	select {
	case <-a.Done():
	case <-time.After(time.Second):
		t.Fatal("expected done to be closed on unregister")
	}

	hub.Unregister(b.ID)
	assert.Equal(t, 0, hub.Count())
}

func TestHub_PublishFanOut(t *testing.T) {
	hub := NewHub(4)

	a := hub.Register("ops-1", nil)
	b := hub.Register("ops-2", nil)

	hub.Publish("order_status_changed", testEvent{Seq: 1})

	got := drainOne(t, a)
	assert.Equal(t, 1, got.Seq)
	got = drainOne(t, b)
	assert.Equal(t, 1, got.Seq)
}

func TestHub_OrderPreservedPerObserver(t *testing.T) {
	hub := NewHub(16)
	o := hub.Register("ops-1", nil)

	for i := 1; i <= 10; i++ {
		hub.Publish("order_status_changed", testEvent{Seq: i})
	}

	for i := 1; i <= 10; i++ {
		got := drainOne(t, o)
		assert.Equal(t, i, got.Seq)
	}
}

func TestHub_SlowObserverDropped(t *testing.T) {
	hub := NewHub(2)

	slow := hub.Register("slow", nil)
	fast := hub.Register("fast", nil)

	// The slow observer never drains; its buffer fills after 2 events and
	// the third drops it. The fast observer keeps its full stream.
	hub.Publish("order_status_changed", testEvent{Seq: 1})
	hub.Publish("order_status_changed", testEvent{Seq: 2})

	drainOne(t, fast)
	drainOne(t, fast)

	hub.Publish("order_status_changed", testEvent{Seq: 3})

	select {
	case <-slow.Done():
	case <-time.After(time.Second):
		t.Fatal("expected slow observer to be dropped")
	}
	assert.Equal(t, 1, hub.Count())

	got := drainOne(t, fast)
	assert.Equal(t, 3, got.Seq)
}

func TestHub_PublishAfterDropDoesNotPanic(t *testing.T) {
	hub := NewHub(1)
	o := hub.Register("slow", nil)

	hub.Publish("order_status_changed", testEvent{Seq: 1})
	hub.Publish("order_status_changed", testEvent{Seq: 2})

	select {
	case <-o.Done():
	case <-time.After(time.Second):
		t.Fatal("expected observer to be dropped")
	}

	// The dropped observer's channel is never closed, so a racing publish
	// can still attempt a non-blocking send safely.
	assert.NotPanics(t, func() {
		hub.Publish("order_status_changed", testEvent{Seq: 3})
	})
}

func TestHub_UnmarshalableEventIgnored(t *testing.T) {
	hub := NewHub(4)
	o := hub.Register("ops-1", nil)

	hub.Publish("order_status_changed", make(chan int))

	select {
	case <-o.Events():
		t.Fatal("expected no event for unmarshalable payload")
	case <-time.After(50 * time.Millisecond):
	}
}
