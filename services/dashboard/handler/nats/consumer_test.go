package nats

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/kurirmed/dispatch/internal/pkg/constants"
	"github.com/kurirmed/dispatch/internal/pkg/models"
	ws "github.com/kurirmed/dispatch/internal/pkg/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func receiveOne(t *testing.T, o *ws.Observer) models.WSMessage {
	t.Helper()
	select {
	case msg := <-o.Events():
		return msg
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for hub message")
		return models.WSMessage{}
	}
}

func TestHandleOrderStatusChanged(t *testing.T) {
	hub := ws.NewHub(4)
	h := NewHandler(hub, nil)

	observer := hub.Register("ops-1", nil)

	event := models.OrderStatusChangedEvent{
		OrderID:   uuid.New(),
		Status:    models.OrderStatusAssigned,
		Actor:     "dispatcher:ops-1",
		Timestamp: time.Now(),
	}
	raw, err := json.Marshal(event)
	require.NoError(t, err)

	require.NoError(t, h.handleOrderStatusChanged(raw))

	msg := receiveOne(t, observer)
	assert.Equal(t, constants.EventOrderStatusChanged, msg.Event)

	var got models.OrderStatusChangedEvent
	require.NoError(t, json.Unmarshal(msg.Data, &got))
	assert.Equal(t, event.OrderID, got.OrderID)
	assert.Equal(t, models.OrderStatusAssigned, got.Status)
}

func TestHandleDriverLocationChanged(t *testing.T) {
	hub := ws.NewHub(4)
	h := NewHandler(hub, nil)

	observer := hub.Register("ops-1", nil)

	event := models.DriverLocationChangedEvent{
		DriverID:  uuid.New(),
		Latitude:  29.3759,
		Longitude: 47.9774,
		Source:    models.LocationSourceLive,
		Timestamp: time.Now(),
	}
	raw, err := json.Marshal(event)
	require.NoError(t, err)

	require.NoError(t, h.handleDriverLocationChanged(raw))

	msg := receiveOne(t, observer)
	assert.Equal(t, constants.EventDriverLocationChanged, msg.Event)

	var got models.DriverLocationChangedEvent
	require.NoError(t, json.Unmarshal(msg.Data, &got))
	assert.Equal(t, event.DriverID, got.DriverID)
}

func TestHandleOrderStatusChanged_BadPayload(t *testing.T) {
	hub := ws.NewHub(4)
	h := NewHandler(hub, nil)

	observer := hub.Register("ops-1", nil)

	assert.Error(t, h.handleOrderStatusChanged([]byte("{not json")))

	select {
	case <-observer.Events():
		t.Fatal("expected no broadcast for a bad payload")
	case <-time.After(50 * time.Millisecond):
	}
}
