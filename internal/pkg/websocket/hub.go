// Package websocket implements the dashboard fan-out hub. Each connected
// observer gets a bounded outbound buffer; a slow observer is dropped
// rather than ever blocking publication to the others. The hub is a
// best-effort notification layer, not a durable event log: a dropped
// observer re-synchronizes by re-fetching full state on reconnect.
package websocket

import (
	"encoding/json"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/kurirmed/dispatch/internal/pkg/logger"
	"github.com/kurirmed/dispatch/internal/pkg/models"
)

// Observer represents one connected dashboard session
type Observer struct {
	ID     string
	UserID string

	conn      *websocket.Conn
	send      chan models.WSMessage
	done      chan struct{}
	closeOnce sync.Once
}

// Events exposes the observer's outbound stream; used by tests and by the
// write pump
func (o *Observer) Events() <-chan models.WSMessage {
	return o.send
}

// Done is closed when the observer has been dropped
func (o *Observer) Done() <-chan struct{} {
	return o.done
}

// The send channel is never closed so publishers can always attempt a
// non-blocking send; teardown is signalled through done instead.
func (o *Observer) close() {
	o.closeOnce.Do(func() {
		close(o.done)
		if o.conn != nil {
			_ = o.conn.Close()
		}
	})
}

// writePump drains the observer's buffer onto its connection
func (o *Observer) writePump() {
	for {
		select {
		case <-o.done:
			return
		case msg := <-o.send:
			if err := o.conn.WriteJSON(msg); err != nil {
				logger.Debug("Observer write failed",
					logger.String("observer_id", o.ID),
					logger.Err(err))
				return
			}
		}
	}
}

// Hub maintains the registry of connected observers and fans events out to
// all of them
type Hub struct {
	mu         sync.RWMutex
	observers  map[string]*Observer
	bufferSize int
}

// NewHub creates a hub; bufferSize bounds each observer's outbound buffer
func NewHub(bufferSize int) *Hub {
	if bufferSize <= 0 {
		bufferSize = 64
	}
	return &Hub{
		observers:  make(map[string]*Observer),
		bufferSize: bufferSize,
	}
}

// Register adds an observer session for the given connection. A nil conn is
// accepted so tests can consume Events() directly.
func (h *Hub) Register(userID string, conn *websocket.Conn) *Observer {
	o := &Observer{
		ID:     uuid.New().String(),
		UserID: userID,
		conn:   conn,
		send:   make(chan models.WSMessage, h.bufferSize),
		done:   make(chan struct{}),
	}

	h.mu.Lock()
	h.observers[o.ID] = o
	h.mu.Unlock()

	if conn != nil {
		go o.writePump()
	}

	logger.Debug("Observer registered",
		logger.String("observer_id", o.ID),
		logger.String("user_id", userID))
	return o
}

// Unregister removes an observer and closes its connection
func (h *Hub) Unregister(observerID string) {
	h.mu.Lock()
	o, exists := h.observers[observerID]
	if exists {
		delete(h.observers, observerID)
	}
	h.mu.Unlock()

	if exists {
		o.close()
	}
}

// Count returns the number of registered observers
func (h *Hub) Count() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.observers)
}

// Publish delivers the event to every registered observer. The send is
// non-blocking: an observer whose buffer is full is dropped and must
// re-sync on reconnect. Events published from a single goroutine (one NATS
// subscription) keep their order in every surviving observer's stream.
func (h *Hub) Publish(event string, data interface{}) {
	raw, err := json.Marshal(data)
	if err != nil {
		logger.Error("Failed to marshal broadcast event",
			logger.String("event", event),
			logger.Err(err))
		return
	}
	msg := models.WSMessage{Event: event, Data: raw}

	h.mu.RLock()
	observers := make([]*Observer, 0, len(h.observers))
	for _, o := range h.observers {
		observers = append(observers, o)
	}
	h.mu.RUnlock()

	for _, o := range observers {
		select {
		case o.send <- msg:
		default:
			logger.Warn("Observer buffer full, dropping session",
				logger.String("observer_id", o.ID),
				logger.String("user_id", o.UserID))
			h.Unregister(o.ID)
		}
	}
}
