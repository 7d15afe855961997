package queue

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/kurirmed/dispatch/internal/pkg/models"
)

// MemoryStore keeps pending actions in process memory. It backs devices that
// have no local Redis and the queue's tests.
type MemoryStore struct {
	mu      sync.Mutex
	pending map[string][]models.QueuedAction
}

// NewMemoryStore creates an in-memory action store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		pending: make(map[string][]models.QueuedAction),
	}
}

// Append adds an action to the tail of the device's queue
func (s *MemoryStore) Append(ctx context.Context, deviceID string, action models.QueuedAction) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending[deviceID] = append(s.pending[deviceID], action)
	return nil
}

// List returns the device's pending actions, oldest first
func (s *MemoryStore) List(ctx context.Context, deviceID string) ([]models.QueuedAction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.QueuedAction, len(s.pending[deviceID]))
	copy(out, s.pending[deviceID])
	return out, nil
}

// Remove deletes the queued action with the given client action ID
func (s *MemoryStore) Remove(ctx context.Context, deviceID string, clientActionID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	actions := s.pending[deviceID]
	for i, action := range actions {
		if action.ClientActionID == clientActionID {
			s.pending[deviceID] = append(actions[:i:i], actions[i+1:]...)
			return nil
		}
	}
	return nil
}

// Len returns the number of pending actions
func (s *MemoryStore) Len(ctx context.Context, deviceID string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pending[deviceID]), nil
}
